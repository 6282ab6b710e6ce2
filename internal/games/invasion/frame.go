package invasion

import (
	"encoding/binary"
	"hash/fnv"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Frame is an immutable snapshot of everything the presentation layer draws.
// Slices are copies; changing them does not affect the game.
type Frame struct {
	Tick uint64

	World   core.Rect
	Ship    core.Rect
	Bullets []core.Rect
	Aliens  []core.Rect

	Button      core.Rect
	ButtonLabel string

	Score     int
	HighScore int
	Level     int
	ShipsLeft int

	Active         bool
	Paused         bool // Paused by the player
	PauseRemaining int  // Ticks left in the life-lost pause
	PointerVisible bool
	ScreenTooSmall bool
}

// Frame captures the current state of the game.
func (g *Game) Frame() Frame {
	s := g.session
	f := Frame{
		Tick:           g.tickCount,
		World:          s.Settings.World(),
		Ship:           s.Ship.Rect(),
		Bullets:        make([]core.Rect, len(s.Bullets)),
		Aliens:         make([]core.Rect, len(s.Aliens)),
		Button:         g.button,
		ButtonLabel:    s.Settings.Config().Button.Label,
		Score:          s.Stats.Score,
		HighScore:      s.Stats.HighScore,
		Level:          s.Stats.Level,
		ShipsLeft:      s.Stats.ShipsLeft,
		Active:         s.Stats.Active,
		Paused:         g.userPaused,
		PauseRemaining: g.pauseTicks,
		PointerVisible: s.Stats.PointerVisible,
		ScreenTooSmall: g.screenTooSmall,
	}
	for i, b := range s.Bullets {
		f.Bullets[i] = b.Rect()
	}
	for i, a := range s.Aliens {
		f.Aliens[i] = a.Rect()
	}
	return f
}

// Hash computes a deterministic hash of the frame for comparison.
func (f Frame) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte

	writeInt := func(v int) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hashing only
		h.Write(buf[:])
	}
	writeRect := func(r core.Rect) {
		writeInt(r.X)
		writeInt(r.Y)
		writeInt(r.W)
		writeInt(r.H)
	}
	writeBool := func(b bool) {
		if b {
			writeInt(1)
		} else {
			writeInt(0)
		}
	}

	binary.LittleEndian.PutUint64(buf[:], f.Tick)
	h.Write(buf[:])

	writeRect(f.World)
	writeRect(f.Ship)
	writeInt(len(f.Bullets))
	for _, r := range f.Bullets {
		writeRect(r)
	}
	writeInt(len(f.Aliens))
	for _, r := range f.Aliens {
		writeRect(r)
	}
	writeRect(f.Button)

	writeInt(f.Score)
	writeInt(f.HighScore)
	writeInt(f.Level)
	writeInt(f.ShipsLeft)
	writeInt(f.PauseRemaining)
	writeBool(f.Active)
	writeBool(f.Paused)
	writeBool(f.PointerVisible)
	writeBool(f.ScreenTooSmall)

	return h.Sum64()
}
