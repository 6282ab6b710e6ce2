// Package invasion implements Alien Invasion: the player's ship fires at a
// sweeping, descending fleet of aliens that speeds up with every wave.
//
// The simulation runs in world units (virtual pixels) and knows nothing about
// terminals; Render scales a Frame onto a core.Screen of any size.
package invasion

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/alien-invasion/internal/config"
	"github.com/vovakirdan/alien-invasion/internal/core"
)

// Game is the game loop controller. It owns the session and advances it one
// tick per Step.
type Game struct {
	cfg     config.InvasionConfig
	runtime core.RuntimeConfig
	session *Session
	logger  *log.Logger

	button         core.Rect // Play button, world units
	tickCount      uint64
	pauseTicks     int  // Remaining ticks of the life-lost pause
	userPaused     bool // Paused with the pause key
	screenTooSmall bool // Fleet cannot hold a single alien
}

// New creates a game for the given configuration. Call Reset before Step.
func New(cfg config.InvasionConfig) *Game {
	return &Game{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
}

// SetLogger sets the logger used for game events.
func (g *Game) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	g.logger = l
}

// Reset initializes the game in the inactive state. The high score of a
// previous session is kept.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	if runtime.TickRate <= 0 {
		runtime.TickRate = core.DefaultConfig().TickRate
	}
	g.runtime = runtime

	highScore := 0
	if g.session != nil {
		highScore = g.session.Stats.HighScore
	}
	g.session = NewSession(g.cfg)
	g.session.Stats.HighScore = highScore

	world := g.session.Settings.World()
	g.button = world.Centered(g.cfg.Button.Width, g.cfg.Button.Height)
	if !g.button.Within(world) {
		g.button = world
	}

	cols, rows := FleetLayout(g.session.Settings)
	g.screenTooSmall = cols*rows == 0 || g.cfg.Ship.Width > world.W

	g.tickCount = 0
	g.pauseTicks = 0
	g.userPaused = false
}

// SetHighScore raises the session high score, e.g. from recorded results.
// A lower value is ignored.
func (g *Game) SetHighScore(score int) {
	if score > g.session.Stats.HighScore {
		g.session.Stats.HighScore = score
	}
}

// ScreenTooSmall reports whether the world cannot hold a fleet. Such a game
// never starts.
func (g *Game) ScreenTooSmall() bool {
	return g.screenTooSmall
}

// Settings exposes the session settings.
func (g *Game) Settings() *Settings {
	return g.session.Settings
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}
	g.tickCount++
	s := g.session

	if !s.Stats.Active {
		if in.Has(core.ActionStart) || (in.Pointer.Clicked && g.button.Contains(in.Pointer.X, in.Pointer.Y)) {
			g.start()
		}
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.userPaused = !g.userPaused
	}
	if g.userPaused {
		return core.StepResult{State: g.State()}
	}

	// Frozen after losing a ship
	if g.pauseTicks > 0 {
		g.pauseTicks--
		return core.StepResult{State: g.State()}
	}

	s.Ship.MovingLeft = in.Has(core.ActionLeft)
	s.Ship.MovingRight = in.Has(core.ActionRight)
	if in.Has(core.ActionFire) {
		s.FireBullet()
	}

	s.Ship.Update(s.Settings.ShipSpeed())
	s.UpdateBullets()

	if n := s.CheckBulletAlienCollisions(); n > 0 {
		g.logger.Debug("aliens destroyed", "count", n, "score", s.Stats.Score)
	}
	if len(s.Aliens) == 0 {
		s.ClearWave()
		g.logger.Info("wave cleared",
			"wave", s.Stats.Level,
			"score", s.Stats.Score,
			"alien_points", s.Settings.AlienPoints(),
		)
	}

	s.UpdateAliens()

	if s.ShipHit() {
		if g.loseShip() {
			return core.StepResult{State: g.State(), GameOver: true}
		}
	}

	return core.StepResult{State: g.State()}
}

// start begins a new game from the inactive state.
func (g *Game) start() {
	g.session.StartGame()
	g.pauseTicks = 0
	g.userPaused = false
	g.logger.Info("game started",
		"ships", g.session.Stats.ShipsLeft,
		"aliens", len(g.session.Aliens),
		"high_score", g.session.Stats.HighScore,
	)
}

// loseShip handles a life loss and returns true if the game ended.
func (g *Game) loseShip() bool {
	s := g.session
	if s.LoseShip() {
		g.logger.Info("game over",
			"score", s.Stats.Score,
			"wave", s.Stats.Level,
			"high_score", s.Stats.HighScore,
		)
		return true
	}

	g.pauseTicks = g.lifeLostPauseTicks()
	g.logger.Info("ship lost", "ships_left", s.Stats.ShipsLeft, "pause_ticks", g.pauseTicks)
	return false
}

// lifeLostPauseTicks converts the configured pause into ticks, rounding up.
func (g *Game) lifeLostPauseTicks() int {
	ms := g.cfg.Timing.LifeLostPauseMS
	if ms <= 0 {
		return 0
	}
	return (ms*g.runtime.TickRate + 999) / 1000
}

// State returns the current game state summary.
func (g *Game) State() core.GameState {
	st := g.session.Stats
	return core.GameState{
		Score:          st.Score,
		Active:         st.Active,
		Paused:         st.Active && (g.userPaused || g.pauseTicks > 0),
		PointerVisible: st.PointerVisible,
	}
}

// Stats returns a copy of the session stats.
func (g *Game) Stats() Stats {
	return g.session.Stats
}
