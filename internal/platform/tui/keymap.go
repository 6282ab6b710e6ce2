package tui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/alien-invasion/internal/core"
)

// KeyMap defines the key bindings for the game screen.
type KeyMap struct {
	Left   key.Binding
	Right  key.Binding
	Stop   key.Binding
	Fire   key.Binding
	Start  key.Binding
	Pause  key.Binding
	Scores key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Fire, k.Start, k.Pause, k.Scores, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Stop, k.Fire},
		{k.Start, k.Pause, k.Scores, k.Quit},
	}
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Stop: key.NewBinding(
			key.WithKeys("down", "s"),
			key.WithHelp("↓/s", "stop"),
		),
		Fire: key.NewBinding(
			key.WithKeys(" ", "up", "w"),
			key.WithHelp("space", "fire"),
		),
		Start: key.NewBinding(
			key.WithKeys("enter", "p"),
			key.WithHelp("enter/p", "play"),
		),
		Pause: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "pause"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// heldKeys turns key presses into held movement. Terminals report repeated
// presses but never releases, so a direction stays held for a number of
// ticks after its last press. Pressing the opposite direction or stop ends
// it at once.
type heldKeys struct {
	hold  int // Ticks a press stays held
	left  int // Remaining ticks
	right int
}

// newHeldKeys creates a tracker holding each press for half a second.
func newHeldKeys(tickRate int) heldKeys {
	return heldKeys{hold: core.Max(tickRate/2, 1)}
}

// press registers a movement key.
func (h *heldKeys) press(a core.Action) {
	switch a {
	case core.ActionLeft:
		h.left = h.hold
		h.right = 0
	case core.ActionRight:
		h.right = h.hold
		h.left = 0
	}
}

// stop releases both directions.
func (h *heldKeys) stop() {
	h.left = 0
	h.right = 0
}

// apply sets the held directions on the frame and counts one tick down.
func (h *heldKeys) apply(frame *core.InputFrame) {
	if h.left > 0 {
		frame.Set(core.ActionLeft)
		h.left--
	}
	if h.right > 0 {
		frame.Set(core.ActionRight)
		h.right--
	}
}
