package core

// Color represents a foreground color role for a screen cell.
// The platform layer decides how each role is actually drawn.
type Color uint8

// Color roles used by the game renderer.
const (
	ColorDefault Color = iota // HUD text and anything without a role
	ColorShip
	ColorAlien
	ColorBullet
	ColorButton
	ColorNotice
)

// String returns the role name, used in theme configuration errors.
func (c Color) String() string {
	switch c {
	case ColorDefault:
		return "text"
	case ColorShip:
		return "ship"
	case ColorAlien:
		return "alien"
	case ColorBullet:
		return "bullet"
	case ColorButton:
		return "button"
	case ColorNotice:
		return "notice"
	default:
		return "unknown"
	}
}
