package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors used by the renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightWhite
	ColorGray
)

// RoleColor maps a draw role to its terminal color. The body uses the
// darker green and the head the lighter one.
func RoleColor(r Role) Color {
	switch r {
	case RoleBody:
		return ColorGreen
	case RoleHead:
		return ColorBrightGreen
	case RoleApple:
		return ColorBrightRed
	case RoleBoard:
		return ColorGray
	case RoleBanner:
		return ColorBrightWhite
	case RoleHUD:
		return ColorYellow
	default:
		return ColorDefault
	}
}
