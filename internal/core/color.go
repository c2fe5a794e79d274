package core

// Color is a hex color string such as "#FFD700".
// Level data carries colors in this form; the platform layer maps them
// to terminal styles. The empty Color means the terminal default.
type Color string

// Colors used by the simulation itself (level data supplies the rest).
const (
	ColorDefault Color = ""
	ColorWhite   Color = "#FFFFFF"
	ColorPlayer  Color = "#FF5722"
	ColorGold    Color = "#FFD700"
	ColorEnemy   Color = "#F44336"
	ColorGray    Color = "#9E9E9E"
)

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool {
	return c == ColorDefault
}
