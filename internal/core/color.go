package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Predefined colors.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// Colors by role on the playfield.
const (
	ColorHero      = ColorBrightGreen
	ColorHeroLegs  = ColorGreen
	ColorCoin      = ColorBrightYellow
	ColorSpike     = ColorBrightRed
	ColorPlatform  = ColorGray
	ColorGround    = ColorOrange
	ColorLife      = ColorBrightRed
	ColorLifeLost  = ColorGray
	ColorHUD       = ColorBrightWhite
	ColorHUDDetail = ColorGray
)

var colorNames = [...]string{
	"default", "red", "green", "yellow", "blue", "magenta", "cyan", "white",
	"bright-red", "bright-green", "bright-yellow", "bright-blue", "bright-magenta",
	"bright-cyan", "bright-white", "orange", "gray",
}

func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return "unknown"
}
