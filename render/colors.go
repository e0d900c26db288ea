package render

import "github.com/gdamore/tcell/v2"

// RGB palette, bright and friendly on a dark background
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbWall       = tcell.NewRGBColor(86, 95, 137)   // Slate blue
	RgbPassage    = tcell.NewRGBColor(36, 40, 59)    // Slightly lifted floor
	RgbFog        = tcell.NewRGBColor(52, 54, 70)    // Muted gray haze
	RgbPlayer     = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbEnd        = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbStart      = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbHint       = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbTitle      = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbWinBanner  = tcell.NewRGBColor(255, 192, 203) // Pink
)

// Styles derived from the palette
var (
	StyleDefault = tcell.StyleDefault.Background(RgbBackground)
	StyleWall    = StyleDefault.Foreground(RgbWall)
	StylePassage = tcell.StyleDefault.Background(RgbPassage)
	StyleFog     = StyleDefault.Foreground(RgbFog)
	StylePlayer  = StylePassage.Foreground(RgbPlayer).Bold(true)
	StyleEnd     = StylePassage.Foreground(RgbEnd).Bold(true)
	StyleStart   = StylePassage.Foreground(RgbStart)
	StyleHint    = StylePassage.Foreground(RgbHint).Bold(true)
	StyleTitle   = StyleDefault.Foreground(RgbTitle).Bold(true)
	StyleStatus  = StyleDefault.Foreground(RgbStatusText)
	StyleWin     = StyleDefault.Foreground(RgbWinBanner).Bold(true)
)
