package world

// Color is a 24-bit 0xRRGGBB colour
type Color uint32

// RGB splits the colour into its channels
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Multiply returns the channel-wise product of two colours, used to dim glyphs
func (c Color) Multiply(other Color) Color {
	r1, g1, b1 := c.RGB()
	r2, g2, b2 := other.RGB()
	r := uint32(r1) * uint32(r2) / 255
	g := uint32(g1) * uint32(g2) / 255
	b := uint32(b1) * uint32(b2) / 255
	return Color(r<<16 | g<<8 | b)
}

// Glyph is an immutable visual: a character code plus foreground and background colours
type Glyph struct {
	Code       rune
	Foreground Color
	Background Color
}

// NewGlyph creates a glyph
func NewGlyph(code rune, fg, bg Color) Glyph {
	return Glyph{Code: code, Foreground: fg, Background: bg}
}

// Glyph codes for floor and wall shapes
const (
	CharFloor          = '.'
	CharWallCross      = '┼'
	CharWallHorizontal = '─'
	CharWallVertical   = '│'
	CharWallCornerSE   = '┌' // walls to the south and east
	CharWallCornerSW   = '┐'
	CharWallCornerNE   = '└'
	CharWallCornerNW   = '┘'
	CharWallTeeE       = '├' // walls N, S and E
	CharWallTeeW       = '┤'
	CharWallTeeS       = '┬'
	CharWallTeeN       = '┴'
)

// Palette
const (
	ColorFloorFg Color = 0x3a3a3a
	ColorFloorBg Color = 0x000000
	ColorWallFg  Color = 0xb0a890
	ColorWallBg  Color = 0x1c1a16
	ColorUnseen  Color = 0x111111
	ColorFog     Color = 0x9999aa
)
