package board

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Palette holds the three color variants of each square parity.
type Palette struct {
	Light      colorful.Color
	LightHover colorful.Color
	LightMove  colorful.Color
	Dark       colorful.Color
	DarkHover  colorful.Color
	DarkMove   colorful.Color
}

// DefaultPalette is the green board.
var DefaultPalette = Palette{
	Light:      mustHex("#EEEED2"),
	LightHover: mustHex("#F5A4B0"),
	LightMove:  mustHex("#F6F681"),
	Dark:       mustHex("#769656"),
	DarkHover:  mustHex("#B76E79"),
	DarkMove:   mustHex("#BBCA44"),
}

func mustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (p Palette) Normal(sq Square) colorful.Color {
	if IsWhite(sq) {
		return p.Light
	}
	return p.Dark
}

func (p Palette) Hover(sq Square) colorful.Color {
	if IsWhite(sq) {
		return p.LightHover
	}
	return p.DarkHover
}

func (p Palette) Move(sq Square) colorful.Color {
	if IsWhite(sq) {
		return p.LightMove
	}
	return p.DarkMove
}
