package gui

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/qnkhuat/chessboard/pkg/board"
)

// Terminal safe color palette is available here
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// ErrNoTheme is returned by ImportThemes when no theme has the wanted name.
var ErrNoTheme = errors.New("theme: no theme found")

// Theme is used for dynamically coloring the UI
type Theme struct {
	Name             string      `json:"name"`
	SquareDark       tcell.Color `json:"squareDark"`
	SquareLight      tcell.Color `json:"squareLight"`
	SquareDarkHover  tcell.Color `json:"squareDarkHover"`
	SquareLightHover tcell.Color `json:"squareLightHover"`
	SquareDarkMove   tcell.Color `json:"squareDarkMove"`
	SquareLightMove  tcell.Color `json:"squareLightMove"`
	White            tcell.Color `json:"white"`
	Black            tcell.Color `json:"black"`
	DialogBg         tcell.Color `json:"dialogBg"`
	DialogFg         tcell.Color `json:"dialogFg"`
	MoveLabelBg      tcell.Color `json:"moveLabelBg"`
	MoveLabelFg      tcell.Color `json:"moveLabelFg"`
	Rank             tcell.Color `json:"rank"`
	File             tcell.Color `json:"file"`
	Msg              tcell.Color `json:"msg"`
}

// ThemeHex is the form of a Theme stored in config files
type ThemeHex struct {
	Name             string `json:"name"`
	SquareDark       string `json:"squareDark"`
	SquareLight      string `json:"squareLight"`
	SquareDarkHover  string `json:"squareDarkHover"`
	SquareLightHover string `json:"squareLightHover"`
	SquareDarkMove   string `json:"squareDarkMove"`
	SquareLightMove  string `json:"squareLightMove"`
	White            string `json:"white"`
	Black            string `json:"black"`
	DialogBg         string `json:"dialogBg"`
	DialogFg         string `json:"dialogFg"`
	MoveLabelBg      string `json:"moveLabelBg"`
	MoveLabelFg      string `json:"moveLabelFg"`
	Rank             string `json:"rank"`
	File             string `json:"file"`
	Msg              string `json:"msg"`
}

// fmtHex returns a one character hex for the ColorDefault
// and otherwise it returns a standard hex. This is useful
// because it allows ColorDefault to be imported from the config
// and parsed properly rather than being interpreted as black
func fmtHex(v int32) string {
	if v == -1 {
		return "#0"
	}
	return fmt.Sprintf("#%06x", v)
}

// Hex converts a Theme to a ThemeHex
func (t Theme) Hex() ThemeHex {
	return ThemeHex{
		t.Name,
		fmtHex(t.SquareDark.Hex()),
		fmtHex(t.SquareLight.Hex()),
		fmtHex(t.SquareDarkHover.Hex()),
		fmtHex(t.SquareLightHover.Hex()),
		fmtHex(t.SquareDarkMove.Hex()),
		fmtHex(t.SquareLightMove.Hex()),
		fmtHex(t.White.Hex()),
		fmtHex(t.Black.Hex()),
		fmtHex(t.DialogBg.Hex()),
		fmtHex(t.DialogFg.Hex()),
		fmtHex(t.MoveLabelBg.Hex()),
		fmtHex(t.MoveLabelFg.Hex()),
		fmtHex(t.Rank.Hex()),
		fmtHex(t.File.Hex()),
		fmtHex(t.Msg.Hex()),
	}
}

// Theme converts a ThemeHex to a Theme
func (t ThemeHex) Theme() Theme {
	return Theme{
		t.Name,
		tcell.GetColor(t.SquareDark),
		tcell.GetColor(t.SquareLight),
		tcell.GetColor(t.SquareDarkHover),
		tcell.GetColor(t.SquareLightHover),
		tcell.GetColor(t.SquareDarkMove),
		tcell.GetColor(t.SquareLightMove),
		tcell.GetColor(t.White),
		tcell.GetColor(t.Black),
		tcell.GetColor(t.DialogBg),
		tcell.GetColor(t.DialogFg),
		tcell.GetColor(t.MoveLabelBg),
		tcell.GetColor(t.MoveLabelFg),
		tcell.GetColor(t.Rank),
		tcell.GetColor(t.File),
		tcell.GetColor(t.Msg),
	}
}

// ImportThemes returns a converted Theme from a slice of ThemeHex
// entities if its name matches the want argument. The built in themes
// are used when no entry matches.
func ImportThemes(want string, themes []ThemeHex) (Theme, error) {
	// First check if want is in the provided config (override)
	for _, t := range themes {
		if t.Name == want {
			return t.Theme(), nil
		}
	}
	for _, t := range Themes {
		if t.Name == want {
			return t, nil
		}
	}
	return Theme{}, fmt.Errorf("%w: %q", ErrNoTheme, want)
}

// Palette returns the square colors of the theme. Colors the terminal can not
// express as RGB, like ColorDefault, keep the board defaults.
func (t Theme) Palette() board.Palette {
	def := board.DefaultPalette
	return board.Palette{
		Light:      toColorful(t.SquareLight, def.Light),
		LightHover: toColorful(t.SquareLightHover, def.LightHover),
		LightMove:  toColorful(t.SquareLightMove, def.LightMove),
		Dark:       toColorful(t.SquareDark, def.Dark),
		DarkHover:  toColorful(t.SquareDarkHover, def.DarkHover),
		DarkMove:   toColorful(t.SquareDarkMove, def.DarkMove),
	}
}

func toColorful(c tcell.Color, fallback colorful.Color) colorful.Color {
	r, g, b := c.RGB()
	if r < 0 || g < 0 || b < 0 {
		return fallback
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

func toTcell(c colorful.Color) tcell.Color {
	r, g, b := c.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",          // Name
	tcell.Color188,   // SquareDark
	tcell.Color230,   // SquareLight
	tcell.Color181,   // SquareDarkHover
	tcell.Color224,   // SquareLightHover
	tcell.Color186,   // SquareDarkMove
	tcell.Color228,   // SquareLightMove
	tcell.Color25,    // White
	tcell.Color232,   // Black
	tcell.Color252,   // DialogBg
	tcell.ColorBlack, // DialogFg
	tcell.Color252,   // MoveLabelBg
	tcell.ColorBlack, // MoveLabelFg
	tcell.Color247,   // Rank
	tcell.Color247,   // File
	tcell.Color160,   // Msg
}

// ThemeGreen matches the board's default palette
var ThemeGreen = Theme{
	"green",                                  // Name
	toTcell(board.DefaultPalette.Dark),       // SquareDark
	toTcell(board.DefaultPalette.Light),      // SquareLight
	toTcell(board.DefaultPalette.DarkHover),  // SquareDarkHover
	toTcell(board.DefaultPalette.LightHover), // SquareLightHover
	toTcell(board.DefaultPalette.DarkMove),   // SquareDarkMove
	toTcell(board.DefaultPalette.LightMove),  // SquareLightMove
	tcell.Color172,                           // White
	tcell.ColorBlack,                         // Black
	tcell.Color238,                           // DialogBg
	tcell.ColorWhite,                         // DialogFg
	tcell.Color252,                           // MoveLabelBg
	tcell.ColorBlack,                         // MoveLabelFg
	tcell.Color247,                           // Rank
	tcell.Color247,                           // File
	tcell.Color160,                           // Msg
}

// Themes lists the built in themes
var Themes = []Theme{ThemeBasic, ThemeGreen}
