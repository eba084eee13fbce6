package board

import "math"

// DialogKind identifies one of the board dialogs.
type DialogKind int

const (
	WhitePromotion DialogKind = iota
	BlackPromotion
	WhiteVictory
	BlackVictory
	Stalemate
	numDialogs
)

func (k DialogKind) String() string {
	switch k {
	case WhitePromotion:
		return "white-promotion"
	case BlackPromotion:
		return "black-promotion"
	case WhiteVictory:
		return "white-victory"
	case BlackVictory:
		return "black-victory"
	case Stalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// Button is a clickable piece in a dialog.
type Button struct {
	Piece  rune
	Choice Promotion
	press  func()
}

// Dialog is a modal box drawn above the board. Position and size are in board
// units relative to the board origin.
type Dialog struct {
	Kind    DialogKind
	Text    string
	Icons   []rune
	Buttons []*Button
	Visible bool

	Top, Left     int
	Width, Height int
}

// Reposition scales the dialog position by ratio, rounding down.
func (d *Dialog) Reposition(ratio float64) {
	d.Top = int(math.Floor(float64(d.Top) * ratio))
	d.Left = int(math.Floor(float64(d.Left) * ratio))
}

// ButtonRect returns the rectangle of button i. Buttons split the dialog width
// evenly.
func (d *Dialog) ButtonRect(i int) (x, y, w, h int) {
	if len(d.Buttons) == 0 {
		return 0, 0, 0, 0
	}
	w = d.Width / len(d.Buttons)
	return d.Left + i*w, d.Top, w, d.Height
}

// ButtonAt returns the index of the button under (x, y), or -1.
func (d *Dialog) ButtonAt(x, y int) int {
	if !d.Visible {
		return -1
	}
	for i := range d.Buttons {
		bx, by, bw, bh := d.ButtonRect(i)
		if x >= bx && x < bx+bw && y >= by && y < by+bh {
			return i
		}
	}
	return -1
}

// Press clicks button i.
func (d *Dialog) Press(i int) bool {
	if i < 0 || i >= len(d.Buttons) || d.Buttons[i].press == nil {
		return false
	}
	d.Buttons[i].press()
	return true
}

func (b *Board) makeDialogs() {
	for _, white := range []bool{true, false} {
		kind := BlackPromotion
		if white {
			kind = WhitePromotion
		}
		d := &Dialog{Kind: kind}
		for _, choice := range PromotionChoices {
			choice := choice
			d.Buttons = append(d.Buttons, &Button{
				Piece:  choice.Piece(white),
				Choice: choice,
				press:  func() { b.choosePromotion(d, choice) },
			})
		}
		b.dialogs[kind] = d
	}
	b.dialogs[WhiteVictory] = &Dialog{Kind: WhiteVictory, Text: "White Victory!", Icons: []rune{'K'}}
	b.dialogs[BlackVictory] = &Dialog{Kind: BlackVictory, Text: "Black Victory!", Icons: []rune{'k'}}
	b.dialogs[Stalemate] = &Dialog{Kind: Stalemate, Text: "Stalemate...", Icons: []rune{'K', 'k'}}
}

// layoutDialogs sizes the dialogs for the current square size. Promotion
// dialogs keep their place scaled by ratio; game over dialogs stay centered.
func (b *Board) layoutDialogs(ratio float64) {
	half := b.halfSquare
	if half < 1 {
		half = 1
	}
	for _, kind := range []DialogKind{WhitePromotion, BlackPromotion} {
		d := b.dialogs[kind]
		d.Width = len(d.Buttons) * half
		d.Height = half
		d.Reposition(ratio)
	}
	for _, kind := range []DialogKind{WhiteVictory, BlackVictory, Stalemate} {
		d := b.dialogs[kind]
		d.Width = 4 * b.squareSize
		d.Height = b.squareSize
		d.Left = (b.boardSize - d.Width) / 2
		d.Top = (b.boardSize - d.Height) / 2
	}
}

func (b *Board) choosePromotion(d *Dialog, choice Promotion) {
	d.Visible = false
	b.log.Debug().Stringer("choice", choice).Msg("promotion chosen")
	b.engine.Promote(choice)
	b.UpdatePieces(false)
	b.EnableMoves()
}

// Dialog returns the dialog of a kind.
func (b *Board) Dialog(kind DialogKind) *Dialog {
	if kind < 0 || kind >= numDialogs {
		return nil
	}
	return b.dialogs[kind]
}

// Dialogs returns all dialogs in drawing order.
func (b *Board) Dialogs() []*Dialog {
	return b.dialogs[:]
}

// PromptPromotion asks the player to pick the piece a pawn promotes to. It is
// called by the engine while the pawn is being dropped.
func (b *Board) PromptPromotion() {
	b.DisableMoves()

	sq := b.SquareFromCoords(b.userX, b.userY)
	if sq.Valid() {
		b.layers.Pieces.ClearRect(b.squareX(sq), b.squareY(sq), b.squareSize, b.squareSize)
		b.drawPiece(sq, b.heldImage)
	}

	d := b.dialogs[BlackPromotion]
	if b.engine.WhiteToMove() {
		d = b.dialogs[WhitePromotion]
	}
	if b.userY < b.boardSize/2 {
		d.Top = b.userY
	} else {
		d.Top = b.userY - d.Height
	}
	if b.userX < b.boardSize/2 {
		d.Left = b.userX
	} else {
		d.Left = b.userX - d.Width
	}
	d.Reposition(1)
	d.Visible = true
	b.log.Debug().Stringer("dialog", d.Kind).Msg("dialog shown")
}

// ShowVictory shows the victory dialog of the side that just moved.
func (b *Board) ShowVictory() {
	b.DisableMoves()
	d := b.dialogs[WhiteVictory]
	if b.engine.WhiteToMove() {
		d = b.dialogs[BlackVictory]
	}
	d.Visible = true
	b.log.Debug().Stringer("dialog", d.Kind).Msg("dialog shown")
}

func (b *Board) ShowStalemate() {
	b.DisableMoves()
	b.dialogs[Stalemate].Visible = true
	b.log.Debug().Stringer("dialog", Stalemate).Msg("dialog shown")
}

// ClearDialogs hides every dialog and re-enables input.
func (b *Board) ClearDialogs() {
	for _, d := range b.dialogs {
		d.Visible = false
	}
	b.EnableMoves()
}

// PressDialog clicks the dialog button under a client coordinate.
func (b *Board) PressDialog(x, y int) bool {
	lx, ly := x-b.bounds.left, y-b.bounds.top
	for _, d := range b.dialogs {
		if i := d.ButtonAt(lx, ly); i >= 0 {
			return d.Press(i)
		}
	}
	return false
}
