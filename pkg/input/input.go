// Package input turns terminal mouse events and touch events into the
// pointer gestures a board understands.
package input

// Gestures receives normalized pointer input in board container units.
type Gestures interface {
	PointerDown(x, y int)
	PointerMove(x, y int)
	PointerUp(x, y int)
	PointerLeave()
}

// Rect is a screen rectangle in terminal cells.
type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// floorDiv divides rounding toward negative infinity so cells left of the
// area map to negative units.
func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
