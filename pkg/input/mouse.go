package input

import "github.com/gdamore/tcell/v2"

// CellsPerUnit is the number of terminal columns in one board unit. Rows map
// one to one.
const CellsPerUnit = 2

// Mouse feeds tcell mouse events to a Gestures.
type Mouse struct {
	g       Gestures
	pressed bool
	inside  bool
	started bool
}

func NewMouse(g Gestures) *Mouse {
	return &Mouse{g: g}
}

// Handle converts one event. area is the screen rectangle of the board
// container; coordinates passed on are relative to it. It reports whether the
// event belongs to a press that started inside area.
func (m *Mouse) Handle(ev *tcell.EventMouse, area Rect) bool {
	cx, cy := ev.Position()
	x, y := floorDiv(cx-area.X, CellsPerUnit), cy-area.Y
	down := ev.Buttons()&tcell.Button1 != 0
	inside := area.Contains(cx, cy)

	switch {
	case down && !m.pressed:
		m.pressed = true
		m.inside = inside
		m.started = inside
		if inside {
			m.g.PointerDown(x, y)
		}
		return inside
	case !down && m.pressed:
		started := m.started
		m.pressed = false
		m.inside = false
		m.started = false
		m.g.PointerUp(x, y)
		return started
	case down && m.inside && !inside:
		m.inside = false
		m.g.PointerLeave()
		return m.started
	case down && inside:
		m.inside = true
		m.g.PointerMove(x, y)
		return m.started
	}
	return false
}

// Pressed reports whether button 1 is held.
func (m *Mouse) Pressed() bool {
	return m.pressed
}
