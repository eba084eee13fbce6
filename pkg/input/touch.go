package input

type TouchKind int

const (
	TouchStart TouchKind = iota
	TouchMove
	TouchEnd
	TouchCancel
)

type TouchPoint struct {
	ID   int
	X, Y int
}

// TouchEvent mirrors a browser touch event: Touches holds the points still
// down, Changed the points this event is about.
type TouchEvent struct {
	Kind    TouchKind
	Touches []TouchPoint
	Changed []TouchPoint
}

// Touch feeds touch events to a Gestures. Only the first touch point counts.
type Touch struct {
	g Gestures
}

func NewTouch(g Gestures) *Touch {
	return &Touch{g: g}
}

func (t *Touch) Handle(ev TouchEvent) {
	switch ev.Kind {
	case TouchStart:
		if p, ok := first(ev.Touches); ok {
			t.g.PointerDown(p.X, p.Y)
		}
	case TouchMove:
		if p, ok := first(ev.Touches); ok {
			t.g.PointerMove(p.X, p.Y)
		}
	case TouchEnd:
		// The lifted finger is no longer in Touches.
		if p, ok := first(ev.Changed); ok {
			t.g.PointerUp(p.X, p.Y)
		}
	case TouchCancel:
		t.g.PointerLeave()
	}
}

func first(points []TouchPoint) (TouchPoint, bool) {
	if len(points) == 0 {
		return TouchPoint{}, false
	}
	return points[0], true
}
