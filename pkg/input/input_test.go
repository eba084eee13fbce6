package input

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/gdamore/tcell/v2"
)

type recorder struct {
	calls []string
}

func (r *recorder) PointerDown(x, y int) { r.calls = append(r.calls, fmt.Sprintf("down %d,%d", x, y)) }
func (r *recorder) PointerMove(x, y int) { r.calls = append(r.calls, fmt.Sprintf("move %d,%d", x, y)) }
func (r *recorder) PointerUp(x, y int)   { r.calls = append(r.calls, fmt.Sprintf("up %d,%d", x, y)) }
func (r *recorder) PointerLeave()        { r.calls = append(r.calls, "leave") }

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func TestMouseDrag(t *testing.T) {
	r := &recorder{}
	m := NewMouse(r)
	area := Rect{X: 10, Y: 2, W: 32, H: 16}

	var handled []bool
	for _, ev := range []*tcell.EventMouse{
		mouse(13, 5, tcell.ButtonNone),
		mouse(13, 5, tcell.Button1),
		mouse(20, 8, tcell.Button1),
		mouse(21, 8, tcell.ButtonNone),
	} {
		handled = append(handled, m.Handle(ev, area))
	}
	if want := []bool{false, true, true, true}; !reflect.DeepEqual(handled, want) {
		t.Errorf("handled %v", handled)
	}

	want := []string{"down 1,3", "move 5,6", "up 5,6"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Fatalf("calls %q", r.calls)
	}
	if m.Pressed() {
		t.Errorf("still pressed")
	}
}

func TestMouseLeavingAreaCancels(t *testing.T) {
	r := &recorder{}
	m := NewMouse(r)
	area := Rect{X: 0, Y: 0, W: 16, H: 8}

	m.Handle(mouse(2, 2, tcell.Button1), area)
	m.Handle(mouse(30, 2, tcell.Button1), area)
	m.Handle(mouse(31, 2, tcell.Button1), area)
	m.Handle(mouse(31, 2, tcell.ButtonNone), area)

	want := []string{"down 1,2", "leave", "up 15,2"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Fatalf("calls %q", r.calls)
	}
}

func TestMousePressOutsideIgnored(t *testing.T) {
	r := &recorder{}
	m := NewMouse(r)
	area := Rect{X: 4, Y: 4, W: 16, H: 8}

	if m.Handle(mouse(0, 0, tcell.Button1), area) || len(r.calls) != 0 {
		t.Fatalf("press outside handled: %q", r.calls)
	}
	// Negative columns round down so the point stays outside the board.
	if m.Handle(mouse(3, 5, tcell.ButtonNone), area) {
		t.Errorf("release of an outside press handled")
	}
	if want := []string{"up -1,1"}; !reflect.DeepEqual(r.calls, want) {
		t.Errorf("calls %q", r.calls)
	}
}

func TestTouch(t *testing.T) {
	r := &recorder{}
	tc := NewTouch(r)
	a, b := TouchPoint{ID: 1, X: 3, Y: 4}, TouchPoint{ID: 2, X: 9, Y: 9}

	tc.Handle(TouchEvent{Kind: TouchStart, Touches: []TouchPoint{a, b}})
	tc.Handle(TouchEvent{Kind: TouchMove, Touches: []TouchPoint{{ID: 1, X: 5, Y: 6}, b}})
	tc.Handle(TouchEvent{Kind: TouchEnd, Changed: []TouchPoint{{ID: 1, X: 6, Y: 6}}})
	tc.Handle(TouchEvent{Kind: TouchEnd})
	tc.Handle(TouchEvent{Kind: TouchCancel})

	want := []string{"down 3,4", "move 5,6", "up 6,6", "leave"}
	if !reflect.DeepEqual(r.calls, want) {
		t.Fatalf("calls %q", r.calls)
	}
}

func TestFloorDiv(t *testing.T) {
	tests := []struct{ a, b, want int }{
		{4, 2, 2}, {5, 2, 2}, {-1, 2, -1}, {-2, 2, -1}, {-3, 2, -2}, {0, 2, 0},
	}
	for _, tt := range tests {
		if got := floorDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("floorDiv(%d, %d) = %d", tt.a, tt.b, got)
		}
	}
}
