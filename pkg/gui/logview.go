package gui

import (
	"github.com/rivo/tview"
)

// LogView shows the move log in a tview.TextView.
type LogView struct {
	*tview.TextView
}

func NewLogView() *LogView {
	tv := tview.NewTextView().
		SetScrollable(true).
		SetWrap(false)
	tv.SetBorder(true).SetTitle(" Moves ")
	return &LogView{TextView: tv}
}

func (l *LogView) Clear() {
	l.TextView.Clear()
}

func (l *LogView) ScrollToEnd() {
	l.TextView.ScrollToEnd()
}
