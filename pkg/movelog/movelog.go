// Package movelog keeps the numbered move list shown next to a board.
package movelog

import (
	"fmt"
	"io"
	"strings"
)

// delimiter separates white's and black's half-moves on one line.
const delimiter = "  "

// View is where the log is written.
type View interface {
	io.Writer
	Clear()
	ScrollToEnd()
}

// Logger pairs half-moves into numbered lines: "1. e4  e5".
type Logger struct {
	view      View
	moveNum   int
	whiteTurn bool
	lines     []string
}

func NewLogger(v View) *Logger {
	return &Logger{view: v, whiteTurn: true}
}

// LogMove appends one half-move. White starts a new numbered line, black
// completes the current one.
func (l *Logger) LogMove(text string) {
	if l.whiteTurn || len(l.lines) == 0 {
		l.moveNum++
		line := fmt.Sprintf("%d. %s", l.moveNum, text)
		if len(l.lines) > 0 {
			fmt.Fprint(l.view, "\n")
		}
		fmt.Fprint(l.view, line)
		l.lines = append(l.lines, line)
		l.view.ScrollToEnd()
	} else {
		fmt.Fprint(l.view, delimiter+text)
		l.lines[len(l.lines)-1] += delimiter + text
	}
	l.whiteTurn = !l.whiteTurn
}

// Clear empties the log and starts again from move 1.
func (l *Logger) Clear() {
	l.moveNum = 0
	l.whiteTurn = true
	l.lines = nil
	l.view.Clear()
}

func (l *Logger) ScrollToBottom() {
	l.view.ScrollToEnd()
}

// Lines returns a copy of the log lines.
func (l *Logger) Lines() []string {
	return append([]string(nil), l.lines...)
}

// BufferView is an in-memory View.
type BufferView struct {
	strings.Builder
	Scrolls int
}

func (b *BufferView) Clear() {
	b.Reset()
}

func (b *BufferView) ScrollToEnd() {
	b.Scrolls++
}
