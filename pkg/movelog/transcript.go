package movelog

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	headerColor = color.New(color.Bold, color.FgGreen)
	numberColor = color.New(color.Faint)
	moveColor   = color.New(color.Bold)
)

// Transcript prints the move lines under a header, coloring move numbers and
// moves. Colors follow color.NoColor.
func Transcript(w io.Writer, header string, lines []string) error {
	if _, err := headerColor.Fprintln(w, header); err != nil {
		return err
	}
	if len(lines) == 0 {
		_, err := fmt.Fprintln(w, "no moves")
		return err
	}
	for _, line := range lines {
		num, moves := line, ""
		if i := strings.Index(line, ". "); i >= 0 {
			num, moves = line[:i+1], line[i+2:]
		}
		if _, err := numberColor.Fprint(w, num+" "); err != nil {
			return err
		}
		if _, err := moveColor.Fprintln(w, moves); err != nil {
			return err
		}
	}
	return nil
}
