package format

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/vsut/pkg/unit"
)

// Terminal renders the table report with colors and icons for a TTY.
// Columns follow Table, but names are padded by display width and the
// status column names the test's outcome ("Success" or "Failed").
type Terminal struct {
	base
	theme Theme
}

// NewTerminal creates a styled formatter for e.
func NewTerminal(e *unit.Engine, theme Theme, opts ...Option) *Terminal {
	return &Terminal{base: newBase(e, opts), theme: theme}
}

// Print writes the styled report followed by a summary line.
func (t *Terminal) Print() error {
	w := bufio.NewWriter(t.out)
	fmt.Fprintln(w, t.theme.Bold.Render("Case -> "+t.engine.Name()))

	rs := rows(t.engine)
	cols := measure(rs, runewidth.StringWidth)
	failed := 0
	for _, r := range rs {
		id := t.theme.Muted.Render(padLeft(fmt.Sprintf("[%d]", r.entry.ID), cols.id))
		name := t.theme.Primary.Render(padRight(r.entry.Name, cols.name))
		if !r.failed() {
			status := t.theme.Success.Render(t.theme.Icons.Pass + " " + Title(unit.Success.String()))
			fmt.Fprintf(w, "  %s %s %s\n", id, name, status)
			continue
		}
		failed++
		status := t.theme.Error.Render(t.theme.Icons.Fail + " " + Title(unit.Failed.String()))
		cell := t.theme.Muted.Render(failureCell(r.failure, cols.assertion))
		fmt.Fprintf(w, "  %s %s %s %s\n", id, name, status, cell)
	}

	summary := fmt.Sprintf("%d tests, %d failed", len(rs), failed)
	if failed > 0 {
		fmt.Fprintln(w, t.theme.Error.Render(summary))
	} else {
		fmt.Fprintln(w, t.theme.Success.Render(summary))
	}
	return w.Flush()
}

func padRight(s string, width int) string {
	if n := runewidth.StringWidth(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

func padLeft(s string, width int) string {
	if n := runewidth.StringWidth(s); n < width {
		return strings.Repeat(" ", width-n) + s
	}
	return s
}
