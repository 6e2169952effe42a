package format

import (
	"bufio"
	"fmt"

	"github.com/dkoosis/vsut/pkg/unit"
)

// Table renders a column-aligned plain text report. Output is byte-stable
// for a given engine state, and the leading tab on every test row is part
// of that format:
//
//	Case -> MathSuite
//		[0] testA -> Ok
//		[1] testB -> Fail | [AssertEqual] -> expected 1 got 2
type Table struct {
	base
}

// NewTable creates a table formatter for e.
func NewTable(e *unit.Engine, opts ...Option) *Table {
	return &Table{base: newBase(e, opts)}
}

// Print writes the report.
func (t *Table) Print() error {
	w := bufio.NewWriter(t.out)
	fmt.Fprintf(w, "Case -> %s\n", t.engine.Name())

	rs := rows(t.engine)
	cols := measure(rs, func(s string) int { return len(s) })
	for _, r := range rs {
		id := fmt.Sprintf("[%d]", r.entry.ID)
		if !r.failed() {
			fmt.Fprintf(w, "\t%*s %-*s -> Ok\n", cols.id, id, cols.name, r.entry.Name)
			continue
		}
		fmt.Fprintf(w, "\t%*s %-*s -> Fail | %s\n", cols.id, id, cols.name, r.entry.Name,
			failureCell(r.failure, cols.assertion))
	}
	return w.Flush()
}

// failureCell renders "[Kind] -> message", padding the kind column only
// when a message follows it.
func failureCell(f *unit.AssertionFailure, width int) string {
	kind := "[" + f.Kind + "]"
	if f.Message == "" {
		return kind
	}
	return fmt.Sprintf("%-*s -> %s", width, kind, f.Message)
}
