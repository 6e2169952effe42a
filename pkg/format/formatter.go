// Package format renders the results of a unit.Engine.
//
// Formatters read only the engine's public state and should be used after
// Run has returned.
package format

import (
	"io"
	"os"

	"github.com/dkoosis/vsut/pkg/unit"
)

// Formatter renders an engine's results to its output stream.
type Formatter interface {
	Print() error
}

// Option configures a formatter.
type Option func(*base)

// WithOutput sets the stream a formatter writes to. Default is os.Stdout.
func WithOutput(w io.Writer) Option {
	return func(b *base) { b.out = w }
}

// base holds what every formatter needs.
type base struct {
	engine *unit.Engine
	out    io.Writer
}

func newBase(e *unit.Engine, opts []Option) base {
	b := base{engine: e, out: os.Stdout}
	for _, opt := range opts {
		opt(&b)
	}
	return b
}

// Nop is the base formatter. It prints nothing.
type Nop struct {
	base
}

// NewNop creates a formatter that renders nothing.
func NewNop(e *unit.Engine, opts ...Option) *Nop {
	return &Nop{base: newBase(e, opts)}
}

// Print does nothing.
func (n *Nop) Print() error { return nil }

// row is one rendered test line, shared by the formatters.
type row struct {
	entry   unit.TestEntry
	failure *unit.AssertionFailure
}

func (r row) failed() bool { return r.failure != nil }

// rows joins tests with their failures in id order.
func rows(e *unit.Engine) []row {
	byID := make(map[int]*unit.AssertionFailure, len(e.Failures()))
	for _, f := range e.Failures() {
		byID[f.ID] = f.Failure
	}
	out := make([]row, 0, len(e.Tests()))
	for _, t := range e.Tests() {
		out = append(out, row{entry: t, failure: byID[t.ID]})
	}
	return out
}

// digits returns the number of decimal digits in n (n >= 0).
func digits(n int) int {
	d := 1
	for n >= 10 {
		n /= 10
		d++
	}
	return d
}

// widths are the column widths of a table report.
type widths struct {
	id, name, assertion int
}

// measure computes column widths from the current engine state. nameLen
// lets callers measure names by display width instead of bytes.
func measure(rs []row, nameLen func(string) int) widths {
	var w widths
	if len(rs) == 0 {
		return w
	}
	w.id = digits(rs[len(rs)-1].entry.ID) + 2
	for _, r := range rs {
		if n := nameLen(r.entry.Name); n > w.name {
			w.name = n
		}
		if r.failed() {
			if n := len(r.failure.Kind) + 2; n > w.assertion {
				w.assertion = n
			}
		}
	}
	return w
}
