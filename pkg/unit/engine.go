package unit

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"slices"
	"strings"
)

// Test is a named, zero-argument test operation.
type Test struct {
	Name string
	Fn   func() error
}

// Suite is implemented by test cases that register their operations
// explicitly. Registration order becomes id order.
type Suite interface {
	Tests() []Test
}

// SetUpper is implemented by suites that need per-test setup.
type SetUpper interface {
	Setup() error
}

// TearDowner is implemented by suites that need per-test teardown.
// Teardown is skipped for a test whose setup or body failed.
type TearDowner interface {
	Teardown() error
}

// Named overrides the suite name reported by [Engine.Name].
type Named interface {
	SuiteName() string
}

// TestEntry is a discovered test operation and its id.
type TestEntry struct {
	ID   int
	Name string
}

var (
	ErrInvalidTest   = errors.New("invalid test registration")
	ErrDuplicateTest = errors.New("duplicate test name")
	ErrAlreadyRun    = errors.New("engine already run")
)

// Option configures an Engine.
type Option func(*Engine)

// WithTrace writes a debug line for discovery and every executed phase to w.
func WithTrace(w io.Writer) Option {
	return func(e *Engine) { e.trace = w }
}

// Engine discovers the tests of one suite and executes them in id order.
type Engine struct {
	suite    any
	name     string
	tests    []TestEntry
	fns      []func() error
	failures []FailureRecord
	ran      bool
	trace    io.Writer
}

// New discovers the test operations of suite. Discovery happens exactly
// once; the resulting id assignment never changes.
func New(suite any, opts ...Option) (*Engine, error) {
	if suite == nil {
		return nil, fmt.Errorf("%w: nil suite", ErrInvalidTest)
	}
	e := &Engine{suite: suite, name: suiteName(suite)}
	for _, opt := range opts {
		opt(e)
	}

	var found []Test
	if s, ok := suite.(Suite); ok {
		found = s.Tests()
	} else {
		found = reflectTests(suite)
	}

	seen := make(map[string]bool, len(found))
	for _, t := range found {
		if !hasTestPrefix(t.Name) {
			e.debugf("skipping %q: no test prefix", t.Name)
			continue
		}
		if t.Fn == nil {
			return nil, fmt.Errorf("%w: %s has no function", ErrInvalidTest, t.Name)
		}
		if seen[t.Name] {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTest, t.Name)
		}
		seen[t.Name] = true
		e.tests = append(e.tests, TestEntry{ID: len(e.tests), Name: t.Name})
		e.fns = append(e.fns, t.Fn)
	}
	e.debugf("discovered %d tests in %s", len(e.tests), e.name)
	return e, nil
}

// Run executes every test in id order. An assertion failure from setup, the
// test body or teardown is recorded and the run continues with the next
// test; teardown is skipped when setup or the body failed. Any other error
// aborts the run and is returned as a *FaultError.
func (e *Engine) Run() error {
	if e.ran {
		return ErrAlreadyRun
	}
	e.ran = true

	setup := func() error { return nil }
	if s, ok := e.suite.(SetUpper); ok {
		setup = s.Setup
	}
	teardown := func() error { return nil }
	if s, ok := e.suite.(TearDowner); ok {
		teardown = s.Teardown
	}

	for _, t := range e.tests {
		e.debugf("[%d] %s: setup", t.ID, t.Name)
		switch out := invoke(setup); out.Kind {
		case Failed:
			e.record(t, PhaseSetup, out.Failure)
			continue
		case Fault:
			return e.fault(t, PhaseSetup, out.Err)
		}

		e.debugf("[%d] %s: test", t.ID, t.Name)
		switch out := invoke(e.fns[t.ID]); out.Kind {
		case Failed:
			e.record(t, PhaseTest, out.Failure)
			continue
		case Fault:
			return e.fault(t, PhaseTest, out.Err)
		}

		e.debugf("[%d] %s: teardown", t.ID, t.Name)
		switch out := invoke(teardown); out.Kind {
		case Failed:
			e.record(t, PhaseTeardown, out.Failure)
		case Fault:
			return e.fault(t, PhaseTeardown, out.Err)
		}
	}
	return nil
}

// record appends the failure for t. Each test stops at its first failure,
// so a test contributes at most one record.
func (e *Engine) record(t TestEntry, phase Phase, f *AssertionFailure) {
	e.debugf("[%d] %s: %s failed %s", t.ID, t.Name, phase, f.Kind)
	e.failures = append(e.failures, FailureRecord{ID: t.ID, Failure: f})
}

func (e *Engine) fault(t TestEntry, phase Phase, err error) error {
	e.debugf("[%d] %s: %s fault: %v", t.ID, t.Name, phase, err)
	return &FaultError{ID: t.ID, Name: t.Name, Phase: phase, Err: err}
}

// Name returns the suite's type name, or its SuiteName if it implements Named.
func (e *Engine) Name() string { return e.name }

// Tests returns a copy of the discovered tests in id order.
func (e *Engine) Tests() []TestEntry { return slices.Clone(e.tests) }

// Failures returns a copy of the recorded failures in execution order.
func (e *Engine) Failures() []FailureRecord { return slices.Clone(e.failures) }

// FailureFor returns the failure recorded for id, if any.
func (e *Engine) FailureFor(id int) (FailureRecord, bool) {
	for _, f := range e.failures {
		if f.ID == id {
			return f, true
		}
	}
	return FailureRecord{}, false
}

// Passed reports whether the engine has run and recorded no failures.
func (e *Engine) Passed() bool {
	return e.ran && len(e.failures) == 0
}

func (e *Engine) debugf(format string, args ...any) {
	if e.trace == nil {
		return
	}
	fmt.Fprintf(e.trace, "[DEBUG vsut] "+format+"\n", args...)
}

// hasTestPrefix accepts both "testX" and the exported "TestX".
func hasTestPrefix(name string) bool {
	return strings.HasPrefix(name, "test") || strings.HasPrefix(name, "Test")
}

func suiteName(suite any) string {
	if n, ok := suite.(Named); ok {
		return n.SuiteName()
	}
	t := reflect.TypeOf(suite)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// reflectTests lists exported Test* methods with signature func() or
// func() error. reflect orders a method set lexicographically.
func reflectTests(suite any) []Test {
	v := reflect.ValueOf(suite)
	typ := v.Type()
	var tests []Test
	for i := 0; i < typ.NumMethod(); i++ {
		m := typ.Method(i)
		if !strings.HasPrefix(m.Name, "Test") {
			continue
		}
		fn := v.Method(i)
		ft := fn.Type()
		if ft.NumIn() != 0 {
			continue
		}
		switch {
		case ft.NumOut() == 0:
			f := fn.Interface().(func())
			tests = append(tests, Test{Name: m.Name, Fn: func() error { f(); return nil }})
		case ft.NumOut() == 1 && ft.Out(0) == errorType:
			tests = append(tests, Test{Name: m.Name, Fn: fn.Interface().(func() error)})
		}
	}
	return tests
}
