package unit

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// AssertionFailure is the value an assertion produces when its condition
// does not hold. Kind names the assertion (for example "AssertEqual").
type AssertionFailure struct {
	Kind    string
	Message string
}

func (f *AssertionFailure) Error() string {
	if f == nil {
		return "<nil>"
	}
	if f.Message == "" {
		return f.Kind
	}
	return f.Kind + ": " + f.Message
}

// Fail returns an assertion failure of the given kind.
func Fail(kind, message string) *AssertionFailure {
	return &AssertionFailure{Kind: kind, Message: message}
}

// Failf is Fail with a formatted message.
func Failf(kind, format string, args ...any) *AssertionFailure {
	return &AssertionFailure{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// FailureRecord pairs a test id with the assertion failure it raised.
type FailureRecord struct {
	ID      int
	Failure *AssertionFailure
}

// Phase identifies where in a test's lifecycle a fault occurred.
type Phase string

const (
	PhaseSetup    Phase = "setup"
	PhaseTest     Phase = "test"
	PhaseTeardown Phase = "teardown"
)

// FaultError aborts a run. It wraps whatever non-assertion error (or panic)
// a suite raised.
type FaultError struct {
	ID    int
	Name  string
	Phase Phase
	Err   error
}

func (e *FaultError) Error() string {
	return fmt.Sprintf("[%d] %s: %s fault: %v", e.ID, e.Name, e.Phase, e.Err)
}

func (e *FaultError) Unwrap() error { return e.Err }

// PanicError carries a recovered panic value that was not an assertion failure.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it was itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// OutcomeKind tags the result of invoking one operation.
type OutcomeKind int

const (
	Success OutcomeKind = iota
	Failed
	Fault
)

func (k OutcomeKind) String() string {
	switch k {
	case Success:
		return "success"
	case Failed:
		return "failed"
	case Fault:
		return "fault"
	default:
		return fmt.Sprintf("OutcomeKind(%d)", int(k))
	}
}

// Outcome is the tagged result of invoking a test operation or hook.
// Failure is set only for Failed, Err only for Fault.
type Outcome struct {
	Kind    OutcomeKind
	Failure *AssertionFailure
	Err     error
}

// invoke runs fn and classifies what it produced.
func invoke(fn func() error) (out Outcome) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if err, ok := r.(error); ok {
			var af *AssertionFailure
			if errors.As(err, &af) {
				out = classifyFailure(af)
				return
			}
		}
		out = Outcome{Kind: Fault, Err: &PanicError{Value: r, Stack: debug.Stack()}}
	}()

	err := fn()
	if err == nil {
		return Outcome{Kind: Success}
	}
	var af *AssertionFailure
	if errors.As(err, &af) {
		return classifyFailure(af)
	}
	return Outcome{Kind: Fault, Err: err}
}

// classifyFailure maps a typed-nil *AssertionFailure, as returned by an
// assertion helper whose condition held, to Success.
func classifyFailure(af *AssertionFailure) Outcome {
	if af == nil {
		return Outcome{Kind: Success}
	}
	return Outcome{Kind: Failed, Failure: af}
}
