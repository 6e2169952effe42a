package unit

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssertionFailure_Error(t *testing.T) {
	assert.Equal(t, "AssertEqual: expected 1 got 2", Fail("AssertEqual", "expected 1 got 2").Error())
	assert.Equal(t, "AssertTrue", Fail("AssertTrue", "").Error())
	assert.Equal(t, "AssertLen: want 3", Failf("AssertLen", "want %d", 3).Error())
	assert.Equal(t, "<nil>", (*AssertionFailure)(nil).Error())
}

func TestInvoke_ClassifiesOutcomes(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name     string
		fn       func() error
		wantKind OutcomeKind
	}{
		{"nil error", func() error { return nil }, Success},
		{"assertion failure", func() error { return Fail("AssertEqual", "") }, Failed},
		{"wrapped assertion failure", func() error { return fmt.Errorf("ctx: %w", Fail("AssertEqual", "")) }, Failed},
		{"panicked assertion failure", func() error { panic(Fail("AssertEqual", "")) }, Failed},
		{"typed-nil assertion failure", func() error { var af *AssertionFailure; return af }, Success},
		{"panicked typed-nil assertion failure", func() error { panic((*AssertionFailure)(nil)) }, Success},
		{"plain error", func() error { return boom }, Fault},
		{"panicked string", func() error { panic("oops") }, Fault},
		{"panicked error", func() error { panic(boom) }, Fault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := invoke(tt.fn)
			assert.Equal(t, tt.wantKind, out.Kind)
			switch tt.wantKind {
			case Failed:
				require.NotNil(t, out.Failure)
				assert.Nil(t, out.Err)
			case Fault:
				assert.Nil(t, out.Failure)
				assert.Error(t, out.Err)
			default:
				assert.Nil(t, out.Failure)
				assert.NoError(t, out.Err)
			}
		})
	}
}

func TestPanicError_UnwrapsErrorValues(t *testing.T) {
	boom := errors.New("boom")
	out := invoke(func() error { panic(boom) })
	assert.ErrorIs(t, out.Err, boom)
	assert.Equal(t, "panic: boom", out.Err.Error())
}

func TestFaultError_Error(t *testing.T) {
	err := &FaultError{ID: 3, Name: "testX", Phase: PhaseTeardown, Err: errors.New("closed")}
	assert.Equal(t, "[3] testX: teardown fault: closed", err.Error())
}

func TestOutcomeKind_String(t *testing.T) {
	assert.Equal(t, "success", Success.String())
	assert.Equal(t, "failed", Failed.String())
	assert.Equal(t, "fault", Fault.String())
	assert.Equal(t, "OutcomeKind(9)", OutcomeKind(9).String())
}
