package format

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoosis/vsut/pkg/unit"
)

// listSuite registers the given tests in order.
type listSuite struct {
	tests []unit.Test
}

func (s *listSuite) Tests() []unit.Test { return s.tests }

func (s *listSuite) add(name string, err error) *listSuite {
	s.tests = append(s.tests, unit.Test{Name: name, Fn: func() error { return err }})
	return s
}

// runEngine builds and runs an engine over s.
func runEngine(t *testing.T, s any) *unit.Engine {
	t.Helper()
	e, err := unit.New(s)
	require.NoError(t, err)
	require.NoError(t, e.Run())
	return e
}

func renderTable(t *testing.T, e *unit.Engine) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, NewTable(e, WithOutput(&buf)).Print())
	return buf.String()
}

func scenarioSuite() *listSuite {
	return (&listSuite{}).
		add("testA", nil).
		add("testB", unit.Fail("AssertEqual", "expected 1 got 2")).
		add("testC", nil)
}

func TestTable_RendersScenarioReport(t *testing.T) {
	e := runEngine(t, scenarioSuite())

	want := "Case -> listSuite\n" +
		"\t[0] testA -> Ok\n" +
		"\t[1] testB -> Fail | [AssertEqual] -> expected 1 got 2\n" +
		"\t[2] testC -> Ok\n"
	assert.Equal(t, want, renderTable(t, e))
}

func TestTable_RendersOnlyOk_When_NothingFails(t *testing.T) {
	e := runEngine(t, (&listSuite{}).add("testOne", nil).add("testTwo", nil))

	out := renderTable(t, e)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	require.Len(t, lines, 3)
	for _, l := range lines[1:] {
		assert.True(t, strings.HasSuffix(l, "-> Ok"), "line %q", l)
	}
	assert.NotContains(t, out, "Fail")
}

func TestTable_OmitsMessage_When_FailureHasNone(t *testing.T) {
	e := runEngine(t, (&listSuite{}).
		add("testShort", unit.Fail("AssertTrue", "")).
		add("testOther", unit.Fail("AssertEqual", "1 != 2")))

	want := "Case -> listSuite\n" +
		"\t[0] testShort -> Fail | [AssertTrue]\n" +
		"\t[1] testOther -> Fail | [AssertEqual] -> 1 != 2\n"
	assert.Equal(t, want, renderTable(t, e))
}

func TestTable_PadsColumnsToWidestValue(t *testing.T) {
	e := runEngine(t, (&listSuite{}).
		add("testA", unit.Fail("AssertTrue", "was false")).
		add("testLongerName", unit.Fail("AssertEqual", "a != b")))

	want := "Case -> listSuite\n" +
		"\t[0] testA          -> Fail | [AssertTrue]  -> was false\n" +
		"\t[1] testLongerName -> Fail | [AssertEqual] -> a != b\n"
	assert.Equal(t, want, renderTable(t, e))
}

func TestTable_AlignsIDColumn_When_IDsGainDigits(t *testing.T) {
	tests := []struct {
		n       int
		idWidth int
	}{
		{1, 3},
		{10, 3},
		{11, 4},
		{123, 5},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("N=%d", tt.n), func(t *testing.T) {
			s := &listSuite{}
			for i := 0; i < tt.n; i++ {
				s.add(fmt.Sprintf("test%03d", i), nil)
			}
			e := runEngine(t, s)

			lines := strings.Split(strings.TrimSuffix(renderTable(t, e), "\n"), "\n")
			require.Len(t, lines, tt.n+1)
			for i, l := range lines[1:] {
				id := fmt.Sprintf("[%d]", i)
				wantPrefix := "\t" + strings.Repeat(" ", tt.idWidth-len(id)) + id + " "
				assert.True(t, strings.HasPrefix(l, wantPrefix), "line %q want prefix %q", l, wantPrefix)
				assert.Equal(t, len(lines[1]), len(l), "rows must have equal width")
			}
		})
	}
}

func TestTable_PrintsHeaderOnly_When_SuiteHasNoTests(t *testing.T) {
	e := runEngine(t, &listSuite{})
	assert.Equal(t, "Case -> listSuite\n", renderTable(t, e))
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestTable_ReturnsWriteError(t *testing.T) {
	e := runEngine(t, scenarioSuite())
	err := NewTable(e, WithOutput(failingWriter{})).Print()
	assert.EqualError(t, err, "disk full")
}

func TestNop_PrintsNothing(t *testing.T) {
	e := runEngine(t, scenarioSuite())
	var buf bytes.Buffer
	var f Formatter = NewNop(e, WithOutput(&buf))
	require.NoError(t, f.Print())
	assert.Zero(t, buf.Len())
}

func TestDigits(t *testing.T) {
	for n, want := range map[int]int{0: 1, 9: 1, 10: 2, 99: 2, 122: 3, 1000: 4} {
		assert.Equal(t, want, digits(n), "digits(%d)", n)
	}
}
