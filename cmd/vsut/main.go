// vsut runs a test suite and renders a pass/fail report.
//
// It takes no flags. Report settings come from .vsut.yaml and the
// environment (see internal/config):
//
//	VSUT_FORMAT=json vsut
//	NO_COLOR=1 vsut
//
// Exit codes: 0 all tests passed, 1 assertion failures, 2 the run aborted
// on a fault.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dkoosis/vsut/internal/config"
	"github.com/dkoosis/vsut/internal/version"
	"github.com/dkoosis/vsut/pkg/format"
	"github.com/dkoosis/vsut/pkg/unit"
)

func main() {
	os.Exit(run(&StackSuite{}, config.Load(), os.Stdout, os.Stderr))
}

func run(suite any, cfg *config.Config, stdout, stderr io.Writer) int {
	var opts []unit.Option
	if cfg.Debug {
		fmt.Fprintf(stderr, "[DEBUG vsut] version %s\n", version.String())
		opts = append(opts, unit.WithTrace(stderr))
	}

	e, err := unit.New(suite, opts...)
	if err != nil {
		fmt.Fprintf(stderr, "vsut: %v\n", err)
		return 2
	}

	if err := e.Run(); err != nil {
		var fe *unit.FaultError
		if errors.As(err, &fe) {
			fmt.Fprintf(stderr, "vsut: run aborted at [%d] %s: %s fault: %v\n",
				fe.ID, fe.Name, format.Title(string(fe.Phase)), fe.Err)
		} else {
			fmt.Fprintf(stderr, "vsut: %v\n", err)
		}
		return 2
	}

	if err := selectFormatter(cfg, e, stdout).Print(); err != nil {
		fmt.Fprintf(stderr, "vsut: writing report: %v\n", err)
		return 2
	}
	if !e.Passed() {
		return 1
	}
	return 0
}

// selectFormatter maps the configured format to a formatter writing to w.
func selectFormatter(cfg *config.Config, e *unit.Engine, w io.Writer) format.Formatter {
	out := format.WithOutput(w)
	theme := format.ThemeByName(cfg.Theme)
	if cfg.NoColor {
		theme = format.MonoTheme()
	}

	switch cfg.Format {
	case config.FormatTable:
		return format.NewTable(e, out)
	case config.FormatTerminal:
		return format.NewTerminal(e, theme, out)
	case config.FormatJSON:
		return format.NewJSON(e, out)
	case config.FormatNone:
		return format.NewNop(e, out)
	}
	if isTTYWriter(w) && !cfg.NoColor {
		return format.NewTerminal(e, theme, out)
	}
	return format.NewTable(e, out)
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
