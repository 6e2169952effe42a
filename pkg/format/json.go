package format

import (
	"encoding/json"

	"github.com/dkoosis/vsut/pkg/unit"
)

// JSON renders results as structured JSON for automation.
type JSON struct {
	base
}

// NewJSON creates a JSON formatter for e.
func NewJSON(e *unit.Engine, opts ...Option) *JSON {
	return &JSON{base: newBase(e, opts)}
}

// jsonReportVersion is bumped on incompatible changes to the document shape.
const jsonReportVersion = "1.0"

type jsonReport struct {
	Version string      `json:"version"`
	Suite   string      `json:"suite"`
	Tests   []jsonTest  `json:"tests"`
	Summary jsonSummary `json:"summary"`
}

type jsonTest struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Status    string `json:"status"`
	Assertion string `json:"assertion,omitempty"`
	Message   string `json:"message,omitempty"`
}

type jsonSummary struct {
	Total  int `json:"total"`
	Passed int `json:"passed"`
	Failed int `json:"failed"`
}

// Print writes one indented JSON document.
func (j *JSON) Print() error {
	rs := rows(j.engine)
	report := jsonReport{
		Version: jsonReportVersion,
		Suite:   j.engine.Name(),
		Tests:   make([]jsonTest, 0, len(rs)),
	}
	for _, r := range rs {
		jt := jsonTest{ID: r.entry.ID, Name: r.entry.Name, Status: "ok"}
		if r.failed() {
			jt.Status = "fail"
			jt.Assertion = r.failure.Kind
			jt.Message = r.failure.Message
			report.Summary.Failed++
		} else {
			report.Summary.Passed++
		}
		report.Tests = append(report.Tests, jt)
	}
	report.Summary.Total = len(rs)

	enc := json.NewEncoder(j.out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
