package lawalgebra

import (
	"strings"
	"testing"
)

// AssertConforms fails the test for every failed law in the report.
//
// Typical use:
//
//	report, err := lawalgebra.Verify(ctx, claim, domain, lawalgebra.DefaultOptions())
//	require.NoError(t, err)
//	lawalgebra.AssertConforms(t, report)
func AssertConforms(t testing.TB, r *Report) {
	t.Helper()

	if r == nil {
		t.Fatalf("no report")
		return
	}
	if len(r.Results) == 0 {
		t.Errorf("%s as %s: no laws were checked", r.Type, r.Structure)
		return
	}

	failures := r.Failures()
	if len(failures) > 0 {
		var lines []string
		for _, f := range failures {
			lines = append(lines, "  "+f.String())
		}
		t.Errorf("%s does not conform to %s:\n%s", r.Type, r.Structure, strings.Join(lines, "\n"))
		return
	}

	t.Logf("✓ %s conforms to %s: %d laws over %d structures", r.Type, r.Structure, len(r.Results), len(r.Structures()))
}

// AssertViolates fails the test unless some law of the named capability
// failed, and returns the failing results.
func AssertViolates(t testing.TB, r *Report, capability string) []LawResult {
	t.Helper()

	if r == nil {
		t.Fatalf("no report")
		return nil
	}

	var hits []LawResult
	for _, f := range r.Failures() {
		if f.Capability == capability {
			hits = append(hits, f)
		}
	}
	if len(hits) == 0 {
		t.Errorf("%s as %s: expected %s to fail, it held", r.Type, r.Structure, capability)
		return nil
	}

	for _, h := range hits {
		t.Logf("✓ %s violated: %s with %v", capability, h.Statement, h.Counterexample)
	}
	return hits
}

// LogReport writes every law result to the test log.
func LogReport(t testing.TB, r *Report) {
	t.Helper()

	t.Logf("\n=== %s as %s (seed %d, %d samples) ===", r.Type, r.Structure, r.Seed, r.Samples)
	for _, s := range r.Structures() {
		t.Logf("%s:", s)
		for _, res := range r.For(s) {
			mark := "✓"
			if !res.Passed {
				mark = "✗"
			}
			t.Logf("  %s %-40s %s (%d tuples)", mark, res.Requirement+"/"+res.Law, res.Statement, res.Checked)
		}
	}
}
