package lawalgebra

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LawResult is the outcome of checking one law of one requirement.
type LawResult struct {
	Structure   string // Declared or implied structure the law belongs to
	Capability  string
	Requirement string // Requirement key, e.g. "identity(addition,zero)"
	Law         string
	Statement   string // Law rendered with role symbols
	Negated     bool
	Passed      bool
	// Counterexample holds the falsifying tuple of a failed law. For a passed
	// negated law it holds the refuting witness.
	Counterexample []Value
	Checked        int    // Tuples evaluated
	Panic          string // Set when an operation panicked
}

func (r LawResult) String() string {
	status := "PASS"
	if !r.Passed {
		status = "FAIL"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s: %s", status, r.Structure, r.Requirement, r.Statement)
	if r.Negated {
		b.WriteString(" (forbidden)")
	}
	if len(r.Counterexample) > 0 {
		fmt.Fprintf(&b, " with %v", r.Counterexample)
	}
	if r.Panic != "" {
		fmt.Fprintf(&b, " panic: %s", r.Panic)
	}
	return b.String()
}

// Report is the structured result of one Verify call.
type Report struct {
	ID        uuid.UUID
	Structure string
	Type      string
	Seed      int64
	Samples   int
	Results   []LawResult
	Duration  time.Duration
}

// Passed reports whether every law passed. An empty report never passes.
func (r *Report) Passed() bool {
	if len(r.Results) == 0 {
		return false
	}
	for _, res := range r.Results {
		if !res.Passed {
			return false
		}
	}
	return true
}

// Failures returns the failed laws.
func (r *Report) Failures() []LawResult {
	var out []LawResult
	for _, res := range r.Results {
		if !res.Passed {
			out = append(out, res)
		}
	}
	return out
}

// For returns the results attributed to one structure.
func (r *Report) For(structure string) []LawResult {
	var out []LawResult
	for _, res := range r.Results {
		if res.Structure == structure {
			out = append(out, res)
		}
	}
	return out
}

// Structures returns the sorted names of structures with results.
func (r *Report) Structures() []string {
	var names []string
	for _, res := range r.Results {
		names = append(names, res.Structure)
	}
	slices.Sort(names)
	return slices.Compact(names)
}

// Sort orders results by structure, requirement and law.
func (r *Report) Sort() {
	slices.SortFunc(r.Results, func(a, b LawResult) int {
		return cmp.Or(
			cmp.Compare(a.Structure, b.Structure),
			cmp.Compare(a.Requirement, b.Requirement),
			cmp.Compare(a.Law, b.Law),
		)
	})
}

func (r *Report) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s as %s: %d laws, %d failed\n", r.Type, r.Structure, len(r.Results), len(r.Failures()))
	for _, res := range r.Results {
		b.WriteString("  ")
		b.WriteString(res.String())
		b.WriteByte('\n')
	}
	return b.String()
}
