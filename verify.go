package lawalgebra

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// checkEvery is how many tuples a law evaluates between cancellation checks.
const checkEvery = 256

// outcome is the evaluation of one bound law, shared by every structure
// that carries its requirement.
type outcome struct {
	passed         bool
	counterexample []Value
	checked        int
	panic          string
}

// Verify checks claim against domain and returns one LawResult per law of
// the claimed structure and, with IncludeImplied, of every implied structure.
//
// Law failures are data in the report, not errors. The error is non-nil only
// for sampling misconfiguration (including a generator that panics) or
// cancellation; in both cases the report still carries every law that
// finished.
//
// A forbidden capability passes when any one of its laws is refuted.
func Verify[T any](ctx context.Context, claim *Claim[T], domain Domain[T], opts Options) (*Report, error) {
	if claim == nil {
		return nil, &ClaimError{Structure: "<nil>", Type: "<nil>", Err: ErrUnknown}
	}
	if err := domain.validate(opts); err != nil {
		return nil, fmt.Errorf("verify %s as %s: %w", claim.typeName, claim.structure.Name, err)
	}
	opts = opts.withDefaults()
	log := opts.Logger.With("structure", claim.structure.Name, "type", claim.typeName)

	start := time.Now()
	report := &Report{
		ID:        uuid.New(),
		Structure: claim.structure.Name,
		Type:      claim.typeName,
		Seed:      opts.Seed,
		Samples:   opts.Samples,
	}

	structures := claimedStructures(claim, opts)

	// Each distinct requirement is evaluated once, however many structures
	// carry it.
	var (
		laws    []Law
		negated []Requirement
	)
	seen := make(map[string]*Capability)
	for _, s := range structures {
		for _, req := range s.Requirements {
			if cap, ok := seen[req.Key()]; ok {
				if cap != req.Capability {
					return nil, definitionErr(s.Name, ErrDuplicateName,
						"two different capabilities named %q", req.Capability.Name)
				}
				continue
			}
			seen[req.Key()] = req.Capability
			laws = append(laws, bindLaws(req)...)
			if req.Negated {
				negated = append(negated, req)
			}
		}
	}

	var (
		mu       sync.Mutex
		outcomes = make(map[string]outcome, len(laws))
	)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Workers)
	for _, law := range laws {
		g.Go(func() error {
			seq := domain.tuples(law.Template.Vars, opts, lawSeed(opts.Seed, law.Key))
			out, err := evaluate(gctx, law, claim.operands(law.Requirement), seq)
			if err != nil {
				return err
			}
			mu.Lock()
			outcomes[law.Key] = out
			mu.Unlock()
			return nil
		})
	}
	err := g.Wait()
	refuteAsWhole(negated, outcomes)

	for _, s := range structures {
		for _, req := range s.Requirements {
			for _, law := range bindLaws(req) {
				out, ok := outcomes[law.Key]
				if !ok && err != nil {
					continue // interrupted before the law finished
				}
				report.Results = append(report.Results, LawResult{
					Structure:      s.Name,
					Capability:     req.Capability.Name,
					Requirement:    req.Key(),
					Law:            law.Template.Name,
					Statement:      law.Statement,
					Negated:        req.Negated,
					Passed:         out.passed,
					Counterexample: out.counterexample,
					Checked:        out.checked,
					Panic:          out.panic,
				})
			}
		}
	}
	report.Sort()
	report.Duration = time.Since(start)

	for _, f := range report.Failures() {
		log.Debug("law failed", "structure", f.Structure, "law", f.Requirement+"/"+f.Law,
			"counterexample", f.Counterexample, "panic", f.Panic)
	}
	if opts.Metrics != nil {
		opts.Metrics.observe(report, outcomes)
	}

	if err != nil {
		log.Warn("verification interrupted", "completed", len(outcomes), "laws", len(laws), "err", err)
		return report, fmt.Errorf("verify %s as %s: %w", claim.typeName, claim.structure.Name, err)
	}

	if report.Passed() {
		log.Info("claim verified", "laws", len(report.Results), "structures", len(structures), "duration", report.Duration)
	} else {
		log.Warn("claim refuted", "failed", len(report.Failures()), "laws", len(report.Results))
	}
	return report, nil
}

// claimedStructures returns the claimed structure followed by the implied
// structures the catalog knows for it.
func claimedStructures[T any](claim *Claim[T], opts Options) []*Structure {
	structures := []*Structure{claim.structure}
	if !opts.IncludeImplied {
		return structures
	}
	// Implications only apply when the catalog owns this exact structure.
	if s, ok := opts.Catalog.Structure(claim.structure.Name); !ok || s != claim.structure {
		return structures
	}
	for _, w := range opts.Catalog.Implied(claim.structure.Name) {
		if claim.covers(w) {
			structures = append(structures, w)
		}
	}
	return structures
}

// refuteAsWhole settles forbidden capabilities. A capability is the
// conjunction of its laws, so one refuted law refutes it, and every law of
// the requirement passes with that witness. Laws that panicked stay failed.
func refuteAsWhole(negated []Requirement, outcomes map[string]outcome) {
	for _, req := range negated {
		laws := bindLaws(req)
		i := slices.IndexFunc(laws, func(l Law) bool { return outcomes[l.Key].passed })
		if i < 0 {
			continue
		}
		witness := outcomes[laws[i].Key].counterexample
		for _, l := range laws {
			out, ok := outcomes[l.Key]
			if ok && !out.passed && out.panic == "" {
				out.passed = true
				out.counterexample = witness
				outcomes[l.Key] = out
			}
		}
	}
}

// evaluate runs one law over the tuple sequence, stopping at the first
// decisive tuple. Law predicates recover their own panics, so a panic that
// reaches here came from the domain's generator.
func evaluate(ctx context.Context, law Law, ops Operands, tuples iter.Seq[[]Value]) (out outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			out, err = outcome{}, fmt.Errorf("%w: generator panicked: %v", ErrSampling, r)
		}
	}()

	negated := law.Requirement.Negated
	out = outcome{passed: !negated}

	for x := range tuples {
		if out.checked%checkEvery == 0 {
			if err := ctx.Err(); err != nil {
				return outcome{}, err
			}
		}
		out.checked++

		holds, panicked := holdsSafely(law.Template.Holds, ops, x)
		if panicked != "" {
			out.passed = false
			out.counterexample = slices.Clone(x)
			out.panic = panicked
			return out, nil
		}
		if !holds {
			// Refuted: a forbidden law passes with its witness.
			out.passed = negated
			out.counterexample = slices.Clone(x)
			return out, nil
		}
	}
	return out, nil
}

func holdsSafely(holds func(Operands, []Value) bool, ops Operands, x []Value) (ok bool, panicked string) {
	defer func() {
		if r := recover(); r != nil {
			panicked = fmt.Sprint(r)
		}
	}()
	return holds(ops, x), ""
}
