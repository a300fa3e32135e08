// Package lawalgebra states algebraic laws precisely and checks concrete types
// against them.
//
// # Overview
//
// A Go type with an Add method is not a monoid because it compiles. It is a
// monoid when Add is associative and Zero is an identity for it. lawalgebra
// makes those laws first-class values: small capabilities (associativity,
// identity, absorption, ...) compose into named structures (Monoid, Ring,
// BooleanAlgebra, ...), and a verifier evaluates every law of a claimed
// structure over explicit or sampled values.
//
// It is not a theorem prover. A finite domain that covers the whole carrier
// gives exact answers; a sampled domain gives evidence.
//
// # Architecture
//
// The package components, leaves first:
//
//   - roles.go       - Operation roles (addition, join, top, ...) and their arity
//   - capability.go  - Capabilities: parameterized law predicates over slots
//   - structure.go   - Requirements and validated structures
//   - catalog.go     - Registration API and the frozen standard catalog
//   - standard.go    - Built-in groups, rings and lattices
//   - derivation.go  - Implied structures by capability-set inclusion
//   - yaml.go        - Structure definitions loaded from YAML
//   - claim.go       - Binding a carrier's functions to a structure's roles
//   - interfaces.go  - Method-set constraints and their bindings
//   - domain.go      - Explicit and sampled value domains
//   - verify.go      - Concurrent law evaluation, structured reports
//   - metrics.go     - Prometheus collectors for verification runs
//   - certificate.go - In-process registry of verified types
//   - assertions.go  - Test helpers
//
// # Quick Start
//
// Claim that int with + and 0 is a Monoid, and check it:
//
//	claim, err := lawalgebra.NewClaim(
//	    lawalgebra.MustStructure(lawalgebra.NameMonoid),
//	    lawalgebra.Equal[int](),
//	    lawalgebra.Binary(lawalgebra.Addition, func(a, b int) int { return a + b }),
//	    lawalgebra.Element(lawalgebra.Zero, 0),
//	)
//	if err != nil {
//	    log.Fatal(err) // Malformed claim: missing role, wrong arity, no equivalence
//	}
//
//	report, err := lawalgebra.Verify(ctx, claim, lawalgebra.Ints(1000), lawalgebra.DefaultOptions())
//	if err != nil {
//	    log.Fatal(err) // Sampling misconfiguration or cancellation
//	}
//
//	for _, f := range report.Failures() {
//	    fmt.Println(f) // FAIL Monoid identity(addition,zero): a + 0 = a with [3]
//	}
//
// # Structures
//
// A structure is a set of requirements, each binding one capability to roles:
//
//	Monoid = closed(addition) + associative(addition) + identity(addition, zero)
//	Group  = Monoid + invertible(addition, zero, negation)
//
// Definitions are validated when registered. Wrong arity, a role used with
// two kinds, or a capability both required and forbidden are definition
// errors; they never surface at check time:
//
//	_, err := catalog.DefineStructure("Broken", "",
//	    lawalgebra.Require(lawalgebra.Identity, lawalgebra.Addition, lawalgebra.Zero),
//	    lawalgebra.Forbid(lawalgebra.Identity, lawalgebra.Addition, lawalgebra.Zero),
//	)
//	errors.Is(err, lawalgebra.ErrInconsistent) // true
//
// # Derivations
//
// Structure S implies W when W's requirements are a strict subset of S's.
// The graph is recomputed on every registration; two structures with the same
// capability set are refused rather than forming a cycle. Verify checks the
// implied structures too (Options.IncludeImplied), so a Ring claim also
// reports AbelianGroup, MultiplicativeMonoid, Semiring and the rest.
//
// # Compile-time composition
//
// Carriers that implement operations as methods can use the generic
// interfaces (AdditiveGroup, Ring, Lattice, BooleanAlgebra, ...) as type
// constraints and derive their bindings:
//
//	claim, err := lawalgebra.NewClaim(
//	    lawalgebra.MustStructure(lawalgebra.NameBooleanLogic),
//	    lawalgebra.Equal[Bool](),
//	    lawalgebra.BooleanAlgebraBindings[Bool]()...,
//	)
//
// # Testing
//
//	func TestModIntIsRing(t *testing.T) {
//	    report, err := lawalgebra.Verify(ctx, claim, lawalgebra.Values(all...), lawalgebra.DefaultOptions())
//	    require.NoError(t, err)
//	    lawalgebra.AssertConforms(t, report)
//	}
//
// # Determinism
//
// Each law samples from its own generator seeded with Options.Seed and the
// law's key, so results do not depend on worker scheduling. Same claim, same
// seed, same sample count: identical results after Report.Sort.
package lawalgebra
