package lawalgebra

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// ExampleVerify shows a refuted claim: subtraction is not associative.
func ExampleVerify() {
	claim := MustClaim(MustStructure(NameSemigroup), Equal[float64](),
		Binary(Addition, func(a, b float64) float64 { return a - b }),
	)

	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	report, err := Verify(context.Background(), claim, Values(1.0, 2.0, 3.0), opts)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, f := range report.Failures() {
		fmt.Println(f)
	}
	// Output:
	// FAIL Semigroup associative(addition): (a + b) + c = a + (b + c) with [1 1 1]
}

// ExampleCatalog_DefineStructure shows a contradictory definition rejected
// at registration.
func ExampleCatalog_DefineStructure() {
	c := NewStandardCatalog()
	_, err := c.DefineStructure("Impossible", "",
		Require(Identity, Addition, Zero),
		Forbid(Identity, Addition, Zero),
	)
	fmt.Println(errors.Is(err, ErrInconsistent))
	// Output:
	// true
}

// ExampleCatalog_Covers lists what a Group directly implies.
func ExampleCatalog_Covers() {
	for _, e := range Standard().Covers() {
		if e.From == NameGroup {
			fmt.Println(e)
		}
	}
	// Output:
	// Group ⇒ Monoid
}

// ExampleCertifier demonstrates checking values at an API boundary.
func ExampleCertifier() {
	// Setup: register verified types (done once at startup)
	certifier := NewCertifier()
	certifier.Register(Certificate{
		TypeName:   "int",
		Structures: []string{NameMonoid, NameSemigroup, NameMagma},
	})

	// Runtime: reject values whose type was never verified as a Group
	fmt.Println(certifier.Require(42, NameMonoid))
	fmt.Println(errors.Is(certifier.Require(42, NameGroup), ErrNotCertified))
	// Output:
	// <nil>
	// true
}
