package lawalgebra

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDerivations_Standard(t *testing.T) {
	c := Standard()

	implied := []struct{ from, to string }{
		{NameGroup, NameMonoid},
		{NameMonoid, NameSemigroup},
		{NameSemigroup, NameMagma},
		{NameGroup, NameMagma},
		{NameAbelianGroup, NameCommutativeMonoid},
		{NameRing, NameAbelianGroup},
		{NameRing, NameMultiplicativeMonoid},
		{NameRing, NameSemiring},
		{NameCommutativeRing, NameRing},
		{NameLattice, NameJoinSemilattice},
		{NameLattice, NameMeetSemilattice},
		{NameBoundedLattice, NameLattice},
		{NameComplementedLattice, NameBoundedLattice},
		{NameBooleanAlgebra, NameDistributiveLattice},
		{NameBooleanAlgebra, NameComplementedLattice},
		{NameBooleanLogic, NameBooleanAlgebra},
	}
	for _, tt := range implied {
		assert.True(t, c.Implies(tt.from, tt.to), "%s ⇒ %s", tt.from, tt.to)
		assert.False(t, c.Implies(tt.to, tt.from), "%s ⇏ %s", tt.to, tt.from)
	}

	notImplied := []struct{ from, to string }{
		{NameGroup, NameCommutativeMonoid},
		{NameDistributiveLattice, NameBoundedLattice},
		{NameComplementedLattice, NameDistributiveLattice},
		{NameRing, NameLattice},
		{NameMonoid, NameMonoid},
	}
	for _, tt := range notImplied {
		assert.False(t, c.Implies(tt.from, tt.to), "%s ⇏ %s", tt.from, tt.to)
	}
}

func TestDerivations_Acyclic(t *testing.T) {
	c := Standard()
	edges := c.Derivations()
	require.NotEmpty(t, edges)

	for _, e := range edges {
		assert.False(t, c.Implies(e.To, e.From), "cycle through %s", e)
		from, _ := c.Structure(e.From)
		to, _ := c.Structure(e.To)
		for _, k := range to.Keys() {
			assert.Contains(t, from.Keys(), k, "%s lacks %s", e, k)
		}
		assert.Greater(t, len(from.Keys()), len(to.Keys()))
	}
}

func TestCovers_TransitiveReduction(t *testing.T) {
	covers := Standard().Covers()

	has := func(from, to string) bool {
		for _, e := range covers {
			if e.From == from && e.To == to {
				return true
			}
		}
		return false
	}

	assert.True(t, has(NameGroup, NameMonoid))
	assert.False(t, has(NameGroup, NameSemigroup), "Group ⇒ Semigroup passes through Monoid")
	assert.True(t, has(NameBooleanAlgebra, NameDistributiveLattice))
	assert.True(t, has(NameBooleanAlgebra, NameComplementedLattice))
	assert.False(t, has(NameBooleanAlgebra, NameLattice))

	for _, e := range covers {
		t.Logf("  %s", e)
	}
}

func TestDerivations_RecomputedOnRegistration(t *testing.T) {
	c := NewStandardCatalog()
	assert.Empty(t, filterNames(c.Implied(NameMeetSemilattice), "MeetBand"))

	_, err := c.DefineStructure("MeetBand", "associative idempotent meet",
		Require(Closed, Meet),
		Require(Associative, Meet),
		Require(Idempotent, Meet),
	)
	require.NoError(t, err)

	assert.True(t, c.Implies(NameMeetSemilattice, "MeetBand"), "existing structures gain new edges")
	assert.True(t, c.Implies(NameBooleanAlgebra, "MeetBand"))
	assert.False(t, c.Implies("MeetBand", NameMeetSemilattice))
	assert.False(t, Standard().Implies(NameMeetSemilattice, "MeetBand"), "standard catalog unaffected")
}

func TestDocumentDerivation(t *testing.T) {
	c := NewStandardCatalog()

	require.NoError(t, c.DocumentDerivation(NameGroup, NameMonoid, "forget inverses"))
	var note string
	for _, e := range c.Derivations() {
		if e.From == NameGroup && e.To == NameMonoid {
			note = e.Note
		}
	}
	assert.Equal(t, "forget inverses", note)

	assert.ErrorIs(t, c.DocumentDerivation(NameMonoid, NameGroup, "wrong way"), ErrInconsistent)
	assert.ErrorIs(t, c.DocumentDerivation("Nope", NameGroup, ""), ErrUnknown)
	assert.ErrorIs(t, c.DocumentDerivation(NameGroup, "Nope", ""), ErrUnknown)
}

func TestIsStrictSubset(t *testing.T) {
	assert.True(t, isStrictSubset([]string{"a", "c"}, []string{"a", "b", "c"}))
	assert.True(t, isStrictSubset(nil, []string{"a"}))
	assert.False(t, isStrictSubset([]string{"a", "b"}, []string{"a", "b"}))
	assert.False(t, isStrictSubset([]string{"a", "d"}, []string{"a", "b", "c"}))
}

func filterNames(ss []*Structure, name string) []*Structure {
	var out []*Structure
	for _, s := range ss {
		if s.Name == name {
			out = append(out, s)
		}
	}
	return out
}
