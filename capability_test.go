package lawalgebra

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intOperands(bin ...func(a, b int) int) Operands {
	o := Operands{equal: func(a, b Value) bool { return a.(int) == b.(int) }}
	for _, f := range bin {
		o.slots = append(o.slots, slot{kind: KindBinary, bin: func(a, b Value) Value { return f(a.(int), b.(int)) }})
	}
	return o
}

func TestStandardCapabilities_Valid(t *testing.T) {
	for _, c := range StandardCapabilities() {
		t.Run(c.Name, func(t *testing.T) {
			require.NoError(t, c.Validate())
			for _, l := range c.Laws {
				assert.NotEmpty(t, l.Statement, "law %s has no statement", l.Name)
			}
		})
	}
}

func TestCapability_Validate(t *testing.T) {
	holds := func(Operands, []Value) bool { return true }

	tests := []struct {
		name string
		cap  *Capability
		want error
	}{
		{"nil", nil, ErrUnknown},
		{"no name", &Capability{Slots: []Kind{KindBinary}, Laws: []LawTemplate{{Name: "x", Vars: 1, Holds: holds}}}, ErrDefinition},
		{"no slots", &Capability{Name: "c", Laws: []LawTemplate{{Name: "x", Vars: 1, Holds: holds}}}, ErrArity},
		{"no laws", &Capability{Name: "c", Slots: []Kind{KindBinary}}, ErrDefinition},
		{"nil predicate", &Capability{Name: "c", Slots: []Kind{KindBinary}, Laws: []LawTemplate{{Name: "x", Vars: 1}}}, ErrDefinition},
		{"zero vars", &Capability{Name: "c", Slots: []Kind{KindBinary}, Laws: []LawTemplate{{Name: "x", Holds: holds}}}, ErrArity},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cap.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
			assert.True(t, errors.Is(err, ErrDefinition))
		})
	}
}

func TestAssociative_Predicate(t *testing.T) {
	holds := Associative.Laws[0].Holds

	assert.True(t, holds(intOperands(add), []Value{1, 2, 3}))
	assert.False(t, holds(intOperands(func(a, b int) int { return a - b }), []Value{1, 2, 3}))
}

func TestDistributive_Predicate(t *testing.T) {
	mul := func(a, b int) int { return a * b }
	o := intOperands(mul, add)

	for _, l := range Distributive.Laws {
		assert.True(t, l.Holds(o, []Value{2, 3, 4}), l.Name)
	}

	// Addition does not distribute over multiplication.
	o = intOperands(add, mul)
	assert.False(t, Distributive.Laws[0].Holds(o, []Value{1, 2, 3}))
}

func TestRender(t *testing.T) {
	got := render(Complemented.Laws[0].Statement, []Role{Join, Meet, Complement, Top, Bottom})
	assert.Equal(t, "a ∨ ¬a = ⊤", got)

	got = render("a {0} b", []Role{{Name: "compose", Kind: KindBinary}})
	assert.Equal(t, "a compose b", got, "roles without a symbol render by name")
}

func TestKind(t *testing.T) {
	assert.Equal(t, 0, KindElement.Arity())
	assert.Equal(t, 1, KindUnary.Arity())
	assert.Equal(t, 2, KindBinary.Arity())
	assert.Equal(t, "binary", KindBinary.String())
	assert.Equal(t, "Kind(7)", Kind(7).String())
}
