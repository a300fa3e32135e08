package lawalgebra

import (
	"fmt"
	"strconv"
	"strings"
)

// Value is a carrier value with its static type erased. Laws are written
// against Values so that capabilities stay independent of any carrier type.
type Value = any

// Operands is the view a law predicate has of a claim: the operations bound
// to the capability's slots, in slot order, plus the claim's equivalence.
type Operands struct {
	slots  []slot
	equal  func(a, b Value) bool
	member func(a Value) bool
}

type slot struct {
	kind Kind
	bin  func(a, b Value) Value
	un   func(a Value) Value
	elem Value
}

// Apply evaluates the binary operation in slot i.
func (o Operands) Apply(i int, a, b Value) Value {
	return o.slots[i].bin(a, b)
}

// Map evaluates the unary operation in slot i.
func (o Operands) Map(i int, a Value) Value {
	return o.slots[i].un(a)
}

// Element returns the distinguished element in slot i.
func (o Operands) Element(i int) Value {
	return o.slots[i].elem
}

// Equal is the carrier's own equivalence relation.
func (o Operands) Equal(a, b Value) bool {
	return o.equal(a, b)
}

// Member reports whether a belongs to the carrier set. Claims without a
// membership predicate treat every value of the Go type as a member.
func (o Operands) Member(a Value) bool {
	if o.member == nil {
		return true
	}
	return o.member(a)
}

// LawTemplate is one executable axiom. Holds must be total and pure: it is
// called concurrently with different value tuples.
type LawTemplate struct {
	Name string
	// Statement uses {0}, {1}, ... for the symbols of the bound roles.
	Statement string
	// Vars is the number of sampled values per tuple.
	Vars  int
	Holds func(o Operands, x []Value) bool
}

// Capability is an atomic algebraic property over one or more operation slots.
type Capability struct {
	Name      string
	Statement string
	Slots     []Kind
	Laws      []LawTemplate
}

// Validate checks the capability is well formed.
func (c *Capability) Validate() error {
	if c == nil {
		return definitionErr("<nil>", ErrUnknown, "nil capability")
	}
	if c.Name == "" {
		return definitionErr("capability", ErrDefinition, "empty name")
	}
	if len(c.Slots) == 0 {
		return definitionErr(c.Name, ErrArity, "capability binds no operations")
	}
	if len(c.Laws) == 0 {
		return definitionErr(c.Name, ErrDefinition, "capability has no laws")
	}
	for _, l := range c.Laws {
		if l.Name == "" || l.Holds == nil {
			return definitionErr(c.Name, ErrDefinition, "law %q has no predicate", l.Name)
		}
		if l.Vars < 1 {
			return definitionErr(c.Name, ErrArity, "law %q samples %d values", l.Name, l.Vars)
		}
	}
	return nil
}

// render replaces slot placeholders with role symbols.
func render(statement string, roles []Role) string {
	pairs := make([]string, 0, 2*len(roles))
	for i, r := range roles {
		sym := r.Symbol
		if sym == "" {
			sym = r.Name
		}
		pairs = append(pairs, "{"+strconv.Itoa(i)+"}", sym)
	}
	return strings.NewReplacer(pairs...).Replace(statement)
}

// Standard capabilities.
var (
	Closed = &Capability{
		Name:      "closed",
		Statement: "{0} maps carrier values to carrier values",
		Slots:     []Kind{KindBinary},
		Laws: []LawTemplate{{
			Name:      "closure",
			Statement: "a {0} b ∈ T",
			Vars:      2,
			Holds: func(o Operands, x []Value) bool {
				return o.Member(o.Apply(0, x[0], x[1]))
			},
		}},
	}

	Associative = &Capability{
		Name:      "associative",
		Statement: "{0} is associative",
		Slots:     []Kind{KindBinary},
		Laws: []LawTemplate{{
			Name:      "associativity",
			Statement: "(a {0} b) {0} c = a {0} (b {0} c)",
			Vars:      3,
			Holds: func(o Operands, x []Value) bool {
				a, b, c := x[0], x[1], x[2]
				return o.Equal(o.Apply(0, o.Apply(0, a, b), c), o.Apply(0, a, o.Apply(0, b, c)))
			},
		}},
	}

	Commutative = &Capability{
		Name:      "commutative",
		Statement: "{0} is commutative",
		Slots:     []Kind{KindBinary},
		Laws: []LawTemplate{{
			Name:      "commutativity",
			Statement: "a {0} b = b {0} a",
			Vars:      2,
			Holds: func(o Operands, x []Value) bool {
				return o.Equal(o.Apply(0, x[0], x[1]), o.Apply(0, x[1], x[0]))
			},
		}},
	}

	Identity = &Capability{
		Name:      "identity",
		Statement: "{1} is a two-sided identity for {0}",
		Slots:     []Kind{KindBinary, KindElement},
		Laws: []LawTemplate{
			{
				Name:      "right identity",
				Statement: "a {0} {1} = a",
				Vars:      1,
				Holds: func(o Operands, x []Value) bool {
					return o.Equal(o.Apply(0, x[0], o.Element(1)), x[0])
				},
			},
			{
				Name:      "left identity",
				Statement: "{1} {0} a = a",
				Vars:      1,
				Holds: func(o Operands, x []Value) bool {
					return o.Equal(o.Apply(0, o.Element(1), x[0]), x[0])
				},
			},
		},
	}

	Invertible = &Capability{
		Name:      "invertible",
		Statement: "{2} gives every value an inverse under {0} with identity {1}",
		Slots:     []Kind{KindBinary, KindElement, KindUnary},
		Laws: []LawTemplate{
			{
				Name:      "right inverse",
				Statement: "a {0} {2}a = {1}",
				Vars:      1,
				Holds: func(o Operands, x []Value) bool {
					return o.Equal(o.Apply(0, x[0], o.Map(2, x[0])), o.Element(1))
				},
			},
			{
				Name:      "left inverse",
				Statement: "{2}a {0} a = {1}",
				Vars:      1,
				Holds: func(o Operands, x []Value) bool {
					return o.Equal(o.Apply(0, o.Map(2, x[0]), x[0]), o.Element(1))
				},
			},
		},
	}

	Idempotent = &Capability{
		Name:      "idempotent",
		Statement: "{0} is idempotent",
		Slots:     []Kind{KindBinary},
		Laws: []LawTemplate{{
			Name:      "idempotence",
			Statement: "a {0} a = a",
			Vars:      1,
			Holds: func(o Operands, x []Value) bool {
				return o.Equal(o.Apply(0, x[0], x[0]), x[0])
			},
		}},
	}

	Absorptive = &Capability{
		Name:      "absorptive",
		Statement: "{0} absorbs {1}",
		Slots:     []Kind{KindBinary, KindBinary},
		Laws: []LawTemplate{{
			Name:      "absorption",
			Statement: "a {0} (a {1} b) = a",
			Vars:      2,
			Holds: func(o Operands, x []Value) bool {
				return o.Equal(o.Apply(0, x[0], o.Apply(1, x[0], x[1])), x[0])
			},
		}},
	}

	Distributive = &Capability{
		Name:      "distributive",
		Statement: "{0} distributes over {1}",
		Slots:     []Kind{KindBinary, KindBinary},
		Laws: []LawTemplate{
			{
				Name:      "left distributivity",
				Statement: "a {0} (b {1} c) = (a {0} b) {1} (a {0} c)",
				Vars:      3,
				Holds: func(o Operands, x []Value) bool {
					a, b, c := x[0], x[1], x[2]
					return o.Equal(
						o.Apply(0, a, o.Apply(1, b, c)),
						o.Apply(1, o.Apply(0, a, b), o.Apply(0, a, c)),
					)
				},
			},
			{
				Name:      "right distributivity",
				Statement: "(b {1} c) {0} a = (b {0} a) {1} (c {0} a)",
				Vars:      3,
				Holds: func(o Operands, x []Value) bool {
					a, b, c := x[0], x[1], x[2]
					return o.Equal(
						o.Apply(0, o.Apply(1, b, c), a),
						o.Apply(1, o.Apply(0, b, a), o.Apply(0, c, a)),
					)
				},
			},
		},
	}

	Complemented = &Capability{
		Name:      "complemented",
		Statement: "{2} complements every value with respect to {0} and {1}",
		Slots:     []Kind{KindBinary, KindBinary, KindUnary, KindElement, KindElement},
		Laws: []LawTemplate{
			{
				Name:      "first complement",
				Statement: "a {0} {2}a = {3}",
				Vars:      1,
				Holds: func(o Operands, x []Value) bool {
					return o.Equal(o.Apply(0, x[0], o.Map(2, x[0])), o.Element(3))
				},
			},
			{
				Name:      "second complement",
				Statement: "a {1} {2}a = {4}",
				Vars:      1,
				Holds: func(o Operands, x []Value) bool {
					return o.Equal(o.Apply(1, x[0], o.Map(2, x[0])), o.Element(4))
				},
			},
		},
	}

	Bounded = &Capability{
		Name:      "bounded",
		Statement: "{1} is absorbing for {0}",
		Slots:     []Kind{KindBinary, KindElement},
		Laws: []LawTemplate{{
			Name:      "bound",
			Statement: "a {0} {1} = {1} = {1} {0} a",
			Vars:      1,
			Holds: func(o Operands, x []Value) bool {
				e := o.Element(1)
				return o.Equal(o.Apply(0, x[0], e), e) && o.Equal(o.Apply(0, e, x[0]), e)
			},
		}},
	}
)

// Connectives defines xor, implication and equivalence from join, meet and
// complement. Slots: xor, implies, equiv, join, meet, complement.
var Connectives = &Capability{
	Name:      "connectives",
	Statement: "{0}, {1} and {2} are the connectives derived from {3}, {4} and {5}",
	Slots:     []Kind{KindBinary, KindBinary, KindBinary, KindBinary, KindBinary, KindUnary},
	Laws: []LawTemplate{
		{
			Name:      "exclusive or",
			Statement: "a {0} b = (a {4} {5}b) {3} ({5}a {4} b)",
			Vars:      2,
			Holds: func(o Operands, x []Value) bool {
				a, b := x[0], x[1]
				return o.Equal(o.Apply(0, a, b),
					o.Apply(3, o.Apply(4, a, o.Map(5, b)), o.Apply(4, o.Map(5, a), b)))
			},
		},
		{
			Name:      "material implication",
			Statement: "a {1} b = {5}a {3} b",
			Vars:      2,
			Holds: func(o Operands, x []Value) bool {
				return o.Equal(o.Apply(1, x[0], x[1]), o.Apply(3, o.Map(5, x[0]), x[1]))
			},
		},
		{
			Name:      "equivalence",
			Statement: "a {2} b = {5}(a {0} b)",
			Vars:      2,
			Holds: func(o Operands, x []Value) bool {
				return o.Equal(o.Apply(2, x[0], x[1]), o.Map(5, o.Apply(0, x[0], x[1])))
			},
		},
	},
}

// StandardCapabilities lists the capabilities of the built-in catalog.
func StandardCapabilities() []*Capability {
	return []*Capability{
		Closed, Associative, Commutative, Identity, Invertible,
		Idempotent, Absorptive, Distributive, Complemented, Bounded,
		Connectives,
	}
}

func (c *Capability) String() string {
	return fmt.Sprintf("%s%v", c.Name, c.Slots)
}
