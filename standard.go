package lawalgebra

// Names of the structures in the standard catalog.
const (
	NameMagma                   = "Magma"
	NameSemigroup               = "Semigroup"
	NameMonoid                  = "Monoid"
	NameCommutativeMonoid       = "CommutativeMonoid"
	NameGroup                   = "Group"
	NameAbelianGroup            = "AbelianGroup"
	NameMultiplicativeSemigroup = "MultiplicativeSemigroup"
	NameMultiplicativeMonoid    = "MultiplicativeMonoid"
	NameSemiring                = "Semiring"
	NameRing                    = "Ring"
	NameCommutativeRing         = "CommutativeRing"
	NameJoinSemilattice         = "JoinSemilattice"
	NameMeetSemilattice         = "MeetSemilattice"
	NameLattice                 = "Lattice"
	NameBoundedLattice          = "BoundedLattice"
	NameDistributiveLattice     = "DistributiveLattice"
	NameComplementedLattice     = "ComplementedLattice"
	NameBooleanAlgebra          = "BooleanAlgebra"
	NameBooleanLogic            = "BooleanLogic"
)

// Requirement groups reused by several structures. The single-operation
// structures are written additively so that rings derive them directly.
var (
	magmaReqs     = []Requirement{Require(Closed, Addition)}
	semigroupReqs = append(clone(magmaReqs), Require(Associative, Addition))
	monoidReqs    = append(clone(semigroupReqs), Require(Identity, Addition, Zero))
	groupReqs     = append(clone(monoidReqs), Require(Invertible, Addition, Zero, Negation))
	abelianReqs   = append(clone(groupReqs), Require(Commutative, Addition))

	mulSemigroupReqs = []Requirement{Require(Closed, Multiplication), Require(Associative, Multiplication)}
	mulMonoidReqs    = append(clone(mulSemigroupReqs), Require(Identity, Multiplication, One))

	semiringReqs = concat(
		monoidReqs,
		[]Requirement{Require(Commutative, Addition)},
		mulMonoidReqs,
		[]Requirement{
			Require(Distributive, Multiplication, Addition),
			Require(Bounded, Multiplication, Zero),
		},
	)
	ringReqs = concat(
		abelianReqs,
		mulMonoidReqs,
		[]Requirement{
			Require(Distributive, Multiplication, Addition),
			Require(Bounded, Multiplication, Zero),
		},
	)

	joinReqs = []Requirement{
		Require(Closed, Join),
		Require(Associative, Join),
		Require(Commutative, Join),
		Require(Idempotent, Join),
	}
	meetReqs = []Requirement{
		Require(Closed, Meet),
		Require(Associative, Meet),
		Require(Commutative, Meet),
		Require(Idempotent, Meet),
	}
	latticeReqs = concat(joinReqs, meetReqs, []Requirement{
		Require(Absorptive, Join, Meet),
		Require(Absorptive, Meet, Join),
	})
	boundedReqs = append(clone(latticeReqs),
		Require(Identity, Join, Bottom),
		Require(Identity, Meet, Top),
		Require(Bounded, Join, Top),
		Require(Bounded, Meet, Bottom),
	)
	distributiveReqs = append(clone(latticeReqs),
		Require(Distributive, Meet, Join),
		Require(Distributive, Join, Meet),
	)
	complementedReqs = append(clone(boundedReqs),
		Require(Complemented, Join, Meet, Complement, Top, Bottom),
	)
	booleanReqs = concat(complementedReqs, distributiveReqs)
	logicReqs   = append(clone(booleanReqs),
		Require(Connectives, Xor, Implies, Equiv, Join, Meet, Complement),
	)
)

func defineStandard(c *Catalog) {
	c.MustDefineStructure(NameMagma, "a set closed under addition", magmaReqs...)
	c.MustDefineStructure(NameSemigroup, "an associative magma", semigroupReqs...)
	c.MustDefineStructure(NameMonoid, "a semigroup with an identity element", monoidReqs...)
	c.MustDefineStructure(NameCommutativeMonoid, "a monoid whose operation commutes",
		append(clone(monoidReqs), Require(Commutative, Addition))...)
	c.MustDefineStructure(NameGroup, "a monoid in which every element has an inverse", groupReqs...)
	c.MustDefineStructure(NameAbelianGroup, "a commutative group", abelianReqs...)

	c.MustDefineStructure(NameMultiplicativeSemigroup, "associative multiplication", mulSemigroupReqs...)
	c.MustDefineStructure(NameMultiplicativeMonoid, "associative multiplication with a unit", mulMonoidReqs...)

	c.MustDefineStructure(NameSemiring,
		"commutative additive monoid and multiplicative monoid, multiplication distributes and zero annihilates",
		semiringReqs...)
	c.MustDefineStructure(NameRing,
		"abelian additive group and multiplicative monoid, multiplication distributes over addition",
		ringReqs...)
	c.MustDefineStructure(NameCommutativeRing, "a ring whose multiplication commutes",
		append(clone(ringReqs), Require(Commutative, Multiplication))...)

	c.MustDefineStructure(NameJoinSemilattice, "associative, commutative, idempotent join", joinReqs...)
	c.MustDefineStructure(NameMeetSemilattice, "associative, commutative, idempotent meet", meetReqs...)
	c.MustDefineStructure(NameLattice, "join and meet semilattices linked by absorption", latticeReqs...)
	c.MustDefineStructure(NameBoundedLattice, "a lattice with a bottom and a top element", boundedReqs...)
	c.MustDefineStructure(NameDistributiveLattice, "a lattice in which join and meet distribute", distributiveReqs...)
	c.MustDefineStructure(NameComplementedLattice, "a bounded lattice in which every element has a complement",
		complementedReqs...)
	c.MustDefineStructure(NameBooleanAlgebra, "a complemented distributive lattice", booleanReqs...)
	c.MustDefineStructure(NameBooleanLogic, "a Boolean algebra with xor, implication and equivalence", logicReqs...)
}

func clone(reqs []Requirement) []Requirement {
	out := make([]Requirement, len(reqs))
	copy(out, reqs)
	return out
}

func concat(groups ...[]Requirement) []Requirement {
	var out []Requirement
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}
