package lawalgebra

// Method-set interfaces for carriers that implement operations as methods.
// Composing them gives the compile-time half of a conformance claim: a type
// that does not have the operations does not compile. The laws are still
// checked at run time by binding the methods into a Claim.
//
// Element methods (Zero, One, Bottom, Top) are called on the zero value of
// T, so they must not depend on the receiver.

// AdditiveMagma is a carrier with an addition.
type AdditiveMagma[T any] interface {
	Add(T) T
}

// AdditiveMonoid adds the additive identity.
type AdditiveMonoid[T any] interface {
	AdditiveMagma[T]
	Zero() T
}

// AdditiveGroup adds additive inverses.
type AdditiveGroup[T any] interface {
	AdditiveMonoid[T]
	Neg() T
}

// MultiplicativeMagma is a carrier with a multiplication.
type MultiplicativeMagma[T any] interface {
	Mul(T) T
}

// MultiplicativeMonoid adds the multiplicative unit.
type MultiplicativeMonoid[T any] interface {
	MultiplicativeMagma[T]
	One() T
}

// Ring combines an additive group with a multiplicative monoid.
type Ring[T any] interface {
	AdditiveGroup[T]
	MultiplicativeMonoid[T]
}

// JoinSemilattice is a carrier with a join (least upper bound).
type JoinSemilattice[T any] interface {
	Join(T) T
}

// MeetSemilattice is a carrier with a meet (greatest lower bound).
type MeetSemilattice[T any] interface {
	Meet(T) T
}

// Lattice has both join and meet.
type Lattice[T any] interface {
	JoinSemilattice[T]
	MeetSemilattice[T]
}

// BoundedLattice adds the bottom and top elements.
type BoundedLattice[T any] interface {
	Lattice[T]
	Bottom() T
	Top() T
}

// ComplementedLattice adds a complement for every element.
type ComplementedLattice[T any] interface {
	BoundedLattice[T]
	Complement() T
}

// BooleanAlgebra adds the derived connectives of two-valued logic.
type BooleanAlgebra[T any] interface {
	ComplementedLattice[T]
	Xor(T) T
	Implies(T) T
	Equiv(T) T
}

// MonoidBindings binds Add and Zero.
func MonoidBindings[T AdditiveMonoid[T]]() []Binding[T] {
	var z T
	return []Binding[T]{
		Binary(Addition, func(a, b T) T { return a.Add(b) }),
		Element(Zero, z.Zero()),
	}
}

// GroupBindings binds Add, Zero and Neg.
func GroupBindings[T AdditiveGroup[T]]() []Binding[T] {
	return append(MonoidBindings[T](),
		Unary(Negation, func(a T) T { return a.Neg() }),
	)
}

// RingBindings binds the additive group and the multiplicative monoid.
func RingBindings[T Ring[T]]() []Binding[T] {
	var z T
	return append(GroupBindings[T](),
		Binary(Multiplication, func(a, b T) T { return a.Mul(b) }),
		Element(One, z.One()),
	)
}

// LatticeBindings binds Join and Meet.
func LatticeBindings[T Lattice[T]]() []Binding[T] {
	return []Binding[T]{
		Binary(Join, func(a, b T) T { return a.Join(b) }),
		Binary(Meet, func(a, b T) T { return a.Meet(b) }),
	}
}

// BoundedLatticeBindings binds Join, Meet, Bottom and Top.
func BoundedLatticeBindings[T BoundedLattice[T]]() []Binding[T] {
	var z T
	return append(LatticeBindings[T](),
		Element(Bottom, z.Bottom()),
		Element(Top, z.Top()),
	)
}

// ComplementedLatticeBindings adds Complement to the bounded lattice.
func ComplementedLatticeBindings[T ComplementedLattice[T]]() []Binding[T] {
	return append(BoundedLatticeBindings[T](),
		Unary(Complement, func(a T) T { return a.Complement() }),
	)
}

// BooleanAlgebraBindings binds the complemented lattice and the connectives.
func BooleanAlgebraBindings[T BooleanAlgebra[T]]() []Binding[T] {
	return append(ComplementedLatticeBindings[T](),
		Binary(Xor, func(a, b T) T { return a.Xor(b) }),
		Binary(Implies, func(a, b T) T { return a.Implies(b) }),
		Binary(Equiv, func(a, b T) T { return a.Equiv(b) }),
	)
}
