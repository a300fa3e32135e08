package lawalgebra

import (
	"fmt"
	"reflect"
)

// Binding attaches one concrete operation to a role. Build bindings with
// Binary, Unary, Element and Member.
type Binding[T any] struct {
	role   Role
	kind   Kind
	bin    func(a, b T) T
	un     func(a T) T
	elem   T
	member func(a T) bool
}

// Binary binds a binary operation to role.
func Binary[T any](role Role, f func(a, b T) T) Binding[T] {
	return Binding[T]{role: role, kind: KindBinary, bin: f}
}

// Unary binds a unary operation to role.
func Unary[T any](role Role, f func(a T) T) Binding[T] {
	return Binding[T]{role: role, kind: KindUnary, un: f}
}

// Element binds a distinguished element to role.
func Element[T any](role Role, v T) Binding[T] {
	return Binding[T]{role: role, kind: KindElement, elem: v}
}

// Member restricts the carrier to the values f accepts. The closure law
// uses it; without it every value of T is a member.
func Member[T any](f func(a T) bool) Binding[T] {
	return Binding[T]{kind: -1, member: f}
}

// Equal returns == as an equivalence relation.
func Equal[T comparable]() func(a, b T) bool {
	return func(a, b T) bool { return a == b }
}

// Claim asserts that a carrier type T, with the bound operations and
// equivalence, satisfies a structure. A Claim is immutable and only lives
// as long as the checks run against it.
type Claim[T any] struct {
	structure *Structure
	typeName  string
	equal     func(a, b T) bool
	member    func(a T) bool
	bindings  map[string]Binding[T]
}

// NewClaim validates the bindings against the structure's roles. Every
// required role must be bound with an operation of the role's kind; extra
// bindings are kept so implied structures can be checked too.
func NewClaim[T any](s *Structure, equal func(a, b T) bool, bindings ...Binding[T]) (*Claim[T], error) {
	typeName := reflect.TypeFor[T]().String()

	if s == nil {
		return nil, &ClaimError{Structure: "<nil>", Type: typeName, Err: fmt.Errorf("%w: nil structure", ErrUnknown)}
	}
	fail := func(role string, err error) (*Claim[T], error) {
		return nil, &ClaimError{Structure: s.Name, Type: typeName, Role: role, Err: err}
	}
	if equal == nil {
		return fail("", ErrNoEquivalence)
	}

	c := &Claim[T]{
		structure: s,
		typeName:  typeName,
		equal:     equal,
		bindings:  make(map[string]Binding[T], len(bindings)),
	}

	for _, b := range bindings {
		if b.member != nil {
			if c.member != nil {
				return fail("", fmt.Errorf("%w: membership bound twice", ErrDuplicateName))
			}
			c.member = b.member
			continue
		}
		if b.kind < KindElement {
			return fail("", fmt.Errorf("%w: nil membership predicate", ErrMissingOperation))
		}
		name := b.role.Name
		if name == "" {
			return fail("", fmt.Errorf("%w: binding without a role", ErrMissingOperation))
		}
		if b.kind != b.role.Kind {
			return fail(name, fmt.Errorf("%w: role takes a %s operation, got %s", ErrArity, b.role.Kind, b.kind))
		}
		if (b.kind == KindBinary && b.bin == nil) || (b.kind == KindUnary && b.un == nil) {
			return fail(name, fmt.Errorf("%w: nil function", ErrMissingOperation))
		}
		if _, dup := c.bindings[name]; dup {
			return fail(name, fmt.Errorf("%w: role bound twice", ErrDuplicateName))
		}
		c.bindings[name] = b
	}

	for _, role := range s.Roles() {
		b, ok := c.bindings[role.Name]
		if !ok {
			return fail(role.Name, ErrMissingOperation)
		}
		if b.kind != role.Kind {
			return fail(role.Name, fmt.Errorf("%w: structure binds a %s operation, got %s", ErrArity, role.Kind, b.kind))
		}
	}
	return c, nil
}

// MustClaim is like NewClaim but panics on error.
func MustClaim[T any](s *Structure, equal func(a, b T) bool, bindings ...Binding[T]) *Claim[T] {
	c, err := NewClaim(s, equal, bindings...)
	if err != nil {
		panic(err)
	}
	return c
}

// Structure returns the claimed structure.
func (c *Claim[T]) Structure() *Structure {
	return c.structure
}

// TypeName returns the carrier type's name.
func (c *Claim[T]) TypeName() string {
	return c.typeName
}

// covers reports whether the claim binds every role of s.
func (c *Claim[T]) covers(s *Structure) bool {
	for _, role := range s.Roles() {
		b, ok := c.bindings[role.Name]
		if !ok || b.kind != role.Kind {
			return false
		}
	}
	return true
}

// operands erases the claim's types for the requirement's slots.
func (c *Claim[T]) operands(req Requirement) Operands {
	o := Operands{
		slots: make([]slot, len(req.Roles)),
		equal: func(a, b Value) bool { return c.equal(as[T](a), as[T](b)) },
	}
	if c.member != nil {
		o.member = func(a Value) bool { return c.member(as[T](a)) }
	}
	for i, role := range req.Roles {
		b := c.bindings[role.Name]
		s := slot{kind: b.kind}
		switch b.kind {
		case KindBinary:
			f := b.bin
			s.bin = func(x, y Value) Value { return f(as[T](x), as[T](y)) }
		case KindUnary:
			f := b.un
			s.un = func(x Value) Value { return f(as[T](x)) }
		case KindElement:
			s.elem = b.elem
		}
		o.slots[i] = s
	}
	return o
}

// as recovers a typed value. A nil interface value becomes T's zero value.
func as[T any](v Value) T {
	t, _ := v.(T)
	return t
}
