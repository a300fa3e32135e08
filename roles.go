package lawalgebra

import "fmt"

// Kind is the arity class of an operation role.
type Kind int

const (
	KindElement Kind = iota // Distinguished constant (arity 0)
	KindUnary               // func(T) T
	KindBinary              // func(T, T) T
)

// Arity returns the number of arguments an operation of this kind takes.
func (k Kind) Arity() int {
	return int(k)
}

func (k Kind) String() string {
	switch k {
	case KindElement:
		return "element"
	case KindUnary:
		return "unary"
	case KindBinary:
		return "binary"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Role names a position an operation fills in a structure: "the addition",
// "the join", "the top element". Concrete claims bind functions to roles.
type Role struct {
	Name   string // Stable identifier, used in law keys and YAML catalogs
	Symbol string // Rendered in law statements
	Kind   Kind
}

func (r Role) String() string {
	return r.Name
}

// Standard roles shared by the built-in catalog.
var (
	Addition       = Role{Name: "addition", Symbol: "+", Kind: KindBinary}
	Multiplication = Role{Name: "multiplication", Symbol: "·", Kind: KindBinary}
	Join           = Role{Name: "join", Symbol: "∨", Kind: KindBinary}
	Meet           = Role{Name: "meet", Symbol: "∧", Kind: KindBinary}

	Negation   = Role{Name: "negation", Symbol: "−", Kind: KindUnary}
	Complement = Role{Name: "complement", Symbol: "¬", Kind: KindUnary}

	// Derived connectives of a Boolean algebra.
	Xor     = Role{Name: "xor", Symbol: "⊕", Kind: KindBinary}
	Implies = Role{Name: "implies", Symbol: "→", Kind: KindBinary}
	Equiv   = Role{Name: "equiv", Symbol: "↔", Kind: KindBinary}

	Zero   = Role{Name: "zero", Symbol: "0", Kind: KindElement}
	One    = Role{Name: "one", Symbol: "1", Kind: KindElement}
	Bottom = Role{Name: "bottom", Symbol: "⊥", Kind: KindElement}
	Top    = Role{Name: "top", Symbol: "⊤", Kind: KindElement}
)

// StandardRoles lists the roles every catalog starts with.
func StandardRoles() []Role {
	return []Role{
		Addition, Multiplication, Join, Meet,
		Xor, Implies, Equiv,
		Negation, Complement,
		Zero, One, Bottom, Top,
	}
}
