package lawalgebra

import (
	"slices"
	"strings"
)

// Requirement binds a capability to the roles that fill its slots. A negated
// requirement demands that the capability fail: some sampled tuple must
// refute at least one of its laws.
type Requirement struct {
	Capability *Capability
	Roles      []Role
	Negated    bool
}

// Require states that cap holds for the given roles.
func Require(cap *Capability, roles ...Role) Requirement {
	return Requirement{Capability: cap, Roles: roles}
}

// Forbid states that cap does not hold for the given roles.
func Forbid(cap *Capability, roles ...Role) Requirement {
	return Requirement{Capability: cap, Roles: roles, Negated: true}
}

// Key identifies the requirement independently of the structure using it,
// e.g. "identity(addition,zero)" or "!commutative(multiplication)".
func (r Requirement) Key() string {
	var b strings.Builder
	if r.Negated {
		b.WriteByte('!')
	}
	b.WriteString(r.positiveKey())
	return b.String()
}

func (r Requirement) positiveKey() string {
	names := make([]string, len(r.Roles))
	for i, role := range r.Roles {
		names[i] = role.Name
	}
	name := "<nil>"
	if r.Capability != nil {
		name = r.Capability.Name
	}
	return name + "(" + strings.Join(names, ",") + ")"
}

// Statement renders the capability's statement with the bound role symbols.
func (r Requirement) Statement() string {
	s := render(r.Capability.Statement, r.Roles)
	if r.Negated {
		return "not: " + s
	}
	return s
}

func (r Requirement) String() string {
	return r.Key()
}

// validate checks slot count and kinds against the capability.
func (r Requirement) validate(subject string) error {
	if err := r.Capability.Validate(); err != nil {
		return err
	}
	if len(r.Roles) != len(r.Capability.Slots) {
		return definitionErr(subject, ErrArity, "%s binds %d roles, capability has %d slots",
			r.Capability.Name, len(r.Roles), len(r.Capability.Slots))
	}
	for i, role := range r.Roles {
		if role.Name == "" {
			return definitionErr(subject, ErrArity, "%s slot %d has an unnamed role", r.Capability.Name, i)
		}
		if want := r.Capability.Slots[i]; role.Kind != want {
			return definitionErr(subject, ErrArity, "%s slot %d wants a %s operation, role %s is %s",
				r.Capability.Name, i, want, role.Name, role.Kind)
		}
	}
	return nil
}

// Structure is a named, validated set of requirements. Structures are
// created by Catalog.DefineStructure and never change afterwards.
type Structure struct {
	Name         string
	Doc          string
	Requirements []Requirement

	keys []string // sorted requirement keys
}

// Roles returns every role the structure binds, in first-use order.
func (s *Structure) Roles() []Role {
	var roles []Role
	seen := make(map[string]bool)
	for _, req := range s.Requirements {
		for _, r := range req.Roles {
			if !seen[r.Name] {
				seen[r.Name] = true
				roles = append(roles, r)
			}
		}
	}
	return roles
}

// Keys returns the sorted requirement keys that identify the structure's
// capability set.
func (s *Structure) Keys() []string {
	return slices.Clone(s.keys)
}

// Has reports whether the structure carries the given requirement.
func (s *Structure) Has(r Requirement) bool {
	_, ok := slices.BinarySearch(s.keys, r.Key())
	return ok
}

func (s *Structure) String() string {
	return s.Name + "{" + strings.Join(s.keys, " ") + "}"
}

// newStructure validates requirements and checks them for contradictions.
func newStructure(name, doc string, reqs []Requirement) (*Structure, error) {
	if name == "" {
		return nil, definitionErr("structure", ErrDefinition, "empty name")
	}
	if len(reqs) == 0 {
		return nil, definitionErr(name, ErrDefinition, "structure has no requirements")
	}

	kinds := make(map[string]Kind)
	seen := make(map[string]Requirement)
	caps := make(map[string]*Capability)
	var unique []Requirement
	for _, req := range reqs {
		if err := req.validate(name); err != nil {
			return nil, err
		}
		for _, role := range req.Roles {
			if k, ok := kinds[role.Name]; ok && k != role.Kind {
				return nil, definitionErr(name, ErrInconsistent,
					"role %s used as both %s and %s", role.Name, k, role.Kind)
			}
			kinds[role.Name] = role.Kind
		}

		if prev, ok := caps[req.Capability.Name]; ok && prev != req.Capability {
			return nil, definitionErr(name, ErrDuplicateName,
				"two different capabilities named %q", req.Capability.Name)
		}
		caps[req.Capability.Name] = req.Capability

		key := req.Key()
		if _, dup := seen[key]; dup {
			continue
		}
		if req.Negated {
			if _, ok := seen[req.positiveKey()]; ok {
				return nil, definitionErr(name, ErrInconsistent, "%s is both required and forbidden", req.positiveKey())
			}
		} else if _, ok := seen["!"+key]; ok {
			return nil, definitionErr(name, ErrInconsistent, "%s is both required and forbidden", key)
		}
		seen[key] = req
		unique = append(unique, req)
	}

	keys := make([]string, 0, len(unique))
	for _, req := range unique {
		keys = append(keys, req.Key())
	}
	slices.Sort(keys)

	return &Structure{Name: name, Doc: doc, Requirements: unique, keys: keys}, nil
}
