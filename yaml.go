package lawalgebra

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// CatalogFile is the YAML form of structure definitions:
//
//	structures:
//	  - name: MeetSemigroup
//	    requires:
//	      - capability: associative
//	        roles: [meet]
//	  - name: LeftBand
//	    doc: an idempotent semigroup that does not commute
//	    requires:
//	      - capability: associative
//	        roles: [meet]
//	      - capability: idempotent
//	        roles: [meet]
//	      - capability: commutative
//	        roles: [meet]
//	        forbidden: true
//	derivations:
//	  - from: LeftBand
//	    to: MeetSemigroup
//	    note: forget idempotence
type CatalogFile struct {
	Roles       []RoleSpec       `yaml:"roles"`
	Structures  []StructureSpec  `yaml:"structures"`
	Derivations []DerivationNote `yaml:"derivations"`
}

// RoleSpec declares a role not in the standard set.
type RoleSpec struct {
	Name   string `yaml:"name"`
	Symbol string `yaml:"symbol"`
	Arity  int    `yaml:"arity"`
}

// StructureSpec declares a structure by capability and role names.
type StructureSpec struct {
	Name     string            `yaml:"name"`
	Doc      string            `yaml:"doc"`
	Requires []RequirementSpec `yaml:"requires"`
}

// RequirementSpec names a registered capability and the roles filling its slots.
type RequirementSpec struct {
	Capability string   `yaml:"capability"`
	Roles      []string `yaml:"roles"`
	Forbidden  bool     `yaml:"forbidden"`
}

// DerivationNote documents a computed derivation edge.
type DerivationNote struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Note string `yaml:"note"`
}

// LoadStructures reads a CatalogFile and defines its roles, structures and
// derivation notes in order. Loading is all or nothing: the first definition
// error is returned and the catalog is left as it was.
func (c *Catalog) LoadStructures(r io.Reader) error {
	var file CatalogFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("lawalgebra: decode catalog: %w", err)
	}

	// Definitions go to a private copy first. A concurrent definition on c
	// invalidates the copy and the file is applied again.
	for {
		scratch, version := c.snapshot()
		if err := scratch.define(file); err != nil {
			return err
		}
		if c.commit(scratch, version) {
			return nil
		}
	}
}

func (c *Catalog) define(file CatalogFile) error {
	for _, rs := range file.Roles {
		if rs.Arity < 0 || rs.Arity > 2 {
			return definitionErr("role "+rs.Name, ErrArity, "arity %d", rs.Arity)
		}
		if err := c.DefineRole(Role{Name: rs.Name, Symbol: rs.Symbol, Kind: Kind(rs.Arity)}); err != nil {
			return err
		}
	}

	for _, ss := range file.Structures {
		reqs := make([]Requirement, 0, len(ss.Requires))
		for _, rq := range ss.Requires {
			cap, ok := c.Capability(rq.Capability)
			if !ok {
				return definitionErr(ss.Name, ErrUnknown, "capability %q", rq.Capability)
			}
			roles := make([]Role, 0, len(rq.Roles))
			for _, name := range rq.Roles {
				role, ok := c.Role(name)
				if !ok {
					return definitionErr(ss.Name, ErrUnknown, "role %q", name)
				}
				roles = append(roles, role)
			}
			reqs = append(reqs, Requirement{Capability: cap, Roles: roles, Negated: rq.Forbidden})
		}
		if _, err := c.DefineStructure(ss.Name, ss.Doc, reqs...); err != nil {
			return err
		}
	}

	for _, d := range file.Derivations {
		if err := c.DocumentDerivation(d.From, d.To, d.Note); err != nil {
			return err
		}
	}
	return nil
}
