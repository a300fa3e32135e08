package lawalgebra

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Catalog holds roles, capabilities, structures and the derivation graph
// between structures. A Catalog is safe for concurrent use. Once frozen it
// rejects further definitions, which makes it a read-only law registry.
type Catalog struct {
	mu           sync.RWMutex
	frozen       bool
	roles        map[string]Role
	capabilities map[string]*Capability
	axioms       map[string]*Capability // structure-local capabilities by name
	structures   map[string]*Structure
	order        []string // structure names in definition order
	implied      map[string][]string
	notes        map[[2]string]string
	version      uint64 // bumped on every definition
}

// NewCatalog returns an empty, mutable catalog that knows the standard roles
// and capabilities but defines no structures.
func NewCatalog() *Catalog {
	c := &Catalog{
		roles:        make(map[string]Role),
		capabilities: make(map[string]*Capability),
		axioms:       make(map[string]*Capability),
		structures:   make(map[string]*Structure),
		implied:      make(map[string][]string),
		notes:        make(map[[2]string]string),
	}
	for _, r := range StandardRoles() {
		c.roles[r.Name] = r
	}
	for _, cap := range StandardCapabilities() {
		c.capabilities[cap.Name] = cap
	}
	return c
}

// Freeze makes the catalog immutable.
func (c *Catalog) Freeze() {
	c.mu.Lock()
	c.frozen = true
	c.version++
	c.mu.Unlock()
}

// Frozen reports whether the catalog rejects new definitions.
func (c *Catalog) Frozen() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.frozen
}

// DefineRole registers an operation role.
func (c *Catalog) DefineRole(r Role) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.frozen {
		return definitionErr("role "+r.Name, ErrFrozen, "")
	}
	if r.Name == "" {
		return definitionErr("role", ErrDefinition, "empty name")
	}
	if r.Kind < KindElement || r.Kind > KindBinary {
		return definitionErr("role "+r.Name, ErrArity, "unknown kind %d", int(r.Kind))
	}
	if _, ok := c.roles[r.Name]; ok {
		return definitionErr("role "+r.Name, ErrDuplicateName, "")
	}
	c.roles[r.Name] = r
	c.version++
	return nil
}

// Role looks up a role by name.
func (c *Catalog) Role(name string) (Role, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	r, ok := c.roles[name]
	return r, ok
}

// DefineCapability registers a capability so structures can refer to it by
// name.
func (c *Catalog) DefineCapability(cap *Capability) error {
	if err := cap.Validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.frozen {
		return definitionErr(cap.Name, ErrFrozen, "")
	}
	if _, ok := c.capabilities[cap.Name]; ok {
		return definitionErr(cap.Name, ErrDuplicateName, "")
	}
	if local, ok := c.axioms[cap.Name]; ok && local != cap {
		return definitionErr(cap.Name, ErrDuplicateName, "a structure-local axiom already uses the name")
	}
	c.capabilities[cap.Name] = cap
	c.version++
	return nil
}

// Capability looks up a capability by name.
func (c *Catalog) Capability(name string) (*Capability, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cap, ok := c.capabilities[name]
	return cap, ok
}

// DefineStructure validates and registers a structure, then recomputes the
// derivation graph. Capabilities not registered in the catalog act as
// structure-local axioms. An axiom name identifies one capability across the
// catalog: it may not reuse a registered capability's name, nor the name of
// another structure's different axiom.
func (c *Catalog) DefineStructure(name, doc string, reqs ...Requirement) (*Structure, error) {
	s, err := newStructure(name, doc, reqs)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.frozen {
		return nil, definitionErr(name, ErrFrozen, "")
	}
	if _, ok := c.structures[name]; ok {
		return nil, definitionErr(name, ErrDuplicateName, "")
	}
	for _, req := range s.Requirements {
		if known, ok := c.capabilities[req.Capability.Name]; ok && known != req.Capability {
			return nil, definitionErr(name, ErrDuplicateName,
				"axiom %q shadows the registered capability", req.Capability.Name)
		}
		if local, ok := c.axioms[req.Capability.Name]; ok && local != req.Capability {
			return nil, definitionErr(name, ErrDuplicateName,
				"axiom %q differs from the one already defined under that name", req.Capability.Name)
		}
		for _, role := range req.Roles {
			if known, ok := c.roles[role.Name]; ok && known.Kind != role.Kind {
				return nil, definitionErr(name, ErrInconsistent,
					"role %s is registered as %s, bound as %s", role.Name, known.Kind, role.Kind)
			}
		}
	}
	for _, other := range c.order {
		if slices.Equal(c.structures[other].keys, s.keys) {
			return nil, definitionErr(name, ErrDuplicateStructure, "same capabilities as %s", other)
		}
	}

	for _, req := range s.Requirements {
		if _, ok := c.capabilities[req.Capability.Name]; !ok {
			c.axioms[req.Capability.Name] = req.Capability
		}
	}
	c.structures[name] = s
	c.order = append(c.order, name)
	c.derive()
	c.version++
	return s, nil
}

// MustDefineStructure is like DefineStructure but panics on error. Use it for
// package-level catalogs whose definitions are known to be valid.
func (c *Catalog) MustDefineStructure(name, doc string, reqs ...Requirement) *Structure {
	s, err := c.DefineStructure(name, doc, reqs...)
	if err != nil {
		panic(err)
	}
	return s
}

// Structure looks up a structure by name.
func (c *Catalog) Structure(name string) (*Structure, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	s, ok := c.structures[name]
	return s, ok
}

// Structures returns every structure in definition order.
func (c *Catalog) Structures() []*Structure {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*Structure, len(c.order))
	for i, name := range c.order {
		out[i] = c.structures[name]
	}
	return out
}

// Laws binds a requirement's capability to its roles, yielding the laws a
// verifier evaluates.
func (c *Catalog) Laws(req Requirement) ([]Law, error) {
	if err := req.validate(req.positiveKey()); err != nil {
		return nil, err
	}
	return bindLaws(req), nil
}

// Law is a law template bound to concrete roles.
type Law struct {
	Requirement Requirement
	Template    LawTemplate
	Key         string // "associative(addition)/associativity"
	Statement   string // "(a + b) + c = a + (b + c)"
}

func bindLaws(req Requirement) []Law {
	laws := make([]Law, len(req.Capability.Laws))
	for i, tmpl := range req.Capability.Laws {
		laws[i] = Law{
			Requirement: req,
			Template:    tmpl,
			Key:         req.Key() + "/" + tmpl.Name,
			Statement:   render(tmpl.Statement, req.Roles),
		}
	}
	return laws
}

var (
	standardOnce    sync.Once
	standardCatalog *Catalog
)

// Standard returns the frozen built-in catalog, built once per process.
func Standard() *Catalog {
	standardOnce.Do(func() {
		standardCatalog = NewStandardCatalog()
		standardCatalog.Freeze()
	})
	return standardCatalog
}

// NewStandardCatalog returns a mutable catalog holding the built-in
// structures, for callers that extend the hierarchy.
func NewStandardCatalog() *Catalog {
	c := NewCatalog()
	defineStandard(c)
	return c
}

// MustStructure looks up a structure in the standard catalog.
func MustStructure(name string) *Structure {
	s, ok := Standard().Structure(name)
	if !ok {
		panic(fmt.Sprintf("lawalgebra: no standard structure %q", name))
	}
	return s
}

// snapshot returns a private copy of the catalog and the version it was
// taken at. Structures are immutable and shared.
func (c *Catalog) snapshot() (*Catalog, uint64) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	s := &Catalog{
		frozen:       c.frozen,
		roles:        maps.Clone(c.roles),
		capabilities: maps.Clone(c.capabilities),
		axioms:       maps.Clone(c.axioms),
		structures:   maps.Clone(c.structures),
		order:        slices.Clone(c.order),
		implied:      make(map[string][]string, len(c.implied)),
		notes:        maps.Clone(c.notes),
		version:      c.version,
	}
	for k, v := range c.implied {
		s.implied[k] = slices.Clone(v)
	}
	return s, c.version
}

// commit replaces the catalog's definitions with those of s, unless the
// catalog changed since version.
func (c *Catalog) commit(s *Catalog, version uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.version != version {
		return false
	}
	c.roles = s.roles
	c.capabilities = s.capabilities
	c.axioms = s.axioms
	c.structures = s.structures
	c.order = s.order
	c.implied = s.implied
	c.notes = s.notes
	c.version++
	return true
}
