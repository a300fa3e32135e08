package lawalgebra

import (
	"cmp"
	"slices"
)

// Edge is a derivation: every claim satisfying From satisfies To, because
// To's requirements are a strict subset of From's.
type Edge struct {
	From string
	To   string
	Note string
}

func (e Edge) String() string {
	return e.From + " ⇒ " + e.To
}

// derive recomputes the full derivation relation. Callers hold c.mu.
func (c *Catalog) derive() {
	implied := make(map[string][]string, len(c.order))
	for _, sName := range c.order {
		s := c.structures[sName]
		for _, wName := range c.order {
			if wName == sName {
				continue
			}
			if isStrictSubset(c.structures[wName].keys, s.keys) {
				implied[sName] = append(implied[sName], wName)
			}
		}
	}
	c.implied = implied
}

// isStrictSubset reports whether sorted sub ⊂ sorted super.
func isStrictSubset(sub, super []string) bool {
	if len(sub) >= len(super) {
		return false
	}
	i := 0
	for _, k := range super {
		if i < len(sub) && sub[i] == k {
			i++
		}
	}
	return i == len(sub)
}

// Implied returns the structures that name implies, in definition order.
func (c *Catalog) Implied(name string) []*Structure {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := c.implied[name]
	out := make([]*Structure, len(names))
	for i, n := range names {
		out[i] = c.structures[n]
	}
	return out
}

// Implies reports whether structure from implies structure to.
func (c *Catalog) Implies(from, to string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Contains(c.implied[from], to)
}

// Derivations returns every derivation edge, sorted by (From, To).
func (c *Catalog) Derivations() []Edge {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var edges []Edge
	for from, tos := range c.implied {
		for _, to := range tos {
			edges = append(edges, Edge{From: from, To: to, Note: c.notes[[2]string{from, to}]})
		}
	}
	sortEdges(edges)
	return edges
}

// Covers returns the transitive reduction of the derivation graph: the edges
// S ⇒ W with no structure strictly between them.
func (c *Catalog) Covers() []Edge {
	c.mu.RLock()
	defer c.mu.RUnlock()

	var edges []Edge
	for from, tos := range c.implied {
		for _, to := range tos {
			direct := true
			for _, mid := range tos {
				if mid != to && slices.Contains(c.implied[mid], to) {
					direct = false
					break
				}
			}
			if direct {
				edges = append(edges, Edge{From: from, To: to, Note: c.notes[[2]string{from, to}]})
			}
		}
	}
	sortEdges(edges)
	return edges
}

// DocumentDerivation attaches a note to a computed derivation edge. It cannot
// create an edge the capability sets do not imply.
func (c *Catalog) DocumentDerivation(from, to, note string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.frozen {
		return definitionErr(from+" ⇒ "+to, ErrFrozen, "")
	}
	if _, ok := c.structures[from]; !ok {
		return definitionErr(from, ErrUnknown, "")
	}
	if _, ok := c.structures[to]; !ok {
		return definitionErr(to, ErrUnknown, "")
	}
	if !slices.Contains(c.implied[from], to) {
		return definitionErr(from+" ⇒ "+to, ErrInconsistent,
			"%s does not carry every requirement of %s", from, to)
	}
	c.notes[[2]string{from, to}] = note
	c.version++
	return nil
}

func sortEdges(edges []Edge) {
	slices.SortFunc(edges, func(a, b Edge) int {
		if n := cmp.Compare(a.From, b.From); n != 0 {
			return n
		}
		return cmp.Compare(a.To, b.To)
	})
}
