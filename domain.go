package lawalgebra

import (
	"fmt"
	"hash/fnv"
	"iter"
	"math"
	"math/rand"
)

// Domain is where a verifier draws law arguments from: either an explicit
// finite set of values or a seeded generator.
type Domain[T any] struct {
	values []T
	gen    func(r *rand.Rand) T
	err    error // misconfiguration found at construction
}

// Values is an explicit finite domain. When every tuple fits within
// Options.MaxTuples the verifier checks all of them, so a domain equal to the
// whole carrier gives exact answers.
func Values[T any](vs ...T) Domain[T] {
	return Domain[T]{values: vs}
}

// Generator is a sampled domain. gen must draw only from r.
func Generator[T any](gen func(r *rand.Rand) T) Domain[T] {
	return Domain[T]{gen: gen}
}

// IntRange is the explicit domain lo..hi inclusive.
func IntRange(lo, hi int) Domain[int] {
	var vs []int
	for i := lo; i <= hi; i++ {
		vs = append(vs, i)
		if i == hi {
			break // hi may be math.MaxInt
		}
	}
	return Values(vs...)
}

// Ints samples integers uniformly from [-bound, bound]. A negative bound, or
// one too large for the interval to be counted in an int, is a sampling error.
func Ints(bound int) Domain[int] {
	if bound < 0 || bound > (math.MaxInt-1)/2 {
		return Domain[int]{err: fmt.Errorf("%w: Ints bound %d out of range", ErrSampling, bound)}
	}
	return Generator(func(r *rand.Rand) int {
		return r.Intn(2*bound+1) - bound
	})
}

// Finite reports whether the domain is an explicit value set.
func (d Domain[T]) Finite() bool {
	return d.gen == nil
}

// Size returns the number of explicit values, or 0 for generators.
func (d Domain[T]) Size() int {
	return len(d.values)
}

func (d Domain[T]) validate(opts Options) error {
	if d.err != nil {
		return d.err
	}
	if opts.Samples <= 0 {
		return fmt.Errorf("%w: sample count %d", ErrSampling, opts.Samples)
	}
	if d.gen == nil && len(d.values) == 0 {
		return fmt.Errorf("%w: empty domain", ErrSampling)
	}
	return nil
}

// exhaustive reports whether all vars-tuples fit within limit.
func (d Domain[T]) exhaustive(vars, limit int) bool {
	if d.gen != nil {
		return false
	}
	total := 1
	for range vars {
		total *= len(d.values)
		if total > limit {
			return false
		}
	}
	return true
}

// tuples yields law arguments. The yielded slice is reused between
// iterations; callers copy it to keep it.
func (d Domain[T]) tuples(vars int, opts Options, seed int64) iter.Seq[[]Value] {
	if d.exhaustive(vars, opts.MaxTuples) {
		return d.all(vars)
	}
	return func(yield func([]Value) bool) {
		r := rand.New(rand.NewSource(seed))
		x := make([]Value, vars)
		for range opts.Samples {
			for i := range x {
				if d.gen != nil {
					x[i] = d.gen(r)
				} else {
					x[i] = d.values[r.Intn(len(d.values))]
				}
			}
			if !yield(x) {
				return
			}
		}
	}
}

// all walks the Cartesian product in lexicographic index order.
func (d Domain[T]) all(vars int) iter.Seq[[]Value] {
	return func(yield func([]Value) bool) {
		n := len(d.values)
		idx := make([]int, vars)
		x := make([]Value, vars)
		for {
			for i, j := range idx {
				x[i] = d.values[j]
			}
			if !yield(x) {
				return
			}
			k := vars - 1
			for k >= 0 {
				idx[k]++
				if idx[k] < n {
					break
				}
				idx[k] = 0
				k--
			}
			if k < 0 {
				return
			}
		}
	}
}

// lawSeed derives a per-law seed so results do not depend on scheduling.
func lawSeed(seed int64, key string) int64 {
	h := fnv.New64a()
	h.Write([]byte(key))
	return seed ^ int64(h.Sum64())
}
