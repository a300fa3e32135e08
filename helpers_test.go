package lawalgebra

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

// Bool is the two-element Boolean algebra.
type Bool bool

func (a Bool) Join(b Bool) Bool    { return a || b }
func (a Bool) Meet(b Bool) Bool    { return a && b }
func (Bool) Bottom() Bool          { return false }
func (Bool) Top() Bool             { return true }
func (a Bool) Complement() Bool    { return !a }
func (a Bool) Xor(b Bool) Bool     { return a != b }
func (a Bool) Implies(b Bool) Bool { return !a || b }
func (a Bool) Equiv(b Bool) Bool   { return a == b }

var allBools = Values[Bool](false, true)

// Z5 is the integers modulo 5.
type Z5 uint8

func (a Z5) Add(b Z5) Z5 { return (a + b) % 5 }
func (a Z5) Mul(b Z5) Z5 { return (a * b) % 5 }
func (a Z5) Neg() Z5     { return (5 - a) % 5 }
func (Z5) Zero() Z5      { return 0 }
func (Z5) One() Z5       { return 1 }

var allZ5 = Values[Z5](0, 1, 2, 3, 4)

func inZ5(a Z5) bool { return a < 5 }

func add(a, b int) int { return a + b }
func neg(a int) int    { return -a }

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// quietOptions are the defaults with logging discarded.
func quietOptions() Options {
	opts := DefaultOptions()
	opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	return opts
}

func verify[T any](t *testing.T, claim *Claim[T], domain Domain[T], opts Options) *Report {
	t.Helper()
	report, err := Verify(context.Background(), claim, domain, opts)
	require.NoError(t, err)
	require.NotNil(t, report)
	return report
}
