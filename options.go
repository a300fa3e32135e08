package lawalgebra

import (
	"io"
	"log/slog"
	"runtime"
	"time"

	"github.com/lmittmann/tint"
)

// Options controls a verification run.
type Options struct {
	Samples   int   // Tuples drawn per law from sampled domains (default: 100)
	Seed      int64 // Seed for sampled domains; same seed, same results
	Workers   int   // Laws evaluated concurrently (0 = GOMAXPROCS)
	MaxTuples int   // Largest explicit product checked exhaustively (0 = 65536)

	// IncludeImplied also reports every structure the claimed one implies,
	// catching a strong claim that breaks a law of a weaker structure.
	IncludeImplied bool

	Catalog *Catalog     // Derivations source (nil = Standard())
	Logger  *slog.Logger // nil = slog.Default()
	Metrics *Metrics     // Optional
}

// DefaultOptions returns sensible defaults.
func DefaultOptions() Options {
	return Options{
		Samples:        100,
		Seed:           1,
		Workers:        runtime.GOMAXPROCS(0),
		MaxTuples:      1 << 16,
		IncludeImplied: true,
	}
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.GOMAXPROCS(0)
	}
	if o.MaxTuples <= 0 {
		o.MaxTuples = 1 << 16
	}
	if o.Catalog == nil {
		o.Catalog = Standard()
	}
	if o.Logger == nil {
		o.Logger = slog.Default()
	}
	return o
}

// NewLogger returns a colorized console logger for verification output.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: time.TimeOnly,
	}))
}
