package lawalgebra

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// ErrNotCertified is returned when a value's type has no certificate for a
// required structure.
var ErrNotCertified = errors.New("not certified")

// Certificate records that a carrier type passed verification. Types that
// embed a Certificate carry their proof with them.
type Certificate struct {
	TypeName   string    // Carrier type name, as reported by Verify
	Structures []string  // Declared and implied structures that passed
	Laws       []string  // Law keys that passed
	VerifiedAt time.Time // When the report was certified
	Seed       int64
	Samples    int
	ReportID   uuid.UUID
}

// Certify turns an all-pass report into a certificate.
func Certify(r *Report) (Certificate, error) {
	if r == nil || !r.Passed() {
		var failed int
		if r != nil {
			failed = len(r.Failures())
		}
		return Certificate{}, fmt.Errorf("%w: report has %d failed laws", ErrNotCertified, failed)
	}
	var laws []string
	for _, res := range r.Results {
		laws = append(laws, res.Requirement+"/"+res.Law)
	}
	slices.Sort(laws)
	return Certificate{
		TypeName:   r.Type,
		Structures: r.Structures(),
		Laws:       slices.Compact(laws),
		VerifiedAt: time.Now(),
		Seed:       r.Seed,
		Samples:    r.Samples,
		ReportID:   r.ID,
	}, nil
}

// Covers reports whether the certificate includes structure.
func (c Certificate) Covers(structure string) bool {
	return slices.Contains(c.Structures, structure)
}

// Certifier is an in-process registry of certificates keyed by type name.
// It lets code at a boundary accept only values whose type was verified.
type Certifier struct {
	mu    sync.RWMutex
	certs map[string]Certificate
}

// NewCertifier creates a certifier with an empty registry.
func NewCertifier() *Certifier {
	return &Certifier{certs: make(map[string]Certificate)}
}

// Register adds or replaces the certificate for its type. Certificates for
// the same type merge their structures.
func (c *Certifier) Register(cert Certificate) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if prev, ok := c.certs[cert.TypeName]; ok {
		cert.Structures = mergeSorted(prev.Structures, cert.Structures)
		cert.Laws = mergeSorted(prev.Laws, cert.Laws)
	}
	c.certs[cert.TypeName] = cert
}

// Lookup returns the certificate registered for typeName.
func (c *Certifier) Lookup(typeName string) (Certificate, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	cert, ok := c.certs[typeName]
	return cert, ok
}

// Require checks that v's type is certified for every named structure,
// either through the registry or an embedded Certificate.
func (c *Certifier) Require(v any, structures ...string) error {
	t := reflect.TypeOf(v)
	if t == nil {
		return fmt.Errorf("%w: nil value", ErrNotCertified)
	}
	typeName := t.String()

	cert, ok := c.Lookup(typeName)
	if !ok {
		if embedded := extractCertificate(v); embedded != nil {
			cert, ok = *embedded, true
		}
	}
	if !ok {
		return fmt.Errorf("%w: type %s has no certificate", ErrNotCertified, typeName)
	}
	for _, s := range structures {
		if !cert.Covers(s) {
			return fmt.Errorf("%w: type %s is not certified as %s (has: %v)",
				ErrNotCertified, typeName, s, cert.Structures)
		}
	}
	return nil
}

// extractCertificate finds a Certificate field embedded in a struct value.
func extractCertificate(v any) *Certificate {
	val := reflect.ValueOf(v)
	if val.Kind() == reflect.Pointer {
		if val.IsNil() {
			return nil
		}
		val = val.Elem()
	}
	if val.Kind() != reflect.Struct {
		return nil
	}
	certType := reflect.TypeFor[Certificate]()
	typ := val.Type()
	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		if field.Anonymous && field.Type == certType {
			cert := val.Field(i).Interface().(Certificate)
			return &cert
		}
	}
	return nil
}

func mergeSorted(a, b []string) []string {
	out := append(slices.Clone(a), b...)
	slices.Sort(out)
	return slices.Compact(out)
}

var globalCertifier = NewCertifier()

// Register adds to the global certifier.
func Register(cert Certificate) {
	globalCertifier.Register(cert)
}

// RequireCertified checks v against the global certifier.
func RequireCertified(v any, structures ...string) error {
	return globalCertifier.Require(v, structures...)
}
