package lawalgebra

import (
	"errors"
	"fmt"
)

// Error classes. Definition and claim errors are raised at the point of
// misuse; law failures are never errors, they are LawResult data.
var (
	ErrDefinition = errors.New("definition error")
	ErrClaim      = errors.New("claim error")
	ErrSampling   = errors.New("sampling error")

	ErrArity              = errors.New("arity mismatch")
	ErrInconsistent       = errors.New("inconsistent capability set")
	ErrDuplicateStructure = errors.New("duplicate capability set")
	ErrDuplicateName      = errors.New("name already defined")
	ErrUnknown            = errors.New("not defined")
	ErrFrozen             = errors.New("catalog is frozen")

	ErrMissingOperation = errors.New("missing operation")
	ErrNoEquivalence    = errors.New("equivalence relation not supplied")
)

// DefinitionError reports a capability or structure that cannot be
// registered. It matches ErrDefinition and its cause with errors.Is.
type DefinitionError struct {
	Subject string // Capability or structure name
	Detail  string
	Err     error
}

func (e *DefinitionError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("lawalgebra: define %s: %v", e.Subject, e.Err)
	}
	return fmt.Sprintf("lawalgebra: define %s: %v: %s", e.Subject, e.Err, e.Detail)
}

func (e *DefinitionError) Unwrap() []error {
	return []error{ErrDefinition, e.Err}
}

func definitionErr(subject string, err error, format string, args ...any) error {
	return &DefinitionError{Subject: subject, Detail: fmt.Sprintf(format, args...), Err: err}
}

// ClaimError reports a malformed conformance claim.
type ClaimError struct {
	Structure string
	Type      string // Carrier type, as printed by %T
	Role      string // Offending role, if any
	Err       error
}

func (e *ClaimError) Error() string {
	if e.Role == "" {
		return fmt.Sprintf("lawalgebra: claim %s for %s: %v", e.Structure, e.Type, e.Err)
	}
	return fmt.Sprintf("lawalgebra: claim %s for %s: role %q: %v", e.Structure, e.Type, e.Role, e.Err)
}

func (e *ClaimError) Unwrap() []error {
	return []error{ErrClaim, e.Err}
}
