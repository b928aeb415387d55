package validator

import (
	"errors"
	"strings"
)

// ErrMalformed tells that document could not be parsed into expected structure.
var ErrMalformed = errors.New("malformed document")

// ErrSchemaLoad tells that schema definition could not be loaded or compiled.
var ErrSchemaLoad = errors.New("schema load error")

// ErrEngine tells that validation engine failed outside of regular validation outcome.
var ErrEngine = errors.New("validation engine error")

// ViolationError is returned by engines when document is well-formed
// but breaks one or more schema rules. It carries every found violation,
// not only the first one.
type ViolationError struct {
	// Violations holds human-readable descriptions of all broken rules.
	Violations []string
}

func (e *ViolationError) Error() string {
	return strings.Join(e.Violations, "; ")
}

// NewViolationError returns *ViolationError with given violations.
func NewViolationError(violations ...string) *ViolationError {
	return &ViolationError{Violations: violations}
}
