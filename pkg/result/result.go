// Package result holds definition of validation outcome.
package result

import "fmt"

const (
	// KindMalformedInput tells that input text could not be parsed into expected structure.
	KindMalformedInput Kind = "malformed input"

	// KindSchemaViolation tells that parseable input fails one or more schema rules.
	KindSchemaViolation Kind = "schema violation"

	// KindResourceNotFound tells that referenced file does not exist or is unreadable.
	KindResourceNotFound Kind = "resource not found"

	// KindSchemaLoadFailure tells that schema definition itself is malformed or unreadable.
	KindSchemaLoadFailure Kind = "schema load failure"

	// KindEngineFailure tells that delegated validation engine raised error outside other categories.
	KindEngineFailure Kind = "engine failure"
)

// Kind describes category of validation failure.
type Kind string

// Result is tagged outcome of single validation. Zero value is invalid
// result without reason, use Valid or Invalid constructors instead.
type Result struct {
	valid  bool
	kind   Kind
	reason string
}

// Valid returns Result describing successful validation.
func Valid() Result {
	return Result{valid: true}
}

// Invalid returns Result describing failed validation of given kind with human-readable reason.
func Invalid(kind Kind, reason string) Result {
	return Result{kind: kind, reason: reason}
}

// Invalidf returns Result describing failed validation, formatting reason according to format specifier.
func Invalidf(kind Kind, format string, args ...any) Result {
	return Result{kind: kind, reason: fmt.Sprintf(format, args...)}
}

// IsValid tells whether validation succeeded.
func (r Result) IsValid() bool {
	return r.valid
}

// Kind returns category of failure. For valid Result it returns empty Kind.
func (r Result) Kind() Kind {
	return r.kind
}

// Reason returns human-readable description of failure. For valid Result it returns empty string.
func (r Result) Reason() string {
	return r.reason
}

// String returns text representation of Result.
func (r Result) String() string {
	if r.valid {
		return "valid"
	}

	return fmt.Sprintf("invalid, %s: %s", r.kind, r.reason)
}
