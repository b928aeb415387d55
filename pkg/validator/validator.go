// Package validator holds contracts and shared error values for validation engines.
package validator

// SchemaValidator describes entity that can validate document against some kind of schema.
type SchemaValidator interface {
	// Validate validates document against schema. schema may be raw schema definition
	// or reference to it, depending on implementation.
	Validate(document, schema string) error
}

// ValueSchemaValidator describes entity that can validate already-parsed document against already-parsed schema.
type ValueSchemaValidator interface {
	// ValidateValue validates document against schema, both being structured Go values.
	ValidateValue(document, schema any) error
}

// DocumentValidator describes entity that can validate document located on disk
// against schema located on disk.
type DocumentValidator interface {
	// Validate validates document at documentPath against schema at schemaPath.
	Validate(documentPath, schemaPath string) error
}

// Validator describes validator
type Validator interface {
	// Validate validates in
	Validate(in any) error
}
