// Package xmlschema holds engine that validates XML documents against XSD.
// lestrrat-go/libxml2 is used under the hood.
package xmlschema

import (
	"fmt"
	"os"

	"github.com/lestrrat-go/libxml2"
	"github.com/lestrrat-go/libxml2/xsd"

	v "github.com/pawelWritesCode/shapecheck/pkg/validator"
)

// XSDValidator is entity that has ability to validate XML document on user OS
// against XSD schema on user OS.
type XSDValidator struct{}

func NewXSDValidator() XSDValidator {
	return XSDValidator{}
}

// Validate validates XML document at documentPath against XSD schema at schemaPath.
//
// Failure causes are distinguishable through returned error:
// missing or malformed schema wraps validator.ErrSchemaLoad,
// missing document preserves fs error chain (errors.Is(err, fs.ErrNotExist)),
// document that is not well-formed XML wraps validator.ErrMalformed,
// schema-conformance violations come back as *validator.ViolationError.
func (xv XSDValidator) Validate(documentPath, schemaPath string) error {
	schemaBytes, err := os.ReadFile(schemaPath)
	if err != nil {
		return fmt.Errorf("%w: %s", v.ErrSchemaLoad, err.Error())
	}

	compiled, err := xsd.Parse(schemaBytes)
	if err != nil {
		return fmt.Errorf("%w: %s", v.ErrSchemaLoad, err.Error())
	}
	defer compiled.Free()

	documentBytes, err := os.ReadFile(documentPath)
	if err != nil {
		return fmt.Errorf("could not read XML document: %w", err)
	}

	document, err := libxml2.Parse(documentBytes)
	if err != nil {
		return fmt.Errorf("%w: %s", v.ErrMalformed, err.Error())
	}
	defer document.Free()

	if err = compiled.Validate(document); err != nil {
		if sverr, ok := err.(xsd.SchemaValidationError); ok {
			validationErrors := sverr.Errors()
			violations := make([]string, 0, len(validationErrors))
			for _, validationErr := range validationErrors {
				violations = append(violations, validationErr.Error())
			}

			return v.NewViolationError(violations...)
		}

		return fmt.Errorf("%w: %s", v.ErrEngine, err.Error())
	}

	return nil
}
