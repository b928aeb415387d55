// Package schema holds engines that validate JSON-like data against JSON schema.
//
// Package contains two types of JSON schema validators:
//
// raw - which accepts JSON schema string,
// reference - which accepts reference to JSON schema,
//
//	JSONSchemaRawXGValidator has ability to validate data against JSON schema string written with draft v4 v6 or v7.
//	JSONSchemaRawQIValidator has ability to validate data against JSON schema string written with draft 7 & 2019-09.
//	JSONSchemaRawSTValidator has ability to validate data against JSON schema string written with draft 2020-12.
//	JSONSchemaReferenceXGValidator has ability to validate data against JSON schema passed as URL or OS path.
//
// By default, gojsonschema will try to detect the draft of a schema by using the $schema keyword and parse it
// in a strict draft-04, draft-06 or draft-07 mode. If $schema is missing, or the draft version is not explicitely set,
// a hybrid mode is used which merges together functionality of all drafts into one mode.
//
// Every engine reports broken schema rules through *validator.ViolationError,
// schema definition problems wrapped in validator.ErrSchemaLoad and any other
// engine trouble wrapped in validator.ErrEngine.
package schema

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path"
	"strings"

	"github.com/qri-io/jsonschema"
	stjschema "github.com/santhosh-tekuri/jsonschema/v6"
	jschema "github.com/xeipuuv/gojsonschema"

	"github.com/pawelWritesCode/shapecheck/pkg/osutils"
	"github.com/pawelWritesCode/shapecheck/pkg/urlutils"
	v "github.com/pawelWritesCode/shapecheck/pkg/validator"
)

// JSONSchemaRawXGValidator is entity that has ability to validate data against JSON schema passed as string.
// xeipuuv/gojsonschema is used under the hood.
type JSONSchemaRawXGValidator struct{}

// JSONSchemaRawQIValidator is entity that has ability to validate data against JSON schema passed as string.
// qri-io/jsonschema is used under the hood.
type JSONSchemaRawQIValidator struct{}

// JSONSchemaRawSTValidator is entity that has ability to validate data against JSON schema passed as string.
// santhosh-tekuri/jsonschema is used under the hood.
type JSONSchemaRawSTValidator struct{}

// JSONSchemaReferenceXGValidator is entity that has ability to validate data against JSON schema passed as reference.
// xeipuuv/gojsonschema is used under the hood.
type JSONSchemaReferenceXGValidator struct {
	fileValidator v.Validator
	urlValidator  v.Validator

	// schemasDir represents absolute path to JSON schemas directory.
	schemasDir string
}

func NewJSONSchemaRawXGValidator() JSONSchemaRawXGValidator {
	return JSONSchemaRawXGValidator{}
}

func NewJSONSchemaRawQIValidator() JSONSchemaRawQIValidator {
	return JSONSchemaRawQIValidator{}
}

func NewJSONSchemaRawSTValidator() JSONSchemaRawSTValidator {
	return JSONSchemaRawSTValidator{}
}

// NewDefaultJSONSchemaReferenceXGValidator creates new JSONSchemaReferenceXGValidator with fixed services.
func NewDefaultJSONSchemaReferenceXGValidator(schemasDir string) JSONSchemaReferenceXGValidator {
	return NewJSONSchemaReferenceXGValidator(schemasDir, osutils.NewFileValidator(), urlutils.NewURLValidator())
}

// NewJSONSchemaReferenceXGValidator creates new JSONSchemaReferenceXGValidator with provided services.
func NewJSONSchemaReferenceXGValidator(schemasDir string, fileValidator v.Validator, urlValidator v.Validator) JSONSchemaReferenceXGValidator {
	return JSONSchemaReferenceXGValidator{
		fileValidator: fileValidator,
		urlValidator:  urlValidator,
		schemasDir:    schemasDir,
	}
}

// Validate validates document against jsonSchema.
// according to xeipuuv/gojsonschema library it covers JSON Schema, draft v4 v6 & v7
func (jsv JSONSchemaRawXGValidator) Validate(document, jsonSchema string) error {
	return validateXG(jschema.NewStringLoader(jsonSchema), jschema.NewStringLoader(document))
}

// ValidateValue validates already-parsed document against already-parsed jsonSchema.
func (jsv JSONSchemaRawXGValidator) ValidateValue(document, jsonSchema any) error {
	return validateXG(jschema.NewGoLoader(jsonSchema), jschema.NewGoLoader(document))
}

// Validate validates document against json schema.
// according to library documentation it covers https://json-schema.org drafts 7 & 2019-09
func (jsv JSONSchemaRawQIValidator) Validate(document, jsonSchema string) error {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(jsonSchema), rs); err != nil {
		return fmt.Errorf("%w: %s", v.ErrSchemaLoad, err.Error())
	}

	errs, err := rs.ValidateBytes(context.Background(), []byte(document))
	if err != nil {
		return fmt.Errorf("%w: %s", v.ErrEngine, err.Error())
	}

	if len(errs) > 0 {
		violations := make([]string, 0, len(errs))
		for _, keyErr := range errs {
			violations = append(violations, keyErr.Error())
		}

		return v.NewViolationError(violations...)
	}

	return nil
}

// Validate validates document against json schema.
// according to library documentation it covers https://json-schema.org draft 2020-12
func (jsv JSONSchemaRawSTValidator) Validate(document, jsonSchema string) error {
	rawSchema, err := stjschema.UnmarshalJSON(strings.NewReader(jsonSchema))
	if err != nil {
		return fmt.Errorf("%w: %s", v.ErrSchemaLoad, err.Error())
	}

	compiler := stjschema.NewCompiler()
	if err = compiler.AddResource("schema.json", rawSchema); err != nil {
		return fmt.Errorf("%w: %s", v.ErrSchemaLoad, err.Error())
	}

	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("%w: %s", v.ErrSchemaLoad, err.Error())
	}

	var value any
	if err = json.Unmarshal([]byte(document), &value); err != nil {
		return fmt.Errorf("%w: %s", v.ErrEngine, err.Error())
	}

	if err = compiled.Validate(value); err != nil {
		var validationErr *stjschema.ValidationError
		if errors.As(err, &validationErr) {
			return v.NewViolationError(strings.Split(validationErr.Error(), "\n")...)
		}

		return fmt.Errorf("%w: %s", v.ErrEngine, err.Error())
	}

	return nil
}

// Validate validates document against JSON schema located in schemaPath.
// schemaPath may be URL or relative/full path to json schema on user OS
// according to xeipuuv/gojsonschema library it covers JSON Schema, draft v4 v6 & v7
func (jsv JSONSchemaReferenceXGValidator) Validate(document, schemaPath string) error {
	source, err := jsv.getSource(schemaPath)
	if err != nil {
		return fmt.Errorf("%w: %s", v.ErrSchemaLoad, err.Error())
	}

	return validateXG(jschema.NewReferenceLoader(source), jschema.NewStringLoader(document))
}

// validateXG compiles schema from schemaLoader and checks document from documentLoader against it.
func validateXG(schemaLoader, documentLoader jschema.JSONLoader) error {
	compiled, err := jschema.NewSchema(schemaLoader)
	if err != nil {
		return fmt.Errorf("%w: %s", v.ErrSchemaLoad, err.Error())
	}

	outcome, err := compiled.Validate(documentLoader)
	if err != nil {
		return fmt.Errorf("%w: %s", v.ErrEngine, err.Error())
	}

	if !outcome.Valid() {
		violations := make([]string, 0, len(outcome.Errors()))
		for _, resultErr := range outcome.Errors() {
			violations = append(violations, resultErr.String())
		}

		return v.NewViolationError(violations...)
	}

	return nil
}

// getSource accepts rawSource, validate it and returns valid source
// available sources are: file system os path and URL
func (jsv JSONSchemaReferenceXGValidator) getSource(rawSource string) (string, error) {
	if rawSource == "" {
		return rawSource, errors.New("provided rawSource should not be empty string")
	}

	errURL := jsv.urlValidator.Validate(rawSource)
	if errURL == nil { // is valid URL
		return rawSource, nil
	}

	var pth string

	if path.IsAbs(rawSource) { // rawSource is valid absolute path
		pth = rawSource
	} else {
		pth = path.Clean(path.Join(jsv.schemasDir, rawSource))
	}

	errPath := jsv.fileValidator.Validate(pth)
	if errPath == nil { // pth points at some resource in user OS
		return fmt.Sprintf("%s%s", "file://", pth), nil
	}

	return "", fmt.Errorf("%s isn't valid path to any resource on your OS, nor valid URL", rawSource)
}
