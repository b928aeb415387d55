package shapecheck

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/pawelWritesCode/shapecheck/pkg/csvheader"
	"github.com/pawelWritesCode/shapecheck/pkg/format"
	"github.com/pawelWritesCode/shapecheck/pkg/result"
	"github.com/pawelWritesCode/shapecheck/pkg/validator"
)

// ValidateJSON checks document against jsonSchema.
//
// document may be raw JSON text (string or []byte) or already-parsed structured value.
// jsonSchema may be raw JSON schema text, already-parsed structured value or reference
// to schema: URL, "file://" prefixed path or path relative to schemas directory
// given during construction phase.
//
// Malformed raw text never reaches validation engine, it comes back
// as invalid result of kind result.KindMalformedInput.
func (sc *ShapeContext) ValidateJSON(document, jsonSchema any) result.Result {
	documentText, isRawDocument, err := sc.normalizeJSONDocument(document)
	if err != nil {
		return sc.report(result.Invalid(result.KindMalformedInput, err.Error()))
	}

	switch s := jsonSchema.(type) {
	case string:
		return sc.validateJSONAgainstSchemaText(documentText, s)
	case []byte:
		return sc.validateJSONAgainstSchemaText(documentText, string(s))
	default:
		var documentValue any
		if isRawDocument {
			if err := sc.Serializers.JSON.Deserialize([]byte(documentText), &documentValue); err != nil {
				return sc.report(result.Invalidf(result.KindMalformedInput, "%s: %s", ErrJSON, err.Error()))
			}
		} else {
			documentValue = document
		}

		return sc.report(sc.toResult(sc.SchemaValidators.ValueValidator.ValidateValue(documentValue, jsonSchema)))
	}
}

// ValidateYAML checks YAML document against JSON schema.
//
// document may be raw YAML text (string or []byte) or already-parsed structured value.
// jsonSchema accepts the same forms as in ValidateJSON.
func (sc *ShapeContext) ValidateYAML(document, jsonSchema any) result.Result {
	var rawDocument []byte

	switch d := document.(type) {
	case string:
		rawDocument = []byte(d)
	case []byte:
		rawDocument = d
	default:
		return sc.ValidateJSON(document, jsonSchema)
	}

	var documentValue any
	if err := sc.Serializers.YAML.Deserialize(rawDocument, &documentValue); err != nil {
		return sc.report(result.Invalidf(result.KindMalformedInput, "%s: %s", ErrYAML, err.Error()))
	}

	return sc.ValidateJSON(normalizeYAMLValue(documentValue), jsonSchema)
}

// ValidateCSVHeader checks whether header row of CSV file under filePath
// contains every header from requiredHeaders.
//
// Extra columns, column order and data rows are ignored. Header comparison
// is exact string match. On missing headers the full missing set
// requiredHeaders − actualHeaders is reported. requiredHeaders must not be
// empty, such call indicates misuse and panics.
func (sc *ShapeContext) ValidateCSVHeader(filePath string, requiredHeaders []string) result.Result {
	return sc.report(sc.toResult(sc.HeaderValidator.Validate(filePath, requiredHeaders)))
}

// ValidateXML checks XML document under documentPath against XSD schema under schemaPath.
//
// Missing schema, missing document and schema-conformance violations are
// distinguished through Kind of returned result.
func (sc *ShapeContext) ValidateXML(documentPath, schemaPath string) result.Result {
	return sc.report(sc.toResult(sc.XMLValidator.Validate(documentPath, schemaPath)))
}

// ValidateNodesExist checks whether every expression from exprs resolves to
// at least one node in document of given data format. All failing expressions
// are reported, not only the first one.
func (sc *ShapeContext) ValidateNodesExist(df format.DataFormat, document []byte, exprs ...string) result.Result {
	var checker nodeChecker

	switch df {
	case format.JSON:
		checker = sc.NodeCheckers.JSON
	case format.YAML:
		checker = sc.NodeCheckers.YAML
	case format.XML:
		checker = sc.NodeCheckers.XML
	default:
		return sc.report(result.Invalidf(result.KindEngineFailure, "%s: %s", ErrUnknownFormat, df))
	}

	var violations []string
	for _, expr := range exprs {
		if err := checker.Exists(expr, document); err != nil {
			violations = append(violations, err.Error())
		}
	}

	if len(violations) > 0 {
		return sc.report(result.Invalid(result.KindSchemaViolation, strings.Join(violations, "; ")))
	}

	return result.Valid()
}

// validateJSONAgainstSchemaText routes schema given as text to proper engine:
// recognized file reference or URL goes to ReferenceValidator, anything else
// is treated as raw schema definition.
func (sc *ShapeContext) validateJSONAgainstSchemaText(documentText, schemaText string) result.Result {
	if reference, found := sc.fileRecognizer.Recognize(schemaText); found {
		return sc.report(sc.toResult(sc.SchemaValidators.ReferenceValidator.Validate(documentText, "file://"+reference.Value)))
	}

	if err := sc.urlValidator.Validate(schemaText); err == nil {
		return sc.report(sc.toResult(sc.SchemaValidators.ReferenceValidator.Validate(documentText, schemaText)))
	}

	// not JSON, so it has to be OS path, possibly relative to schemas directory
	if !format.IsJSON([]byte(schemaText)) {
		return sc.report(sc.toResult(sc.SchemaValidators.ReferenceValidator.Validate(documentText, schemaText)))
	}

	return sc.report(sc.toResult(sc.SchemaValidators.StringValidator.Validate(documentText, schemaText)))
}

// normalizeJSONDocument turns document into JSON text. Second return argument
// tells whether document came in as raw text.
func (sc *ShapeContext) normalizeJSONDocument(document any) (string, bool, error) {
	switch d := document.(type) {
	case string:
		if !format.IsJSON([]byte(d)) {
			return "", true, fmt.Errorf("%w, detected %s format", ErrJSON, format.Detect([]byte(d)))
		}

		return d, true, nil
	case []byte:
		if !format.IsJSON(d) {
			return "", true, fmt.Errorf("%w, detected %s format", ErrJSON, format.Detect(d))
		}

		return string(d), true, nil
	default:
		serialized, err := sc.Serializers.JSON.Serialize(document)
		if err != nil {
			return "", false, fmt.Errorf("%w: %s", ErrJSON, err.Error())
		}

		return string(serialized), false, nil
	}
}

// toResult converts engine error into tagged validation result.
func (sc *ShapeContext) toResult(err error) result.Result {
	if err == nil {
		return result.Valid()
	}

	var violationErr *validator.ViolationError
	var missingHeaderErr *csvheader.MissingHeaderError

	switch {
	case errors.As(err, &missingHeaderErr):
		return result.Invalid(result.KindSchemaViolation, missingHeaderErr.Error())
	case errors.As(err, &violationErr):
		return result.Invalid(result.KindSchemaViolation, violationErr.Error())
	case errors.Is(err, validator.ErrSchemaLoad):
		return result.Invalid(result.KindSchemaLoadFailure, err.Error())
	case errors.Is(err, validator.ErrMalformed):
		return result.Invalid(result.KindMalformedInput, err.Error())
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, fs.ErrPermission):
		return result.Invalid(result.KindResourceNotFound, err.Error())
	default:
		return result.Invalid(result.KindEngineFailure, err.Error())
	}
}

// report prints reason of invalid result through debugger and passes result along.
func (sc *ShapeContext) report(r result.Result) result.Result {
	if !r.IsValid() && sc.Debugger.IsOn() {
		sc.Debugger.Print(r.String())
	}

	return r
}

// normalizeYAMLValue rewrites YAML mapping keys into strings, so value may be
// serialized back into JSON for validation engines.
func normalizeYAMLValue(in any) any {
	switch t := in.(type) {
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, v := range t {
			m[fmt.Sprintf("%v", k)] = normalizeYAMLValue(v)
		}

		return m
	case []any:
		for i := range t {
			t[i] = normalizeYAMLValue(t[i])
		}

		return t
	default:
		return in
	}
}
