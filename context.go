package shapecheck

import (
	"github.com/pawelWritesCode/shapecheck/pkg/csvheader"
	"github.com/pawelWritesCode/shapecheck/pkg/debugger"
	"github.com/pawelWritesCode/shapecheck/pkg/nodecheck"
	"github.com/pawelWritesCode/shapecheck/pkg/osutils"
	"github.com/pawelWritesCode/shapecheck/pkg/schema"
	"github.com/pawelWritesCode/shapecheck/pkg/serializer"
	"github.com/pawelWritesCode/shapecheck/pkg/urlutils"
	"github.com/pawelWritesCode/shapecheck/pkg/validator"
	"github.com/pawelWritesCode/shapecheck/pkg/xmlschema"
)

// ShapeContext holds utility services for checking data against expected shapes.
type ShapeContext struct {
	// Debugger represents debugger.
	Debugger debuggable

	// SchemaValidators holds engines available to validate data against JSON schemas.
	SchemaValidators SchemaValidators

	// HeaderValidator is engine that has ability to validate CSV file header row.
	HeaderValidator headerValidator

	// XMLValidator is engine that has ability to validate XML document against XSD schema.
	XMLValidator validator.DocumentValidator

	// NodeCheckers are entities that has ability to check node presence in different data formats.
	NodeCheckers NodeCheckers

	// Serializers are entities that has ability to serialize and deserialize data in particular format.
	Serializers Serializers

	// fileRecognizer is entity that has ability to recognize file reference in schema argument.
	fileRecognizer fileRecognizer

	// urlValidator is entity that has ability to recognize URL reference in schema argument.
	urlValidator urlValidator
}

// SchemaValidators is container for JSON schema validation engines.
type SchemaValidators struct {
	// StringValidator represents entity that has ability to validate document against schema passed as string.
	StringValidator validator.SchemaValidator

	// ReferenceValidator represents entity that has ability to validate document against string with reference
	// to schema, which may be URL or relative/full OS path for example.
	ReferenceValidator validator.SchemaValidator

	// ValueValidator represents entity that has ability to validate already-parsed document
	// against already-parsed schema.
	ValueValidator validator.ValueSchemaValidator
}

// NodeCheckers is container for different data formats node checkers.
type NodeCheckers struct {
	// JSON is entity that has ability to check node presence in JSON bytes.
	JSON nodeChecker

	// YAML is entity that has ability to check node presence in YAML bytes.
	YAML nodeChecker

	// XML is entity that has ability to check node presence in XML bytes.
	XML nodeChecker
}

// Serializers is container for entities that know how to serialize and deserialize data.
type Serializers struct {
	// JSON is entity that has ability to serialize and deserialize JSON bytes.
	JSON serializable

	// YAML is entity that has ability to serialize and deserialize YAML bytes.
	YAML serializable
}

// NewDefaultShapeContext returns *ShapeContext with default services.
// schemasDir may be empty string or valid full path to directory with JSON schemas.
func NewDefaultShapeContext(isDebug bool, schemasDir string) *ShapeContext {
	rawValidator := schema.NewJSONSchemaRawXGValidator()

	schemaValidators := SchemaValidators{
		StringValidator:    rawValidator,
		ReferenceValidator: schema.NewDefaultJSONSchemaReferenceXGValidator(schemasDir),
		ValueValidator:     rawValidator,
	}

	nodeCheckers := NodeCheckers{
		JSON: nodecheck.NewDynamicJSONChecker(
			nodecheck.NewGJSONChecker(),
			nodecheck.NewOliveagleJSONChecker(),
			nodecheck.NewAntchfxJSONChecker(),
		),
		YAML: nodecheck.NewGoccyYAMLChecker(),
		XML:  nodecheck.NewAntchfxXMLChecker(),
	}

	serializers := Serializers{
		JSON: serializer.NewJSONSerializer(),
		YAML: serializer.NewYAMLSerializer(),
	}

	return NewShapeContext(
		schemaValidators,
		csvheader.NewHeaderValidator(),
		xmlschema.NewXSDValidator(),
		nodeCheckers,
		serializers,
		debugger.NewDefault(isDebug),
	)
}

// NewShapeContext returns *ShapeContext with provided services.
func NewShapeContext(sv SchemaValidators, hv headerValidator, xv validator.DocumentValidator, n NodeCheckers, s Serializers, d debuggable) *ShapeContext {
	return &ShapeContext{
		Debugger:         d,
		SchemaValidators: sv,
		HeaderValidator:  hv,
		XMLValidator:     xv,
		NodeCheckers:     n,
		Serializers:      s,
		fileRecognizer:   osutils.NewFileRecognizer("file://", osutils.NewFileValidator()),
		urlValidator:     urlutils.NewURLValidator(),
	}
}

// SetDebugger sets new debugger for ShapeContext.
func (sc *ShapeContext) SetDebugger(d debuggable) {
	sc.Debugger = d
}

// SetSchemaStringValidator sets new schema StringValidator for ShapeContext.
func (sc *ShapeContext) SetSchemaStringValidator(j validator.SchemaValidator) {
	sc.SchemaValidators.StringValidator = j
}

// SetSchemaReferenceValidator sets new schema ReferenceValidator for ShapeContext.
func (sc *ShapeContext) SetSchemaReferenceValidator(j validator.SchemaValidator) {
	sc.SchemaValidators.ReferenceValidator = j
}

// SetSchemaValueValidator sets new schema ValueValidator for ShapeContext.
func (sc *ShapeContext) SetSchemaValueValidator(j validator.ValueSchemaValidator) {
	sc.SchemaValidators.ValueValidator = j
}

// SetHeaderValidator sets new CSV header validator for ShapeContext.
func (sc *ShapeContext) SetHeaderValidator(hv headerValidator) {
	sc.HeaderValidator = hv
}

// SetXMLValidator sets new XSD validation engine for ShapeContext.
func (sc *ShapeContext) SetXMLValidator(xv validator.DocumentValidator) {
	sc.XMLValidator = xv
}

// SetJSONNodeChecker sets new JSON node checker for ShapeContext.
func (sc *ShapeContext) SetJSONNodeChecker(c nodeChecker) {
	sc.NodeCheckers.JSON = c
}

// SetYAMLNodeChecker sets new YAML node checker for ShapeContext.
func (sc *ShapeContext) SetYAMLNodeChecker(c nodeChecker) {
	sc.NodeCheckers.YAML = c
}

// SetXMLNodeChecker sets new XML node checker for ShapeContext.
func (sc *ShapeContext) SetXMLNodeChecker(c nodeChecker) {
	sc.NodeCheckers.XML = c
}

// SetJSONSerializer sets new JSON serializer for ShapeContext.
func (sc *ShapeContext) SetJSONSerializer(jf serializable) {
	sc.Serializers.JSON = jf
}

// SetYAMLSerializer sets new YAML serializer for ShapeContext.
func (sc *ShapeContext) SetYAMLSerializer(yf serializable) {
	sc.Serializers.YAML = yf
}
