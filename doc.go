// Package shapecheck provides ShapeContext struct with methods that check data against expected shapes:
// JSON and YAML documents against JSON schema, CSV files against required header set
// and XML documents against XSD schema.
//
// ShapeContext may be initialized by two ways:
//
// First, returns *ShapeContext with default services:
//	func NewDefaultShapeContext(isDebug bool, schemasDir string) *ShapeContext
//
// Second, more customisable returns *ShapeContext with provided services:
//	func NewShapeContext(sv SchemaValidators, hv headerValidator, xv validator.DocumentValidator, n NodeCheckers, s Serializers, d debuggable) *ShapeContext
//
// No matter which way you choose, you can inject your custom services afterwards with one of available setters:
//	func (sc *ShapeContext) SetDebugger(d debuggable)
//	func (sc *ShapeContext) SetSchemaStringValidator(j validator.SchemaValidator)
//	func (sc *ShapeContext) SetSchemaReferenceValidator(j validator.SchemaValidator)
//	func (sc *ShapeContext) SetSchemaValueValidator(j validator.ValueSchemaValidator)
//	func (sc *ShapeContext) SetHeaderValidator(hv headerValidator)
//	func (sc *ShapeContext) SetXMLValidator(xv validator.DocumentValidator)
//	func (sc *ShapeContext) SetJSONNodeChecker(c nodeChecker)
//	func (sc *ShapeContext) SetYAMLNodeChecker(c nodeChecker)
//	func (sc *ShapeContext) SetXMLNodeChecker(c nodeChecker)
//	func (sc *ShapeContext) SetJSONSerializer(jf serializable)
//	func (sc *ShapeContext) SetYAMLSerializer(yf serializable)
//
// Those services will be used in validation methods. For example, if you want to use your own
// XSD engine, create your own struct, implement Validate(documentPath, schemaPath string) error
// method on it, and then inject it with "func (sc *ShapeContext) SetXMLValidator(xv validator.DocumentValidator)" method.
//
// Every validation method returns tagged result.Result, never error and never panic on data problems:
//
//	func (sc *ShapeContext) ValidateJSON(document, jsonSchema any) result.Result
//	func (sc *ShapeContext) ValidateYAML(document, jsonSchema any) result.Result
//	func (sc *ShapeContext) ValidateCSVHeader(filePath string, requiredHeaders []string) result.Result
//	func (sc *ShapeContext) ValidateXML(documentPath, schemaPath string) result.Result
//	func (sc *ShapeContext) ValidateNodesExist(df format.DataFormat, document []byte, exprs ...string) result.Result
//
// Invalid result carries Kind describing failure category (malformed input, schema violation,
// resource not found, schema load failure, engine failure) and human-readable reason,
// which is also printed through debugger when debug mode is on.
package shapecheck
