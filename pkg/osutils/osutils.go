// Package osutils holds utilities for working with resources on user OS.
package osutils

import (
	"fmt"
	"os"
	"strings"

	v "github.com/pawelWritesCode/shapecheck/pkg/validator"
)

// ReferenceTypeOSPath describes operating system path.
const ReferenceTypeOSPath ReferenceType = "OS_PATH"

// ReferenceType describes type of reference.
type ReferenceType string

// FileValidator has ability to validate whether path points at any file on user OS.
type FileValidator struct{}

// FileRecognizer is entity that has ability to recognize reference to file in OS from string.
type FileRecognizer struct {
	fileValidator v.Validator

	// prefix is fixed marker that opens file reference, for example "file://".
	prefix string
}

// Reference holds information about recognized resource reference.
type Reference struct {
	// Value is path to referenced resource.
	Value string

	// Type is reference type.
	Type ReferenceType
}

func NewFileValidator() FileValidator {
	return FileValidator{}
}

// NewFileRecognizer returns ready to work FileRecognizer. prefix should be fixed prefix of file reference.
func NewFileRecognizer(prefix string, fileValidator v.Validator) FileRecognizer {
	return FileRecognizer{prefix: prefix, fileValidator: fileValidator}
}

// Validate checks whether in is valid path to any file on local user OS.
func (fv FileValidator) Validate(in any) error {
	p, ok := in.(string)
	if !ok {
		return fmt.Errorf("%+v is not string", in)
	}

	_, err := os.Stat(p)

	isNotExist := os.IsNotExist(err)
	if isNotExist {
		return fmt.Errorf("%s does not point at any file in your local OS", p)
	}

	return nil
}

// Recognize accepts any string and looks for reference to file opened with prefix
// given during construction phase. Second return argument tells whether reference
// was found and points at existing file.
func (fr FileRecognizer) Recognize(input string) (Reference, bool) {
	if !strings.HasPrefix(input, fr.prefix) {
		return Reference{}, false
	}

	ref := input[len(fr.prefix):]
	if err := fr.fileValidator.Validate(ref); err != nil {
		return Reference{}, false
	}

	return Reference{Value: ref, Type: ReferenceTypeOSPath}, true
}
