package shapecheck

import (
	"github.com/pawelWritesCode/shapecheck/pkg/osutils"
)

// debuggable defines desired debugger behaviour.
type debuggable interface {
	// Print prints provided info.
	Print(info string)

	// IsOn tells whether debugging mode is activated.
	IsOn() bool

	// TurnOn turns on debugging mode.
	TurnOn()

	// TurnOff turns off debugging mode.
	TurnOff()

	// Reset resets debugging mode to init state.
	Reset(isOn bool)
}

// headerValidator describes entity that has ability to validate CSV file header row.
type headerValidator interface {
	// Validate checks whether header row of CSV file under filePath contains every required header.
	Validate(filePath string, requiredHeaders []string) error
}

// nodeChecker describes entity that has ability to check node presence in structured document.
type nodeChecker interface {
	// Exists returns nil when expr resolves to at least one node in document.
	Exists(expr string, document []byte) error
}

// serializable describes ability to serialize and deserialize data.
type serializable interface {
	// Deserialize deserializes data on v.
	Deserialize(data []byte, v any) error

	// Serialize serializes v.
	Serialize(v any) ([]byte, error)
}

// fileRecognizer describes entity that has ability to find file reference in input.
type fileRecognizer interface {
	// Recognize recognizes file reference in provided input.
	Recognize(input string) (osutils.Reference, bool)
}

// urlValidator describes entity that has ability to tell whether input is valid URL.
type urlValidator interface {
	// Validate validates in.
	Validate(in any) error
}
