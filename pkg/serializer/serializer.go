// Package serializer holds utilities for working with different data formats.
package serializer

import (
	"encoding/json"
	"errors"

	"gopkg.in/yaml.v2"
)

// JSON is entity that has ability to work with JSON format.
type JSON struct{}

// YAML is entity that has ability to work with YAML format.
type YAML struct{}

func NewJSONSerializer() JSON {
	return JSON{}
}

func NewYAMLSerializer() YAML {
	return YAML{}
}

// Deserialize deserializes data in JSON format on v.
func (s JSON) Deserialize(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Serialize serializes v into JSON format.
func (s JSON) Serialize(v any) ([]byte, error) {
	return json.Marshal(v)
}

// Deserialize deserializes data in YAML format on v.
func (s YAML) Deserialize(data []byte, v any) error {
	if len(data) == 0 {
		return errors.New("data should not be empty")
	}

	if err := json.Unmarshal(data, v); err == nil {
		return errors.New("data is in JSON format, expected YAML")
	}

	return yaml.UnmarshalStrict(data, v)
}

// Serialize serializes v into YAML format.
func (s YAML) Serialize(v any) ([]byte, error) {
	return yaml.Marshal(v)
}
