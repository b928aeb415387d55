package nodecheck

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-yaml"
)

// GoccyYAMLChecker checks node presence using YAML path from https://github.com/goccy/go-yaml.
type GoccyYAMLChecker struct{}

func NewGoccyYAMLChecker() GoccyYAMLChecker {
	return GoccyYAMLChecker{}
}

// Exists checks whether YAML path expr resolves to node in YAML document.
func (g GoccyYAMLChecker) Exists(expr string, document []byte) error {
	yamlPath, err := yaml.PathString(expr)
	if err != nil {
		return err
	}

	var result any
	if err = yamlPath.Read(bytes.NewReader(document), &result); err != nil {
		return fmt.Errorf("could not find node, using expression %s, err: %w", expr, err)
	}

	return nil
}
