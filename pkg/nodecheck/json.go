package nodecheck

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/antchfx/jsonquery"
	"github.com/oliveagle/jsonpath"
	"github.com/pawelWritesCode/qjson"
	"github.com/tidwall/gjson"
)

// GJSONChecker checks node presence using https://github.com/tidwall/gjson expressions.
type GJSONChecker struct{}

// OliveagleJSONChecker checks node presence using https://github.com/oliveagle/jsonpath expressions.
type OliveagleJSONChecker struct{}

// AntchfxJSONChecker checks node presence using https://github.com/antchfx/jsonquery expressions.
type AntchfxJSONChecker struct{}

// QJSONChecker checks node presence using https://github.com/pawelWritesCode/qjson expressions.
type QJSONChecker struct{}

func NewGJSONChecker() GJSONChecker {
	return GJSONChecker{}
}

func NewOliveagleJSONChecker() OliveagleJSONChecker {
	return OliveagleJSONChecker{}
}

func NewAntchfxJSONChecker() AntchfxJSONChecker {
	return AntchfxJSONChecker{}
}

func NewQJSONChecker() QJSONChecker {
	return QJSONChecker{}
}

// Exists checks whether expr valid with tidwall/gjson library resolves to node in document.
func (g GJSONChecker) Exists(expr string, document []byte) error {
	if len(expr) == 0 {
		return fmt.Errorf("provided empty expression")
	}

	if !gjson.ValidBytes(document) {
		return fmt.Errorf("detected invalid JSON")
	}

	if !gjson.GetBytes(document, expr).Exists() {
		return fmt.Errorf("could not find node, using expression %s", expr)
	}

	return nil
}

// Exists checks whether expr valid with oliveagle/jsonpath library resolves to node in document.
func (o OliveagleJSONChecker) Exists(expr string, document []byte) error {
	var jsonData any
	if err := json.Unmarshal(document, &jsonData); err != nil {
		return err
	}

	if _, err := jsonpath.JsonPathLookup(jsonData, expr); err != nil {
		return fmt.Errorf("could not find node, using expression %s, err: %w", expr, err)
	}

	return nil
}

// Exists checks whether expr valid with antchfx/jsonquery library resolves to node in document.
func (a AntchfxJSONChecker) Exists(expr string, document []byte) error {
	if len(expr) == 0 {
		return fmt.Errorf("provided empty expression")
	}

	doc, err := jsonquery.Parse(bytes.NewReader(document))
	if err != nil {
		return fmt.Errorf("detected invalid JSON")
	}

	nodes, err := jsonquery.QueryAll(doc, expr)
	if err != nil {
		return fmt.Errorf("could not find node, using expression %s, err: %w", expr, err)
	}

	if len(nodes) == 0 {
		return fmt.Errorf("could not find node, using expression %s", expr)
	}

	return nil
}

// Exists checks whether expr valid with pawelWritesCode/qjson library resolves to node in document.
func (q QJSONChecker) Exists(expr string, document []byte) error {
	if _, err := qjson.Resolve(expr, document); err != nil {
		return fmt.Errorf("could not find node, using expression %s, err: %w", expr, err)
	}

	return nil
}
