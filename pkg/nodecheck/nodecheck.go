// Package nodecheck holds services that check presence of nodes in structured documents.
package nodecheck

import "fmt"

// Checker describes ability to check whether node under given expression exists in document.
type Checker interface {
	// Exists returns nil when expr resolves to at least one node in document.
	Exists(expr string, document []byte) error
}

// DynamicJSONChecker is entity that has ability to check node presence in JSON documents.
// Entity knows how to determine whether expression matches
// https://github.com/tidwall/gjson, https://github.com/oliveagle/jsonpath or https://github.com/antchfx/jsonquery syntax.
type DynamicJSONChecker struct {
	gjson     GJSONChecker
	oliveagle OliveagleJSONChecker
	antchfx   AntchfxJSONChecker
}

func NewDynamicJSONChecker(gjson GJSONChecker, oliveagle OliveagleJSONChecker, antchfx AntchfxJSONChecker) *DynamicJSONChecker {
	return &DynamicJSONChecker{gjson: gjson, oliveagle: oliveagle, antchfx: antchfx}
}

// Exists checks node presence resolving expr with engine matching its syntax.
func (d DynamicJSONChecker) Exists(expr string, document []byte) error {
	if len(expr) == 0 {
		return fmt.Errorf("json path can't be empty string")
	}

	if expr[0:1] == "$" {
		return d.oliveagle.Exists(expr, document)
	}

	if expr[0:1] == "/" {
		return d.antchfx.Exists(expr, document)
	}

	return d.gjson.Exists(expr, document)
}
