package nodecheck

import (
	bytes2 "bytes"
	"fmt"

	"github.com/antchfx/xmlquery"
)

// AntchfxXMLChecker checks node presence using XPath from https://github.com/antchfx/xmlquery.
type AntchfxXMLChecker struct{}

func NewAntchfxXMLChecker() AntchfxXMLChecker {
	return AntchfxXMLChecker{}
}

// Exists checks whether XPath expr resolves to node in XML document.
func (a AntchfxXMLChecker) Exists(expr string, document []byte) error {
	parsed, err := xmlquery.Parse(bytes2.NewReader(document))
	if err != nil {
		return err
	}

	nodes, err := xmlquery.QueryAll(parsed, expr)
	if err != nil {
		return err
	}

	if len(nodes) == 0 {
		return fmt.Errorf("could not find %s in given XML bytes", expr)
	}

	return nil
}
