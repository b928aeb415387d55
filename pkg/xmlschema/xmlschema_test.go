package xmlschema

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	v "github.com/pawelWritesCode/shapecheck/pkg/validator"
)

var _ v.DocumentValidator = NewXSDValidator()

const personXSD = `<?xml version="1.0"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema">
  <xs:element name="person">
    <xs:complexType>
      <xs:sequence>
        <xs:element name="name" type="xs:string"/>
        <xs:element name="age" type="xs:integer"/>
      </xs:sequence>
    </xs:complexType>
  </xs:element>
</xs:schema>`

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()

	pth := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(pth, []byte(content), 0644); err != nil {
		t.Fatalf("could not write temp file: %v", err)
	}

	return pth
}

func TestXSDValidator_Validate(t *testing.T) {
	xv := NewXSDValidator()

	t.Run("document conforms to schema", func(t *testing.T) {
		documentPath := writeTempFile(t, "person.xml", `<person><name>John</name><age>30</age></person>`)
		schemaPath := writeTempFile(t, "person.xsd", personXSD)

		if err := xv.Validate(documentPath, schemaPath); err != nil {
			t.Errorf("Validate() error = %v, want nil", err)
		}
	})

	t.Run("document breaks schema", func(t *testing.T) {
		documentPath := writeTempFile(t, "person.xml", `<person><name>John</name></person>`)
		schemaPath := writeTempFile(t, "person.xsd", personXSD)

		err := xv.Validate(documentPath, schemaPath)
		if err == nil {
			t.Fatalf("Validate() should return error for non-conforming document")
		}

		var violationErr *v.ViolationError
		if !errors.As(err, &violationErr) {
			t.Errorf("Validate() error = %v, want *validator.ViolationError", err)
		}
	})

	t.Run("document is not well-formed XML", func(t *testing.T) {
		documentPath := writeTempFile(t, "person.xml", `<person><name>John`)
		schemaPath := writeTempFile(t, "person.xsd", personXSD)

		err := xv.Validate(documentPath, schemaPath)
		if !errors.Is(err, v.ErrMalformed) {
			t.Errorf("Validate() error = %v, want wrapped ErrMalformed", err)
		}
	})

	t.Run("missing document file", func(t *testing.T) {
		schemaPath := writeTempFile(t, "person.xsd", personXSD)

		err := xv.Validate(filepath.Join(t.TempDir(), "no-such.xml"), schemaPath)
		if !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Validate() error = %v, want wrapped fs.ErrNotExist", err)
		}
	})

	t.Run("missing schema file", func(t *testing.T) {
		documentPath := writeTempFile(t, "person.xml", `<person><name>John</name><age>30</age></person>`)

		err := xv.Validate(documentPath, filepath.Join(t.TempDir(), "no-such.xsd"))
		if !errors.Is(err, v.ErrSchemaLoad) {
			t.Errorf("Validate() error = %v, want wrapped ErrSchemaLoad", err)
		}
	})

	t.Run("malformed schema file", func(t *testing.T) {
		documentPath := writeTempFile(t, "person.xml", `<person><name>John</name><age>30</age></person>`)
		schemaPath := writeTempFile(t, "person.xsd", `this is not a schema`)

		err := xv.Validate(documentPath, schemaPath)
		if !errors.Is(err, v.ErrSchemaLoad) {
			t.Errorf("Validate() error = %v, want wrapped ErrSchemaLoad", err)
		}
	})
}
