package urlutils

import "testing"

func TestURLValidator_Validate(t *testing.T) {
	tests := []struct {
		name    string
		in      any
		wantErr bool
	}{
		{name: "valid http URL", in: "http://json-schema.org/user.json"},
		{name: "valid https URL", in: "https://example.com/schemas/user.json"},
		{name: "missing scheme", in: "json-schema.org/user.json", wantErr: true},
		{name: "OS path", in: "/schemas/user.json", wantErr: true},
		{name: "raw schema text", in: `{"type": "object"}`, wantErr: true},
		{name: "not a string", in: 42, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u := NewURLValidator()

			if err := u.Validate(tt.in); (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
