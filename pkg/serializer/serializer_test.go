package serializer

import (
	"reflect"
	"testing"
)

func TestJSON_Deserialize(t *testing.T) {
	s := NewJSONSerializer()

	var v map[string]any
	if err := s.Deserialize([]byte(`{"name": "John"}`), &v); err != nil {
		t.Fatalf("Deserialize() error = %v, want nil", err)
	}

	if v["name"] != "John" {
		t.Errorf("Deserialize() v = %v, want name=John", v)
	}

	if err := s.Deserialize([]byte(`{"name": `), &v); err == nil {
		t.Errorf("Deserialize() should return error for malformed JSON")
	}
}

func TestJSON_Serialize(t *testing.T) {
	s := NewJSONSerializer()

	got, err := s.Serialize(map[string]any{"name": "John"})
	if err != nil {
		t.Fatalf("Serialize() error = %v, want nil", err)
	}

	if string(got) != `{"name":"John"}` {
		t.Errorf("Serialize() = %s, want {\"name\":\"John\"}", got)
	}
}

func TestYAML_Deserialize(t *testing.T) {
	s := NewYAMLSerializer()

	var v map[string]any
	tests := []struct {
		name    string
		data    []byte
		want    map[string]any
		wantErr bool
	}{
		{name: "yaml mapping", data: []byte("name: John\n"), want: map[string]any{"name": "John"}},
		{name: "empty data", data: []byte(""), wantErr: true},
		{name: "json data", data: []byte(`{"name": "John"}`), wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v = nil

			err := s.Deserialize(tt.data, &v)
			if (err != nil) != tt.wantErr {
				t.Errorf("Deserialize() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && !reflect.DeepEqual(v, tt.want) {
				t.Errorf("Deserialize() v = %v, want %v", v, tt.want)
			}
		})
	}
}
