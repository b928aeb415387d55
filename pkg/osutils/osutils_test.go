package osutils

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/pawelWritesCode/shapecheck/pkg/validator"
)

type mockedFileValidator struct {
	mock.Mock
}

func (m *mockedFileValidator) Validate(in any) error {
	args := m.Called(in)

	return args.Error(0)
}

func TestFileValidator_Validate(t *testing.T) {
	fv := NewFileValidator()

	existing := filepath.Join(t.TempDir(), "schema.json")
	if err := os.WriteFile(existing, []byte("{}"), 0644); err != nil {
		t.Fatalf("could not write temp file: %v", err)
	}

	if err := fv.Validate(existing); err != nil {
		t.Errorf("Validate() error = %v, want nil", err)
	}

	if err := fv.Validate(filepath.Join(t.TempDir(), "no-such-file")); err == nil {
		t.Errorf("Validate() should return error for nonexistent path")
	}

	if err := fv.Validate(123); err == nil {
		t.Errorf("Validate() should return error for non-string input")
	}
}

func TestFileRecognizer_Recognize(t *testing.T) {
	mFileValidator := new(mockedFileValidator)

	type fields struct {
		fileValidator validator.Validator
		prefix        string
		mockFunc      func()
	}
	type args struct {
		input string
	}
	tests := []struct {
		name   string
		fields fields
		args   args
		want   Reference
		want1  bool
	}{
		{name: "input does not contain file reference", fields: fields{
			fileValidator: mFileValidator,
			prefix:        "file://",
			mockFunc: func() {

			},
		}, args: args{input: `{"type": "object"}`}, want: Reference{}, want1: false},
		{name: "input contains file reference, but reference is not valid", fields: fields{
			fileValidator: mFileValidator,
			prefix:        "file://",
			mockFunc: func() {
				mFileValidator.On("Validate", "abc").Return(errors.New("error")).Once()
			},
		}, args: args{input: "file://abc"}, want: Reference{}, want1: false},
		{name: "input contains valid file reference", fields: fields{
			fileValidator: mFileValidator,
			prefix:        "file://",
			mockFunc: func() {
				mFileValidator.On("Validate", "/schemas/user.json").Return(nil).Once()
			},
		}, args: args{input: "file:///schemas/user.json"}, want: Reference{
			Value: "/schemas/user.json",
			Type:  ReferenceTypeOSPath,
		}, want1: true},
		{name: "prefix in the middle is not a reference", fields: fields{
			fileValidator: mFileValidator,
			prefix:        "file://",
			mockFunc: func() {

			},
		}, args: args{input: "abc file:///schemas/user.json"}, want: Reference{}, want1: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fr := FileRecognizer{
				fileValidator: tt.fields.fileValidator,
				prefix:        tt.fields.prefix,
			}

			tt.fields.mockFunc()

			got, got1 := fr.Recognize(tt.args.input)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Recognize() got = %v, want %v", got, tt.want)
			}
			if got1 != tt.want1 {
				t.Errorf("Recognize() got1 = %v, want %v", got1, tt.want1)
			}
		})
	}
}
