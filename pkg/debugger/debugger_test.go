package debugger

import (
	"bytes"
	"os"
	"testing"
)

func TestDebuggerService_IsOn(t *testing.T) {
	if !New(true, false, 1024, os.Stdout).IsOn() {
		t.Errorf("IsOn() = false, want true")
	}

	if New(false, false, 1024, os.Stdout).IsOn() {
		t.Errorf("IsOn() = true, want false")
	}
}

func TestDebuggerService_TurnOn(t *testing.T) {
	d := New(false, false, 1024, os.Stdout)
	d.TurnOn()

	if !d.IsOn() {
		t.Errorf("IsOn() = false, want true after TurnOn()")
	}
}

func TestDebuggerService_TurnOff(t *testing.T) {
	d := New(true, false, 1024, os.Stdout)
	d.TurnOff()

	if d.IsOn() {
		t.Errorf("IsOn() = true, want false after TurnOff()")
	}
}

func TestDebuggerService_Reset(t *testing.T) {
	d := New(false, false, 1024, os.Stdout)
	d.TurnOn()
	d.Reset(false)

	if d.IsOn() {
		t.Errorf("IsOn() = true, want false after Reset(false)")
	}

	d.Reset(true)
	if !d.IsOn() {
		t.Errorf("IsOn() = false, want true after Reset(true)")
	}
}

func TestDebuggerService_Print(t *testing.T) {
	tests := []struct {
		name      string
		isColored bool
		limit     uint16
		info      string
		want      string
	}{
		{
			name:  "plain reason passes through untouched",
			limit: 1024,
			info:  "invalid, schema violation: (root): age is required",
			want:  "invalid, schema violation: (root): age is required",
		},
		{
			name:  "missing resource reason passes through untouched",
			limit: 1024,
			info:  "invalid, resource not found: open people.csv: no such file or directory",
			want:  "invalid, resource not found: open people.csv: no such file or directory",
		},
		{
			name:  "JSON info is pretty-printed with tabs",
			limit: 1024,
			info:  `{"kind": "schema violation", "reason": "(root): age is required"}`,
			want: `{
	"kind": "schema violation",
	"reason": "(root): age is required"
}`,
		},
		{
			// fatih/color strips ANSI sequences outside of terminal,
			// so colored mode is visible only through two-space indent.
			name:      "colored JSON info is pretty-printed with two spaces",
			isColored: true,
			limit:     1024,
			info:      `{"kind": "schema violation", "reason": "(root): age is required"}`,
			want: `{
  "kind": "schema violation",
  "reason": "(root): age is required"
}`,
		},
		{
			name:  "long reason is truncated to bytes limit",
			limit: 24,
			info:  "invalid, schema violation: name: Invalid type. Expected: string, given: integer",
			want:  "invalid, schema violatio",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := bytes.NewBuffer([]byte{})
			d := New(true, tt.isColored, tt.limit, buf)

			d.Print(tt.info)

			if got := buf.String(); got != tt.want+"\n" {
				t.Errorf("Print() wrote %q, want %q", got, tt.want+"\n")
			}
		})
	}
}

func TestNewDefault(t *testing.T) {
	d := NewDefault(true)

	if !d.IsOn() {
		t.Errorf("IsOn() = false, want true")
	}

	if !d.isColored {
		t.Errorf("isColored = false, want true")
	}

	if d.limit != 3072 {
		t.Errorf("limit = %d, want 3072", d.limit)
	}

	if d.writer != os.Stdout {
		t.Errorf("writer = %v, want os.Stdout", d.writer)
	}
}
