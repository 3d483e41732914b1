package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestGetExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"user error", NewUserError("bad input"), ExitUserError},
		{"system error", NewSystemError("disk gone"), ExitSystemError},
		{"plain error", errors.New("something"), ExitUserError},
		{"wrapped exit error", errors.Join(errors.New("outer"), NewSystemError("inner")), ExitSystemError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetExitCode(tt.err); got != tt.want {
				t.Errorf("GetExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestExitError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := NewUserErrorWithCause("wrapped", cause)
	if !errors.Is(err, cause) {
		t.Error("errors.Is should reach the cause")
	}
	if err.Error() != "wrapped" {
		t.Errorf("Error() = %q, want %q", err.Error(), "wrapped")
	}
}

func TestResolveColorMode(t *testing.T) {
	tests := []struct {
		mode  string
		isTTY bool
		want  bool
	}{
		{"never", true, false},
		{"never", false, false},
		{"always", false, true},
		{"auto", true, true},
		{"auto", false, false},
		{"", true, true},
	}

	for _, tt := range tests {
		if got := ResolveColorMode(tt.mode, tt.isTTY); got != tt.want {
			t.Errorf("ResolveColorMode(%q, %v) = %v, want %v", tt.mode, tt.isTTY, got, tt.want)
		}
	}
}

func TestPrinter_ErrorJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	p.Error(NewUserError("unknown entry"))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if result["error"] != "unknown entry" {
		t.Errorf("error = %v", result["error"])
	}
	if result["code"] != float64(ExitUserError) {
		t.Errorf("code = %v, want %d", result["code"], ExitUserError)
	}
}

func TestPrinter_ErrorHumanGoesToStderr(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, false, false).WithStderr(&errOut)

	p.Error(NewSystemError("cannot read file"))

	if out.Len() != 0 {
		t.Errorf("stdout should be empty, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "cannot read file") {
		t.Errorf("stderr = %q", errOut.String())
	}
}

func TestPrinter_SuccessJSON(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, true, false)

	if err := p.Success(map[string]any{"count": 3}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if result["count"] != float64(3) {
		t.Errorf("count = %v", result["count"])
	}
}

func TestPrinter_SuccessHumanMessage(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	if err := p.Success(map[string]any{"message": "Exported 10 entries"}); err != nil {
		t.Fatalf("Success() error = %v", err)
	}
	if got := buf.String(); got != "Exported 10 entries\n" {
		t.Errorf("output = %q", got)
	}
}

func TestPrinter_StderrSilentInJSONMode(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, true, false).WithStderr(&errOut)

	p.Stderr("hint: %d results\n", 3)

	if errOut.Len() != 0 {
		t.Errorf("JSON mode should suppress stderr hints, got %q", errOut.String())
	}
}

func TestPrinter_KeyValue(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	p.KeyValue("Category", "unit-test")

	if got := buf.String(); got != "Category: unit-test\n" {
		t.Errorf("output = %q", got)
	}
}

func TestPrinter_Section(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	p.Section("Categories")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if lines[1] != "Categories" {
		t.Errorf("title line = %q", lines[1])
	}
	if lines[2] != strings.Repeat("─", len("Categories")) {
		t.Errorf("underline = %q", lines[2])
	}
}

func TestPrinter_Table(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, false, false)

	p.Table(
		[]string{"ID", "Title"},
		[][]string{
			{"regression-test-template", "Regression Test Template"},
			{"short", "Row"},
		},
	)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[1], "regression-test-template  ") {
		t.Errorf("row = %q", lines[1])
	}
	// Short cells pad to the widest cell, so second columns line up.
	if strings.Index(lines[1], "Regression") != strings.Index(lines[2], "Row") {
		t.Errorf("columns misaligned:\n%q\n%q", lines[1], lines[2])
	}
}

func TestIsTTY_NonFile(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("a buffer is not a TTY")
	}
}
