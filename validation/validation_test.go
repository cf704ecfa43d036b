package validation

import (
	"strings"
	"testing"

	"github.com/kbukum/captionkit/errors"
)

type layout struct {
	LineCount int    `mapstructure:"line_count" validate:"gt=0"`
	LineWidth int    `json:"line_width" validate:"gt=0,lte=200"`
	Language  string `validate:"required"`
	Mode      string `validate:"omitempty,oneof=live replay"`
}

func TestStructValidateValid(t *testing.T) {
	if err := Validate(layout{LineCount: 3, LineWidth: 40, Language: "en"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestStructValidateInvalid(t *testing.T) {
	err := Validate(layout{LineCount: 0, LineWidth: 500})
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !errors.IsCode(err, errors.ErrCodeValidation) {
		t.Errorf("expected VALIDATION_ERROR, got %v", err)
	}

	fields := FieldErrors(err)
	if len(fields) != 3 {
		t.Fatalf("expected 3 field errors, got %d: %v", len(fields), fields)
	}

	got := map[string]string{}
	for _, fe := range fields {
		got[fe.Field] = fe.Message
	}
	if got["line_count"] != "must be greater than 0" {
		t.Errorf("unexpected line_count message: %q", got["line_count"])
	}
	if got["line_width"] != "must be at most 200" {
		t.Errorf("unexpected line_width message: %q", got["line_width"])
	}
	if got["language"] != "is required" {
		t.Errorf("unexpected language message: %q", got["language"])
	}
}

func TestStructValidateOneOf(t *testing.T) {
	err := Validate(layout{LineCount: 1, LineWidth: 1, Language: "en", Mode: "other"})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "mode: must be one of: live replay") {
		t.Errorf("unexpected message: %v", err)
	}
}

func TestFieldErrorsOnForeignError(t *testing.T) {
	if FieldErrors(nil) != nil {
		t.Error("expected nil for nil error")
	}
	if FieldErrors(errors.Internal(nil)) != nil {
		t.Error("expected nil for error without field details")
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := map[string]string{
		"LineCount": "line_count",
		"Language":  "language",
		"a":         "a",
	}
	for in, want := range tests {
		if got := toSnakeCase(in); got != want {
			t.Errorf("toSnakeCase(%q) = %q, want %q", in, got, want)
		}
	}
}
