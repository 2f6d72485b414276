package validation

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type sample struct {
	Alias string `json:"alias" validate:"notblank"`
	Mode  string `validate:"oneof=a b"`
}

func TestValidate(t *testing.T) {
	if err := Validate(sample{Alias: "abc", Mode: "a"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := Validate(sample{Alias: "   ", Mode: "c"})
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}

	fields := map[string]string{}
	for _, e := range verrs {
		fields[e.Field()] = e.Tag()
	}
	if fields["alias"] != "notblank" {
		t.Errorf("expected json name %q with tag notblank, got %v", "alias", fields)
	}
	if fields["Mode"] != "oneof" {
		t.Errorf("expected struct name %q with tag oneof, got %v", "Mode", fields)
	}
}
