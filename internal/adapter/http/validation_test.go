package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
)

func containsFieldMsg(fe []FieldError, field, fragment string) bool {
	for _, e := range fe {
		if e.Field == field && strings.Contains(e.Message, fragment) {
			return true
		}
	}
	return false
}

func TestEntIDValidation(t *testing.T) {
	type P struct {
		ID string `validate:"entid"`
	}
	cv := NewValidator()

	// any non-blank opaque id is accepted: uuid, epoch string, server hex
	for _, s := range []string{
		"550e8400-e29b-41d4-a716-446655440000",
		"1736123456789",
		"3f9a6a1b3d544fbe8b3a6b3e8d6b2c88",
	} {
		if err := cv.Validate(P{ID: s}); err != nil {
			t.Fatalf("expected valid entid %q, got %v", s, err)
		}
	}

	for _, s := range []string{"", "   ", "\t"} {
		err := cv.Validate(P{ID: s})
		if err == nil {
			t.Fatalf("expected error for %q", s)
		}
		fe := ToFieldErrors(err)
		if !containsFieldMsg(fe, "ID", "non-blank id") {
			t.Fatalf("expected entid message for %q, got %+v", s, fe)
		}
	}
}

func TestRequiredMapping(t *testing.T) {
	type P struct {
		Username string `validate:"required"`
	}
	cv := NewValidator()

	err := cv.Validate(P{})
	if err == nil {
		t.Fatalf("expected validation error")
	}
	fe := ToFieldErrors(err)
	if !containsFieldMsg(fe, "Username", "is required") {
		t.Fatalf("missing required message: %+v", fe)
	}
}

func TestToFieldErrors_NonValidation(t *testing.T) {
	fe := ToFieldErrors(errors.New("boom"))
	if len(fe) != 1 || fe[0].Field != "_" || fe[0].Message != "boom" {
		t.Fatalf("unexpected mapping: %+v", fe)
	}
}

func TestRegister_ValidationFailure(t *testing.T) {
	e := newTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/register", map[string]any{"username": "admin"})
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("status = %d, want 422", rec.Code)
	}
	var resp ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error != "validation failed" || len(resp.Details) == 0 {
		t.Fatalf("unexpected response: %+v", resp)
	}
}
