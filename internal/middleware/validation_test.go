package middleware

import (
	"net/http/httptest"
	"strings"
	"testing"
)

type menuItemPayload struct {
	Name  string `json:"name" validate:"required"`
	Price int    `json:"price" validate:"gte=0"`
}

func TestDecodeAndValidateAcceptsValidPayload(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/menu", strings.NewReader(`{"name":"Idly","price":30}`))

	var payload menuItemPayload
	if err := DecodeAndValidate(req, &payload); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if payload.Name != "Idly" || payload.Price != 30 {
		t.Errorf("payload = %+v", payload)
	}
}

func TestDecodeAndValidateRejectsMissingRequired(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/menu", strings.NewReader(`{"price":30}`))

	var payload menuItemPayload
	err := DecodeAndValidate(req, &payload)
	if err == nil {
		t.Fatal("expected validation error")
	}

	errors := FormatValidationErrors(err)
	if len(errors) != 1 {
		t.Fatalf("expected 1 validation error, got %d", len(errors))
	}
	if errors[0].Field != "Name" {
		t.Errorf("field = %q, want Name", errors[0].Field)
	}
	if errors[0].Message != "This field is required" {
		t.Errorf("message = %q", errors[0].Message)
	}
}

func TestDecodeAndValidateRejectsNegativePrice(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/menu", strings.NewReader(`{"name":"Idly","price":-1}`))

	var payload menuItemPayload
	err := DecodeAndValidate(req, &payload)
	if err == nil {
		t.Fatal("expected validation error")
	}

	errors := FormatValidationErrors(err)
	if len(errors) != 1 || errors[0].Field != "Price" {
		t.Errorf("errors = %+v", errors)
	}
}

func TestDecodeAndValidateRejectsMalformedJSON(t *testing.T) {
	req := httptest.NewRequest("POST", "/api/menu", strings.NewReader(`{broken`))

	var payload menuItemPayload
	err := DecodeAndValidate(req, &payload)
	if err == nil {
		t.Fatal("expected decode error")
	}
	// Decode errors are not field validation errors.
	if got := FormatValidationErrors(err); len(got) != 0 {
		t.Errorf("expected no validation errors for decode failure, got %+v", got)
	}
}
