package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestRespondWithErrorShape(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondWithError(rr, http.StatusNotFound, "menu item not found")

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Message != "menu item not found" {
		t.Errorf("message = %q", resp.Error.Message)
	}
	if resp.Error.Code != http.StatusText(http.StatusNotFound) {
		t.Errorf("code = %q", resp.Error.Code)
	}
	if resp.Error.Timestamp == "" {
		t.Error("timestamp missing")
	}
}

func TestRespondWithValidationErrorsIncludesDetails(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondWithValidationErrors(rr, []ValidationError{
		{Field: "Name", Message: "This field is required"},
	})

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", rr.Code)
	}

	var resp ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Error.Message != "validation failed" {
		t.Errorf("message = %q", resp.Error.Message)
	}
	if _, ok := resp.Error.Details["validation_errors"]; !ok {
		t.Error("validation_errors detail missing")
	}
}

func TestErrorHandlingMiddlewareRecoversPanics(t *testing.T) {
	handler := ErrorHandlingMiddleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("till caught fire")
	}))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rr.Code)
	}
}

func TestRespondWithJSON(t *testing.T) {
	rr := httptest.NewRecorder()

	RespondWithJSON(rr, http.StatusCreated, map[string]string{"id": "7"})

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d", rr.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["id"] != "7" {
		t.Errorf("body = %v", body)
	}
}
