package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hirewire/internal/common"
)

func TestErrorStatusMapping(t *testing.T) {
	cases := []struct {
		code   common.Code
		status int
	}{
		{common.CodeValidation, http.StatusBadRequest},
		{common.CodeConflict, http.StatusBadRequest},
		{common.CodeUnauthorized, http.StatusUnauthorized},
		{common.CodeForbidden, http.StatusForbidden},
		{common.CodeNotFound, http.StatusNotFound},
		{common.CodeRateLimited, http.StatusTooManyRequests},
		{common.CodeInternal, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		recorder := httptest.NewRecorder()
		Error(recorder, common.NewError(tc.code, "boom", nil))
		if recorder.Code != tc.status {
			t.Errorf("code %s: expected status %d, got %d", tc.code, tc.status, recorder.Code)
		}
	}
}

func TestErrorBody(t *testing.T) {
	recorder := httptest.NewRecorder()
	Error(recorder, common.NewValidationError("missing fields", map[string]string{"email": "email is required"}))

	var body struct {
		Error   string            `json:"error"`
		Message string            `json:"message"`
		Fields  map[string]string `json:"fields"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("expected json body, got %v", err)
	}
	if body.Error != string(common.CodeValidation) {
		t.Fatalf("expected validation code, got %q", body.Error)
	}
	if body.Message != "missing fields" {
		t.Fatalf("expected message, got %q", body.Message)
	}
	if body.Fields["email"] != "email is required" {
		t.Fatalf("expected field detail, got %v", body.Fields)
	}
}

func TestErrorWrapsUnknown(t *testing.T) {
	recorder := httptest.NewRecorder()
	Error(recorder, errors.New("plain failure"))
	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 for unknown error, got %d", recorder.Code)
	}
}
