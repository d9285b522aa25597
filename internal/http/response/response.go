package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"hirewire/internal/common"
)

// ErrorCollector receives the code of every error response written, so
// the metrics collector can count failures without wrapping handlers.
type ErrorCollector interface {
	ObserveError(code string)
}

var errorCollector ErrorCollector

func SetErrorCollector(collector ErrorCollector) {
	errorCollector = collector
}

func JSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorBody struct {
	Error   common.Code       `json:"error"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func Error(w http.ResponseWriter, err error) {
	var appErr *common.Error
	if !errors.As(err, &appErr) {
		appErr = common.NewError(common.CodeInternal, "internal error", err)
	}
	if errorCollector != nil {
		errorCollector.ObserveError(string(appErr.Code))
	}
	JSON(w, statusForCode(appErr.Code), errorBody{
		Error:   appErr.Code,
		Message: appErr.Message,
		Fields:  appErr.Fields,
	})
}

// Conflicts (duplicate application, already processed) map to 400 so the
// API keeps the contract the original clients were written against.
func statusForCode(code common.Code) int {
	switch code {
	case common.CodeValidation, common.CodeConflict:
		return http.StatusBadRequest
	case common.CodeUnauthorized:
		return http.StatusUnauthorized
	case common.CodeForbidden:
		return http.StatusForbidden
	case common.CodeNotFound:
		return http.StatusNotFound
	case common.CodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}
