package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"hirewire/internal/common"
)

func decodeJSON(r *http.Request, target any) error {
	if err := json.NewDecoder(r.Body).Decode(target); err != nil {
		return common.NewError(common.CodeValidation, "invalid json body", err)
	}
	return nil
}

// idFromPath extracts the path segment n positions from the end, e.g.
// idFromPath(r, 1) for /api/posts/{id} and idFromPath(r, 2) for
// /api/posts/{id}/comments.
func idFromPath(r *http.Request, fromEnd int) (common.UUID, error) {
	segments := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	if len(segments) < fromEnd {
		return "", common.NewValidationError("invalid path", nil)
	}
	return common.ParseUUID(segments[len(segments)-fromEnd])
}

func errUnauthorized() error {
	return common.NewError(common.CodeUnauthorized, "unauthorized", nil)
}
