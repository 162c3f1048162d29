// Package respond is the single normalization point for response
// bodies. Every failure, whether returned by a handler or recovered
// from a panic, goes out in the same shape.
package respond

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"
)

// ErrorBody is the uniform error response shape.
type ErrorBody struct {
	Status    int       `json:"status"`
	Message   string    `json:"message"`
	Error     string    `json:"error"`
	Timestamp time.Time `json:"timestamp"`
}

func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Error(w http.ResponseWriter, status int, msg string) {
	JSON(w, status, ErrorBody{
		Status:    status,
		Message:   msg,
		Error:     categoryFor(status),
		Timestamp: time.Now().UTC(),
	})
}

func categoryFor(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "BadRequest"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusNotFound:
		return "NotFound"
	case http.StatusConflict:
		return "Conflict"
	case http.StatusTooManyRequests:
		return "TooManyRequests"
	case http.StatusInternalServerError:
		return "InternalServerError"
	default:
		return strings.ReplaceAll(http.StatusText(status), " ", "")
	}
}
