package middleware

import (
	"net/http"

	"github.com/buildrite/buildrite/internal/api/respond"
)

func writeError(w http.ResponseWriter, status int, msg string) {
	respond.Error(w, status, msg)
}
