package middleware

import (
	"net/http"

	"github.com/taskdeck/taskdeck-api/internal/api/shared"
)

// Trace attaches a trace ID to every request context. Apply it before any
// middleware or handler that logs or writes error responses.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
