// Package requesttime pins a single "now" per HTTP request so every record
// written while serving it carries the same timestamp.
package requesttime

import (
	"net/http"
	"time"

	"corpreg/pkg/requestcontext"
)

// Middleware captures the current time at the start of the request.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := requestcontext.WithTime(r.Context(), time.Now().UTC())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
