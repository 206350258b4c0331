// Package chi provides thin adapters for using svc-fault with the chi
// router.
//
// Chi uses standard net/http handlers, so svc-fault works directly.
// This package exists for discoverability and convenience.
package chi

import (
	"net/http"

	svcfault "github.com/blackwell-systems/svc-fault"
)

// RequestID is a convenience wrapper around
// svcfault.RequestIDMiddleware for chi's middleware chain.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Use(chi.RequestID)
func RequestID(next http.Handler) http.Handler {
	return svcfault.RequestIDMiddleware(next)
}

// Handler adapts a (payload, err)-returning function into an
// http.HandlerFunc that renders through the svc-fault boundary.
//
// Example:
//
//	r.Get("/orders/{id}", chi.Handler(func(r *http.Request) (any, error) {
//	    return svc.Lookup(r.Context(), chiv5.URLParam(r, "id"))
//	}))
func Handler(fn func(r *http.Request) (any, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, err := fn(r)
		svcfault.Respond(w, r, payload, err)
	}
}
