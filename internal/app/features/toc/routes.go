// internal/app/features/toc/routes.go
package toc

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted under /table-of-contents.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeTOC)
	return r
}
