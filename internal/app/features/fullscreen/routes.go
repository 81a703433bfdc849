// internal/app/features/fullscreen/routes.go
package fullscreen

import "github.com/go-chi/chi/v5"

// Routes returns a subrouter mounted under /fullscreen.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/toggle", h.ServeToggle)
	return r
}
