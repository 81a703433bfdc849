// internal/app/features/lessons/routes.go
package lessons

import (
	"github.com/dalemusser/penguinpathways/internal/app/system/catalog"
	"github.com/go-chi/chi/v5"
)

// Register adds a GET route for every distinct catalog route. Toggling
// fullscreen only changes the query string, so the same handler keeps
// serving the same lesson.
func Register(r chi.Router, h *Handler) {
	for _, route := range catalog.Routes() {
		r.Get(route, h.ServeLesson)
	}
}
