// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/penguinpathways/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// pageData is the basic view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
	BackURL string
}

// Handler is the errors feature handler.
// It only renders templates.
type Handler struct {
	Log *zap.Logger
}

// NewHandler constructs an errors Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// NotFound renders the "page not found" page with a 404 status.
// Registered as the router's NotFound handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	RenderNotFound(w, r, "")
}

// RenderNotFound shows the not found page. If msg is empty a default is used.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg string) {
	if msg == "" {
		msg = "We couldn't find that page. It may have moved, or the link may be mistyped."
	}
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Page not found"),
		Message: msg,
	}
	data.BackURL = data.HomeHref

	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_not_found", data)
}
