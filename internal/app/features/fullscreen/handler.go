// internal/app/features/fullscreen/handler.go
package fullscreen

import (
	"net/http"
	"net/url"

	"github.com/dalemusser/penguinpathways/internal/app/system/navigation"
	"github.com/dalemusser/penguinpathways/internal/app/system/viewstate"
	"go.uber.org/zap"
)

// Handler flips the fullscreen flag for clients without the page script.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

// ServeToggle handles GET /fullscreen/toggle?return=<path>.
//
// The return target is toggled and the client is redirected with 303, so
// the page it came from is replaced rather than stacked in history.
func (h *Handler) ServeToggle(w http.ResponseWriter, r *http.Request) {
	target := navigation.SafeBackURL(r, navigation.ToggleReturn)

	u, err := url.Parse(target)
	if err != nil {
		h.Log.Warn("fullscreen toggle: bad return target", zap.String("return", target), zap.Error(err))
		u = &url.URL{Path: "/"}
	}

	loc := viewstate.NewRequestLocation(u)
	ctl := viewstate.NewController(loc, viewstate.NewPageDocument(), viewstate.WithLogger(h.Log))
	release := ctl.Mount()
	defer release()

	ctl.Toggle()

	http.Redirect(w, r, loc.Current(), http.StatusSeeOther)
}
