package home

import (
	"net/http"

	"github.com/dalemusser/penguinpathways/internal/app/system/catalog"
	"github.com/dalemusser/penguinpathways/internal/app/system/viewdata"
	"github.com/dalemusser/penguinpathways/internal/app/system/viewstate"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// StartRoute is where the "Start Your Learning Journey" link points.
const StartRoute = "/getting-started"

// Handler holds dependencies needed to serve the home page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{
		Log: logger,
	}
}

// chapterCard is a featured chapter on the landing page.
type chapterCard struct {
	catalog.LessonDescriptor
	Href string
}

type homeData struct {
	viewdata.BaseVM
	StartHref string
	Featured  []chapterCard
	Summary   catalog.Summary
}

// ServeRoot handles GET /.
func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "home", h.buildData(r))
}

func (h *Handler) buildData(r *http.Request) homeData {
	state := viewstate.FromRequest(r)

	featured := catalog.Featured()
	cards := make([]chapterCard, len(featured))
	for i, d := range featured {
		cards[i] = chapterCard{LessonDescriptor: d, Href: viewstate.Href(d.Route, state)}
	}

	return homeData{
		BaseVM:    viewdata.NewBaseVM(r, "Welcome"),
		StartHref: viewstate.Href(StartRoute, state),
		Featured:  cards,
		Summary:   catalog.Stats(catalog.All()),
	}
}
