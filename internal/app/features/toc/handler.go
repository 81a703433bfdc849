// internal/app/features/toc/handler.go
package toc

import (
	"net/http"

	"github.com/dalemusser/penguinpathways/internal/app/system/catalog"
	"github.com/dalemusser/penguinpathways/internal/app/system/viewdata"
	"github.com/dalemusser/penguinpathways/internal/app/system/viewstate"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// quickStart is the fixed "where to begin" path shown under the chapters.
var quickStart = []string{"/getting-started", "/foundation", "/commands", "/labs"}

// Handler serves the table of contents.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

type chapterCard struct {
	catalog.LessonDescriptor
	Label string
	Href  string
}

type quickLink struct {
	Title string
	Glyph string
	Href  string
}

type tocData struct {
	viewdata.BaseVM
	Chapters   []chapterCard
	Summary    catalog.Summary
	QuickStart []quickLink
}

// ServeTOC handles GET /table-of-contents.
func (h *Handler) ServeTOC(w http.ResponseWriter, r *http.Request) {
	templates.Render(w, r, "toc", h.buildData(r))
}

func (h *Handler) buildData(r *http.Request) tocData {
	state := viewstate.FromRequest(r)
	entries := catalog.All()

	chapters := make([]chapterCard, len(entries))
	for i, d := range entries {
		chapters[i] = chapterCard{
			LessonDescriptor: d,
			Label:            catalog.ChapterLabel(i),
			Href:             viewstate.Href(d.Route, state),
		}
	}

	quick := make([]quickLink, 0, len(quickStart))
	for _, route := range quickStart {
		d, ok := catalog.Lookup(route)
		if !ok {
			h.Log.Warn("quick start route missing from catalog", zap.String("route", route))
			continue
		}
		quick = append(quick, quickLink{Title: d.Title, Glyph: d.Icon.Glyph(), Href: viewstate.Href(route, state)})
	}

	return tocData{
		BaseVM:     viewdata.NewBaseVM(r, "Table of Contents"),
		Chapters:   chapters,
		Summary:    catalog.Stats(entries),
		QuickStart: quick,
	}
}
