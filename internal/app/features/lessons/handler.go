// internal/app/features/lessons/handler.go
package lessons

import (
	"errors"
	"net/http"

	errorsfeature "github.com/dalemusser/penguinpathways/internal/app/features/errors"
	"github.com/dalemusser/penguinpathways/internal/app/system/catalog"
	"github.com/dalemusser/penguinpathways/internal/app/system/content"
	"github.com/dalemusser/penguinpathways/internal/app/system/viewdata"
	"github.com/dalemusser/penguinpathways/internal/app/system/viewstate"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// Pages renders lesson bodies. *content.Library satisfies it.
type Pages interface {
	Page(route string) (content.Page, error)
}

// Handler serves every catalog route.
type Handler struct {
	Pages  Pages
	ErrLog *errorsfeature.ErrorLogger
	Log    *zap.Logger
}

func NewHandler(pages Pages, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Pages: pages, ErrLog: errLog, Log: logger}
}

type navLink struct {
	Title string
	Href  string
}

type lessonData struct {
	viewdata.BaseVM
	Chapters []catalog.LessonDescriptor // every catalog entry declared at this route
	Page     content.Page
	Prev     *navLink
	Next     *navLink
}

// ServeLesson renders the lesson at the request path.
func (h *Handler) ServeLesson(w http.ResponseWriter, r *http.Request) {
	data, err := h.buildData(r)
	if errors.Is(err, content.ErrNoContent) {
		h.Log.Warn("catalog route has no lesson content", zap.String("route", r.URL.Path))
		errorsfeature.RenderNotFound(w, r, "This chapter is still being written.")
		return
	}
	if err != nil {
		h.ErrLog.LogServerError(w, r, "render lesson", err, zap.String("route", r.URL.Path))
		return
	}
	templates.Render(w, r, "lesson", data)
}

func (h *Handler) buildData(r *http.Request) (lessonData, error) {
	route := r.URL.Path
	page, err := h.Pages.Page(route)
	if err != nil {
		return lessonData{}, err
	}

	var chapters []catalog.LessonDescriptor
	for _, d := range catalog.All() {
		if d.Route == route {
			chapters = append(chapters, d)
		}
	}

	data := lessonData{
		BaseVM:   viewdata.NewBaseVM(r, page.Title),
		Chapters: chapters,
		Page:     page,
	}
	data.Prev, data.Next = neighbours(route, viewstate.FromRequest(r))
	return data, nil
}

// neighbours returns the previous and next distinct routes in catalog order.
func neighbours(route string, state viewstate.State) (prev, next *navLink) {
	routes := catalog.Routes()
	for i, rt := range routes {
		if rt != route {
			continue
		}
		if i > 0 {
			prev = link(routes[i-1], state)
		}
		if i+1 < len(routes) {
			next = link(routes[i+1], state)
		}
		return prev, next
	}
	return nil, nil
}

func link(route string, state viewstate.State) *navLink {
	d, _ := catalog.Lookup(route)
	return &navLink{Title: d.Title, Href: viewstate.Href(route, state)}
}
