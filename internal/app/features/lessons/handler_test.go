package lessons

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	errorsfeature "github.com/dalemusser/penguinpathways/internal/app/features/errors"
	"github.com/dalemusser/penguinpathways/internal/app/system/catalog"
	"github.com/dalemusser/penguinpathways/internal/app/system/content"
	"github.com/dalemusser/penguinpathways/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type stubPages struct {
	pages map[string]content.Page
	err   error
	calls []string
}

func (s *stubPages) Page(route string) (content.Page, error) {
	s.calls = append(s.calls, route)
	if s.err != nil {
		return content.Page{}, s.err
	}
	p, ok := s.pages[route]
	if !ok {
		return content.Page{}, content.ErrNoContent
	}
	return p, nil
}

func allPages() *stubPages {
	s := &stubPages{pages: map[string]content.Page{}}
	for _, route := range catalog.Routes() {
		s.pages[route] = content.Page{Route: route, Title: "Lesson " + route}
	}
	return s
}

func newTestHandler(p Pages) *Handler {
	logger := zap.NewNop()
	return NewHandler(p, errorsfeature.NewErrorLogger(logger), logger)
}

func TestBuildData_DuplicateRouteShowsBothChapters(t *testing.T) {
	h := newTestHandler(allPages())
	data, err := h.buildData(httptest.NewRequest("GET", "/linux", nil))
	if err != nil {
		t.Fatalf("buildData: %v", err)
	}
	if len(data.Chapters) != 2 {
		t.Fatalf("expected both /linux chapters, got %d", len(data.Chapters))
	}
	if data.Chapters[0].Title != "Shell Scripting & Automation" || data.Chapters[1].Title != "Linux Mastery" {
		t.Errorf("unexpected chapters %q, %q", data.Chapters[0].Title, data.Chapters[1].Title)
	}
}

func TestBuildData_Neighbours(t *testing.T) {
	h := newTestHandler(allPages())
	routes := catalog.Routes()

	first, err := h.buildData(httptest.NewRequest("GET", routes[0], nil))
	if err != nil {
		t.Fatal(err)
	}
	if first.Prev != nil {
		t.Errorf("first lesson should have no previous link, got %+v", first.Prev)
	}
	if first.Next == nil || first.Next.Href != routes[1] {
		t.Errorf("next = %+v, want %s", first.Next, routes[1])
	}

	last, err := h.buildData(httptest.NewRequest("GET", routes[len(routes)-1]+"?fullscreen=true", nil))
	if err != nil {
		t.Fatal(err)
	}
	if last.Next != nil {
		t.Errorf("last lesson should have no next link, got %+v", last.Next)
	}
	if last.Prev == nil || last.Prev.Href != routes[len(routes)-2]+"?fullscreen=true" {
		t.Errorf("prev = %+v", last.Prev)
	}
}

func TestServeLesson_MissingContentIs404(t *testing.T) {
	h := newTestHandler(&stubPages{pages: map[string]content.Page{}})
	rec := testutil.Serve(http.HandlerFunc(h.ServeLesson), testutil.NewRequest("GET", "/commands"))
	rec.AssertStatus(t, http.StatusNotFound)
}

func TestServeLesson_RenderErrorIs500(t *testing.T) {
	h := newTestHandler(&stubPages{err: errors.New("broken markdown")})
	rec := testutil.Serve(http.HandlerFunc(h.ServeLesson), testutil.NewRequest("GET", "/commands"))
	rec.AssertStatus(t, http.StatusInternalServerError)
}

func TestRegister_ToggleKeepsLesson(t *testing.T) {
	pages := allPages()
	h := newTestHandler(pages)
	r := chi.NewRouter()
	Register(r, h)

	for _, target := range []string{"/commands", "/commands?fullscreen=true"} {
		testutil.Serve(r, testutil.NewRequest("GET", target))
	}

	if len(pages.calls) != 2 || pages.calls[0] != "/commands" || pages.calls[1] != "/commands" {
		t.Errorf("lesson lookups = %v, want /commands twice", pages.calls)
	}
}
