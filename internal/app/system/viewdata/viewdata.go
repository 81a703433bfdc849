// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/dalemusser/penguinpathways/internal/app/system/catalog"
	"github.com/dalemusser/penguinpathways/internal/app/system/clipboard"
	"github.com/dalemusser/penguinpathways/internal/app/system/viewstate"
	"go.uber.org/zap"
)

// DefaultSiteName is used until Init provides a configured name.
const DefaultSiteName = "Penguin Pathways"

// TOCRoute is the table of contents page.
const TOCRoute = "/table-of-contents"

// ToggleRoute is the server-side fullscreen toggle used when scripts are off.
const ToggleRoute = "/fullscreen/toggle"

// SidebarItem is one rendered catalog link.
type SidebarItem struct {
	Title  string
	Route  string
	Href   string
	Glyph  string
	Active bool
}

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
// Usage:
//
//	type myPageData struct {
//	    viewdata.BaseVM
//	    // page-specific fields...
//	}
//
//	data := myPageData{
//	    BaseVM: viewdata.NewBaseVM(r, "Page Title"),
//	}
type BaseVM struct {
	SiteName string

	// Page context
	Title       string
	CurrentPath string

	// View state, derived from the fullscreen query parameter
	Fullscreen     bool
	Classes        viewstate.Classes
	RootClass      string
	ToggleHref     string // same page with the flag flipped; used by the script
	ToggleFallback string // server-side toggle for clicks without the script
	ToggleTitle    string
	EnterTitle     string
	ExitTitle      string
	Shortcut       string
	LayoutSwaps    string // JSON class swaps for toggling without a reload

	// Navigation
	HomeHref  string
	TOCHref   string
	TOCActive bool
	Sidebar   []SidebarItem

	// Clipboard feedback duration for copy buttons
	CopyFeedbackMS int64
}

// Settings are the site-wide values NewBaseVM needs.
type Settings struct {
	SiteName     string
	Shortcut     viewstate.Shortcut
	CopyFeedback time.Duration
	Logger       *zap.Logger
}

var (
	mu       sync.RWMutex
	settings = defaultSettings()
)

func defaultSettings() Settings {
	return Settings{
		SiteName:     DefaultSiteName,
		Shortcut:     viewstate.DefaultShortcut,
		CopyFeedback: clipboard.FeedbackTimeout,
		Logger:       zap.NewNop(),
	}
}

// Init sets the site-wide settings. Call this once at startup from bootstrap.
// Zero values keep the defaults.
func Init(s Settings) {
	mu.Lock()
	defer mu.Unlock()
	next := defaultSettings()
	if s.SiteName != "" {
		next.SiteName = s.SiteName
	}
	if s.Shortcut.Key != "" {
		next.Shortcut = s.Shortcut
	}
	if s.CopyFeedback > 0 {
		next.CopyFeedback = s.CopyFeedback
	}
	if s.Logger != nil {
		next.Logger = s.Logger
	}
	settings = next
}

// Reset restores the default settings. Intended for tests.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	settings = defaultSettings()
}

func current() Settings {
	mu.RLock()
	defer mu.RUnlock()
	return settings
}

// NewBaseVM creates a fully populated BaseVM for a page.
//
// It mounts a view-state controller on a document scoped to this request,
// captures what the page shell needs (root marker, keyboard binding), and
// releases the controller before returning, even if building panics.
func NewBaseVM(r *http.Request, title string) BaseVM {
	s := current()

	doc := viewstate.NewPageDocument()
	ctl := viewstate.NewController(
		viewstate.NewRequestLocation(r.URL),
		doc,
		viewstate.WithShortcut(s.Shortcut),
		viewstate.WithLogger(s.Logger),
	)
	release := ctl.Mount()
	defer release()

	state := ctl.State()
	path := r.URL.Path

	shortcuts := make([]string, 0, 1)
	for _, sc := range doc.Shortcuts() {
		shortcuts = append(shortcuts, sc.String())
	}

	vm := BaseVM{
		SiteName:       s.SiteName,
		Title:          title,
		CurrentPath:    path,
		Fullscreen:     state.SidebarHidden,
		Classes:        viewstate.ClassesFor(state),
		RootClass:      strings.Join(doc.RootClasses(), " "),
		ToggleHref:     viewstate.ToggleURL(r.URL),
		ToggleFallback: ToggleRoute + "?return=" + url.QueryEscape(r.URL.RequestURI()),
		ToggleTitle:    toggleTitle(state, s.Shortcut),
		EnterTitle:     toggleTitle(viewstate.State{}, s.Shortcut),
		ExitTitle:      toggleTitle(viewstate.State{SidebarHidden: true}, s.Shortcut),
		Shortcut:       strings.Join(shortcuts, " "),
		LayoutSwaps:    layoutSwaps(s.Logger),
		HomeHref:       viewstate.Href("/", state),
		TOCHref:        viewstate.Href(TOCRoute, state),
		TOCActive:      catalog.IsActive(TOCRoute, path),
		Sidebar:        Sidebar(path, state),
		CopyFeedbackMS: s.CopyFeedback.Milliseconds(),
	}
	return vm
}

// layoutSwaps encodes viewstate.Swaps for the page script.
func layoutSwaps(logger *zap.Logger) string {
	b, err := json.Marshal(viewstate.Swaps())
	if err != nil {
		logger.Error("encode layout swaps", zap.Error(err))
		return "[]"
	}
	return string(b)
}

// Sidebar renders the catalog as navigation links for the page at path.
func Sidebar(path string, state viewstate.State) []SidebarItem {
	entries := catalog.All()
	items := make([]SidebarItem, len(entries))
	for i, d := range entries {
		items[i] = SidebarItem{
			Title:  d.Title,
			Route:  d.Route,
			Href:   viewstate.Href(d.Route, state),
			Glyph:  d.Icon.Glyph(),
			Active: catalog.IsActive(d.Route, path),
		}
	}
	return items
}

func toggleTitle(state viewstate.State, sc viewstate.Shortcut) string {
	if state.SidebarHidden {
		return "Exit Full Screen (" + sc.String() + ")"
	}
	return "Enter Full Screen (" + sc.String() + ")"
}
