package viewstate_test

import (
	"net/url"
	"testing"

	"github.com/dalemusser/penguinpathways/internal/app/system/viewstate"
	"pgregory.net/rapid"
)

// browserLocation simulates a history stack. Navigate pushes, Replace
// overwrites the top entry.
type browserLocation struct {
	entries []*url.URL
}

func newBrowserLocation(raw string) *browserLocation {
	u, _ := url.Parse(raw)
	return &browserLocation{entries: []*url.URL{u}}
}

func (b *browserLocation) URL() *url.URL { return b.entries[len(b.entries)-1] }

func (b *browserLocation) Replace(target string) {
	next, err := b.URL().Parse(target)
	if err != nil {
		return
	}
	b.entries[len(b.entries)-1] = next
}

func (b *browserLocation) Navigate(raw string) {
	u, _ := url.Parse(raw)
	b.entries = append(b.entries, u)
}

func (b *browserLocation) Back() {
	if len(b.entries) > 1 {
		b.entries = b.entries[:len(b.entries)-1]
	}
}

var f11 = viewstate.KeyEvent{Shortcut: viewstate.DefaultShortcut}

func TestController_InitialStateFromURL(t *testing.T) {
	loc := newBrowserLocation("/commands?fullscreen=true")
	doc := viewstate.NewPageDocument()
	c := viewstate.NewController(loc, doc)

	defer c.Mount()()

	if !c.CurrentlyHidden() {
		t.Error("expected hidden on first render")
	}
	if !doc.HasRootClass(viewstate.RootClass) {
		t.Error("marker should be applied at mount")
	}
}

func TestController_ToggleFromHidden(t *testing.T) {
	loc := newBrowserLocation("/commands?fullscreen=true")
	doc := viewstate.NewPageDocument()
	c := viewstate.NewController(loc, doc)
	release := c.Mount()
	defer release()

	c.Toggle()

	if got := loc.URL().String(); got != "/commands" {
		t.Errorf("URL after toggle = %q, want /commands", got)
	}
	if c.CurrentlyHidden() {
		t.Error("sidebar should be visible after toggle")
	}
	if doc.HasRootClass(viewstate.RootClass) {
		t.Error("marker should be removed when visible")
	}
	if len(loc.entries) != 1 {
		t.Errorf("toggle must replace, not push: %d history entries", len(loc.entries))
	}
}

func TestController_ToggleTwice(t *testing.T) {
	loc := newBrowserLocation("/labs")
	c := viewstate.NewController(loc, viewstate.NewPageDocument())
	defer c.Mount()()

	c.Toggle()
	if !c.CurrentlyHidden() || loc.URL().Query().Get(viewstate.Param) != "true" {
		t.Fatalf("first toggle: hidden=%v url=%q", c.CurrentlyHidden(), loc.URL())
	}
	c.Toggle()
	if c.CurrentlyHidden() {
		t.Error("second toggle should restore visible")
	}
	if _, ok := loc.URL().Query()[viewstate.Param]; ok {
		t.Errorf("param should be removed, got %q", loc.URL())
	}
}

func TestController_ShortcutToggles(t *testing.T) {
	loc := newBrowserLocation("/labs")
	doc := viewstate.NewPageDocument()
	c := viewstate.NewController(loc, doc)
	defer c.Mount()()

	doc.Dispatch(f11)
	if !c.CurrentlyHidden() {
		t.Error("F11 should hide the sidebar")
	}

	doc.Dispatch(viewstate.KeyEvent{Shortcut: viewstate.Shortcut{Key: "F10"}})
	if !c.CurrentlyHidden() {
		t.Error("unrelated keys must not toggle")
	}
}

func TestController_LetterShortcutIgnoresCase(t *testing.T) {
	ctrlF, _ := viewstate.ParseShortcut("Ctrl+F")
	loc := newBrowserLocation("/labs")
	doc := viewstate.NewPageDocument()
	c := viewstate.NewController(loc, doc, viewstate.WithShortcut(ctrlF))
	defer c.Mount()()

	// Browsers report Ctrl+F as key "f".
	doc.Dispatch(viewstate.KeyEvent{Shortcut: viewstate.Shortcut{Key: "f", Ctrl: true}})
	if !c.CurrentlyHidden() {
		t.Error("Ctrl+f should hide the sidebar")
	}

	doc.Dispatch(viewstate.KeyEvent{Shortcut: viewstate.Shortcut{Key: "f"}})
	if !c.CurrentlyHidden() {
		t.Error("f without Ctrl must not toggle")
	}
}

func TestController_ShortcutIgnoredInEditable(t *testing.T) {
	loc := newBrowserLocation("/labs")
	doc := viewstate.NewPageDocument()
	c := viewstate.NewController(loc, doc)
	defer c.Mount()()

	doc.Dispatch(viewstate.KeyEvent{Shortcut: viewstate.DefaultShortcut, Editable: true})
	if c.CurrentlyHidden() {
		t.Error("shortcut must be ignored while an editable element has focus")
	}
}

func TestController_CustomShortcut(t *testing.T) {
	loc := newBrowserLocation("/labs")
	doc := viewstate.NewPageDocument()
	ctrlF := viewstate.Shortcut{Key: "F", Ctrl: true}
	c := viewstate.NewController(loc, doc, viewstate.WithShortcut(ctrlF), viewstate.WithLogger(nil))
	defer c.Mount()()

	doc.Dispatch(f11)
	if c.CurrentlyHidden() {
		t.Error("default shortcut should not be bound")
	}
	doc.Dispatch(viewstate.KeyEvent{Shortcut: ctrlF})
	if !c.CurrentlyHidden() {
		t.Error("Ctrl+F should toggle")
	}
}

func TestController_ListenerLifecycle(t *testing.T) {
	loc := newBrowserLocation("/labs")
	doc := viewstate.NewPageDocument()
	c := viewstate.NewController(loc, doc)

	c.Mount()
	c.Mount()
	if n := doc.ListenerCount(); n != 1 {
		t.Fatalf("mounting twice registered %d listeners", n)
	}

	c.Unmount()
	if n := doc.ListenerCount(); n != 0 {
		t.Fatalf("%d listeners left after unmount", n)
	}

	doc.Dispatch(f11)
	if c.CurrentlyHidden() {
		t.Error("key press after unmount must not toggle")
	}
	if loc.URL().String() != "/labs" {
		t.Errorf("URL changed after unmount: %q", loc.URL())
	}

	// Remounting attaches exactly one listener again.
	c.Mount()
	if n := doc.ListenerCount(); n != 1 {
		t.Errorf("remount registered %d listeners", n)
	}
	c.Unmount()
	c.Unmount()
	if n := doc.ListenerCount(); n != 0 {
		t.Errorf("%d listeners left after double unmount", n)
	}
}

func TestController_MarkerSymmetry(t *testing.T) {
	loc := newBrowserLocation("/labs")
	doc := viewstate.NewPageDocument()
	c := viewstate.NewController(loc, doc)

	release := c.Mount()
	c.Toggle()
	if !doc.HasRootClass(viewstate.RootClass) {
		t.Fatal("marker missing while hidden")
	}
	c.Toggle()
	release()

	if doc.HasRootClass(viewstate.RootClass) {
		t.Error("marker leaked after hide, show, unmount")
	}
}

func TestController_UnmountWhileHiddenClearsMarker(t *testing.T) {
	loc := newBrowserLocation("/labs?fullscreen=true")
	doc := viewstate.NewPageDocument()
	c := viewstate.NewController(loc, doc)

	func() {
		defer func() { _ = recover() }()
		defer c.Mount()()
		panic("render failed")
	}()

	if doc.HasRootClass(viewstate.RootClass) {
		t.Error("marker must be released even when the view is torn down early")
	}
	if doc.ListenerCount() != 0 {
		t.Error("listener must be released")
	}
}

// A page restored from the back/forward cache is unmounted on the way out
// and mounted again on the way back; the marker comes from the URL again.
func TestController_RemountAfterRestoreRederivesMarker(t *testing.T) {
	loc := newBrowserLocation("/labs?fullscreen=true")
	doc := viewstate.NewPageDocument()
	c := viewstate.NewController(loc, doc)

	c.Mount()
	c.Unmount()
	if doc.HasRootClass(viewstate.RootClass) || doc.ListenerCount() != 0 {
		t.Fatal("unmount should clear the marker and the listener")
	}

	defer c.Mount()()
	if !doc.HasRootClass(viewstate.RootClass) {
		t.Error("remount on a fullscreen URL should restore the marker")
	}
	if doc.ListenerCount() != 1 {
		t.Errorf("listeners after remount = %d, want 1", doc.ListenerCount())
	}
	doc.Dispatch(f11)
	if c.CurrentlyHidden() {
		t.Error("shortcut should work again after remount")
	}
}

func TestController_NavigatedResyncs(t *testing.T) {
	loc := newBrowserLocation("/labs")
	doc := viewstate.NewPageDocument()
	c := viewstate.NewController(loc, doc)
	defer c.Mount()()

	loc.Navigate("/commands?fullscreen=true")
	c.Navigated()
	if !c.CurrentlyHidden() || !doc.HasRootClass(viewstate.RootClass) {
		t.Error("pasted fullscreen URL should hide the sidebar")
	}

	loc.Back()
	c.Navigated()
	if c.CurrentlyHidden() || doc.HasRootClass(viewstate.RootClass) {
		t.Error("back navigation should restore the visible sidebar")
	}
}

func TestController_ToggleWhileUnmounted(t *testing.T) {
	loc := newBrowserLocation("/labs")
	doc := viewstate.NewPageDocument()
	c := viewstate.NewController(loc, doc)

	c.Toggle()
	if !c.CurrentlyHidden() {
		t.Error("toggle always rewrites the URL")
	}
	if doc.HasRootClass(viewstate.RootClass) {
		t.Error("an unmounted controller must not touch the document")
	}
}

// For any interleaving of toggles, key presses, and navigations, the
// controller's answer and the document marker both match the URL.
func TestController_URLInvariant(t *testing.T) {
	paths := []string{
		"/commands", "/labs", "/labs/", "/networking?fullscreen=true",
		"/journey?fullscreen=false", "/challenges?tab=1&fullscreen=true",
	}

	rapid.Check(t, func(rt *rapid.T) {
		start := rapid.SampledFrom(paths).Draw(rt, "start")
		loc := newBrowserLocation(start)
		doc := viewstate.NewPageDocument()
		c := viewstate.NewController(loc, doc)
		release := c.Mount()

		steps := rapid.IntRange(0, 40).Draw(rt, "steps")
		for i := 0; i < steps; i++ {
			switch rapid.IntRange(0, 4).Draw(rt, "op") {
			case 0:
				c.Toggle()
			case 1:
				doc.Dispatch(f11)
			case 2:
				loc.Navigate(rapid.SampledFrom(paths).Draw(rt, "path"))
				c.Navigated()
			case 3:
				loc.Back()
				c.Navigated()
			case 4:
				doc.Dispatch(viewstate.KeyEvent{Shortcut: viewstate.DefaultShortcut, Editable: true})
			}

			want := loc.URL().Query().Get(viewstate.Param) == "true"
			if c.CurrentlyHidden() != want {
				rt.Fatalf("step %d: CurrentlyHidden() = %v, url %q", i, c.CurrentlyHidden(), loc.URL())
			}
			if doc.HasRootClass(viewstate.RootClass) != want {
				rt.Fatalf("step %d: marker = %v, url %q", i, doc.HasRootClass(viewstate.RootClass), loc.URL())
			}
		}

		release()
		if doc.HasRootClass(viewstate.RootClass) || doc.ListenerCount() != 0 {
			rt.Fatal("resources leaked after release")
		}
	})
}

// Toggling twice from any URL returns to the original state and never
// leaves fullscreen=false behind.
func TestToggleURL_DoubleToggle(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		path := rapid.StringMatching(`/[a-z-]{1,12}`).Draw(rt, "path")
		hidden := rapid.Bool().Draw(rt, "hidden")
		raw := path
		if hidden {
			raw += "?fullscreen=true"
		}
		u, _ := url.Parse(raw)

		once, _ := url.Parse(viewstate.ToggleURL(u))
		twice, _ := url.Parse(viewstate.ToggleURL(once))

		if viewstate.FromURL(once).SidebarHidden == hidden {
			rt.Fatalf("single toggle did not flip %q", raw)
		}
		if viewstate.FromURL(twice).SidebarHidden != hidden {
			rt.Fatalf("double toggle changed state of %q", raw)
		}
		for _, v := range []*url.URL{once, twice} {
			if v.Query().Get(viewstate.Param) == "false" {
				rt.Fatalf("fullscreen=false written for %q", raw)
			}
		}
	})
}
