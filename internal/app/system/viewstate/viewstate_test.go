package viewstate_test

import (
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/dalemusser/penguinpathways/internal/app/system/viewstate"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse %q: %v", raw, err)
	}
	return u
}

func TestFromQuery(t *testing.T) {
	tests := []struct {
		query string
		want  bool
	}{
		{"", false},
		{"fullscreen=true", true},
		{"fullscreen=false", false},
		{"fullscreen=TRUE", false},
		{"fullscreen=1", false},
		{"fullscreen=", false},
		{"fullscreen", false},
		{"other=true", false},
		{"fullscreen=true&fullscreen=false", true},
		{"page=2&fullscreen=true", true},
	}
	for _, tt := range tests {
		q, err := url.ParseQuery(tt.query)
		if err != nil {
			t.Fatalf("ParseQuery(%q): %v", tt.query, err)
		}
		if got := viewstate.FromQuery(q).SidebarHidden; got != tt.want {
			t.Errorf("FromQuery(%q) hidden = %v, want %v", tt.query, got, tt.want)
		}
	}
}

func TestFromRequest(t *testing.T) {
	req := httptest.NewRequest("GET", "/commands?fullscreen=true", nil)
	if !viewstate.FromRequest(req).SidebarHidden {
		t.Error("expected hidden for /commands?fullscreen=true")
	}
	req = httptest.NewRequest("GET", "/commands", nil)
	if viewstate.FromRequest(req).SidebarHidden {
		t.Error("expected visible for /commands")
	}
	if viewstate.FromURL(nil).SidebarHidden {
		t.Error("nil URL should be visible")
	}
}

func TestToggleURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"/commands", "/commands?fullscreen=true"},
		{"/commands?fullscreen=true", "/commands"},
		{"/commands?fullscreen=false", "/commands?fullscreen=true"},
		{"/commands?fullscreen=nope", "/commands?fullscreen=true"},
		{"/labs?tab=2", "/labs?tab=2&fullscreen=true"},
		{"/labs?fullscreen=true&tab=2", "/labs?tab=2"},
		{"/labs?z=1&a=2&fullscreen=true", "/labs?z=1&a=2"},
		{"/labs?z=1&a=2", "/labs?z=1&a=2&fullscreen=true"},
		{"/labs?q=a%20b&fullscreen=false", "/labs?q=a%20b&fullscreen=true"},
		{"/labs?fullscreen=true&fullscreen=true", "/labs"},
		{"/labs#step-3", "/labs?fullscreen=true#step-3"},
		{"", "/?fullscreen=true"},
	}
	for _, tt := range tests {
		if got := viewstate.ToggleURL(mustURL(t, tt.in)); got != tt.want {
			t.Errorf("ToggleURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToggleURL_TwiceRemovesParam(t *testing.T) {
	u := mustURL(t, "/networking")
	once := mustURL(t, viewstate.ToggleURL(u))
	twice := mustURL(t, viewstate.ToggleURL(once))

	if twice.String() != "/networking" {
		t.Errorf("toggling twice: got %q, want /networking", twice)
	}
	if _, ok := twice.Query()[viewstate.Param]; ok {
		t.Error("fullscreen key should be removed, not set to false")
	}
}

func TestHref(t *testing.T) {
	if got := viewstate.Href("/labs", viewstate.State{}); got != "/labs" {
		t.Errorf("visible Href = %q", got)
	}
	if got := viewstate.Href("/labs", viewstate.State{SidebarHidden: true}); got != "/labs?fullscreen=true" {
		t.Errorf("hidden Href = %q", got)
	}
}

func TestClassesFor(t *testing.T) {
	visible := viewstate.ClassesFor(viewstate.State{})
	hidden := viewstate.ClassesFor(viewstate.State{SidebarHidden: true})
	if visible == hidden {
		t.Fatal("visible and hidden classes should differ")
	}
	if hidden.Sidebar != "sidebar sidebar--collapsed" {
		t.Errorf("hidden sidebar classes = %q", hidden.Sidebar)
	}
	if visible.Main != "main" {
		t.Errorf("visible main classes = %q", visible.Main)
	}
}

func TestSwaps_RebuildHiddenClasses(t *testing.T) {
	visible := viewstate.ClassesFor(viewstate.State{})
	hidden := viewstate.ClassesFor(viewstate.State{SidebarHidden: true})
	pairs := [][2]string{
		{visible.Container, hidden.Container},
		{visible.Section, hidden.Section},
		{visible.Header, hidden.Header},
		{visible.FullWidth, hidden.FullWidth},
		{visible.Sidebar, hidden.Sidebar},
		{visible.Main, hidden.Main},
	}

	swaps := viewstate.Swaps()
	if len(swaps) != len(pairs) {
		t.Fatalf("swaps = %d, want %d", len(swaps), len(pairs))
	}
	for i, sw := range swaps {
		if sw.Base != pairs[i][0] {
			t.Errorf("swap %d base = %q, want %q", i, sw.Base, pairs[i][0])
		}
		if len(sw.Hidden) == 0 {
			t.Errorf("swap %q adds no classes", sw.Base)
		}
		got := strings.Join(append([]string{sw.Base}, sw.Hidden...), " ")
		if got != pairs[i][1] {
			t.Errorf("swap %q yields %q, want %q", sw.Base, got, pairs[i][1])
		}
	}
}

func TestParseShortcut(t *testing.T) {
	tests := []struct {
		in   string
		want viewstate.Shortcut
		ok   bool
	}{
		{"F11", viewstate.Shortcut{Key: "F11"}, true},
		{"Ctrl+F", viewstate.Shortcut{Key: "F", Ctrl: true}, true},
		{"", viewstate.Shortcut{}, false},
		{"Ctrl+", viewstate.Shortcut{}, false},
		{"k", viewstate.Shortcut{Key: "K"}, true},
	}
	for _, tt := range tests {
		got, ok := viewstate.ParseShortcut(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseShortcut(%q) = %+v, %v; want %+v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
		if ok && !strings.EqualFold(got.String(), tt.in) {
			t.Errorf("String() round trip: got %q, want %q", got.String(), tt.in)
		}
	}
}

func TestParseShortcut_LetterCaseIsIgnored(t *testing.T) {
	lower, ok1 := viewstate.ParseShortcut("Ctrl+f")
	upper, ok2 := viewstate.ParseShortcut("Ctrl+F")
	if !ok1 || !ok2 || lower != upper {
		t.Errorf("Ctrl+f = %+v, Ctrl+F = %+v", lower, upper)
	}
}

func TestShortcut_Matches(t *testing.T) {
	ctrlF, _ := viewstate.ParseShortcut("Ctrl+F")
	tests := []struct {
		key  string
		ctrl bool
		want bool
	}{
		{"f", true, true},
		{"F", true, true},
		{"f", false, false},
		{"g", true, false},
	}
	for _, tt := range tests {
		if got := ctrlF.Matches(tt.key, tt.ctrl); got != tt.want {
			t.Errorf("Ctrl+F.Matches(%q, %v) = %v, want %v", tt.key, tt.ctrl, got, tt.want)
		}
	}
	if !viewstate.DefaultShortcut.Matches("F11", false) {
		t.Error("F11 should match the default shortcut")
	}
	if viewstate.DefaultShortcut.Matches("f11", false) {
		t.Error("named keys compare exactly")
	}
}

func TestRequestLocation_KeepsQueryOrder(t *testing.T) {
	loc := viewstate.NewRequestLocation(mustURL(t, "/labs?z=1&a=2"))
	if got := loc.Current(); got != "/labs?z=1&a=2" {
		t.Errorf("Current() = %q, want /labs?z=1&a=2", got)
	}
}

func TestRequestLocation(t *testing.T) {
	orig := mustURL(t, "/commands?fullscreen=true")
	loc := viewstate.NewRequestLocation(orig)
	loc.Replace("/commands")

	if loc.Current() != "/commands" {
		t.Errorf("Current() = %q", loc.Current())
	}
	if !loc.Replaced() {
		t.Error("Replaced() should be true")
	}
	if orig.RawQuery != "fullscreen=true" {
		t.Error("Replace mutated the caller's URL")
	}
}
