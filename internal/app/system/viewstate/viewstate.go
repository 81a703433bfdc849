// Package viewstate derives the sidebar visibility of a page from its URL.
//
// The `fullscreen` query parameter is the only source of truth: a page is in
// fullscreen mode (sidebar hidden) exactly when fullscreen=true. Nothing
// else stores the flag. Toggling rewrites the query string.
package viewstate

import (
	"net/http"
	"net/url"
	"strings"
)

// Param is the query parameter that carries the view state.
const Param = "fullscreen"

// RootClass is the marker added to the page root while in fullscreen mode.
const RootClass = "fullscreen"

// State is the view state derived from a URL.
type State struct {
	SidebarHidden bool
}

// FromQuery derives the state from query values. Any value other than
// "true" (including "false", "TRUE", and "1") leaves the sidebar visible.
func FromQuery(q url.Values) State {
	return State{SidebarHidden: q.Get(Param) == "true"}
}

// FromURL derives the state from a URL.
func FromURL(u *url.URL) State {
	if u == nil {
		return State{}
	}
	return FromQuery(u.Query())
}

// FromRequest derives the state from the request URL.
func FromRequest(r *http.Request) State {
	return FromURL(r.URL)
}

// ToggleURL returns the path-relative URL that flips the state of u.
//
// Entering fullscreen appends fullscreen=true. Leaving it deletes the key
// instead of writing fullscreen=false, so visible pages keep clean URLs.
// The path, the fragment, and all other query pairs are kept as written,
// in their original order.
func ToggleURL(u *url.URL) string {
	hidden := FromURL(u).SidebarHidden

	var pairs []string
	for _, pair := range strings.Split(u.RawQuery, "&") {
		if pair == "" || pairKey(pair) == Param {
			continue
		}
		pairs = append(pairs, pair)
	}
	if !hidden {
		pairs = append(pairs, Param+"=true")
	}
	return relative(u, strings.Join(pairs, "&"))
}

// pairKey returns the unescaped key of a raw "key=value" query pair.
func pairKey(pair string) string {
	key, _, _ := strings.Cut(pair, "=")
	if k, err := url.QueryUnescape(key); err == nil {
		return k
	}
	return key
}

// Href returns route with the fullscreen flag carried over from s, so
// links followed in fullscreen mode stay in fullscreen mode.
func Href(route string, s State) string {
	if !s.SidebarHidden {
		return route
	}
	return route + "?" + Param + "=true"
}

func relative(u *url.URL, rawQuery string) string {
	out := url.URL{
		Path:     u.Path,
		RawQuery: rawQuery,
		Fragment: u.Fragment,
	}
	if out.Path == "" {
		out.Path = "/"
	}
	return out.String()
}
