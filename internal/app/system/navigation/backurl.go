// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures the behavior of SafeBackURL.
type BackURLOptions struct {
	// ExcludedPrefixes are path prefixes to reject (e.g., "/fullscreen/").
	// These prevent redirect loops back to action endpoints.
	ExcludedPrefixes []string

	// Fallback is the default URL if no valid return URL is found.
	Fallback string
}

// SafeBackURL extracts and validates the "return" query parameter.
//
// Only same-site paths are accepted: the value must start with a single "/",
// and it must not start with any excluded prefix. Anything else yields the
// fallback.
//
// Example usage:
//
//	url := navigation.SafeBackURL(r, navigation.ToggleReturn)
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if !IsSitePath(ret) {
		return opts.Fallback
	}
	for _, excluded := range opts.ExcludedPrefixes {
		if strings.HasPrefix(ret, excluded) {
			return opts.Fallback
		}
	}
	return ret
}

// IsSitePath reports whether s is a path on this site rather than a
// scheme-relative or absolute URL.
func IsSitePath(s string) bool {
	if !strings.HasPrefix(s, "/") {
		return false
	}
	return !strings.HasPrefix(s, "//") && !strings.HasPrefix(s, "/\\")
}

// ToggleReturn is used by the fullscreen toggle. It never returns to the
// toggle endpoint itself.
var ToggleReturn = BackURLOptions{
	ExcludedPrefixes: []string{"/fullscreen/"},
	Fallback:         "/",
}
