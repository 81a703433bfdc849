package catalog

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrDuplicateRoute is returned by Check when two entries share a route
// that is not listed in KnownDuplicateRoutes.
var ErrDuplicateRoute = errors.New("duplicate catalog route")

// ErrInvalidEntry is returned by Check for entries missing a title or route,
// or whose route is not an absolute path.
var ErrInvalidEntry = errors.New("invalid catalog entry")

// Duplicate describes a route declared by more than one entry.
type Duplicate struct {
	Route  string
	Titles []string
	Known  bool
}

// Report is the result of validating a catalog.
type Report struct {
	Entries    int
	Duplicates []Duplicate
}

// Warnings returns the duplicates listed in KnownDuplicateRoutes.
func (r Report) Warnings() []Duplicate {
	var out []Duplicate
	for _, d := range r.Duplicates {
		if d.Known {
			out = append(out, d)
		}
	}
	return out
}

// Check validates entries. It returns an error wrapping ErrInvalidEntry or
// ErrDuplicateRoute when the catalog has an authoring mistake; known
// duplicates are reported but do not fail the check.
func Check(entries []LessonDescriptor) (Report, error) {
	rep := Report{Entries: len(entries)}

	titles := make(map[string][]string, len(entries))
	var order []string
	for i, d := range entries {
		if strings.TrimSpace(d.Title) == "" || !strings.HasPrefix(d.Route, "/") {
			return rep, fmt.Errorf("%w: entry %d (%q, %q)", ErrInvalidEntry, i, d.Title, d.Route)
		}
		if _, ok := titles[d.Route]; !ok {
			order = append(order, d.Route)
		}
		titles[d.Route] = append(titles[d.Route], d.Title)
	}

	var unknown []string
	for _, route := range order {
		if len(titles[route]) < 2 {
			continue
		}
		known := slices.Contains(KnownDuplicateRoutes, route)
		rep.Duplicates = append(rep.Duplicates, Duplicate{
			Route:  route,
			Titles: titles[route],
			Known:  known,
		})
		if !known {
			unknown = append(unknown, route)
		}
	}

	if len(unknown) > 0 {
		return rep, fmt.Errorf("%w: %s", ErrDuplicateRoute, strings.Join(unknown, ", "))
	}
	return rep, nil
}
