// Package catalog holds the ordered, immutable list of lessons that drives
// the sidebar, the table of contents, and lesson routing.
//
// The catalog is declared as a Go literal and built once at package init.
// Declaration order is meaningful: it is the sidebar order and the chapter
// numbering shown on the table of contents.
package catalog

import "fmt"

// LessonDescriptor describes one navigable lesson page.
type LessonDescriptor struct {
	Title         string
	Route         string
	Icon          Icon
	Description   string
	Level         Level    // zero value: no difficulty tag
	Featured      bool     // highlighted on the home page
	EstimatedTime string   // free-form label, e.g. "2 hours"; empty when absent
	Topics        []string // sub-topic chips; nil when absent
}

// HasLevel reports whether the lesson carries a difficulty tag.
func (d LessonDescriptor) HasLevel() bool { return d.Level != LevelNone }

// All returns the full catalog in declaration order.
//
// Each call returns a fresh copy, so callers may sort or filter the result
// without affecting other readers.
func All() []LessonDescriptor {
	out := make([]LessonDescriptor, len(lessons))
	for i, d := range lessons {
		d.Topics = append([]string(nil), d.Topics...)
		out[i] = d
	}
	return out
}

// Len is the number of catalog entries.
func Len() int { return len(lessons) }

// IsActive reports whether route is the page currently being viewed.
// The comparison is exact: "/labs" and "/labs/" are different paths.
func IsActive(route, currentPath string) bool {
	return currentPath == route
}

// Lookup returns the first entry declared for route.
func Lookup(route string) (LessonDescriptor, bool) {
	for _, d := range lessons {
		if d.Route == route {
			d.Topics = append([]string(nil), d.Topics...)
			return d, true
		}
	}
	return LessonDescriptor{}, false
}

// Routes returns each distinct route once, in order of first declaration.
func Routes() []string {
	seen := make(map[string]struct{}, len(lessons))
	out := make([]string, 0, len(lessons))
	for _, d := range lessons {
		if _, ok := seen[d.Route]; ok {
			continue
		}
		seen[d.Route] = struct{}{}
		out = append(out, d.Route)
	}
	return out
}

// ChapterLabel is the label shown for the entry at position i (zero based).
func ChapterLabel(i int) string {
	return fmt.Sprintf("Chapter %d", i+1)
}
