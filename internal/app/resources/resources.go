// internal/app/resources/resources.go
package resources

import (
	"embed"
	"io/fs"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

// Embed the shared layout templates.
//
//go:embed templates/*.gohtml
var FS embed.FS

// Embed the lesson bodies. Each file carries front matter naming its route.
//
//go:embed lessons/*.md
var lessonsFS embed.FS

var registerOnce sync.Once

// LoadSharedTemplates registers the page shell (head, sidebar, fullscreen
// toggle) used by every feature template.
func LoadSharedTemplates() {
	registerOnce.Do(func() {
		templates.Register(templates.Set{
			Name:     "shared",
			FS:       FS,
			Patterns: []string{"templates/*.gohtml"},
		})
	})
}

// Lessons returns the embedded lesson files rooted at the lessons directory.
func Lessons() fs.FS {
	sub, err := fs.Sub(lessonsFS, "lessons")
	if err != nil {
		// fs.Sub only fails for an invalid path literal.
		panic(err)
	}
	return sub
}
