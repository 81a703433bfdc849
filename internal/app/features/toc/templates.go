// internal/app/features/toc/templates.go
package toc

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "toc",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
