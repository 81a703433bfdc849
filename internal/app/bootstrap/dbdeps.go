// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/penguinpathways/internal/app/system/content"
)

// DBDeps holds the back-end dependencies for the app. There is no database:
// lesson content is the only backing store.
type DBDeps struct {
	Lessons *content.Library
	Watcher *content.Watcher // nil unless content_watch is on
}
