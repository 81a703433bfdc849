// internal/app/bootstrap/appconfig.go
package bootstrap

import (
	"time"

	"github.com/dalemusser/penguinpathways/internal/app/system/viewstate"
)

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
type AppConfig struct {
	SiteName string // Shown in the sidebar brand and page titles

	// Lesson content
	ContentDir   string // Directory of lesson .md files; blank serves the embedded lessons
	ContentWatch bool   // Reload lessons when files in ContentDir change

	// Page shell
	Shortcut     viewstate.Shortcut // Key that toggles fullscreen (e.g., F11, Ctrl+F)
	CopyFeedback time.Duration      // How long "Copied" stays on a copy button
	PublicDir    string             // Directory served under /static
}
