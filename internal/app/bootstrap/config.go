// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"os"

	"github.com/dalemusser/penguinpathways/internal/app/system/clipboard"
	"github.com/dalemusser/penguinpathways/internal/app/system/viewdata"
	"github.com/dalemusser/penguinpathways/internal/app/system/viewstate"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for Penguin Pathways.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: site_name, content_dir, etc.
//   - Environment variables: PATHWAYS_SITE_NAME, PATHWAYS_CONTENT_DIR, etc.
//   - Command-line flags: --site_name, --content_dir, etc.
var appConfigKeys = []config.AppKey{
	{Name: "site_name", Default: viewdata.DefaultSiteName, Desc: "Site name shown in the sidebar and page titles"},

	// Lesson content
	{Name: "content_dir", Default: "", Desc: "Directory of lesson markdown files (blank uses the embedded lessons)"},
	{Name: "content_watch", Default: false, Desc: "Reload lessons when files in content_dir change"},

	// Page shell
	{Name: "fullscreen_shortcut", Default: viewstate.DefaultShortcut.String(), Desc: "Key that toggles fullscreen (e.g., F11, Ctrl+F)"},
	{Name: "copy_feedback", Default: "2s", Desc: "How long the 'Copied' label stays on a copy button"},
	{Name: "public_dir", Default: "public", Desc: "Directory of static assets served under /static"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, PATHWAYS_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "PATHWAYS", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	shortcut, err := shortcutFromConfig(appValues.String("fullscreen_shortcut"))
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		SiteName: appValues.String("site_name"),

		ContentDir:   appValues.String("content_dir"),
		ContentWatch: appValues.Bool("content_watch"),

		Shortcut:     shortcut,
		CopyFeedback: appValues.Duration("copy_feedback", clipboard.FeedbackTimeout),
		PublicDir:    appValues.String("public_dir"),
	}

	return coreCfg, appCfg, nil
}

// shortcutFromConfig parses the fullscreen_shortcut value.
func shortcutFromConfig(v string) (viewstate.Shortcut, error) {
	shortcut, ok := viewstate.ParseShortcut(v)
	if !ok {
		return viewstate.Shortcut{}, fmt.Errorf("fullscreen_shortcut: invalid value %q", v)
	}
	return shortcut, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.ContentDir != "" {
		info, err := os.Stat(appCfg.ContentDir)
		if err != nil {
			logger.Error("content_dir is not readable", zap.String("content_dir", appCfg.ContentDir), zap.Error(err))
			return fmt.Errorf("content_dir: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("content_dir %q is not a directory", appCfg.ContentDir)
		}
	}

	if appCfg.ContentWatch && appCfg.ContentDir == "" {
		logger.Warn("content_watch has no effect without content_dir")
	}

	if appCfg.CopyFeedback <= 0 {
		return fmt.Errorf("copy_feedback must be positive, got %s", appCfg.CopyFeedback)
	}

	if appCfg.Shortcut.Key == "" {
		return fmt.Errorf("fullscreen_shortcut must name a key")
	}

	return nil
}
