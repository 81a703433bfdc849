// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/penguinpathways/internal/app/resources"
	"github.com/dalemusser/penguinpathways/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after the lesson library
// is loaded and checked, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	resources.LoadSharedTemplates()

	viewdata.Init(viewdata.Settings{
		SiteName:     appCfg.SiteName,
		Shortcut:     appCfg.Shortcut,
		CopyFeedback: appCfg.CopyFeedback,
		Logger:       logger,
	})
	return nil
}
