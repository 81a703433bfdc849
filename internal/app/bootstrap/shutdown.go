// internal/app/bootstrap/shutdown.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Shutdown stops the lesson watcher, if one is running.
func Shutdown(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if deps.Watcher != nil {
		logger.Info("stopping lesson watcher")
		if err := deps.Watcher.Close(); err != nil {
			logger.Error("lesson watcher close failed", zap.Error(err))
			return err
		}
	}
	return nil
}
