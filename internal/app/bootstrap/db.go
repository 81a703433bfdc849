// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/dalemusser/penguinpathways/internal/app/resources"
	"github.com/dalemusser/penguinpathways/internal/app/system/catalog"
	"github.com/dalemusser/penguinpathways/internal/app/system/content"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB loads the lesson library, either from content_dir or from the
// lessons embedded in the binary, and starts the file watcher when asked.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	var fsys fs.FS = resources.Lessons()
	source := "embedded"
	if appCfg.ContentDir != "" {
		fsys = os.DirFS(appCfg.ContentDir)
		source = appCfg.ContentDir
	}

	lib, err := content.NewLibrary(fsys, logger)
	if err != nil {
		logger.Error("load lessons failed", zap.String("source", source), zap.Error(err))
		return DBDeps{}, fmt.Errorf("load lessons from %s: %w", source, err)
	}
	logger.Info("lessons loaded", zap.String("source", source), zap.Int("lessons", len(lib.Routes())))

	deps := DBDeps{Lessons: lib}
	if appCfg.ContentWatch && appCfg.ContentDir != "" {
		w, err := content.Watch(appCfg.ContentDir, lib, logger)
		if err != nil {
			return DBDeps{}, fmt.Errorf("watch %s: %w", appCfg.ContentDir, err)
		}
		deps.Watcher = w
	}
	return deps, nil
}

// EnsureSchema validates the catalog and checks that every catalog route has
// a lesson and every lesson belongs to a catalog route.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	report, err := catalog.Check(catalog.All())
	for _, d := range report.Warnings() {
		logger.Warn("catalog route shared by several chapters",
			zap.String("route", d.Route),
			zap.Strings("titles", d.Titles))
	}
	if err != nil {
		logger.Error("catalog check failed", zap.Error(err))
		return err
	}

	if err := deps.Lessons.Check(catalog.Routes()); err != nil {
		logger.Error("lesson content check failed", zap.Error(err))
		return err
	}
	return nil
}
