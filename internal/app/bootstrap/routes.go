// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	errorsfeature "github.com/dalemusser/penguinpathways/internal/app/features/errors"
	fullscreenfeature "github.com/dalemusser/penguinpathways/internal/app/features/fullscreen"
	healthfeature "github.com/dalemusser/penguinpathways/internal/app/features/health"
	homefeature "github.com/dalemusser/penguinpathways/internal/app/features/home"
	lessonsfeature "github.com/dalemusser/penguinpathways/internal/app/features/lessons"
	tocfeature "github.com/dalemusser/penguinpathways/internal/app/features/toc"
	"github.com/dalemusser/penguinpathways/internal/app/system/content"
	"github.com/dalemusser/penguinpathways/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, lesson loading, content checks, and
// the Startup hook have completed. It boots the template engine and mounts
// the feature routers: home, table of contents, one route per catalog
// chapter, the fullscreen fallback toggle, and health.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	r := chi.NewRouter()

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", appCfg.PublicDir))

	mountRoutes(r, deps.Lessons, logger)
	return r, nil
}

// mountRoutes attaches every feature router to r.
func mountRoutes(r chi.Router, lessons *content.Library, logger *zap.Logger) {
	errLog := errorsfeature.NewErrorLogger(logger)

	// Unknown paths render the not found page. Set before mounting so
	// subrouters inherit it.
	errorsHandler := errorsfeature.NewHandler(logger)
	r.NotFound(errorsHandler.NotFound)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(lessons, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Landing page and table of contents
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	tocHandler := tocfeature.NewHandler(logger)
	r.Mount(viewdata.TOCRoute, tocfeature.Routes(tocHandler))

	// One route per catalog chapter
	lessonsHandler := lessonsfeature.NewHandler(lessons, errLog, logger)
	lessonsfeature.Register(r, lessonsHandler)

	// Sidebar toggle for clients without the page script
	fullscreenHandler := fullscreenfeature.NewHandler(logger)
	r.Mount("/fullscreen", fullscreenfeature.Routes(fullscreenHandler))
}
