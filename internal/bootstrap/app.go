package bootstrap

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"docx-export-api/internal/export"
	"docx-export-api/internal/shared/config"
	"docx-export-api/internal/shared/server"
	"docx-export-api/internal/shared/server/middleware"
	"docx-export-api/internal/site"
	"docx-export-api/resume/render"
)

// App holds shared dependencies.
type App struct {
	Config        config.Config
	Router        *gin.Engine
	Profile       *render.Profile
	Renderer      *render.Renderer
	ExportService *export.Service
	ExportHandler *export.Handler
	SiteHandler   *site.Handler
	Limiter       *middleware.RateLimiter
}

// Build wires the renderer, services and handlers and mounts them on a router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	profile := render.DefaultProfile()
	renderer := render.NewRenderer(profile)
	exportSvc := export.NewService(renderer)

	siteHandler, err := site.NewHandler()
	if err != nil {
		return nil, fmt.Errorf("build site handler: %w", err)
	}

	app := &App{
		Config:        cfg,
		Profile:       profile,
		Renderer:      renderer,
		ExportService: exportSvc,
		ExportHandler: export.NewHandler(exportSvc, cfg.MaxBodyBytes),
		SiteHandler:   siteHandler,
		Limiter:       middleware.NewRateLimiter(nil),
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:        app.Config,
		ExportHandler: app.ExportHandler,
		SiteHandler:   app.SiteHandler,
		Limiter:       app.Limiter,
	})

	return app, nil
}
