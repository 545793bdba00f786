package server

import (
	"github.com/gin-gonic/gin"

	"docx-export-api/internal/export"
	"docx-export-api/internal/shared/config"
	"docx-export-api/internal/shared/metrics"
	"docx-export-api/internal/shared/server/middleware"
	"docx-export-api/internal/site"
)

// RouterDeps carries the handlers mounted by NewRouter.
type RouterDeps struct {
	Config        config.Config
	ExportHandler *export.Handler
	SiteHandler   *site.Handler
	Limiter       *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if deps.Config.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: middleware.ExportGroupFor,
			Limiter:  deps.Limiter,
			Rules: map[string]middleware.RateLimitRule{
				middleware.ExportRateLimitGroup: {
					Rate:  deps.Config.RateLimitRPS,
					Burst: deps.Config.RateLimitBurst,
				},
			},
		}),
	)

	if deps.SiteHandler != nil {
		deps.SiteHandler.RegisterRoutes(r)
	}
	if deps.ExportHandler != nil {
		deps.ExportHandler.RegisterRoutes(r)
	}
	r.GET("/metrics", metrics.Handler())

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
