package main

import (
	"log"

	_ "go.uber.org/automaxprocs"

	"docx-export-api/internal/bootstrap"
	"docx-export-api/internal/shared/config"
	"docx-export-api/internal/shared/server"
	"docx-export-api/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap error: %v", err)
	}

	addr := server.Addr(cfg.Port)
	telemetry.Info("server.start", map[string]any{
		"addr":          addr,
		"env":           cfg.Env,
		"cors_origins":  cfg.CORSAllowOrigin,
		"rate_limit":    cfg.RateLimitRPS,
		"max_body_size": cfg.MaxBodyBytes,
	})

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
