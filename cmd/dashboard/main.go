package main

import (
	"flag"
	"log"
	"os"

	"canary/config"
	"canary/internals/modules/dashboard"
	"canary/internals/modules/history"
	"canary/internals/modules/status"
	"canary/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config/websites.json", "path to the monitoring config")
	outPath := flag.String("out", "dashboard.html", "where to write the generated page")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog := logger.Init(cfg)
	zlog.Info().Msg("generating monitoring dashboard")

	store := history.NewStore(cfg.CacheDir, zlog)
	entries := store.Load()

	if len(entries) == 0 {
		zlog.Warn().Msg("no historical data found, writing placeholder dashboard")
		if err := os.WriteFile(*outPath, []byte(dashboard.RenderPlaceholder()), 0o644); err != nil {
			zlog.Fatal().Err(err).Msg("failed to write dashboard")
		}
		zlog.Info().Str("path", *outPath).Msg("minimal dashboard created")
		return
	}

	vm := dashboard.Build(entries)
	snapshot := status.NewWriter(cfg.CacheDir, zlog).Load()

	page, err := dashboard.Render(vm, snapshot)
	if err != nil {
		zlog.Fatal().Err(err).Msg("failed to render dashboard")
	}

	if err := os.WriteFile(*outPath, []byte(page), 0o644); err != nil {
		zlog.Fatal().Err(err).Msg("failed to write dashboard")
	}

	zlog.Info().Str("path", *outPath).Int("entries", len(entries)).Msg("dashboard generated")
}
