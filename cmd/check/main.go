package main

import (
	"flag"
	"log"

	"canary/config"
	"canary/internals/app"
	"canary/pkg/logger"
)

func main() {
	configPath := flag.String("config", "config/websites.json", "path to the monitoring config")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	zlog := logger.Init(cfg)
	zlog.Info().Msg("logger initialized")

	container := app.NewContainer(cfg, zlog)
	container.RunChecks()

	// Failures are reported via email and the step summary; the run itself
	// always exits zero so the scheduling host doesn't flag the job.
	zlog.Info().Msg("monitoring run complete")
}
