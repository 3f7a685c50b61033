package app

import (
	"canary/config"
	"canary/internals/modules/alert"
	"canary/internals/modules/history"
	"canary/internals/modules/probe"
	"canary/internals/modules/report"
	"canary/internals/modules/status"

	"github.com/rs/zerolog"
)

// Notifier delivers the failure alert. Satisfied by alert.Mailer.
type Notifier interface {
	Send(failed []probe.Result, notif config.Notification) error
}

type Container struct {
	Cfg      *config.Config
	Log      *zerolog.Logger
	Prober   *probe.Prober
	History  *history.Store
	Status   *status.Writer
	Notifier Notifier
	Reporter *report.Reporter
}

func NewContainer(cfg *config.Config, log *zerolog.Logger) *Container {
	return &Container{
		Cfg:      cfg,
		Log:      log,
		Prober:   probe.NewProber(cfg.Settings, log),
		History:  history.NewStore(cfg.CacheDir, log),
		Status:   status.NewWriter(cfg.CacheDir, log),
		Notifier: alert.NewMailerFromEnv(log),
		Reporter: report.NewReporter(log),
	}
}
