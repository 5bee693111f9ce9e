package workers

import (
	"blogz/internal/config"
	"blogz/internal/logger"
	"blogz/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker the application runs: today
// that is the session janitor removing expired session rows.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSessionJanitor(services.SessionService, cfg.CleanupInterval, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
