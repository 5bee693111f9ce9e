// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"time"

	"blogz/internal/logger"
	"blogz/internal/service"
)

// SessionJanitor periodically removes expired session rows. Sessions are
// already invisible to lookups once expired; the janitor keeps the table
// from growing without bound.
type SessionJanitor struct {
	sessions service.SessionService
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionJanitor(sessions service.SessionService, interval time.Duration, logger *logger.Logger) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run starts the cleanup loop in its own goroutine and returns immediately.
// The loop runs for the lifetime of the process.
func (j *SessionJanitor) Run() {
	go j.loop()
}

func (j *SessionJanitor) loop() {
	log := j.logger.GetChildLogger()
	ctx := log.WithContext(context.Background())

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	log.Info().Dur("interval", j.interval).Msg("session janitor started")

	for range ticker.C {
		j.sweep(ctx)
	}
}

func (j *SessionJanitor) sweep(ctx context.Context) {
	log := logger.FromContext(ctx)

	removed, err := j.sessions.Cleanup(ctx)
	if err != nil {
		log.Err(err).Msg("session sweep failed")
		return
	}

	if removed > 0 {
		log.Info().Int64("removed", removed).Msg("expired sessions removed")
	}
}
