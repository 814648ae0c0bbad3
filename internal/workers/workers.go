package workers

import (
	"context"

	"github.com/MKhiriev/report-catalog/internal/config"
	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/session"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the background workers needed for the given session
// store. Only the in-memory store needs sweeping; Redis expires keys itself.
func NewWorkers(cfg config.Workers, store session.Store, logger *logger.Logger) *Workers {
	ws := &Workers{}

	if sweeper, ok := store.(Sweeper); ok && cfg.SessionSweepInterval > 0 {
		ws.workers = append(ws.workers, NewSessionSweeper(sweeper, cfg.SessionSweepInterval, logger))
	}

	logger.Info().Int("count", len(ws.workers)).Msg("workers created")
	return ws
}

// Run starts every worker in order. Workers stop when ctx is cancelled.
func (w *Workers) Run(ctx context.Context) {
	for _, worker := range w.workers {
		worker.Run(ctx)
	}
}
