package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/internal/metrics"
)

// SessionSweeper periodically drops expired sessions from a [Sweeper].
type SessionSweeper struct {
	sweeper  Sweeper
	interval time.Duration
	logger   *logger.Logger
	now      func() time.Time

	done chan struct{}
}

func NewSessionSweeper(sweeper Sweeper, interval time.Duration, logger *logger.Logger) *SessionSweeper {
	return &SessionSweeper{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Run starts the sweep loop in its own goroutine.
func (s *SessionSweeper) Run(ctx context.Context) {
	go s.loop(ctx)
}

// Done is closed once the loop has stopped.
func (s *SessionSweeper) Done() <-chan struct{} {
	return s.done
}

func (s *SessionSweeper) loop(ctx context.Context) {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Str("func", "*SessionSweeper.loop").Msg("session sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *SessionSweeper) sweep() int {
	removed := s.sweeper.Sweep(s.now())
	if removed > 0 {
		metrics.SessionsSweptTotal.Add(float64(removed))
		s.logger.Debug().Str("func", "*SessionSweeper.sweep").Int("removed", removed).Msg("expired sessions removed")
	}
	return removed
}
