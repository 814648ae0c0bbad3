package session

import (
	"context"

	"github.com/MKhiriev/report-catalog/internal/config"
	"github.com/MKhiriev/report-catalog/internal/logger"
)

// NewStore returns a [RedisStore] when cfg.RedisURL is set and a
// [MemoryStore] otherwise.
func NewStore(ctx context.Context, cfg config.Session, log *logger.Logger) (Store, error) {
	if cfg.RedisURL == "" {
		log.Info().Str("func", "session.NewStore").Msg("using in-memory session store")
		return NewMemoryStore(), nil
	}

	client, err := ConnectRedis(ctx, cfg.RedisURL)
	if err != nil {
		log.Err(err).Str("func", "session.NewStore").Msg("error connecting to redis")
		return nil, err
	}
	log.Info().Str("func", "session.NewStore").Msg("using redis session store")

	return NewRedisStore(client, cfg.KeyPrefix, log), nil
}
