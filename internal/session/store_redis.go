package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/report-catalog/internal/logger"
	"github.com/MKhiriev/report-catalog/models"
)

const defaultPingTimeout = 5 * time.Second

// ConnectRedis parses a redis:// URL, builds a client and validates
// connectivity with a ping.
func ConnectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis url: %w", err)
	}

	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, defaultPingTimeout)
	defer cancel()

	if err = client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return client, nil
}

// RedisStore keeps each session as a JSON value under <prefix><id>. Redis
// expires the key at the session's expiry.
type RedisStore struct {
	client *redis.Client
	prefix string
	logger *logger.Logger
	now    func() time.Time
}

// NewRedisStore wraps client. Keys are namespaced with prefix.
func NewRedisStore(client *redis.Client, prefix string, log *logger.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: prefix,
		logger: log,
		now:    time.Now,
	}
}

func (s *RedisStore) Get(ctx context.Context, id string) (models.Session, error) {
	data, err := s.client.Get(ctx, s.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return models.Session{}, ErrSessionNotFound
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("redis get session: %w", err)
	}

	var session models.Session
	if err = json.Unmarshal(data, &session); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*RedisStore.Get").Msg("dropping undecodable session")
		_ = s.client.Del(ctx, s.key(id)).Err()
		return models.Session{}, ErrSessionNotFound
	}

	if session.IsExpired(s.now()) {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *RedisStore) Save(ctx context.Context, session models.Session) error {
	if session.ID == "" {
		return ErrEmptySessionID
	}

	ttl := session.ExpiresAt.Sub(s.now())
	if ttl <= 0 {
		return ErrSessionExpired
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	if err = s.client.Set(ctx, s.key(session.ID), data, ttl).Err(); err != nil {
		return fmt.Errorf("redis set session: %w", err)
	}

	return nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, s.key(id)).Err(); err != nil {
		return fmt.Errorf("redis delete session: %w", err)
	}
	return nil
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

func (s *RedisStore) key(id string) string {
	return s.prefix + id
}
