package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	readinessKeyPrefix = "readiness-probe:"
	readinessValue     = "ready"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthService struct {
	db    Pinger
	cache RedisClient
}

func NewHealthService(db Pinger, cache RedisClient) *HealthService {
	return &HealthService{db: db, cache: cache}
}

// Ready checks the database connection and a cache write/read round trip.
func (s *HealthService) Ready(ctx context.Context) error {
	if err := s.db.Ping(ctx); err != nil {
		return fmt.Errorf("database check failed: %w", err)
	}

	// Each check owns its key.
	key := readinessKeyPrefix + uuid.NewString()
	if err := s.cache.Set(ctx, key, readinessValue, 5*time.Second); err != nil {
		return fmt.Errorf("cache check failed: %w", err)
	}
	defer func() { _ = s.cache.Del(context.WithoutCancel(ctx), key) }()

	got, err := s.cache.Get(ctx, key)
	if err != nil {
		return fmt.Errorf("cache check failed: %w", err)
	}
	if got != readinessValue {
		return fmt.Errorf("cache check failed: value mismatch")
	}

	return nil
}
