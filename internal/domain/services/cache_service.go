package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lindenb1/impress/internal/domain/entities"
)

var ErrCacheMiss = errors.New("cache miss")

type CacheService interface {
	GetAccessPage(ctx context.Context, key string) (entities.AccessPage, error)
	SetAccessPage(ctx context.Context, key string, page entities.AccessPage) error
	AccessPageKey(docID, cursor string, pageSize int) string
}

type RedisClient interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value any, duration time.Duration) error
	Del(ctx context.Context, keys ...string) error
}

type redisCacheService struct {
	client        RedisClient
	cacheDuration time.Duration
}

func NewRedisCacheService(client RedisClient, cacheDuration time.Duration) CacheService {
	return &redisCacheService{
		client:        client,
		cacheDuration: cacheDuration,
	}
}

func (s *redisCacheService) GetAccessPage(ctx context.Context, key string) (entities.AccessPage, error) {
	data, err := s.client.Get(ctx, key)
	if err != nil {
		return entities.AccessPage{}, err
	}

	var page entities.AccessPage
	if err := json.Unmarshal([]byte(data), &page); err != nil {
		return entities.AccessPage{}, err
	}

	return page, nil
}

func (s *redisCacheService) SetAccessPage(ctx context.Context, key string, page entities.AccessPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, key, data, s.cacheDuration)
}

func (s *redisCacheService) AccessPageKey(docID, cursor string, pageSize int) string {
	return fmt.Sprintf("accesses:%s:cursor=%s:size=%d", docID, cursor, pageSize)
}
