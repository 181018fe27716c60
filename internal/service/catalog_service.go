package service

import (
	"context"
	"fmt"
	"time"

	"movievibe/lobbyhub/internal/repository"
)

// CatalogClient looks up catalog metadata for an item. The implementation
// lives outside the core (TMDB-backed in production); the core only
// consumes titles for match display.
type CatalogClient interface {
	ItemTitle(ctx context.Context, itemID int64) (string, error)
}

type CatalogService interface {
	ItemTitle(ctx context.Context, itemID int64) (string, error)
}

type catalogService struct {
	client CatalogClient
	cache  repository.Cache
	ttl    time.Duration
}

func NewCatalogService(client CatalogClient, cache repository.Cache, ttl time.Duration) CatalogService {
	return &catalogService{
		client: client,
		cache:  cache,
		ttl:    ttl,
	}
}

// ItemTitle serves from the cache when possible and falls back to the
// catalog client. A failed cache write is ignored; the title is returned
// regardless.
func (s *catalogService) ItemTitle(ctx context.Context, itemID int64) (string, error) {
	key := titleCacheKey(itemID)

	if cached, err := s.cache.Get(ctx, key); err == nil && len(cached) > 0 {
		return string(cached), nil
	}

	title, err := s.client.ItemTitle(ctx, itemID)
	if err != nil {
		return "", fmt.Errorf("catalog lookup item %d: %w", itemID, err)
	}
	if title != "" {
		_ = s.cache.Set(ctx, key, []byte(title), s.ttl)
	}
	return title, nil
}

func titleCacheKey(itemID int64) string {
	return fmt.Sprintf("catalog:title:%d", itemID)
}

var _ CatalogService = (*catalogService)(nil)
