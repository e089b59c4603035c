package mocks

import (
	"context"
	"errors"

	"dronline/shared/cache"
)

var errCacheMiss = errors.New("cache miss")

type redisCacheImpl struct {
}

// Save implements cache.RedisCache.
func (c *redisCacheImpl) Save(_ context.Context, _ string, _ any, _ int) error {
	return nil
}

// Get implements cache.RedisCache. Always misses so tests exercise the
// underlying repository path.
func (c *redisCacheImpl) Get(_ context.Context, _ string, _ any) error {
	return errCacheMiss
}

// Delete implements cache.RedisCache.
func (c *redisCacheImpl) Delete(_ context.Context, _ string) error {
	return nil
}

// Clear implements cache.RedisCache.
func (c *redisCacheImpl) Clear(_ context.Context, _ string) error {
	return nil
}

func NewRedisCache() cache.RedisCache {
	return &redisCacheImpl{}
}
