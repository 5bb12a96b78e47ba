package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/internal/domain/portfolio"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	summaryCacheKey       = "portfolio:summary"
	activeProfileCacheKey = "portfolio:profile:active"
	generationCacheKey    = "portfolio:generation"
)

func NewRedisClient(ctx context.Context, cfg config.Config, log logger.Logger) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("can not connect Redis: %w", err)
	}

	log.Info("Connect Redis successfully.")
	return rdb, nil
}

type redisPortfolioCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisPortfolioCache(rdb *redis.Client, ttl time.Duration) portfolio.Cache {
	return &redisPortfolioCache{rdb: rdb, ttl: ttl}
}

func (c *redisPortfolioCache) GetSummary(ctx context.Context) (*portfolio.Summary, error) {
	var s portfolio.Summary
	found, err := c.get(ctx, summaryCacheKey, &s)
	if err != nil || !found {
		return nil, err
	}
	return &s, nil
}

func (c *redisPortfolioCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, generationCacheKey).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, apperror.NewUnavailable("failed to read cache generation", err)
	}
	return gen, nil
}

func (c *redisPortfolioCache) SetSummary(ctx context.Context, gen int64, s *portfolio.Summary) error {
	return c.set(ctx, gen, summaryCacheKey, s)
}

func (c *redisPortfolioCache) GetActiveProfile(ctx context.Context) (*profile.Profile, error) {
	var p profile.Profile
	found, err := c.get(ctx, activeProfileCacheKey, &p)
	if err != nil || !found {
		return nil, err
	}
	return &p, nil
}

func (c *redisPortfolioCache) SetActiveProfile(ctx context.Context, gen int64, p *profile.Profile) error {
	return c.set(ctx, gen, activeProfileCacheKey, p)
}

func (c *redisPortfolioCache) Invalidate(ctx context.Context) error {
	_, err := c.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationCacheKey)
		pipe.Del(ctx, summaryCacheKey, activeProfileCacheKey)
		return nil
	})
	if err != nil {
		return apperror.NewUnavailable("failed to invalidate portfolio cache", err)
	}
	return nil
}

func (c *redisPortfolioCache) Ping(ctx context.Context) error {
	return c.rdb.Ping(ctx).Err()
}

func (c *redisPortfolioCache) get(ctx context.Context, key string, dst any) (bool, error) {
	val, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, apperror.NewUnavailable("failed to read "+key+" from cache", err)
	}
	if err := json.Unmarshal(val, dst); err != nil {
		// a corrupt entry is treated as a miss and overwritten on the next set
		return false, nil
	}
	return true, nil
}

// set writes key only while the generation still equals gen.
func (c *redisPortfolioCache) set(ctx context.Context, gen int64, key string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return apperror.NewInternal("failed to marshal "+key, err)
	}

	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, generationCacheKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, payload, c.ttl)
			return nil
		})
		return err
	}, generationCacheKey)
	switch {
	case errors.Is(err, redis.TxFailedErr):
		// invalidated while we were writing
		return nil
	case err != nil:
		return apperror.NewUnavailable("failed to write "+key+" to cache", err)
	}
	return nil
}
