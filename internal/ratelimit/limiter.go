package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/coffeestore/internal/config"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

const keyWrite = "coffeestore:ratelimit:%s:%s"

// Limiter applies a per-caller token bucket to write endpoints. A nil
// Limiter allows everything.
type Limiter struct {
	enabled bool
	bucket  *TokenBucket
	rate    float64
	burst   int
}

// NewLimiter returns nil when rate limiting is disabled.
func NewLimiter(lc fx.Lifecycle, cfg config.Config, log *zap.Logger) (*Limiter, error) {
	limitCfg := cfg.RateLimit
	if !limitCfg.Enabled {
		return nil, nil
	}

	addr := strings.TrimSpace(limitCfg.RedisAddr)
	if addr == "" {
		return nil, errors.New("rate limit redis addr is required")
	}
	if limitCfg.Rate <= 0 || limitCfg.Burst <= 0 {
		return nil, errors.New("rate limit rate and burst must be positive")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(limitCfg.RedisPassword),
		DB:       limitCfg.RedisDB,
	})

	if lc != nil {
		lc.Append(fx.Hook{
			OnStart: func(ctx context.Context) error {
				if err := client.Ping(ctx).Err(); err != nil {
					log.Warn("rate limit redis unreachable", zap.String("addr", addr), zap.Error(err))
				}
				return nil
			},
			OnStop: func(context.Context) error {
				return client.Close()
			},
		})
	}

	log.Info("rate limiting enabled",
		zap.String("redis_addr", addr),
		zap.Float64("rate", limitCfg.Rate),
		zap.Int("burst", limitCfg.Burst),
	)

	return NewWithBucket(NewTokenBucket(client), limitCfg.Rate, limitCfg.Burst), nil
}

func NewWithBucket(bucket *TokenBucket, rate float64, burst int) *Limiter {
	return &Limiter{
		enabled: bucket != nil,
		bucket:  bucket,
		rate:    rate,
		burst:   burst,
	}
}

func (l *Limiter) Enabled() bool {
	return l != nil && l.enabled
}

// Allow consumes a token for caller on endpoint.
func (l *Limiter) Allow(ctx context.Context, caller, endpoint string) (*RateLimitResult, error) {
	if !l.Enabled() {
		return &RateLimitResult{Allowed: true}, nil
	}
	key := fmt.Sprintf(keyWrite, strings.TrimSpace(caller), strings.TrimSpace(endpoint))
	return l.bucket.Allow(ctx, key, l.rate, l.burst)
}
