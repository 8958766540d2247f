package ratelimit

import (
	"context"
	"testing"
	"time"

	redis "github.com/redis/go-redis/v9"
	"github.com/smallbiznis/coffeestore/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestBucketTTL(t *testing.T) {
	assert.Equal(t, 4*time.Second, bucketTTL(10, 20))
	assert.Equal(t, time.Second, bucketTTL(1000, 1))
	assert.Equal(t, time.Second, bucketTTL(0, 5))
}

func TestParseResultDenied(t *testing.T) {
	res, err := parseResult([]interface{}{int64(0), "0.5", int64(1700000000000)}, 2, 10)
	require.NoError(t, err)

	assert.False(t, res.Allowed)
	assert.Equal(t, 10, res.Limit)
	assert.Equal(t, 0, res.Remaining)
	assert.Equal(t, 250*time.Millisecond, res.RetryAfter)
	assert.True(t, res.ResetTime.Equal(time.UnixMilli(1700000000250)))
}

func TestParseResultAllowed(t *testing.T) {
	res, err := parseResult([]interface{}{int64(1), "7.9", int64(1)}, 5, 10)
	require.NoError(t, err)

	assert.True(t, res.Allowed)
	assert.Equal(t, 7, res.Remaining)
	assert.Zero(t, res.RetryAfter)

	_, err = parseResult([]interface{}{int64(1)}, 5, 10)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestDisabledLimiterAllowsEverything(t *testing.T) {
	limiter, err := NewLimiter(nil, config.Config{}, zap.NewNop())
	require.NoError(t, err)
	assert.Nil(t, limiter)
	assert.False(t, limiter.Enabled())

	res, err := limiter.Allow(context.Background(), "127.0.0.1", "/api/coffees")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
}

func TestNewLimiterValidatesConfig(t *testing.T) {
	_, err := NewLimiter(nil, config.Config{RateLimit: config.RateLimitConfig{Enabled: true}}, zap.NewNop())
	assert.Error(t, err)

	_, err = NewLimiter(nil, config.Config{RateLimit: config.RateLimitConfig{Enabled: true, RedisAddr: "localhost:6379"}}, zap.NewNop())
	assert.Error(t, err)
}

func TestTokenBucketRequiresClient(t *testing.T) {
	var bucket *TokenBucket
	_, err := bucket.Allow(context.Background(), "k", 1, 1)
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Nil(t, NewTokenBucket(nil))
}

type fakeScripter struct {
	redis.Scripter
	reply []interface{}
	keys  []string
}

func (f *fakeScripter) EvalSha(ctx context.Context, sha1 string, keys []string, args ...interface{}) *redis.Cmd {
	f.keys = keys
	return redis.NewCmdResult(f.reply, nil)
}

func (f *fakeScripter) Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd {
	return f.EvalSha(ctx, "", keys, args...)
}

func TestLimiterAllowUsesCallerAndEndpointKey(t *testing.T) {
	scripter := &fakeScripter{reply: []interface{}{int64(1), "3", int64(1700000000000)}}
	limiter := NewWithBucket(NewTokenBucket(scripter), 1, 5)
	require.True(t, limiter.Enabled())

	res, err := limiter.Allow(context.Background(), "10.1.1.1", "POST /api/coffees")
	require.NoError(t, err)
	assert.True(t, res.Allowed)
	assert.Equal(t, 3, res.Remaining)
	assert.Equal(t, []string{"coffeestore:ratelimit:10.1.1.1:POST /api/coffees"}, scripter.keys)
}
