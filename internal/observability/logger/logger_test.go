package logger

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/smallbiznis/coffeestore/internal/auditcontext"
	"github.com/smallbiznis/coffeestore/internal/config"
	obscontext "github.com/smallbiznis/coffeestore/internal/observability/context"
	"github.com/smallbiznis/coffeestore/pkg/telemetry/correlation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLevel(t *testing.T) {
	level, err := NewLevel(Config{Level: "warn"})
	require.NoError(t, err)
	assert.Equal(t, zapcore.WarnLevel, level.Level())

	level, err = NewLevel(Config{})
	require.NoError(t, err)
	assert.Equal(t, zapcore.InfoLevel, level.Level())

	_, err = NewLevel(Config{Level: "chatty"})
	assert.Error(t, err)
}

func TestWatchLevelAppliesReloads(t *testing.T) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	holder := config.NewStaticRuntimeConfigHolder(config.RuntimeConfig{LogLevel: "error"})

	WatchLevel(holder, level, zap.NewNop())
	assert.Equal(t, zapcore.ErrorLevel, level.Level())

	ApplyLevel(level, "not-a-level", zap.NewNop())
	assert.Equal(t, zapcore.ErrorLevel, level.Level())

	ApplyLevel(level, "debug", zap.NewNop())
	assert.Equal(t, zapcore.DebugLevel, level.Level())
}

func TestWithContextAddsRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := obscontext.WithRequestID(context.Background(), "req-42")

	WithContext(ctx, zap.New(core)).Info("served")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "req-42", entries[0].ContextMap()["request_id"])
}

func TestGinMiddlewareSeedsRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var seen context.Context
	router := gin.New()
	router.Use(GinMiddleware(MiddlewareConfig{}))
	router.GET("/ping", func(c *gin.Context) {
		seen = c.Request.Context()
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(RequestIDHeader, "req-abc")
	req.Header.Set(correlation.HeaderName, "corr-1")
	req.Header.Set("User-Agent", "barista/1.0")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.Equal(t, "req-abc", resp.Header().Get(RequestIDHeader))
	assert.Equal(t, "corr-1", resp.Header().Get(correlation.HeaderName))
	require.NotNil(t, seen)
	assert.Equal(t, "req-abc", obscontext.RequestIDFromContext(seen))
	assert.Equal(t, "req-abc", auditcontext.RequestIDFromContext(seen))
	assert.Equal(t, "barista/1.0", auditcontext.UserAgentFromContext(seen))
}

func TestGinMiddlewareGeneratesRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(GinMiddleware(MiddlewareConfig{}))
	router.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.NotEmpty(t, resp.Header().Get(RequestIDHeader))
	assert.NotEmpty(t, resp.Header().Get(correlation.HeaderName))
}

func TestSQLClassification(t *testing.T) {
	assert.Equal(t, "SELECT", operationFromSQL(`SELECT * FROM "coffee" WHERE id = $1`))
	assert.Equal(t, "coffee", tableFromSQL(`SELECT * FROM "coffee" WHERE id = $1`))
	assert.Equal(t, "INSERT", operationFromSQL("INSERT INTO `client` (`id`) VALUES (?)"))
	assert.Equal(t, "client", tableFromSQL("INSERT INTO `client` (`id`) VALUES (?)"))
	assert.Equal(t, "address", tableFromSQL(`UPDATE address SET street = ?`))
	assert.Equal(t, "UNKNOWN", operationFromSQL(""))
	assert.Equal(t, "", tableFromSQL("BEGIN"))
}
