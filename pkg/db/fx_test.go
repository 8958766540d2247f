package db

import (
	"testing"

	"github.com/smallbiznis/coffeestore/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
)

func TestNewClosesPoolOnStop(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := config.Config{
		DBType:        TypeSQLite,
		DBName:        "coffeestore_test",
		DBPath:        "file::memory:",
		DBMaxOpenConn: 1,
	}

	conn, err := New(lc, cfg, zap.NewNop())
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)

	lc.RequireStart()
	require.NoError(t, sqlDB.Ping())
	lc.RequireStop()

	assert.Error(t, sqlDB.Ping())
}
