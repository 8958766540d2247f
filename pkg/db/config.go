package db

import (
	"time"

	"github.com/smallbiznis/coffeestore/internal/config"
)

// PoolConfig holds connection pool limits. Durations are in seconds.
type PoolConfig struct {
	MaxIdleConn     int
	MaxOpenConn     int
	ConnMaxLifetime int
	ConnMaxIdleTime int
}

func PoolConfigFrom(cfg config.Config) PoolConfig {
	return PoolConfig{
		MaxIdleConn:     cfg.DBMaxIdleConn,
		MaxOpenConn:     cfg.DBMaxOpenConn,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
	}
}

func (p PoolConfig) lifetime() time.Duration {
	return time.Duration(p.ConnMaxLifetime) * time.Second
}

func (p PoolConfig) idleTime() time.Duration {
	return time.Duration(p.ConnMaxIdleTime) * time.Second
}
