package logger

import (
	"strings"

	"github.com/smallbiznis/coffeestore/internal/config"
	"go.uber.org/zap"
)

// WatchLevel applies the runtime log level from the config file, now and
// on every reload.
func WatchLevel(holder *config.RuntimeConfigHolder, level zap.AtomicLevel, log *zap.Logger) {
	if holder == nil {
		return
	}
	if holder.Loaded() {
		ApplyLevel(level, holder.Get().LogLevel, log)
	}
	holder.OnChange(func(cfg config.RuntimeConfig) {
		ApplyLevel(level, cfg.LogLevel, log)
	})
}

func ApplyLevel(level zap.AtomicLevel, value string, log *zap.Logger) {
	value = strings.TrimSpace(value)
	if value == "" {
		return
	}
	previous := level.Level()
	if err := level.UnmarshalText([]byte(value)); err != nil {
		if log != nil {
			log.Warn("ignoring invalid runtime log level", zap.String("level", value), zap.Error(err))
		}
		return
	}
	if log != nil && previous != level.Level() {
		log.Info("log level changed",
			zap.String("from", previous.String()),
			zap.String("to", level.Level().String()),
		)
	}
}
