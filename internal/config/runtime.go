package config

import (
	"errors"
	"log"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// RuntimeConfig holds settings that can change without a restart.
type RuntimeConfig struct {
	LogLevel string `mapstructure:"logLevel"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{LogLevel: "info"}
}

type RuntimeConfigHolder struct {
	current atomic.Value // holds RuntimeConfig
	loaded  bool

	mu        sync.Mutex
	listeners []func(RuntimeConfig)
}

func NewRuntimeConfigHolder(cfg Config) (*RuntimeConfigHolder, error) {
	v := viper.New()

	name := strings.TrimSpace(cfg.RuntimeConfigName)
	if name == "" {
		name = "runtime"
	}
	v.SetConfigName(name)
	v.SetConfigType("yml")
	v.AddConfigPath("/etc/coffeestore")
	v.AddConfigPath(".")

	v.SetEnvPrefix("COFFEESTORE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	defaults := DefaultRuntimeConfig()
	v.SetDefault("runtime.logLevel", defaults.LogLevel)

	found := true
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		found = false
	}

	runtimeCfg, err := decodeRuntimeConfig(v)
	if err != nil {
		return nil, err
	}

	holder := &RuntimeConfigHolder{loaded: found}
	holder.current.Store(runtimeCfg)

	if !found {
		return holder, nil
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		updated, err := decodeRuntimeConfig(v)
		if err != nil {
			log.Printf("[runtime-config] invalid config ignored: %v", err)
			return
		}
		holder.set(updated)
		log.Printf("[runtime-config] reloaded from %s", e.Name)
	})

	return holder, nil
}

// NewStaticRuntimeConfigHolder builds a holder that never reloads.
func NewStaticRuntimeConfigHolder(cfg RuntimeConfig) *RuntimeConfigHolder {
	holder := &RuntimeConfigHolder{loaded: true}
	holder.current.Store(cfg)
	return holder
}

// Loaded reports whether the values came from a config file rather than defaults.
func (h *RuntimeConfigHolder) Loaded() bool {
	return h.loaded
}

func (h *RuntimeConfigHolder) Get() RuntimeConfig {
	return h.current.Load().(RuntimeConfig)
}

// OnChange registers fn to run after every successful reload.
func (h *RuntimeConfigHolder) OnChange(fn func(RuntimeConfig)) {
	if fn == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.listeners = append(h.listeners, fn)
}

func (h *RuntimeConfigHolder) set(cfg RuntimeConfig) {
	h.current.Store(cfg)

	h.mu.Lock()
	listeners := append([]func(RuntimeConfig){}, h.listeners...)
	h.mu.Unlock()

	for _, fn := range listeners {
		fn(cfg)
	}
}

func decodeRuntimeConfig(v *viper.Viper) (RuntimeConfig, error) {
	var cfg RuntimeConfig
	if err := v.UnmarshalKey("runtime", &cfg); err != nil {
		return RuntimeConfig{}, err
	}
	if err := validateRuntimeConfig(cfg); err != nil {
		return RuntimeConfig{}, err
	}
	return cfg, nil
}

func validateRuntimeConfig(cfg RuntimeConfig) error {
	level := strings.TrimSpace(cfg.LogLevel)
	if level == "" {
		return errors.New("runtime.logLevel cannot be empty")
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return errors.New("runtime.logLevel is not a valid level")
	}
	return nil
}
