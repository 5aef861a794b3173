package server

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/pixelforge/qrcanvas/pkg/cache"
	qerrors "github.com/pixelforge/qrcanvas/pkg/errors"
)

// Cache backends selectable in the config file.
const (
	CacheBackendNone  = "none"
	CacheBackendFile  = "file"
	CacheBackendRedis = "redis"
)

// Config holds the server configuration, loaded from a TOML file.
type Config struct {
	// Addr is the listen address, e.g. ":8080".
	Addr string `toml:"addr"`

	// MaxModuleSize caps the module_size query parameter so a single
	// request cannot ask for an arbitrarily large image.
	MaxModuleSize int `toml:"max_module_size"`

	// ShutdownTimeout bounds graceful shutdown, e.g. "10s".
	ShutdownTimeout string `toml:"shutdown_timeout"`

	Cache CacheConfig `toml:"cache"`
}

// CacheConfig selects and configures the render cache backend.
type CacheConfig struct {
	// Backend is one of "none", "file", or "redis".
	Backend string `toml:"backend"`

	// Dir is the cache directory for the file backend. Defaults to
	// ~/.cache/qrcanvas.
	Dir string `toml:"dir"`

	// RedisAddr is the Redis address for the redis backend.
	RedisAddr string `toml:"redis_addr"`

	// TTL is how long cached renders live, e.g. "24h". Empty means no
	// expiration.
	TTL string `toml:"ttl"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Addr:            ":8080",
		MaxModuleSize:   64,
		ShutdownTimeout: "10s",
		Cache: CacheConfig{
			Backend: CacheBackendNone,
			TTL:     "24h",
		},
	}
}

// LoadConfig reads a TOML config file, layering it over the defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, cfg.validate()
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, qerrors.Wrap(qerrors.ErrCodeInvalidInput, err, "loading config %s", path)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	switch c.Cache.Backend {
	case CacheBackendNone, CacheBackendFile, CacheBackendRedis:
	default:
		return qerrors.New(qerrors.ErrCodeInvalidInput, "unknown cache backend %q (want none, file, or redis)", c.Cache.Backend)
	}
	if c.MaxModuleSize < 1 {
		return qerrors.New(qerrors.ErrCodeInvalidInput, "max_module_size must be positive")
	}
	if c.Cache.TTL != "" {
		if _, err := time.ParseDuration(c.Cache.TTL); err != nil {
			return qerrors.Wrap(qerrors.ErrCodeInvalidInput, err, "invalid cache ttl")
		}
	}
	if c.ShutdownTimeout != "" {
		if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
			return qerrors.Wrap(qerrors.ErrCodeInvalidInput, err, "invalid shutdown_timeout")
		}
	}
	return nil
}

// CacheTTL returns the parsed cache TTL. Zero means no expiration.
func (c Config) CacheTTL() time.Duration {
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil {
		return 0
	}
	return d
}

// shutdownTimeout returns the parsed graceful-shutdown bound.
func (c Config) shutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

// NewCache constructs the cache selected by the config. The returned cache
// is namespaced so backends shared with other tools do not collide.
func (c Config) NewCache(ctx context.Context) (cache.Cache, error) {
	switch c.Cache.Backend {
	case CacheBackendFile:
		dir := c.Cache.Dir
		if dir == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, err
			}
			dir = filepath.Join(home, ".cache", "qrcanvas")
		}
		inner, err := cache.NewFileCache(dir)
		if err != nil {
			return nil, err
		}
		return cache.Namespaced(inner, "qrcanvas:"), nil
	case CacheBackendRedis:
		inner, err := cache.NewRedisCache(ctx, c.Cache.RedisAddr)
		if err != nil {
			return nil, err
		}
		return cache.Namespaced(inner, "qrcanvas:"), nil
	default:
		return cache.NewNullCache(), nil
	}
}
