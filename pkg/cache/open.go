package cache

import (
	"context"

	"github.com/matzehuels/histoscene/pkg/errors"
)

// Backend names accepted by Open.
const (
	BackendNone  = "none"
	BackendFile  = "file"
	BackendRedis = "redis"
	BackendMongo = "mongo"
)

// Config selects and configures a backend.
type Config struct {
	Backend string      `toml:"backend"`
	Dir     string      `toml:"dir"`
	Redis   RedisConfig `toml:"redis"`
	Mongo   MongoConfig `toml:"mongo"`
}

// Open builds the configured backend. An empty backend means none.
func Open(ctx context.Context, cfg Config) (Cache, error) {
	switch cfg.Backend {
	case "", BackendNone:
		return NewNullCache(), nil
	case BackendFile:
		if cfg.Dir == "" {
			return nil, errors.New(errors.ErrCodeInvalidInput, "file cache needs a directory")
		}
		return checked(NewFileCache(cfg.Dir))
	case BackendRedis:
		return checked(NewRedisCache(ctx, cfg.Redis))
	case BackendMongo:
		return checked(NewMongoCache(ctx, cfg.Mongo))
	}
	return nil, errors.ValidateChoice("cache backend", cfg.Backend, BackendNone, BackendFile, BackendRedis, BackendMongo)
}

// checked keeps a failed constructor from yielding a non-nil interface
// holding a nil pointer.
func checked[C Cache](c C, err error) (Cache, error) {
	if err != nil {
		return nil, err
	}
	return c, nil
}
