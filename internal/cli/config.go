package cli

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/histoscene/pkg/cache"
	"github.com/matzehuels/histoscene/pkg/errors"
	"github.com/matzehuels/histoscene/pkg/pipeline"
	"github.com/matzehuels/histoscene/pkg/render/histogram"
	"github.com/matzehuels/histoscene/pkg/render/histogram/geometry"
	"github.com/matzehuels/histoscene/pkg/server"
)

const configFileName = "config.toml"

// Config is the on-disk configuration. Flags override it; it overrides the
// built-in defaults.
//
//	[render]
//	formats = ["svg", "png"]
//	ticks = "linear"
//	marks = true
//	insets = { left = 60, right = 15, top = 45, bottom = 25 }
//
//	[cache]
//	backend = "redis"
//	redis = { url = "redis://localhost:6379/0" }
//
//	[server]
//	addr = ":8080"
type Config struct {
	Render pipeline.Options `toml:"render"`
	Cache  cache.Config     `toml:"cache"`
	Server ServerConfig     `toml:"server"`
}

// ServerConfig configures the serve command.
type ServerConfig struct {
	Addr         string `toml:"addr"`
	MaxBodyBytes int64  `toml:"max_body_bytes"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Render: pipeline.Options{
			Config:  histogram.DefaultConfig(),
			Formats: []string{pipeline.FormatSVG},
		},
		Cache:  cache.Config{Backend: cache.BackendFile},
		Server: ServerConfig{Addr: ":8080", MaxBodyBytes: server.DefaultMaxBodyBytes},
	}
}

// defaultConfigPath returns $XDG_CONFIG_HOME/histoscene/config.toml.
func defaultConfigPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}

func defaultConfigHint() string {
	if p, err := defaultConfigPath(); err == nil {
		return p
	}
	return "$XDG_CONFIG_HOME/" + appName + "/" + configFileName
}

// LoadConfig reads the config at path over the defaults. An empty path
// selects the default location, which may be absent; an explicit path must
// exist. Unknown keys are rejected so that typos do not pass silently.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		p, err := defaultConfigPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		if os.IsNotExist(err) {
			return cfg, errors.Wrap(errors.ErrCodeNotFound, err, "read config")
		}
		return cfg, errors.Wrap(errors.ErrCodeInternal, err, "read config")
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return cfg, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks the values the commands would otherwise reject late.
func (c Config) Validate() error {
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return err
	}
	if _, err := geometry.ParseTickMode(string(c.Render.Ticks)); err != nil {
		return err
	}
	if c.Cache.Backend != "" {
		if err := errors.ValidateChoice("cache backend", c.Cache.Backend,
			cache.BackendNone, cache.BackendFile, cache.BackendRedis, cache.BackendMongo); err != nil {
			return err
		}
	}
	if c.Server.MaxBodyBytes < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "server.max_body_bytes must not be negative")
	}
	return nil
}
