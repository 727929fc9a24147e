package cli

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	apperrors "github.com/koopamoopa/Decoding-Unicode/pkg/errors"
	"github.com/koopamoopa/Decoding-Unicode/pkg/fetch"
	"github.com/koopamoopa/Decoding-Unicode/pkg/httputil"
)

const (
	configFileName = "config.toml"

	// envTimeout overrides the configured request timeout.
	envTimeout = "DECODE_TIMEOUT"

	defaultSeparatorWidth = 30
)

// Config holds user settings read from config.toml.
type Config struct {
	Timeout        time.Duration `toml:"timeout"`
	Attempts       int           `toml:"attempts"`
	RetryDelay     time.Duration `toml:"retry_delay"`
	UserAgent      string        `toml:"user_agent,omitempty"`
	MaxBodyBytes   int64         `toml:"max_body_bytes"`
	SeparatorWidth int           `toml:"separator_width"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Timeout:        fetch.DefaultTimeout,
		Attempts:       httputil.DefaultAttempts,
		RetryDelay:     httputil.DefaultDelay,
		MaxBodyBytes:   fetch.DefaultMaxBodyBytes,
		SeparatorWidth: defaultSeparatorWidth,
	}
}

// LoadConfig reads the config file at path over the defaults.
// An empty path means the default location, where a missing file is not an
// error. An explicitly named file must exist.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		dir, err := configDir()
		if err != nil {
			return cfg, cfg.applyEnv()
		}
		path = filepath.Join(dir, configFileName)
	}

	md, err := toml.DecodeFile(path, &cfg)
	switch {
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		cfg = DefaultConfig()
	case err != nil:
		return cfg, apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "read %s", path)
	default:
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return cfg, apperrors.New(apperrors.ErrCodeInvalidConfig, "%s: unknown keys: %s", path, strings.Join(keys, ", "))
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv() error {
	v := os.Getenv(envTimeout)
	if v == "" {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInvalidConfig, err, "%s", envTimeout)
	}
	c.Timeout = d
	return nil
}

// Validate rejects settings that cannot be used.
func (c Config) Validate() error {
	switch {
	case c.Timeout <= 0:
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "timeout must be positive")
	case c.Attempts < 1:
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "attempts must be at least 1")
	case c.RetryDelay < 0:
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "retry_delay cannot be negative")
	case c.MaxBodyBytes <= 0:
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "max_body_bytes must be positive")
	case c.SeparatorWidth < 0:
		return apperrors.New(apperrors.ErrCodeInvalidConfig, "separator_width cannot be negative")
	}
	return nil
}

// fetchOptions converts the config into fetch client options.
func (c Config) fetchOptions(logger *log.Logger) fetch.Options {
	return fetch.Options{
		Timeout:      c.Timeout,
		Attempts:     c.Attempts,
		RetryDelay:   c.RetryDelay,
		UserAgent:    c.UserAgent,
		MaxBodyBytes: c.MaxBodyBytes,
		Logger:       logger,
	}
}
