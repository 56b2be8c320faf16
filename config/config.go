// Package config loads the settings shared by the TreeDB binaries.
package config

import (
	bplus "TreeDB/bplustree"
	"bytes"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Capacity     int    `yaml:"capacity"`      // max keys per node, even and >= 2
	CacheEntries int64  `yaml:"cache_entries"` // max entries held by the lookup cache
	LogLevel     string `yaml:"log_level"`
	Color        bool   `yaml:"color"` // colored DUMP output
}

// ValidationError names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func Default() *Config {
	return &Config{
		Capacity:     bplus.DefaultCapacity,
		CacheEntries: 1024,
		LogLevel:     "info",
		Color:        true,
	}
}

// Load reads a YAML file on top of the defaults. An empty path returns the
// defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := cfg.decode(data); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML from data on top of the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Capacity < bplus.MinCapacity || c.Capacity%2 != 0 {
		errs = append(errs, ValidationError{
			Field:   "capacity",
			Message: "must be an even number >= 2",
		})
	}
	if c.CacheEntries < 1 {
		errs = append(errs, ValidationError{
			Field:   "cache_entries",
			Message: "must be positive",
		})
	}
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, ValidationError{
			Field:   "log_level",
			Message: err.Error(),
		})
	}
	if len(errs) == 0 {
		return nil
	}
	err := errors.Wrap(errs[0], "invalid config")
	for _, e := range errs[1:] {
		err = errors.WithSecondaryError(err, e)
	}
	return err
}

// NewLogger builds a console logger writing to stderr at the configured level.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, errors.Wrapf(err, "log level %q", c.LogLevel)
	}
	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.Encoding = "console"
	zc.OutputPaths = []string{"stderr"}
	zc.DisableStacktrace = true
	return zc.Build()
}

// OpenTree builds an empty tree with the configured capacity behind a lookup
// cache of CacheEntries entries.
func (c *Config) OpenTree(logger *zap.Logger) (*bplus.CachedTree, error) {
	tree, err := bplus.NewBPlusTree(c.Capacity, bplus.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	return bplus.NewCachedTree(tree, c.CacheEntries)
}
