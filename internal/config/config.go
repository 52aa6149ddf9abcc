// Package config loads the vlookup configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/frzifus/macvendor/internal/logx"
	"github.com/frzifus/macvendor/pkg/cache"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

var (
	// ErrUnsupportedFormat is returned for files that are neither YAML nor JSON.
	ErrUnsupportedFormat = errors.New("config: unsupported format")
	// ErrInvalid is returned when a loaded value fails validation.
	ErrInvalid = errors.New("config: invalid value")
)

// Config is the complete configuration of the binaries.
type Config struct {
	Log     Log     `koanf:"log"`
	Sources Sources `koanf:"sources"`
	Cache   Cache   `koanf:"cache"`
	Lookup  Lookup  `koanf:"lookup"`
	Fetch   Fetch   `koanf:"fetch"`
	Output  Output  `koanf:"output"`
}

// Log configures logging.
type Log struct {
	Level string `koanf:"level"`
}

// Sources selects where vendor tables come from. Sources are consulted in
// the order: local files, cache tags, IEEE registries, custom URLs, the
// built-in table and finally the compiled-in registry.
type Sources struct {
	Local    []string `koanf:"local"`
	Cached   []string `koanf:"cached"`
	Large    bool     `koanf:"large"`
	Medium   bool     `koanf:"medium"`
	Small    bool     `koanf:"small"`
	Remote   []string `koanf:"remote"`
	Builtin  bool     `koanf:"builtin"`
	Registry bool     `koanf:"registry"`
}

// Cache configures the on-disk registry cache.
type Cache struct {
	Dir     string `koanf:"dir"`
	UserDir bool   `koanf:"user_dir"`
}

// Lookup configures the in-memory lookup cache. Size 0 disables it.
type Lookup struct {
	Size int           `koanf:"size"`
	TTL  time.Duration `koanf:"ttl"`
}

// Fetch configures downloads of remote registries.
type Fetch struct {
	Timeout  time.Duration `koanf:"timeout"`
	Attempts uint          `koanf:"attempts"`
	Delay    time.Duration `koanf:"delay"`
}

// Output configures table rendering.
type Output struct {
	TrimAddress int `koanf:"trim_address"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Log:    Log{Level: "warn"},
		Lookup: Lookup{Size: 1024},
		Fetch: Fetch{
			Timeout:  30 * time.Second,
			Attempts: 3,
			Delay:    time.Second,
		},
		Output: Output{TrimAddress: 40},
	}
}

// Load reads the file at path on top of Default. An empty path returns
// Default unchanged. The format follows the extension (.yaml, .yml, .json).
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	var parser koanf.Parser
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	if len(data) == 0 {
		return cfg, nil
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider(data), parser); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks value ranges.
func (c Config) Validate() error {
	if _, err := logx.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch {
	case c.Lookup.Size < 0:
		return fmt.Errorf("%w: lookup.size %d", ErrInvalid, c.Lookup.Size)
	case c.Lookup.TTL < 0:
		return fmt.Errorf("%w: lookup.ttl %s", ErrInvalid, c.Lookup.TTL)
	case c.Fetch.Timeout < 0:
		return fmt.Errorf("%w: fetch.timeout %s", ErrInvalid, c.Fetch.Timeout)
	case c.Output.TrimAddress < 0:
		return fmt.Errorf("%w: output.trim_address %d", ErrInvalid, c.Output.TrimAddress)
	}
	return nil
}

// HasSource reports whether any vendor source is selected.
func (s Sources) HasSource() bool {
	return len(s.Local) > 0 || len(s.Cached) > 0 || s.Large || s.Medium || s.Small ||
		len(s.Remote) > 0 || s.Builtin || s.Registry
}

// Open opens the configured registry cache. Dir takes precedence over
// UserDir and is created when missing.
func (c Cache) Open() (*cache.Cache, error) {
	var opts []cache.Option
	switch {
	case c.Dir != "":
		if err := os.MkdirAll(c.Dir, 0o755); err != nil {
			return nil, err
		}
		opts = append(opts, cache.WithPath(c.Dir))
	case c.UserDir:
		opts = append(opts, cache.WithUserDir())
	}
	return cache.New(opts...)
}
