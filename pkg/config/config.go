// Package config loads seatplan settings from a TOML file, a .env file and
// the environment.
//
// # Sources
//
// Settings are layered, later sources winning:
//
//  1. Built-in defaults ([Default])
//  2. The TOML file at --config, or $XDG_CONFIG_HOME/seatplan/config.toml
//  3. A .env file in the working directory (never overrides real env vars)
//  4. SEATPLAN_ADDR, SEATPLAN_REDIS_URL and SEATPLAN_CACHE_DIR
//
// # File Format
//
//	[render]
//	seat_numbers = true
//	background = "#fafafa"
//
//	[editor.bindings]
//	x = "delete-selection"
//	backspace = ""          # unbind
//
//	[[palette]]
//	name = "Cocktail table"
//	shape = "ROUND"
//	capacity = 4
//
//	[server]
//	addr = ":8080"
//
//	[cache]
//	redis_url = "redis://localhost:6379/0"
//	ttl = "72h"
//	prefix = "staging:"
package config

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"github.com/matzehuels/seatplan/pkg/cache"
	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/errors"
	"github.com/matzehuels/seatplan/pkg/interact"
	"github.com/matzehuels/seatplan/pkg/palette"
	"github.com/matzehuels/seatplan/pkg/pipeline"
	"github.com/matzehuels/seatplan/pkg/render"
)

const appName = "seatplan"

// Environment variables that override the file.
const (
	EnvAddr     = "SEATPLAN_ADDR"
	EnvRedisURL = "SEATPLAN_REDIS_URL"
	EnvCacheDir = "SEATPLAN_CACHE_DIR"
)

// DefaultAddr is the HTTP listen address.
const DefaultAddr = ":8080"

// Config is the complete settings tree.
type Config struct {
	Render  RenderConfig   `toml:"render"`
	Editor  EditorConfig   `toml:"editor"`
	Palette []palette.Item `toml:"palette"`
	Server  ServerConfig   `toml:"server"`
	Cache   CacheConfig    `toml:"cache"`
}

// RenderConfig holds default render options for the CLI and the API.
type RenderConfig struct {
	SeatNumbers bool     `toml:"seat_numbers"`
	Labels      bool     `toml:"labels"`
	Handles     bool     `toml:"handles"`
	Grid        bool     `toml:"grid"`
	Background  string   `toml:"background"`
	Interaction bool     `toml:"interaction"`
	Formats     []string `toml:"formats"`
}

// EditorConfig holds key binding overrides, key → action name.
type EditorConfig struct {
	Bindings map[string]string `toml:"bindings"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
}

// CacheConfig selects and tunes the artifact cache. RedisURL wins over Dir.
type CacheConfig struct {
	Disabled bool     `toml:"disabled"`
	Dir      string   `toml:"dir"`
	RedisURL string   `toml:"redis_url"`
	TTL      Duration `toml:"ttl"`

	// Prefix namespaces every cache key, for deployments sharing one Redis.
	Prefix string `toml:"prefix"`
}

// Duration is a time.Duration written as a string such as "90s" or "72h".
type Duration struct {
	time.Duration
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "duration %q", text)
	}
	d.Duration = v
	return nil
}

// MarshalText writes the duration in Go syntax.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() Config {
	f := render.DefaultFlags()
	return Config{
		Render: RenderConfig{
			SeatNumbers: f.SeatNumbers,
			Labels:      f.Labels,
			Handles:     f.Handles,
			Grid:        f.Grid,
			Formats:     []string{pipeline.FormatSVG},
		},
		Palette: palette.Default(),
		Server: ServerConfig{
			Addr:            DefaultAddr,
			ShutdownTimeout: Duration{10 * time.Second},
		},
		Cache: CacheConfig{TTL: Duration{cache.TTLArtifact}},
	}
}

// base is the decode target for files: defaults without the palette, so a
// file's [[palette]] entries never inherit fields from built-in items.
func base() Config {
	cfg := Default()
	cfg.Palette = nil
	return cfg
}

// DefaultPath returns $XDG_CONFIG_HOME/seatplan/config.toml, falling back
// to ~/.config.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// DefaultCacheDir returns $XDG_CACHE_HOME/seatplan, falling back to
// ~/.cache.
func DefaultCacheDir() (string, error) {
	if dir := os.Getenv("XDG_CACHE_HOME"); dir != "" {
		return filepath.Join(dir, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// Load reads the config file at path, then applies .env and environment
// overrides. An empty path reads the default location, where a missing
// file is not an error.
func Load(path string) (Config, error) {
	cfg := base()

	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err == nil {
			path = p
		}
	}
	if path != "" {
		if err := cfg.decodeFile(path); err != nil {
			if !explicit && errors.Is(err, errors.ErrCodeFileNotFound) {
				err = nil
			}
			if err != nil {
				return Config{}, err
			}
		}
	}

	if err := LoadEnv(); err != nil {
		return Config{}, err
	}
	cfg.ApplyEnv()
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse decodes TOML text on top of the defaults and validates the result.
// Environment variables are not consulted.
func Parse(data string) (Config, error) {
	cfg := base()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) decodeFile(path string) error {
	if err := errors.ValidatePath(path); err != nil {
		return err
	}
	md, err := toml.DecodeFile(path, c)
	if os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	return checkUndecoded(md)
}

// checkUndecoded rejects keys that map to no field, which are almost
// always typos.
func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, 0, len(undecoded))
	for _, k := range undecoded {
		keys = append(keys, k.String())
	}
	sort.Strings(keys)
	return errors.New(errors.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
}

// LoadEnv loads .env files into the process environment without
// overriding variables that are already set. With no arguments it reads
// ./.env if it exists.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		if _, err := os.Stat(".env"); err != nil {
			return nil
		}
		files = []string{".env"}
	}
	if err := godotenv.Load(files...); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", strings.Join(files, ", "))
	}
	return nil
}

// ApplyEnv applies environment overrides.
func (c *Config) ApplyEnv() {
	if v := os.Getenv(EnvAddr); v != "" {
		c.Server.Addr = v
	}
	if v := os.Getenv(EnvRedisURL); v != "" {
		c.Cache.RedisURL = v
	}
	if v := os.Getenv(EnvCacheDir); v != "" {
		c.Cache.Dir = v
	}
}

// SetDefaults fills fields a file may have cleared.
func (c *Config) SetDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = DefaultAddr
	}
	if c.Server.ShutdownTimeout.Duration <= 0 {
		c.Server.ShutdownTimeout = Duration{10 * time.Second}
	}
	if c.Cache.TTL.Duration <= 0 {
		c.Cache.TTL = Duration{cache.TTLArtifact}
	}
	if len(c.Render.Formats) == 0 {
		c.Render.Formats = []string{pipeline.FormatSVG}
	}
	if len(c.Palette) == 0 {
		c.Palette = palette.Default()
	}
	for i, it := range c.Palette {
		switch shape, err := chart.ParseShape(string(it.Shape)); {
		case err == nil:
			c.Palette[i].Shape = shape
		case it.Shape == "" && !it.IsRow && it.Capacity <= 0:
			c.Palette[i].Shape = chart.ShapeCustom
		case it.Shape == "" && !it.IsRow:
			c.Palette[i].Shape = chart.ShapeRound
		}
	}
	if c.Cache.Dir == "" {
		if dir, err := DefaultCacheDir(); err == nil {
			c.Cache.Dir = dir
		}
	}
}

// Validate checks bindings, palette items and render settings.
func (c *Config) Validate() error {
	if _, err := c.KeyBindings(); err != nil {
		return err
	}
	names := make(map[string]bool, len(c.Palette))
	for i, it := range c.Palette {
		if err := it.Validate(); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "palette item %d", i+1)
		}
		if names[it.Name] {
			return errors.New(errors.ErrCodeInvalidConfig, "duplicate palette item %q", it.Name)
		}
		names[it.Name] = true
	}
	if err := errors.ValidateColor(c.Render.Background); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.background")
	}
	if err := pipeline.ValidateFormats(c.Render.Formats); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "render.formats")
	}
	return nil
}

// Flags returns the configured render flags.
func (r RenderConfig) Flags() render.Flags {
	return render.Flags{
		SeatNumbers: r.SeatNumbers,
		Labels:      r.Labels,
		Handles:     r.Handles,
		Grid:        r.Grid,
	}
}

// PipelineOptions returns render options seeded from the config.
func (c *Config) PipelineOptions() pipeline.Options {
	return pipeline.Options{
		Formats:     append([]string(nil), c.Render.Formats...),
		Flags:       c.Render.Flags(),
		Background:  c.Render.Background,
		Interaction: c.Render.Interaction,
	}
}

// KeyBindings returns the default bindings merged with the overrides.
func (c *Config) KeyBindings() (interact.Bindings, error) {
	b, err := interact.DefaultBindings().Merge(c.Editor.Bindings)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "editor.bindings")
	}
	return b, nil
}
