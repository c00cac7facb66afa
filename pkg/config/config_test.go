package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/seatplan/pkg/chart"
	"github.com/matzehuels/seatplan/pkg/errors"
	"github.com/matzehuels/seatplan/pkg/interact"
	"github.com/matzehuels/seatplan/pkg/palette"
)

// isolate points every lookup at empty temp dirs and clears overrides.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("XDG_CACHE_HOME", t.TempDir())
	t.Setenv(EnvAddr, "")
	t.Setenv(EnvRedisURL, "")
	t.Setenv(EnvCacheDir, "")
}

func TestLoadWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if len(cfg.Palette) != len(palette.Default()) {
		t.Errorf("palette has %d items", len(cfg.Palette))
	}
	if !cfg.Render.Labels || !cfg.Render.Handles || cfg.Render.SeatNumbers {
		t.Errorf("render flags = %+v", cfg.Render.Flags())
	}
	if cfg.Cache.Dir != filepath.Join(os.Getenv("XDG_CACHE_HOME"), "seatplan") {
		t.Errorf("cache dir = %q", cfg.Cache.Dir)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	isolate(t)
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadFile(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "config.toml")
	data := `
[render]
seat_numbers = true
handles = false
background = "#fafafa"
formats = ["svg", "txt"]

[editor.bindings]
x = "delete-selection"
backspace = ""

[[palette]]
name = "Cocktail table"
shape = "round"
capacity = 4

[[palette]]
name = "Bar"

[server]
addr = ":9000"
shutdown_timeout = "3s"

[cache]
ttl = "72h"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	f := cfg.Render.Flags()
	if !f.SeatNumbers || f.Handles || !f.Labels {
		t.Errorf("flags = %+v", f)
	}
	if cfg.Render.Background != "#fafafa" {
		t.Errorf("background = %q", cfg.Render.Background)
	}
	if cfg.Server.Addr != ":9000" || cfg.Server.ShutdownTimeout.Duration != 3*time.Second {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Cache.TTL.Duration != 72*time.Hour {
		t.Errorf("ttl = %v", cfg.Cache.TTL)
	}

	if len(cfg.Palette) != 2 {
		t.Fatalf("palette = %+v", cfg.Palette)
	}
	if cfg.Palette[0].Shape != chart.ShapeRound {
		t.Errorf("shape not normalized: %q", cfg.Palette[0].Shape)
	}
	if cfg.Palette[1].Shape != chart.ShapeCustom || cfg.Palette[1].Kind() != "area" {
		t.Errorf("bar = %+v", cfg.Palette[1])
	}

	b, err := cfg.KeyBindings()
	if err != nil {
		t.Fatal(err)
	}
	if b["x"] != interact.ActionDeleteSelection {
		t.Errorf("x bound to %q", b["x"])
	}
	if _, ok := b["backspace"]; ok {
		t.Error("backspace should be unbound")
	}
	if b["esc"] != interact.ActionCancel {
		t.Error("defaults should survive overrides")
	}

	opts := cfg.PipelineOptions()
	if len(opts.Formats) != 2 || opts.Background != "#fafafa" || !opts.Flags.SeatNumbers {
		t.Errorf("pipeline options = %+v", opts)
	}
}

func TestEnvOverrides(t *testing.T) {
	isolate(t)
	t.Setenv(EnvAddr, "127.0.0.1:7000")
	t.Setenv(EnvRedisURL, "redis://cache:6379/1")
	t.Setenv(EnvCacheDir, "/tmp/seatplan-cache")

	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != "127.0.0.1:7000" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Cache.RedisURL != "redis://cache:6379/1" {
		t.Errorf("RedisURL = %q", cfg.Cache.RedisURL)
	}
	if cfg.Cache.Dir != "/tmp/seatplan-cache" {
		t.Errorf("Dir = %q", cfg.Cache.Dir)
	}
}

func TestLoadEnvFile(t *testing.T) {
	isolate(t)
	envFile := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(envFile, []byte("SEATPLAN_ADDR=:6060\n"), 0644); err != nil {
		t.Fatal(err)
	}
	// godotenv never overrides variables that are already set.
	os.Unsetenv(EnvAddr)

	if err := LoadEnv(envFile); err != nil {
		t.Fatal(err)
	}
	if got := os.Getenv(EnvAddr); got != ":6060" {
		t.Errorf("%s = %q after LoadEnv", EnvAddr, got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"syntax", "[render"},
		{"unknown key", "[render]\ncolour = true"},
		{"unknown action", "[editor.bindings]\nq = \"quit\""},
		{"bad shape", "[[palette]]\nname = \"Hex\"\nshape = \"HEXAGON\"\ncapacity = 6"},
		{"duplicate item", "[[palette]]\nname = \"A\"\ncapacity = 4\n[[palette]]\nname = \"A\"\ncapacity = 6"},
		{"empty row", "[[palette]]\nname = \"Row\"\nrow = true"},
		{"bad background", "[render]\nbackground = \"white\""},
		{"bad format", "[render]\nformats = [\"pdf\"]"},
		{"bad duration", "[cache]\nttl = \"soon\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.data)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, errors.ErrCodeInvalidConfig) {
				t.Errorf("code = %q (%v), want INVALID_CONFIG", errors.GetCode(err), err)
			}
		})
	}
}

func TestDefaultPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	got, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join(dir, "seatplan", "config.toml"); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}
