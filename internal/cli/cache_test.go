package cli

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/seatplan/pkg/cache"
	"github.com/matzehuels/seatplan/pkg/config"
)

func TestCachePath(t *testing.T) {
	isolate(t)
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)

	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := strings.TrimSpace(out), filepath.Join(xdg, appName); got != want {
		t.Errorf("cache path = %q, want %q", got, want)
	}
}

func TestCachePathFromEnv(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	t.Setenv(config.EnvCacheDir, dir)

	out, err := execute(t, "cache", "path")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != dir {
		t.Errorf("cache path = %q, want %q", got, dir)
	}
}

func TestCacheClear(t *testing.T) {
	isolate(t)
	dir := t.TempDir()
	t.Setenv(config.EnvCacheDir, dir)

	ctx := context.Background()
	store, err := cache.NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"chart:a", "chart:b"} {
		if err := store.Set(ctx, key, []byte("{}"), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	buf := captureStdout(t)
	if _, err := execute(t, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := store.Get(ctx, "chart:a"); hit {
		t.Error("entry survived cache clear")
	}
	if !strings.Contains(buf.String(), "Cleared") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestCacheClearMissingDir(t *testing.T) {
	isolate(t)
	t.Setenv(config.EnvCacheDir, filepath.Join(t.TempDir(), "never-created"))

	buf := captureStdout(t)
	if _, err := execute(t, "cache", "clear"); err != nil {
		t.Fatalf("clearing a missing cache dir should succeed, got %v", err)
	}
	if !strings.Contains(buf.String(), "Cache is empty") {
		t.Errorf("output = %q", buf.String())
	}
}
