package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/toolverse/pkg/cache"
)

func TestCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "")
	dir, err := cacheDir()
	if err != nil {
		t.Fatalf("cacheDir() error: %v", err)
	}
	home, _ := os.UserHomeDir()
	if want := filepath.Join(home, ".cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheDirXDG(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", "/custom/cache")
	dir, err := cacheDir()
	if err != nil {
		t.Fatal(err)
	}
	if want := filepath.Join("/custom/cache", appName); dir != want {
		t.Errorf("cacheDir() = %q, want %q", dir, want)
	}
}

func TestCacheCommands(t *testing.T) {
	xdg := t.TempDir()
	t.Setenv("XDG_CACHE_HOME", xdg)
	out := captureStdout(t)

	fc, err := cache.NewFileCache(filepath.Join(xdg, appName))
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"a", "b", "c"} {
		if err := fc.Set(context.Background(), key, []byte(key), time.Hour); err != nil {
			t.Fatal(err)
		}
	}

	if err := runCLI(t, "cache", "path"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), filepath.Join(xdg, appName)) {
		t.Errorf("cache path output = %q", out.String())
	}

	if err := runCLI(t, "cache", "clear"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "Cleared 3 cached entries") {
		t.Errorf("cache clear output = %q", out.String())
	}
	if _, hit, _ := fc.Get(context.Background(), "a"); hit {
		t.Error("entry survived cache clear")
	}
}

// captureStdout redirects command output to a buffer for the test.
func captureStdout(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	old := stdout
	stdout = &buf
	t.Cleanup(func() { stdout = old })
	return &buf
}

// runCLI executes the root command with args, isolated from the user's
// preferences.
func runCLI(t *testing.T, args ...string) error {
	t.Helper()
	c := New(&bytes.Buffer{}, LogInfo)
	c.PrefsDir = t.TempDir()
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	return root.ExecuteContext(context.Background())
}
