package cache

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matzehuels/toolverse/pkg/errors"
	"github.com/matzehuels/toolverse/pkg/observability"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	// Get always returns miss
	data, hit, err := c.Get(ctx, "key")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if hit {
		t.Error("NullCache.Get should always return miss")
	}
	if data != nil {
		t.Error("NullCache.Get should return nil data")
	}

	if err := c.Set(ctx, "key", []byte("value"), time.Hour); err != nil {
		t.Errorf("Set error: %v", err)
	}
	if _, hit, _ = c.Get(ctx, "key"); hit {
		t.Error("NullCache should not store data")
	}
	if err := c.Delete(ctx, "key"); err != nil {
		t.Errorf("Delete error: %v", err)
	}
}

// testBackend runs the behaviour every backend shares.
func testBackend(t *testing.T, c Cache) {
	t.Helper()
	ctx := context.Background()

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("Get(missing) = hit %v, err %v", hit, err)
	}
	if err := c.Set(ctx, "artifact:abc", []byte("<svg/>"), time.Hour); err != nil {
		t.Fatalf("Set error: %v", err)
	}
	data, hit, err := c.Get(ctx, "artifact:abc")
	if err != nil || !hit || string(data) != "<svg/>" {
		t.Fatalf("Get = %q, %v, %v", data, hit, err)
	}
	if err := c.Delete(ctx, "artifact:abc"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "artifact:abc"); hit {
		t.Error("entry should be gone after Delete")
	}
	if err := c.Delete(ctx, "artifact:abc"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileCache(t *testing.T) {
	dir := t.TempDir()
	c, err := NewFileCache(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer c.Close()
	testBackend(t, c)

	ctx := context.Background()
	// Expired entries are misses.
	if err := c.Set(ctx, "old", []byte("x"), time.Nanosecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(time.Millisecond)
	if _, hit, _ := c.Get(ctx, "old"); hit {
		t.Error("expired entry should miss")
	}

	// Corrupt entries are misses and get removed.
	if err := c.Set(ctx, "bad", []byte("x"), 0); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(c.path("bad"), []byte("{"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, hit, _ := c.Get(ctx, "bad"); hit {
		t.Error("corrupt entry should miss")
	}

	for i := range 3 {
		_ = c.Set(ctx, fmt.Sprintf("k%d", i), []byte("v"), 0)
	}
	n, err := c.Clear()
	if err != nil || n != 3 {
		t.Errorf("Clear() = %d, %v; want 3", n, err)
	}
	if c.Dir() != dir {
		t.Errorf("Dir() = %q", c.Dir())
	}
	if !strings.HasPrefix(c.path("k"), dir+string(filepath.Separator)) {
		t.Errorf("path outside dir: %s", c.path("k"))
	}
}

func TestNewFileCacheRequiresDir(t *testing.T) {
	if _, err := NewFileCache(""); !errors.Is(err, errors.ErrCodeInvalidPath) {
		t.Errorf("err = %v, want INVALID_PATH", err)
	}
}

func TestMemoryCache(t *testing.T) {
	c := NewMemoryCache(0)
	testBackend(t, c)

	ctx := context.Background()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return now }

	_ = c.Set(ctx, "short", []byte("a"), time.Minute)
	now = now.Add(2 * time.Minute)
	if _, hit, _ := c.Get(ctx, "short"); hit {
		t.Error("expired entry should miss")
	}

	// Stored data is a copy.
	buf := []byte("abc")
	_ = c.Set(ctx, "copy", buf, 0)
	buf[0] = 'x'
	if data, _, _ := c.Get(ctx, "copy"); string(data) != "abc" {
		t.Errorf("Get = %q, want abc", data)
	}

	_ = c.Close()
	if _, _, err := c.Get(ctx, "copy"); err != ErrClosed {
		t.Errorf("Get after Close err = %v", err)
	}
	if err := c.Set(ctx, "copy", nil, 0); err != ErrClosed {
		t.Errorf("Set after Close err = %v", err)
	}
}

func TestMemoryCacheEviction(t *testing.T) {
	ctx := context.Background()
	c := NewMemoryCache(2)

	_ = c.Set(ctx, "forever", []byte("1"), 0)
	_ = c.Set(ctx, "soon", []byte("2"), time.Minute)
	_ = c.Set(ctx, "later", []byte("3"), time.Hour)

	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if _, hit, _ := c.Get(ctx, "soon"); hit {
		t.Error("entry expiring soonest should be evicted")
	}
	for _, k := range []string{"forever", "later"} {
		if _, hit, _ := c.Get(ctx, k); !hit {
			t.Errorf("%s should survive", k)
		}
	}

	// Overwriting an existing key never evicts.
	_ = c.Set(ctx, "later", []byte("4"), time.Hour)
	if c.Len() != 2 {
		t.Errorf("Len() = %d after overwrite", c.Len())
	}
}

func TestParseRedisURL(t *testing.T) {
	tests := []struct {
		url     string
		addr    string
		db      int
		wantErr bool
	}{
		{url: "redis://localhost:6379/0", addr: "localhost:6379"},
		{url: "redis://:secret@cache.internal:6380/2", addr: "cache.internal:6380", db: 2},
		{url: "", wantErr: true},
		{url: "http://localhost", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			opts, err := ParseRedisURL(tt.url)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeInvalidConfig) {
					t.Errorf("err = %v, want INVALID_CONFIG", err)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if opts.Addr != tt.addr || opts.DB != tt.db {
				t.Errorf("opts = %s db %d", opts.Addr, opts.DB)
			}
		})
	}
}

func TestOpen(t *testing.T) {
	tests := []struct {
		cfg     Config
		want    string
		wantErr errors.Code
	}{
		{cfg: Config{}, want: "*cache.MemoryCache"},
		{cfg: Config{Backend: BackendMemory, MaxEntries: 10}, want: "*cache.MemoryCache"},
		{cfg: Config{Backend: BackendFile, Dir: t.TempDir()}, want: "*cache.FileCache"},
		{cfg: Config{Backend: BackendNone}, want: "cache.NullCache"},
		{cfg: Config{Backend: BackendRedis, RedisURL: "redis://localhost:6379/1"}, want: "*cache.RedisCache"},
		{cfg: Config{Backend: BackendRedis}, wantErr: errors.ErrCodeInvalidConfig},
		{cfg: Config{Backend: BackendFile}, wantErr: errors.ErrCodeInvalidPath},
		{cfg: Config{Backend: "memcached"}, wantErr: errors.ErrCodeInvalidConfig},
	}
	for _, tt := range tests {
		t.Run(tt.cfg.Backend, func(t *testing.T) {
			c, err := Open(tt.cfg)
			if tt.wantErr != "" {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("err = %v, want %s", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			defer c.Close()
			inner := c.(*Instrumented).Unwrap()
			if got := fmt.Sprintf("%T", inner); got != tt.want {
				t.Errorf("backend = %s, want %s", got, tt.want)
			}
		})
	}
}

type cacheRecorder struct {
	hits, misses map[string]int
	bytes        int
}

func (r *cacheRecorder) OnCacheHit(_ context.Context, k string)  { r.hits[k]++ }
func (r *cacheRecorder) OnCacheMiss(_ context.Context, k string) { r.misses[k]++ }
func (r *cacheRecorder) OnCacheSet(_ context.Context, _ string, n int) {
	r.bytes += n
}

func TestInstrument(t *testing.T) {
	rec := &cacheRecorder{hits: map[string]int{}, misses: map[string]int{}}
	observability.SetCacheHooks(rec)
	t.Cleanup(observability.Reset)

	ctx := context.Background()
	c := Instrument(Instrument(NewMemoryCache(0)))
	if _, ok := c.(*Instrumented).Unwrap().(*MemoryCache); !ok {
		t.Fatal("Instrument should not double-wrap")
	}
	k := NewDefaultKeyer()
	key := k.ArtifactKey("hash", ArtifactKeyOpts{Format: "svg"})

	_, _, _ = c.Get(ctx, key)
	_ = c.Set(ctx, key, []byte("12345"), 0)
	_, _, _ = c.Get(ctx, key)
	_, _, _ = c.Get(ctx, NewScopedKeyer(k, "tenant:").CatalogKey("builtin"))

	if rec.misses[KeyTypeArtifact] != 1 || rec.hits[KeyTypeArtifact] != 1 {
		t.Errorf("artifact hits = %d misses = %d", rec.hits[KeyTypeArtifact], rec.misses[KeyTypeArtifact])
	}
	if rec.misses[KeyTypeCatalog] != 1 {
		t.Errorf("scoped catalog key not classified: %v", rec.misses)
	}
	if rec.bytes != 5 {
		t.Errorf("bytes = %d, want 5", rec.bytes)
	}
}

func TestHash(t *testing.T) {
	h1 := Hash([]byte("hello"))
	if h1 != Hash([]byte("hello")) {
		t.Error("Hash should be deterministic")
	}
	if h1 == Hash([]byte("world")) {
		t.Error("Different inputs should produce different hashes")
	}
	if len(h1) != 64 {
		t.Errorf("Hash length should be 64, got %d", len(h1))
	}
}

func TestDefaultKeyer(t *testing.T) {
	k := NewDefaultKeyer()

	if got := k.HTTPKey("catalog", "/categories"); got != "http:catalog:/categories" {
		t.Errorf("HTTPKey unexpected: %s", got)
	}
	if k.CatalogKey("builtin") == k.CatalogKey("file:catalog.toml") {
		t.Error("different sources should produce different keys")
	}
	if !strings.HasPrefix(k.CatalogKey("builtin"), "catalog:") {
		t.Error("catalog keys should carry their prefix")
	}

	base := ArtifactKeyOpts{Format: "svg", VizType: "sunburst", Theme: "light", Radius: 300}
	variants := []ArtifactKeyOpts{
		{Format: "png", VizType: "sunburst", Theme: "light", Radius: 300},
		{Format: "svg", VizType: "sunburst", Theme: "dark", Radius: 300},
		{Format: "svg", VizType: "sunburst", Theme: "light", Radius: 300, Focus: "productivity"},
		{Format: "svg", VizType: "sunburst", Theme: "light", Radius: 300, AtMS: 375},
	}
	for _, v := range variants {
		if k.ArtifactKey("h", v) == k.ArtifactKey("h", base) {
			t.Errorf("%+v should key differently from %+v", v, base)
		}
	}
	if k.ArtifactKey("h1", base) == k.ArtifactKey("h2", base) {
		t.Error("catalog hash should be part of the key")
	}
}

func TestScopedKeyer(t *testing.T) {
	scoped := NewScopedKeyer(NewDefaultKeyer(), "srv:")
	if got := scoped.HTTPKey("catalog", "x"); got != "srv:http:catalog:x" {
		t.Errorf("HTTPKey = %s", got)
	}
	if !strings.HasPrefix(scoped.ArtifactKey("h", ArtifactKeyOpts{}), "srv:artifact:") {
		t.Error("ArtifactKey should be prefixed")
	}
	if got := NewScopedKeyer(nil, "p:").CatalogKey("builtin"); !strings.HasPrefix(got, "p:catalog:") {
		t.Errorf("nil inner should use DefaultKeyer: %s", got)
	}
}

func TestValidateBackend(t *testing.T) {
	for _, b := range Backends {
		if err := ValidateBackend(b); err != nil {
			t.Errorf("ValidateBackend(%q) = %v", b, err)
		}
	}
	if err := ValidateBackend("disk"); err == nil {
		t.Error("unknown backend should fail")
	}
}
