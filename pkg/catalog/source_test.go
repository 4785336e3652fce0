package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/matzehuels/toolverse/pkg/cache"
	"github.com/matzehuels/toolverse/pkg/errors"
	"github.com/matzehuels/toolverse/pkg/httputil"
	"github.com/matzehuels/toolverse/pkg/tree"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		uri     string
		want    string
		wantErr bool
	}{
		{"", "builtin", false},
		{"builtin", "builtin", false},
		{"file:/tmp/cat.json", "file:/tmp/cat.json", false},
		{"catalog.toml", "file:catalog.toml", false},
		{"Catalog.JSON", "file:Catalog.JSON", false},
		{"https://tools.example.com/api/", "https://tools.example.com/api", false},
		{"mongodb://localhost:27017/aitools#cats", "mongodb:aitools.cats", false},
		{"mongodb://localhost:27017", "mongodb:toolverse.categories", false},
		{"catalog.yaml", "", true},
		{"ftp://example.com", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.uri, func(t *testing.T) {
			src, err := Open(tt.uri)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Open(%q) err = %v, wantErr %v", tt.uri, err, tt.wantErr)
			}
			if err == nil && src.String() != tt.want {
				t.Errorf("String() = %q, want %q", src.String(), tt.want)
			}
		})
	}
}

func TestParseMongoURIStripsFragment(t *testing.T) {
	s, err := ParseMongoURI("mongodb://user:pw@db:27017/aitools?authSource=admin#cats")
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(s.URI, "#") || !strings.Contains(s.URI, "authSource=admin") {
		t.Errorf("URI = %q", s.URI)
	}
	if s.Database != "aitools" || s.Collection != "cats" {
		t.Errorf("db/collection = %s/%s", s.Database, s.Collection)
	}
}

func TestStaticLoad(t *testing.T) {
	c, err := NewStatic(Builtin()).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if _, n := c.Counts(); n != 32 {
		t.Errorf("tools = %d", n)
	}
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const tomlCatalog = `
[[categories]]
id = "writing"
name = "Writing"
description = "Tools that write"
color = "#3B82F6"

  [[categories.tools]]
  id = "scribe"
  name = "Scribe"
  description = "Writes things"
  url = "https://scribe.example"
  popularity = 42

[[categories]]
id = "art"
name = "Art"
description = "Tools that draw"
color = "#EC4899"

  [[categories.tools]]
  id = "painter"
  name = "Painter"
  popularity = 7
`

func TestFileSourceTOML(t *testing.T) {
	path := writeFile(t, "catalog.toml", tomlCatalog)
	c, err := (&FileSource{Path: path}).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(c.Categories) != 2 || c.Categories[0].Tools[0].Popularity != 42 || c.Categories[1].Tools[0].ID != "painter" {
		t.Errorf("catalog = %+v", c)
	}
}

func TestFileSourceJSON(t *testing.T) {
	data, _ := json.Marshal(Builtin())
	path := writeFile(t, "catalog.json", string(data))
	c, err := (&FileSource{Path: path}).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if cats, tools := c.Counts(); cats != 8 || tools != 32 {
		t.Errorf("Counts() = %d, %d", cats, tools)
	}
}

func TestFileSourceTreeJSON(t *testing.T) {
	data, _ := tree.MarshalTree(Builtin().Tree())
	path := writeFile(t, "sunburst.json", string(data))
	c, err := (&FileSource{Path: path}).Load(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	d, err := c.Tool("grammarly")
	if err != nil || d.Popularity != 85 || d.CategoryID != "productivity" {
		t.Errorf("Tool(grammarly) = %+v, %v", d, err)
	}
}

func TestFileSourceErrors(t *testing.T) {
	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"missing", filepath.Join(t.TempDir(), "none.json"), errors.ErrCodeFileNotFound},
		{"bad json", writeFile(t, "bad.json", "{"), errors.ErrCodeInvalidFormat},
		{"bad toml", writeFile(t, "bad.toml", "[[categories]\n"), errors.ErrCodeInvalidFormat},
		{"invalid", writeFile(t, "dup.json", `{"categories":[{"id":"a","name":"A"},{"id":"a","name":"B"}]}`), errors.ErrCodeInvalidCatalog},
		{"empty path", "", errors.ErrCodeInvalidPath},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := (&FileSource{Path: tt.path}).Load(context.Background())
			if !errors.Is(err, tt.code) {
				t.Errorf("err = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestDecodeTreeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"null category", `{"children":[null]}`},
		{"null tool", `{"children":[{"id":"a","name":"A","children":[null]}]}`},
		{"three levels", `{"children":[{"id":"a","name":"A","color":"#3B82F6","children":[
			{"id":"t1","name":"T1","value":5,"children":[{"id":"x","name":"X","value":1}]}]}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Decode([]byte(tt.data), ".json")
			if c != nil || !errors.Is(err, errors.ErrCodeInvalidCatalog) {
				t.Errorf("Decode = %v, %v; want INVALID_CATALOG", c, err)
			}
		})
	}
	path := writeFile(t, "deep.json", tests[2].data)
	if _, err := (&FileSource{Path: path}).Load(context.Background()); !errors.Is(err, errors.ErrCodeInvalidCatalog) {
		t.Errorf("FileSource.Load err = %v", err)
	}
}

func TestDecodeUnsupportedExt(t *testing.T) {
	if _, err := Decode([]byte("x"), ".yaml"); !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("err = %v", err)
	}
}

// catalogServer serves the built-in catalog the way the REST API does,
// failing the first failures requests with 503.
func catalogServer(t *testing.T, failures int32) (*httptest.Server, *atomic.Int32) {
	t.Helper()
	var calls atomic.Int32
	c := Builtin()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) <= failures {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(c.Summaries())
	})
	mux.HandleFunc("/api/categories/", func(w http.ResponseWriter, r *http.Request) {
		cat, err := c.Category(strings.TrimPrefix(r.URL.Path, "/api/categories/"))
		if err != nil {
			w.WriteHeader(http.StatusNotFound)
			json.NewEncoder(w).Encode(map[string]string{"error": "Category not found"})
			return
		}
		json.NewEncoder(w).Encode(cat)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &calls
}

func fastRetries(t *testing.T) {
	t.Helper()
	old := httputil.DefaultDelay
	httputil.DefaultDelay = time.Millisecond
	t.Cleanup(func() { httputil.DefaultDelay = old })
}

func TestRemoteSource(t *testing.T) {
	fastRetries(t)
	srv, calls := catalogServer(t, 2)

	c, err := NewRemoteSource(srv.URL + "/api/").Load(context.Background())
	if err != nil {
		t.Fatalf("Load() = %v", err)
	}
	if cats, tools := c.Counts(); cats != 8 || tools != 32 {
		t.Errorf("Counts() = %d, %d", cats, tools)
	}
	if calls.Load() != 3 {
		t.Errorf("categories requested %d times, want 3", calls.Load())
	}
}

func TestRemoteSourceCachesCategoryBodies(t *testing.T) {
	var details atomic.Int32
	c := Builtin()
	mux := http.NewServeMux()
	mux.HandleFunc("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(c.Summaries())
	})
	mux.HandleFunc("/api/categories/", func(w http.ResponseWriter, r *http.Request) {
		details.Add(1)
		cat, _ := c.Category(strings.TrimPrefix(r.URL.Path, "/api/categories/"))
		json.NewEncoder(w).Encode(cat)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ctx := context.Background()
	mem := cache.NewMemoryCache(0)
	src := NewRemoteSource(srv.URL + "/api")
	src.Cache = mem
	for i := 0; i < 2; i++ {
		got, err := src.Load(ctx)
		if err != nil {
			t.Fatalf("Load() #%d = %v", i, err)
		}
		if cats, tools := got.Counts(); cats != 8 || tools != 32 {
			t.Errorf("Load() #%d counts = %d, %d", i, cats, tools)
		}
	}
	if details.Load() != 8 {
		t.Errorf("category bodies fetched %d times, want 8", details.Load())
	}

	key := cache.NewDefaultKeyer().HTTPKey(src.BaseURL, "/categories/"+c.Categories[0].ID)
	if _, hit, _ := mem.Get(ctx, key); !hit {
		t.Errorf("no cached body under %q", key)
	}
}

func TestRemoteSourceGivesUp(t *testing.T) {
	fastRetries(t)
	srv, _ := catalogServer(t, 100)

	_, err := NewRemoteSource(srv.URL + "/api").Load(context.Background())
	if !errors.Is(err, errors.ErrCodeNetwork) {
		t.Errorf("err = %v, want NETWORK_ERROR", err)
	}
}

func TestDecodeCategories(t *testing.T) {
	doc, err := bson.Marshal(bson.D{
		{Key: "_id", Value: "665f1c"},
		{Key: "order", Value: 1},
		{Key: "id", Value: "research"},
		{Key: "name", Value: "Research"},
		{Key: "description", Value: "Tools for research"},
		{Key: "color", Value: "#06B6D4"},
		{Key: "tools", Value: bson.A{
			bson.D{{Key: "id", Value: "elicit"}, {Key: "name", Value: "Elicit"}, {Key: "popularity", Value: int32(64)}},
		}},
	})
	if err != nil {
		t.Fatal(err)
	}
	c, err := decodeCategories([]bson.Raw{doc})
	if err != nil {
		t.Fatalf("decodeCategories() = %v", err)
	}
	cat := c.Categories[0]
	if cat.ID != "research" || cat.Icon != "🔬" || len(cat.Tools) != 1 || cat.Tools[0].Popularity != 64 {
		t.Errorf("category = %+v", cat)
	}
}

func TestDecodeCategoriesInvalid(t *testing.T) {
	doc, _ := bson.Marshal(bson.D{{Key: "id", Value: "Bad Id"}, {Key: "name", Value: "X"}})
	if _, err := decodeCategories([]bson.Raw{doc}); !errors.Is(err, errors.ErrCodeInvalidCatalog) {
		t.Errorf("err = %v, want INVALID_CATALOG", err)
	}
}
