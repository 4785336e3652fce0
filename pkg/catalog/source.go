package catalog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/toolverse/pkg/errors"
	"github.com/matzehuels/toolverse/pkg/tree"
)

// BuiltinURI selects the built-in catalog in Open.
const BuiltinURI = "builtin"

// Source loads a catalog.
type Source interface {
	// Load returns a validated catalog.
	Load(ctx context.Context) (*Catalog, error)
	// String describes the source for logs and cache keys.
	String() string
}

// Open returns the source described by uri.
//
// Recognized forms:
//
//	""  or "builtin"                    built-in catalog
//	"file:path" or "*.json" / "*.toml"  local file
//	"http://..." / "https://..."        remote catalog API
//	"mongodb://..." / "mongodb+srv://"  MongoDB collection
func Open(uri string) (Source, error) {
	switch {
	case uri == "" || uri == BuiltinURI:
		return NewStatic(Builtin()), nil
	case strings.HasPrefix(uri, "file:"):
		return &FileSource{Path: strings.TrimPrefix(uri, "file:")}, nil
	case strings.HasPrefix(uri, "http://"), strings.HasPrefix(uri, "https://"):
		return NewRemoteSource(uri), nil
	case strings.HasPrefix(uri, "mongodb://"), strings.HasPrefix(uri, "mongodb+srv://"):
		return ParseMongoURI(uri)
	}
	switch strings.ToLower(filepath.Ext(uri)) {
	case ".json", ".toml":
		return &FileSource{Path: uri}, nil
	}
	return nil, errors.New(errors.ErrCodeUnsupported, "unsupported catalog source %q", uri)
}

// =============================================================================
// Static
// =============================================================================

// Static serves a fixed in-memory catalog.
type Static struct {
	catalog *Catalog
	name    string
}

// NewStatic wraps c as a source. Each Load returns a deep copy.
func NewStatic(c *Catalog) *Static {
	return &Static{catalog: c, name: BuiltinURI}
}

func (s *Static) Load(ctx context.Context) (*Catalog, error) {
	if err := s.catalog.Validate(); err != nil {
		return nil, err
	}
	return s.catalog.Clone(), nil
}

func (s *Static) String() string { return s.name }

// =============================================================================
// FileSource
// =============================================================================

// FileSource loads a catalog from a JSON or TOML file.
//
// JSON files may hold either {"categories": [...]} or nested sunburst data
// as served by GET /sunburst-data.
type FileSource struct {
	Path string
}

func (s *FileSource) Load(ctx context.Context) (*Catalog, error) {
	if err := errors.ValidatePath(s.Path); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "catalog file %s", s.Path)
		}
		return nil, err
	}
	c, err := Decode(data, filepath.Ext(s.Path))
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", s.Path, err)
	}
	return c, nil
}

func (s *FileSource) String() string { return "file:" + s.Path }

// Decode parses catalog data by file extension (".json" or ".toml") and
// validates the result.
func Decode(data []byte, ext string) (*Catalog, error) {
	var c Catalog
	switch strings.ToLower(ext) {
	case ".toml":
		if err := toml.Unmarshal(data, &c); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse toml")
		}
	case ".json", "":
		var err error
		if c, err = decodeJSON(data); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported catalog format %q", ext)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func decodeJSON(data []byte) (Catalog, error) {
	var probe struct {
		Categories json.RawMessage `json:"categories"`
		Children   json.RawMessage `json:"children"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return Catalog{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse json")
	}
	if probe.Categories == nil && probe.Children != nil {
		root, err := tree.ReadTree(bytes.NewReader(data))
		if err != nil {
			return Catalog{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse tree")
		}
		c, err := FromTree(root)
		if err != nil {
			return Catalog{}, err
		}
		return *c, nil
	}
	var c Catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return Catalog{}, errors.Wrap(errors.ErrCodeInvalidFormat, err, "parse json")
	}
	return c, nil
}
