package catalog

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/matzehuels/toolverse/pkg/cache"
	"github.com/matzehuels/toolverse/pkg/errors"
	"github.com/matzehuels/toolverse/pkg/httputil"
)

// RemoteSource loads a catalog from another catalog API.
//
// It lists GET {BaseURL}/categories and then fetches each category with
// GET {BaseURL}/categories/{id}. Transient failures are retried with
// exponential backoff.
//
// When Cache is set, raw category bodies are kept under Keyer.HTTPKey for
// cache.TTLHTTP, so a reload after the catalog TTL only refetches the
// category listing and the categories that expired.
type RemoteSource struct {
	BaseURL string
	Client  *http.Client

	Cache cache.Cache
	Keyer cache.Keyer
}

// NewRemoteSource creates a source for the API rooted at baseURL.
func NewRemoteSource(baseURL string) *RemoteSource {
	return &RemoteSource{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *RemoteSource) String() string { return s.BaseURL }

func (s *RemoteSource) Load(ctx context.Context) (*Catalog, error) {
	if err := errors.ValidateURL(s.BaseURL); err != nil {
		return nil, err
	}
	var summaries []CategorySummary
	if err := s.get(ctx, "/categories", &summaries); err != nil {
		return nil, err
	}
	c := &Catalog{Categories: make([]Category, 0, len(summaries))}
	for _, sum := range summaries {
		var cat Category
		if err := s.getCached(ctx, "/categories/"+url.PathEscape(sum.ID), &cat); err != nil {
			return nil, err
		}
		c.Categories = append(c.Categories, cat)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// getCached is get through the response cache, when one is set.
func (s *RemoteSource) getCached(ctx context.Context, path string, v any) error {
	if s.Cache == nil {
		return s.get(ctx, path, v)
	}
	keyer := s.Keyer
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	key := keyer.HTTPKey(s.BaseURL, path)
	if body, hit, err := s.Cache.Get(ctx, key); err == nil && hit {
		if json.Unmarshal(body, v) == nil {
			return nil
		}
	}
	var body json.RawMessage
	if err := s.get(ctx, path, &body); err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s%s", s.BaseURL, path)
	}
	_ = s.Cache.Set(ctx, key, body, cache.TTLHTTP)
	return nil
}

func (s *RemoteSource) get(ctx context.Context, path string, v any) error {
	u := s.BaseURL + path
	err := httputil.RetryWithBackoff(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return err
		}
		req.Header.Set("Accept", "application/json")
		resp, err := s.Client.Do(req)
		if err != nil {
			return &httputil.RetryableError{Err: err}
		}
		defer resp.Body.Close()
		if err := httputil.CheckResponse(resp); err != nil {
			return err
		}
		return json.NewDecoder(resp.Body).Decode(v)
	})
	if err != nil {
		if errors.GetCode(err) != "" {
			return err
		}
		return errors.Wrap(errors.ErrCodeNetwork, err, "fetch %s", u)
	}
	return nil
}
