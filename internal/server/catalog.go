package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/toolverse/pkg/buildinfo"
	"github.com/matzehuels/toolverse/pkg/catalog"
	"github.com/matzehuels/toolverse/pkg/errors"
	"github.com/matzehuels/toolverse/pkg/pipeline"
)

// loadCatalog loads the configured catalog through the runner, so remote,
// file and Mongo sources share the catalog cache.
func (s *Server) loadCatalog(r *http.Request) (*catalog.Catalog, error) {
	return s.runner.Load(r.Context(), pipeline.Options{Catalog: s.cfg.Catalog})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, struct {
		Status string `json:"status"`
		buildinfo.Info
	}{"ok", buildinfo.Get()})
}

func (s *Server) handleCategories(w http.ResponseWriter, r *http.Request) {
	c, err := s.loadCatalog(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c.Summaries())
}

func (s *Server) handleCategory(w http.ResponseWriter, r *http.Request) {
	c, err := s.loadCatalog(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	cat, err := c.Category(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, cat)
}

func (s *Server) handleCategoryTools(w http.ResponseWriter, r *http.Request) {
	c, err := s.loadCatalog(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	tools, err := c.CategoryTools(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, tools)
}

func (s *Server) handleTool(w http.ResponseWriter, r *http.Request) {
	c, err := s.loadCatalog(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	t, err := c.Tool(chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if err := errors.ValidateQuery(q); err != nil {
		s.writeError(w, r, err)
		return
	}
	c, err := s.loadCatalog(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c.Search(q))
}

func (s *Server) handleSunburstData(w http.ResponseWriter, r *http.Request) {
	c, err := s.loadCatalog(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, c.Tree())
}

func (s *Server) handleVideo(w http.ResponseWriter, r *http.Request) {
	v, _ := catalog.Demo(chi.URLParam(r, "name"))
	writeJSON(w, http.StatusOK, v)
}
