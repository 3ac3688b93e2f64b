package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ziadkadry99/patternbook/internal/patterns"
)

// patternItem is one entry in the /api/patterns response.
type patternItem struct {
	Name   string `json:"name"`
	Label  string `json:"label"`
	Title  string `json:"title"`
	Anchor string `json:"anchor"`
}

// handlePage renders the full pattern page. The directory is scanned on
// every request; when it cannot be read the page still renders, with an
// error notice and no patterns.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	snippets, listErr := patterns.List(s.cfg.PatternsDir, s.cfg.List)

	var buf bytes.Buffer
	if err := s.renderer.RenderDocument(&buf, snippets, listErr); err != nil {
		s.logger.Error("rendering pattern page", "error", err)
		http.Error(w, "rendering pattern page failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if listErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
	}
	w.Write(buf.Bytes())
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	snippets, err := patterns.List(s.cfg.PatternsDir, s.cfg.List)
	if err != nil {
		s.logger.Error("listing patterns", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	items := make([]patternItem, len(snippets))
	for i, sn := range snippets {
		items[i] = patternItem{
			Name:   sn.Name,
			Label:  sn.Label,
			Title:  sn.Title(),
			Anchor: sn.Anchor,
		}
	}
	writeJSON(w, http.StatusOK, items)
}

// handleSource returns a snippet's raw source as plain text.
func (s *Server) handleSource(w http.ResponseWriter, r *http.Request) {
	anchor := chi.URLParam(r, "anchor")

	sn, err := patterns.Find(s.cfg.PatternsDir, s.cfg.List, anchor)
	if errors.Is(err, patterns.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		s.logger.Error("finding pattern", "anchor", anchor, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	raw, err := patterns.ReadRawSource(sn)
	if err != nil {
		s.logger.Warn("reading pattern source", "snippet", sn.Name, "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Write(raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
