package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/osei-labs/adesua/internal/analytics"
	"github.com/osei-labs/adesua/internal/models"
	"github.com/osei-labs/adesua/internal/search"
)

// engineFor resolves the catalog key from the URL. Writes a 404 and returns
// nil when the catalog does not exist.
func (s *Server) engineFor(w http.ResponseWriter, r *http.Request) *search.Engine {
	key := chi.URLParam(r, "key")
	engine, ok := s.hub.Get(key)
	if !ok {
		s.respondError(w, http.StatusNotFound, "catalog not found")
		return nil
	}
	return engine
}

type catalogSummary struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	Resources int    `json:"resources"`
}

func (s *Server) handleListCatalogs(w http.ResponseWriter, r *http.Request) {
	summaries := []*catalogSummary{}
	for _, key := range s.hub.Keys() {
		engine, ok := s.hub.Get(key)
		if !ok {
			continue
		}
		cat := engine.Catalog()
		summaries = append(summaries, &catalogSummary{Key: cat.Key(), Name: cat.Name(), Resources: cat.Len()})
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"catalogs": summaries})
}

func (s *Server) handleListResources(w http.ResponseWriter, r *http.Request) {
	engine := s.engineFor(w, r)
	if engine == nil {
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"resources": engine.Catalog().AllResources()})
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	engine := s.engineFor(w, r)
	if engine == nil {
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"categories": engine.Catalog().Categories()})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	engine := s.engineFor(w, r)
	if engine == nil {
		return
	}
	var query models.SearchQuery
	if err := json.NewDecoder(r.Body).Decode(&query); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	s.logger.Debug("search request",
		zap.String("catalog", chi.URLParam(r, "key")),
		zap.String("query", query.Query),
		zap.Int("limit", query.Limit),
	)
	s.respondJSON(w, http.StatusOK, engine.Search(&query))
}

func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	engine := s.engineFor(w, r)
	if engine == nil {
		return
	}
	suggestions := engine.Suggest(r.URL.Query().Get("q"))
	if suggestions == nil {
		suggestions = []*models.Suggestion{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"suggestions": suggestions})
}

type clickRequest struct {
	ResourceID string `json:"resource_id"`
}

func (s *Server) handleRecordClick(w http.ResponseWriter, r *http.Request) {
	engine := s.engineFor(w, r)
	if engine == nil {
		return
	}
	var req clickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ResourceID == "" {
		s.respondError(w, http.StatusBadRequest, "resource_id is required")
		return
	}
	if err := engine.RecordClick(req.ResourceID); err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]string{"resource_id": req.ResourceID, "status": "recorded"})
}

func (s *Server) handleHistory(w http.ResponseWriter, r *http.Request) {
	engine := s.engineFor(w, r)
	if engine == nil {
		return
	}
	entries := engine.History().Entries()
	if entries == nil {
		entries = []string{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"history": entries})
}

func (s *Server) handleStartSession(w http.ResponseWriter, r *http.Request) {
	engine := s.engineFor(w, r)
	if engine == nil {
		return
	}
	id := engine.Analytics().StartSession()
	s.respondJSON(w, http.StatusCreated, map[string]string{"session_id": id})
}

func (s *Server) handleEndSession(w http.ResponseWriter, r *http.Request) {
	engine := s.engineFor(w, r)
	if engine == nil {
		return
	}
	engine.Analytics().EndSession()
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ended"})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type catalogStatus struct {
	Key       string `json:"key"`
	Resources int    `json:"resources"`
	Queries   int    `json:"queries"`
	Clicks    int    `json:"clicks"`
	Sessions  int    `json:"sessions"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	statuses := []*catalogStatus{}
	for _, key := range s.hub.Keys() {
		engine, ok := s.hub.Get(key)
		if !ok {
			continue
		}
		queries, clicks, sessions := engine.Analytics().Counts()
		statuses = append(statuses, &catalogStatus{
			Key:       key,
			Resources: engine.Catalog().Len(),
			Queries:   queries,
			Clicks:    clicks,
			Sessions:  sessions,
		})
	}
	resp := map[string]interface{}{
		"catalogs":         statuses,
		"database_path":    s.config.Storage.DatabasePath,
		"disk_usage_bytes": analytics.DatabaseSizeBytes(s.config.Storage.DatabasePath),
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
