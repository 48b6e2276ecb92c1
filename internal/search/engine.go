// Package search provides the search orchestrator tying together the catalog,
// intent classifier, relevance scorer, analytics, and history.
package search

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/osei-labs/adesua/internal/analytics"
	"github.com/osei-labs/adesua/internal/catalog"
	"github.com/osei-labs/adesua/internal/config"
	"github.com/osei-labs/adesua/internal/history"
	"github.com/osei-labs/adesua/internal/intent"
	"github.com/osei-labs/adesua/internal/models"
	"github.com/osei-labs/adesua/internal/ranking"
)

// Engine runs searches over one catalog. It is a stateless request/response
// computation: it must tolerate being invoked on every keystroke, any
// debouncing belongs to the caller.
type Engine struct {
	catalog    *catalog.Catalog
	classifier *intent.Classifier
	scorer     *ranking.Scorer
	analytics  *analytics.Store
	history    *history.History
	logger     *zap.Logger
}

// NewEngine creates an engine for cat with injected analytics and history
// stores. The classifier and scorer are built from the catalog's intent table
// and the search configuration.
func NewEngine(cat *catalog.Catalog, store *analytics.Store, hist *history.History, cfg *config.SearchConfig, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		catalog:    cat,
		classifier: intent.NewClassifier(cat.Intents(), cfg.IntentThreshold),
		scorer:     ranking.NewScorer(&cfg.Ranking),
		analytics:  store,
		history:    hist,
		logger:     logger,
	}
}

// NewEngineForCatalog wires an engine with per-catalog analytics and history
// keys on the shared backend.
func NewEngineForCatalog(cat *catalog.Catalog, backend analytics.Backend, cfg *config.SearchConfig, logger *zap.Logger) *Engine {
	store := analytics.NewStore(backend, AnalyticsKey(cat.Key()), cfg.SessionLimit, logger)
	hist := history.New(backend, HistoryKey(cat.Key()), cfg.HistorySize, logger)
	return NewEngine(cat, store, hist, cfg, logger)
}

// AnalyticsKey returns the backend key for a catalog's analytics state.
func AnalyticsKey(catalogKey string) string { return "analytics:" + catalogKey }

// HistoryKey returns the backend key for a catalog's search history.
func HistoryKey(catalogKey string) string { return "history:" + catalogKey }

// Search runs a query: records it, classifies intent, scores every catalog
// resource, filters zero scores, and returns results sorted by descending
// relevance with catalog order preserved on ties. A blank query returns an
// empty response and records nothing.
func (e *Engine) Search(query *models.SearchQuery) *models.SearchResponse {
	startTime := time.Now()
	response := &models.SearchResponse{
		Results: []*models.SearchResult{},
		Query:   query.Query,
	}

	trimmed := strings.TrimSpace(query.Query)
	if trimmed == "" {
		response.QueryTime = time.Since(startTime).Milliseconds()
		return response
	}
	query.Validate()

	e.analytics.RecordQuery(trimmed)
	e.history.Record(trimmed)

	detected := e.classifier.Classify(trimmed)
	response.DetectedIntent = detected

	var results []*models.SearchResult
	for _, res := range e.catalog.AllResources() {
		score, matched := e.scorer.Score(res, trimmed, detected, e.analytics.PopularityBoost(res.ID))
		if score > 0 {
			results = append(results, &models.SearchResult{
				Resource:       res,
				RelevanceScore: score,
				MatchedTerms:   matched,
			})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].RelevanceScore > results[j].RelevanceScore
	})

	response.Total = len(results)
	start := query.Offset
	end := query.Offset + query.Limit
	if start > len(results) {
		start = len(results)
	}
	if end > len(results) {
		end = len(results)
	}
	if end < start {
		// offset + limit overflowed
		end = start
	}
	for i, result := range results[start:end] {
		result.Rank = start + i + 1
		response.Results = append(response.Results, result)
	}

	response.QueryTime = time.Since(startTime).Milliseconds()
	e.logger.Debug("search executed",
		zap.String("catalog", e.catalog.Key()),
		zap.String("query", trimmed),
		zap.Int("total", response.Total),
		zap.Bool("intent_detected", detected != nil),
	)
	return response
}

// RecordClick records that a resource was selected. Returns an error only for
// an unknown resource id; the analytics write itself is best-effort.
func (e *Engine) RecordClick(resourceID string) error {
	if _, ok := e.catalog.Resource(resourceID); !ok {
		return fmt.Errorf("unknown resource: %s", resourceID)
	}
	e.analytics.RecordClick(resourceID)
	return nil
}

// Catalog returns the catalog this engine searches.
func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }

// Analytics returns the engine's analytics store.
func (e *Engine) Analytics() *analytics.Store { return e.analytics }

// History returns the engine's search history.
func (e *Engine) History() *history.History { return e.history }
