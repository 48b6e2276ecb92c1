package analytics

import (
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	// popularityPerClick is the score contribution of one click.
	popularityPerClick = 0.5
	// popularityCap bounds the popularity boost so clicks alone cannot
	// dominate text relevance.
	popularityCap = 10.0

	// defaultSessionLimit bounds retained sessions; oldest evicted first.
	defaultSessionLimit = 20
)

// Store keeps the analytics state for one catalog and writes it through to the
// backend on every mutation. All persistence failures are best-effort: they are
// logged and never surfaced to callers, since analytics is an enhancement, not
// a correctness requirement.
type Store struct {
	backend      Backend
	key          string
	sessionLimit int
	logger       *zap.Logger

	mu    sync.Mutex
	state *State
}

// NewStore creates a store persisting under key. Existing state is loaded from
// the backend; a missing, unreadable, or corrupt value yields a fresh state.
func NewStore(backend Backend, key string, sessionLimit int, logger *zap.Logger) *Store {
	if sessionLimit <= 0 {
		sessionLimit = defaultSessionLimit
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Store{
		backend:      backend,
		key:          key,
		sessionLimit: sessionLimit,
		logger:       logger,
		state:        NewState(),
	}
	s.load()
	return s
}

func (s *Store) load() {
	data, found, err := s.backend.Load(s.key)
	if err != nil {
		s.logger.Warn("analytics load failed, starting fresh", zap.String("key", s.key), zap.Error(err))
		return
	}
	if !found {
		return
	}
	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warn("analytics state corrupt, starting fresh", zap.String("key", s.key), zap.Error(err))
		return
	}
	state.normalize()
	s.state = &state
}

// RecordQuery increments the counter for the normalized query and appends the
// raw query to the active session, if one is open. Blank queries are ignored.
func (s *Store) RecordQuery(query string) {
	normalized := NormalizeQuery(query)
	if normalized == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, ok := s.state.Queries[normalized]
	if !ok {
		stats = &QueryStats{}
		s.state.Queries[normalized] = stats
	}
	stats.Count++
	stats.LastSeen = time.Now()

	if session := s.openSessionLocked(); session != nil {
		session.Queries = append(session.Queries, query)
	}
	s.flushLocked()
}

// RecordClick increments the click counter for a resource.
func (s *Store) RecordClick(resourceID string) {
	if resourceID == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, ok := s.state.Clicks[resourceID]
	if !ok {
		stats = &ClickStats{}
		s.state.Clicks[resourceID] = stats
	}
	stats.Count++
	stats.LastClick = time.Now()
	s.flushLocked()
}

// StartSession opens a new session and returns its id. The oldest session is
// evicted when the bound is exceeded.
func (s *Store) StartSession() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := &Session{ID: uuid.NewString(), StartedAt: time.Now()}
	s.state.Sessions = append(s.state.Sessions, session)
	if overflow := len(s.state.Sessions) - s.sessionLimit; overflow > 0 {
		s.state.Sessions = s.state.Sessions[overflow:]
	}
	s.flushLocked()
	return session.ID
}

// EndSession closes the most recent open session, if any.
func (s *Store) EndSession() {
	s.mu.Lock()
	defer s.mu.Unlock()

	session := s.openSessionLocked()
	if session == nil {
		return
	}
	now := time.Now()
	session.EndedAt = &now
	s.flushLocked()
}

func (s *Store) openSessionLocked() *Session {
	for i := len(s.state.Sessions) - 1; i >= 0; i-- {
		if s.state.Sessions[i].EndedAt == nil {
			return s.state.Sessions[i]
		}
	}
	return nil
}

// PopularityBoost returns the ranking contribution of a resource's click
// history: a saturating function of click count with diminishing influence,
// capped at popularityCap.
func (s *Store) PopularityBoost(resourceID string) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	stats, ok := s.state.Clicks[resourceID]
	if !ok {
		return 0
	}
	boost := float64(stats.Count) * popularityPerClick
	if boost > popularityCap {
		boost = popularityCap
	}
	return boost
}

// ClickCount returns the cumulative clicks for a resource.
func (s *Store) ClickCount(resourceID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stats, ok := s.state.Clicks[resourceID]; ok {
		return stats.Count
	}
	return 0
}

// QueryCount returns the cumulative count for a normalized query.
func (s *Store) QueryCount(query string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if stats, ok := s.state.Queries[NormalizeQuery(query)]; ok {
		return stats.Count
	}
	return 0
}

// Counts returns the number of distinct queries, clicked resources, and
// retained sessions, for the status endpoint.
func (s *Store) Counts() (queries, clicks, sessions int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.state.Queries), len(s.state.Clicks), len(s.state.Sessions)
}

// flushLocked writes the full state through to the backend. Failures are
// logged, never returned: the in-memory state stays authoritative.
func (s *Store) flushLocked() {
	data, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Warn("analytics marshal failed", zap.String("key", s.key), zap.Error(err))
		return
	}
	if err := s.backend.Persist(s.key, data); err != nil {
		s.logger.Warn("analytics persist failed", zap.String("key", s.key), zap.Error(err))
	}
}

// NormalizeQuery lowercases and trims a query for use as a counter key.
func NormalizeQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}
