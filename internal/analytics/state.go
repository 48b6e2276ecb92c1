// Package analytics provides best-effort query and click counters used as a
// weak popularity signal at ranking time.
package analytics

import "time"

// QueryStats tracks one normalized query's cumulative count.
type QueryStats struct {
	Count    int       `json:"count"`
	LastSeen time.Time `json:"last_seen"`
}

// ClickStats tracks one resource's cumulative click count.
type ClickStats struct {
	Count     int       `json:"count"`
	LastClick time.Time `json:"last_click"`
}

// Session records one user session and the raw queries issued during it.
type Session struct {
	ID        string     `json:"id"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
	Queries   []string   `json:"queries,omitempty"`
}

// State is the full persisted analytics state for one catalog. Counts are
// monotonically non-decreasing; session eviction never decrements the counts
// of retained entries.
type State struct {
	Queries  map[string]*QueryStats `json:"queries"`
	Clicks   map[string]*ClickStats `json:"clicks"`
	Sessions []*Session             `json:"sessions"`
}

// NewState returns an empty analytics state.
func NewState() *State {
	return &State{
		Queries: make(map[string]*QueryStats),
		Clicks:  make(map[string]*ClickStats),
	}
}

// normalize ensures maps exist after deserialization of older or partial state.
func (s *State) normalize() {
	if s.Queries == nil {
		s.Queries = make(map[string]*QueryStats)
	}
	if s.Clicks == nil {
		s.Clicks = make(map[string]*ClickStats)
	}
}
