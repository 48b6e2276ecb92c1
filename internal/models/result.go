package models

// SearchResult is a resource with its computed relevance for one query.
// Created fresh for every search invocation, never cached.
type SearchResult struct {
	Resource       *ResourceRecord `json:"resource"`
	RelevanceScore float64         `json:"relevance_score"`
	MatchedTerms   []string        `json:"matched_terms,omitempty"`
	Rank           int             `json:"rank"`
}

// SearchResponse is the response for a search request. Results are ordered by
// descending relevance; ties keep catalog order. DetectedIntent may be set even
// when Results is empty (intent detection is independent of catalog coverage).
type SearchResponse struct {
	Results        []*SearchResult `json:"results"`
	DetectedIntent *DetectedIntent `json:"detected_intent,omitempty"`
	Total          int             `json:"total"`
	QueryTime      int64           `json:"query_time_ms"`
	Query          string          `json:"query"`
}

// SuggestionSource identifies where a suggestion came from.
type SuggestionSource string

const (
	// SuggestionHistory is a previously issued query.
	SuggestionHistory SuggestionSource = "history"
	// SuggestionResource is a matching resource title.
	SuggestionResource SuggestionSource = "resource"
	// SuggestionIntent is a matching intent display name.
	SuggestionIntent SuggestionSource = "intent"
)

// Suggestion is one autocomplete suggestion for a partial query.
type Suggestion struct {
	Text   string           `json:"text"`
	Source SuggestionSource `json:"source"`
}
