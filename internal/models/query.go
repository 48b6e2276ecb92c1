package models

// SearchQuery represents a search request.
type SearchQuery struct {
	Query  string `json:"query"`
	Limit  int    `json:"limit,omitempty"`
	Offset int    `json:"offset,omitempty"`
}

// Validate normalizes limit and offset. An empty query is not an error: the
// engine answers it with an empty result list without touching analytics.
func (q *SearchQuery) Validate() {
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}
