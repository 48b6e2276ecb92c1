package models

// IntentDefinition is one entry in a catalog's intent table: a coarse topic
// label with the trigger keywords that map a free-text query onto it and the
// categories it should rank higher.
type IntentDefinition struct {
	Key               string   `json:"key" yaml:"key"`
	DisplayName       string   `json:"display_name" yaml:"display_name"`
	Keywords          []string `json:"keywords" yaml:"keywords"`
	BoostedCategories []string `json:"boosted_categories,omitempty" yaml:"boosted_categories,omitempty"`
}

// DetectedIntent is the best-guess intent for a single query. At most one is
// produced per query, and only when confidence clears the acceptance threshold.
type DetectedIntent struct {
	IntentKey       string   `json:"intent_key"`
	DisplayName     string   `json:"display_name"`
	Confidence      float64  `json:"confidence"`
	MatchedKeywords []string `json:"matched_keywords"`

	// Definition is the intent table entry this detection came from, carried
	// along so scoring can consult the boosted categories without a lookup.
	Definition *IntentDefinition `json:"-"`
}
