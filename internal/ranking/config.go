// Package ranking computes relevance scores for resources against a query.
package ranking

// Config holds all tunable constants for the relevance scorer.
type Config struct {
	// Per-token scores
	TitleTermScore       float64 `yaml:"title_term_score"`       // default: 10
	DescriptionTermScore float64 `yaml:"description_term_score"` // default: 5
	KeywordTermScore     float64 `yaml:"keyword_term_score"`     // default: 8

	// Full-phrase bonuses (the whole query as a substring)
	TitlePhraseScore       float64 `yaml:"title_phrase_score"`       // default: 25
	DescriptionPhraseScore float64 `yaml:"description_phrase_score"` // default: 15

	// Intent boosts, each scaled by detection confidence
	CategoryBoostWeight      float64 `yaml:"category_boost_weight"`       // default: 25
	IntentKeywordBoostWeight float64 `yaml:"intent_keyword_boost_weight"` // default: 18
	BeginnerBoostWeight      float64 `yaml:"beginner_boost_weight"`       // default: 25

	// BeginnerIntentKey is the intent that triggers the beginner-level boost.
	BeginnerIntentKey string `yaml:"beginner_intent_key"` // default: "beginner"
}

// DefaultConfig returns the default scoring configuration.
func DefaultConfig() *Config {
	return &Config{
		TitleTermScore:       10,
		DescriptionTermScore: 5,
		KeywordTermScore:     8,

		TitlePhraseScore:       25,
		DescriptionPhraseScore: 15,

		CategoryBoostWeight:      25,
		IntentKeywordBoostWeight: 18,
		BeginnerBoostWeight:      25,

		BeginnerIntentKey: "beginner",
	}
}

// ApplyDefaults fills in zero values with defaults.
func (c *Config) ApplyDefaults() {
	defaults := DefaultConfig()

	if c.TitleTermScore == 0 {
		c.TitleTermScore = defaults.TitleTermScore
	}
	if c.DescriptionTermScore == 0 {
		c.DescriptionTermScore = defaults.DescriptionTermScore
	}
	if c.KeywordTermScore == 0 {
		c.KeywordTermScore = defaults.KeywordTermScore
	}
	if c.TitlePhraseScore == 0 {
		c.TitlePhraseScore = defaults.TitlePhraseScore
	}
	if c.DescriptionPhraseScore == 0 {
		c.DescriptionPhraseScore = defaults.DescriptionPhraseScore
	}
	if c.CategoryBoostWeight == 0 {
		c.CategoryBoostWeight = defaults.CategoryBoostWeight
	}
	if c.IntentKeywordBoostWeight == 0 {
		c.IntentKeywordBoostWeight = defaults.IntentKeywordBoostWeight
	}
	if c.BeginnerBoostWeight == 0 {
		c.BeginnerBoostWeight = defaults.BeginnerBoostWeight
	}
	if c.BeginnerIntentKey == "" {
		c.BeginnerIntentKey = defaults.BeginnerIntentKey
	}
}
