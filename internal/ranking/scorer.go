package ranking

import (
	"strings"

	"github.com/osei-labs/adesua/internal/models"
	"github.com/osei-labs/adesua/pkg/utils"
)

// minTokenLen is the minimum token length considered for matching.
// Single-character tokens are too noisy to score.
const minTokenLen = 2

// Scorer computes a resource's relevance for a query and an optional detected
// intent. Scoring is pure: the popularity contribution is passed in as a
// snapshot value, so the same inputs always produce the same score.
type Scorer struct {
	config *Config
}

// NewScorer creates a Scorer with the given configuration.
func NewScorer(config *Config) *Scorer {
	if config == nil {
		config = DefaultConfig()
	}
	config.ApplyDefaults()
	return &Scorer{config: config}
}

// Score returns the relevance score for res and the query tokens that matched.
// A zero score means "no match of any kind": the resource must not appear in
// results, and popularity alone never lifts a resource above zero.
func (s *Scorer) Score(res *models.ResourceRecord, query string, detected *models.DetectedIntent, popularity float64) (float64, []string) {
	if res == nil {
		return 0, nil
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return 0, nil
	}

	title := strings.ToLower(res.Title)
	description := strings.ToLower(res.Description)

	score := 0.0
	var matched []string
	for _, token := range utils.Tokenize(q, minTokenLen) {
		hit := false
		if strings.Contains(title, token) {
			score += s.config.TitleTermScore
			hit = true
		}
		if strings.Contains(description, token) {
			score += s.config.DescriptionTermScore
			hit = true
		}
		if keywordContains(res.Keywords, token) {
			score += s.config.KeywordTermScore
			hit = true
		}
		if hit {
			matched = append(matched, token)
		}
	}

	if strings.Contains(title, q) {
		score += s.config.TitlePhraseScore
	}
	if strings.Contains(description, q) {
		score += s.config.DescriptionPhraseScore
	}

	if detected != nil {
		score += s.intentBoost(res, detected)
	}

	if score > 0 {
		score += popularity
	}
	return score, matched
}

// intentBoost returns the additive boost for a resource given a detected intent.
// All three boosts scale with detection confidence.
func (s *Scorer) intentBoost(res *models.ResourceRecord, detected *models.DetectedIntent) float64 {
	boost := 0.0
	confidence := detected.Confidence

	if detected.Definition != nil && containsFold(detected.Definition.BoostedCategories, res.Category) {
		boost += s.config.CategoryBoostWeight * confidence
	}
	if keywordsOverlap(res.Keywords, detected.MatchedKeywords) {
		boost += s.config.IntentKeywordBoostWeight * confidence
	}
	if detected.IntentKey == s.config.BeginnerIntentKey && res.Level == models.LevelBeginner {
		boost += s.config.BeginnerBoostWeight * confidence
	}
	return boost
}

// keywordContains reports whether token occurs as a substring of any keyword.
func keywordContains(keywords []string, token string) bool {
	for _, kw := range keywords {
		if strings.Contains(strings.ToLower(kw), token) {
			return true
		}
	}
	return false
}

// keywordsOverlap reports whether any resource keyword case-insensitively
// equals any of the intent's matched keywords.
func keywordsOverlap(keywords, matched []string) bool {
	for _, kw := range keywords {
		for _, m := range matched {
			if strings.EqualFold(kw, m) {
				return true
			}
		}
	}
	return false
}

// containsFold reports whether list contains s, case-insensitively.
func containsFold(list []string, s string) bool {
	for _, item := range list {
		if strings.EqualFold(item, s) {
			return true
		}
	}
	return false
}

// GetConfig returns the scoring configuration.
func (s *Scorer) GetConfig() *Config {
	return s.config
}
