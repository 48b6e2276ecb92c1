// Package intent classifies free-text queries against a catalog's intent table.
package intent

import (
	"strings"

	"github.com/osei-labs/adesua/internal/models"
	"github.com/osei-labs/adesua/pkg/utils"
)

const (
	// DefaultThreshold is the minimum confidence for a detection to be reported.
	DefaultThreshold = 0.30

	// multiMatchBonus is added per matched keyword beyond the first.
	multiMatchBonus = 0.1
	// specificityBonus is added when a matched keyword is longer than
	// specificityMinLen, rewarding specific phrases over short generic words.
	specificityBonus  = 0.1
	specificityMinLen = 5

	// denominatorMinTokenLen excludes short stop-word-like tokens from the
	// confidence denominator. They still participate in matching.
	denominatorMinTokenLen = 3
)

// Classifier maps a free-text query to at most one best-matching intent.
// Classification is a pure function of the query and the static intent table.
type Classifier struct {
	definitions []*models.IntentDefinition
	threshold   float64
}

// NewClassifier creates a classifier over the given intent definitions.
// A non-positive threshold falls back to DefaultThreshold.
func NewClassifier(definitions []*models.IntentDefinition, threshold float64) *Classifier {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Classifier{definitions: definitions, threshold: threshold}
}

// Classify returns the best-matching intent for query, or nil when no intent
// clears the threshold. Ties keep the first-seen definition, so enumeration
// order of the intent table is part of the contract.
func (c *Classifier) Classify(query string) *models.DetectedIntent {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	tokenCount := len(utils.Tokenize(q, denominatorMinTokenLen))
	if tokenCount < 1 {
		tokenCount = 1
	}

	var best *models.DetectedIntent
	for _, def := range c.definitions {
		var matchedKeywords []string
		for _, kw := range def.Keywords {
			if strings.Contains(q, strings.ToLower(kw)) {
				matchedKeywords = append(matchedKeywords, kw)
			}
		}
		if len(matchedKeywords) == 0 {
			continue
		}

		confidence := float64(len(matchedKeywords)) / float64(tokenCount)
		if confidence > 1.0 {
			confidence = 1.0
		}
		if len(matchedKeywords) > 1 {
			confidence += multiMatchBonus * float64(len(matchedKeywords)-1)
		}
		for _, kw := range matchedKeywords {
			if len(kw) > specificityMinLen {
				confidence += specificityBonus
				break
			}
		}
		if confidence > 1.0 {
			confidence = 1.0
		}

		if best == nil || confidence > best.Confidence {
			best = &models.DetectedIntent{
				IntentKey:       def.Key,
				DisplayName:     def.DisplayName,
				Confidence:      confidence,
				MatchedKeywords: matchedKeywords,
				Definition:      def,
			}
		}
	}

	if best == nil || best.Confidence < c.threshold {
		return nil
	}
	return best
}

// Definitions returns the intent table the classifier operates on.
func (c *Classifier) Definitions() []*models.IntentDefinition {
	return c.definitions
}
