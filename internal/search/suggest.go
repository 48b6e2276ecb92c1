package search

import (
	"strings"

	"github.com/osei-labs/adesua/internal/models"
)

// Suggestion source caps and the overall cap are contractual: history first,
// then resource titles, then intent display names, at most five in total.
const (
	suggestHistoryLimit  = 2
	suggestResourceLimit = 3
	suggestIntentLimit   = 2
	suggestTotalLimit    = 5
)

// Suggest returns completions for a partial query, in priority order. A blank
// partial yields no suggestions. Duplicate texts across sources are collapsed,
// keeping the higher-priority source.
func (e *Engine) Suggest(partial string) []*models.Suggestion {
	trimmed := strings.TrimSpace(partial)
	if trimmed == "" {
		return nil
	}
	lower := strings.ToLower(trimmed)

	var suggestions []*models.Suggestion
	seen := make(map[string]bool)
	add := func(text string, source models.SuggestionSource) bool {
		key := strings.ToLower(text)
		if seen[key] {
			return len(suggestions) < suggestTotalLimit
		}
		seen[key] = true
		suggestions = append(suggestions, &models.Suggestion{Text: text, Source: source})
		return len(suggestions) < suggestTotalLimit
	}

	for _, entry := range e.history.Matching(trimmed, suggestHistoryLimit) {
		if !add(entry, models.SuggestionHistory) {
			return suggestions
		}
	}

	titleCount := 0
	for _, res := range e.catalog.AllResources() {
		if titleCount == suggestResourceLimit {
			break
		}
		if strings.Contains(strings.ToLower(res.Title), lower) {
			titleCount++
			if !add(res.Title, models.SuggestionResource) {
				return suggestions
			}
		}
	}

	intentCount := 0
	for _, def := range e.classifier.Definitions() {
		if intentCount == suggestIntentLimit {
			break
		}
		if strings.Contains(strings.ToLower(def.DisplayName), lower) {
			intentCount++
			if !add(def.DisplayName, models.SuggestionIntent) {
				return suggestions
			}
		}
	}

	return suggestions
}
