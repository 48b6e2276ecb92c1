// Package cli provides output helpers for the Adesua command line.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/osei-labs/adesua/internal/models"
	"github.com/osei-labs/adesua/pkg/utils"
)

// OutputFormat is the format for CLI output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// ParseFormat maps a flag value to an OutputFormat.
func ParseFormat(s string) (OutputFormat, error) {
	switch s {
	case "", "text":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	}
	return "", fmt.Errorf("unknown output format %q; use text or json", s)
}

// WriteSearchResults writes a search response to w in the given format.
func WriteSearchResults(w io.Writer, response *models.SearchResponse, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(response)
	}
	writeSearchResultsText(w, response)
	return nil
}

func writeSearchResultsText(w io.Writer, response *models.SearchResponse) {
	fmt.Fprintf(w, "\nFound %d results in %dms\n", response.Total, response.QueryTime)
	if intent := response.DetectedIntent; intent != nil {
		fmt.Fprintf(w, "Detected intent: %s (%.0f%%, matched: %s)\n",
			intent.DisplayName, intent.Confidence*100, strings.Join(intent.MatchedKeywords, ", "))
	}
	fmt.Fprintln(w)
	for _, result := range response.Results {
		fmt.Fprintf(w, "─────────────────────────────────────────────────────────\n")
		fmt.Fprintf(w, "Rank: %d | Score: %.1f | %s\n", result.Rank, result.RelevanceScore, result.Resource.Category)
		fmt.Fprintf(w, "%s\n", result.Resource.Title)
		fmt.Fprintf(w, "%s\n", result.Resource.URL)
		if result.Resource.Description != "" {
			fmt.Fprintf(w, "%s\n", utils.Truncate(result.Resource.Description, 200))
		}
		if len(result.MatchedTerms) > 0 {
			fmt.Fprintf(w, "Matched: %s\n", strings.Join(result.MatchedTerms, ", "))
		}
		fmt.Fprintln(w)
	}
}

// WriteSuggestions writes suggestions to w in the given format.
func WriteSuggestions(w io.Writer, suggestions []*models.Suggestion, format OutputFormat) error {
	if format == OutputJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(suggestions)
	}
	for _, s := range suggestions {
		fmt.Fprintf(w, "%-10s %s\n", s.Source, s.Text)
	}
	return nil
}
