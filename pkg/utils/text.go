// Package utils provides shared utilities for text and logging.
package utils

import (
	"strings"
	"unicode"
)

// Truncate returns s truncated to maxLen characters, with "..." appended if truncated.
// If maxLen is 0 or negative, returns s unchanged.
func Truncate(s string, maxLen int) string {
	if maxLen <= 0 || len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Tokenize lowercases s, splits it on whitespace, strips leading and trailing
// punctuation from each token (internal hyphens and underscores are kept), and
// drops tokens shorter than minLen. Duplicates are removed, first occurrence wins.
func Tokenize(s string, minLen int) []string {
	words := strings.Fields(strings.ToLower(s))
	seen := make(map[string]bool, len(words))
	tokens := make([]string, 0, len(words))
	for _, word := range words {
		token := strings.TrimFunc(word, func(r rune) bool {
			return unicode.IsPunct(r) && r != '-' && r != '_'
		})
		if len(token) < minLen || seen[token] {
			continue
		}
		seen[token] = true
		tokens = append(tokens, token)
	}
	return tokens
}
