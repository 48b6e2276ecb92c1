// Package models defines core data structures for resources, intents, and search results.
package models

// Level indicates the difficulty level of a resource.
type Level string

const (
	// LevelBeginner marks resources suitable for students just starting a topic.
	LevelBeginner Level = "Beginner"
	// LevelIntermediate marks resources for students with some grounding.
	LevelIntermediate Level = "Intermediate"
	// LevelAdvanced marks resources for students preparing beyond the syllabus.
	LevelAdvanced Level = "Advanced"
)

// Valid reports whether l is one of the known levels. The empty level is valid
// (level is optional on a resource).
func (l Level) Valid() bool {
	switch l {
	case "", LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// ResourceRecord is one catalog entry: an external link or internal page that
// search can surface. Records are defined at startup and never mutated.
type ResourceRecord struct {
	ID          string   `json:"id" yaml:"id"`
	Title       string   `json:"title" yaml:"title"`
	Description string   `json:"description" yaml:"description"`
	URL         string   `json:"url" yaml:"url"`
	Category    string   `json:"category" yaml:"category"`
	Keywords    []string `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Level       Level    `json:"level,omitempty" yaml:"level,omitempty"`
}
