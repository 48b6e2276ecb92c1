package utils

import (
	"reflect"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		maxLen int
		want   string
	}{
		{"shorter than max", "hello", 10, "hello"},
		{"exactly max", "hello", 5, "hello"},
		{"truncated", "hello world", 5, "hello..."},
		{"zero max returns unchanged", "hello", 0, "hello"},
		{"negative max returns unchanged", "hello", -1, "hello"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.s, tt.maxLen); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.s, tt.maxLen, got, tt.want)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	tests := []struct {
		name   string
		s      string
		minLen int
		want   []string
	}{
		{"basic split", "bece past questions", 2, []string{"bece", "past", "questions"}},
		{"lowercases", "BECE Pasco", 2, []string{"bece", "pasco"}},
		{"drops short tokens", "a an the exam", 3, []string{"the", "exam"}},
		{"strips edge punctuation", "maths, science.", 2, []string{"maths", "science"}},
		{"keeps internal hyphen", "e-learning", 2, []string{"e-learning"}},
		{"dedupe keeps first", "exam exam prep", 2, []string{"exam", "prep"}},
		{"empty", "", 2, []string{}},
		{"whitespace only", "   ", 2, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.s, tt.minLen)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q, %d) = %v, want %v", tt.s, tt.minLen, got, tt.want)
			}
		})
	}
}
