package intent

import (
	"reflect"
	"testing"

	"github.com/osei-labs/adesua/internal/models"
)

func testDefinitions() []*models.IntentDefinition {
	return []*models.IntentDefinition{
		{
			Key:               "exam_prep",
			DisplayName:       "Exam Preparation",
			Keywords:          []string{"bece", "pasco", "past questions", "exam", "revision"},
			BoostedCategories: []string{"Exam Preparation"},
		},
		{
			Key:               "money",
			DisplayName:       "Financial Literacy",
			Keywords:          []string{"money", "savings", "budget", "finance"},
			BoostedCategories: []string{"Financial Literacy"},
		},
		{
			Key:               "beginner",
			DisplayName:       "Getting Started",
			Keywords:          []string{"beginner", "start", "basics", "intro"},
			BoostedCategories: []string{},
		},
	}
}

func TestClassify_SingleKeyword(t *testing.T) {
	c := NewClassifier(testDefinitions(), 0)

	got := c.Classify("bece")
	if got == nil {
		t.Fatal("expected an intent for \"bece\"")
	}
	if got.IntentKey != "exam_prep" {
		t.Errorf("intent key: got %s, want exam_prep", got.IntentKey)
	}
	// One keyword over one token, no bonuses.
	if got.Confidence != 1.0 {
		t.Errorf("confidence: got %v, want 1.0", got.Confidence)
	}
	if !reflect.DeepEqual(got.MatchedKeywords, []string{"bece"}) {
		t.Errorf("matched keywords: got %v", got.MatchedKeywords)
	}
	if got.Definition == nil || got.Definition.Key != "exam_prep" {
		t.Error("definition not carried on detection")
	}

	// Repeating the term neither inflates nor dilutes confidence.
	repeated := c.Classify("bece bece")
	if repeated == nil || repeated.Confidence != 1.0 {
		t.Errorf("repeated term: got %+v, want confidence 1.0", repeated)
	}
}

func TestClassify_NoMatch(t *testing.T) {
	c := NewClassifier(testDefinitions(), 0)
	if got := c.Classify("zzz_no_match_zzz"); got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestClassify_EmptyQuery(t *testing.T) {
	c := NewClassifier(testDefinitions(), 0)
	for _, q := range []string{"", "   "} {
		if got := c.Classify(q); got != nil {
			t.Errorf("Classify(%q): expected nil, got %+v", q, got)
		}
	}
}

func TestClassify_BelowThreshold(t *testing.T) {
	c := NewClassifier(testDefinitions(), 0.30)
	// "exam" matches (4 chars, no specificity bonus) over eight counted tokens:
	// confidence 1/8, below the threshold.
	got := c.Classify("where can students find exam timetable information online")
	if got != nil {
		t.Errorf("expected nil below threshold, got confidence %v", got.Confidence)
	}
}

func TestClassify_MultiMatchBonus(t *testing.T) {
	c := NewClassifier(testDefinitions(), 0)
	// "bece pasco" matches two exam_prep keywords over two tokens:
	// base 1.0, clamped after the +0.1 multi-match bonus.
	got := c.Classify("bece pasco")
	if got == nil {
		t.Fatal("expected an intent")
	}
	if got.IntentKey != "exam_prep" {
		t.Errorf("intent key: got %s", got.IntentKey)
	}
	if got.Confidence != 1.0 {
		t.Errorf("confidence: got %v, want clamped 1.0", got.Confidence)
	}
	if len(got.MatchedKeywords) != 2 {
		t.Errorf("matched keywords: got %v", got.MatchedKeywords)
	}
}

func TestClassify_SpecificityBonus(t *testing.T) {
	// Low threshold so both detections are reported.
	c := NewClassifier(testDefinitions(), 0.01)
	// "savings" (7 chars) earns the specificity bonus; "money" (5) does not.
	withBonus := c.Classify("savings tips for school students")
	without := c.Classify("money tips for school students")
	if withBonus == nil || without == nil {
		t.Fatal("expected intents for both queries")
	}
	diff := withBonus.Confidence - without.Confidence
	if diff < 0.099 || diff > 0.101 {
		t.Errorf("specificity bonus: got diff %v, want 0.1", diff)
	}
}

func TestClassify_TieKeepsFirstSeen(t *testing.T) {
	defs := []*models.IntentDefinition{
		{Key: "first", DisplayName: "First", Keywords: []string{"shared"}},
		{Key: "second", DisplayName: "Second", Keywords: []string{"shared"}},
	}
	c := NewClassifier(defs, 0)
	got := c.Classify("shared")
	if got == nil {
		t.Fatal("expected an intent")
	}
	if got.IntentKey != "first" {
		t.Errorf("tie-break: got %s, want first (enumeration order)", got.IntentKey)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewClassifier(testDefinitions(), 0)
	first := c.Classify("bece revision help")
	for i := 0; i < 10; i++ {
		again := c.Classify("bece revision help")
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("classification not deterministic: %+v vs %+v", first, again)
		}
	}
}

func TestClassify_ShortTokensExcludedFromDenominator(t *testing.T) {
	c := NewClassifier(testDefinitions(), 0)
	// "to" and "my" are shorter than three characters and do not dilute
	// confidence; the denominator is 2 (save, money) with one keyword match.
	got := c.Classify("to save my money")
	if got == nil {
		t.Fatal("expected an intent")
	}
	if got.IntentKey != "money" {
		t.Errorf("intent key: got %s", got.IntentKey)
	}
	if got.Confidence < 0.5 {
		t.Errorf("confidence diluted by short tokens: got %v", got.Confidence)
	}
}
