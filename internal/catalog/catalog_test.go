package catalog

import (
	"testing"

	"github.com/osei-labs/adesua/internal/models"
)

func validCategories() []Category {
	return []Category{
		{
			Name: "Exam Prep",
			Resources: []*models.ResourceRecord{
				{ID: "bece-pasco", Title: "BECE PASCO", Level: models.LevelIntermediate},
				{ID: "mock-exams", Title: "Mock Exams", Category: "Practice"},
			},
		},
		{
			Name: "Life Skills",
			Resources: []*models.ResourceRecord{
				{ID: "savings-guide", Title: "Savings Guide", Level: models.LevelBeginner},
			},
		},
	}
}

func TestNew(t *testing.T) {
	cat, err := New("students-hub", "Students Hub", validCategories(), []*models.IntentDefinition{
		{Key: "exam_prep", DisplayName: "Exam Preparation", BoostedCategories: []string{"Exam Prep"}},
	})
	if err != nil {
		t.Fatalf("valid catalog rejected: %v", err)
	}

	if cat.Key() != "students-hub" || cat.Name() != "Students Hub" {
		t.Errorf("key/name: got %q/%q", cat.Key(), cat.Name())
	}
	if cat.Len() != 3 {
		t.Errorf("resource count: got %d, want 3", cat.Len())
	}

	res, ok := cat.Resource("bece-pasco")
	if !ok {
		t.Fatal("resource bece-pasco not found by id")
	}
	if res.Category != "Exam Prep" {
		t.Errorf("empty category not defaulted to containing category: got %q", res.Category)
	}

	// An explicit category on the record is left alone.
	res, _ = cat.Resource("mock-exams")
	if res.Category != "Practice" {
		t.Errorf("explicit category overwritten: got %q", res.Category)
	}
}

func TestNew_Invalid(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		categories []Category
		intents    []*models.IntentDefinition
	}{
		{
			name: "missing key",
			key:  "",
		},
		{
			name: "duplicate resource id",
			key:  "k",
			categories: []Category{{Name: "A", Resources: []*models.ResourceRecord{
				{ID: "r1", Title: "One"},
				{ID: "r1", Title: "Two"},
			}}},
		},
		{
			name: "unknown level",
			key:  "k",
			categories: []Category{{Name: "A", Resources: []*models.ResourceRecord{
				{ID: "r1", Title: "One", Level: "expert"},
			}}},
		},
		{
			name:       "category without name",
			key:        "k",
			categories: []Category{{Resources: []*models.ResourceRecord{{ID: "r1"}}}},
		},
		{
			name:    "duplicate intent key",
			key:     "k",
			intents: []*models.IntentDefinition{{Key: "i"}, {Key: "i"}},
		},
		{
			name:    "intent boosting unknown category",
			key:     "k",
			intents: []*models.IntentDefinition{{Key: "i", BoostedCategories: []string{"Nope"}}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.key, "Name", tt.categories, tt.intents); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}

func TestAllResourcesIsACopy(t *testing.T) {
	cat, err := New("k", "Name", validCategories(), nil)
	if err != nil {
		t.Fatal(err)
	}
	all := cat.AllResources()
	all[0] = nil
	if res, ok := cat.Resource("bece-pasco"); !ok || res == nil {
		t.Error("mutating the returned slice affected the catalog")
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	if r.Len() != 0 {
		t.Fatalf("new registry not empty: %d", r.Len())
	}

	a, _ := New("a", "A", nil, nil)
	b, _ := New("b", "B", nil, nil)
	r.Put(a)
	r.Put(b)

	if got, ok := r.Get("a"); !ok || got.Key() != "a" {
		t.Errorf("Get(a): %v %v", got, ok)
	}
	if keys := r.Keys(); len(keys) != 2 || keys[0] != "a" || keys[1] != "b" {
		t.Errorf("keys: %v", keys)
	}

	// Put with an existing key replaces the catalog in place.
	a2, _ := New("a", "A v2", nil, nil)
	r.Put(a2)
	if got, _ := r.Get("a"); got.Name() != "A v2" {
		t.Errorf("replacement not visible: %q", got.Name())
	}
	if keys := r.Keys(); len(keys) != 2 {
		t.Errorf("replace changed key count: %v", keys)
	}

	r.Remove("a")
	if _, ok := r.Get("a"); ok {
		t.Error("Get after Remove succeeded")
	}
	if r.Len() != 1 {
		t.Errorf("len after remove: %d", r.Len())
	}
}
