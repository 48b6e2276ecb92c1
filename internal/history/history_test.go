package history

import (
	"fmt"
	"reflect"
	"testing"

	"github.com/osei-labs/adesua/internal/analytics"
)

func TestHistory_Record(t *testing.T) {
	h := New(analytics.NewMemoryBackend(), "history:test", 0, nil)

	h.Record("bece")
	h.Record("finance")
	h.Record("bece")

	want := []string{"bece", "finance"}
	if got := h.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("entries after re-issued query: got %v, want %v", got, want)
	}
}

func TestHistory_DedupeIsCaseInsensitive(t *testing.T) {
	h := New(analytics.NewMemoryBackend(), "history:test", 0, nil)

	h.Record("BECE Prep")
	h.Record("typing")
	h.Record("bece prep")

	// The newest casing wins; the earlier variant is removed.
	want := []string{"bece prep", "typing"}
	if got := h.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestHistory_EvictsOldestAtLimit(t *testing.T) {
	h := New(analytics.NewMemoryBackend(), "history:test", 0, nil)

	for i := 1; i <= 11; i++ {
		h.Record(fmt.Sprintf("query %d", i))
	}

	entries := h.Entries()
	if len(entries) != DefaultLimit {
		t.Fatalf("got %d entries, want %d", len(entries), DefaultLimit)
	}
	if entries[0] != "query 11" {
		t.Errorf("newest entry: got %q", entries[0])
	}
	if entries[len(entries)-1] != "query 2" {
		t.Errorf("oldest retained entry: got %q, want query 2 (query 1 evicted)", entries[len(entries)-1])
	}
}

func TestHistory_IgnoresBlank(t *testing.T) {
	h := New(analytics.NewMemoryBackend(), "history:test", 0, nil)

	h.Record("")
	h.Record("   ")
	if got := h.Entries(); len(got) != 0 {
		t.Errorf("blank queries recorded: %v", got)
	}
}

func TestHistory_Matching(t *testing.T) {
	h := New(analytics.NewMemoryBackend(), "history:test", 0, nil)
	h.Record("bece past questions")
	h.Record("saving money")
	h.Record("BECE timetable")

	tests := []struct {
		partial string
		limit   int
		want    []string
	}{
		{"bece", 2, []string{"BECE timetable", "bece past questions"}},
		{"bece", 1, []string{"BECE timetable"}},
		{"money", 2, []string{"saving money"}},
		{"chemistry", 2, nil},
		{"", 2, nil},
	}
	for _, tt := range tests {
		if got := h.Matching(tt.partial, tt.limit); !reflect.DeepEqual(got, tt.want) {
			t.Errorf("Matching(%q, %d) = %v, want %v", tt.partial, tt.limit, got, tt.want)
		}
	}
}

func TestHistory_PersistsAcrossRestart(t *testing.T) {
	backend := analytics.NewMemoryBackend()

	h := New(backend, "history:test", 0, nil)
	h.Record("bece")
	h.Record("finance")

	reopened := New(backend, "history:test", 0, nil)
	want := []string{"finance", "bece"}
	if got := reopened.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("entries after restart: got %v, want %v", got, want)
	}
}

func TestHistory_CorruptStateStartsEmpty(t *testing.T) {
	backend := analytics.NewMemoryBackend()
	if err := backend.Persist("history:test", []byte("[oops")); err != nil {
		t.Fatal(err)
	}

	h := New(backend, "history:test", 0, nil)
	if got := h.Entries(); len(got) != 0 {
		t.Errorf("corrupt state not discarded: %v", got)
	}
}

func TestHistory_LoadTrimsOversizedState(t *testing.T) {
	backend := analytics.NewMemoryBackend()
	if err := backend.Persist("history:test", []byte(`["a","b","c","d"]`)); err != nil {
		t.Fatal(err)
	}

	h := New(backend, "history:test", 3, nil)
	want := []string{"a", "b", "c"}
	if got := h.Entries(); !reflect.DeepEqual(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
