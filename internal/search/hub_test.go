package search

import (
	"reflect"
	"testing"

	"github.com/osei-labs/adesua/internal/analytics"
	"github.com/osei-labs/adesua/internal/catalog"
	"github.com/osei-labs/adesua/internal/config"
	"github.com/osei-labs/adesua/internal/models"
)

func TestHub_BuildsEnginePerCatalog(t *testing.T) {
	registry := catalog.NewRegistry()
	registry.Put(testCatalog(t))
	b, _ := catalog.New("teachers-hub", "Teachers Hub", nil, nil)
	registry.Put(b)

	hub := NewHub(registry, analytics.NewMemoryBackend(), &config.SearchConfig{}, nil)

	want := []string{"students-hub", "teachers-hub"}
	if got := hub.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("keys: got %v, want %v", got, want)
	}
	if _, ok := hub.Get("students-hub"); !ok {
		t.Error("engine for students-hub missing")
	}
	if _, ok := hub.Get("no-such-hub"); ok {
		t.Error("engine for unknown key present")
	}
}

func TestHub_ReloadPreservesAnalyticsAndHistory(t *testing.T) {
	registry := catalog.NewRegistry()
	registry.Put(testCatalog(t))
	hub := NewHub(registry, analytics.NewMemoryBackend(), &config.SearchConfig{}, nil)

	engine, _ := hub.Get("students-hub")
	engine.Search(&models.SearchQuery{Query: "bece"})
	if err := engine.RecordClick("bece-pasco"); err != nil {
		t.Fatal(err)
	}

	// Simulate a catalog file change: the engine is rebuilt, state survives.
	hub.Reload(testCatalog(t))
	reloaded, _ := hub.Get("students-hub")
	if reloaded == engine {
		t.Fatal("reload did not replace the engine")
	}
	if got := reloaded.Analytics().QueryCount("bece"); got != 1 {
		t.Errorf("query count after reload: got %d, want 1", got)
	}
	if got := reloaded.Analytics().ClickCount("bece-pasco"); got != 1 {
		t.Errorf("click count after reload: got %d, want 1", got)
	}
	if entries := reloaded.History().Entries(); len(entries) != 1 || entries[0] != "bece" {
		t.Errorf("history after reload: %v", entries)
	}
}

func TestHub_Remove(t *testing.T) {
	registry := catalog.NewRegistry()
	registry.Put(testCatalog(t))
	hub := NewHub(registry, analytics.NewMemoryBackend(), &config.SearchConfig{}, nil)

	hub.Remove("students-hub")
	if _, ok := hub.Get("students-hub"); ok {
		t.Error("engine present after remove")
	}
	if keys := hub.Keys(); len(keys) != 0 {
		t.Errorf("keys after remove: %v", keys)
	}
	hub.Remove("students-hub")
}
