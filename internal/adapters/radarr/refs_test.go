package radarr

import (
	"errors"
	"testing"

	"github.com/concordarr/concordarr-operator/internal/adapters"
)

func testRefTable() *RefTable {
	return &RefTable{
		tagsByLabel:    map[string]int{"anime": 1, "uhd": 2},
		tagsByID:       map[int]string{1: "anime", 2: "uhd"},
		formatsByName:  map[string]int{"x265": 10, "DV": 11},
		formatsByID:    map[int]string{10: "x265", 11: "DV"},
		clientsByName:  map[string]int{"transmission": 3},
		clientsByID:    map[int]string{3: "transmission"},
		profilesByName: map[string]int{"HD Managed": 5},
		profilesByID:   map[int]string{5: "HD Managed"},
		qualitiesByName: map[string]QualityResource{
			"Bluray-1080p": {ID: 7, Name: "Bluray-1080p"},
		},
		languagesByName: map[string]LanguageResource{
			"english": {ID: 1, Name: "English"},
		},
		languagesByID: map[int]string{1: "English"},
	}
}

func TestResolveTags(t *testing.T) {
	rt := testRefTable()

	ids, err := rt.ResolveTags([]string{"uhd", "anime"}, "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Sorted for deterministic payloads.
	if len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Errorf("expected sorted IDs [1 2], got %v", ids)
	}

	_, err = rt.ResolveTags([]string{"missing"}, "indexer-x")
	if err == nil {
		t.Fatal("expected error for unknown tag")
	}
	var refErr *adapters.ReferenceNotFoundError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected ReferenceNotFoundError, got %T", err)
	}
	if refErr.Name != "missing" || refErr.From != "indexer-x" {
		t.Errorf("unexpected error detail: %+v", refErr)
	}
}

func TestTagRoundTrip(t *testing.T) {
	rt := testRefTable()

	ids, err := rt.ResolveTags([]string{"anime", "uhd"}, "test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	labels := rt.UnresolveTags(ids)
	if len(labels) != 2 || labels[0] != "anime" || labels[1] != "uhd" {
		t.Errorf("round trip mismatch: %v", labels)
	}
}

func TestUnresolveTagsDropsDangling(t *testing.T) {
	rt := testRefTable()

	labels := rt.UnresolveTags([]int{1, 99})
	if len(labels) != 1 || labels[0] != "anime" {
		t.Errorf("expected dangling tag ID dropped, got %v", labels)
	}
}

func TestResolveCustomFormat(t *testing.T) {
	rt := testRefTable()

	id, err := rt.ResolveCustomFormat("x265", "profile HD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 10 {
		t.Errorf("expected ID 10, got %d", id)
	}

	_, err = rt.ResolveCustomFormat("gone", "profile HD")
	var refErr *adapters.ReferenceNotFoundError
	if !errors.As(err, &refErr) {
		t.Fatalf("expected ReferenceNotFoundError, got %v", err)
	}
	if refErr.Kind != adapters.ResourceCustomFormat || refErr.From != "profile HD" {
		t.Errorf("unexpected error detail: %+v", refErr)
	}
}

func TestResolveLanguageCaseInsensitive(t *testing.T) {
	rt := testRefTable()

	lang, err := rt.ResolveLanguage("ENGLISH", "profile")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lang.ID != 1 || lang.Name != "English" {
		t.Errorf("unexpected language: %+v", lang)
	}
}
