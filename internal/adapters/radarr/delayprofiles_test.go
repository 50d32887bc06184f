package radarr

import (
	"testing"

	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

func TestSortDelayProfiles(t *testing.T) {
	resources := []DelayProfileResource{
		{ID: 1, Order: 2147483647}, // built-in catch-all
		{ID: 3, Order: 1},
		{ID: 2, Order: 2},
	}

	sortDelayProfiles(resources)

	if resources[0].ID != 3 || resources[1].ID != 2 || resources[2].ID != 1 {
		t.Errorf("unexpected order: %v, %v, %v", resources[0].ID, resources[1].ID, resources[2].ID)
	}
}

func TestDiffDelayProfiles(t *testing.T) {
	a := &Adapter{}

	catchAll := irv1.DelayProfileIR{
		PreferredProtocol: "usenet",
		EnableUsenet:      true,
		EnableTorrent:     true,
	}
	tagged := irv1.DelayProfileIR{
		PreferredProtocol: "torrent",
		TorrentDelay:      60,
		EnableTorrent:     true,
		Tags:              []string{"anime"},
	}

	t.Run("empty declared list leaves collection unmanaged", func(t *testing.T) {
		current := &irv1.IR{DelayProfiles: &irv1.DelayProfilesIR{
			Definitions: []irv1.DelayProfileIR{tagged, catchAll},
		}}
		desired := &irv1.IR{}

		changes := a.diffDelayProfiles(current, desired)
		if !changes.IsEmpty() {
			t.Errorf("expected no changes, got %d", changes.TotalChanges())
		}
	})

	t.Run("matching lists produce no changes", func(t *testing.T) {
		current := &irv1.IR{DelayProfiles: &irv1.DelayProfilesIR{
			Definitions: []irv1.DelayProfileIR{tagged, catchAll},
		}}
		desired := &irv1.IR{DelayProfiles: &irv1.DelayProfilesIR{
			Definitions: []irv1.DelayProfileIR{tagged, catchAll},
		}}

		changes := a.diffDelayProfiles(current, desired)
		if !changes.IsEmpty() {
			t.Errorf("expected no changes, got %d", changes.TotalChanges())
		}
	})

	t.Run("empty declared list with deleteUnmanaged trims to the default", func(t *testing.T) {
		current := &irv1.IR{DelayProfiles: &irv1.DelayProfilesIR{
			Definitions: []irv1.DelayProfileIR{tagged, catchAll},
		}}
		desired := &irv1.IR{DelayProfiles: &irv1.DelayProfilesIR{
			DeleteUnmanaged: true,
		}}

		changes := a.diffDelayProfiles(current, desired)
		if len(changes.Creates) != 0 || len(changes.Updates) != 0 {
			t.Errorf("expected deletes only, got %d creates %d updates", len(changes.Creates), len(changes.Updates))
		}
		// The built-in default cannot be deleted; only the extra profile goes.
		if len(changes.Deletes) != 1 {
			t.Errorf("expected 1 delete, got %d", len(changes.Deletes))
		}
	})

	t.Run("deleteUnmanaged with only the default remaining is a no-op", func(t *testing.T) {
		current := &irv1.IR{DelayProfiles: &irv1.DelayProfilesIR{
			Definitions: []irv1.DelayProfileIR{catchAll},
		}}
		desired := &irv1.IR{DelayProfiles: &irv1.DelayProfilesIR{
			DeleteUnmanaged: true,
		}}

		changes := a.diffDelayProfiles(current, desired)
		if !changes.IsEmpty() {
			t.Errorf("expected no changes, got %d", changes.TotalChanges())
		}
	})

	t.Run("positional difference replaces the whole list", func(t *testing.T) {
		current := &irv1.IR{DelayProfiles: &irv1.DelayProfilesIR{
			Definitions: []irv1.DelayProfileIR{catchAll},
		}}
		desired := &irv1.IR{DelayProfiles: &irv1.DelayProfilesIR{
			Definitions: []irv1.DelayProfileIR{tagged, catchAll},
		}}

		changes := a.diffDelayProfiles(current, desired)
		if len(changes.Deletes) != 1 {
			t.Errorf("expected 1 delete, got %d", len(changes.Deletes))
		}
		if len(changes.Creates) != 2 {
			t.Errorf("expected 2 creates, got %d", len(changes.Creates))
		}
	})
}
