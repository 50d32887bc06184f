package radarr

import (
	"context"
	"fmt"

	"github.com/concordarr/concordarr-operator/internal/adapters"
	"github.com/concordarr/concordarr-operator/internal/adapters/httpclient"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// knownImportListImpls lists the import list implementations the adapter
// can decode. Remote lists with other implementations are skipped.
var knownImportListImpls = map[string]bool{
	"CouchPotatoImport":    true,
	"IMDbListImport":       true,
	"PlexImport":           true,
	"RadarrImport":         true,
	"StevenLuImport":       true,
	"TMDbCollectionImport": true,
	"TMDbCompanyImport":    true,
	"TMDbKeywordImport":    true,
	"TMDbListImport":       true,
	"TMDbPersonImport":     true,
	"TMDbPopularImport":    true,
	"TMDbUserImport":       true,
	"TraktListImport":      true,
	"TraktPopularImport":   true,
	"TraktUserImport":      true,
}

// getImportLists retrieves all import lists, skipping unrecognized
// implementations.
func (a *Adapter) getImportLists(ctx context.Context, c *httpclient.Client, rt *RefTable, ir *irv1.IR) (*irv1.ImportListsIR, map[string]int, error) {
	var resources []ImportListResource
	if err := c.Get(ctx, "/api/v3/importlist", &resources); err != nil {
		return nil, nil, fmt.Errorf("failed to get import lists: %w", err)
	}

	lists := make([]irv1.ImportListIR, 0, len(resources))
	ids := make(map[string]int, len(resources))
	for _, r := range resources {
		if !knownImportListImpls[r.Implementation] {
			ir.Skipped = append(ir.Skipped, irv1.SkippedResource{
				Kind:           adapters.ResourceImportList,
				Name:           r.Name,
				Implementation: r.Implementation,
			})
			continue
		}
		lists = append(lists, a.importListToIR(&r, rt))
		ids[r.Name] = r.ID
	}

	return &irv1.ImportListsIR{Definitions: lists}, ids, nil
}

func (a *Adapter) importListToIR(r *ImportListResource, rt *RefTable) irv1.ImportListIR {
	l := irv1.ImportListIR{
		Name:                r.Name,
		Implementation:      r.Implementation,
		ConfigContract:      r.ConfigContract,
		Enable:              r.Enabled,
		EnableAuto:          r.EnableAuto,
		SearchOnAdd:         r.SearchOnAdd,
		Monitor:             r.Monitor,
		MinimumAvailability: r.MinimumAvailability,
		RootFolderPath:      r.RootFolderPath,
		Tags:                rt.UnresolveTags(r.Tags),
	}
	// A dangling profile reference decodes as empty and never matches a
	// declared list, forcing an update that repoints it.
	if name, ok := rt.UnresolveQualityProfile(r.QualityProfileID); ok {
		l.QualityProfile = name
	}
	for _, f := range r.Fields {
		l.Fields = append(l.Fields, irv1.FieldIR{Name: f.Name, Value: f.Value})
	}
	return l
}

func (a *Adapter) irToImportList(l *irv1.ImportListIR, rt *RefTable) (ImportListResource, error) {
	tags, err := rt.ResolveTags(l.Tags, l.Name)
	if err != nil {
		return ImportListResource{}, err
	}
	profileID, err := rt.ResolveQualityProfile(l.QualityProfile, l.Name)
	if err != nil {
		return ImportListResource{}, err
	}
	r := ImportListResource{
		Name:                l.Name,
		Implementation:      l.Implementation,
		ConfigContract:      l.ConfigContract,
		Enabled:             l.Enable,
		EnableAuto:          l.EnableAuto,
		SearchOnAdd:         l.SearchOnAdd,
		Monitor:             l.Monitor,
		MinimumAvailability: l.MinimumAvailability,
		QualityProfileID:    profileID,
		RootFolderPath:      l.RootFolderPath,
		ListType:            "program",
		Tags:                tags,
	}
	for _, f := range l.Fields {
		r.Fields = append(r.Fields, Field{Name: f.Name, Value: f.Value})
	}
	return r, nil
}

// diffImportLists computes import list changes.
func (a *Adapter) diffImportLists(current, desired *irv1.IR, ids map[string]int) adapters.ChangeSet {
	var cur, des []irv1.ImportListIR
	deleteUnmanaged := false
	if current.ImportLists != nil {
		cur = current.ImportLists.Definitions
	}
	if desired.ImportLists != nil {
		des = desired.ImportLists.Definitions
		deleteUnmanaged = desired.ImportLists.DeleteUnmanaged
	}

	return adapters.DiffCollection(cur, des, adapters.DiffOptions[irv1.ImportListIR]{
		Kind: adapters.ResourceImportList,
		Key:  func(l irv1.ImportListIR) string { return l.Name },
		ID: func(l irv1.ImportListIR) *int {
			if id, ok := ids[l.Name]; ok {
				return &id
			}
			return nil
		},
		Equal:           importListsEqual,
		DeleteUnmanaged: deleteUnmanaged,
	})
}

func importListsEqual(cur, des irv1.ImportListIR) bool {
	if cur.Name != des.Name || cur.Implementation != des.Implementation {
		return false
	}
	if cur.Enable != des.Enable || cur.EnableAuto != des.EnableAuto {
		return false
	}
	if cur.SearchOnAdd != des.SearchOnAdd {
		return false
	}
	if cur.Monitor != des.Monitor {
		return false
	}
	if cur.MinimumAvailability != des.MinimumAvailability {
		return false
	}
	if cur.QualityProfile != des.QualityProfile {
		return false
	}
	if cur.RootFolderPath != des.RootFolderPath {
		return false
	}
	if !tagSetsEqual(cur.Tags, des.Tags) {
		return false
	}
	if irv1.HasSecretField(des.Fields) {
		return false
	}
	for _, f := range des.Fields {
		if !fieldValuesEqual(irv1.FieldValue(cur.Fields, f.Name), f.Value) {
			return false
		}
	}
	return true
}

// createImportList creates an import list.
func (a *Adapter) createImportList(ctx context.Context, c *httpclient.Client, l *irv1.ImportListIR, rt *RefTable) error {
	payload, err := a.irToImportList(l, rt)
	if err != nil {
		return err
	}
	var created ImportListResource
	if err := c.Post(ctx, "/api/v3/importlist", payload, &created); err != nil {
		return fmt.Errorf("failed to create import list %q: %w", l.Name, err)
	}
	return nil
}

// updateImportList updates an import list in place.
func (a *Adapter) updateImportList(ctx context.Context, c *httpclient.Client, id int, l *irv1.ImportListIR, rt *RefTable) error {
	payload, err := a.irToImportList(l, rt)
	if err != nil {
		return err
	}
	payload.ID = id
	path := fmt.Sprintf("/api/v3/importlist/%d", id)
	if err := c.Put(ctx, path, payload, nil); err != nil {
		return fmt.Errorf("failed to update import list %q: %w", l.Name, err)
	}
	return nil
}

// deleteImportList removes an import list by ID.
func (a *Adapter) deleteImportList(ctx context.Context, c *httpclient.Client, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/v3/importlist/%d", id))
}
