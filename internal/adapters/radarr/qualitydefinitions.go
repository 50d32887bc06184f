package radarr

import (
	"context"
	"fmt"

	"github.com/concordarr/concordarr-operator/internal/adapters"
	"github.com/concordarr/concordarr-operator/internal/adapters/httpclient"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// getQualityDefinitions retrieves all quality definitions from Radarr.
func (a *Adapter) getQualityDefinitions(ctx context.Context, c *httpclient.Client) (*irv1.QualityDefinitionsIR, error) {
	var resources []QualityDefinitionResource
	if err := c.Get(ctx, "/api/v3/qualitydefinition", &resources); err != nil {
		return nil, fmt.Errorf("failed to get quality definitions: %w", err)
	}

	defs := make([]irv1.QualityDefinitionIR, 0, len(resources))
	for _, r := range resources {
		defs = append(defs, irv1.QualityDefinitionIR{
			Quality:       r.Quality.Name,
			Title:         r.Title,
			MinSize:       r.MinSize,
			MaxSize:       r.MaxSize,
			PreferredSize: r.PreferredSize,
		})
	}

	return &irv1.QualityDefinitionsIR{Definitions: defs}, nil
}

// diffQualityDefinitions computes quality definition changes. The set is
// fixed by the service, so this collection is update-only: declared entries
// adjust title and size limits on the matching remote definition, and
// remote definitions never get created or deleted.
func (a *Adapter) diffQualityDefinitions(current, desired *irv1.IR) adapters.ChangeSet {
	var cur, des []irv1.QualityDefinitionIR
	if current.QualityDefinitions != nil {
		cur = current.QualityDefinitions.Definitions
	}
	if desired.QualityDefinitions != nil {
		des = desired.QualityDefinitions.Definitions
	}

	return adapters.DiffCollection(cur, des, adapters.DiffOptions[irv1.QualityDefinitionIR]{
		Kind: adapters.ResourceQualityDefinition,
		Key:  func(d irv1.QualityDefinitionIR) string { return d.Quality },
		ID:   func(irv1.QualityDefinitionIR) *int { return nil },
		Equal: func(cur, des irv1.QualityDefinitionIR) bool {
			return definitionTitle(cur) == definitionTitle(des) &&
				cur.MinSize == des.MinSize &&
				float64PtrEqual(cur.MaxSize, des.MaxSize) &&
				float64PtrEqual(cur.PreferredSize, des.PreferredSize)
		},
		UpdateOnly: true,
	})
}

// definitionTitle is the effective display title of a definition: an empty
// declared title means "same as the quality name", which is also how the
// remote reports untouched definitions.
func definitionTitle(d irv1.QualityDefinitionIR) string {
	if d.Title == "" {
		return d.Quality
	}
	return d.Title
}

// updateQualityDefinition pushes a single declared definition onto the
// matching remote definition, preserving the remote quality descriptor.
func (a *Adapter) updateQualityDefinition(ctx context.Context, c *httpclient.Client, def irv1.QualityDefinitionIR) error {
	var resources []QualityDefinitionResource
	if err := c.Get(ctx, "/api/v3/qualitydefinition", &resources); err != nil {
		return fmt.Errorf("failed to get quality definitions: %w", err)
	}

	for _, r := range resources {
		if r.Quality.Name != def.Quality {
			continue
		}
		r.Title = definitionTitle(def)
		r.MinSize = def.MinSize
		r.MaxSize = def.MaxSize
		r.PreferredSize = def.PreferredSize
		path := fmt.Sprintf("/api/v3/qualitydefinition/%d", r.ID)
		if err := c.Put(ctx, path, r, nil); err != nil {
			return fmt.Errorf("failed to update quality definition %q: %w", def.Quality, err)
		}
		return nil
	}

	return &adapters.ReferenceNotFoundError{
		Kind: adapters.ResourceQualityDefinition,
		Name: def.Quality,
		From: "quality definitions",
	}
}

func float64PtrEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
