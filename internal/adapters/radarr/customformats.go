package radarr

import (
	"context"
	"fmt"

	"github.com/concordarr/concordarr-operator/internal/adapters"
	"github.com/concordarr/concordarr-operator/internal/adapters/httpclient"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// getCustomFormats retrieves all custom formats and decodes them into IR.
// The ID map is keyed by format name for later updates and deletes.
func (a *Adapter) getCustomFormats(ctx context.Context, c *httpclient.Client) (*irv1.CustomFormatsIR, map[string]int, error) {
	var resources []CustomFormatResource
	if err := c.Get(ctx, "/api/v3/customformat", &resources); err != nil {
		return nil, nil, fmt.Errorf("failed to get custom formats: %w", err)
	}

	formats := make([]irv1.CustomFormatIR, 0, len(resources))
	ids := make(map[string]int, len(resources))
	for i := range resources {
		formats = append(formats, a.customFormatToIR(&resources[i]))
		ids[resources[i].Name] = resources[i].ID
	}

	return &irv1.CustomFormatsIR{Definitions: formats}, ids, nil
}

// customFormatToIR decodes a custom format API resource into IR.
func (a *Adapter) customFormatToIR(r *CustomFormatResource) irv1.CustomFormatIR {
	cf := irv1.CustomFormatIR{
		Name:                r.Name,
		IncludeWhenRenaming: r.IncludeCustomFormatWhenRenaming,
	}

	for _, spec := range r.Specifications {
		cond := irv1.ConditionIR{
			Name:           spec.Name,
			Implementation: spec.Implementation,
			Negate:         spec.Negate,
			Required:       spec.Required,
		}
		for _, f := range spec.Fields {
			cond.Fields = append(cond.Fields, irv1.FieldIR{
				Name:  f.Name,
				Value: f.Value,
			})
		}
		cf.Conditions = append(cf.Conditions, cond)
	}

	return cf
}

// irToCustomFormat encodes an IR custom format into an API resource.
// When the format opts out of condition pruning, remote conditions absent
// from the declared set are carried through so an update does not drop them.
func (a *Adapter) irToCustomFormat(cf *irv1.CustomFormatIR, remote *irv1.CustomFormatIR) CustomFormatResource {
	r := CustomFormatResource{
		Name:                            cf.Name,
		IncludeCustomFormatWhenRenaming: cf.IncludeWhenRenaming,
	}

	declared := make(map[string]bool, len(cf.Conditions))
	for _, cond := range cf.Conditions {
		declared[cond.Name] = true
		r.Specifications = append(r.Specifications, conditionToSpec(cond))
	}

	if !cf.DeleteUnmanagedConditions && remote != nil {
		for _, cond := range remote.Conditions {
			if !declared[cond.Name] {
				r.Specifications = append(r.Specifications, conditionToSpec(cond))
			}
		}
	}

	return r
}

func conditionToSpec(cond irv1.ConditionIR) CustomFormatSpecification {
	spec := CustomFormatSpecification{
		Name:           cond.Name,
		Implementation: cond.Implementation,
		Negate:         cond.Negate,
		Required:       cond.Required,
	}
	for _, f := range cond.Fields {
		spec.Fields = append(spec.Fields, Field{Name: f.Name, Value: f.Value})
	}
	return spec
}

// diffCustomFormats computes custom format changes. Before diffing, every
// declared condition implementation is validated against the service's
// advertised condition types: an unsupported declared condition is a
// configuration error, not something to skip.
func (a *Adapter) diffCustomFormats(current, desired *irv1.IR, caps *adapters.Capabilities, ids map[string]int) (adapters.ChangeSet, error) {
	var cur, des []irv1.CustomFormatIR
	deleteUnmanaged := false
	if current.CustomFormats != nil {
		cur = current.CustomFormats.Definitions
	}
	if desired.CustomFormats != nil {
		des = desired.CustomFormats.Definitions
		deleteUnmanaged = desired.CustomFormats.DeleteUnmanaged
	}

	for i := range des {
		for _, cond := range des[i].Conditions {
			if !caps.SupportsConditionType(cond.Implementation) {
				return adapters.ChangeSet{}, &adapters.UnsupportedConditionError{
					Format:         des[i].Name,
					Condition:      cond.Name,
					Implementation: cond.Implementation,
				}
			}
		}
	}

	changes := adapters.DiffCollection(cur, des, adapters.DiffOptions[irv1.CustomFormatIR]{
		Kind: adapters.ResourceCustomFormat,
		Key:  func(cf irv1.CustomFormatIR) string { return cf.Name },
		ID: func(cf irv1.CustomFormatIR) *int {
			if id, ok := ids[cf.Name]; ok {
				return &id
			}
			return nil
		},
		Equal:           customFormatsEqual,
		DeleteUnmanaged: deleteUnmanaged,
	})
	return changes, nil
}

// customFormatsEqual compares a remote custom format against a declared one.
// Only declared conditions and fields participate; when the declared format
// opts out of condition pruning, remote-only conditions do not break
// equality. Secret fields are never comparable, so their presence forces
// an update.
func customFormatsEqual(cur, des irv1.CustomFormatIR) bool {
	if cur.Name != des.Name {
		return false
	}
	if cur.IncludeWhenRenaming != des.IncludeWhenRenaming {
		return false
	}

	curConds := make(map[string]*irv1.ConditionIR, len(cur.Conditions))
	for i := range cur.Conditions {
		curConds[cur.Conditions[i].Name] = &cur.Conditions[i]
	}

	for _, desCond := range des.Conditions {
		curCond, exists := curConds[desCond.Name]
		if !exists {
			return false
		}
		if !conditionsEqual(curCond, &desCond) {
			return false
		}
	}

	if des.DeleteUnmanagedConditions && len(cur.Conditions) != len(des.Conditions) {
		return false
	}

	return true
}

func conditionsEqual(cur, des *irv1.ConditionIR) bool {
	if cur.Implementation != des.Implementation {
		return false
	}
	if cur.Negate != des.Negate || cur.Required != des.Required {
		return false
	}
	for _, f := range des.Fields {
		if f.Secret {
			return false
		}
		if !fieldValuesEqual(irv1.FieldValue(cur.Fields, f.Name), f.Value) {
			return false
		}
	}
	return true
}

// fieldValuesEqual compares field values across the JSON decode boundary:
// remote numbers arrive as float64 while declared values may be ints.
func fieldValuesEqual(cur, des interface{}) bool {
	if cf, ok := toFloat(cur); ok {
		if df, ok := toFloat(des); ok {
			return cf == df
		}
		return false
	}
	return fmt.Sprintf("%v", cur) == fmt.Sprintf("%v", des)
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

// createCustomFormat creates a custom format.
func (a *Adapter) createCustomFormat(ctx context.Context, c *httpclient.Client, cf *irv1.CustomFormatIR) error {
	payload := a.irToCustomFormat(cf, nil)
	var created CustomFormatResource
	if err := c.Post(ctx, "/api/v3/customformat", payload, &created); err != nil {
		return fmt.Errorf("failed to create custom format %q: %w", cf.Name, err)
	}
	return nil
}

// updateCustomFormat updates a custom format in place.
func (a *Adapter) updateCustomFormat(ctx context.Context, c *httpclient.Client, id int, cf *irv1.CustomFormatIR, remote *irv1.CustomFormatIR) error {
	payload := a.irToCustomFormat(cf, remote)
	payload.ID = id
	path := fmt.Sprintf("/api/v3/customformat/%d", id)
	if err := c.Put(ctx, path, payload, nil); err != nil {
		return fmt.Errorf("failed to update custom format %q: %w", cf.Name, err)
	}
	return nil
}

// deleteCustomFormat removes a custom format by ID.
func (a *Adapter) deleteCustomFormat(ctx context.Context, c *httpclient.Client, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/v3/customformat/%d", id))
}
