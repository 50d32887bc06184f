package radarr

import (
	"context"
	"errors"
	"fmt"

	"github.com/concordarr/concordarr-operator/internal/adapters"
	"github.com/concordarr/concordarr-operator/internal/adapters/httpclient"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// Apply converges Radarr to the desired state in two passes. Pass one runs
// creates and updates collection by collection in dependency order,
// reloading the reference table after each collection's creates so newly
// created resources resolve downstream. Pass two re-fetches remote IDs and
// runs deletes in reverse dependency order, skipping anything already gone.
func (a *Adapter) Apply(ctx context.Context, conn *irv1.ConnectionIR, desired *irv1.IR, plan *adapters.Plan) (*adapters.ApplyResult, error) {
	c := a.newClient(conn)

	rt, err := loadRefTable(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference table: %w", err)
	}

	result := &adapters.ApplyResult{}
	collectionResults := make(map[string]*adapters.CollectionResult, len(plan.Collections))

	for _, col := range plan.Collections {
		cr := &adapters.CollectionResult{Kind: col.Kind}
		collectionResults[col.Kind] = cr

		// Delay profiles replace as a unit, so their deletes run in the
		// forward pass too.
		forward := len(col.Changes.Creates) > 0 || len(col.Changes.Updates) > 0 ||
			(col.Kind == adapters.ResourceDelayProfile && len(col.Changes.Deletes) > 0)
		if forward {
			a.applyForward(ctx, c, rt, col, desired, result, cr)

			// Later collections resolve references against resources
			// created in this one.
			if len(col.Changes.Creates) > 0 {
				if fresh, rerr := loadRefTable(ctx, c); rerr == nil {
					rt = fresh
				}
			}
		}
	}

	for i := len(plan.Collections) - 1; i >= 0; i-- {
		col := plan.Collections[i]
		if len(col.Changes.Deletes) == 0 || col.Kind == adapters.ResourceDelayProfile {
			continue
		}
		a.applyDeletes(ctx, c, col, result, collectionResults[col.Kind])
	}

	for _, col := range plan.Collections {
		result.Collections = append(result.Collections, *collectionResults[col.Kind])
	}

	return result, nil
}

// applyForward runs a collection's creates and updates. A collection-level
// failure (unresolved reference, service unavailable) aborts the remaining
// operations of the collection; validation rejections of a single resource
// are recorded and the collection continues.
func (a *Adapter) applyForward(ctx context.Context, c *httpclient.Client, rt *RefTable, col adapters.CollectionPlan, desired *irv1.IR, result *adapters.ApplyResult, cr *adapters.CollectionResult) {
	// Delay profiles replace as a unit rather than change by change.
	if col.Kind == adapters.ResourceDelayProfile {
		var profiles []irv1.DelayProfileIR
		if desired.DelayProfiles != nil {
			profiles = desired.DelayProfiles.Definitions
		}
		if err := a.replaceDelayProfiles(ctx, c, profiles, rt); err != nil {
			a.recordFailure(result, cr, adapters.Change{ResourceType: col.Kind}, err)
			cr.Aborted = true
			return
		}
		result.Applied += col.Changes.TotalChanges()
		cr.Applied += col.Changes.TotalChanges()
		return
	}

	ids, err := a.currentIDs(ctx, c, col.Kind)
	if err != nil {
		a.recordFailure(result, cr, adapters.Change{ResourceType: col.Kind}, err)
		cr.Aborted = true
		return
	}

	for _, change := range col.Changes.Creates {
		if err := a.applyCreate(ctx, c, rt, col.Kind, change); err != nil {
			a.recordFailure(result, cr, change, err)
			if abortive(err) {
				cr.Aborted = true
				return
			}
			continue
		}
		result.Applied++
		cr.Applied++
	}

	for _, change := range col.Changes.Updates {
		id, ok := ids[change.Name]
		if !ok {
			// The target vanished since the diff. Converge by creating.
			if err := a.applyCreate(ctx, c, rt, col.Kind, change); err != nil {
				a.recordFailure(result, cr, change, err)
				if abortive(err) {
					cr.Aborted = true
					return
				}
				continue
			}
			result.Applied++
			cr.Applied++
			continue
		}
		if err := a.applyUpdate(ctx, c, rt, col.Kind, id, change); err != nil {
			a.recordFailure(result, cr, change, err)
			if abortive(err) {
				cr.Aborted = true
				return
			}
			continue
		}
		result.Applied++
		cr.Applied++
	}
}

// applyDeletes runs a collection's deletes against fresh remote IDs.
// Resources already gone are counted as skipped, not failed.
func (a *Adapter) applyDeletes(ctx context.Context, c *httpclient.Client, col adapters.CollectionPlan, result *adapters.ApplyResult, cr *adapters.CollectionResult) {
	ids, err := a.currentIDs(ctx, c, col.Kind)
	if err != nil {
		a.recordFailure(result, cr, adapters.Change{ResourceType: col.Kind}, err)
		cr.Aborted = true
		return
	}

	for _, change := range col.Changes.Deletes {
		id, ok := ids[change.Name]
		if !ok {
			result.Skipped++
			cr.Skipped++
			continue
		}
		if err := a.deleteResource(ctx, c, col.Kind, id); err != nil {
			a.recordFailure(result, cr, change, err)
			if abortive(err) {
				cr.Aborted = true
				return
			}
			continue
		}
		result.Applied++
		cr.Applied++
	}
}

func (a *Adapter) applyCreate(ctx context.Context, c *httpclient.Client, rt *RefTable, kind string, change adapters.Change) error {
	switch kind {
	case adapters.ResourceTag:
		label, ok := change.Payload.(string)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for tag", change.Payload)
		}
		return a.createTag(ctx, c, label)
	case adapters.ResourceRootFolder:
		folder, ok := change.Payload.(irv1.RootFolderIR)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for root folder", change.Payload)
		}
		return a.createRootFolder(ctx, c, folder)
	case adapters.ResourceCustomFormat:
		cf, ok := change.Payload.(irv1.CustomFormatIR)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for custom format", change.Payload)
		}
		return a.createCustomFormat(ctx, c, &cf)
	case adapters.ResourceQualityProfile:
		p, ok := change.Payload.(irv1.QualityProfileIR)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for quality profile", change.Payload)
		}
		return a.createQualityProfile(ctx, c, &p, rt)
	case adapters.ResourceDownloadClient:
		dc, ok := change.Payload.(irv1.DownloadClientIR)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for download client", change.Payload)
		}
		return a.createDownloadClient(ctx, c, &dc, rt)
	case adapters.ResourceIndexer:
		idx, ok := change.Payload.(irv1.IndexerIR)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for indexer", change.Payload)
		}
		return a.createIndexer(ctx, c, &idx, rt)
	case adapters.ResourceNotification:
		n, ok := change.Payload.(irv1.NotificationIR)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for notification", change.Payload)
		}
		return a.createNotification(ctx, c, &n, rt)
	case adapters.ResourceImportList:
		l, ok := change.Payload.(irv1.ImportListIR)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for import list", change.Payload)
		}
		return a.createImportList(ctx, c, &l, rt)
	}
	return fmt.Errorf("unsupported create for resource type %q", kind)
}

func (a *Adapter) applyUpdate(ctx context.Context, c *httpclient.Client, rt *RefTable, kind string, id int, change adapters.Change) error {
	switch kind {
	case adapters.ResourceQualityDefinition:
		def, ok := change.Payload.(irv1.QualityDefinitionIR)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for quality definition", change.Payload)
		}
		return a.updateQualityDefinition(ctx, c, def)
	case adapters.ResourceCustomFormat:
		cf, ok := change.Payload.(irv1.CustomFormatIR)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for custom format", change.Payload)
		}
		remote, err := a.getCustomFormat(ctx, c, id)
		if err != nil {
			return err
		}
		return a.updateCustomFormat(ctx, c, id, &cf, remote)
	case adapters.ResourceQualityProfile:
		p, ok := change.Payload.(irv1.QualityProfileIR)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for quality profile", change.Payload)
		}
		return a.updateQualityProfile(ctx, c, id, &p, rt)
	case adapters.ResourceDownloadClient:
		dc, ok := change.Payload.(irv1.DownloadClientIR)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for download client", change.Payload)
		}
		return a.updateDownloadClient(ctx, c, id, &dc, rt)
	case adapters.ResourceIndexer:
		idx, ok := change.Payload.(irv1.IndexerIR)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for indexer", change.Payload)
		}
		return a.updateIndexer(ctx, c, id, &idx, rt)
	case adapters.ResourceNotification:
		n, ok := change.Payload.(irv1.NotificationIR)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for notification", change.Payload)
		}
		return a.updateNotification(ctx, c, id, &n, rt)
	case adapters.ResourceImportList:
		l, ok := change.Payload.(irv1.ImportListIR)
		if !ok {
			return fmt.Errorf("unexpected payload type %T for import list", change.Payload)
		}
		return a.updateImportList(ctx, c, id, &l, rt)
	}
	return fmt.Errorf("unsupported update for resource type %q", kind)
}

func (a *Adapter) deleteResource(ctx context.Context, c *httpclient.Client, kind string, id int) error {
	switch kind {
	case adapters.ResourceRootFolder:
		return a.deleteRootFolder(ctx, c, id)
	case adapters.ResourceCustomFormat:
		return a.deleteCustomFormat(ctx, c, id)
	case adapters.ResourceQualityProfile:
		return a.deleteQualityProfile(ctx, c, id)
	case adapters.ResourceDownloadClient:
		return a.deleteDownloadClient(ctx, c, id)
	case adapters.ResourceIndexer:
		return a.deleteIndexer(ctx, c, id)
	case adapters.ResourceNotification:
		return a.deleteNotification(ctx, c, id)
	case adapters.ResourceImportList:
		return a.deleteImportList(ctx, c, id)
	}
	return fmt.Errorf("unsupported delete for resource type %q", kind)
}

// currentIDs fetches the fresh name-to-ID mapping for a collection.
func (a *Adapter) currentIDs(ctx context.Context, c *httpclient.Client, kind string) (map[string]int, error) {
	ids := make(map[string]int)
	switch kind {
	case adapters.ResourceTag, adapters.ResourceQualityDefinition:
		// Tags resolve through the reference table; quality definitions
		// resolve by quality name inside their update routine.
		return ids, nil
	case adapters.ResourceRootFolder:
		var resources []RootFolderResource
		if err := c.Get(ctx, "/api/v3/rootfolder", &resources); err != nil {
			return nil, err
		}
		for _, r := range resources {
			ids[r.Path] = r.ID
		}
	case adapters.ResourceCustomFormat:
		var resources []CustomFormatResource
		if err := c.Get(ctx, "/api/v3/customformat", &resources); err != nil {
			return nil, err
		}
		for _, r := range resources {
			ids[r.Name] = r.ID
		}
	case adapters.ResourceQualityProfile:
		var resources []QualityProfileResource
		if err := c.Get(ctx, "/api/v3/qualityprofile", &resources); err != nil {
			return nil, err
		}
		for _, r := range resources {
			ids[r.Name] = r.ID
		}
	case adapters.ResourceDownloadClient:
		var resources []DownloadClientResource
		if err := c.Get(ctx, "/api/v3/downloadclient", &resources); err != nil {
			return nil, err
		}
		for _, r := range resources {
			ids[r.Name] = r.ID
		}
	case adapters.ResourceIndexer:
		var resources []IndexerResource
		if err := c.Get(ctx, "/api/v3/indexer", &resources); err != nil {
			return nil, err
		}
		for _, r := range resources {
			ids[r.Name] = r.ID
		}
	case adapters.ResourceNotification:
		var resources []NotificationResource
		if err := c.Get(ctx, "/api/v3/notification", &resources); err != nil {
			return nil, err
		}
		for _, r := range resources {
			ids[r.Name] = r.ID
		}
	case adapters.ResourceImportList:
		var resources []ImportListResource
		if err := c.Get(ctx, "/api/v3/importlist", &resources); err != nil {
			return nil, err
		}
		for _, r := range resources {
			ids[r.Name] = r.ID
		}
	}
	return ids, nil
}

// getCustomFormat fetches a single custom format as IR, for merging
// remote-only conditions into update payloads.
func (a *Adapter) getCustomFormat(ctx context.Context, c *httpclient.Client, id int) (*irv1.CustomFormatIR, error) {
	var r CustomFormatResource
	if err := c.Get(ctx, fmt.Sprintf("/api/v3/customformat/%d", id), &r); err != nil {
		if httpclient.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	cf := a.customFormatToIR(&r)
	return &cf, nil
}

func (a *Adapter) recordFailure(result *adapters.ApplyResult, cr *adapters.CollectionResult, change adapters.Change, err error) {
	result.Failed++
	cr.Failed++
	result.Errors = append(result.Errors, adapters.ApplyError{
		Change: change,
		Error:  err,
	})
}

// abortive classifies an error as collection-level: unresolved references
// and transport or server failures stop the collection, while a validation
// rejection of one resource does not block its siblings.
func abortive(err error) bool {
	var refErr *adapters.ReferenceNotFoundError
	if errors.As(err, &refErr) {
		return true
	}
	var statusErr *httpclient.StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode >= 500
	}
	return true
}
