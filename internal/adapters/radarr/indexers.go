package radarr

import (
	"context"
	"fmt"

	"github.com/concordarr/concordarr-operator/internal/adapters"
	"github.com/concordarr/concordarr-operator/internal/adapters/httpclient"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// knownIndexerImpls lists the indexer implementations the adapter can
// decode. Remote indexers with other implementations are skipped.
var knownIndexerImpls = map[string]bool{
	"FileList":          true,
	"HDBits":            true,
	"IPTorrents":        true,
	"Newznab":           true,
	"Nyaa":              true,
	"PassThePopcorn":    true,
	"TorrentPotato":     true,
	"TorrentRssIndexer": true,
	"Torznab":           true,
}

// getIndexers retrieves all indexers, skipping unrecognized implementations
// and resolving download client and tag IDs back to symbolic names.
func (a *Adapter) getIndexers(ctx context.Context, c *httpclient.Client, rt *RefTable, ir *irv1.IR) (*irv1.IndexersIR, map[string]int, error) {
	var resources []IndexerResource
	if err := c.Get(ctx, "/api/v3/indexer", &resources); err != nil {
		return nil, nil, fmt.Errorf("failed to get indexers: %w", err)
	}

	indexers := make([]irv1.IndexerIR, 0, len(resources))
	ids := make(map[string]int, len(resources))
	for _, r := range resources {
		if !knownIndexerImpls[r.Implementation] {
			ir.Skipped = append(ir.Skipped, irv1.SkippedResource{
				Kind:           adapters.ResourceIndexer,
				Name:           r.Name,
				Implementation: r.Implementation,
			})
			continue
		}
		indexers = append(indexers, a.indexerToIR(&r, rt))
		ids[r.Name] = r.ID
	}

	return &irv1.IndexersIR{Definitions: indexers}, ids, nil
}

func (a *Adapter) indexerToIR(r *IndexerResource, rt *RefTable) irv1.IndexerIR {
	idx := irv1.IndexerIR{
		Name:                    r.Name,
		Implementation:          r.Implementation,
		ConfigContract:          r.ConfigContract,
		Protocol:                r.Protocol,
		Priority:                r.Priority,
		EnableRss:               r.EnableRss,
		EnableAutomaticSearch:   r.EnableAutomaticSearch,
		EnableInteractiveSearch: r.EnableInteractiveSearch,
		Tags:                    rt.UnresolveTags(r.Tags),
	}
	if r.DownloadClientID != 0 {
		if name, ok := rt.UnresolveDownloadClient(r.DownloadClientID); ok {
			idx.DownloadClient = name
		}
	}
	for _, f := range r.Fields {
		idx.Fields = append(idx.Fields, irv1.FieldIR{Name: f.Name, Value: f.Value})
	}
	return idx
}

func (a *Adapter) irToIndexer(idx *irv1.IndexerIR, rt *RefTable) (IndexerResource, error) {
	tags, err := rt.ResolveTags(idx.Tags, idx.Name)
	if err != nil {
		return IndexerResource{}, err
	}
	r := IndexerResource{
		Name:                    idx.Name,
		Implementation:          idx.Implementation,
		ConfigContract:          idx.ConfigContract,
		Protocol:                idx.Protocol,
		Priority:                idx.Priority,
		EnableRss:               idx.EnableRss,
		EnableAutomaticSearch:   idx.EnableAutomaticSearch,
		EnableInteractiveSearch: idx.EnableInteractiveSearch,
		Tags:                    tags,
	}
	if idx.DownloadClient != "" {
		clientID, err := rt.ResolveDownloadClient(idx.DownloadClient, idx.Name)
		if err != nil {
			return IndexerResource{}, err
		}
		r.DownloadClientID = clientID
	}
	for _, f := range idx.Fields {
		r.Fields = append(r.Fields, Field{Name: f.Name, Value: f.Value})
	}
	return r, nil
}

// diffIndexers computes indexer changes.
func (a *Adapter) diffIndexers(current, desired *irv1.IR, ids map[string]int) adapters.ChangeSet {
	var cur, des []irv1.IndexerIR
	deleteUnmanaged := false
	if current.Indexers != nil {
		cur = current.Indexers.Definitions
	}
	if desired.Indexers != nil {
		des = desired.Indexers.Definitions
		deleteUnmanaged = desired.Indexers.DeleteUnmanaged
	}

	return adapters.DiffCollection(cur, des, adapters.DiffOptions[irv1.IndexerIR]{
		Kind: adapters.ResourceIndexer,
		Key:  func(idx irv1.IndexerIR) string { return idx.Name },
		ID: func(idx irv1.IndexerIR) *int {
			if id, ok := ids[idx.Name]; ok {
				return &id
			}
			return nil
		},
		Equal:           indexersEqual,
		DeleteUnmanaged: deleteUnmanaged,
	})
}

func indexersEqual(cur, des irv1.IndexerIR) bool {
	if cur.Name != des.Name || cur.Implementation != des.Implementation {
		return false
	}
	if cur.Priority != des.Priority {
		return false
	}
	if cur.EnableRss != des.EnableRss {
		return false
	}
	if cur.EnableAutomaticSearch != des.EnableAutomaticSearch {
		return false
	}
	if cur.EnableInteractiveSearch != des.EnableInteractiveSearch {
		return false
	}
	if cur.DownloadClient != des.DownloadClient {
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

// createIndexer creates an indexer.
func (a *Adapter) createIndexer(ctx context.Context, c *httpclient.Client, idx *irv1.IndexerIR, rt *RefTable) error {
	payload, err := a.irToIndexer(idx, rt)
	if err != nil {
		return err
	}
	var created IndexerResource
	if err := c.Post(ctx, "/api/v3/indexer", payload, &created); err != nil {
		return fmt.Errorf("failed to create indexer %q: %w", idx.Name, err)
	}
	return nil
}

// updateIndexer updates an indexer in place.
func (a *Adapter) updateIndexer(ctx context.Context, c *httpclient.Client, id int, idx *irv1.IndexerIR, rt *RefTable) error {
	payload, err := a.irToIndexer(idx, rt)
	if err != nil {
		return err
	}
	payload.ID = id
	path := fmt.Sprintf("/api/v3/indexer/%d", id)
	if err := c.Put(ctx, path, payload, nil); err != nil {
		return fmt.Errorf("failed to update indexer %q: %w", idx.Name, err)
	}
	return nil
}

// deleteIndexer removes an indexer by ID.
func (a *Adapter) deleteIndexer(ctx context.Context, c *httpclient.Client, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/v3/indexer/%d", id))
}
