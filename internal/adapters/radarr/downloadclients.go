package radarr

import (
	"context"
	"fmt"

	"github.com/concordarr/concordarr-operator/internal/adapters"
	"github.com/concordarr/concordarr-operator/internal/adapters/httpclient"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// knownDownloadClientImpls lists the download client implementations the
// adapter can decode. Remote clients with other implementations are
// skipped, not treated as errors.
var knownDownloadClientImpls = map[string]bool{
	"Aria2":            true,
	"Deluge":           true,
	"DownloadStation":  true,
	"Flood":            true,
	"FreeboxDownload":  true,
	"Hadouken":         true,
	"NzbGet":           true,
	"Nzbvortex":        true,
	"Pneumatic":        true,
	"QBittorrent":      true,
	"RTorrent":         true,
	"Sabnzbd":          true,
	"TorrentBlackhole": true,
	"Transmission":     true,
	"UsenetBlackhole":  true,
	"UTorrent":         true,
	"Vuze":             true,
}

// getDownloadClients retrieves all download clients, skipping those with
// unrecognized implementations. Skipped clients are recorded on the IR and
// excluded from comparison and deletion.
func (a *Adapter) getDownloadClients(ctx context.Context, c *httpclient.Client, rt *RefTable, ir *irv1.IR) (*irv1.DownloadClientsIR, map[string]int, error) {
	var resources []DownloadClientResource
	if err := c.Get(ctx, "/api/v3/downloadclient", &resources); err != nil {
		return nil, nil, fmt.Errorf("failed to get download clients: %w", err)
	}

	clients := make([]irv1.DownloadClientIR, 0, len(resources))
	ids := make(map[string]int, len(resources))
	for _, r := range resources {
		if !knownDownloadClientImpls[r.Implementation] {
			ir.Skipped = append(ir.Skipped, irv1.SkippedResource{
				Kind:           adapters.ResourceDownloadClient,
				Name:           r.Name,
				Implementation: r.Implementation,
			})
			continue
		}
		clients = append(clients, a.downloadClientToIR(&r, rt))
		ids[r.Name] = r.ID
	}

	return &irv1.DownloadClientsIR{Definitions: clients}, ids, nil
}

func (a *Adapter) downloadClientToIR(r *DownloadClientResource, rt *RefTable) irv1.DownloadClientIR {
	dc := irv1.DownloadClientIR{
		Name:                     r.Name,
		Implementation:           r.Implementation,
		ConfigContract:           r.ConfigContract,
		Protocol:                 r.Protocol,
		Enable:                   r.Enable,
		Priority:                 r.Priority,
		RemoveCompletedDownloads: r.RemoveCompletedDownloads,
		RemoveFailedDownloads:    r.RemoveFailedDownloads,
		Tags:                     rt.UnresolveTags(r.Tags),
	}
	for _, f := range r.Fields {
		dc.Fields = append(dc.Fields, irv1.FieldIR{Name: f.Name, Value: f.Value})
	}
	return dc
}

func (a *Adapter) irToDownloadClient(dc *irv1.DownloadClientIR, rt *RefTable) (DownloadClientResource, error) {
	tags, err := rt.ResolveTags(dc.Tags, dc.Name)
	if err != nil {
		return DownloadClientResource{}, err
	}
	r := DownloadClientResource{
		Name:                     dc.Name,
		Implementation:           dc.Implementation,
		ConfigContract:           dc.ConfigContract,
		Protocol:                 dc.Protocol,
		Enable:                   dc.Enable,
		Priority:                 dc.Priority,
		RemoveCompletedDownloads: dc.RemoveCompletedDownloads,
		RemoveFailedDownloads:    dc.RemoveFailedDownloads,
		Tags:                     tags,
	}
	for _, f := range dc.Fields {
		r.Fields = append(r.Fields, Field{Name: f.Name, Value: f.Value})
	}
	return r, nil
}

// diffDownloadClients computes download client changes.
func (a *Adapter) diffDownloadClients(current, desired *irv1.IR, ids map[string]int) adapters.ChangeSet {
	var cur, des []irv1.DownloadClientIR
	deleteUnmanaged := false
	if current.DownloadClients != nil {
		cur = current.DownloadClients.Definitions
	}
	if desired.DownloadClients != nil {
		des = desired.DownloadClients.Definitions
		deleteUnmanaged = desired.DownloadClients.DeleteUnmanaged
	}

	return adapters.DiffCollection(cur, des, adapters.DiffOptions[irv1.DownloadClientIR]{
		Kind: adapters.ResourceDownloadClient,
		Key:  func(dc irv1.DownloadClientIR) string { return dc.Name },
		ID: func(dc irv1.DownloadClientIR) *int {
			if id, ok := ids[dc.Name]; ok {
				return &id
			}
			return nil
		},
		Equal:           downloadClientsEqual,
		DeleteUnmanaged: deleteUnmanaged,
	})
}

// downloadClientsEqual compares a remote client against a declared one.
// Declared fields only; a declared secret field (API key, password) can
// never be verified against the masked remote value, so it forces an
// update.
func downloadClientsEqual(cur, des irv1.DownloadClientIR) bool {
	if cur.Name != des.Name || cur.Implementation != des.Implementation {
		return false
	}
	if cur.Enable != des.Enable || cur.Priority != des.Priority {
		return false
	}
	if cur.RemoveCompletedDownloads != des.RemoveCompletedDownloads {
		return false
	}
	if cur.RemoveFailedDownloads != des.RemoveFailedDownloads {
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

func tagSetsEqual(cur, des []string) bool {
	if len(cur) != len(des) {
		return false
	}
	set := make(map[string]bool, len(cur))
	for _, t := range cur {
		set[t] = true
	}
	for _, t := range des {
		if !set[t] {
			return false
		}
	}
	return true
}

// createDownloadClient creates a download client.
func (a *Adapter) createDownloadClient(ctx context.Context, c *httpclient.Client, dc *irv1.DownloadClientIR, rt *RefTable) error {
	payload, err := a.irToDownloadClient(dc, rt)
	if err != nil {
		return err
	}
	var created DownloadClientResource
	if err := c.Post(ctx, "/api/v3/downloadclient", payload, &created); err != nil {
		return fmt.Errorf("failed to create download client %q: %w", dc.Name, err)
	}
	return nil
}

// updateDownloadClient updates a download client in place.
func (a *Adapter) updateDownloadClient(ctx context.Context, c *httpclient.Client, id int, dc *irv1.DownloadClientIR, rt *RefTable) error {
	payload, err := a.irToDownloadClient(dc, rt)
	if err != nil {
		return err
	}
	payload.ID = id
	path := fmt.Sprintf("/api/v3/downloadclient/%d", id)
	if err := c.Put(ctx, path, payload, nil); err != nil {
		return fmt.Errorf("failed to update download client %q: %w", dc.Name, err)
	}
	return nil
}

// deleteDownloadClient removes a download client by ID.
func (a *Adapter) deleteDownloadClient(ctx context.Context, c *httpclient.Client, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/v3/downloadclient/%d", id))
}
