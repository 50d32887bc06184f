package radarr

import (
	"context"
	"fmt"

	"github.com/concordarr/concordarr-operator/internal/adapters"
	"github.com/concordarr/concordarr-operator/internal/adapters/httpclient"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// getRootFolders retrieves all root folders from Radarr.
func (a *Adapter) getRootFolders(ctx context.Context, c *httpclient.Client) (*irv1.RootFoldersIR, []RootFolderResource, error) {
	var resources []RootFolderResource
	if err := c.Get(ctx, "/api/v3/rootfolder", &resources); err != nil {
		return nil, nil, fmt.Errorf("failed to get root folders: %w", err)
	}

	folders := make([]irv1.RootFolderIR, 0, len(resources))
	for _, r := range resources {
		folders = append(folders, irv1.RootFolderIR{Path: r.Path})
	}

	return &irv1.RootFoldersIR{Definitions: folders}, resources, nil
}

// diffRootFolders computes root folder changes. Identity is the path,
// and a matched path is always in sync since path is the only field.
// Deletes require deleteUnmanaged: folders may contain library content.
func (a *Adapter) diffRootFolders(current, desired *irv1.IR, ids map[string]int) adapters.ChangeSet {
	var cur, des []irv1.RootFolderIR
	deleteUnmanaged := false
	if current.RootFolders != nil {
		cur = current.RootFolders.Definitions
	}
	if desired.RootFolders != nil {
		des = desired.RootFolders.Definitions
		deleteUnmanaged = desired.RootFolders.DeleteUnmanaged
	}

	return adapters.DiffCollection(cur, des, adapters.DiffOptions[irv1.RootFolderIR]{
		Kind: adapters.ResourceRootFolder,
		Key:  func(f irv1.RootFolderIR) string { return f.Path },
		ID: func(f irv1.RootFolderIR) *int {
			if id, ok := ids[f.Path]; ok {
				return &id
			}
			return nil
		},
		Equal:           func(_, _ irv1.RootFolderIR) bool { return true },
		DeleteUnmanaged: deleteUnmanaged,
	})
}

// createRootFolder adds a root folder by path.
func (a *Adapter) createRootFolder(ctx context.Context, c *httpclient.Client, folder irv1.RootFolderIR) error {
	var created RootFolderResource
	if err := c.Post(ctx, "/api/v3/rootfolder", RootFolderResource{Path: folder.Path}, &created); err != nil {
		return fmt.Errorf("failed to create root folder %q: %w", folder.Path, err)
	}
	return nil
}

// deleteRootFolder removes a root folder by ID.
func (a *Adapter) deleteRootFolder(ctx context.Context, c *httpclient.Client, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/v3/rootfolder/%d", id))
}
