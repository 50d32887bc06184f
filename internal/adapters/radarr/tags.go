package radarr

import (
	"context"
	"fmt"
	"sort"

	"github.com/concordarr/concordarr-operator/internal/adapters"
	"github.com/concordarr/concordarr-operator/internal/adapters/httpclient"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// getTags retrieves all tags from Radarr.
func (a *Adapter) getTags(ctx context.Context, c *httpclient.Client) (*irv1.TagsIR, error) {
	var tags []TagResource
	if err := c.Get(ctx, "/api/v3/tag", &tags); err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}

	labels := make([]string, 0, len(tags))
	for _, t := range tags {
		labels = append(labels, t.Label)
	}
	sort.Strings(labels)

	return &irv1.TagsIR{Labels: labels}, nil
}

// diffTags computes tag changes. Tags are create-only: a matched label is
// always in sync, and unmatched remote tags are never deleted because they
// may be attached to movies outside managed scope.
func (a *Adapter) diffTags(current, desired *irv1.IR) adapters.ChangeSet {
	var cur, des []string
	if current.Tags != nil {
		cur = current.Tags.Labels
	}
	if desired.Tags != nil {
		des = desired.Tags.Labels
	}

	return adapters.DiffCollection(cur, des, adapters.DiffOptions[string]{
		Kind:       adapters.ResourceTag,
		Key:        func(label string) string { return label },
		ID:         func(string) *int { return nil },
		Equal:      func(_, _ string) bool { return true },
		CreateOnly: true,
	})
}

// createTag creates a tag with the given label.
func (a *Adapter) createTag(ctx context.Context, c *httpclient.Client, label string) error {
	var created TagResource
	if err := c.Post(ctx, "/api/v3/tag", TagResource{Label: label}, &created); err != nil {
		return fmt.Errorf("failed to create tag %q: %w", label, err)
	}
	return nil
}
