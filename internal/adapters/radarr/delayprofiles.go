package radarr

import (
	"context"
	"fmt"

	"github.com/concordarr/concordarr-operator/internal/adapters"
	"github.com/concordarr/concordarr-operator/internal/adapters/httpclient"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// getDelayProfiles retrieves all delay profiles in priority order (lowest
// order value first, the catch-all default last), with tag IDs resolved
// back to labels.
func (a *Adapter) getDelayProfiles(ctx context.Context, c *httpclient.Client, rt *RefTable) (*irv1.DelayProfilesIR, []DelayProfileResource, error) {
	var resources []DelayProfileResource
	if err := c.Get(ctx, "/api/v3/delayprofile", &resources); err != nil {
		return nil, nil, fmt.Errorf("failed to get delay profiles: %w", err)
	}

	sortDelayProfiles(resources)

	profiles := make([]irv1.DelayProfileIR, 0, len(resources))
	for _, r := range resources {
		profiles = append(profiles, irv1.DelayProfileIR{
			PreferredProtocol:              r.PreferredProtocol,
			UsenetDelay:                    r.UsenetDelay,
			TorrentDelay:                   r.TorrentDelay,
			EnableUsenet:                   r.EnableUsenet,
			EnableTorrent:                  r.EnableTorrent,
			BypassIfHighestQuality:         r.BypassIfHighestQuality,
			BypassIfAboveCustomFormatScore: r.BypassIfAboveCustomFormatScore,
			MinimumCustomFormatScore:       r.MinimumCustomFormatScore,
			Tags:                           rt.UnresolveTags(r.Tags),
		})
	}

	return &irv1.DelayProfilesIR{Definitions: profiles}, resources, nil
}

// sortDelayProfiles orders profiles by ascending order value, so the
// catch-all default (highest order, empty tags) sorts last. Positional
// identity depends on this ordering being stable.
func sortDelayProfiles(resources []DelayProfileResource) {
	for i := 1; i < len(resources); i++ {
		for j := i; j > 0 && resources[j].Order < resources[j-1].Order; j-- {
			resources[j], resources[j-1] = resources[j-1], resources[j]
		}
	}
}

// diffDelayProfiles computes delay profile changes. Profiles have no names,
// so identity is positional: any difference in the ordered lists replaces
// the whole collection.
func (a *Adapter) diffDelayProfiles(current, desired *irv1.IR) adapters.ChangeSet {
	var cur, des []irv1.DelayProfileIR
	if current.DelayProfiles != nil {
		cur = current.DelayProfiles.Definitions
	}
	if desired.DelayProfiles != nil {
		des = desired.DelayProfiles.Definitions
	}
	if len(des) == 0 {
		if desired.DelayProfiles == nil || !desired.DelayProfiles.DeleteUnmanaged {
			// No declared delay profiles means the collection is unmanaged.
			return adapters.ChangeSet{}
		}
		// deleteUnmanaged with nothing declared trims every profile except
		// the built-in default, which cannot be deleted.
		var changes adapters.ChangeSet
		for i := 0; i < len(cur)-1; i++ {
			changes.Deletes = append(changes.Deletes, adapters.Change{
				ResourceType: adapters.ResourceDelayProfile,
				Name:         fmt.Sprintf("position %d", i+1),
			})
		}
		return changes
	}

	return adapters.DiffReplaceAll(cur, des, adapters.ResourceDelayProfile,
		func(i int, _ irv1.DelayProfileIR) string { return fmt.Sprintf("position %d", i+1) },
		func(irv1.DelayProfileIR) *int { return nil },
		delayProfilesEqual,
	)
}

func delayProfilesEqual(cur, des irv1.DelayProfileIR) bool {
	if cur.PreferredProtocol != des.PreferredProtocol {
		return false
	}
	if cur.UsenetDelay != des.UsenetDelay || cur.TorrentDelay != des.TorrentDelay {
		return false
	}
	if cur.EnableUsenet != des.EnableUsenet || cur.EnableTorrent != des.EnableTorrent {
		return false
	}
	if cur.BypassIfHighestQuality != des.BypassIfHighestQuality {
		return false
	}
	if cur.BypassIfAboveCustomFormatScore != des.BypassIfAboveCustomFormatScore {
		return false
	}
	if cur.MinimumCustomFormatScore != des.MinimumCustomFormatScore {
		return false
	}
	if len(cur.Tags) != len(des.Tags) {
		return false
	}
	tags := make(map[string]bool, len(cur.Tags))
	for _, t := range cur.Tags {
		tags[t] = true
	}
	for _, t := range des.Tags {
		if !tags[t] {
			return false
		}
	}
	return true
}

// replaceDelayProfiles replaces the whole delay profile list. The service
// refuses to delete its built-in default profile, so the last declared
// entry (the catch-all) updates the remote default in place; every other
// remote profile is deleted and every other declared profile created.
func (a *Adapter) replaceDelayProfiles(ctx context.Context, c *httpclient.Client, desired []irv1.DelayProfileIR, rt *RefTable) error {
	var existing []DelayProfileResource
	if err := c.Get(ctx, "/api/v3/delayprofile", &existing); err != nil {
		return fmt.Errorf("failed to get delay profiles: %w", err)
	}
	sortDelayProfiles(existing)

	if len(desired) == 0 {
		// Nothing declared with deleteUnmanaged set: trim down to the
		// built-in default, which the service refuses to delete.
		if len(existing) <= 1 {
			return nil
		}
		for _, r := range existing[:len(existing)-1] {
			if err := c.Delete(ctx, fmt.Sprintf("/api/v3/delayprofile/%d", r.ID)); err != nil {
				return fmt.Errorf("failed to delete delay profile %d: %w", r.ID, err)
			}
		}
		return nil
	}

	if len(existing) == 0 {
		for i, p := range desired {
			r, err := a.irToDelayProfile(p, rt)
			if err != nil {
				return err
			}
			r.Order = i + 1
			var created DelayProfileResource
			if err := c.Post(ctx, "/api/v3/delayprofile", r, &created); err != nil {
				return fmt.Errorf("failed to create delay profile at position %d: %w", i+1, err)
			}
		}
		return nil
	}

	defaultProfile := existing[len(existing)-1]
	for _, r := range existing[:len(existing)-1] {
		if err := c.Delete(ctx, fmt.Sprintf("/api/v3/delayprofile/%d", r.ID)); err != nil {
			return fmt.Errorf("failed to delete delay profile %d: %w", r.ID, err)
		}
	}

	// The catch-all is declared last; higher entries get lower order
	// values so they take precedence.
	for i, p := range desired {
		r, err := a.irToDelayProfile(p, rt)
		if err != nil {
			return err
		}
		r.Order = i + 1

		if i == len(desired)-1 {
			r.ID = defaultProfile.ID
			r.Order = defaultProfile.Order
			path := fmt.Sprintf("/api/v3/delayprofile/%d", r.ID)
			if err := c.Put(ctx, path, r, nil); err != nil {
				return fmt.Errorf("failed to update default delay profile: %w", err)
			}
			continue
		}

		var created DelayProfileResource
		if err := c.Post(ctx, "/api/v3/delayprofile", r, &created); err != nil {
			return fmt.Errorf("failed to create delay profile at position %d: %w", i+1, err)
		}
	}

	return nil
}

func (a *Adapter) irToDelayProfile(p irv1.DelayProfileIR, rt *RefTable) (DelayProfileResource, error) {
	tags, err := rt.ResolveTags(p.Tags, "delay profile")
	if err != nil {
		return DelayProfileResource{}, err
	}
	return DelayProfileResource{
		PreferredProtocol:              p.PreferredProtocol,
		UsenetDelay:                    p.UsenetDelay,
		TorrentDelay:                   p.TorrentDelay,
		EnableUsenet:                   p.EnableUsenet,
		EnableTorrent:                  p.EnableTorrent,
		BypassIfHighestQuality:         p.BypassIfHighestQuality,
		BypassIfAboveCustomFormatScore: p.BypassIfAboveCustomFormatScore,
		MinimumCustomFormatScore:       p.MinimumCustomFormatScore,
		Tags:                           tags,
	}, nil
}
