package radarr

import (
	"context"
	"fmt"
	"strings"

	"github.com/concordarr/concordarr-operator/internal/adapters"
	"github.com/concordarr/concordarr-operator/internal/adapters/httpclient"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// Group item IDs live above the quality ID range.
const groupIDBase = 1000

// getQualityProfiles retrieves all quality profiles and decodes them into
// IR, with remote custom format and language IDs resolved to names.
func (a *Adapter) getQualityProfiles(ctx context.Context, c *httpclient.Client, rt *RefTable) (*irv1.QualityProfilesIR, map[string]int, error) {
	var resources []QualityProfileResource
	if err := c.Get(ctx, "/api/v3/qualityprofile", &resources); err != nil {
		return nil, nil, fmt.Errorf("failed to get quality profiles: %w", err)
	}

	profiles := make([]irv1.QualityProfileIR, 0, len(resources))
	ids := make(map[string]int, len(resources))
	for i := range resources {
		profiles = append(profiles, a.qualityProfileToIR(&resources[i], rt))
		ids[resources[i].Name] = resources[i].ID
	}

	return &irv1.QualityProfilesIR{Definitions: profiles}, ids, nil
}

// qualityProfileToIR decodes a quality profile API resource. Allowed items
// come back highest-priority first, matching declared order. Format scores
// of zero are omitted: zero is the service default for unlisted formats.
func (a *Adapter) qualityProfileToIR(r *QualityProfileResource, rt *RefTable) irv1.QualityProfileIR {
	p := irv1.QualityProfileIR{
		Name:              r.Name,
		UpgradesAllowed:   r.UpgradeAllowed,
		MinFormatScore:    r.MinFormatScore,
		CutoffFormatScore: r.CutoffFormatScore,
	}

	if r.Language != nil {
		p.Language = r.Language.Name
	}

	// Items arrive worst first; declared order is best first.
	for i := len(r.Items) - 1; i >= 0; i-- {
		item := r.Items[i]
		if !item.Allowed {
			continue
		}
		group := irv1.QualityGroupIR{Name: item.Name}
		if item.Quality != nil {
			group.Name = item.Quality.Name
			group.Members = []string{item.Quality.Name}
		} else {
			for _, member := range item.Items {
				if member.Quality != nil {
					group.Members = append(group.Members, member.Quality.Name)
				}
			}
		}
		p.Qualities = append(p.Qualities, group)

		if itemID(item) == r.Cutoff {
			p.UpgradeUntil = group.Name
		}
	}

	for _, fi := range r.FormatItems {
		if fi.Score == 0 {
			continue
		}
		name, ok := rt.UnresolveCustomFormat(fi.Format)
		if !ok {
			// Dangling format reference on the remote. Fall back to the
			// inline name so the dump stays readable.
			name = fi.Name
		}
		p.FormatScores = append(p.FormatScores, irv1.FormatScoreIR{
			Format: name,
			Score:  fi.Score,
		})
	}

	return p
}

func itemID(item QualityProfileItem) int {
	if item.Quality != nil {
		return item.Quality.ID
	}
	return item.ID
}

// irToQualityProfile encodes an IR quality profile. The API requires every
// quality in the item list: declared groups are allowed, everything else is
// appended disallowed. Items are emitted worst first, so declared groups go
// in reverse with disallowed qualities below them.
func (a *Adapter) irToQualityProfile(p *irv1.QualityProfileIR, rt *RefTable) (QualityProfileResource, error) {
	r := QualityProfileResource{
		Name:              p.Name,
		UpgradeAllowed:    p.UpgradesAllowed,
		MinFormatScore:    p.MinFormatScore,
		CutoffFormatScore: p.CutoffFormatScore,
	}

	if p.Language != "" {
		lang, err := rt.ResolveLanguage(p.Language, p.Name)
		if err != nil {
			return r, err
		}
		r.Language = &LanguageResource{ID: lang.ID, Name: lang.Name}
	}

	declared := make(map[string]bool)
	for _, group := range p.Qualities {
		for _, member := range group.Members {
			declared[member] = true
		}
	}

	for _, q := range rt.QualityOrder() {
		if !declared[q.Name] {
			quality := q
			r.Items = append(r.Items, QualityProfileItem{
				Quality: &quality,
				Allowed: false,
			})
		}
	}

	cutoff := 0
	for i := len(p.Qualities) - 1; i >= 0; i-- {
		group := p.Qualities[i]
		item, err := a.irQualityGroupToItem(group, i, p.Name, rt)
		if err != nil {
			return r, err
		}
		r.Items = append(r.Items, item)
		if strings.EqualFold(group.Name, p.UpgradeUntil) {
			cutoff = itemID(item)
		}
	}
	if cutoff == 0 && len(r.Items) > 0 {
		// Default the cutoff to the highest allowed item.
		cutoff = itemID(r.Items[len(r.Items)-1])
	}
	r.Cutoff = cutoff

	for _, fs := range p.FormatScores {
		formatID, err := rt.ResolveCustomFormat(fs.Format, p.Name)
		if err != nil {
			return r, err
		}
		r.FormatItems = append(r.FormatItems, ProfileFormatItem{
			Format: formatID,
			Name:   fs.Format,
			Score:  fs.Score,
		})
	}

	return r, nil
}

func (a *Adapter) irQualityGroupToItem(group irv1.QualityGroupIR, index int, profileName string, rt *RefTable) (QualityProfileItem, error) {
	if len(group.Members) == 1 {
		q, err := rt.ResolveQuality(group.Members[0], profileName)
		if err != nil {
			return QualityProfileItem{}, err
		}
		return QualityProfileItem{Quality: &q, Allowed: true}, nil
	}

	item := QualityProfileItem{
		ID:      groupIDBase + index,
		Name:    group.Name,
		Allowed: true,
	}
	for _, member := range group.Members {
		q, err := rt.ResolveQuality(member, profileName)
		if err != nil {
			return QualityProfileItem{}, err
		}
		item.Items = append(item.Items, QualityProfileItem{
			Quality: &q,
			Allowed: true,
		})
	}
	return item, nil
}

// diffQualityProfiles computes quality profile changes.
func (a *Adapter) diffQualityProfiles(current, desired *irv1.IR, ids map[string]int) adapters.ChangeSet {
	var cur, des []irv1.QualityProfileIR
	deleteUnmanaged := false
	if current.QualityProfiles != nil {
		cur = current.QualityProfiles.Definitions
	}
	if desired.QualityProfiles != nil {
		des = desired.QualityProfiles.Definitions
		deleteUnmanaged = desired.QualityProfiles.DeleteUnmanaged
	}

	return adapters.DiffCollection(cur, des, adapters.DiffOptions[irv1.QualityProfileIR]{
		Kind: adapters.ResourceQualityProfile,
		Key:  func(p irv1.QualityProfileIR) string { return p.Name },
		ID: func(p irv1.QualityProfileIR) *int {
			if id, ok := ids[p.Name]; ok {
				return &id
			}
			return nil
		},
		Equal:           qualityProfilesEqual,
		DeleteUnmanaged: deleteUnmanaged,
	})
}

func qualityProfilesEqual(cur, des irv1.QualityProfileIR) bool {
	if cur.Name != des.Name {
		return false
	}
	if cur.UpgradesAllowed != des.UpgradesAllowed {
		return false
	}
	if des.UpgradesAllowed && !strings.EqualFold(cur.UpgradeUntil, des.UpgradeUntil) {
		return false
	}
	if cur.MinFormatScore != des.MinFormatScore || cur.CutoffFormatScore != des.CutoffFormatScore {
		return false
	}
	if des.Language != "" && !strings.EqualFold(cur.Language, des.Language) {
		return false
	}

	if len(cur.Qualities) != len(des.Qualities) {
		return false
	}
	for i := range des.Qualities {
		if !qualityGroupsEqual(cur.Qualities[i], des.Qualities[i]) {
			return false
		}
	}

	return formatScoresEqual(cur.FormatScores, des.FormatScores)
}

func qualityGroupsEqual(cur, des irv1.QualityGroupIR) bool {
	if cur.Name != des.Name || len(cur.Members) != len(des.Members) {
		return false
	}
	members := make(map[string]bool, len(cur.Members))
	for _, m := range cur.Members {
		members[m] = true
	}
	for _, m := range des.Members {
		if !members[m] {
			return false
		}
	}
	return true
}

// formatScoresEqual compares score assignments with absent entries scoring
// zero: the remote defaults unlisted formats to zero and decode omits
// zero-score items, so a declared zero must match a missing remote entry.
func formatScoresEqual(cur, des []irv1.FormatScoreIR) bool {
	scores := make(map[string]int, len(cur))
	for _, fs := range cur {
		scores[fs.Format] = fs.Score
	}
	declared := make(map[string]bool, len(des))
	for _, fs := range des {
		declared[fs.Format] = true
		if scores[fs.Format] != fs.Score {
			return false
		}
	}
	for _, fs := range cur {
		if fs.Score != 0 && !declared[fs.Format] {
			return false
		}
	}
	return true
}

// createQualityProfile creates a quality profile.
func (a *Adapter) createQualityProfile(ctx context.Context, c *httpclient.Client, p *irv1.QualityProfileIR, rt *RefTable) error {
	payload, err := a.irToQualityProfile(p, rt)
	if err != nil {
		return err
	}
	var created QualityProfileResource
	if err := c.Post(ctx, "/api/v3/qualityprofile", payload, &created); err != nil {
		return fmt.Errorf("failed to create quality profile %q: %w", p.Name, err)
	}
	return nil
}

// updateQualityProfile updates a quality profile in place.
func (a *Adapter) updateQualityProfile(ctx context.Context, c *httpclient.Client, id int, p *irv1.QualityProfileIR, rt *RefTable) error {
	payload, err := a.irToQualityProfile(p, rt)
	if err != nil {
		return err
	}
	payload.ID = id
	path := fmt.Sprintf("/api/v3/qualityprofile/%d", id)
	if err := c.Put(ctx, path, payload, nil); err != nil {
		return fmt.Errorf("failed to update quality profile %q: %w", p.Name, err)
	}
	return nil
}

// deleteQualityProfile removes a quality profile by ID.
func (a *Adapter) deleteQualityProfile(ctx context.Context, c *httpclient.Client, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/v3/qualityprofile/%d", id))
}
