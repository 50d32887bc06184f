package radarr

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/concordarr/concordarr-operator/internal/adapters"
	"github.com/concordarr/concordarr-operator/internal/adapters/httpclient"
)

// RefTable maps symbolic names to service-assigned IDs and back. It is
// loaded from the remote before encoding payloads and refreshed after each
// collection's creates so resources created in the same pass resolve.
type RefTable struct {
	tagsByLabel   map[string]int
	tagsByID      map[int]string
	formatsByName map[string]int
	formatsByID   map[int]string
	clientsByName map[string]int
	clientsByID   map[int]string

	profilesByName map[string]int
	profilesByID   map[int]string

	qualitiesByName map[string]QualityResource
	qualityOrder    []QualityResource
	languagesByName map[string]LanguageResource
	languagesByID   map[int]string
}

// loadRefTable fetches every name/ID mapping the encoders need.
func loadRefTable(ctx context.Context, c *httpclient.Client) (*RefTable, error) {
	rt := &RefTable{
		tagsByLabel:     make(map[string]int),
		tagsByID:        make(map[int]string),
		formatsByName:   make(map[string]int),
		formatsByID:     make(map[int]string),
		clientsByName:   make(map[string]int),
		clientsByID:     make(map[int]string),
		profilesByName:  make(map[string]int),
		profilesByID:    make(map[int]string),
		qualitiesByName: make(map[string]QualityResource),
		languagesByName: make(map[string]LanguageResource),
		languagesByID:   make(map[int]string),
	}

	var tags []TagResource
	if err := c.Get(ctx, "/api/v3/tag", &tags); err != nil {
		return nil, fmt.Errorf("failed to get tags: %w", err)
	}
	for _, t := range tags {
		rt.tagsByLabel[t.Label] = t.ID
		rt.tagsByID[t.ID] = t.Label
	}

	var formats []CustomFormatResource
	if err := c.Get(ctx, "/api/v3/customformat", &formats); err != nil {
		return nil, fmt.Errorf("failed to get custom formats: %w", err)
	}
	for _, f := range formats {
		rt.formatsByName[f.Name] = f.ID
		rt.formatsByID[f.ID] = f.Name
	}

	var clients []DownloadClientResource
	if err := c.Get(ctx, "/api/v3/downloadclient", &clients); err != nil {
		return nil, fmt.Errorf("failed to get download clients: %w", err)
	}
	for _, dc := range clients {
		rt.clientsByName[dc.Name] = dc.ID
		rt.clientsByID[dc.ID] = dc.Name
	}

	var profiles []QualityProfileResource
	if err := c.Get(ctx, "/api/v3/qualityprofile", &profiles); err != nil {
		return nil, fmt.Errorf("failed to get quality profiles: %w", err)
	}
	for _, p := range profiles {
		rt.profilesByName[p.Name] = p.ID
		rt.profilesByID[p.ID] = p.Name
	}

	var definitions []QualityDefinitionResource
	if err := c.Get(ctx, "/api/v3/qualitydefinition", &definitions); err != nil {
		return nil, fmt.Errorf("failed to get quality definitions: %w", err)
	}
	for _, qd := range definitions {
		rt.qualitiesByName[qd.Quality.Name] = qd.Quality
		rt.qualityOrder = append(rt.qualityOrder, qd.Quality)
	}

	var languages []LanguageResource
	if err := c.Get(ctx, "/api/v3/language", &languages); err != nil {
		return nil, fmt.Errorf("failed to get languages: %w", err)
	}
	for _, l := range languages {
		rt.languagesByName[strings.ToLower(l.Name)] = l
		rt.languagesByID[l.ID] = l.Name
	}

	return rt, nil
}

// ResolveTags maps tag labels to IDs. The result is sorted so encoded
// payloads are deterministic. Unknown labels fail resolution.
func (rt *RefTable) ResolveTags(labels []string, from string) ([]int, error) {
	ids := make([]int, 0, len(labels))
	for _, label := range labels {
		id, ok := rt.tagsByLabel[label]
		if !ok {
			return nil, &adapters.ReferenceNotFoundError{
				Kind: adapters.ResourceTag,
				Name: label,
				From: from,
			}
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

// UnresolveTags maps tag IDs back to labels, sorted for determinism.
// Unknown IDs are dropped: a dangling tag reference is remote garbage,
// not an error.
func (rt *RefTable) UnresolveTags(ids []int) []string {
	labels := make([]string, 0, len(ids))
	for _, id := range ids {
		if label, ok := rt.tagsByID[id]; ok {
			labels = append(labels, label)
		}
	}
	sort.Strings(labels)
	return labels
}

// ResolveCustomFormat maps a custom format name to its ID.
func (rt *RefTable) ResolveCustomFormat(name, from string) (int, error) {
	id, ok := rt.formatsByName[name]
	if !ok {
		return 0, &adapters.ReferenceNotFoundError{
			Kind: adapters.ResourceCustomFormat,
			Name: name,
			From: from,
		}
	}
	return id, nil
}

// UnresolveCustomFormat maps a custom format ID back to its name.
func (rt *RefTable) UnresolveCustomFormat(id int) (string, bool) {
	name, ok := rt.formatsByID[id]
	return name, ok
}

// ResolveDownloadClient maps a download client name to its ID.
func (rt *RefTable) ResolveDownloadClient(name, from string) (int, error) {
	id, ok := rt.clientsByName[name]
	if !ok {
		return 0, &adapters.ReferenceNotFoundError{
			Kind: adapters.ResourceDownloadClient,
			Name: name,
			From: from,
		}
	}
	return id, nil
}

// UnresolveDownloadClient maps a download client ID back to its name.
func (rt *RefTable) UnresolveDownloadClient(id int) (string, bool) {
	name, ok := rt.clientsByID[id]
	return name, ok
}

// ResolveQualityProfile maps a quality profile name to its ID.
func (rt *RefTable) ResolveQualityProfile(name, from string) (int, error) {
	id, ok := rt.profilesByName[name]
	if !ok {
		return 0, &adapters.ReferenceNotFoundError{
			Kind: adapters.ResourceQualityProfile,
			Name: name,
			From: from,
		}
	}
	return id, nil
}

// UnresolveQualityProfile maps a quality profile ID back to its name.
func (rt *RefTable) UnresolveQualityProfile(id int) (string, bool) {
	name, ok := rt.profilesByID[id]
	return name, ok
}

// QualityOrder returns every quality in service definition order, worst
// first. Profile encoding needs the full ordered set because the API
// requires every quality present in a profile's item list.
func (rt *RefTable) QualityOrder() []QualityResource {
	return rt.qualityOrder
}

// ResolveQuality returns the quality descriptor for a quality name.
func (rt *RefTable) ResolveQuality(name, from string) (QualityResource, error) {
	q, ok := rt.qualitiesByName[name]
	if !ok {
		return QualityResource{}, &adapters.ReferenceNotFoundError{
			Kind: adapters.ResourceQualityDefinition,
			Name: name,
			From: from,
		}
	}
	return q, nil
}

// ResolveLanguage maps a language name (case-insensitive) to its resource.
func (rt *RefTable) ResolveLanguage(name, from string) (LanguageResource, error) {
	l, ok := rt.languagesByName[strings.ToLower(name)]
	if !ok {
		return LanguageResource{}, &adapters.ReferenceNotFoundError{
			Kind: "Language",
			Name: name,
			From: from,
		}
	}
	return l, nil
}

// UnresolveLanguage maps a language ID back to its name.
func (rt *RefTable) UnresolveLanguage(id int) (string, bool) {
	name, ok := rt.languagesByID[id]
	return name, ok
}
