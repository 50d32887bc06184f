package radarr

import (
	"testing"

	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

func profileRefTable() *RefTable {
	qualities := []QualityResource{
		{ID: 1, Name: "SDTV"},
		{ID: 4, Name: "HDTV-720p"},
		{ID: 9, Name: "HDTV-1080p"},
		{ID: 3, Name: "WEBDL-1080p"},
		{ID: 7, Name: "Bluray-1080p"},
	}
	rt := &RefTable{
		tagsByLabel:     map[string]int{},
		tagsByID:        map[int]string{},
		formatsByName:   map[string]int{"x265": 10},
		formatsByID:     map[int]string{10: "x265"},
		clientsByName:   map[string]int{},
		clientsByID:     map[int]string{},
		qualitiesByName: map[string]QualityResource{},
		languagesByName: map[string]LanguageResource{"english": {ID: 1, Name: "English"}},
		languagesByID:   map[int]string{1: "English"},
	}
	for _, q := range qualities {
		rt.qualitiesByName[q.Name] = q
		rt.qualityOrder = append(rt.qualityOrder, q)
	}
	return rt
}

func TestIRToQualityProfile(t *testing.T) {
	a := &Adapter{}
	rt := profileRefTable()

	profile := irv1.QualityProfileIR{
		Name:            "HD",
		UpgradesAllowed: true,
		UpgradeUntil:    "WEB 1080p",
		Qualities: []irv1.QualityGroupIR{
			{Name: "Bluray-1080p", Members: []string{"Bluray-1080p"}},
			{Name: "WEB 1080p", Members: []string{"WEBDL-1080p", "HDTV-1080p"}},
		},
		MinFormatScore:    0,
		CutoffFormatScore: 100,
		FormatScores: []irv1.FormatScoreIR{
			{Format: "x265", Score: 50},
		},
		Language: "English",
	}

	r, err := a.irToQualityProfile(&profile, rt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Every quality appears exactly once: 3 disallowed singles plus the
	// two declared entries.
	if len(r.Items) != 5 {
		t.Fatalf("expected 5 items, got %d", len(r.Items))
	}

	// Disallowed first, then declared in reverse (worst to best).
	for i := 0; i < 3; i++ {
		if r.Items[i].Allowed {
			t.Errorf("item %d: expected disallowed", i)
		}
	}
	group := r.Items[3]
	if group.Name != "WEB 1080p" || !group.Allowed {
		t.Errorf("expected allowed group at position 3, got %+v", group)
	}
	if len(group.Items) != 2 {
		t.Errorf("expected 2 group members, got %d", len(group.Items))
	}
	if group.ID < groupIDBase {
		t.Errorf("group ID %d below group range", group.ID)
	}
	best := r.Items[4]
	if best.Quality == nil || best.Quality.Name != "Bluray-1080p" || !best.Allowed {
		t.Errorf("expected Bluray-1080p at the top, got %+v", best)
	}

	if r.Cutoff != group.ID {
		t.Errorf("expected cutoff %d (group), got %d", group.ID, r.Cutoff)
	}
	if len(r.FormatItems) != 1 || r.FormatItems[0].Format != 10 || r.FormatItems[0].Score != 50 {
		t.Errorf("unexpected format items: %+v", r.FormatItems)
	}
	if r.Language == nil || r.Language.ID != 1 {
		t.Errorf("expected language English (1), got %+v", r.Language)
	}
}

func TestQualityProfileRoundTrip(t *testing.T) {
	a := &Adapter{}
	rt := profileRefTable()

	declared := irv1.QualityProfileIR{
		Name:            "HD",
		UpgradesAllowed: true,
		UpgradeUntil:    "Bluray-1080p",
		Qualities: []irv1.QualityGroupIR{
			{Name: "Bluray-1080p", Members: []string{"Bluray-1080p"}},
			{Name: "WEB 1080p", Members: []string{"WEBDL-1080p", "HDTV-1080p"}},
		},
		CutoffFormatScore: 100,
		FormatScores: []irv1.FormatScoreIR{
			{Format: "x265", Score: 50},
		},
		Language: "English",
	}

	encoded, err := a.irToQualityProfile(&declared, rt)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	decoded := a.qualityProfileToIR(&encoded, rt)

	if !qualityProfilesEqual(decoded, declared) {
		t.Errorf("profile did not survive encode/decode round trip:\ndeclared: %+v\ndecoded:  %+v", declared, decoded)
	}
}

func TestQualityProfilesEqual(t *testing.T) {
	base := irv1.QualityProfileIR{
		Name:            "HD",
		UpgradesAllowed: true,
		UpgradeUntil:    "Bluray-1080p",
		Qualities: []irv1.QualityGroupIR{
			{Name: "Bluray-1080p", Members: []string{"Bluray-1080p"}},
		},
		FormatScores: []irv1.FormatScoreIR{{Format: "x265", Score: 50}},
		Language:     "English",
	}

	tests := []struct {
		name     string
		mutate   func(p *irv1.QualityProfileIR)
		expected bool
	}{
		{"identical", func(p *irv1.QualityProfileIR) {}, true},
		{"different score", func(p *irv1.QualityProfileIR) {
			p.FormatScores = []irv1.FormatScoreIR{{Format: "x265", Score: 100}}
		}, false},
		{"different cutoff", func(p *irv1.QualityProfileIR) { p.UpgradeUntil = "WEB 1080p" }, false},
		{"case-insensitive cutoff", func(p *irv1.QualityProfileIR) { p.UpgradeUntil = "bluray-1080p" }, true},
		{"different qualities", func(p *irv1.QualityProfileIR) {
			p.Qualities = append(p.Qualities, irv1.QualityGroupIR{Name: "SDTV", Members: []string{"SDTV"}})
		}, false},
		{"language not declared is ignored", func(p *irv1.QualityProfileIR) { p.Language = "" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			current := base
			desired := base
			tt.mutate(&desired)
			if got := qualityProfilesEqual(current, desired); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestFormatScoresEqual(t *testing.T) {
	tests := []struct {
		name     string
		cur      []irv1.FormatScoreIR
		des      []irv1.FormatScoreIR
		expected bool
	}{
		{
			// The remote defaults unlisted formats to zero and decoding
			// drops zero-score items, so a declared zero must converge.
			"declared zero score matches absent remote entry",
			nil,
			[]irv1.FormatScoreIR{{Format: "x265", Score: 0}},
			true,
		},
		{
			"matching nonzero scores",
			[]irv1.FormatScoreIR{{Format: "x265", Score: 50}},
			[]irv1.FormatScoreIR{{Format: "x265", Score: 50}},
			true,
		},
		{
			"declared score differs",
			[]irv1.FormatScoreIR{{Format: "x265", Score: 50}},
			[]irv1.FormatScoreIR{{Format: "x265", Score: 100}},
			false,
		},
		{
			"remote nonzero score on undeclared format is drift",
			[]irv1.FormatScoreIR{{Format: "x265", Score: 50}},
			nil,
			false,
		},
		{
			"declared zero resets remote nonzero",
			[]irv1.FormatScoreIR{{Format: "x265", Score: 50}},
			[]irv1.FormatScoreIR{{Format: "x265", Score: 0}},
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatScoresEqual(tt.cur, tt.des); got != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, got)
			}
		})
	}
}
