package compiler

import (
	"context"
	"reflect"
	"strings"
	"testing"

	arrv1alpha1 "github.com/concordarr/concordarr-operator/api/v1alpha1"
	"github.com/concordarr/concordarr-operator/internal/catalog"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
)

func intPtr(v int) *int           { return &v }
func boolPtr(v bool) *bool        { return &v }
func floatPtr(v float64) *float64 { return &v }

func jsonValue(s string) *apiextensionsv1.JSON {
	return &apiextensionsv1.JSON{Raw: []byte(s)}
}

func testCatalog() *catalog.Catalog {
	return catalog.NewSnapshot(
		[]catalog.CustomFormatTemplate{
			{
				TrashID:                         "ed38b889b31be83fda192888e2286d83",
				Name:                            "BR-DISK",
				IncludeCustomFormatWhenRenaming: false,
				Specifications: []catalog.TemplateCondition{
					{
						Name:           "BR-DISK",
						Implementation: "ReleaseTitleSpecification",
						Fields:         map[string]interface{}{"value": "(?i)\\bCOMPLETE\\b"},
					},
					{
						Name:           "Not Remux",
						Implementation: "SourceSpecification",
						Negate:         true,
						Fields:         map[string]interface{}{"value": float64(7)},
					},
				},
				TrashScores: map[string]int{"default": -10000},
			},
		},
		[]catalog.QualitySizeTemplate{
			{
				TrashID: "aed34b9f60ee115dfa7918b742336277",
				Type:    "movie",
				Qualities: []catalog.QualitySize{
					{Quality: "Bluray-1080p", Min: 50.4, Max: floatPtr(227), Preferred: floatPtr(194.9)},
					{Quality: "WEBDL-1080p", Min: 12.5, Max: floatPtr(137.3), Preferred: floatPtr(114.4)},
				},
			},
		},
	)
}

func TestCompileCustomFormatFromCatalog(t *testing.T) {
	c := New()
	ir, err := c.Compile(context.Background(), CompileInput{
		App: "radarr",
		URL: "http://radarr:7878",
		CustomFormats: &CustomFormatsInput{
			Definitions: []CustomFormatInput{
				{TrashID: "ed38b889b31be83fda192888e2286d83"},
			},
		},
		Catalog: testCatalog(),
	})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	if len(ir.CustomFormats.Definitions) != 1 {
		t.Fatalf("expected 1 custom format, got %d", len(ir.CustomFormats.Definitions))
	}
	cf := ir.CustomFormats.Definitions[0]
	if cf.Name != "BR-DISK" {
		t.Errorf("Name = %q, want BR-DISK", cf.Name)
	}
	if cf.DefaultScore != -10000 {
		t.Errorf("DefaultScore = %d, want -10000", cf.DefaultScore)
	}
	if !cf.DeleteUnmanagedConditions {
		t.Error("catalog-seeded format should force DeleteUnmanagedConditions")
	}
	if len(cf.Conditions) != 2 {
		t.Fatalf("expected 2 conditions, got %d", len(cf.Conditions))
	}
	if cf.Conditions[1].Name != "Not Remux" || !cf.Conditions[1].Negate {
		t.Errorf("second condition = %+v, want negated Not Remux", cf.Conditions[1])
	}
	if got := irv1.FieldValue(cf.Conditions[0].Fields, "value"); got != "(?i)\\bCOMPLETE\\b" {
		t.Errorf("condition field value = %v", got)
	}
}

func TestCompileCustomFormatOverrides(t *testing.T) {
	c := New()
	ir, err := c.Compile(context.Background(), CompileInput{
		App: "radarr",
		CustomFormats: &CustomFormatsInput{
			Definitions: []CustomFormatInput{
				{
					Name:    "My BR-DISK",
					TrashID: "ed38b889b31be83fda192888e2286d83",
					Score:   intPtr(-5000),
					Conditions: []ConditionInput{
						{
							Name:           "Not Remux",
							Implementation: "SourceSpecification",
							Negate:         false,
							Fields:         []FieldInput{{Name: "value", Value: float64(6)}},
						},
						{
							Name:           "Extra",
							Implementation: "ResolutionSpecification",
							Fields:         []FieldInput{{Name: "value", Value: float64(1080)}},
						},
					},
				},
			},
		},
		Catalog: testCatalog(),
	})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	cf := ir.CustomFormats.Definitions[0]
	if cf.Name != "My BR-DISK" {
		t.Errorf("declared name should override catalog, got %q", cf.Name)
	}
	if cf.DefaultScore != -5000 {
		t.Errorf("declared score should override catalog default, got %d", cf.DefaultScore)
	}
	if len(cf.Conditions) != 3 {
		t.Fatalf("expected 3 conditions (2 catalog, 1 extra), got %d", len(cf.Conditions))
	}
	// Overridden condition keeps the catalog's position.
	if cf.Conditions[1].Name != "Not Remux" || cf.Conditions[1].Negate {
		t.Errorf("condition override not applied in place: %+v", cf.Conditions[1])
	}
	if got := irv1.FieldValue(cf.Conditions[1].Fields, "value"); got != float64(6) {
		t.Errorf("overridden field value = %v, want 6", got)
	}
	if cf.Conditions[2].Name != "Extra" {
		t.Errorf("extra declared condition should be appended, got %q", cf.Conditions[2].Name)
	}
}

func TestCompileCustomFormatErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   CustomFormatInput
		catalog *catalog.Catalog
		wantErr string
	}{
		{
			name:    "trash id without catalog",
			input:   CustomFormatInput{TrashID: "ed38b889b31be83fda192888e2286d83"},
			wantErr: "no catalog is configured",
		},
		{
			name:    "unknown trash id",
			input:   CustomFormatInput{TrashID: "0000000000000000000000000000dead"},
			catalog: testCatalog(),
			wantErr: "not found",
		},
		{
			name:    "no name and no trash id",
			input:   CustomFormatInput{},
			wantErr: "must declare a name",
		},
	}

	c := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.Compile(context.Background(), CompileInput{
				App:           "radarr",
				CustomFormats: &CustomFormatsInput{Definitions: []CustomFormatInput{tt.input}},
				Catalog:       tt.catalog,
			})
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestCompileQualityDefinitionsPreset(t *testing.T) {
	c := New()
	ir, err := c.Compile(context.Background(), CompileInput{
		App: "radarr",
		QualityDefinitions: &QualityDefinitionsInput{
			TrashID: "aed34b9f60ee115dfa7918b742336277",
			Definitions: []QualityDefinitionInput{
				{Quality: "Bluray-1080p", MaxSize: floatPtr(400)},
				{Quality: "Remux-2160p", MinSize: floatPtr(100)},
			},
		},
		Catalog: testCatalog(),
	})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	defs := ir.QualityDefinitions.Definitions
	if len(defs) != 3 {
		t.Fatalf("expected 3 definitions (2 preset, 1 extra), got %d", len(defs))
	}
	if defs[0].Quality != "Bluray-1080p" {
		t.Fatalf("preset order not preserved: %q", defs[0].Quality)
	}
	if defs[0].MinSize != 50.4 {
		t.Errorf("preset min size lost: %v", defs[0].MinSize)
	}
	if defs[0].MaxSize == nil || *defs[0].MaxSize != 400 {
		t.Errorf("declared max size should override preset, got %v", defs[0].MaxSize)
	}
	if defs[2].Quality != "Remux-2160p" || defs[2].MinSize != 100 {
		t.Errorf("declared quality outside preset should be appended: %+v", defs[2])
	}
}

func TestCompileQualityProfileFormatScores(t *testing.T) {
	c := New()
	input := CompileInput{
		App: "radarr",
		CustomFormats: &CustomFormatsInput{
			Definitions: []CustomFormatInput{
				{Name: "BR-DISK", TrashID: "ed38b889b31be83fda192888e2286d83"},
			},
		},
		QualityProfiles: &QualityProfilesInput{
			Definitions: []QualityProfileInput{
				{
					Name:            "HD",
					UpgradesAllowed: true,
					UpgradeUntil:    "Bluray-1080p",
					Qualities:       []QualityGroupInput{{Name: "Bluray-1080p"}},
					FormatScores: []FormatScoreInput{
						{Format: "BR-DISK"},
					},
				},
			},
		},
		Catalog: testCatalog(),
	}

	ir, err := c.Compile(context.Background(), input)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	scores := ir.QualityProfiles.Definitions[0].FormatScores
	if len(scores) != 1 || scores[0].Score != -10000 {
		t.Errorf("format score should fall back to the format's default, got %+v", scores)
	}

	// Scoring an undeclared format with no explicit score fails.
	input.QualityProfiles.Definitions[0].FormatScores = []FormatScoreInput{{Format: "Nope"}}
	if _, err := c.Compile(context.Background(), input); err == nil {
		t.Error("expected error for undeclared format with no explicit score")
	}

	// An explicit score passes through without requiring a declaration.
	input.QualityProfiles.Definitions[0].FormatScores = []FormatScoreInput{{Format: "Remote Only", Score: intPtr(50)}}
	ir, err = c.Compile(context.Background(), input)
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}
	if got := ir.QualityProfiles.Definitions[0].FormatScores[0].Score; got != 50 {
		t.Errorf("explicit score = %d, want 50", got)
	}
}

func TestCompileQualityProfileValidation(t *testing.T) {
	c := New()
	_, err := c.Compile(context.Background(), CompileInput{
		App: "radarr",
		QualityProfiles: &QualityProfilesInput{
			Definitions: []QualityProfileInput{
				{
					Name:            "Broken",
					UpgradesAllowed: true,
					Qualities:       []QualityGroupInput{{Name: "HDTV-720p"}},
				},
			},
		},
	})
	if err == nil || !strings.Contains(err.Error(), "upgradeUntil") {
		t.Errorf("expected upgradeUntil validation error, got %v", err)
	}
}

func TestCollectReferencedTags(t *testing.T) {
	c := New()
	ir, err := c.Compile(context.Background(), CompileInput{
		App:  "radarr",
		Tags: []string{"managed"},
		DelayProfiles: &DelayProfilesInput{
			Definitions: []DelayProfileInput{
				{PreferredProtocol: "torrent", Tags: []string{"anime"}},
			},
		},
		DownloadClients: &DownloadClientsInput{
			Definitions: []DownloadClientInput{
				{Name: "qbt", Implementation: "QBittorrent", Tags: []string{"managed", "torrent"}},
			},
		},
		Notifications: &NotificationsInput{
			Definitions: []NotificationInput{
				{Name: "discord", Implementation: "Discord", Tags: []string{"alerts"}},
			},
		},
	})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	want := []string{"alerts", "anime", "managed", "torrent"}
	if !reflect.DeepEqual(ir.Tags.Labels, want) {
		t.Errorf("Tags = %v, want %v", ir.Tags.Labels, want)
	}
}

func TestCompileDownloadClients(t *testing.T) {
	c := New()
	ir, err := c.Compile(context.Background(), CompileInput{
		App: "radarr",
		DownloadClients: &DownloadClientsInput{
			Definitions: []DownloadClientInput{
				{Name: "qbt", Implementation: "QBittorrent", Enable: true},
				{Name: "sab", Implementation: "Sabnzbd", ConfigContract: "SabnzbdSettings", Enable: true},
			},
		},
	})
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	defs := ir.DownloadClients.Definitions
	if defs[0].Protocol != irv1.ProtocolTorrent {
		t.Errorf("QBittorrent protocol = %q, want torrent", defs[0].Protocol)
	}
	if defs[0].ConfigContract != "QBittorrentSettings" {
		t.Errorf("default config contract = %q", defs[0].ConfigContract)
	}
	if defs[1].Protocol != irv1.ProtocolUsenet {
		t.Errorf("Sabnzbd protocol = %q, want usenet", defs[1].Protocol)
	}

	_, err = c.Compile(context.Background(), CompileInput{
		App: "radarr",
		DownloadClients: &DownloadClientsInput{
			Definitions: []DownloadClientInput{
				{Name: "odd", Implementation: "CarrierPigeon"},
			},
		},
	})
	if err == nil || !strings.Contains(err.Error(), "unsupported implementation") {
		t.Errorf("expected unsupported implementation error, got %v", err)
	}
}

func TestCompileIndexerClientReference(t *testing.T) {
	c := New()
	input := CompileInput{
		App: "radarr",
		DownloadClients: &DownloadClientsInput{
			Definitions: []DownloadClientInput{
				{Name: "qbt", Implementation: "QBittorrent"},
			},
		},
		Indexers: &IndexersInput{
			Definitions: []IndexerInput{
				{Name: "tracker", Implementation: "Torznab", DownloadClient: "qbt"},
			},
		},
	}
	if _, err := c.Compile(context.Background(), input); err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	input.Indexers.Definitions[0].DownloadClient = "missing"
	if _, err := c.Compile(context.Background(), input); err == nil {
		t.Error("expected error for undeclared download client reference")
	}
}

func TestHashInput(t *testing.T) {
	base := CompileInput{
		App:        "radarr",
		ConfigName: "main",
		URL:        "http://radarr:7878",
		Indexers: &IndexersInput{
			Definitions: []IndexerInput{
				{
					Name:           "tracker",
					Implementation: "Torznab",
					Fields: []FieldInput{
						{Name: "baseUrl", Value: "http://prowlarr:9696"},
						{Name: "apiKey", Value: "secret-one", Secret: true},
					},
				},
			},
		},
	}

	c := New()
	h1 := c.hashInput(base)
	if h1 == "" {
		t.Fatal("empty hash")
	}
	if c.hashInput(base) != h1 {
		t.Error("hash not deterministic")
	}

	// Rotating a secret does not register as drift.
	rotated := base
	rotated.Indexers = &IndexersInput{
		Definitions: []IndexerInput{
			{
				Name:           "tracker",
				Implementation: "Torznab",
				Fields: []FieldInput{
					{Name: "baseUrl", Value: "http://prowlarr:9696"},
					{Name: "apiKey", Value: "secret-two", Secret: true},
				},
			},
		},
	}
	if c.hashInput(rotated) != h1 {
		t.Error("secret rotation changed the hash")
	}

	changed := base
	changed.URL = "http://radarr:8989"
	if c.hashInput(changed) == h1 {
		t.Error("URL change should change the hash")
	}
}

func TestBuildInput(t *testing.T) {
	spec := &arrv1alpha1.RadarrConfigSpec{
		Connection: arrv1alpha1.ConnectionSpec{URL: "http://radarr:7878"},
		Tags:       []string{"managed"},
		DownloadClients: &arrv1alpha1.DownloadClientsSpec{
			DeleteUnmanaged: true,
			Definitions: []arrv1alpha1.DownloadClientSpec{
				{
					Name:           "qbt",
					Implementation: "QBittorrent",
					Fields: []arrv1alpha1.FieldSpec{
						{Name: "host", Value: jsonValue(`"qbittorrent"`)},
						{Name: "port", Value: jsonValue(`8080`)},
						{Name: "password", ValueFrom: &arrv1alpha1.SecretKeySelector{Name: "qbt-creds", Key: "password"}},
					},
				},
			},
		},
		Indexers: &arrv1alpha1.IndexersSpec{
			Definitions: []arrv1alpha1.IndexerSpec{
				{Name: "tracker", Implementation: "Torznab", EnableRss: boolPtr(false)},
			},
		},
	}

	resolve := func(name, key string) (string, error) {
		if name == "qbt-creds" && key == "password" {
			return "hunter2", nil
		}
		t.Fatalf("unexpected secret lookup %s/%s", name, key)
		return "", nil
	}

	input, err := BuildInput(spec, "main", "media", resolve)
	if err != nil {
		t.Fatalf("BuildInput() error = %v", err)
	}

	if input.URL != "http://radarr:7878" || input.ConfigName != "main" || input.Namespace != "media" {
		t.Errorf("connection metadata not carried: %+v", input)
	}
	if !input.DownloadClients.DeleteUnmanaged {
		t.Error("deleteUnmanaged flag lost")
	}

	dc := input.DownloadClients.Definitions[0]
	if !dc.Enable || !dc.RemoveCompletedDownloads || !dc.RemoveFailedDownloads {
		t.Errorf("download client defaults not applied: %+v", dc)
	}
	if dc.Fields[0].Value != "qbittorrent" {
		t.Errorf("string field = %v", dc.Fields[0].Value)
	}
	if dc.Fields[1].Value != float64(8080) {
		t.Errorf("numeric field should decode as float64, got %T %v", dc.Fields[1].Value, dc.Fields[1].Value)
	}
	if dc.Fields[2].Value != "hunter2" || !dc.Fields[2].Secret {
		t.Errorf("secret field not resolved: %+v", dc.Fields[2])
	}

	ix := input.Indexers.Definitions[0]
	if ix.EnableRss {
		t.Error("explicit false should not be replaced by the default")
	}
	if !ix.EnableAutomaticSearch || !ix.EnableInteractiveSearch {
		t.Error("unset search flags should default to true")
	}
}
