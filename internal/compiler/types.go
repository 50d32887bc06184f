// Package compiler transforms CRD intent into Intermediate Representation (IR).
// It resolves catalog references, merges defaults and collects referenced tags.
package compiler

import (
	"github.com/concordarr/concordarr-operator/internal/catalog"
)

// CompileInput holds all inputs for compilation. Secret references have
// already been resolved by the caller; fields carrying secret values are
// marked so downstream comparison treats them as always-changed.
type CompileInput struct {
	// App identifies which app this is for (currently always radarr).
	App string

	// ConfigName is the name of the config resource.
	ConfigName string

	// Namespace is the namespace of the config resource.
	Namespace string

	// Connection details
	URL                string
	APIKey             string
	InsecureSkipVerify bool

	// Tags declared explicitly. Tags referenced by other collections are
	// collected automatically.
	Tags []string

	QualityDefinitions *QualityDefinitionsInput
	RootFolders        *RootFoldersInput
	CustomFormats      *CustomFormatsInput
	QualityProfiles    *QualityProfilesInput
	DelayProfiles      *DelayProfilesInput
	DownloadClients    *DownloadClientsInput
	Indexers           *IndexersInput
	Notifications      *NotificationsInput
	ImportLists        *ImportListsInput

	// Catalog resolves trashId references. May be nil when the input
	// declares none; compilation fails if a trashId is declared without it.
	Catalog *catalog.Catalog
}

// FieldInput is one implementation-specific field value. Secret marks
// values resolved from Secret references.
type FieldInput struct {
	Name   string
	Value  interface{}
	Secret bool
}

// QualityDefinitionsInput holds quality definition configuration
type QualityDefinitionsInput struct {
	// TrashID selects a catalog quality definition preset.
	TrashID string

	// Definitions override the preset (or stand alone) per quality.
	Definitions []QualityDefinitionInput
}

// QualityDefinitionInput holds one quality's size limits
type QualityDefinitionInput struct {
	Quality       string
	Title         string
	MinSize       *float64
	MaxSize       *float64
	PreferredSize *float64
}

// RootFoldersInput holds root folder configuration
type RootFoldersInput struct {
	DeleteUnmanaged bool
	Paths           []string
}

// CustomFormatsInput holds custom format configuration
type CustomFormatsInput struct {
	DeleteUnmanaged bool
	Definitions     []CustomFormatInput
}

// CustomFormatInput holds one custom format. TrashID seeds the format
// from a catalog entry; everything declared here overrides the catalog.
type CustomFormatInput struct {
	Name    string
	TrashID string

	// Score is the default score quality profiles assign to this format.
	// Nil falls back to the catalog's default score (or zero).
	Score *int

	IncludeWhenRenaming       *bool
	DeleteUnmanagedConditions *bool

	Conditions []ConditionInput
}

// ConditionInput holds one custom format condition
type ConditionInput struct {
	Name           string
	Implementation string
	Negate         bool
	Required       bool
	Fields         []FieldInput
}

// QualityProfilesInput holds quality profile configuration
type QualityProfilesInput struct {
	DeleteUnmanaged bool
	Definitions     []QualityProfileInput
}

// QualityProfileInput holds one quality profile
type QualityProfileInput struct {
	Name            string
	UpgradesAllowed bool
	UpgradeUntil    string

	// Qualities in order of preference, most preferred first.
	Qualities []QualityGroupInput

	MinFormatScore    int
	CutoffFormatScore int

	// FormatScores references declared custom formats by name. A nil
	// score falls back to the format's default score.
	FormatScores []FormatScoreInput

	Language string
}

// QualityGroupInput is one allowed quality or quality group
type QualityGroupInput struct {
	Name    string
	Members []string
}

// FormatScoreInput scores one custom format within a profile
type FormatScoreInput struct {
	Format string
	Score  *int
}

// DelayProfilesInput holds the ordered delay profile list
type DelayProfilesInput struct {
	DeleteUnmanaged bool
	Definitions     []DelayProfileInput
}

// DelayProfileInput holds one delay profile
type DelayProfileInput struct {
	PreferredProtocol              string
	UsenetDelay                    int
	TorrentDelay                   int
	EnableUsenet                   bool
	EnableTorrent                  bool
	BypassIfHighestQuality         bool
	BypassIfAboveCustomFormatScore bool
	MinimumCustomFormatScore       int
	Tags                           []string
}

// DownloadClientsInput holds download client configuration
type DownloadClientsInput struct {
	DeleteUnmanaged bool
	Definitions     []DownloadClientInput
}

// DownloadClientInput holds one download client
type DownloadClientInput struct {
	Name           string
	Implementation string
	ConfigContract string

	Enable                   bool
	Priority                 int
	RemoveCompletedDownloads bool
	RemoveFailedDownloads    bool

	Tags   []string
	Fields []FieldInput
}

// IndexersInput holds indexer configuration
type IndexersInput struct {
	DeleteUnmanaged bool
	Definitions     []IndexerInput
}

// IndexerInput holds one indexer
type IndexerInput struct {
	Name           string
	Implementation string
	ConfigContract string

	EnableRss               bool
	EnableAutomaticSearch   bool
	EnableInteractiveSearch bool
	Priority                int

	// DownloadClient names a declared download client, empty for any.
	DownloadClient string

	Tags   []string
	Fields []FieldInput
}

// ImportListsInput holds import list configuration
type ImportListsInput struct {
	DeleteUnmanaged bool
	Definitions     []ImportListInput
}

// ImportListInput holds one import list
type ImportListInput struct {
	Name           string
	Implementation string
	ConfigContract string

	Enable      bool
	EnableAuto  bool
	SearchOnAdd bool

	Monitor             string
	MinimumAvailability string

	// QualityProfile names the profile list items are added with. It may
	// reference a declared profile or one that already exists remotely.
	QualityProfile string
	RootFolderPath string

	Tags   []string
	Fields []FieldInput
}

// NotificationsInput holds notification configuration
type NotificationsInput struct {
	DeleteUnmanaged bool
	Definitions     []NotificationInput
}

// NotificationInput holds one notification connection
type NotificationInput struct {
	Name           string
	Implementation string
	ConfigContract string

	OnGrab                bool
	OnDownload            bool
	OnUpgrade             bool
	OnRename              bool
	OnMovieDelete         bool
	OnHealthIssue         bool
	IncludeHealthWarnings bool
	OnApplicationUpdate   bool

	Tags   []string
	Fields []FieldInput
}
