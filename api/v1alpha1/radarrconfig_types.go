/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// RadarrConfigSpec defines the desired configuration for Radarr
type RadarrConfigSpec struct {
	// Connection specifies how to connect to Radarr.
	// +kubebuilder:validation:Required
	Connection ConnectionSpec `json:"connection"`

	// Catalog configures the external format catalog used to resolve
	// trashId references. Required when any trashId is declared.
	// +optional
	Catalog *CatalogSpec `json:"catalog,omitempty"`

	// Tags to create in Radarr. Tags referenced by other resources are
	// created automatically and do not need to be listed here.
	// +optional
	Tags []string `json:"tags,omitempty"`

	// QualityDefinitions configures per-quality size limits.
	// +optional
	QualityDefinitions *QualityDefinitionsSpec `json:"qualityDefinitions,omitempty"`

	// RootFolders configures root folder paths.
	// +optional
	RootFolders *RootFoldersSpec `json:"rootFolders,omitempty"`

	// CustomFormats configures custom format definitions.
	// +optional
	CustomFormats *CustomFormatsSpec `json:"customFormats,omitempty"`

	// QualityProfiles configures quality profiles.
	// +optional
	QualityProfiles *QualityProfilesSpec `json:"qualityProfiles,omitempty"`

	// DelayProfiles configures the ordered delay profile list.
	// +optional
	DelayProfiles *DelayProfilesSpec `json:"delayProfiles,omitempty"`

	// DownloadClients configures download clients.
	// +optional
	DownloadClients *DownloadClientsSpec `json:"downloadClients,omitempty"`

	// Indexers configures indexers.
	// +optional
	Indexers *IndexersSpec `json:"indexers,omitempty"`

	// Notifications configures notification connections.
	// +optional
	Notifications *NotificationsSpec `json:"notifications,omitempty"`

	// ImportLists configures import lists.
	// +optional
	ImportLists *ImportListsSpec `json:"importLists,omitempty"`

	// Reconciliation configures sync behavior.
	// +optional
	Reconciliation *ReconciliationSpec `json:"reconciliation,omitempty"`
}

// =============================================================================
// Quality Definitions
// =============================================================================

// QualityDefinitionsSpec configures per-quality size limits. The set of
// qualities is fixed by Radarr, so definitions are only ever updated.
type QualityDefinitionsSpec struct {
	// TrashID selects a quality definition preset from the catalog.
	// Explicitly declared definitions override catalog values per quality.
	// +optional
	TrashID string `json:"trashId,omitempty"`

	// Definitions lists per-quality size limits, keyed by quality name.
	// +optional
	Definitions []QualityDefinitionSpec `json:"definitions,omitempty"`
}

// QualityDefinitionSpec is the size envelope for one quality
type QualityDefinitionSpec struct {
	// Quality is the Radarr quality name (e.g., "Bluray-1080p").
	// +kubebuilder:validation:Required
	Quality string `json:"quality"`

	// Title is the display title. Defaults to the quality name.
	// +optional
	Title string `json:"title,omitempty"`

	// MinSize is the minimum size in MB per minute.
	// +optional
	MinSize *float64 `json:"minSize,omitempty"`

	// MaxSize is the maximum size in MB per minute. Unset means unlimited.
	// +optional
	MaxSize *float64 `json:"maxSize,omitempty"`

	// PreferredSize is the preferred size in MB per minute.
	// +optional
	PreferredSize *float64 `json:"preferredSize,omitempty"`
}

// =============================================================================
// Root Folders
// =============================================================================

// RootFoldersSpec configures root folder paths
type RootFoldersSpec struct {
	// DeleteUnmanaged removes root folders not listed here.
	// +optional
	DeleteUnmanaged bool `json:"deleteUnmanaged,omitempty"`

	// Paths lists the root folder paths to ensure.
	// +optional
	Paths []string `json:"paths,omitempty"`
}

// =============================================================================
// Custom Formats
// =============================================================================

// CustomFormatsSpec configures custom format definitions
type CustomFormatsSpec struct {
	// DeleteUnmanaged removes custom formats not declared here.
	// +optional
	DeleteUnmanaged bool `json:"deleteUnmanaged,omitempty"`

	// Definitions lists custom formats, keyed by name.
	// +optional
	Definitions []CustomFormatSpec `json:"definitions,omitempty"`
}

// CustomFormatSpec defines one custom format. A format may be seeded from
// a catalog entry via TrashID; fields and conditions declared here always
// override what the catalog provides.
type CustomFormatSpec struct {
	// Name is the custom format name. Required unless TrashID is set, in
	// which case it defaults to the catalog entry's name.
	// +optional
	Name string `json:"name,omitempty"`

	// TrashID seeds this format from a catalog entry.
	// +optional
	TrashID string `json:"trashId,omitempty"`

	// Score is the default score quality profiles assign to this format
	// when they reference it without an explicit score. Defaults to the
	// catalog's default score for catalog-seeded formats, otherwise 0.
	// +optional
	Score *int `json:"score,omitempty"`

	// IncludeCustomFormatWhenRenaming includes this format in the
	// {Custom Formats} renaming token.
	// +optional
	IncludeCustomFormatWhenRenaming *bool `json:"includeCustomFormatWhenRenaming,omitempty"`

	// DeleteUnmanagedConditions removes remote conditions not declared
	// (or catalog-provided) on this format. Always on for catalog-seeded
	// formats.
	// +optional
	DeleteUnmanagedConditions *bool `json:"deleteUnmanagedConditions,omitempty"`

	// Conditions lists the matching conditions, keyed by name.
	// +optional
	Conditions []ConditionSpec `json:"conditions,omitempty"`
}

// ConditionSpec defines one matching condition of a custom format
type ConditionSpec struct {
	// Name is the condition name.
	// +kubebuilder:validation:Required
	Name string `json:"name"`

	// Implementation is the Radarr condition type
	// (e.g., "ReleaseTitleSpecification", "ResolutionSpecification").
	// +kubebuilder:validation:Required
	Implementation string `json:"implementation"`

	// Negate inverts the condition.
	// +optional
	Negate bool `json:"negate,omitempty"`

	// Required makes this condition mandatory for the format to match.
	// +optional
	Required bool `json:"required,omitempty"`

	// Fields carries the implementation-specific settings.
	// +optional
	Fields []FieldSpec `json:"fields,omitempty"`
}

// =============================================================================
// Quality Profiles
// =============================================================================

// QualityProfilesSpec configures quality profiles
type QualityProfilesSpec struct {
	// DeleteUnmanaged removes quality profiles not declared here.
	// +optional
	DeleteUnmanaged bool `json:"deleteUnmanaged,omitempty"`

	// Definitions lists quality profiles, keyed by name.
	// +optional
	Definitions []QualityProfileSpec `json:"definitions,omitempty"`
}

// QualityProfileSpec defines one quality profile
type QualityProfileSpec struct {
	// Name is the profile name.
	// +kubebuilder:validation:Required
	Name string `json:"name"`

	// UpgradesAllowed enables upgrading to better qualities.
	// +optional
	UpgradesAllowed bool `json:"upgradesAllowed,omitempty"`

	// UpgradeUntil names the quality or group that stops upgrades.
	// Required when upgrades are allowed.
	// +optional
	UpgradeUntil string `json:"upgradeUntil,omitempty"`

	// Qualities lists allowed qualities in order of preference, most
	// preferred first. An entry with members forms a quality group.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:MinItems=1
	Qualities []QualityGroupSpec `json:"qualities"`

	// MinFormatScore is the minimum custom format score for downloads.
	// +optional
	MinFormatScore int `json:"minFormatScore,omitempty"`

	// CutoffFormatScore stops format upgrades once reached.
	// +optional
	CutoffFormatScore int `json:"cutoffFormatScore,omitempty"`

	// FormatScores assigns scores to declared custom formats by name.
	// Declared formats missing here fall back to their default score.
	// +optional
	FormatScores []FormatScoreSpec `json:"formatScores,omitempty"`

	// Language is the profile language (e.g., "English"). Defaults to
	// the remote's current value.
	// +optional
	Language string `json:"language,omitempty"`
}

// QualityGroupSpec is one allowed quality, or a named group of qualities
// treated as equivalent
type QualityGroupSpec struct {
	// Name is the quality name, or the group name when Members is set.
	// +kubebuilder:validation:Required
	Name string `json:"name"`

	// Members lists the qualities in this group.
	// +optional
	Members []string `json:"members,omitempty"`
}

// FormatScoreSpec scores one custom format within a quality profile
type FormatScoreSpec struct {
	// Format is the custom format name.
	// +kubebuilder:validation:Required
	Format string `json:"format"`

	// Score is the score to assign. Defaults to the format's default
	// score (declared or from the catalog).
	// +optional
	Score *int `json:"score,omitempty"`
}

// =============================================================================
// Delay Profiles
// =============================================================================

// DelayProfilesSpec configures the ordered delay profile list. Delay
// profiles have no natural key: any difference from the remote list
// replaces the whole list in the order given here, highest priority
// first. Radarr's built-in default profile is always last and is updated
// in place, never deleted.
type DelayProfilesSpec struct {
	// DeleteUnmanaged removes remote non-default profiles beyond the
	// declared list.
	// +optional
	DeleteUnmanaged bool `json:"deleteUnmanaged,omitempty"`

	// Definitions lists the delay profiles in priority order.
	// +optional
	Definitions []DelayProfileSpec `json:"definitions,omitempty"`
}

// DelayProfileSpec defines one delay profile
type DelayProfileSpec struct {
	// PreferredProtocol: usenet or torrent.
	// +optional
	// +kubebuilder:validation:Enum=usenet;torrent
	PreferredProtocol string `json:"preferredProtocol,omitempty"`

	// UsenetDelay is the usenet grab delay in minutes.
	// +optional
	UsenetDelay int `json:"usenetDelay,omitempty"`

	// TorrentDelay is the torrent grab delay in minutes.
	// +optional
	TorrentDelay int `json:"torrentDelay,omitempty"`

	// EnableUsenet allows usenet downloads for matched movies.
	// +optional
	// +kubebuilder:default=true
	EnableUsenet *bool `json:"enableUsenet,omitempty"`

	// EnableTorrent allows torrent downloads for matched movies.
	// +optional
	// +kubebuilder:default=true
	EnableTorrent *bool `json:"enableTorrent,omitempty"`

	// BypassIfHighestQuality skips the delay when the release is the
	// highest allowed quality.
	// +optional
	BypassIfHighestQuality bool `json:"bypassIfHighestQuality,omitempty"`

	// BypassIfAboveCustomFormatScore skips the delay above a format score.
	// +optional
	BypassIfAboveCustomFormatScore bool `json:"bypassIfAboveCustomFormatScore,omitempty"`

	// MinimumCustomFormatScore is the score threshold for the bypass.
	// +optional
	MinimumCustomFormatScore int `json:"minimumCustomFormatScore,omitempty"`

	// Tags restricts this profile to movies with these tags.
	// +optional
	Tags []string `json:"tags,omitempty"`
}

// =============================================================================
// Download Clients
// =============================================================================

// DownloadClientsSpec configures download clients
type DownloadClientsSpec struct {
	// DeleteUnmanaged removes download clients not declared here.
	// +optional
	DeleteUnmanaged bool `json:"deleteUnmanaged,omitempty"`

	// Definitions lists download clients, keyed by name.
	// +optional
	Definitions []DownloadClientSpec `json:"definitions,omitempty"`
}

// DownloadClientSpec defines one download client
type DownloadClientSpec struct {
	// Name is the display name for this client.
	// +kubebuilder:validation:Required
	Name string `json:"name"`

	// Implementation is the Radarr client type
	// (e.g., "QBittorrent", "Sabnzbd").
	// +kubebuilder:validation:Required
	Implementation string `json:"implementation"`

	// ConfigContract is the settings contract for the implementation.
	// Defaults to "{Implementation}Settings".
	// +optional
	ConfigContract string `json:"configContract,omitempty"`

	// Enable enables/disables this client.
	// +optional
	// +kubebuilder:default=true
	Enable *bool `json:"enable,omitempty"`

	// Priority affects client selection (lower = preferred).
	// +optional
	// +kubebuilder:default=1
	Priority int `json:"priority,omitempty"`

	// RemoveCompletedDownloads removes imported downloads from the client.
	// +optional
	RemoveCompletedDownloads *bool `json:"removeCompletedDownloads,omitempty"`

	// RemoveFailedDownloads removes failed downloads from the client.
	// +optional
	RemoveFailedDownloads *bool `json:"removeFailedDownloads,omitempty"`

	// Tags to apply to this client.
	// +optional
	Tags []string `json:"tags,omitempty"`

	// Fields carries the implementation-specific settings
	// (host, port, credentials, category, ...).
	// +optional
	Fields []FieldSpec `json:"fields,omitempty"`
}

// =============================================================================
// Indexers
// =============================================================================

// IndexersSpec configures indexers
type IndexersSpec struct {
	// DeleteUnmanaged removes indexers not declared here.
	// +optional
	DeleteUnmanaged bool `json:"deleteUnmanaged,omitempty"`

	// Definitions lists indexers, keyed by name.
	// +optional
	Definitions []IndexerSpec `json:"definitions,omitempty"`
}

// IndexerSpec defines one indexer
type IndexerSpec struct {
	// Name is the display name for this indexer.
	// +kubebuilder:validation:Required
	Name string `json:"name"`

	// Implementation is the Radarr indexer type
	// (e.g., "Torznab", "Newznab").
	// +kubebuilder:validation:Required
	Implementation string `json:"implementation"`

	// ConfigContract is the settings contract for the implementation.
	// Defaults to "{Implementation}Settings".
	// +optional
	ConfigContract string `json:"configContract,omitempty"`

	// EnableRss includes this indexer in RSS sync.
	// +optional
	// +kubebuilder:default=true
	EnableRss *bool `json:"enableRss,omitempty"`

	// EnableAutomaticSearch includes this indexer in automatic searches.
	// +optional
	// +kubebuilder:default=true
	EnableAutomaticSearch *bool `json:"enableAutomaticSearch,omitempty"`

	// EnableInteractiveSearch includes this indexer in interactive searches.
	// +optional
	// +kubebuilder:default=true
	EnableInteractiveSearch *bool `json:"enableInteractiveSearch,omitempty"`

	// Priority (1-50, lower = higher priority).
	// +optional
	// +kubebuilder:default=25
	Priority int `json:"priority,omitempty"`

	// DownloadClient pins releases from this indexer to a declared
	// download client by name.
	// +optional
	DownloadClient string `json:"downloadClient,omitempty"`

	// Tags to apply to this indexer.
	// +optional
	Tags []string `json:"tags,omitempty"`

	// Fields carries the implementation-specific settings
	// (baseUrl, apiKey, categories, ...).
	// +optional
	Fields []FieldSpec `json:"fields,omitempty"`
}

// =============================================================================
// Notifications
// =============================================================================

// NotificationsSpec configures notification connections
type NotificationsSpec struct {
	// DeleteUnmanaged removes notifications not declared here.
	// +optional
	DeleteUnmanaged bool `json:"deleteUnmanaged,omitempty"`

	// Definitions lists notifications, keyed by name.
	// +optional
	Definitions []NotificationSpec `json:"definitions,omitempty"`
}

// NotificationSpec defines one notification connection
type NotificationSpec struct {
	// Name is the display name for this connection.
	// +kubebuilder:validation:Required
	Name string `json:"name"`

	// Implementation is the Radarr notification type
	// (e.g., "Discord", "Webhook", "Plex").
	// +kubebuilder:validation:Required
	Implementation string `json:"implementation"`

	// ConfigContract is the settings contract for the implementation.
	// Defaults to "{Implementation}Settings".
	// +optional
	ConfigContract string `json:"configContract,omitempty"`

	// OnGrab notifies when a release is grabbed.
	// +optional
	OnGrab bool `json:"onGrab,omitempty"`

	// OnDownload notifies when a movie is imported.
	// +optional
	OnDownload bool `json:"onDownload,omitempty"`

	// OnUpgrade notifies when a movie is upgraded.
	// +optional
	OnUpgrade bool `json:"onUpgrade,omitempty"`

	// OnRename notifies when a movie file is renamed.
	// +optional
	OnRename bool `json:"onRename,omitempty"`

	// OnMovieDelete notifies when a movie is deleted.
	// +optional
	OnMovieDelete bool `json:"onMovieDelete,omitempty"`

	// OnHealthIssue notifies on health issues.
	// +optional
	OnHealthIssue bool `json:"onHealthIssue,omitempty"`

	// IncludeHealthWarnings includes warning-level health issues.
	// +optional
	IncludeHealthWarnings bool `json:"includeHealthWarnings,omitempty"`

	// OnApplicationUpdate notifies when Radarr is updated.
	// +optional
	OnApplicationUpdate bool `json:"onApplicationUpdate,omitempty"`

	// Tags restricts notifications to movies with these tags.
	// +optional
	Tags []string `json:"tags,omitempty"`

	// Fields carries the implementation-specific settings
	// (webhook URLs, tokens, ...).
	// +optional
	Fields []FieldSpec `json:"fields,omitempty"`
}

// =============================================================================
// Import Lists
// =============================================================================

// ImportListsSpec configures import lists
type ImportListsSpec struct {
	// DeleteUnmanaged removes import lists not declared here.
	// +optional
	DeleteUnmanaged bool `json:"deleteUnmanaged,omitempty"`

	// Definitions lists import lists, keyed by name.
	// +optional
	Definitions []ImportListSpec `json:"definitions,omitempty"`
}

// ImportListSpec defines one import list
type ImportListSpec struct {
	// Name is the display name for this list.
	// +kubebuilder:validation:Required
	Name string `json:"name"`

	// Implementation is the Radarr list type
	// (e.g., "TraktListImport", "PlexImport", "RadarrImport").
	// +kubebuilder:validation:Required
	Implementation string `json:"implementation"`

	// ConfigContract is the settings contract for the implementation.
	// Defaults to "{Implementation}Settings".
	// +optional
	ConfigContract string `json:"configContract,omitempty"`

	// Enable enables syncing of this list.
	// +optional
	Enable bool `json:"enable,omitempty"`

	// EnableAuto automatically adds synced movies to the library.
	// +optional
	// +kubebuilder:default=true
	EnableAuto *bool `json:"enableAuto,omitempty"`

	// SearchOnAdd searches for movies when they are added from this list.
	// +optional
	SearchOnAdd bool `json:"searchOnAdd,omitempty"`

	// Monitor sets how added movies are monitored.
	// +optional
	// +kubebuilder:default=movieOnly
	// +kubebuilder:validation:Enum=movieOnly;movieAndCollection;none
	Monitor string `json:"monitor,omitempty"`

	// MinimumAvailability gates when list items become downloadable.
	// +optional
	// +kubebuilder:default=announced
	// +kubebuilder:validation:Enum=announced;inCinemas;released
	MinimumAvailability string `json:"minimumAvailability,omitempty"`

	// QualityProfile names the quality profile list items are added with.
	// +kubebuilder:validation:Required
	QualityProfile string `json:"qualityProfile"`

	// RootFolderPath is the root folder list items are added to.
	// +kubebuilder:validation:Required
	RootFolderPath string `json:"rootFolderPath"`

	// Tags to assign to movies imported from this list.
	// +optional
	Tags []string `json:"tags,omitempty"`

	// Fields carries the implementation-specific settings
	// (list URLs, usernames, access tokens, ...).
	// +optional
	Fields []FieldSpec `json:"fields,omitempty"`
}

// =============================================================================
// Status
// =============================================================================

// RadarrConfigStatus defines the observed state of RadarrConfig
type RadarrConfigStatus struct {
	// Conditions represent the latest observations of the RadarrConfig's state.
	// +listType=map
	// +listMapKey=type
	// +optional
	Conditions []metav1.Condition `json:"conditions,omitempty"`

	// Connected indicates whether Radarr is reachable.
	// +optional
	Connected bool `json:"connected,omitempty"`

	// ServiceVersion is the Radarr version.
	// +optional
	ServiceVersion string `json:"serviceVersion,omitempty"`

	// LastReconcile is the timestamp of the last reconciliation.
	// +optional
	LastReconcile *metav1.Time `json:"lastReconcile,omitempty"`

	// ManagedResources lists remote resources created by this config.
	// +optional
	ManagedResources ManagedResources `json:"managedResources,omitempty"`

	// SkippedResources lists remote resources left untouched because
	// their implementation is not recognized.
	// +optional
	SkippedResources []SkippedResourceStatus `json:"skippedResources,omitempty"`

	// Health is the remote instance's health state.
	// +optional
	Health *HealthStatus `json:"health,omitempty"`

	// LastAppliedHash is the hash of the last applied spec.
	// Used for drift detection.
	// +optional
	LastAppliedHash string `json:"lastAppliedHash,omitempty"`
}

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:printcolumn:name="URL",type=string,JSONPath=`.spec.connection.url`
// +kubebuilder:printcolumn:name="Connected",type=boolean,JSONPath=`.status.connected`
// +kubebuilder:printcolumn:name="Ready",type=string,JSONPath=`.status.conditions[?(@.type=="Ready")].status`
// +kubebuilder:printcolumn:name="Age",type=date,JSONPath=`.metadata.creationTimestamp`

// RadarrConfig is the declarative configuration for a Radarr instance
type RadarrConfig struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	// Spec defines the desired configuration for Radarr.
	// +kubebuilder:validation:Required
	Spec RadarrConfigSpec `json:"spec"`

	// Status defines the observed state of RadarrConfig.
	// +optional
	Status RadarrConfigStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// RadarrConfigList contains a list of RadarrConfig
type RadarrConfigList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []RadarrConfig `json:"items"`
}

func init() {
	SchemeBuilder.Register(&RadarrConfig{}, &RadarrConfigList{})
}
