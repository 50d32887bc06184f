// Package v1 contains the Intermediate Representation (IR) types for Concordarr.
// The IR is the declared state of one managed instance: the compiler produces it
// from a config CRD (after catalog merging) and adapters consume it. Cross-resource
// references are symbolic (names, not remote IDs) — adapters resolve them against
// remote state at apply time and unresolve them when reconstructing an IR from a
// live instance. The IR must not import any adapter-specific types.
package v1

import "time"

// IR is the top-level declared state for one *arr instance.
type IR struct {
	// Version of this IR schema
	Version string `json:"version" yaml:"version"`

	// GeneratedAt is when this IR was compiled
	GeneratedAt time.Time `json:"generatedAt" yaml:"generatedAt"`

	// SourceHash is a hash of the intent that produced this IR,
	// used for drift detection in status reporting.
	SourceHash string `json:"sourceHash,omitempty" yaml:"sourceHash,omitempty"`

	// App identifies which app this IR is for: radarr
	App string `json:"app" yaml:"app"`

	// Connection details for the instance
	Connection *ConnectionIR `json:"connection,omitempty" yaml:"connection,omitempty"`

	// Tags declares tag labels that must exist on the instance.
	Tags *TagsIR `json:"tags,omitempty" yaml:"tags,omitempty"`

	// QualityDefinitions declares per-quality size limits.
	QualityDefinitions *QualityDefinitionsIR `json:"qualityDefinitions,omitempty" yaml:"qualityDefinitions,omitempty"`

	// RootFolders declares tracked root folder paths.
	RootFolders *RootFoldersIR `json:"rootFolders,omitempty" yaml:"rootFolders,omitempty"`

	// CustomFormats declares custom format definitions.
	CustomFormats *CustomFormatsIR `json:"customFormats,omitempty" yaml:"customFormats,omitempty"`

	// QualityProfiles declares quality profiles. Profiles reference custom
	// formats by name.
	QualityProfiles *QualityProfilesIR `json:"qualityProfiles,omitempty" yaml:"qualityProfiles,omitempty"`

	// DelayProfiles declares the ordered delay profile list.
	DelayProfiles *DelayProfilesIR `json:"delayProfiles,omitempty" yaml:"delayProfiles,omitempty"`

	// DownloadClients declares download client connections.
	DownloadClients *DownloadClientsIR `json:"downloadClients,omitempty" yaml:"downloadClients,omitempty"`

	// Indexers declares indexers. Indexers reference tags and download
	// clients by name.
	Indexers *IndexersIR `json:"indexers,omitempty" yaml:"indexers,omitempty"`

	// Notifications declares notification connections.
	Notifications *NotificationsIR `json:"notifications,omitempty" yaml:"notifications,omitempty"`

	// ImportLists declares import lists. Lists reference quality profiles
	// and tags by name.
	ImportLists *ImportListsIR `json:"importLists,omitempty" yaml:"importLists,omitempty"`

	// Skipped lists remote resources that could not be decoded into the IR
	// (unrecognized implementation discriminators). They are reported as
	// warnings and excluded from comparison and delete consideration.
	Skipped []SkippedResource `json:"-" yaml:"-"`
}

// SkippedResource identifies a remote resource excluded from reconciliation.
type SkippedResource struct {
	Kind           string
	Name           string
	Implementation string
}

// FieldIR is one entry of an implementation-specific settings bag
// (download clients, indexers, notifications, custom format conditions).
type FieldIR struct {
	Name  string `json:"name" yaml:"name"`
	Value any    `json:"value,omitempty" yaml:"value,omitempty"`

	// Secret marks a field whose value the remote API never echoes back
	// verbatim. Secret fields are excluded from equality and always re-sent.
	Secret bool `json:"secret,omitempty" yaml:"secret,omitempty"`
}

// FieldValue returns the value of the named field, or nil.
func FieldValue(fields []FieldIR, name string) any {
	for _, f := range fields {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}

// HasSecretField reports whether any field in the bag is marked secret.
func HasSecretField(fields []FieldIR) bool {
	for _, f := range fields {
		if f.Secret {
			return true
		}
	}
	return false
}

// IRVersion is the current version of the IR schema
const IRVersion = "v1"
