package v1

// QualityDefinitionsIR declares per-quality size limits. The set of
// qualities is fixed by the remote instance, so definitions are keyed by
// quality title and only ever updated — never created or deleted.
type QualityDefinitionsIR struct {
	// TrashID selects a quality definition preset from the catalog.
	// Explicitly declared definitions override catalog values per title.
	TrashID string `json:"trashID,omitempty" yaml:"trashID,omitempty"`

	Definitions []QualityDefinitionIR `json:"definitions,omitempty" yaml:"definitions,omitempty"`
}

// QualityDefinitionIR is the size envelope for one quality.
type QualityDefinitionIR struct {
	// Quality is the remote quality title (e.g. "Bluray-1080p"), the
	// natural key of this collection.
	Quality string `json:"quality" yaml:"quality"`

	// Title is the display title, defaults to Quality when empty.
	Title string `json:"title,omitempty" yaml:"title,omitempty"`

	MinSize       float64  `json:"minSize" yaml:"minSize"`
	MaxSize       *float64 `json:"maxSize,omitempty" yaml:"maxSize,omitempty"`
	PreferredSize *float64 `json:"preferredSize,omitempty" yaml:"preferredSize,omitempty"`
}

// QualityProfilesIR declares quality profiles, keyed by name.
type QualityProfilesIR struct {
	DeleteUnmanaged bool `json:"deleteUnmanaged,omitempty" yaml:"deleteUnmanaged,omitempty"`

	Definitions []QualityProfileIR `json:"definitions,omitempty" yaml:"definitions,omitempty"`
}

// QualityProfileIR is a single quality profile. Custom formats are
// referenced by name and resolved to remote IDs on encode.
type QualityProfileIR struct {
	Name string `json:"name" yaml:"name"`

	UpgradesAllowed bool `json:"upgradesAllowed,omitempty" yaml:"upgradesAllowed,omitempty"`

	// UpgradeUntil names the quality (or group) that stops upgrades.
	// Required when UpgradesAllowed is set.
	UpgradeUntil string `json:"upgradeUntil,omitempty" yaml:"upgradeUntil,omitempty"`

	// Qualities lists allowed qualities in order of preference, most
	// preferred first. An entry with members forms a quality group.
	Qualities []QualityGroupIR `json:"qualities" yaml:"qualities"`

	MinFormatScore    int `json:"minFormatScore,omitempty" yaml:"minFormatScore,omitempty"`
	CutoffFormatScore int `json:"cutoffFormatScore,omitempty" yaml:"cutoffFormatScore,omitempty"`

	// FormatScores assigns scores to custom formats by name. Declared
	// formats missing a score here fall back to their default score.
	FormatScores []FormatScoreIR `json:"formatScores,omitempty" yaml:"formatScores,omitempty"`

	Language string `json:"language,omitempty" yaml:"language,omitempty"`
}

// QualityGroupIR is one allowed quality, or a named group of qualities
// treated as equivalent.
type QualityGroupIR struct {
	Name    string   `json:"name" yaml:"name"`
	Members []string `json:"members,omitempty" yaml:"members,omitempty"`
}

// FormatScoreIR scores one custom format within a quality profile.
type FormatScoreIR struct {
	Format string `json:"format" yaml:"format"`
	Score  int    `json:"score" yaml:"score"`
}
