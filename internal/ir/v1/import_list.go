package v1

// ImportListsIR declares import lists, keyed by name.
type ImportListsIR struct {
	DeleteUnmanaged bool `json:"deleteUnmanaged,omitempty" yaml:"deleteUnmanaged,omitempty"`

	Definitions []ImportListIR `json:"definitions,omitempty" yaml:"definitions,omitempty"`
}

// ImportListIR is a single import list. QualityProfile names a quality
// profile symbolically; the adapter resolves it to a remote ID at apply
// time.
type ImportListIR struct {
	Name           string `json:"name" yaml:"name"`
	Implementation string `json:"implementation" yaml:"implementation"`
	ConfigContract string `json:"configContract" yaml:"configContract"`

	Enable      bool `json:"enable,omitempty" yaml:"enable,omitempty"`
	EnableAuto  bool `json:"enableAuto,omitempty" yaml:"enableAuto,omitempty"`
	SearchOnAdd bool `json:"searchOnAdd,omitempty" yaml:"searchOnAdd,omitempty"`

	// Monitor is how newly added movies are monitored: movieOnly,
	// movieAndCollection or none.
	Monitor string `json:"monitor,omitempty" yaml:"monitor,omitempty"`

	// MinimumAvailability gates when list items become downloadable:
	// announced, inCinemas or released.
	MinimumAvailability string `json:"minimumAvailability,omitempty" yaml:"minimumAvailability,omitempty"`

	QualityProfile string `json:"qualityProfile" yaml:"qualityProfile"`
	RootFolderPath string `json:"rootFolderPath" yaml:"rootFolderPath"`

	Tags   []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Fields []FieldIR `json:"fields,omitempty" yaml:"fields,omitempty"`
}
