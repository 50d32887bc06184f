package v1

// IndexersIR declares indexers, keyed by name.
type IndexersIR struct {
	DeleteUnmanaged bool `json:"deleteUnmanaged,omitempty" yaml:"deleteUnmanaged,omitempty"`

	Definitions []IndexerIR `json:"definitions,omitempty" yaml:"definitions,omitempty"`
}

// IndexerIR is a single indexer. DownloadClient optionally pins releases
// from this indexer to a declared download client by name; Tags are
// symbolic labels. Both are resolved to remote IDs on encode.
type IndexerIR struct {
	Name           string `json:"name" yaml:"name"`
	Implementation string `json:"implementation" yaml:"implementation"`
	ConfigContract string `json:"configContract" yaml:"configContract"`
	Protocol       string `json:"protocol" yaml:"protocol"`

	EnableRss               bool `json:"enableRss,omitempty" yaml:"enableRss,omitempty"`
	EnableAutomaticSearch   bool `json:"enableAutomaticSearch,omitempty" yaml:"enableAutomaticSearch,omitempty"`
	EnableInteractiveSearch bool `json:"enableInteractiveSearch,omitempty" yaml:"enableInteractiveSearch,omitempty"`
	Priority                int  `json:"priority,omitempty" yaml:"priority,omitempty"`

	// DownloadClient names a declared download client, empty for any.
	DownloadClient string `json:"downloadClient,omitempty" yaml:"downloadClient,omitempty"`

	Tags   []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Fields []FieldIR `json:"fields,omitempty" yaml:"fields,omitempty"`
}
