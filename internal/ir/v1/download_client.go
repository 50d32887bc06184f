package v1

// Protocol constants for download clients and indexers.
const (
	ProtocolTorrent = "torrent"
	ProtocolUsenet  = "usenet"
)

// DownloadClientsIR declares download client connections, keyed by name.
type DownloadClientsIR struct {
	DeleteUnmanaged bool `json:"deleteUnmanaged,omitempty" yaml:"deleteUnmanaged,omitempty"`

	Definitions []DownloadClientIR `json:"definitions,omitempty" yaml:"definitions,omitempty"`
}

// DownloadClientIR is a single download client. Implementation and
// ConfigContract are the remote discriminators; Fields carries the
// implementation-specific settings (host, port, credentials, ...).
// Tags are symbolic labels.
type DownloadClientIR struct {
	Name           string `json:"name" yaml:"name"`
	Implementation string `json:"implementation" yaml:"implementation"`
	ConfigContract string `json:"configContract" yaml:"configContract"`
	Protocol       string `json:"protocol" yaml:"protocol"`

	Enable                   bool `json:"enable" yaml:"enable"`
	Priority                 int  `json:"priority,omitempty" yaml:"priority,omitempty"`
	RemoveCompletedDownloads bool `json:"removeCompletedDownloads,omitempty" yaml:"removeCompletedDownloads,omitempty"`
	RemoveFailedDownloads    bool `json:"removeFailedDownloads,omitempty" yaml:"removeFailedDownloads,omitempty"`

	Tags   []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Fields []FieldIR `json:"fields,omitempty" yaml:"fields,omitempty"`
}
