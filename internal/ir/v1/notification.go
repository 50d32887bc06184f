package v1

// NotificationsIR declares notification connections, keyed by name.
type NotificationsIR struct {
	DeleteUnmanaged bool `json:"deleteUnmanaged,omitempty" yaml:"deleteUnmanaged,omitempty"`

	Definitions []NotificationIR `json:"definitions,omitempty" yaml:"definitions,omitempty"`
}

// NotificationIR is a single notification connection.
type NotificationIR struct {
	Name           string `json:"name" yaml:"name"`
	Implementation string `json:"implementation" yaml:"implementation"`
	ConfigContract string `json:"configContract" yaml:"configContract"`

	OnGrab                      bool `json:"onGrab,omitempty" yaml:"onGrab,omitempty"`
	OnDownload                  bool `json:"onDownload,omitempty" yaml:"onDownload,omitempty"`
	OnUpgrade                   bool `json:"onUpgrade,omitempty" yaml:"onUpgrade,omitempty"`
	OnRename                    bool `json:"onRename,omitempty" yaml:"onRename,omitempty"`
	OnMovieDelete               bool `json:"onMovieDelete,omitempty" yaml:"onMovieDelete,omitempty"`
	OnHealthIssue               bool `json:"onHealthIssue,omitempty" yaml:"onHealthIssue,omitempty"`
	IncludeHealthWarnings       bool `json:"includeHealthWarnings,omitempty" yaml:"includeHealthWarnings,omitempty"`
	OnApplicationUpdate         bool `json:"onApplicationUpdate,omitempty" yaml:"onApplicationUpdate,omitempty"`

	Tags   []string  `json:"tags,omitempty" yaml:"tags,omitempty"`
	Fields []FieldIR `json:"fields,omitempty" yaml:"fields,omitempty"`
}
