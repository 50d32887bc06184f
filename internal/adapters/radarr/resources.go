package radarr

import "time"

// SystemResource represents the system status response.
type SystemResource struct {
	Version   string     `json:"version"`
	StartTime *time.Time `json:"startTime"`
}

// TagResource represents a tag used for grouping resources.
type TagResource struct {
	ID    int    `json:"id,omitempty"`
	Label string `json:"label"`
}

// HealthResource represents a health check entry.
type HealthResource struct {
	Source  string `json:"source"`
	Type    string `json:"type"` // error, warning, notice
	Message string `json:"message"`
	WikiURL string `json:"wikiUrl"`
}

// Field represents a dynamic configuration field used in download clients,
// indexers, notifications, and custom format conditions.
type Field struct {
	Name  string      `json:"name"`
	Value interface{} `json:"value,omitempty"`
}

// FieldSchema describes a field as advertised by a schema endpoint.
// Privacy marks secret fields, which the API masks on read.
type FieldSchema struct {
	Name    string      `json:"name"`
	Value   interface{} `json:"value,omitempty"`
	Type    string      `json:"type,omitempty"`
	Privacy string      `json:"privacy,omitempty"`
}

// QualityResource is the quality descriptor nested in quality definitions
// and quality profile items.
type QualityResource struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Source     string `json:"source,omitempty"`
	Resolution int    `json:"resolution,omitempty"`
}

// QualityDefinitionResource represents a quality definition. The set is
// fixed by the service; only title and size limits are mutable.
type QualityDefinitionResource struct {
	ID            int             `json:"id,omitempty"`
	Quality       QualityResource `json:"quality"`
	Title         string          `json:"title"`
	MinSize       float64         `json:"minSize"`
	MaxSize       *float64        `json:"maxSize,omitempty"`
	PreferredSize *float64        `json:"preferredSize,omitempty"`
}

// RootFolderResource represents a root folder.
type RootFolderResource struct {
	ID   int    `json:"id,omitempty"`
	Path string `json:"path"`
}

// CustomFormatResource represents a custom format.
type CustomFormatResource struct {
	ID                              int                         `json:"id,omitempty"`
	Name                            string                      `json:"name"`
	IncludeCustomFormatWhenRenaming bool                        `json:"includeCustomFormatWhenRenaming"`
	Specifications                  []CustomFormatSpecification `json:"specifications"`
}

// CustomFormatSpecification represents a condition within a custom format.
type CustomFormatSpecification struct {
	Name           string  `json:"name"`
	Implementation string  `json:"implementation"`
	Negate         bool    `json:"negate"`
	Required       bool    `json:"required"`
	Fields         []Field `json:"fields"`
}

// CustomFormatSpecificationSchema describes an available condition type.
type CustomFormatSpecificationSchema struct {
	Name           string        `json:"name"`
	Implementation string        `json:"implementation"`
	Fields         []FieldSchema `json:"fields"`
}

// QualityProfileResource represents a quality profile.
type QualityProfileResource struct {
	ID                int                  `json:"id,omitempty"`
	Name              string               `json:"name"`
	UpgradeAllowed    bool                 `json:"upgradeAllowed"`
	Cutoff            int                  `json:"cutoff"`
	Items             []QualityProfileItem `json:"items"`
	FormatItems       []ProfileFormatItem  `json:"formatItems"`
	MinFormatScore    int                  `json:"minFormatScore"`
	CutoffFormatScore int                  `json:"cutoffFormatScore"`
	Language          *LanguageResource    `json:"language,omitempty"`
}

// QualityProfileItem represents a quality or quality group in a profile.
// Groups carry a synthetic ID and nested single-quality items.
type QualityProfileItem struct {
	ID      int                  `json:"id,omitempty"`
	Name    string               `json:"name,omitempty"`
	Quality *QualityResource     `json:"quality,omitempty"`
	Items   []QualityProfileItem `json:"items,omitempty"`
	Allowed bool                 `json:"allowed"`
}

// ProfileFormatItem assigns a score to a custom format within a profile.
type ProfileFormatItem struct {
	Format int    `json:"format"`
	Name   string `json:"name,omitempty"`
	Score  int    `json:"score"`
}

// LanguageResource represents a language known to the service.
type LanguageResource struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// DelayProfileResource represents a delay profile. Profiles are ordered;
// the highest order value is the catch-all default, which cannot be deleted.
type DelayProfileResource struct {
	ID                             int    `json:"id,omitempty"`
	Order                          int    `json:"order"`
	PreferredProtocol              string `json:"preferredProtocol"`
	UsenetDelay                    int    `json:"usenetDelay"`
	TorrentDelay                   int    `json:"torrentDelay"`
	EnableUsenet                   bool   `json:"enableUsenet"`
	EnableTorrent                  bool   `json:"enableTorrent"`
	BypassIfHighestQuality         bool   `json:"bypassIfHighestQuality"`
	BypassIfAboveCustomFormatScore bool   `json:"bypassIfAboveCustomFormatScore"`
	MinimumCustomFormatScore       int    `json:"minimumCustomFormatScore"`
	Tags                           []int  `json:"tags"`
}

// DownloadClientResource represents a download client.
type DownloadClientResource struct {
	ID                       int     `json:"id,omitempty"`
	Name                     string  `json:"name"`
	Implementation           string  `json:"implementation"`
	ConfigContract           string  `json:"configContract"`
	Protocol                 string  `json:"protocol"`
	Enable                   bool    `json:"enable"`
	Priority                 int     `json:"priority"`
	RemoveCompletedDownloads bool    `json:"removeCompletedDownloads"`
	RemoveFailedDownloads    bool    `json:"removeFailedDownloads"`
	Tags                     []int   `json:"tags"`
	Fields                   []Field `json:"fields"`
}

// IndexerResource represents an indexer.
type IndexerResource struct {
	ID                      int     `json:"id,omitempty"`
	Name                    string  `json:"name"`
	Implementation          string  `json:"implementation"`
	ConfigContract          string  `json:"configContract"`
	Protocol                string  `json:"protocol"`
	Priority                int     `json:"priority"`
	EnableRss               bool    `json:"enableRss"`
	EnableAutomaticSearch   bool    `json:"enableAutomaticSearch"`
	EnableInteractiveSearch bool    `json:"enableInteractiveSearch"`
	DownloadClientID        int     `json:"downloadClientId"`
	Tags                    []int   `json:"tags"`
	Fields                  []Field `json:"fields"`
}

// NotificationResource represents a notification connection.
type NotificationResource struct {
	ID                    int     `json:"id,omitempty"`
	Name                  string  `json:"name"`
	Implementation        string  `json:"implementation"`
	ConfigContract        string  `json:"configContract"`
	OnGrab                bool    `json:"onGrab"`
	OnDownload            bool    `json:"onDownload"`
	OnUpgrade             bool    `json:"onUpgrade"`
	OnRename              bool    `json:"onRename"`
	OnMovieDelete         bool    `json:"onMovieDelete"`
	OnHealthIssue         bool    `json:"onHealthIssue"`
	IncludeHealthWarnings bool    `json:"includeHealthWarnings"`
	OnApplicationUpdate   bool    `json:"onApplicationUpdate"`
	Tags                  []int   `json:"tags"`
	Fields                []Field `json:"fields"`
}

// ImportListResource represents an import list.
type ImportListResource struct {
	ID                  int     `json:"id,omitempty"`
	Name                string  `json:"name"`
	Implementation      string  `json:"implementation"`
	ConfigContract      string  `json:"configContract"`
	Enabled             bool    `json:"enabled"`
	EnableAuto          bool    `json:"enableAuto"`
	SearchOnAdd         bool    `json:"searchOnAdd"`
	Monitor             string  `json:"monitor"`
	MinimumAvailability string  `json:"minimumAvailability"`
	QualityProfileID    int     `json:"qualityProfileId"`
	RootFolderPath      string  `json:"rootFolderPath"`
	ListType            string  `json:"listType,omitempty"`
	ListOrder           int     `json:"listOrder"`
	Tags                []int   `json:"tags"`
	Fields              []Field `json:"fields"`
}

// fieldValue returns the value of a named field, or nil when absent.
func fieldValue(fields []Field, name string) interface{} {
	for _, f := range fields {
		if f.Name == name {
			return f.Value
		}
	}
	return nil
}
