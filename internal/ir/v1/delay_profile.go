package v1

// DelayProfilesIR declares the ordered delay profile list. Delay profiles
// have no natural key: identity is positional, and any difference from the
// remote list replaces the whole list in the order given here. The
// highest-priority profile comes first; the remote default profile is
// always last and is updated in place, never deleted.
type DelayProfilesIR struct {
	// DeleteUnmanaged removes remote non-default profiles beyond the
	// declared list length. When unset, extra remote profiles are kept
	// after the declared ones.
	DeleteUnmanaged bool `json:"deleteUnmanaged,omitempty" yaml:"deleteUnmanaged,omitempty"`

	Definitions []DelayProfileIR `json:"definitions,omitempty" yaml:"definitions,omitempty"`
}

// DelayProfileIR is a single delay profile. Tags are symbolic labels.
type DelayProfileIR struct {
	PreferredProtocol              string   `json:"preferredProtocol,omitempty" yaml:"preferredProtocol,omitempty"`
	UsenetDelay                    int      `json:"usenetDelay,omitempty" yaml:"usenetDelay,omitempty"`
	TorrentDelay                   int      `json:"torrentDelay,omitempty" yaml:"torrentDelay,omitempty"`
	EnableUsenet                   bool     `json:"enableUsenet,omitempty" yaml:"enableUsenet,omitempty"`
	EnableTorrent                  bool     `json:"enableTorrent,omitempty" yaml:"enableTorrent,omitempty"`
	BypassIfHighestQuality         bool     `json:"bypassIfHighestQuality,omitempty" yaml:"bypassIfHighestQuality,omitempty"`
	BypassIfAboveCustomFormatScore bool     `json:"bypassIfAboveCustomFormatScore,omitempty" yaml:"bypassIfAboveCustomFormatScore,omitempty"`
	MinimumCustomFormatScore       int      `json:"minimumCustomFormatScore,omitempty" yaml:"minimumCustomFormatScore,omitempty"`
	Tags                           []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}
