package v1

// RootFoldersIR declares the root folders the instance should track.
// Identity is the filesystem path; there is nothing to update, only
// registrations to add or remove. Removing a registration never touches
// the folder on disk.
type RootFoldersIR struct {
	// DeleteUnmanaged removes remote root folder registrations whose path
	// is not declared here. The underlying directory is not deleted.
	DeleteUnmanaged bool `json:"deleteUnmanaged,omitempty" yaml:"deleteUnmanaged,omitempty"`

	Definitions []RootFolderIR `json:"definitions,omitempty" yaml:"definitions,omitempty"`
}

// RootFolderIR is a single tracked folder.
type RootFolderIR struct {
	Path string `json:"path" yaml:"path"`
}
