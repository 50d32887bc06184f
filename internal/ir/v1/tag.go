package v1

// TagsIR declares the tag labels that must exist on the instance. The
// compiler adds every label referenced by another resource, so a tag used
// by an indexer or download client never has to be declared twice.
// Tags are create-only: unmanaged remote tags are left alone.
type TagsIR struct {
	Labels []string `json:"labels,omitempty" yaml:"labels,omitempty"`
}

// HasLabel reports whether the label is declared.
func (t *TagsIR) HasLabel(label string) bool {
	if t == nil {
		return false
	}
	for _, l := range t.Labels {
		if l == label {
			return true
		}
	}
	return false
}
