package v1

// ConnectionIR holds resolved connection details for an *arr instance.
type ConnectionIR struct {
	URL                string `json:"url" yaml:"url"`
	APIKey             string `json:"-" yaml:"-"`
	InsecureSkipVerify bool   `json:"insecureSkipVerify,omitempty" yaml:"insecureSkipVerify,omitempty"`
}
