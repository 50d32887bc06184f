package v1

// HealthStatus represents the health of a managed instance.
type HealthStatus struct {
	Healthy bool          `json:"healthy"`
	Issues  []HealthIssue `json:"issues,omitempty"`
}

// HealthIssue is a single health check result reported by the instance.
type HealthIssue struct {
	Source  string `json:"source"`
	Type    string `json:"type"`
	Message string `json:"message"`
	WikiURL string `json:"wikiUrl,omitempty"`
}

// Health issue types.
const (
	HealthIssueTypeError   = "error"
	HealthIssueTypeWarning = "warning"
	HealthIssueTypeNotice  = "notice"
)
