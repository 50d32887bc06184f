/*
Copyright 2026.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	apiextensionsv1 "k8s.io/apiextensions-apiserver/pkg/apis/apiextensions/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// =============================================================================
// Connection Types
// =============================================================================

// ConnectionSpec defines how to connect to an *arr service
type ConnectionSpec struct {
	// URL is the base URL of the service (e.g., http://radarr:7878)
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:Pattern=`^https?://`
	URL string `json:"url"`

	// APIKeySecretRef references a Secret containing the API key.
	// If not specified, auto-discovery is attempted.
	// +optional
	APIKeySecretRef *SecretKeySelector `json:"apiKeySecretRef,omitempty"`

	// ConfigPath is the path to config.xml for API key auto-discovery.
	// Only used if APIKeySecretRef is not specified.
	// Defaults to /{app}-config/config.xml
	// +optional
	ConfigPath string `json:"configPath,omitempty"`

	// ConfigPVC is the name of the PersistentVolumeClaim holding the
	// app's config directory. When set and APIKeySecretRef is not, the
	// API key is discovered by reading config.xml from the claim.
	// +optional
	ConfigPVC string `json:"configPVC,omitempty"`

	// InsecureSkipVerify disables TLS certificate verification.
	// +optional
	InsecureSkipVerify bool `json:"insecureSkipVerify,omitempty"`

	// Timeout specifies the connection timeout.
	// +optional
	// +kubebuilder:default="30s"
	Timeout *metav1.Duration `json:"timeout,omitempty"`
}

// SecretKeySelector selects a key from a Kubernetes Secret
type SecretKeySelector struct {
	// Name is the name of the Secret in the same namespace.
	// +kubebuilder:validation:Required
	Name string `json:"name"`

	// Key is the key within the Secret.
	// +optional
	// +kubebuilder:default="apiKey"
	Key string `json:"key,omitempty"`
}

// =============================================================================
// Field Types
// =============================================================================

// FieldSpec sets one implementation-specific field on a resource
// (download client, indexer, notification or custom format condition).
// Exactly one of Value and ValueFrom should be set.
type FieldSpec struct {
	// Name is the API field name (camelCase, e.g. "host", "apiKey").
	// +kubebuilder:validation:Required
	Name string `json:"name"`

	// Value is the literal field value.
	// +optional
	Value *apiextensionsv1.JSON `json:"value,omitempty"`

	// ValueFrom references a Secret key for sensitive values such as
	// passwords and API keys. Fields set this way are always pushed to
	// the remote, since the remote never echoes them back.
	// +optional
	ValueFrom *SecretKeySelector `json:"valueFrom,omitempty"`
}

// =============================================================================
// Catalog Types
// =============================================================================

// CatalogSpec configures the external format catalog used to resolve
// trashId references (TRaSH-Guides style aggregated metadata).
type CatalogSpec struct {
	// URL is the base URL of the catalog.
	// +kubebuilder:validation:Required
	// +kubebuilder:validation:Pattern=`^https?://`
	URL string `json:"url"`

	// TTL is how long a fetched catalog snapshot is reused before it is
	// fetched again.
	// +optional
	// +kubebuilder:default="5m"
	TTL *metav1.Duration `json:"ttl,omitempty"`
}

// =============================================================================
// Reconciliation Types
// =============================================================================

// ReconciliationSpec configures reconciliation behavior
type ReconciliationSpec struct {
	// Interval between reconciliations.
	// +optional
	// +kubebuilder:default="5m"
	Interval *metav1.Duration `json:"interval,omitempty"`

	// Suspend pauses reconciliation.
	// +optional
	Suspend bool `json:"suspend,omitempty"`
}

// =============================================================================
// Status Types
// =============================================================================

// ManagedResources tracks remote resources created by the operator
type ManagedResources struct {
	// TagIDs are the managed tag IDs.
	// +optional
	TagIDs []int `json:"tagIds,omitempty"`

	// RootFolderIDs are the managed root folder IDs.
	// +optional
	RootFolderIDs []int `json:"rootFolderIds,omitempty"`

	// CustomFormatIDs are the managed custom format IDs.
	// +optional
	CustomFormatIDs []int `json:"customFormatIds,omitempty"`

	// QualityProfileIDs are the managed quality profile IDs.
	// +optional
	QualityProfileIDs []int `json:"qualityProfileIds,omitempty"`

	// DownloadClientIDs are the managed download client IDs.
	// +optional
	DownloadClientIDs []int `json:"downloadClientIds,omitempty"`

	// IndexerIDs are the managed indexer IDs.
	// +optional
	IndexerIDs []int `json:"indexerIds,omitempty"`

	// NotificationIDs are the managed notification IDs.
	// +optional
	NotificationIDs []int `json:"notificationIds,omitempty"`

	// ImportListIDs are the managed import list IDs.
	// +optional
	ImportListIDs []int `json:"importListIds,omitempty"`
}

// HealthStatus represents the health state of an *arr app
type HealthStatus struct {
	// Healthy indicates whether the app has no error-level issues.
	// +optional
	Healthy bool `json:"healthy,omitempty"`

	// IssueCount is the total number of health issues.
	// +optional
	IssueCount int `json:"issueCount,omitempty"`

	// ErrorCount is the number of error-level issues.
	// +optional
	ErrorCount int `json:"errorCount,omitempty"`

	// WarningCount is the number of warning-level issues.
	// +optional
	WarningCount int `json:"warningCount,omitempty"`

	// LastCheck is the timestamp of the last health check.
	// +optional
	LastCheck *metav1.Time `json:"lastCheck,omitempty"`

	// Issues lists the current health issues.
	// +optional
	Issues []HealthIssueStatus `json:"issues,omitempty"`
}

// HealthIssueStatus represents a single health issue
type HealthIssueStatus struct {
	// Source identifies the check that produced this issue.
	// +optional
	Source string `json:"source,omitempty"`

	// Type is the severity: error, warning, notice.
	// +optional
	Type string `json:"type,omitempty"`

	// Message is the human-readable description.
	// +optional
	Message string `json:"message,omitempty"`

	// WikiURL is a link to documentation about this issue.
	// +optional
	WikiURL string `json:"wikiUrl,omitempty"`
}

// SkippedResourceStatus records a remote resource left untouched because
// its implementation is not recognized.
type SkippedResourceStatus struct {
	// Kind is the resource collection (e.g. "downloadclient").
	// +optional
	Kind string `json:"kind,omitempty"`

	// Name is the remote resource name.
	// +optional
	Name string `json:"name,omitempty"`

	// Implementation is the unrecognized remote implementation.
	// +optional
	Implementation string `json:"implementation,omitempty"`
}
