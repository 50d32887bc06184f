// Package adapters provides the interface and implementations for *arr service adapters.
// Adapters translate between the Intermediate Representation (IR) and service-specific APIs.
package adapters

import (
	"context"
	"time"

	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// Adapter defines the contract for service adapters
type Adapter interface {
	// Name returns a unique identifier for this adapter
	Name() string

	// SupportedApp returns the app this adapter handles: radarr
	SupportedApp() string

	// Connect tests connectivity and retrieves service info
	Connect(ctx context.Context, conn *irv1.ConnectionIR) (*ServiceInfo, error)

	// Discover queries the service for its capabilities
	// MUST NOT return error for missing features (degrade gracefully)
	// MUST return error only for connection failures
	Discover(ctx context.Context, conn *irv1.ConnectionIR) (*Capabilities, error)

	// CurrentState fetches the remote configuration fresh and decodes it
	// into declared-state shape. Remote resources with unrecognized
	// implementation discriminators are skipped (recorded in IR.Skipped),
	// not errors.
	CurrentState(ctx context.Context, conn *irv1.ConnectionIR) (*irv1.IR, error)

	// Diff computes the per-collection changes needed to move from current
	// to desired state, in dependency order.
	// MUST be deterministic (same inputs = same outputs)
	Diff(current, desired *irv1.IR, caps *Capabilities) (*Plan, error)

	// Apply converges the instance to the desired state. Creates and
	// updates run first, collection by collection in dependency order, so
	// resources created in this pass are resolvable by collections that
	// reference them. Deletes run in a second pass against re-fetched
	// remote state, in reverse dependency order, so nothing is deleted
	// while a dependent still points at it.
	// MUST be idempotent (safe to retry)
	// MUST be fail-soft across collections (a failed collection does not
	// abort its siblings)
	Apply(ctx context.Context, conn *irv1.ConnectionIR, desired *irv1.IR, plan *Plan) (*ApplyResult, error)

	// Dump reconstructs a declared-state document from the live instance,
	// with remote IDs resolved back to symbolic names. The result round-
	// trips as reconciliation input.
	Dump(ctx context.Context, conn *irv1.ConnectionIR) (*irv1.IR, error)
}

// HealthChecker is an optional interface for adapters that support health checking.
// When implemented, the controller will fetch health status and emit K8s events.
type HealthChecker interface {
	// GetHealth fetches the current health status from the service
	GetHealth(ctx context.Context, conn *irv1.ConnectionIR) (*irv1.HealthStatus, error)
}

// ServiceInfo describes the connected service
type ServiceInfo struct {
	Version   string
	StartTime time.Time
}

// Capabilities describes what features a service supports
type Capabilities struct {
	DiscoveredAt time.Time

	// ConditionTypes lists the custom format condition implementations
	// the service advertises (from the custom format schema endpoint).
	ConditionTypes []string

	// Download client capabilities
	DownloadClientTypes []string

	// Indexer capabilities
	IndexerTypes []string

	// Notification capabilities
	NotificationTypes []string

	// Import list capabilities
	ImportListTypes []string
}

// SupportsConditionType reports whether the service advertises the given
// custom format condition implementation. An empty capability list (schema
// endpoint unavailable) is treated as unknown, not unsupported.
func (c *Capabilities) SupportsConditionType(implementation string) bool {
	if c == nil || len(c.ConditionTypes) == 0 {
		return true
	}
	for _, t := range c.ConditionTypes {
		if t == implementation {
			return true
		}
	}
	return false
}

// Plan is the ordered set of per-collection change sets for one instance,
// in dependency order: collections referenced by others come first.
type Plan struct {
	Collections []CollectionPlan
}

// CollectionPlan holds the changes for a single resource collection.
type CollectionPlan struct {
	Kind    string
	Changes ChangeSet
}

// IsEmpty returns true if no collection has changes to apply.
func (p *Plan) IsEmpty() bool {
	for _, c := range p.Collections {
		if !c.Changes.IsEmpty() {
			return false
		}
	}
	return true
}

// TotalChanges returns the total number of changes across all collections.
func (p *Plan) TotalChanges() int {
	n := 0
	for _, c := range p.Collections {
		n += c.Changes.TotalChanges()
	}
	return n
}

// ChangeSet describes changes to apply within one collection.
type ChangeSet struct {
	Creates []Change
	Updates []Change
	Deletes []Change

	// Unchanged records declared resources already in sync. They are
	// logged for auditability but never sent to the remote.
	Unchanged []Change
}

// IsEmpty returns true if there are no changes to apply
func (cs *ChangeSet) IsEmpty() bool {
	return len(cs.Creates) == 0 && len(cs.Updates) == 0 && len(cs.Deletes) == 0
}

// TotalChanges returns the total number of changes
func (cs *ChangeSet) TotalChanges() int {
	return len(cs.Creates) + len(cs.Updates) + len(cs.Deletes)
}

// Change represents a single change to apply
type Change struct {
	ResourceType string      // e.g., "QualityProfile", "CustomFormat"
	Name         string      // Identity key (name, path, or position label)
	ID           *int        // Service-specific ID (nil for creates)
	Payload      interface{} // IR payload, encoded at apply time
}

// ApplyResult describes the outcome of applying changes
type ApplyResult struct {
	Applied int
	Failed  int
	Skipped int
	Errors  []ApplyError

	// Collections holds per-collection outcomes, in apply order.
	Collections []CollectionResult
}

// Success returns true if all changes were applied successfully
func (ar *ApplyResult) Success() bool {
	return ar.Failed == 0 && len(ar.Errors) == 0
}

// CollectionResult is the outcome of one collection's reconciliation.
type CollectionResult struct {
	Kind    string
	Applied int
	Failed  int
	Skipped int

	// Aborted is set when a collection-level failure (unresolved
	// reference, transport error) stopped the remaining operations of
	// this collection. Sibling collections still proceed.
	Aborted bool
}

// ApplyError represents a failure to apply a single change
type ApplyError struct {
	Change Change
	Error  error
}

// App constants
const (
	AppRadarr = "radarr"
)

// Resource type constants
const (
	ResourceTag               = "Tag"
	ResourceQualityDefinition = "QualityDefinition"
	ResourceRootFolder        = "RootFolder"
	ResourceCustomFormat      = "CustomFormat"
	ResourceQualityProfile    = "QualityProfile"
	ResourceDelayProfile      = "DelayProfile"
	ResourceDownloadClient    = "DownloadClient"
	ResourceIndexer           = "Indexer"
	ResourceNotification      = "Notification"
	ResourceImportList        = "ImportList"
)

// CollectionOrder is the dependency order in which collections reconcile:
// collections with no outgoing references first, then collections that
// reference them. Deletes apply in the reverse of this order.
var CollectionOrder = []string{
	ResourceTag,
	ResourceQualityDefinition,
	ResourceRootFolder,
	ResourceCustomFormat,
	ResourceQualityProfile,
	ResourceDelayProfile,
	ResourceDownloadClient,
	ResourceIndexer,
	ResourceNotification,
	ResourceImportList,
}
