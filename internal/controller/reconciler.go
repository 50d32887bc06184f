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

package controller

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/meta"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	"sigs.k8s.io/controller-runtime/pkg/client"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	arrv1alpha1 "github.com/concordarr/concordarr-operator/api/v1alpha1"
	"github.com/concordarr/concordarr-operator/internal/adapters"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
	"github.com/concordarr/concordarr-operator/internal/metrics"
)

const (
	// Condition types
	ConditionTypeReady     = "Ready"
	ConditionTypeConnected = "Connected"
	ConditionTypeSynced    = "Synced"

	// Default requeue intervals
	DefaultRequeueInterval = 5 * time.Minute
	ErrorRequeueInterval   = 30 * time.Second
)

// ConfigStatus is an interface for updating status on *arr config resources
type ConfigStatus interface {
	GetConditions() []metav1.Condition
	SetConditions(conditions []metav1.Condition)
	SetConnected(connected bool)
	SetServiceVersion(version string)
	SetLastReconcile(t *metav1.Time)
	SetLastAppliedHash(hash string)
	SetSkippedResources(skipped []arrv1alpha1.SkippedResourceStatus)
}

// ReconcileHelper provides shared reconciliation logic for *arr controllers
type ReconcileHelper struct {
	Client client.Client
}

// NewReconcileHelper creates a new ReconcileHelper
func NewReconcileHelper(c client.Client) *ReconcileHelper {
	return &ReconcileHelper{Client: c}
}

// ReconcileConfig performs the common reconciliation flow for an *arr config
func (h *ReconcileHelper) ReconcileConfig(
	ctx context.Context,
	appType string,
	connIR *irv1.ConnectionIR,
	desiredIR *irv1.IR,
	status ConfigStatus,
	generation int64,
) (*adapters.ApplyResult, error) {
	log := logf.FromContext(ctx)
	startTime := time.Now()

	// Get the adapter
	adapter, ok := adapters.Get(appType)
	if !ok {
		err := fmt.Errorf("%s adapter not registered", appType)
		h.SetCondition(status, generation, ConditionTypeReady, metav1.ConditionFalse, "AdapterNotFound", err.Error())
		metrics.RecordSyncFailure(appType, "adapter_not_found", time.Since(startTime).Seconds())
		return nil, err
	}

	// Test connectivity and get service info
	serviceInfo, err := adapter.Connect(ctx, connIR)
	if err != nil {
		log.Error(err, "Failed to connect to service", "app", appType)
		status.SetConnected(false)
		h.SetCondition(status, generation, ConditionTypeConnected, metav1.ConditionFalse, "ConnectionFailed", err.Error())
		h.SetCondition(status, generation, ConditionTypeReady, metav1.ConditionFalse, "ConnectionFailed", fmt.Sprintf("Cannot connect to %s", appType))
		metrics.RecordConnectionStatus(appType, connIR.URL, false)
		metrics.RecordSyncFailure(appType, "connection_failed", time.Since(startTime).Seconds())
		return nil, err
	}

	status.SetConnected(true)
	status.SetServiceVersion(serviceInfo.Version)
	h.SetCondition(status, generation, ConditionTypeConnected, metav1.ConditionTrue, "Connected", fmt.Sprintf("Connected to %s %s", appType, serviceInfo.Version))

	// Record connection success and service version
	metrics.RecordConnectionStatus(appType, connIR.URL, true)
	metrics.RecordServiceVersion(appType, connIR.URL, serviceInfo.Version)

	// Discover capabilities
	caps, err := adapter.Discover(ctx, connIR)
	if err != nil {
		log.Error(err, "Failed to discover capabilities", "app", appType)
		h.SetCondition(status, generation, ConditionTypeReady, metav1.ConditionFalse, "DiscoveryFailed", err.Error())
		return nil, err
	}

	// Get current state
	currentIR, err := adapter.CurrentState(ctx, connIR)
	if err != nil {
		log.Error(err, "Failed to get current state", "app", appType)
		h.SetCondition(status, generation, ConditionTypeReady, metav1.ConditionFalse, "StateFetchFailed", err.Error())
		return nil, err
	}

	// Surface remote resources excluded from reconciliation
	status.SetSkippedResources(skippedToStatus(currentIR.Skipped))

	// Compute the per-collection plan
	plan, err := adapter.Diff(currentIR, desiredIR, caps)
	if err != nil {
		log.Error(err, "Failed to compute diff", "app", appType)
		h.SetCondition(status, generation, ConditionTypeReady, metav1.ConditionFalse, "DiffFailed", err.Error())
		return nil, err
	}

	// Report every planned operation, no-ops included, before anything
	// is applied.
	logPlan(log, plan)

	// Apply changes if needed
	var result *adapters.ApplyResult
	if !plan.IsEmpty() {
		log.Info("Applying changes", "total", plan.TotalChanges())

		// Record drift detection
		for _, col := range plan.Collections {
			for _, change := range col.Changes.Creates {
				metrics.RecordConfigDrift(appType, change.ResourceType)
			}
			for _, change := range col.Changes.Updates {
				metrics.RecordConfigDrift(appType, change.ResourceType)
			}
		}

		result, err = adapter.Apply(ctx, connIR, desiredIR, plan)
		if err != nil {
			log.Error(err, "Failed to apply changes")
			h.SetCondition(status, generation, ConditionTypeSynced, metav1.ConditionFalse, "ApplyFailed", err.Error())
			applied := 0
			if result != nil {
				applied = result.Applied
			}
			h.SetCondition(status, generation, ConditionTypeReady, metav1.ConditionFalse, "ApplyFailed",
				fmt.Sprintf("Applied %d/%d changes", applied, plan.TotalChanges()))
			metrics.RecordSyncFailure(appType, "apply_failed", time.Since(startTime).Seconds())
			return result, err
		}

		// Record applied changes
		for _, col := range plan.Collections {
			for _, change := range col.Changes.Creates {
				metrics.RecordApplyChange(appType, "create", change.ResourceType)
			}
			for _, change := range col.Changes.Updates {
				metrics.RecordApplyChange(appType, "update", change.ResourceType)
			}
			for _, change := range col.Changes.Deletes {
				metrics.RecordApplyChange(appType, "delete", change.ResourceType)
			}
		}

		if !result.Success() {
			log.Info("Some changes failed to apply", "applied", result.Applied, "failed", result.Failed)
			// Log each individual error for debugging
			for _, applyErr := range result.Errors {
				log.Error(applyErr.Error, "Failed to apply change",
					"resourceType", applyErr.Change.ResourceType,
					"resourceName", applyErr.Change.Name)
			}
			h.SetCondition(status, generation, ConditionTypeSynced, metav1.ConditionFalse, "PartiallyApplied",
				fmt.Sprintf("Applied %d changes, %d failed", result.Applied, result.Failed))
		} else {
			log.Info("All changes applied successfully", "applied", result.Applied)
			h.SetCondition(status, generation, ConditionTypeSynced, metav1.ConditionTrue, "Synced",
				fmt.Sprintf("Applied %d changes", result.Applied))
		}
	} else {
		log.Info("No changes to apply, state is in sync")
		h.SetCondition(status, generation, ConditionTypeSynced, metav1.ConditionTrue, "InSync", "Configuration is in sync")
		result = &adapters.ApplyResult{Applied: 0}
	}

	// Update timestamps and hash
	now := metav1.Now()
	status.SetLastReconcile(&now)
	status.SetLastAppliedHash(desiredIR.SourceHash)
	h.SetCondition(status, generation, ConditionTypeReady, metav1.ConditionTrue, "Ready", "Configuration reconciled successfully")

	// Record successful sync
	metrics.RecordSyncSuccess(appType, time.Since(startTime).Seconds())

	return result, nil
}

// CleanupManagedResources removes managed resources from the service on
// config deletion. The cleanup IR declares nothing, with deleteUnmanaged
// set on the collections the config managed, so the diff emits deletes
// for everything those collections hold.
func (h *ReconcileHelper) CleanupManagedResources(ctx context.Context, appType string, connIR *irv1.ConnectionIR, cleanupIR *irv1.IR) error {
	log := logf.FromContext(ctx)

	adapter, ok := adapters.Get(appType)
	if !ok {
		return fmt.Errorf("%s adapter not registered", appType)
	}

	// Get current managed state
	currentIR, err := adapter.CurrentState(ctx, connIR)
	if err != nil {
		log.Error(err, "Failed to get current state for cleanup")
		return err
	}

	if currentIR == nil {
		return nil
	}

	caps, _ := adapter.Discover(ctx, connIR)
	plan, err := adapter.Diff(currentIR, cleanupIR, caps)
	if err != nil {
		log.Error(err, "Failed to compute deletion diff")
		return err
	}

	logPlan(log, plan)

	if !plan.IsEmpty() {
		result, err := adapter.Apply(ctx, connIR, cleanupIR, plan)
		if err != nil {
			log.Error(err, "Failed to cleanup managed resources")
			return err
		}
		log.Info("Cleaned up managed resources", "deleted", result.Applied)
	}

	return nil
}

// logPlan reports every planned operation with its collection kind,
// identity key and action. Applies happen only after the full plan has
// been reported; no-ops log at verbosity 1.
func logPlan(log logr.Logger, plan *adapters.Plan) {
	for _, col := range plan.Collections {
		for _, change := range col.Changes.Creates {
			log.Info("Planned operation", "kind", col.Kind, "name", change.Name, "action", "create")
		}
		for _, change := range col.Changes.Updates {
			log.Info("Planned operation", "kind", col.Kind, "name", change.Name, "action", "update")
		}
		for _, change := range col.Changes.Deletes {
			log.Info("Planned operation", "kind", col.Kind, "name", change.Name, "action", "delete")
		}
		for _, change := range col.Changes.Unchanged {
			log.V(1).Info("Planned operation", "kind", col.Kind, "name", change.Name, "action", "none")
		}
	}
}

// SetCondition sets a condition on the config status
func (h *ReconcileHelper) SetCondition(status ConfigStatus, generation int64, condType string, condStatus metav1.ConditionStatus, reason, message string) {
	conditions := status.GetConditions()
	meta.SetStatusCondition(&conditions, metav1.Condition{
		Type:               condType,
		Status:             condStatus,
		ObservedGeneration: generation,
		LastTransitionTime: metav1.Now(),
		Reason:             reason,
		Message:            message,
	})
	status.SetConditions(conditions)
}

// ResolveSecretValue retrieves a value from a Kubernetes Secret
func (h *ReconcileHelper) ResolveSecretValue(ctx context.Context, namespace, name, key string) (string, error) {
	secret := &corev1.Secret{}
	if err := h.Client.Get(ctx, client.ObjectKey{Namespace: namespace, Name: name}, secret); err != nil {
		return "", fmt.Errorf("failed to get secret %s/%s: %w", namespace, name, err)
	}

	value, ok := secret.Data[key]
	if !ok {
		return "", fmt.Errorf("key %q not found in secret %s/%s", key, namespace, name)
	}

	return string(value), nil
}

// ResolveConnectionSecrets resolves secrets for a ConnectionSpec
func (h *ReconcileHelper) ResolveConnectionSecrets(ctx context.Context, namespace string, conn *arrv1alpha1.ConnectionSpec) (map[string]string, error) {
	resolved := make(map[string]string)

	if conn.APIKeySecretRef != nil {
		key := conn.APIKeySecretRef.Key
		if key == "" {
			key = "apiKey"
		}
		apiKey, err := h.ResolveSecretValue(ctx, namespace, conn.APIKeySecretRef.Name, key)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve API key secret: %w", err)
		}
		resolved["apiKey"] = apiKey
	}

	return resolved, nil
}

// skippedToStatus converts skipped remote resources to their status form
func skippedToStatus(skipped []irv1.SkippedResource) []arrv1alpha1.SkippedResourceStatus {
	if len(skipped) == 0 {
		return nil
	}
	out := make([]arrv1alpha1.SkippedResourceStatus, 0, len(skipped))
	for _, s := range skipped {
		out = append(out, arrv1alpha1.SkippedResourceStatus{
			Kind:           s.Kind,
			Name:           s.Name,
			Implementation: s.Implementation,
		})
	}
	return out
}

// CheckAndReportHealth checks the health of the app and reports events for issues.
// It returns the health status that should be stored in the CRD status.
// The recorder parameter is the standard Kubernetes EventRecorder from controller-runtime.
func (h *ReconcileHelper) CheckAndReportHealth(
	ctx context.Context,
	appType string,
	connIR *irv1.ConnectionIR,
	obj runtime.Object,
	recorder record.EventRecorder,
) *arrv1alpha1.HealthStatus {
	log := logf.FromContext(ctx)

	// Get the adapter
	adapter, ok := adapters.Get(appType)
	if !ok {
		log.V(1).Info("Adapter not found for health check", "app", appType)
		return nil
	}

	// Check if adapter supports HealthChecker interface
	healthChecker, ok := adapter.(adapters.HealthChecker)
	if !ok {
		log.V(1).Info("Adapter does not support HealthChecker", "app", appType)
		return nil
	}

	// Fetch health from the app
	healthIR, err := healthChecker.GetHealth(ctx, connIR)
	if err != nil {
		log.Error(err, "Failed to fetch health from app", "app", appType)
		return nil
	}

	// Convert IR health to API status
	now := metav1.Now()
	healthStatus := &arrv1alpha1.HealthStatus{
		Healthy:    healthIR.Healthy,
		IssueCount: len(healthIR.Issues),
		LastCheck:  &now,
		Issues:     make([]arrv1alpha1.HealthIssueStatus, 0, len(healthIR.Issues)),
	}

	for _, issue := range healthIR.Issues {
		healthStatus.Issues = append(healthStatus.Issues, arrv1alpha1.HealthIssueStatus{
			Source:  issue.Source,
			Type:    issue.Type,
			Message: issue.Message,
			WikiURL: issue.WikiURL,
		})

		// Count by type
		switch issue.Type {
		case irv1.HealthIssueTypeError:
			healthStatus.ErrorCount++
		case irv1.HealthIssueTypeWarning:
			healthStatus.WarningCount++
		}
	}

	// Emit K8s events for health issues
	if recorder != nil && obj != nil {
		for _, issue := range healthIR.Issues {
			eventType := corev1.EventTypeWarning
			reason := "HealthWarning"

			if issue.Type == irv1.HealthIssueTypeError {
				reason = "HealthError"
			} else if issue.Type == irv1.HealthIssueTypeNotice {
				eventType = corev1.EventTypeNormal
				reason = "HealthNotice"
			}

			// Only emit events for errors and warnings (not notices)
			if issue.Type != irv1.HealthIssueTypeNotice {
				recorder.Event(obj, eventType, reason, fmt.Sprintf("[%s] %s", issue.Source, issue.Message))
			}
		}
	}

	log.V(1).Info("Health check completed",
		"app", appType,
		"healthy", healthIR.Healthy,
		"issues", len(healthIR.Issues),
		"errors", healthStatus.ErrorCount,
		"warnings", healthStatus.WarningCount)

	return healthStatus
}
