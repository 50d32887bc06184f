// Package radarr provides the Radarr adapter for Concordarr.
// It implements the adapters.Adapter interface for managing Radarr configuration.
package radarr

import (
	"context"
	"fmt"
	"time"

	"github.com/concordarr/concordarr-operator/internal/adapters"
	"github.com/concordarr/concordarr-operator/internal/adapters/httpclient"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// Adapter implements the adapters.Adapter interface for Radarr
type Adapter struct{}

// Ensure Adapter implements the interface
var _ adapters.Adapter = (*Adapter)(nil)

func init() {
	adapters.Register(&Adapter{})
}

// Name returns a unique identifier for this adapter
func (a *Adapter) Name() string {
	return "radarr"
}

// SupportedApp returns the app this adapter handles
func (a *Adapter) SupportedApp() string {
	return adapters.AppRadarr
}

// newClient creates an HTTP client for the given connection.
func (a *Adapter) newClient(conn *irv1.ConnectionIR) *httpclient.Client {
	return httpclient.New(httpclient.Config{
		BaseURL:            conn.URL,
		APIKey:             conn.APIKey,
		InsecureSkipVerify: conn.InsecureSkipVerify,
	})
}

// Connect tests connectivity and retrieves service info
func (a *Adapter) Connect(ctx context.Context, conn *irv1.ConnectionIR) (*adapters.ServiceInfo, error) {
	c := a.newClient(conn)

	var status SystemResource
	if err := c.Get(ctx, "/api/v3/system/status", &status); err != nil {
		return nil, fmt.Errorf("failed to connect to Radarr: %w", err)
	}

	info := &adapters.ServiceInfo{
		Version: status.Version,
	}

	if status.StartTime != nil {
		info.StartTime = *status.StartTime
	}

	return info, nil
}

// Discover queries Radarr for its capabilities
func (a *Adapter) Discover(ctx context.Context, conn *irv1.ConnectionIR) (*adapters.Capabilities, error) {
	c := a.newClient(conn)

	caps := &adapters.Capabilities{
		DiscoveredAt: time.Now(),
	}

	// Discover custom format condition types
	var cfSchemas []CustomFormatSpecificationSchema
	if err := c.Get(ctx, "/api/v3/customformat/schema", &cfSchemas); err == nil {
		seen := make(map[string]bool)
		for _, schema := range cfSchemas {
			if schema.Implementation != "" && !seen[schema.Implementation] {
				caps.ConditionTypes = append(caps.ConditionTypes, schema.Implementation)
				seen[schema.Implementation] = true
			}
		}
	}

	// Discover download client types
	var dcSchemas []DownloadClientResource
	if err := c.Get(ctx, "/api/v3/downloadclient/schema", &dcSchemas); err == nil {
		seen := make(map[string]bool)
		for _, schema := range dcSchemas {
			if schema.Implementation != "" && !seen[schema.Implementation] {
				caps.DownloadClientTypes = append(caps.DownloadClientTypes, schema.Implementation)
				seen[schema.Implementation] = true
			}
		}
	}

	// Discover indexer types
	var idxSchemas []IndexerResource
	if err := c.Get(ctx, "/api/v3/indexer/schema", &idxSchemas); err == nil {
		seen := make(map[string]bool)
		for _, schema := range idxSchemas {
			if schema.Implementation != "" && !seen[schema.Implementation] {
				caps.IndexerTypes = append(caps.IndexerTypes, schema.Implementation)
				seen[schema.Implementation] = true
			}
		}
	}

	// Discover notification types
	var ntSchemas []NotificationResource
	if err := c.Get(ctx, "/api/v3/notification/schema", &ntSchemas); err == nil {
		seen := make(map[string]bool)
		for _, schema := range ntSchemas {
			if schema.Implementation != "" && !seen[schema.Implementation] {
				caps.NotificationTypes = append(caps.NotificationTypes, schema.Implementation)
				seen[schema.Implementation] = true
			}
		}
	}

	// Discover import list types
	var ilSchemas []ImportListResource
	if err := c.Get(ctx, "/api/v3/importlist/schema", &ilSchemas); err == nil {
		seen := make(map[string]bool)
		for _, schema := range ilSchemas {
			if schema.Implementation != "" && !seen[schema.Implementation] {
				caps.ImportListTypes = append(caps.ImportListTypes, schema.Implementation)
				seen[schema.Implementation] = true
			}
		}
	}

	return caps, nil
}

// CurrentState fetches the live Radarr configuration and decodes it into
// declared-state shape. Every collection is fetched fresh; nothing is
// cached between reconciliations.
func (a *Adapter) CurrentState(ctx context.Context, conn *irv1.ConnectionIR) (*irv1.IR, error) {
	c := a.newClient(conn)

	ir := &irv1.IR{
		Version:     irv1.IRVersion,
		GeneratedAt: time.Now(),
		App:         adapters.AppRadarr,
		Connection:  conn,
	}

	rt, err := loadRefTable(ctx, c)
	if err != nil {
		return nil, err
	}

	tags, err := a.getTags(ctx, c)
	if err != nil {
		return nil, err
	}
	ir.Tags = tags

	definitions, err := a.getQualityDefinitions(ctx, c)
	if err != nil {
		return nil, err
	}
	ir.QualityDefinitions = definitions

	folders, _, err := a.getRootFolders(ctx, c)
	if err != nil {
		return nil, err
	}
	ir.RootFolders = folders

	formats, _, err := a.getCustomFormats(ctx, c)
	if err != nil {
		return nil, err
	}
	ir.CustomFormats = formats

	profiles, _, err := a.getQualityProfiles(ctx, c, rt)
	if err != nil {
		return nil, err
	}
	ir.QualityProfiles = profiles

	delayProfiles, _, err := a.getDelayProfiles(ctx, c, rt)
	if err != nil {
		return nil, err
	}
	ir.DelayProfiles = delayProfiles

	clients, _, err := a.getDownloadClients(ctx, c, rt, ir)
	if err != nil {
		return nil, err
	}
	ir.DownloadClients = clients

	indexers, _, err := a.getIndexers(ctx, c, rt, ir)
	if err != nil {
		return nil, err
	}
	ir.Indexers = indexers

	notifications, _, err := a.getNotifications(ctx, c, rt, ir)
	if err != nil {
		return nil, err
	}
	ir.Notifications = notifications

	lists, _, err := a.getImportLists(ctx, c, rt, ir)
	if err != nil {
		return nil, err
	}
	ir.ImportLists = lists

	return ir, nil
}

// Diff computes the per-collection changes needed to converge Radarr from
// current to desired state, in dependency order. Remote IDs are resolved
// at apply time, so changes carry symbolic payloads only.
func (a *Adapter) Diff(current, desired *irv1.IR, caps *adapters.Capabilities) (*adapters.Plan, error) {
	plan := &adapters.Plan{}

	for _, kind := range adapters.CollectionOrder {
		var changes adapters.ChangeSet
		switch kind {
		case adapters.ResourceTag:
			changes = a.diffTags(current, desired)
		case adapters.ResourceQualityDefinition:
			changes = a.diffQualityDefinitions(current, desired)
		case adapters.ResourceRootFolder:
			changes = a.diffRootFolders(current, desired, nil)
		case adapters.ResourceCustomFormat:
			var err error
			changes, err = a.diffCustomFormats(current, desired, caps, nil)
			if err != nil {
				return nil, err
			}
		case adapters.ResourceQualityProfile:
			changes = a.diffQualityProfiles(current, desired, nil)
		case adapters.ResourceDelayProfile:
			changes = a.diffDelayProfiles(current, desired)
		case adapters.ResourceDownloadClient:
			changes = a.diffDownloadClients(current, desired, nil)
		case adapters.ResourceIndexer:
			changes = a.diffIndexers(current, desired, nil)
		case adapters.ResourceNotification:
			changes = a.diffNotifications(current, desired, nil)
		case adapters.ResourceImportList:
			changes = a.diffImportLists(current, desired, nil)
		}
		plan.Collections = append(plan.Collections, adapters.CollectionPlan{
			Kind:    kind,
			Changes: changes,
		})
	}

	return plan, nil
}

// Dump reconstructs a declared-state document from the live instance.
// CurrentState already resolves IDs back to symbolic names, so the result
// round-trips as reconciliation input.
func (a *Adapter) Dump(ctx context.Context, conn *irv1.ConnectionIR) (*irv1.IR, error) {
	return a.CurrentState(ctx, conn)
}

// Ensure Adapter implements HealthChecker
var _ adapters.HealthChecker = (*Adapter)(nil)

// GetHealth fetches the current health status from Radarr
func (a *Adapter) GetHealth(ctx context.Context, conn *irv1.ConnectionIR) (*irv1.HealthStatus, error) {
	c := a.newClient(conn)

	var healthChecks []HealthResource
	if err := c.Get(ctx, "/api/v3/health", &healthChecks); err != nil {
		return nil, fmt.Errorf("failed to get health: %w", err)
	}

	status := &irv1.HealthStatus{
		Healthy: true,
		Issues:  make([]irv1.HealthIssue, 0, len(healthChecks)),
	}

	for _, check := range healthChecks {
		issueType := irv1.HealthIssueTypeNotice
		switch check.Type {
		case "error":
			issueType = irv1.HealthIssueTypeError
			status.Healthy = false
		case "warning":
			issueType = irv1.HealthIssueTypeWarning
		}

		status.Issues = append(status.Issues, irv1.HealthIssue{
			Source:  check.Source,
			Type:    issueType,
			Message: check.Message,
			WikiURL: check.WikiURL,
		})
	}

	return status, nil
}
