package radarr

import (
	"context"
	"fmt"

	"github.com/concordarr/concordarr-operator/internal/adapters"
	"github.com/concordarr/concordarr-operator/internal/adapters/httpclient"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// knownNotificationImpls lists the notification implementations the
// adapter can decode. Remote connections with other implementations are
// skipped.
var knownNotificationImpls = map[string]bool{
	"Apprise":      true,
	"CustomScript": true,
	"Discord":      true,
	"Email":        true,
	"Gotify":       true,
	"Join":         true,
	"Mailgun":      true,
	"Notifiarr":    true,
	"Ntfy":         true,
	"Plex":         true,
	"Prowl":        true,
	"Pushbullet":   true,
	"Pushover":     true,
	"SendGrid":     true,
	"Slack":        true,
	"Telegram":     true,
	"Twitter":      true,
	"Webhook":      true,
}

// getNotifications retrieves all notification connections, skipping
// unrecognized implementations.
func (a *Adapter) getNotifications(ctx context.Context, c *httpclient.Client, rt *RefTable, ir *irv1.IR) (*irv1.NotificationsIR, map[string]int, error) {
	var resources []NotificationResource
	if err := c.Get(ctx, "/api/v3/notification", &resources); err != nil {
		return nil, nil, fmt.Errorf("failed to get notifications: %w", err)
	}

	notifications := make([]irv1.NotificationIR, 0, len(resources))
	ids := make(map[string]int, len(resources))
	for _, r := range resources {
		if !knownNotificationImpls[r.Implementation] {
			ir.Skipped = append(ir.Skipped, irv1.SkippedResource{
				Kind:           adapters.ResourceNotification,
				Name:           r.Name,
				Implementation: r.Implementation,
			})
			continue
		}
		notifications = append(notifications, a.notificationToIR(&r, rt))
		ids[r.Name] = r.ID
	}

	return &irv1.NotificationsIR{Definitions: notifications}, ids, nil
}

func (a *Adapter) notificationToIR(r *NotificationResource, rt *RefTable) irv1.NotificationIR {
	n := irv1.NotificationIR{
		Name:                  r.Name,
		Implementation:        r.Implementation,
		ConfigContract:        r.ConfigContract,
		OnGrab:                r.OnGrab,
		OnDownload:            r.OnDownload,
		OnUpgrade:             r.OnUpgrade,
		OnRename:              r.OnRename,
		OnMovieDelete:         r.OnMovieDelete,
		OnHealthIssue:         r.OnHealthIssue,
		IncludeHealthWarnings: r.IncludeHealthWarnings,
		OnApplicationUpdate:   r.OnApplicationUpdate,
		Tags:                  rt.UnresolveTags(r.Tags),
	}
	for _, f := range r.Fields {
		n.Fields = append(n.Fields, irv1.FieldIR{Name: f.Name, Value: f.Value})
	}
	return n
}

func (a *Adapter) irToNotification(n *irv1.NotificationIR, rt *RefTable) (NotificationResource, error) {
	tags, err := rt.ResolveTags(n.Tags, n.Name)
	if err != nil {
		return NotificationResource{}, err
	}
	r := NotificationResource{
		Name:                  n.Name,
		Implementation:        n.Implementation,
		ConfigContract:        n.ConfigContract,
		OnGrab:                n.OnGrab,
		OnDownload:            n.OnDownload,
		OnUpgrade:             n.OnUpgrade,
		OnRename:              n.OnRename,
		OnMovieDelete:         n.OnMovieDelete,
		OnHealthIssue:         n.OnHealthIssue,
		IncludeHealthWarnings: n.IncludeHealthWarnings,
		OnApplicationUpdate:   n.OnApplicationUpdate,
		Tags:                  tags,
	}
	for _, f := range n.Fields {
		r.Fields = append(r.Fields, Field{Name: f.Name, Value: f.Value})
	}
	return r, nil
}

// diffNotifications computes notification changes.
func (a *Adapter) diffNotifications(current, desired *irv1.IR, ids map[string]int) adapters.ChangeSet {
	var cur, des []irv1.NotificationIR
	deleteUnmanaged := false
	if current.Notifications != nil {
		cur = current.Notifications.Definitions
	}
	if desired.Notifications != nil {
		des = desired.Notifications.Definitions
		deleteUnmanaged = desired.Notifications.DeleteUnmanaged
	}

	return adapters.DiffCollection(cur, des, adapters.DiffOptions[irv1.NotificationIR]{
		Kind: adapters.ResourceNotification,
		Key:  func(n irv1.NotificationIR) string { return n.Name },
		ID: func(n irv1.NotificationIR) *int {
			if id, ok := ids[n.Name]; ok {
				return &id
			}
			return nil
		},
		Equal:           notificationsEqual,
		DeleteUnmanaged: deleteUnmanaged,
	})
}

func notificationsEqual(cur, des irv1.NotificationIR) bool {
	if cur.Name != des.Name || cur.Implementation != des.Implementation {
		return false
	}
	if cur.OnGrab != des.OnGrab || cur.OnDownload != des.OnDownload {
		return false
	}
	if cur.OnUpgrade != des.OnUpgrade || cur.OnRename != des.OnRename {
		return false
	}
	if cur.OnMovieDelete != des.OnMovieDelete {
		return false
	}
	if cur.OnHealthIssue != des.OnHealthIssue {
		return false
	}
	if cur.IncludeHealthWarnings != des.IncludeHealthWarnings {
		return false
	}
	if cur.OnApplicationUpdate != des.OnApplicationUpdate {
		return false
	}
	if !tagSetsEqual(cur.Tags, des.Tags) {
		return false
	}
	if irv1.HasSecretField(des.Fields) {
		return false
	}
	for _, f := range des.Fields {
		if !fieldValuesEqual(irv1.FieldValue(cur.Fields, f.Name), f.Value) {
			return false
		}
	}
	return true
}

// createNotification creates a notification connection.
func (a *Adapter) createNotification(ctx context.Context, c *httpclient.Client, n *irv1.NotificationIR, rt *RefTable) error {
	payload, err := a.irToNotification(n, rt)
	if err != nil {
		return err
	}
	var created NotificationResource
	if err := c.Post(ctx, "/api/v3/notification", payload, &created); err != nil {
		return fmt.Errorf("failed to create notification %q: %w", n.Name, err)
	}
	return nil
}

// updateNotification updates a notification connection in place.
func (a *Adapter) updateNotification(ctx context.Context, c *httpclient.Client, id int, n *irv1.NotificationIR, rt *RefTable) error {
	payload, err := a.irToNotification(n, rt)
	if err != nil {
		return err
	}
	payload.ID = id
	path := fmt.Sprintf("/api/v3/notification/%d", id)
	if err := c.Put(ctx, path, payload, nil); err != nil {
		return fmt.Errorf("failed to update notification %q: %w", n.Name, err)
	}
	return nil
}

// deleteNotification removes a notification connection by ID.
func (a *Adapter) deleteNotification(ctx context.Context, c *httpclient.Client, id int) error {
	return c.Delete(ctx, fmt.Sprintf("/api/v3/notification/%d", id))
}
