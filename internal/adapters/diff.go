// Package adapters provides shared diff logic for *arr service adapters.
package adapters

import (
	"sort"
)

// DiffOptions parameterizes DiffCollection for one resource kind.
type DiffOptions[T any] struct {
	// Kind is the resource type recorded on emitted changes.
	Kind string

	// Key returns the identity key used to pair declared and remote
	// resources: name for most kinds, path for root folders, quality
	// title for quality definitions.
	Key func(T) string

	// ID returns the remote ID for a resource, or nil when unknown.
	// Called only on remote-side resources.
	ID func(T) *int

	// Equal reports whether the remote resource already matches the
	// declared one. Only declared fields participate; remote-only fields
	// never make two resources unequal.
	Equal func(current, desired T) bool

	// DeleteUnmanaged enables deletion of remote resources absent from
	// the declared set. Defaults to false: unmatched remote resources
	// are left untouched.
	DeleteUnmanaged bool

	// CreateOnly suppresses updates and deletes entirely. Used for
	// collections like tags, where a matched pair is always in sync and
	// removal is never safe.
	CreateOnly bool

	// UpdateOnly suppresses creates and deletes. Used for fixed
	// collections like quality definitions, where the remote set is
	// authoritative and only field values converge.
	UpdateOnly bool
}

// DiffCollection pairs declared resources with remote resources by identity
// key and emits the changes needed to converge the collection:
//
//   - declared with no remote match: create (in declared order)
//   - matched but unequal: update, carrying the remote ID
//   - matched and equal: unchanged (no operation)
//   - remote with no declared match: delete only when DeleteUnmanaged,
//     otherwise left alone
//
// Output order is deterministic: creates and updates follow declared order,
// deletes follow remote key order.
func DiffCollection[T any](current, desired []T, opts DiffOptions[T]) ChangeSet {
	var changes ChangeSet

	currentByKey := make(map[string]T, len(current))
	for _, c := range current {
		currentByKey[opts.Key(c)] = c
	}

	desiredKeys := make(map[string]bool, len(desired))
	for _, d := range desired {
		key := opts.Key(d)
		desiredKeys[key] = true

		cur, exists := currentByKey[key]
		if !exists {
			if opts.UpdateOnly {
				continue
			}
			changes.Creates = append(changes.Creates, Change{
				ResourceType: opts.Kind,
				Name:         key,
				Payload:      d,
			})
			continue
		}

		if opts.CreateOnly || opts.Equal(cur, d) {
			changes.Unchanged = append(changes.Unchanged, Change{
				ResourceType: opts.Kind,
				Name:         key,
				ID:           opts.ID(cur),
			})
			continue
		}

		changes.Updates = append(changes.Updates, Change{
			ResourceType: opts.Kind,
			Name:         key,
			ID:           opts.ID(cur),
			Payload:      d,
		})
	}

	if opts.DeleteUnmanaged && !opts.CreateOnly && !opts.UpdateOnly {
		unmanaged := make([]string, 0)
		for key := range currentByKey {
			if !desiredKeys[key] {
				unmanaged = append(unmanaged, key)
			}
		}
		sort.Strings(unmanaged)
		for _, key := range unmanaged {
			cur := currentByKey[key]
			changes.Deletes = append(changes.Deletes, Change{
				ResourceType: opts.Kind,
				Name:         key,
				ID:           opts.ID(cur),
			})
		}
	}

	return changes
}

// DiffReplaceAll emits a full-list replacement for positional collections
// (delay profiles): when the declared list differs from the remote list at
// any position, every remote entry is deleted and every declared entry is
// recreated. Equal lists produce no changes.
func DiffReplaceAll[T any](current, desired []T, kind string, label func(int, T) string, id func(T) *int, equal func(cur, des T) bool) ChangeSet {
	var changes ChangeSet

	if len(current) == len(desired) {
		same := true
		for i := range desired {
			if !equal(current[i], desired[i]) {
				same = false
				break
			}
		}
		if same {
			for i, c := range current {
				changes.Unchanged = append(changes.Unchanged, Change{
					ResourceType: kind,
					Name:         label(i, c),
					ID:           id(c),
				})
			}
			return changes
		}
	}

	for i, c := range current {
		changes.Deletes = append(changes.Deletes, Change{
			ResourceType: kind,
			Name:         label(i, c),
			ID:           id(c),
		})
	}
	for i, d := range desired {
		changes.Creates = append(changes.Creates, Change{
			ResourceType: kind,
			Name:         label(i, d),
			Payload:      d,
		})
	}

	return changes
}
