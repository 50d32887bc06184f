package adapters

import "fmt"

// UnsupportedConditionError reports a declared custom format condition whose
// implementation the target service does not advertise. This is a declared-
// state error and fails the diff, unlike unrecognized remote conditions,
// which are skipped.
type UnsupportedConditionError struct {
	Format         string
	Condition      string
	Implementation string
}

func (e *UnsupportedConditionError) Error() string {
	return fmt.Sprintf("custom format %q: condition %q uses implementation %q not supported by the service",
		e.Format, e.Condition, e.Implementation)
}

// ReferenceNotFoundError reports a symbolic reference (custom format name,
// download client name) that resolves to nothing on the remote at encode
// time. The referencing collection aborts; sibling collections proceed.
type ReferenceNotFoundError struct {
	Kind string // referenced resource kind
	Name string // symbolic name that failed to resolve
	From string // resource holding the reference
}

func (e *ReferenceNotFoundError) Error() string {
	return fmt.Sprintf("%s %q referenced by %q does not exist on the remote", e.Kind, e.Name, e.From)
}
