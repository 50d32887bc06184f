package v1

// CustomFormatsIR declares custom format definitions, keyed by name.
type CustomFormatsIR struct {
	DeleteUnmanaged bool `json:"deleteUnmanaged,omitempty" yaml:"deleteUnmanaged,omitempty"`

	Definitions []CustomFormatIR `json:"definitions,omitempty" yaml:"definitions,omitempty"`
}

// CustomFormatIR is a single custom format. A format may be seeded from a
// catalog entry (TrashID); conditions declared locally always take
// precedence over catalog conditions of the same name.
type CustomFormatIR struct {
	Name string `json:"name" yaml:"name"`

	// TrashID of the catalog entry this format was merged from, if any.
	TrashID string `json:"trashID,omitempty" yaml:"trashID,omitempty"`

	// DefaultScore applies when a quality profile references this format
	// without an explicit score. Catalog entries supply their own default
	// when the declaration is silent.
	DefaultScore int `json:"defaultScore,omitempty" yaml:"defaultScore,omitempty"`

	IncludeWhenRenaming bool `json:"includeWhenRenaming,omitempty" yaml:"includeWhenRenaming,omitempty"`

	// DeleteUnmanagedConditions removes remote conditions not declared (or
	// catalog-provided) on this format. Catalog-seeded formats force this
	// on so stale guide conditions are cleaned up.
	DeleteUnmanagedConditions bool `json:"deleteUnmanagedConditions,omitempty" yaml:"deleteUnmanagedConditions,omitempty"`

	Conditions []ConditionIR `json:"conditions,omitempty" yaml:"conditions,omitempty"`
}

// ConditionIR is one matching condition of a custom format. Implementation
// is the remote discriminator (e.g. "ReleaseTitleSpecification").
type ConditionIR struct {
	Name           string    `json:"name" yaml:"name"`
	Implementation string    `json:"implementation" yaml:"implementation"`
	Negate         bool      `json:"negate,omitempty" yaml:"negate,omitempty"`
	Required       bool      `json:"required,omitempty" yaml:"required,omitempty"`
	Fields         []FieldIR `json:"fields,omitempty" yaml:"fields,omitempty"`
}

// Condition returns the named condition, or nil.
func (cf *CustomFormatIR) Condition(name string) *ConditionIR {
	for i := range cf.Conditions {
		if cf.Conditions[i].Name == name {
			return &cf.Conditions[i]
		}
	}
	return nil
}
