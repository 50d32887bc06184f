package radarr

import (
	"errors"
	"testing"

	"github.com/concordarr/concordarr-operator/internal/adapters"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

func TestCustomFormatToIR(t *testing.T) {
	a := &Adapter{}

	tests := []struct {
		name     string
		input    CustomFormatResource
		expected irv1.CustomFormatIR
	}{
		{
			name: "basic custom format",
			input: CustomFormatResource{
				ID:                              1,
				Name:                            "x265",
				IncludeCustomFormatWhenRenaming: false,
				Specifications: []CustomFormatSpecification{
					{
						Name:           "x265",
						Implementation: "ReleaseTitleSpecification",
						Negate:         false,
						Required:       true,
						Fields: []Field{
							{Name: "value", Value: "[xh]\\.?265|hevc"},
						},
					},
				},
			},
			expected: irv1.CustomFormatIR{
				Name:                "x265",
				IncludeWhenRenaming: false,
				Conditions: []irv1.ConditionIR{
					{
						Name:           "x265",
						Implementation: "ReleaseTitleSpecification",
						Negate:         false,
						Required:       true,
						Fields: []irv1.FieldIR{
							{Name: "value", Value: "[xh]\\.?265|hevc"},
						},
					},
				},
			},
		},
		{
			name: "custom format with multiple conditions",
			input: CustomFormatResource{
				ID:                              2,
				Name:                            "DV HDR10",
				IncludeCustomFormatWhenRenaming: true,
				Specifications: []CustomFormatSpecification{
					{
						Name:           "DV",
						Implementation: "ReleaseTitleSpecification",
						Required:       true,
						Fields: []Field{
							{Name: "value", Value: "\\b(dv|dovi)\\b"},
						},
					},
					{
						Name:           "HDR10",
						Implementation: "ReleaseTitleSpecification",
						Fields: []Field{
							{Name: "value", Value: "hdr10"},
						},
					},
				},
			},
			expected: irv1.CustomFormatIR{
				Name:                "DV HDR10",
				IncludeWhenRenaming: true,
				Conditions: []irv1.ConditionIR{
					{
						Name:           "DV",
						Implementation: "ReleaseTitleSpecification",
						Required:       true,
						Fields: []irv1.FieldIR{
							{Name: "value", Value: "\\b(dv|dovi)\\b"},
						},
					},
					{
						Name:           "HDR10",
						Implementation: "ReleaseTitleSpecification",
						Fields: []irv1.FieldIR{
							{Name: "value", Value: "hdr10"},
						},
					},
				},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := a.customFormatToIR(&tt.input)

			if result.Name != tt.expected.Name {
				t.Errorf("expected name %q, got %q", tt.expected.Name, result.Name)
			}
			if result.IncludeWhenRenaming != tt.expected.IncludeWhenRenaming {
				t.Errorf("expected includeWhenRenaming %v, got %v", tt.expected.IncludeWhenRenaming, result.IncludeWhenRenaming)
			}
			if len(result.Conditions) != len(tt.expected.Conditions) {
				t.Fatalf("expected %d conditions, got %d", len(tt.expected.Conditions), len(result.Conditions))
			}
			for i, cond := range result.Conditions {
				exp := tt.expected.Conditions[i]
				if cond.Name != exp.Name {
					t.Errorf("condition %d: expected name %q, got %q", i, exp.Name, cond.Name)
				}
				if cond.Implementation != exp.Implementation {
					t.Errorf("condition %d: expected implementation %q, got %q", i, exp.Implementation, cond.Implementation)
				}
				if cond.Negate != exp.Negate {
					t.Errorf("condition %d: expected negate %v, got %v", i, exp.Negate, cond.Negate)
				}
				if cond.Required != exp.Required {
					t.Errorf("condition %d: expected required %v, got %v", i, exp.Required, cond.Required)
				}
				if irv1.FieldValue(cond.Fields, "value") != irv1.FieldValue(exp.Fields, "value") {
					t.Errorf("condition %d: expected value %v, got %v", i,
						irv1.FieldValue(exp.Fields, "value"), irv1.FieldValue(cond.Fields, "value"))
				}
			}
		})
	}
}

func TestIRToCustomFormatPreservesUnmanagedConditions(t *testing.T) {
	a := &Adapter{}

	declared := irv1.CustomFormatIR{
		Name: "HEVC",
		Conditions: []irv1.ConditionIR{
			{Name: "HEVC", Implementation: "ReleaseTitleSpecification", Required: true,
				Fields: []irv1.FieldIR{{Name: "value", Value: "hevc|x265"}}},
		},
	}
	remote := irv1.CustomFormatIR{
		Name: "HEVC",
		Conditions: []irv1.ConditionIR{
			{Name: "HEVC", Implementation: "ReleaseTitleSpecification",
				Fields: []irv1.FieldIR{{Name: "value", Value: "old"}}},
			{Name: "HandAdded", Implementation: "ReleaseTitleSpecification",
				Fields: []irv1.FieldIR{{Name: "value", Value: "extra"}}},
		},
	}

	t.Run("remote-only conditions carried through by default", func(t *testing.T) {
		r := a.irToCustomFormat(&declared, &remote)
		if len(r.Specifications) != 2 {
			t.Fatalf("expected 2 specifications, got %d", len(r.Specifications))
		}
		if r.Specifications[0].Name != "HEVC" {
			t.Errorf("declared condition must come first, got %q", r.Specifications[0].Name)
		}
		if r.Specifications[1].Name != "HandAdded" {
			t.Errorf("expected remote-only condition preserved, got %q", r.Specifications[1].Name)
		}
		// The declared condition wins over the remote version of itself.
		if got := fieldValue(r.Specifications[0].Fields, "value"); got != "hevc|x265" {
			t.Errorf("expected declared field value, got %v", got)
		}
	})

	t.Run("remote-only conditions dropped when pruning is enabled", func(t *testing.T) {
		pruning := declared
		pruning.DeleteUnmanagedConditions = true
		r := a.irToCustomFormat(&pruning, &remote)
		if len(r.Specifications) != 1 {
			t.Fatalf("expected 1 specification, got %d", len(r.Specifications))
		}
	})
}

func TestCustomFormatsEqual(t *testing.T) {
	tests := []struct {
		name     string
		current  irv1.CustomFormatIR
		desired  irv1.CustomFormatIR
		expected bool
	}{
		{
			name: "equal formats",
			current: irv1.CustomFormatIR{
				Name: "Test",
				Conditions: []irv1.ConditionIR{
					{Name: "c", Implementation: "ReleaseTitleSpecification",
						Fields: []irv1.FieldIR{{Name: "value", Value: "test"}}},
				},
			},
			desired: irv1.CustomFormatIR{
				Name: "Test",
				Conditions: []irv1.ConditionIR{
					{Name: "c", Implementation: "ReleaseTitleSpecification",
						Fields: []irv1.FieldIR{{Name: "value", Value: "test"}}},
				},
			},
			expected: true,
		},
		{
			name:     "different includeWhenRenaming",
			current:  irv1.CustomFormatIR{Name: "Test", IncludeWhenRenaming: false},
			desired:  irv1.CustomFormatIR{Name: "Test", IncludeWhenRenaming: true},
			expected: false,
		},
		{
			name: "different field value",
			current: irv1.CustomFormatIR{
				Name: "Test",
				Conditions: []irv1.ConditionIR{
					{Name: "c", Implementation: "ReleaseTitleSpecification",
						Fields: []irv1.FieldIR{{Name: "value", Value: "one"}}},
				},
			},
			desired: irv1.CustomFormatIR{
				Name: "Test",
				Conditions: []irv1.ConditionIR{
					{Name: "c", Implementation: "ReleaseTitleSpecification",
						Fields: []irv1.FieldIR{{Name: "value", Value: "two"}}},
				},
			},
			expected: false,
		},
		{
			name: "remote numeric field decoded as float64",
			current: irv1.CustomFormatIR{
				Name: "Size",
				Conditions: []irv1.ConditionIR{
					{Name: "min", Implementation: "SizeSpecification",
						Fields: []irv1.FieldIR{{Name: "min", Value: float64(5)}}},
				},
			},
			desired: irv1.CustomFormatIR{
				Name: "Size",
				Conditions: []irv1.ConditionIR{
					{Name: "min", Implementation: "SizeSpecification",
						Fields: []irv1.FieldIR{{Name: "min", Value: 5}}},
				},
			},
			expected: true,
		},
		{
			name: "secret field forces update",
			current: irv1.CustomFormatIR{
				Name: "Test",
				Conditions: []irv1.ConditionIR{
					{Name: "c", Implementation: "ReleaseTitleSpecification",
						Fields: []irv1.FieldIR{{Name: "value", Value: "masked"}}},
				},
			},
			desired: irv1.CustomFormatIR{
				Name: "Test",
				Conditions: []irv1.ConditionIR{
					{Name: "c", Implementation: "ReleaseTitleSpecification",
						Fields: []irv1.FieldIR{{Name: "value", Value: "masked", Secret: true}}},
				},
			},
			expected: false,
		},
		{
			name: "remote-only conditions tolerated without pruning",
			current: irv1.CustomFormatIR{
				Name: "Test",
				Conditions: []irv1.ConditionIR{
					{Name: "declared", Implementation: "ReleaseTitleSpecification"},
					{Name: "extra", Implementation: "ReleaseTitleSpecification"},
				},
			},
			desired: irv1.CustomFormatIR{
				Name: "Test",
				Conditions: []irv1.ConditionIR{
					{Name: "declared", Implementation: "ReleaseTitleSpecification"},
				},
			},
			expected: true,
		},
		{
			name: "remote-only conditions rejected with pruning",
			current: irv1.CustomFormatIR{
				Name: "Test",
				Conditions: []irv1.ConditionIR{
					{Name: "declared", Implementation: "ReleaseTitleSpecification"},
					{Name: "extra", Implementation: "ReleaseTitleSpecification"},
				},
			},
			desired: irv1.CustomFormatIR{
				Name:                      "Test",
				DeleteUnmanagedConditions: true,
				Conditions: []irv1.ConditionIR{
					{Name: "declared", Implementation: "ReleaseTitleSpecification"},
				},
			},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := customFormatsEqual(tt.current, tt.desired)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestDiffCustomFormatsUnsupportedCondition(t *testing.T) {
	a := &Adapter{}

	caps := &adapters.Capabilities{
		ConditionTypes: []string{"ReleaseTitleSpecification", "SizeSpecification"},
	}
	current := &irv1.IR{}
	desired := &irv1.IR{
		CustomFormats: &irv1.CustomFormatsIR{
			Definitions: []irv1.CustomFormatIR{
				{
					Name: "Broken",
					Conditions: []irv1.ConditionIR{
						{Name: "lang", Implementation: "LanguageSpecification"},
					},
				},
			},
		},
	}

	_, err := a.diffCustomFormats(current, desired, caps, nil)
	if err == nil {
		t.Fatal("expected error for unsupported condition implementation")
	}
	var unsupported *adapters.UnsupportedConditionError
	if !errors.As(err, &unsupported) {
		t.Fatalf("expected UnsupportedConditionError, got %T", err)
	}
	if unsupported.Format != "Broken" || unsupported.Implementation != "LanguageSpecification" {
		t.Errorf("unexpected error detail: %+v", unsupported)
	}

	// The same declared format passes when the capability list is empty,
	// since an unavailable schema endpoint means unknown, not unsupported.
	if _, err := a.diffCustomFormats(current, desired, &adapters.Capabilities{}, nil); err != nil {
		t.Errorf("unexpected error with unknown capabilities: %v", err)
	}
}
