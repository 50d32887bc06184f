package compiler

import (
	"fmt"
	"sort"

	"github.com/concordarr/concordarr-operator/internal/catalog"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// compileCustomFormats compiles custom format definitions, seeding
// catalog-referenced formats from their catalog entry.
func (c *Compiler) compileCustomFormats(in *CustomFormatsInput, cat *catalog.Catalog) (*irv1.CustomFormatsIR, error) {
	if in == nil {
		return nil, nil
	}

	defs := make([]irv1.CustomFormatIR, 0, len(in.Definitions))
	seen := make(map[string]bool, len(in.Definitions))
	for _, cf := range in.Definitions {
		compiled, err := c.compileCustomFormat(cf, cat)
		if err != nil {
			return nil, err
		}
		if seen[compiled.Name] {
			return nil, fmt.Errorf("custom format %q declared twice", compiled.Name)
		}
		seen[compiled.Name] = true
		defs = append(defs, *compiled)
	}

	return &irv1.CustomFormatsIR{
		DeleteUnmanaged: in.DeleteUnmanaged,
		Definitions:     defs,
	}, nil
}

// compileCustomFormat compiles one custom format. With a trashId the
// catalog entry provides the baseline (name, conditions, renaming flag,
// default score) and every declared value overrides it. Catalog-seeded
// formats always clean up conditions the catalog no longer lists.
func (c *Compiler) compileCustomFormat(cf CustomFormatInput, cat *catalog.Catalog) (*irv1.CustomFormatIR, error) {
	out := &irv1.CustomFormatIR{Name: cf.Name}

	if cf.TrashID != "" {
		if cat == nil {
			return nil, fmt.Errorf("custom format %q references trash_id %s but no catalog is configured", cf.Name, cf.TrashID)
		}
		tmpl, err := cat.CustomFormat(cf.TrashID)
		if err != nil {
			return nil, err
		}

		out.TrashID = cf.TrashID
		if out.Name == "" {
			out.Name = tmpl.Name
		}
		out.IncludeWhenRenaming = tmpl.IncludeCustomFormatWhenRenaming
		out.DefaultScore = tmpl.DefaultScore()
		out.DeleteUnmanagedConditions = true
		out.Conditions = mergeConditions(tmpl.Specifications, cf.Conditions)
	} else {
		if cf.Name == "" {
			return nil, fmt.Errorf("custom format without trash_id must declare a name")
		}
		for _, cond := range cf.Conditions {
			out.Conditions = append(out.Conditions, conditionToIR(cond))
		}
		if cf.DeleteUnmanagedConditions != nil {
			out.DeleteUnmanagedConditions = *cf.DeleteUnmanagedConditions
		}
	}

	if cf.Score != nil {
		out.DefaultScore = *cf.Score
	}
	if cf.IncludeWhenRenaming != nil {
		out.IncludeWhenRenaming = *cf.IncludeWhenRenaming
	}

	return out, nil
}

// mergeConditions overlays declared conditions onto the catalog's. A
// declared condition with the same name replaces the catalog one in
// place; the rest are appended in declared order.
func mergeConditions(tmpl []catalog.TemplateCondition, declared []ConditionInput) []irv1.ConditionIR {
	declaredByName := make(map[string]ConditionInput, len(declared))
	for _, cond := range declared {
		declaredByName[cond.Name] = cond
	}

	out := make([]irv1.ConditionIR, 0, len(tmpl)+len(declared))
	fromTemplate := make(map[string]bool, len(tmpl))
	for _, tc := range tmpl {
		fromTemplate[tc.Name] = true
		if override, ok := declaredByName[tc.Name]; ok {
			out = append(out, conditionToIR(override))
			continue
		}
		out = append(out, templateConditionToIR(tc))
	}
	for _, cond := range declared {
		if !fromTemplate[cond.Name] {
			out = append(out, conditionToIR(cond))
		}
	}
	return out
}

func conditionToIR(cond ConditionInput) irv1.ConditionIR {
	return irv1.ConditionIR{
		Name:           cond.Name,
		Implementation: cond.Implementation,
		Negate:         cond.Negate,
		Required:       cond.Required,
		Fields:         fieldsToIR(cond.Fields),
	}
}

// templateConditionToIR converts a catalog condition. The catalog stores
// fields as a map, so they are emitted in name order for determinism.
func templateConditionToIR(tc catalog.TemplateCondition) irv1.ConditionIR {
	names := make([]string, 0, len(tc.Fields))
	for name := range tc.Fields {
		names = append(names, name)
	}
	sort.Strings(names)

	fields := make([]irv1.FieldIR, 0, len(names))
	for _, name := range names {
		fields = append(fields, irv1.FieldIR{Name: name, Value: tc.Fields[name]})
	}

	return irv1.ConditionIR{
		Name:           tc.Name,
		Implementation: tc.Implementation,
		Negate:         tc.Negate,
		Required:       tc.Required,
		Fields:         fields,
	}
}

// compileQualityDefinitions compiles per-quality size limits, merging a
// catalog preset when one is referenced. Declared definitions override
// the preset per quality and per field.
func (c *Compiler) compileQualityDefinitions(in *QualityDefinitionsInput, cat *catalog.Catalog) (*irv1.QualityDefinitionsIR, error) {
	if in == nil {
		return nil, nil
	}

	out := &irv1.QualityDefinitionsIR{TrashID: in.TrashID}

	declared := make(map[string]QualityDefinitionInput, len(in.Definitions))
	for _, qd := range in.Definitions {
		declared[qd.Quality] = qd
	}

	if in.TrashID != "" {
		if cat == nil {
			return nil, fmt.Errorf("quality definitions reference trash_id %s but no catalog is configured", in.TrashID)
		}
		tmpl, err := cat.QualitySize(in.TrashID)
		if err != nil {
			return nil, err
		}

		fromPreset := make(map[string]bool, len(tmpl.Qualities))
		for _, q := range tmpl.Qualities {
			fromPreset[q.Quality] = true
			def := irv1.QualityDefinitionIR{
				Quality:       q.Quality,
				MinSize:       q.Min,
				MaxSize:       q.Max,
				PreferredSize: q.Preferred,
			}
			if override, ok := declared[q.Quality]; ok {
				applyQualityOverride(&def, override)
			}
			out.Definitions = append(out.Definitions, def)
		}
		for _, qd := range in.Definitions {
			if !fromPreset[qd.Quality] {
				out.Definitions = append(out.Definitions, declaredQualityDefinition(qd))
			}
		}
		return out, nil
	}

	for _, qd := range in.Definitions {
		out.Definitions = append(out.Definitions, declaredQualityDefinition(qd))
	}
	return out, nil
}

func declaredQualityDefinition(qd QualityDefinitionInput) irv1.QualityDefinitionIR {
	def := irv1.QualityDefinitionIR{
		Quality:       qd.Quality,
		Title:         qd.Title,
		MaxSize:       qd.MaxSize,
		PreferredSize: qd.PreferredSize,
	}
	if qd.MinSize != nil {
		def.MinSize = *qd.MinSize
	}
	return def
}

func applyQualityOverride(def *irv1.QualityDefinitionIR, qd QualityDefinitionInput) {
	if qd.Title != "" {
		def.Title = qd.Title
	}
	if qd.MinSize != nil {
		def.MinSize = *qd.MinSize
	}
	if qd.MaxSize != nil {
		def.MaxSize = qd.MaxSize
	}
	if qd.PreferredSize != nil {
		def.PreferredSize = qd.PreferredSize
	}
}
