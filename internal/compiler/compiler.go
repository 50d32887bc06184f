// Package compiler transforms CRD intent into Intermediate Representation (IR).
// It resolves catalog references, merges defaults and collects referenced tags.
package compiler

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// Compiler transforms CRD intent into IR
type Compiler struct{}

// New creates a new Compiler
func New() *Compiler {
	return &Compiler{}
}

// Compile transforms CRD intent into IR. Catalog references are resolved
// against the input's catalog snapshot; declared values always override
// what the catalog provides.
func (c *Compiler) Compile(ctx context.Context, input CompileInput) (*irv1.IR, error) {
	ir := &irv1.IR{
		Version:     irv1.IRVersion,
		GeneratedAt: time.Now(),
		App:         input.App,
	}

	// 1. Set connection
	ir.Connection = &irv1.ConnectionIR{
		URL:                input.URL,
		APIKey:             input.APIKey,
		InsecureSkipVerify: input.InsecureSkipVerify,
	}

	// 2. Compile custom formats first: their default scores feed quality
	// profile compilation.
	formats, err := c.compileCustomFormats(input.CustomFormats, input.Catalog)
	if err != nil {
		return nil, err
	}
	ir.CustomFormats = formats

	// 3. Compile quality definitions, merging the catalog preset when one
	// is referenced.
	ir.QualityDefinitions, err = c.compileQualityDefinitions(input.QualityDefinitions, input.Catalog)
	if err != nil {
		return nil, err
	}

	// 4. Compile root folders
	ir.RootFolders = c.compileRootFolders(input.RootFolders)

	// 5. Compile quality profiles, expanding default format scores
	ir.QualityProfiles, err = c.compileQualityProfiles(input.QualityProfiles, formats)
	if err != nil {
		return nil, err
	}

	// 6. Compile delay profiles
	ir.DelayProfiles = c.compileDelayProfiles(input.DelayProfiles)

	// 7. Compile download clients
	ir.DownloadClients, err = c.compileDownloadClients(input.DownloadClients)
	if err != nil {
		return nil, err
	}

	// 8. Compile indexers
	ir.Indexers, err = c.compileIndexers(input.Indexers, input.DownloadClients)
	if err != nil {
		return nil, err
	}

	// 9. Compile notifications
	ir.Notifications = c.compileNotifications(input.Notifications)

	// 10. Compile import lists
	ir.ImportLists = c.compileImportLists(input.ImportLists)

	// 11. Collect tags: explicit labels plus every label referenced by
	// another collection.
	ir.Tags = c.collectTags(input)

	// 12. Generate source hash for drift detection
	ir.SourceHash = c.hashInput(input)

	return ir, nil
}

// collectTags gathers explicit tag labels and labels referenced by delay
// profiles, download clients, indexers, notifications and import lists.
// The result is deduplicated and sorted.
func (c *Compiler) collectTags(input CompileInput) *irv1.TagsIR {
	seen := make(map[string]bool)
	for _, label := range input.Tags {
		seen[label] = true
	}
	if input.DelayProfiles != nil {
		for _, dp := range input.DelayProfiles.Definitions {
			for _, label := range dp.Tags {
				seen[label] = true
			}
		}
	}
	if input.DownloadClients != nil {
		for _, dc := range input.DownloadClients.Definitions {
			for _, label := range dc.Tags {
				seen[label] = true
			}
		}
	}
	if input.Indexers != nil {
		for _, ix := range input.Indexers.Definitions {
			for _, label := range ix.Tags {
				seen[label] = true
			}
		}
	}
	if input.Notifications != nil {
		for _, n := range input.Notifications.Definitions {
			for _, label := range n.Tags {
				seen[label] = true
			}
		}
	}
	if input.ImportLists != nil {
		for _, l := range input.ImportLists.Definitions {
			for _, label := range l.Tags {
				seen[label] = true
			}
		}
	}

	if len(seen) == 0 {
		return nil
	}
	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return &irv1.TagsIR{Labels: labels}
}

// fieldsToIR converts input fields to IR fields, preserving order.
func fieldsToIR(fields []FieldInput) []irv1.FieldIR {
	if len(fields) == 0 {
		return nil
	}
	out := make([]irv1.FieldIR, 0, len(fields))
	for _, f := range fields {
		out = append(out, irv1.FieldIR{Name: f.Name, Value: f.Value, Secret: f.Secret})
	}
	return out
}

// hashInput generates a deterministic hash of the compilation input.
// Secret field values are replaced by a marker so rotated credentials do
// not register as config drift.
func (c *Compiler) hashInput(input CompileInput) string {
	hashable := struct {
		App                string
		ConfigName         string
		URL                string
		Tags               []string
		QualityDefinitions *QualityDefinitionsInput
		RootFolders        *RootFoldersInput
		CustomFormats      *CustomFormatsInput
		QualityProfiles    *QualityProfilesInput
		DelayProfiles      *DelayProfilesInput
		DownloadClients    *DownloadClientsInput
		Indexers           *IndexersInput
		Notifications      *NotificationsInput
		ImportLists        *ImportListsInput
	}{
		App:                input.App,
		ConfigName:         input.ConfigName,
		URL:                input.URL,
		Tags:               input.Tags,
		QualityDefinitions: input.QualityDefinitions,
		RootFolders:        input.RootFolders,
		CustomFormats:      redactFormats(input.CustomFormats),
		QualityProfiles:    input.QualityProfiles,
		DelayProfiles:      input.DelayProfiles,
		DownloadClients:    redactDownloadClients(input.DownloadClients),
		Indexers:           redactIndexers(input.Indexers),
		Notifications:      redactNotifications(input.Notifications),
		ImportLists:        redactImportLists(input.ImportLists),
	}

	data, err := json.Marshal(hashable)
	if err != nil {
		return ""
	}

	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash[:8])
}

func redactFields(fields []FieldInput) []FieldInput {
	out := make([]FieldInput, len(fields))
	for i, f := range fields {
		out[i] = f
		if f.Secret {
			out[i].Value = "<secret>"
		}
	}
	return out
}

func redactFormats(in *CustomFormatsInput) *CustomFormatsInput {
	if in == nil {
		return nil
	}
	out := *in
	out.Definitions = make([]CustomFormatInput, len(in.Definitions))
	for i, cf := range in.Definitions {
		out.Definitions[i] = cf
		conds := make([]ConditionInput, len(cf.Conditions))
		for j, cond := range cf.Conditions {
			conds[j] = cond
			conds[j].Fields = redactFields(cond.Fields)
		}
		out.Definitions[i].Conditions = conds
	}
	return &out
}

func redactDownloadClients(in *DownloadClientsInput) *DownloadClientsInput {
	if in == nil {
		return nil
	}
	out := *in
	out.Definitions = make([]DownloadClientInput, len(in.Definitions))
	for i, dc := range in.Definitions {
		out.Definitions[i] = dc
		out.Definitions[i].Fields = redactFields(dc.Fields)
	}
	return &out
}

func redactIndexers(in *IndexersInput) *IndexersInput {
	if in == nil {
		return nil
	}
	out := *in
	out.Definitions = make([]IndexerInput, len(in.Definitions))
	for i, ix := range in.Definitions {
		out.Definitions[i] = ix
		out.Definitions[i].Fields = redactFields(ix.Fields)
	}
	return &out
}

func redactNotifications(in *NotificationsInput) *NotificationsInput {
	if in == nil {
		return nil
	}
	out := *in
	out.Definitions = make([]NotificationInput, len(in.Definitions))
	for i, n := range in.Definitions {
		out.Definitions[i] = n
		out.Definitions[i].Fields = redactFields(n.Fields)
	}
	return &out
}

func redactImportLists(in *ImportListsInput) *ImportListsInput {
	if in == nil {
		return nil
	}
	out := *in
	out.Definitions = make([]ImportListInput, len(in.Definitions))
	for i, l := range in.Definitions {
		out.Definitions[i] = l
		out.Definitions[i].Fields = redactFields(l.Fields)
	}
	return &out
}
