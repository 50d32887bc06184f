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
	"strings"
	"testing"

	"github.com/go-logr/logr/funcr"

	arrv1alpha1 "github.com/concordarr/concordarr-operator/api/v1alpha1"
	"github.com/concordarr/concordarr-operator/internal/adapters"
)

func TestBuildCleanupIR(t *testing.T) {
	spec := &arrv1alpha1.RadarrConfigSpec{
		RootFolders: &arrv1alpha1.RootFoldersSpec{
			Paths: []string{"/movies"},
		},
		Indexers:    &arrv1alpha1.IndexersSpec{},
		ImportLists: &arrv1alpha1.ImportListsSpec{},
	}

	ir := buildCleanupIR(spec)

	if ir.App != adapters.AppRadarr {
		t.Errorf("App = %q, want %q", ir.App, adapters.AppRadarr)
	}
	if ir.RootFolders == nil || !ir.RootFolders.DeleteUnmanaged {
		t.Error("expected RootFolders cleanup with DeleteUnmanaged set")
	}
	if ir.Indexers == nil || !ir.Indexers.DeleteUnmanaged {
		t.Error("expected Indexers cleanup with DeleteUnmanaged set")
	}
	if ir.ImportLists == nil || !ir.ImportLists.DeleteUnmanaged {
		t.Error("expected ImportLists cleanup with DeleteUnmanaged set")
	}

	// Undeclared collections stay untouched on deletion.
	if ir.CustomFormats != nil {
		t.Error("CustomFormats were not declared, cleanup should not touch them")
	}
	if ir.QualityProfiles != nil {
		t.Error("QualityProfiles were not declared, cleanup should not touch them")
	}
	if ir.DelayProfiles != nil {
		t.Error("DelayProfiles were not declared, cleanup should not touch them")
	}
	if ir.DownloadClients != nil {
		t.Error("DownloadClients were not declared, cleanup should not touch them")
	}
	if ir.Notifications != nil {
		t.Error("Notifications were not declared, cleanup should not touch them")
	}

	// Tags are create-only and quality definitions update-only, so neither
	// participates in cleanup even when declared.
	if ir.Tags != nil {
		t.Error("Tags should never be part of the cleanup diff")
	}
	if ir.QualityDefinitions != nil {
		t.Error("QualityDefinitions should never be part of the cleanup diff")
	}
}

func TestBuildCleanupIREmptySpec(t *testing.T) {
	ir := buildCleanupIR(&arrv1alpha1.RadarrConfigSpec{})
	if ir.RootFolders != nil || ir.CustomFormats != nil || ir.QualityProfiles != nil ||
		ir.DelayProfiles != nil || ir.DownloadClients != nil || ir.Indexers != nil ||
		ir.Notifications != nil || ir.ImportLists != nil {
		t.Error("empty spec should produce an empty cleanup IR")
	}
}

func TestLogPlan(t *testing.T) {
	id := 7
	plan := &adapters.Plan{
		Collections: []adapters.CollectionPlan{
			{
				Kind: adapters.ResourceIndexer,
				Changes: adapters.ChangeSet{
					Creates:   []adapters.Change{{ResourceType: adapters.ResourceIndexer, Name: "nyaa"}},
					Updates:   []adapters.Change{{ResourceType: adapters.ResourceIndexer, Name: "prowlarr", ID: &id}},
					Unchanged: []adapters.Change{{ResourceType: adapters.ResourceIndexer, Name: "kept"}},
				},
			},
			{
				Kind: adapters.ResourceTag,
				Changes: adapters.ChangeSet{
					Deletes: []adapters.Change{{ResourceType: adapters.ResourceTag, Name: "stale", ID: &id}},
				},
			},
		},
	}

	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	logPlan(log, plan)

	if len(lines) != 4 {
		t.Fatalf("logged %d operations, want 4: %v", len(lines), lines)
	}
	wantEach := [][]string{
		{`"kind"="Indexer"`, `"name"="nyaa"`, `"action"="create"`},
		{`"kind"="Indexer"`, `"name"="prowlarr"`, `"action"="update"`},
		{`"kind"="Indexer"`, `"name"="kept"`, `"action"="none"`},
		{`"kind"="Tag"`, `"name"="stale"`, `"action"="delete"`},
	}
	for i, wants := range wantEach {
		for _, want := range wants {
			if !strings.Contains(lines[i], want) {
				t.Errorf("line %d = %q, missing %q", i, lines[i], want)
			}
		}
	}
}

func TestLogPlanUnchangedIsVerbose(t *testing.T) {
	plan := &adapters.Plan{
		Collections: []adapters.CollectionPlan{
			{
				Kind: adapters.ResourceTag,
				Changes: adapters.ChangeSet{
					Creates:   []adapters.Change{{ResourceType: adapters.ResourceTag, Name: "anime"}},
					Unchanged: []adapters.Change{{ResourceType: adapters.ResourceTag, Name: "kept"}},
				},
			},
		},
	}

	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{})

	logPlan(log, plan)

	if len(lines) != 1 {
		t.Fatalf("logged %d operations at default verbosity, want 1: %v", len(lines), lines)
	}
	if !strings.Contains(lines[0], `"action"="create"`) {
		t.Errorf("line = %q, want the create operation", lines[0])
	}
}
