//go:build e2e
// +build e2e

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

package e2e

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"

	"github.com/concordarr/concordarr-operator/internal/adapters"
	"github.com/concordarr/concordarr-operator/internal/adapters/radarr"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
	"github.com/concordarr/concordarr-operator/test/e2e/containers"
)

// These tests run the real Radarr adapter against a live Radarr container.
// They cover the full reconciliation loop: connect, discover, read current
// state, diff a declared configuration, apply it, and converge. They require
// Docker to be running.
var _ = Describe("Radarr reconciliation", Ordered, Label("integration"), func() {
	var (
		ctx       context.Context
		cancel    context.CancelFunc
		container *containers.ArrContainer
		adapter   *radarr.Adapter
		conn      *irv1.ConnectionIR
		caps      *adapters.Capabilities
	)

	BeforeAll(func() {
		ctx, cancel = context.WithTimeout(context.Background(), 10*time.Minute)

		var err error
		container, err = containers.StartRadarr(ctx, containers.ArrContainerOptions{
			ImageTag:       "latest",
			StartupTimeout: 3 * time.Minute,
		})
		Expect(err).NotTo(HaveOccurred(), "failed to start Radarr container")
		Expect(container.APIKey).NotTo(BeEmpty())

		adapter = &radarr.Adapter{}
		conn = &irv1.ConnectionIR{
			URL:    container.URL(),
			APIKey: container.APIKey,
		}
	})

	AfterAll(func() {
		if container != nil {
			_ = container.Terminate(context.Background())
		}
		cancel()
	})

	It("connects and reports the service version", func() {
		info, err := adapter.Connect(ctx, conn)
		Expect(err).NotTo(HaveOccurred())
		Expect(info.Version).NotTo(BeEmpty())
	})

	It("discovers capabilities from the schema endpoints", func() {
		var err error
		caps, err = adapter.Discover(ctx, conn)
		Expect(err).NotTo(HaveOccurred())
		Expect(caps.ConditionTypes).To(ContainElement("ReleaseTitleSpecification"))
		Expect(caps.DownloadClientTypes).To(ContainElement("Transmission"))
		Expect(caps.IndexerTypes).To(ContainElement("Torznab"))
	})

	It("reads the factory state of a fresh instance", func() {
		current, err := adapter.CurrentState(ctx, conn)
		Expect(err).NotTo(HaveOccurred())
		Expect(current.App).To(Equal(adapters.AppRadarr))

		// A fresh Radarr ships quality definitions and built-in profiles.
		Expect(current.QualityDefinitions).NotTo(BeNil())
		Expect(current.QualityDefinitions.Definitions).NotTo(BeEmpty())
		Expect(current.QualityProfiles).NotTo(BeNil())
		Expect(current.QualityProfiles.Definitions).NotTo(BeEmpty())
		Expect(current.CustomFormats.Definitions).To(BeEmpty())
	})

	Context("applying a declared configuration", func() {
		desired := &irv1.IR{
			Version: "v1",
			App:     adapters.AppRadarr,
			Tags: &irv1.TagsIR{
				Labels: []string{"managed", "anime"},
			},
			QualityDefinitions: &irv1.QualityDefinitionsIR{
				Definitions: []irv1.QualityDefinitionIR{
					{
						Quality:       "Bluray-1080p",
						MinSize:       4,
						MaxSize:       ptr.To(120.0),
						PreferredSize: ptr.To(99.0),
					},
				},
			},
			CustomFormats: &irv1.CustomFormatsIR{
				Definitions: []irv1.CustomFormatIR{
					{
						Name:         "x265-hd",
						DefaultScore: 100,
						Conditions: []irv1.ConditionIR{
							{
								Name:           "x265",
								Implementation: "ReleaseTitleSpecification",
								Required:       true,
								Fields: []irv1.FieldIR{
									{Name: "value", Value: `[xh]\.?265|hevc`},
								},
							},
						},
					},
				},
			},
			QualityProfiles: &irv1.QualityProfilesIR{
				Definitions: []irv1.QualityProfileIR{
					{
						Name:            "HD Managed",
						UpgradesAllowed: true,
						UpgradeUntil:    "Bluray-1080p",
						Qualities: []irv1.QualityGroupIR{
							{Name: "Bluray-1080p"},
							{Name: "WEBDL-1080p"},
							{Name: "HDTV-1080p"},
						},
						FormatScores: []irv1.FormatScoreIR{
							{Format: "x265-hd", Score: 100},
						},
						Language: "English",
					},
				},
			},
		}

		It("plans creates for everything declared", func() {
			current, err := adapter.CurrentState(ctx, conn)
			Expect(err).NotTo(HaveOccurred())

			plan, err := adapter.Diff(current, desired, caps)
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.IsEmpty()).To(BeFalse())

			kinds := map[string]adapters.ChangeSet{}
			for _, col := range plan.Collections {
				kinds[col.Kind] = col.Changes
			}
			Expect(kinds["Tag"].Creates).To(HaveLen(2))
			Expect(kinds["QualityDefinition"].Updates).To(HaveLen(1))
			Expect(kinds["CustomFormat"].Creates).To(HaveLen(1))
			Expect(kinds["QualityProfile"].Creates).To(HaveLen(1))

			result, err := adapter.Apply(ctx, conn, desired, plan)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Failed).To(BeZero())
			Expect(result.Applied).To(Equal(plan.TotalChanges()))
		})

		It("converges to an empty plan on the next pass", func() {
			current, err := adapter.CurrentState(ctx, conn)
			Expect(err).NotTo(HaveOccurred())

			plan, err := adapter.Diff(current, desired, caps)
			Expect(err).NotTo(HaveOccurred())
			Expect(plan.IsEmpty()).To(BeTrue(), "expected no drift after apply")
		})

		It("reflects the applied state in a dump", func() {
			dump, err := adapter.Dump(ctx, conn)
			Expect(err).NotTo(HaveOccurred())

			Expect(dump.Tags.Labels).To(ContainElements("managed", "anime"))

			var format *irv1.CustomFormatIR
			for i := range dump.CustomFormats.Definitions {
				if dump.CustomFormats.Definitions[i].Name == "x265-hd" {
					format = &dump.CustomFormats.Definitions[i]
				}
			}
			Expect(format).NotTo(BeNil())
			Expect(format.Condition("x265")).NotTo(BeNil())

			var profile *irv1.QualityProfileIR
			for i := range dump.QualityProfiles.Definitions {
				if dump.QualityProfiles.Definitions[i].Name == "HD Managed" {
					profile = &dump.QualityProfiles.Definitions[i]
				}
			}
			Expect(profile).NotTo(BeNil())
			Expect(profile.UpgradesAllowed).To(BeTrue())
			Expect(profile.UpgradeUntil).To(Equal("Bluray-1080p"))
		})

		It("updates a drifted resource in place", func() {
			drifted := *desired
			formats := *desired.CustomFormats
			formats.Definitions = []irv1.CustomFormatIR{
				{
					Name:         "x265-hd",
					DefaultScore: 100,
					Conditions: []irv1.ConditionIR{
						{
							Name:           "x265",
							Implementation: "ReleaseTitleSpecification",
							Required:       true,
							Negate:         true,
							Fields: []irv1.FieldIR{
								{Name: "value", Value: `[xh]\.?265|hevc`},
							},
						},
					},
				},
			}
			drifted.CustomFormats = &formats

			current, err := adapter.CurrentState(ctx, conn)
			Expect(err).NotTo(HaveOccurred())

			plan, err := adapter.Diff(current, &drifted, caps)
			Expect(err).NotTo(HaveOccurred())

			var updates int
			for _, col := range plan.Collections {
				if col.Kind == "CustomFormat" {
					updates = len(col.Changes.Updates)
				}
			}
			Expect(updates).To(Equal(1))

			result, err := adapter.Apply(ctx, conn, &drifted, plan)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Failed).To(BeZero())

			dump, err := adapter.Dump(ctx, conn)
			Expect(err).NotTo(HaveOccurred())
			Expect(dump.CustomFormats.Definitions).To(HaveLen(1))
			Expect(dump.CustomFormats.Definitions[0].Condition("x265").Negate).To(BeTrue())
		})

		It("deletes unmanaged custom formats when asked to", func() {
			// Declare an empty format set with deletion enabled and a
			// profile that no longer scores the format.
			pruned := *desired
			pruned.CustomFormats = &irv1.CustomFormatsIR{DeleteUnmanaged: true}
			profiles := *desired.QualityProfiles
			profiles.Definitions = []irv1.QualityProfileIR{desired.QualityProfiles.Definitions[0]}
			profiles.Definitions[0].FormatScores = nil
			pruned.QualityProfiles = &profiles

			current, err := adapter.CurrentState(ctx, conn)
			Expect(err).NotTo(HaveOccurred())

			plan, err := adapter.Diff(current, &pruned, caps)
			Expect(err).NotTo(HaveOccurred())

			var deletes int
			for _, col := range plan.Collections {
				if col.Kind == "CustomFormat" {
					deletes = len(col.Changes.Deletes)
				}
			}
			Expect(deletes).To(Equal(1))

			result, err := adapter.Apply(ctx, conn, &pruned, plan)
			Expect(err).NotTo(HaveOccurred())
			Expect(result.Failed).To(BeZero())

			dump, err := adapter.Dump(ctx, conn)
			Expect(err).NotTo(HaveOccurred())
			Expect(dump.CustomFormats.Definitions).To(BeEmpty())
		})
	})

	It("reports instance health", func() {
		health, err := adapter.GetHealth(ctx, conn)
		Expect(err).NotTo(HaveOccurred())
		Expect(health).NotTo(BeNil())
	})
})
