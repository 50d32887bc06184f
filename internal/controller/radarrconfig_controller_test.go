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
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	corev1 "k8s.io/api/core/v1"
	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/types"
	"sigs.k8s.io/controller-runtime/pkg/reconcile"

	arrv1alpha1 "github.com/concordarr/concordarr-operator/api/v1alpha1"
	"github.com/concordarr/concordarr-operator/internal/adapters"
	"github.com/concordarr/concordarr-operator/internal/adapters/mock"
	"github.com/concordarr/concordarr-operator/internal/compiler"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

var _ = Describe("RadarrConfig Controller", func() {
	Context("When reconciling a resource", func() {
		const (
			resourceName = "test-radarr"
			namespace    = "default"
			secretName   = "radarr-credentials"
		)

		var (
			ctx               context.Context
			typeNamespaceName types.NamespacedName
			radarrConfig      *arrv1alpha1.RadarrConfig
			apiKeySecret      *corev1.Secret
			mockAdapter       *mock.Adapter
			reconciler        *RadarrConfigReconciler
		)

		BeforeEach(func() {
			ctx = context.Background()
			typeNamespaceName = types.NamespacedName{
				Name:      resourceName,
				Namespace: namespace,
			}

			// Setup mock adapter
			mockAdapter = mock.NewAdapter("radarr")
			adapters.RegisterOrReplace(mockAdapter)

			// Create API key secret
			apiKeySecret = &corev1.Secret{
				ObjectMeta: metav1.ObjectMeta{
					Name:      secretName,
					Namespace: namespace,
				},
				StringData: map[string]string{
					"apiKey": "test-api-key-12345",
				},
			}
			err := k8sClient.Create(ctx, apiKeySecret)
			if err != nil && !apierrors.IsAlreadyExists(err) {
				Expect(err).NotTo(HaveOccurred())
			}

			// Create RadarrConfig resource
			radarrConfig = &arrv1alpha1.RadarrConfig{
				ObjectMeta: metav1.ObjectMeta{
					Name:      resourceName,
					Namespace: namespace,
				},
				Spec: arrv1alpha1.RadarrConfigSpec{
					Connection: arrv1alpha1.ConnectionSpec{
						URL: "http://radarr.example.com:7878",
						APIKeySecretRef: &arrv1alpha1.SecretKeySelector{
							Name: secretName,
							Key:  "apiKey",
						},
					},
				},
			}

			// Create reconciler
			reconciler = &RadarrConfigReconciler{
				Client:   k8sClient,
				Scheme:   k8sClient.Scheme(),
				Helper:   NewReconcileHelper(k8sClient),
				Compiler: compiler.New(),
			}
		})

		AfterEach(func() {
			// Clean up mock adapter
			adapters.Clear()

			// Clean up RadarrConfig
			resource := &arrv1alpha1.RadarrConfig{}
			err := k8sClient.Get(ctx, typeNamespaceName, resource)
			if err == nil {
				resource.Finalizers = nil
				_ = k8sClient.Update(ctx, resource)
				_ = k8sClient.Delete(ctx, resource)
			}

			// Clean up secret
			_ = k8sClient.Delete(ctx, apiKeySecret)
		})

		It("should successfully reconcile and set Ready condition", func() {
			By("Creating the RadarrConfig resource")
			Expect(k8sClient.Create(ctx, radarrConfig)).To(Succeed())

			By("First reconcile to add finalizer")
			_, err := reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Second reconcile to process")
			_, err = reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Checking that the mock adapter was called")
			Expect(mockAdapter.CallCounts()["Connect"]).To(BeNumerically(">=", 1))

			By("Checking the Ready condition")
			updatedConfig := &arrv1alpha1.RadarrConfig{}
			Expect(k8sClient.Get(ctx, typeNamespaceName, updatedConfig)).To(Succeed())
			Expect(HasCondition(updatedConfig.Status.Conditions, ConditionTypeReady, metav1.ConditionTrue)).To(BeTrue())
		})

		It("should set Connected status and version from adapter", func() {
			By("Configuring mock to return specific version")
			mockAdapter.WithVersion("5.11.0.9244")

			By("Creating the RadarrConfig resource")
			Expect(k8sClient.Create(ctx, radarrConfig)).To(Succeed())

			By("First reconcile to add finalizer")
			_, err := reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Second reconcile to process")
			_, err = reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Checking Connected status and version")
			updatedConfig := &arrv1alpha1.RadarrConfig{}
			Expect(k8sClient.Get(ctx, typeNamespaceName, updatedConfig)).To(Succeed())
			Expect(updatedConfig.Status.Connected).To(BeTrue())
			Expect(updatedConfig.Status.ServiceVersion).To(Equal("5.11.0.9244"))
		})

		It("should set Ready=False when connection fails", func() {
			By("Configuring mock to return connection error")
			mockAdapter.WithConnectError(apierrors.NewServiceUnavailable("connection refused"))

			By("Creating the RadarrConfig resource")
			Expect(k8sClient.Create(ctx, radarrConfig)).To(Succeed())

			By("First reconcile to add finalizer")
			_, err := reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Second reconcile to process")
			_, err = reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).To(HaveOccurred())

			By("Checking that Ready condition is False")
			updatedConfig := &arrv1alpha1.RadarrConfig{}
			Expect(k8sClient.Get(ctx, typeNamespaceName, updatedConfig)).To(Succeed())
			Expect(HasCondition(updatedConfig.Status.Conditions, ConditionTypeReady, metav1.ConditionFalse)).To(BeTrue())
			Expect(updatedConfig.Status.Connected).To(BeFalse())
		})

		It("should set Ready=False when API key secret is missing", func() {
			By("Creating RadarrConfig with non-existent secret")
			radarrConfig.Spec.Connection.APIKeySecretRef.Name = "non-existent-secret"
			Expect(k8sClient.Create(ctx, radarrConfig)).To(Succeed())

			By("First reconcile to add finalizer")
			_, err := reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Second reconcile to process")
			_, err = reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).To(HaveOccurred())

			By("Checking that adapter was NOT called (secret resolution failed first)")
			Expect(mockAdapter.CallCounts()["Connect"]).To(Equal(0))
		})

		It("should update LastReconcile and LastAppliedHash", func() {
			By("Creating the RadarrConfig resource")
			Expect(k8sClient.Create(ctx, radarrConfig)).To(Succeed())

			By("First reconcile to add finalizer")
			_, err := reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Second reconcile to process")
			beforeReconcile := time.Now()
			_, err = reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Checking LastReconcile and LastAppliedHash were set")
			updatedConfig := &arrv1alpha1.RadarrConfig{}
			Expect(k8sClient.Get(ctx, typeNamespaceName, updatedConfig)).To(Succeed())
			Expect(updatedConfig.Status.LastReconcile).NotTo(BeNil())
			Expect(updatedConfig.Status.LastReconcile.Time.After(beforeReconcile.Add(-1 * time.Second))).To(BeTrue())
			Expect(updatedConfig.Status.LastAppliedHash).NotTo(BeEmpty())
		})

		It("should requeue with custom interval", func() {
			By("Creating RadarrConfig with custom reconciliation interval")
			interval := metav1.Duration{Duration: 10 * time.Minute}
			radarrConfig.Spec.Reconciliation = &arrv1alpha1.ReconciliationSpec{
				Interval: &interval,
			}
			Expect(k8sClient.Create(ctx, radarrConfig)).To(Succeed())

			By("First reconcile to add finalizer")
			_, err := reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Second reconcile to process")
			result, err := reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Checking requeue interval")
			Expect(result.RequeueAfter).To(Equal(10 * time.Minute))
		})

		It("should skip reconciliation when suspended", func() {
			By("Creating RadarrConfig with reconciliation suspended")
			radarrConfig.Spec.Reconciliation = &arrv1alpha1.ReconciliationSpec{
				Suspend: true,
			}
			Expect(k8sClient.Create(ctx, radarrConfig)).To(Succeed())

			By("Reconciling the resource")
			result, err := reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Checking that reconciliation was skipped")
			Expect(result.Requeue).To(BeFalse())
			Expect(result.RequeueAfter).To(Equal(time.Duration(0)))

			By("Checking that adapter was NOT called")
			Expect(mockAdapter.CallCounts()["Connect"]).To(Equal(0))
		})

		It("should handle resource not found gracefully", func() {
			By("Reconciling a non-existent resource")
			result, err := reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: types.NamespacedName{
					Name:      "non-existent",
					Namespace: namespace,
				},
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(result).To(Equal(reconcile.Result{}))
		})

		It("should apply a plan and set Synced condition", func() {
			By("Configuring mock to return a non-empty plan")
			mockAdapter.WithPlan(&adapters.Plan{
				Collections: []adapters.CollectionPlan{
					{
						Kind: adapters.ResourceQualityProfile,
						Changes: adapters.ChangeSet{
							Creates: []adapters.Change{
								{ResourceType: adapters.ResourceQualityProfile, Name: "HD-1080p"},
							},
						},
					},
				},
			})

			By("Creating the RadarrConfig resource")
			Expect(k8sClient.Create(ctx, radarrConfig)).To(Succeed())

			By("First reconcile to add finalizer")
			_, err := reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Second reconcile to process")
			_, err = reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Checking that Apply was called with the plan")
			Expect(mockAdapter.CallCounts()["Apply"]).To(BeNumerically(">=", 1))

			By("Checking the Synced condition")
			updatedConfig := &arrv1alpha1.RadarrConfig{}
			Expect(k8sClient.Get(ctx, typeNamespaceName, updatedConfig)).To(Succeed())
			Expect(HasCondition(updatedConfig.Status.Conditions, ConditionTypeSynced, metav1.ConditionTrue)).To(BeTrue())
		})

		It("should surface skipped remote resources in status", func() {
			By("Configuring mock current state with a skipped resource")
			mockAdapter.WithCurrentState(&irv1.IR{
				App: "radarr",
				Skipped: []irv1.SkippedResource{
					{Kind: "downloadclient", Name: "seedbox", Implementation: "CarrierPigeon"},
				},
			})

			By("Creating the RadarrConfig resource")
			Expect(k8sClient.Create(ctx, radarrConfig)).To(Succeed())

			By("First reconcile to add finalizer")
			_, err := reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Second reconcile to process")
			_, err = reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Checking skipped resources in status")
			updatedConfig := &arrv1alpha1.RadarrConfig{}
			Expect(k8sClient.Get(ctx, typeNamespaceName, updatedConfig)).To(Succeed())
			Expect(updatedConfig.Status.SkippedResources).To(HaveLen(1))
			Expect(updatedConfig.Status.SkippedResources[0].Implementation).To(Equal("CarrierPigeon"))
		})

		It("should record health issues in status", func() {
			By("Configuring mock to return health issues")
			mockAdapter.WithHealthIssues([]irv1.HealthIssue{
				{Source: "IndexerStatusCheck", Type: irv1.HealthIssueTypeWarning, Message: "Indexers unavailable due to failures"},
			})

			By("Creating the RadarrConfig resource")
			Expect(k8sClient.Create(ctx, radarrConfig)).To(Succeed())

			By("First reconcile to add finalizer")
			_, err := reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Second reconcile to process")
			_, err = reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Checking health status")
			updatedConfig := &arrv1alpha1.RadarrConfig{}
			Expect(k8sClient.Get(ctx, typeNamespaceName, updatedConfig)).To(Succeed())
			Expect(updatedConfig.Status.Health).NotTo(BeNil())
			Expect(updatedConfig.Status.Health.WarningCount).To(Equal(1))
		})

		It("should cleanup managed resources on deletion", func() {
			By("Creating the RadarrConfig resource")
			Expect(k8sClient.Create(ctx, radarrConfig)).To(Succeed())

			By("First reconcile to add finalizer")
			_, err := reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Deleting the resource")
			Expect(k8sClient.Delete(ctx, radarrConfig)).To(Succeed())

			By("Reconciling the deletion")
			_, err = reconciler.Reconcile(ctx, reconcile.Request{
				NamespacedName: typeNamespaceName,
			})
			Expect(err).NotTo(HaveOccurred())

			By("Checking that cleanup computed a deletion diff")
			Expect(mockAdapter.CallCounts()["CurrentState"]).To(BeNumerically(">=", 1))
			Expect(mockAdapter.CallCounts()["Diff"]).To(BeNumerically(">=", 1))

			By("Checking that the resource is gone")
			resource := &arrv1alpha1.RadarrConfig{}
			err = k8sClient.Get(ctx, typeNamespaceName, resource)
			Expect(apierrors.IsNotFound(err)).To(BeTrue())
		})
	})
})
