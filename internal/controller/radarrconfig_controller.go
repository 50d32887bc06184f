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
	"fmt"
	"sync"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller/controllerutil"
	logf "sigs.k8s.io/controller-runtime/pkg/log"

	arrv1alpha1 "github.com/concordarr/concordarr-operator/api/v1alpha1"
	"github.com/concordarr/concordarr-operator/internal/adapters"
	_ "github.com/concordarr/concordarr-operator/internal/adapters/radarr" // Register radarr adapter
	"github.com/concordarr/concordarr-operator/internal/catalog"
	"github.com/concordarr/concordarr-operator/internal/compiler"
	"github.com/concordarr/concordarr-operator/internal/discovery"
	irv1 "github.com/concordarr/concordarr-operator/internal/ir/v1"
)

// RadarrConfigFinalizer guards cleanup of managed remote resources.
const RadarrConfigFinalizer = "arr.concordarr.io/radarrconfig-finalizer"

// RadarrConfigReconciler reconciles a RadarrConfig object
type RadarrConfigReconciler struct {
	client.Client
	Scheme   *runtime.Scheme
	Compiler *compiler.Compiler
	Helper   *ReconcileHelper
	Recorder record.EventRecorder

	// Clientset is used for reading discovery pod logs. Optional; when
	// nil, PVC-based API key discovery is unavailable.
	Clientset kubernetes.Interface

	// catalogs caches fetched catalogs per catalog URL so parallel
	// reconcilers share snapshots.
	catalogMu sync.Mutex
	catalogs  map[string]*catalog.Cache
}

// +kubebuilder:rbac:groups=arr.concordarr.io,resources=radarrconfigs,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=arr.concordarr.io,resources=radarrconfigs/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=arr.concordarr.io,resources=radarrconfigs/finalizers,verbs=update
// +kubebuilder:rbac:groups="",resources=secrets,verbs=get;list;watch
// +kubebuilder:rbac:groups="",resources=pods;pods/log,verbs=get;list;watch
// +kubebuilder:rbac:groups=batch,resources=jobs,verbs=get;list;watch;create;delete

// Reconcile is part of the main kubernetes reconciliation loop
func (r *RadarrConfigReconciler) Reconcile(ctx context.Context, req ctrl.Request) (ctrl.Result, error) {
	log := logf.FromContext(ctx)
	r.ensureInitialized()

	config := &arrv1alpha1.RadarrConfig{}
	if err := r.Get(ctx, req.NamespacedName, config); err != nil {
		if apierrors.IsNotFound(err) {
			log.Info("Resource not found, ignoring")
			return ctrl.Result{}, nil
		}
		log.Error(err, "Failed to get resource")
		return ctrl.Result{}, err
	}

	// Check if reconciliation is suspended
	if spec := config.Spec.Reconciliation; spec != nil && spec.Suspend {
		log.Info("Reconciliation is suspended")
		return ctrl.Result{}, nil
	}

	// Handle deletion
	if !config.DeletionTimestamp.IsZero() {
		return r.reconcileDelete(ctx, config)
	}

	// Ensure finalizer
	if !controllerutil.ContainsFinalizer(config, RadarrConfigFinalizer) {
		controllerutil.AddFinalizer(config, RadarrConfigFinalizer)
		if err := r.Update(ctx, config); err != nil {
			return ctrl.Result{}, err
		}
		return ctrl.Result{Requeue: true}, nil
	}

	return r.reconcileNormal(ctx, config)
}

// ensureInitialized fills in optional collaborators.
func (r *RadarrConfigReconciler) ensureInitialized() {
	if r.Compiler == nil {
		r.Compiler = compiler.New()
	}
	if r.Helper == nil {
		r.Helper = NewReconcileHelper(r.Client)
	}
}

// reconcileNormal handles the normal reconciliation flow
func (r *RadarrConfigReconciler) reconcileNormal(ctx context.Context, config *arrv1alpha1.RadarrConfig) (ctrl.Result, error) {
	log := logf.FromContext(ctx)
	log.Info("Reconciling RadarrConfig", "name", config.Name)

	statusWrapper := &RadarrStatusWrapper{Status: &config.Status}
	generation := config.Generation

	// Resolve the API key (secret ref, then auto-discovery)
	apiKey, err := r.resolveAPIKey(ctx, config)
	if err != nil {
		r.Helper.SetCondition(statusWrapper, generation, ConditionTypeReady, metav1.ConditionFalse, "SecretResolutionFailed", err.Error())
		if statusErr := r.Status().Update(ctx, config); statusErr != nil {
			log.Error(statusErr, "Failed to update status")
		}
		return ctrl.Result{RequeueAfter: ErrorRequeueInterval}, err
	}

	connIR := &irv1.ConnectionIR{
		URL:                config.Spec.Connection.URL,
		APIKey:             apiKey,
		InsecureSkipVerify: config.Spec.Connection.InsecureSkipVerify,
	}

	// Fetch the catalog snapshot when one is configured
	var cat *catalog.Catalog
	if config.Spec.Catalog != nil {
		cat, err = r.catalogFor(config.Spec.Catalog).Get(ctx)
		if err != nil {
			log.Error(err, "Failed to fetch catalog", "url", config.Spec.Catalog.URL)
			r.Helper.SetCondition(statusWrapper, generation, ConditionTypeReady, metav1.ConditionFalse, "CatalogUnavailable", err.Error())
			if statusErr := r.Status().Update(ctx, config); statusErr != nil {
				log.Error(statusErr, "Failed to update status")
			}
			return ctrl.Result{RequeueAfter: ErrorRequeueInterval}, err
		}
	}

	// Compile CRD to IR
	desiredIR, err := r.compile(ctx, config, cat)
	if err != nil {
		log.Error(err, "Failed to compile RadarrConfig to IR")
		r.Helper.SetCondition(statusWrapper, generation, ConditionTypeReady, metav1.ConditionFalse, "CompilationFailed", err.Error())
		if statusErr := r.Status().Update(ctx, config); statusErr != nil {
			log.Error(statusErr, "Failed to update status")
		}
		return ctrl.Result{RequeueAfter: ErrorRequeueInterval}, err
	}

	// Reconcile using helper
	_, err = r.Helper.ReconcileConfig(ctx, adapters.AppRadarr, connIR, desiredIR, statusWrapper, generation)
	if err != nil {
		if statusErr := r.Status().Update(ctx, config); statusErr != nil {
			log.Error(statusErr, "Failed to update status")
		}
		return ctrl.Result{RequeueAfter: ErrorRequeueInterval}, err
	}

	// Check health and emit events
	if healthStatus := r.Helper.CheckAndReportHealth(ctx, adapters.AppRadarr, connIR, config, r.Recorder); healthStatus != nil {
		config.Status.Health = healthStatus
	}

	// Update status
	if err := r.Status().Update(ctx, config); err != nil {
		log.Error(err, "Failed to update status")
		return ctrl.Result{}, err
	}

	// Determine requeue interval
	requeueAfter := DefaultRequeueInterval
	if spec := config.Spec.Reconciliation; spec != nil && spec.Interval != nil {
		requeueAfter = spec.Interval.Duration
	}

	return ctrl.Result{RequeueAfter: requeueAfter}, nil
}

// reconcileDelete handles deletion
func (r *RadarrConfigReconciler) reconcileDelete(ctx context.Context, config *arrv1alpha1.RadarrConfig) (ctrl.Result, error) {
	log := logf.FromContext(ctx)
	log.Info("Handling deletion of RadarrConfig", "name", config.Name)

	// Try to resolve the API key for cleanup
	apiKey, err := r.resolveAPIKey(ctx, config)
	if err != nil {
		log.Error(err, "Failed to resolve API key for cleanup, proceeding anyway")
	} else {
		connIR := &irv1.ConnectionIR{
			URL:                config.Spec.Connection.URL,
			APIKey:             apiKey,
			InsecureSkipVerify: config.Spec.Connection.InsecureSkipVerify,
		}
		if err := r.Helper.CleanupManagedResources(ctx, adapters.AppRadarr, connIR, buildCleanupIR(&config.Spec)); err != nil {
			log.Error(err, "Failed to cleanup managed resources")
		}
	}

	// Remove finalizer
	controllerutil.RemoveFinalizer(config, RadarrConfigFinalizer)
	if err := r.Update(ctx, config); err != nil {
		return ctrl.Result{}, err
	}

	log.Info("Successfully deleted RadarrConfig", "name", config.Name)
	return ctrl.Result{}, nil
}

// buildCleanupIR builds the desired state used when the config is deleted:
// nothing declared, with deleteUnmanaged forced on for every collection the
// config managed, so the diff emits deletes for those collections' remote
// resources. Collections the config never touched stay unmanaged. Tags are
// create-only and quality definitions update-only, so neither needs a
// cleanup entry.
func buildCleanupIR(spec *arrv1alpha1.RadarrConfigSpec) *irv1.IR {
	ir := &irv1.IR{App: adapters.AppRadarr}
	if spec.RootFolders != nil {
		ir.RootFolders = &irv1.RootFoldersIR{DeleteUnmanaged: true}
	}
	if spec.CustomFormats != nil {
		ir.CustomFormats = &irv1.CustomFormatsIR{DeleteUnmanaged: true}
	}
	if spec.QualityProfiles != nil {
		ir.QualityProfiles = &irv1.QualityProfilesIR{DeleteUnmanaged: true}
	}
	if spec.DelayProfiles != nil {
		ir.DelayProfiles = &irv1.DelayProfilesIR{DeleteUnmanaged: true}
	}
	if spec.DownloadClients != nil {
		ir.DownloadClients = &irv1.DownloadClientsIR{DeleteUnmanaged: true}
	}
	if spec.Indexers != nil {
		ir.Indexers = &irv1.IndexersIR{DeleteUnmanaged: true}
	}
	if spec.Notifications != nil {
		ir.Notifications = &irv1.NotificationsIR{DeleteUnmanaged: true}
	}
	if spec.ImportLists != nil {
		ir.ImportLists = &irv1.ImportListsIR{DeleteUnmanaged: true}
	}
	return ir
}

// compile converts the declared spec into the desired IR.
func (r *RadarrConfigReconciler) compile(ctx context.Context, config *arrv1alpha1.RadarrConfig, cat *catalog.Catalog) (*irv1.IR, error) {
	input, err := compiler.BuildInput(&config.Spec, config.Name, config.Namespace, func(name, key string) (string, error) {
		return r.Helper.ResolveSecretValue(ctx, config.Namespace, name, key)
	})
	if err != nil {
		return nil, err
	}
	input.Catalog = cat
	return r.Compiler.Compile(ctx, input)
}

// resolveAPIKey resolves the service API key from the secret reference or,
// when none is declared, by config.xml auto-discovery.
func (r *RadarrConfigReconciler) resolveAPIKey(ctx context.Context, config *arrv1alpha1.RadarrConfig) (string, error) {
	conn := &config.Spec.Connection

	if conn.APIKeySecretRef != nil {
		resolved, err := r.Helper.ResolveConnectionSecrets(ctx, config.Namespace, conn)
		if err != nil {
			return "", err
		}
		return resolved["apiKey"], nil
	}

	if conn.ConfigPVC != "" {
		if r.Clientset == nil {
			return "", fmt.Errorf("configPVC is set but PVC discovery is not available")
		}
		return discovery.DiscoverAPIKeyFromPVC(ctx, r.Client, r.Clientset, config.Namespace, conn.ConfigPVC, conn.ConfigPath, nil)
	}

	if conn.ConfigPath != "" {
		return discovery.DiscoverAPIKeyFromFile(conn.ConfigPath)
	}

	return "", fmt.Errorf("connection declares no apiKeySecretRef, configPVC or configPath")
}

// catalogFor returns the shared cache for the given catalog, creating it on
// first use. Caches are keyed per URL and TTL.
func (r *RadarrConfigReconciler) catalogFor(spec *arrv1alpha1.CatalogSpec) *catalog.Cache {
	ttl := time.Duration(0)
	if spec.TTL != nil {
		ttl = spec.TTL.Duration
	}
	key := fmt.Sprintf("%s|%s", spec.URL, ttl)

	r.catalogMu.Lock()
	defer r.catalogMu.Unlock()

	if r.catalogs == nil {
		r.catalogs = make(map[string]*catalog.Cache)
	}
	if c, ok := r.catalogs[key]; ok {
		return c
	}
	c := catalog.NewCache(catalog.NewClient(spec.URL), ttl)
	r.catalogs[key] = c
	return c
}

// SetupWithManager sets up the controller with the Manager.
func (r *RadarrConfigReconciler) SetupWithManager(mgr ctrl.Manager) error {
	r.ensureInitialized()

	return ctrl.NewControllerManagedBy(mgr).
		For(&arrv1alpha1.RadarrConfig{}).
		Named("radarrconfig").
		Complete(r)
}
