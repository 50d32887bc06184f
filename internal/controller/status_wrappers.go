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
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"

	arrv1alpha1 "github.com/concordarr/concordarr-operator/api/v1alpha1"
)

// RadarrStatusWrapper wraps RadarrConfigStatus to implement ConfigStatus
type RadarrStatusWrapper struct {
	Status *arrv1alpha1.RadarrConfigStatus
}

func (w *RadarrStatusWrapper) GetConditions() []metav1.Condition {
	return w.Status.Conditions
}

func (w *RadarrStatusWrapper) SetConditions(conditions []metav1.Condition) {
	w.Status.Conditions = conditions
}

func (w *RadarrStatusWrapper) SetConnected(connected bool) {
	w.Status.Connected = connected
}

func (w *RadarrStatusWrapper) SetServiceVersion(version string) {
	w.Status.ServiceVersion = version
}

func (w *RadarrStatusWrapper) SetLastReconcile(t *metav1.Time) {
	w.Status.LastReconcile = t
}

func (w *RadarrStatusWrapper) SetLastAppliedHash(hash string) {
	w.Status.LastAppliedHash = hash
}

func (w *RadarrStatusWrapper) SetSkippedResources(skipped []arrv1alpha1.SkippedResourceStatus) {
	w.Status.SkippedResources = skipped
}
