package adapters

import (
	"fmt"
	"sync"
)

// Adapters self-register by app name at init time; the controller looks
// them up when reconciling a config.
var (
	registry = make(map[string]Adapter)
	mu       sync.RWMutex
)

// Register adds an adapter under its supported app name. Registering the
// same app twice panics: two adapters claiming one app is a wiring bug.
func Register(a Adapter) {
	mu.Lock()
	defer mu.Unlock()

	app := a.SupportedApp()
	if _, exists := registry[app]; exists {
		panic(fmt.Sprintf("adapter for app %q already registered", app))
	}
	registry[app] = a
}

// Get looks up the adapter for an app name.
func Get(app string) (Adapter, bool) {
	mu.RLock()
	defer mu.RUnlock()

	a, ok := registry[app]
	return a, ok
}

// MustGet looks up the adapter for an app name, panicking when none is
// registered. For callers that link the adapter in at build time.
func MustGet(app string) Adapter {
	a, ok := Get(app)
	if !ok {
		panic(fmt.Sprintf("no adapter registered for app %q", app))
	}
	return a
}

// List returns the registered app names.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()

	apps := make([]string, 0, len(registry))
	for app := range registry {
		apps = append(apps, app)
	}
	return apps
}

// Count returns the number of registered adapters.
func Count() int {
	mu.RLock()
	defer mu.RUnlock()
	return len(registry)
}

// Clear empties the registry. Test helper.
func Clear() {
	mu.Lock()
	defer mu.Unlock()
	registry = make(map[string]Adapter)
}

// RegisterOrReplace registers an adapter, displacing any existing one for
// the same app. Tests use it to swap the real adapter for a mock.
func RegisterOrReplace(a Adapter) {
	mu.Lock()
	defer mu.Unlock()
	registry[a.SupportedApp()] = a
}

// Unregister removes the adapter for an app, reporting whether one was
// registered. Test helper.
func Unregister(app string) bool {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[app]; exists {
		delete(registry, app)
		return true
	}
	return false
}
