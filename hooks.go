package omm

import (
	"sync"

	"github.com/agentstation/omm/pkg/records"
)

// Hook function types for import events
type (
	// ModuleAddedHook is called for each module an import adds to the store
	ModuleAddedHook func(record records.Record, version string)

	// ModuleDemotedHook is called for each module an import marks not installed
	ModuleDemotedHook func(record records.Record, version string)
)

// Hooks registers callbacks fired after an import is saved.
type Hooks interface {
	OnModuleAdded(fn ModuleAddedHook)
	OnModuleDemoted(fn ModuleDemotedHook)
}

// hooks manages event callbacks for store changes
type hooks struct {
	mu        sync.RWMutex
	onAdded   []ModuleAddedHook
	onDemoted []ModuleDemotedHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

// OnModuleAdded registers a callback for modules seen for the first time.
func (c *client) OnModuleAdded(fn ModuleAddedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onAdded = append(c.hooks.onAdded, fn)
}

// OnModuleDemoted registers a callback for modules missing from a snapshot.
func (c *client) OnModuleDemoted(fn ModuleDemotedHook) {
	c.hooks.mu.Lock()
	defer c.hooks.mu.Unlock()
	c.hooks.onDemoted = append(c.hooks.onDemoted, fn)
}

// triggerImport fires the hooks for the named records of the saved store.
func (h *hooks) triggerImport(store records.Store, version string, added, demoted []string) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.onAdded) == 0 && len(h.onDemoted) == 0 {
		return
	}

	for _, name := range added {
		if i := store.Index(name); i >= 0 {
			for _, hook := range h.onAdded {
				hook(store[i].Clone(), version)
			}
		}
	}
	for _, name := range demoted {
		if i := store.Index(name); i >= 0 {
			for _, hook := range h.onDemoted {
				hook(store[i].Clone(), version)
			}
		}
	}
}
