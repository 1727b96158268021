package registry

import (
	"sort"
	"sync"

	"github.com/praetorian-inc/janus-framework/pkg/chain"
)

// Entry is one registered module together with its position in the
// platform/category tree.
type Entry struct {
	Module   chain.Module
	Platform string
	Category string
}

type moduleRegistry struct {
	mu     sync.RWMutex
	byName map[string]Entry
	tree   map[string]map[string][]string // platform -> category -> names
}

var defaultRegistry = &moduleRegistry{
	byName: make(map[string]Entry),
	tree:   make(map[string]map[string][]string),
}

// Register adds a module under platform/category. Modules call this from
// their package init functions; the blank imports in cmd pull them in.
func Register(platform, category, name string, module chain.Module) {
	r := defaultRegistry
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byName[name] = Entry{Module: module, Platform: platform, Category: category}

	categories := r.tree[platform]
	if categories == nil {
		categories = make(map[string][]string)
		r.tree[platform] = categories
	}
	categories[category] = append(categories[category], name)
}

// GetRegistryEntry looks a module up by name.
func GetRegistryEntry(name string) (Entry, bool) {
	r := defaultRegistry
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.byName[name]
	return entry, ok
}

// GetHierarchy returns a copy of the platform/category tree with module
// names sorted, for CLI generation.
func GetHierarchy() map[string]map[string][]string {
	r := defaultRegistry
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]map[string][]string, len(r.tree))
	for platform, categories := range r.tree {
		out[platform] = make(map[string][]string, len(categories))
		for category, names := range categories {
			copied := append([]string(nil), names...)
			sort.Strings(copied)
			out[platform][category] = copied
		}
	}
	return out
}
