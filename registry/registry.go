// Package registry holds the catalogue of tools the connected local agent can
// execute. The catalogue is plain data built once at start-up and optionally
// refreshed from the agent's own tool listing after it connects.
package registry

import (
	"sync"

	"github.com/viant/mcp-protocol/schema"
)

// Registry is a name keyed snapshot of agent tools.
type Registry struct {
	mux   sync.RWMutex
	tools map[string]schema.Tool
	order []string
}

// New creates a registry seeded with the supplied tools.
func New(tools ...schema.Tool) *Registry {
	ret := &Registry{tools: make(map[string]schema.Tool)}
	for _, tool := range tools {
		ret.add(tool)
	}
	return ret
}

func (r *Registry) add(tool schema.Tool) {
	if _, ok := r.tools[tool.Name]; !ok {
		r.order = append(r.order, tool.Name)
	}
	r.tools[tool.Name] = tool
}

// Register adds or updates a single tool.
func (r *Registry) Register(tool schema.Tool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.add(tool)
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (schema.Tool, bool) {
	r.mux.RLock()
	defer r.mux.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// List returns all registered tools in registration order.
func (r *Registry) List() []schema.Tool {
	r.mux.RLock()
	defer r.mux.RUnlock()
	ret := make([]schema.Tool, 0, len(r.order))
	for _, name := range r.order {
		ret = append(ret, r.tools[name])
	}
	return ret
}

// Replace swaps the whole snapshot, used when the agent reports its catalogue.
func (r *Registry) Replace(tools []schema.Tool) {
	r.mux.Lock()
	defer r.mux.Unlock()
	r.tools = make(map[string]schema.Tool, len(tools))
	r.order = r.order[:0]
	for _, tool := range tools {
		r.add(tool)
	}
}

// Size returns the number of registered tools.
func (r *Registry) Size() int {
	r.mux.RLock()
	defer r.mux.RUnlock()
	return len(r.tools)
}
