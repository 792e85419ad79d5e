// Package ops provides the named unary operations available to
// recorded pipelines on the command line, and the registry that maps
// names to implementations.
package ops

import (
	"fmt"
	"sort"
	"sync"
)

// Op is a named operation over a single value. Apply returns the
// transformed value or an error; errors and emitted warnings are
// interpreted by the recorder wrapping the op, not by the registry.
type Op interface {
	// Name returns the identifier used on the command line.
	Name() string

	// Description returns a human-readable summary for listings.
	Description() string

	// Apply transforms the input value.
	Apply(v any) (any, error)
}

// Registry maps operation names to implementations.
type Registry struct {
	mu  sync.RWMutex
	ops map[string]Op
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{ops: make(map[string]Op)}
}

// Register adds an operation, replacing any existing one of the same
// name.
func (r *Registry) Register(op Op) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops[op.Name()] = op
}

// Lookup finds an operation by name.
func (r *Registry) Lookup(name string) (Op, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	op, ok := r.ops[name]
	if !ok {
		return nil, fmt.Errorf("unknown operation: %q", name)
	}
	return op, nil
}

// Names returns all registered operation names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.ops))
	for name := range r.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// funcOp adapts a plain function into an Op.
type funcOp struct {
	name string
	desc string
	fn   func(any) (any, error)
}

func (o *funcOp) Name() string             { return o.name }
func (o *funcOp) Description() string      { return o.desc }
func (o *funcOp) Apply(v any) (any, error) { return o.fn(v) }
