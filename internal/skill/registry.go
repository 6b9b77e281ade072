package skill

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

var ErrFunctionNotFound = errors.New("function not found")

// Registry maps qualified names to functions. It is filled at startup and
// read concurrently afterwards.
type Registry struct {
	mu        sync.RWMutex
	functions map[string]Function
}

func NewRegistry() *Registry {
	return &Registry{
		functions: make(map[string]Function),
	}
}

// Register adds functions; a name that is already taken is an error.
func (r *Registry) Register(functions ...Function) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, fn := range functions {
		name := QualifiedName(fn.Plugin(), fn.Name())
		if _, exists := r.functions[name]; exists {
			return fmt.Errorf("duplicate function name: %s", name)
		}
		r.functions[name] = fn
	}
	return nil
}

func (r *Registry) Get(qualifiedName string) (Function, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	fn, exists := r.functions[qualifiedName]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrFunctionNotFound, qualifiedName)
	}
	return fn, nil
}

// Require reports every name that is not registered.
func (r *Registry) Require(qualifiedNames ...string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var missing []string
	for _, name := range qualifiedNames {
		if _, exists := r.functions[name]; !exists {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrFunctionNotFound, strings.Join(missing, ", "))
	}
	return nil
}

// List returns the registered functions sorted by qualified name.
func (r *Registry) List() []Function {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.functions))
	for name := range r.functions {
		names = append(names, name)
	}
	sort.Strings(names)

	functions := make([]Function, 0, len(names))
	for _, name := range names {
		functions = append(functions, r.functions[name])
	}
	return functions
}
