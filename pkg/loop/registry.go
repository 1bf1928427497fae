package loop

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Handler is a built-in command the task loop can dispatch to.
type Handler interface {
	// Name returns the command word the user types
	Name() string
	// Description returns a one-line summary shown by help
	Description() string
	// Handle runs the command
	Handle(ctx context.Context, env *Env) error
}

// Registry maps command words to handlers.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]Handler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register adds a handler. Names must be unique and non-empty.
func (r *Registry) Register(h Handler) error {
	if h == nil {
		return fmt.Errorf("cannot register nil handler")
	}

	name := h.Name()
	if name == "" {
		return fmt.Errorf("cannot register handler with empty name")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		return fmt.Errorf("handler '%s' is already registered", name)
	}

	r.handlers[name] = h
	return nil
}

// Get retrieves a handler by name
func (r *Registry) Get(name string) (Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handlers[name]
	return h, ok
}

// List returns all registered names in sorted order
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}

	sort.Strings(names)
	return names
}

// Has checks if a handler is registered
func (r *Registry) Has(name string) bool {
	_, ok := r.Get(name)
	return ok
}

// Size returns the number of registered handlers
func (r *Registry) Size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.handlers)
}

// Unregister removes a handler, reporting whether it was present
func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.handlers[name]; exists {
		delete(r.handlers, name)
		return true
	}
	return false
}

// UnknownCommandError is returned by Dispatch for unregistered names.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("command '%s' not found in registry", e.Name)
}

// Dispatch runs the handler registered under name.
func (r *Registry) Dispatch(ctx context.Context, name string, env *Env) error {
	h, ok := r.Get(name)
	if !ok {
		return &UnknownCommandError{Name: name}
	}
	return h.Handle(ctx, env)
}
