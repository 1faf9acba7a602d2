package tools

import (
	"context"
	"fmt"
	"sync"

	openai "github.com/sashabaranov/go-openai"
)

// Registry holds the functions an agent offers to the model, in registration order
type Registry struct {
	mtx       sync.RWMutex
	functions map[string]Function
	order     []string
}

// NewRegistry returns a Registry with the functions registered
func NewRegistry(fns ...Function) *Registry {
	ret := &Registry{
		functions: make(map[string]Function, len(fns)),
	}
	ret.Register(fns...)
	return ret
}

// Register adds functions, a function with an existing name replaces the old one
func (r *Registry) Register(fns ...Function) {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	for _, fn := range fns {
		name := fn.Title()
		if _, ok := r.functions[name]; !ok {
			r.order = append(r.order, name)
		}
		r.functions[name] = fn
	}
}

// Get returns a function by name
func (r *Registry) Get(name string) (Function, bool) {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	fn, ok := r.functions[name]
	return fn, ok
}

// Len returns the number of registered functions
func (r *Registry) Len() int {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	return len(r.order)
}

// Functions returns the registered functions
func (r *Registry) Functions() []Function {
	r.mtx.RLock()
	defer r.mtx.RUnlock()
	list := make([]Function, 0, len(r.order))
	for _, name := range r.order {
		list = append(list, r.functions[name])
	}
	return list
}

// Definitions returns declarations of all registered functions
func (r *Registry) Definitions() []openai.Tool {
	fns := r.Functions()
	list := make([]openai.Tool, 0, len(fns))
	for _, fn := range fns {
		list = append(list, fn.Definition())
	}
	return list
}

// Call runs a registered function by name
func (r *Registry) Call(ctx context.Context, name string, arguments string) (string, error) {
	fn, ok := r.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownTool, name)
	}
	return fn.Call(ctx, arguments)
}
