package systemprompt

import (
	"errors"
	"fmt"
)

// ErrProviderNotFound is returned when no context provider has the requested title
var ErrProviderNotFound = errors.New("context provider not found")

// Generator renders the system prompt of an agent
type Generator interface {
	Generate() string
	ContextProvider(title string) (ContextProvider, error)
	AddContextProviders(providers ...ContextProvider)
	RemoveContextProviders(titles ...string)
}

// Registry keeps context providers in registration order, titles are unique.
// Embed it to get the provider half of Generator.
type Registry struct {
	providers []ContextProvider
}

// ContextProviders returns the registered providers in order
func (r *Registry) ContextProviders() []ContextProvider {
	return r.providers
}

func (r *Registry) indexOf(title string) int {
	for idx, p := range r.providers {
		if p.Title() == title {
			return idx
		}
	}
	return -1
}

// ContextProvider looks a provider up by title
func (r *Registry) ContextProvider(title string) (ContextProvider, error) {
	if idx := r.indexOf(title); idx >= 0 {
		return r.providers[idx], nil
	}
	return nil, fmt.Errorf("%w: %q", ErrProviderNotFound, title)
}

// AddContextProviders registers providers.
// A provider with an already registered title replaces the old one in place.
func (r *Registry) AddContextProviders(providers ...ContextProvider) {
	for _, p := range providers {
		if idx := r.indexOf(p.Title()); idx >= 0 {
			r.providers[idx] = p
			continue
		}
		r.providers = append(r.providers, p)
	}
}

// RemoveContextProviders unregisters providers by title, unknown titles are ignored
func (r *Registry) RemoveContextProviders(titles ...string) {
	for _, title := range titles {
		if idx := r.indexOf(title); idx >= 0 {
			r.providers = append(r.providers[:idx], r.providers[idx+1:]...)
		}
	}
}
