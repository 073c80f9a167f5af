package auth

import (
	"context"
	"fmt"
)

// StrategyLocal is the name of the username/password strategy.
// Provider strategies are named after their provider.
const StrategyLocal = "local"

// Credentials carries the strategy-specific inputs of one attempt:
// form fields for the local strategy, an authorization code for
// provider strategies.
type Credentials struct {
	Username string
	Password string
	Code     string
}

// Strategy is a named verification method. Authenticate resolves to
// exactly one Outcome per attempt and never establishes sessions;
// that is the caller's job, strictly after resolution succeeds.
type Strategy interface {
	Name() string
	Authenticate(ctx context.Context, creds Credentials) Outcome
}

// Registry holds all configured strategies, built once at startup and
// passed by reference to the router. An unknown strategy name is a
// configuration error, not an authentication failure.
type Registry struct {
	strategies map[string]Strategy
}

// NewRegistry registers the given strategies by name.
// Strategy names must be unique.
func NewRegistry(list ...Strategy) *Registry {
	m := make(map[string]Strategy)
	for _, s := range list {
		m[s.Name()] = s
	}
	return &Registry{strategies: m}
}

// Get returns the strategy by name or an error if not registered.
func (r *Registry) Get(name string) (Strategy, error) {
	s, ok := r.strategies[name]
	if !ok {
		return nil, fmt.Errorf("unknown auth strategy: %s", name)
	}
	return s, nil
}
