// Package registry keeps named validators so tools can select a schema by
// name at runtime.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/agnivade/levenshtein"

	"github.com/reoring/shapecheck"
	"github.com/reoring/shapecheck/i18n"
)

var (
	// ErrUnknownSchema is returned by Lookup for unregistered names.
	ErrUnknownSchema = errors.New("registry: unknown schema")
	// ErrDuplicate is returned by Register when the name is already taken.
	ErrDuplicate = errors.New("registry: schema already registered")
	// ErrInvalid is returned by Register for empty names or nil validators.
	ErrInvalid = errors.New("registry: invalid registration")
)

// Registry maps schema names to validators. The zero value is not usable; call
// New.
type Registry struct {
	mu      sync.RWMutex
	schemas map[string]entry
}

type entry struct {
	validator   shapecheck.Validator
	description string
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{schemas: make(map[string]entry)}
}

// Register adds a named validator with an optional one-line description.
func (r *Registry) Register(name string, v shapecheck.Validator, description string) error {
	if name == "" || v == nil {
		return ErrInvalid
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.schemas[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, name)
	}
	r.schemas[name] = entry{validator: v, description: description}
	return nil
}

// MustRegister is like Register but panics on error. Intended for package
// initialization.
func (r *Registry) MustRegister(name string, v shapecheck.Validator, description string) {
	if err := r.Register(name, v, description); err != nil {
		panic(err)
	}
}

// Lookup returns the validator registered under name. Misses wrap
// ErrUnknownSchema and mention the closest registered name when there is one.
func (r *Registry) Lookup(name string) (shapecheck.Validator, error) {
	r.mu.RLock()
	e, ok := r.schemas[name]
	r.mu.RUnlock()
	if ok {
		return e.validator, nil
	}
	msg := i18n.T("unknown_schema", map[string]string{"name": name})
	if s := r.Suggest(name); len(s) > 0 {
		return nil, fmt.Errorf("%w: %s (did you mean %q?)", ErrUnknownSchema, msg, s[0])
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, msg)
}

// Description returns the description registered with name.
func (r *Registry) Description(name string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.schemas[name].description
}

// Names lists registered names in ascending order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.schemas))
	for k := range r.schemas {
		out = append(out, k)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

// maxSuggestDistance bounds how far a suggestion may be from the query.
const maxSuggestDistance = 3

// Suggest returns registered names within a small edit distance of name,
// closest first (ties in ascending name order).
func (r *Registry) Suggest(name string) []string {
	type scored struct {
		name string
		dist int
	}
	var cands []scored
	for _, n := range r.Names() {
		if d := levenshtein.ComputeDistance(name, n); d <= maxSuggestDistance {
			cands = append(cands, scored{n, d})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.name
	}
	return out
}
