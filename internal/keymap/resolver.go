package keymap

import (
	"slices"

	"github.com/cockroachdb/errors"
)

// ErrUnknownAction is returned for an override naming no known action.
var ErrUnknownAction = errors.New("unknown action")

// Resolver maps key strings to actions.
type Resolver struct {
	bindings map[string]Action   // key -> action
	byAction map[Action][]string // action -> keys (for help/documentation)
}

// NewResolver creates a resolver from bindings.
func NewResolver(bindings []Binding) *Resolver {
	r := &Resolver{
		bindings: make(map[string]Action),
		byAction: make(map[Action][]string),
	}
	for _, b := range bindings {
		for _, key := range b.Keys {
			r.bindings[key] = b.Action
		}
		r.byAction[b.Action] = append(r.byAction[b.Action], b.Keys...)
	}
	for action, keys := range r.byAction {
		r.byAction[action] = dedupe(keys)
	}
	return r
}

// Resolve returns the action for a key, or empty string if not bound.
func (r *Resolver) Resolve(key string) Action {
	return r.bindings[key]
}

// KeysFor returns the keys bound to an action (for help/documentation).
func (r *Resolver) KeysFor(action Action) []string {
	return r.byAction[action]
}

// WithOverrides returns a copy of bindings where each action named in
// overrides is bound to the given keys instead of its defaults. A key taken
// by an override is removed from the other actions.
func WithOverrides(bindings []Binding, overrides map[string][]string) ([]Binding, error) {
	known := make(map[Action]bool, len(bindings))
	for _, b := range bindings {
		known[b.Action] = true
	}

	taken := make(map[string]bool)
	for name, keys := range overrides {
		if !known[Action(name)] {
			return nil, errors.Wrapf(ErrUnknownAction, "%q", name)
		}
		for _, k := range keys {
			taken[k] = true
		}
	}

	out := make([]Binding, 0, len(bindings))
	applied := make(map[Action]bool)
	for _, b := range bindings {
		if keys, ok := overrides[string(b.Action)]; ok {
			if applied[b.Action] {
				continue
			}
			applied[b.Action] = true
			b.Keys = slices.Clone(keys)
		} else {
			b.Keys = slices.DeleteFunc(slices.Clone(b.Keys), func(k string) bool { return taken[k] })
			if len(b.Keys) == 0 {
				continue
			}
		}
		out = append(out, b)
	}
	return out, nil
}

// dedupe removes duplicate strings from a slice.
func dedupe(s []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(s))
	for _, v := range s {
		if !seen[v] {
			seen[v] = true
			result = append(result, v)
		}
	}
	return result
}
