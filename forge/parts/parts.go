// Package parts implements one parametric drawing generator per mechanical
// part family. Generators validate their parameter record, derive secondary
// geometry and emit entities through a fresh path cursor; any constraint
// violation aborts the generation with no partial drawing. Families register
// themselves in a package-level registry keyed by part-type string, so new
// families add a registry entry rather than a subclass.
package parts

import (
	"fmt"
	"sort"
	"sync"

	"github.com/partforge/mechdraw"
)

// Generator produces a finished drawing from a parameter record.
type Generator func(p mechdraw.Params) (*mechdraw.Drawing, error)

var (
	regMu    sync.RWMutex
	registry = make(map[string]Generator)
)

// Register adds a generator for a part-type name. Registering the same name
// twice panics: duplicate families are a programming error caught at init.
func Register(name string, g Generator) {
	regMu.Lock()
	defer regMu.Unlock()
	if _, dup := registry[name]; dup {
		panic("parts: duplicate registration of " + name)
	}
	registry[name] = g
}

// Generate dispatches to the registered generator for the part type.
func Generate(partType string, p mechdraw.Params) (*mechdraw.Drawing, error) {
	regMu.RLock()
	g, ok := registry[partType]
	regMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("parts: unsupported part type %q", partType)
	}
	return g(p)
}

// Types lists the registered part-type names in sorted order.
func Types() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func paramErrorf(part, field, format string, args ...any) error {
	return &mechdraw.ParamError{Part: part, Field: field, Reason: fmt.Sprintf(format, args...)}
}

// optionalInt reads a count field that defaults when absent but must be a
// whole number when present.
func optionalInt(part, key string, p mechdraw.Params, def int) (int, error) {
	if !p.Has(key) {
		return def, nil
	}
	return p.RequireInt(part, key)
}
