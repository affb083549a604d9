package props

import (
	"errors"
	"fmt"
	"iter"
	"slices"
	"sync"

	"go.uber.org/zap"
)

// DefaultMaxDepth limits shorthand nesting when no explicit limit is given.
const DefaultMaxDepth = 8

var (
	// ErrIntegrity is wrapped by every dataset consistency violation.
	ErrIntegrity = errors.New("animatable property dataset integrity violation")
	// ErrDepthExceeded is returned when shorthand expansion goes deeper than
	// the registry allows. Validated datasets never trigger it.
	ErrDepthExceeded = errors.New("internal consistency failure: shorthand expansion depth exceeded")
)

// Registry answers questions about animatable CSS properties. It is
// immutable once created and may be shared by any number of goroutines.
type Registry struct {
	log      *zap.Logger
	props    map[string]Definition
	types    map[string]TypeDescriptor
	names    []string
	maxDepth int
}

// New validates dataset and creates a registry from its private copy. All
// integrity violations found are reported together.
func New(log *zap.Logger, ds Dataset, maxDepth int) (*Registry, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	ds = ds.Clone()
	if err := validate(ds, maxDepth); err != nil {
		return nil, err
	}

	r := &Registry{
		log:      log.Named("registry"),
		props:    ds.Properties,
		types:    ds.Types,
		names:    sortedKeys(ds.Properties),
		maxDepth: maxDepth,
	}
	r.log.Debug("Registry created", zap.Int("properties", len(r.props)), zap.Int("types", len(r.types)), zap.Int("max_depth", maxDepth))
	return r, nil
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	r, err := New(nil, Builtin(), DefaultMaxDepth)
	if err != nil {
		panic(fmt.Sprintf("built-in animatable property dataset is broken: %v", err))
	}
	return r
})

// Default returns registry built from the built-in dataset. It is created on
// first use.
func Default() *Registry {
	return defaultRegistry()
}

// CanAnimate reports whether property is known to the default registry.
func CanAnimate(property string) bool {
	return Default().CanAnimate(property)
}

// GetProperty queries the default registry, see Registry.GetProperty.
func GetProperty(property string, expand bool) (*Property, error) {
	return Default().GetProperty(property, expand)
}

// CanAnimate reports whether property is an exact (case sensitive) key in the
// registry. Vendor prefixed and otherwise aliased names are not recognized.
func (r *Registry) CanAnimate(property string) bool {
	_, ok := r.props[property]
	return ok
}

// GetProperty returns a fresh description of property. When property cannot
// be animated both result and error are nil.
//
// With expand set, sub-properties of a shorthand are resolved recursively and
// stored in Expanded, in order. Otherwise their names are stored in
// Properties. An error is only returned when expansion goes deeper than the
// registry's maximum depth.
func (r *Registry) GetProperty(property string, expand bool) (*Property, error) {
	return r.resolve(property, expand, 0)
}

func (r *Registry) resolve(property string, expand bool, depth int) (*Property, error) {
	if depth > r.maxDepth {
		return nil, fmt.Errorf("%w: '%s' is nested %d levels deep (limit %d)", ErrDepthExceeded, property, depth, r.maxDepth)
	}

	def, ok := r.props[property]
	if !ok {
		return nil, nil
	}

	p := &Property{
		Name:       property,
		Types:      slices.Clone(def.Types),
		Multiple:   def.Multiple,
		Repeatable: def.Repeatable,
	}
	if !def.IsShorthand() {
		return p, nil
	}
	if !expand {
		p.Properties = slices.Clone(def.Properties)
		return p, nil
	}

	p.Expanded = make([]*Property, 0, len(def.Properties))
	for _, name := range def.Properties {
		sub, err := r.resolve(name, expand, depth+1)
		if err != nil {
			return nil, err
		}
		if sub == nil {
			r.log.Warn("Unable to resolve sub-property", zap.String("property", property), zap.String("sub-property", name))
		}
		p.Expanded = append(p.Expanded, sub)
	}
	return p, nil
}

// Len returns number of known properties.
func (r *Registry) Len() int {
	return len(r.props)
}

// MaxDepth returns the shorthand nesting limit of the registry.
func (r *Registry) MaxDepth() int {
	return r.maxDepth
}

// Names returns all property names in natural order.
func (r *Registry) Names() []string {
	return slices.Clone(r.names)
}

// Definition returns a copy of the stored definition of property.
func (r *Registry) Definition(property string) (Definition, bool) {
	def, ok := r.props[property]
	if !ok {
		return Definition{}, false
	}
	return def.clone(), true
}

// Definitions iterates over copies of all definitions in natural name order.
func (r *Registry) Definitions() iter.Seq2[string, Definition] {
	return func(yield func(string, Definition) bool) {
		for _, name := range r.names {
			if !yield(name, r.props[name].clone()) {
				return
			}
		}
	}
}

// Type returns descriptor of the value type.
func (r *Registry) Type(name string) (TypeDescriptor, bool) {
	t, ok := r.types[name]
	return t, ok
}

// Types iterates over all type descriptors in natural name order.
func (r *Registry) Types() iter.Seq2[string, TypeDescriptor] {
	names := sortedKeys(r.types)
	return func(yield func(string, TypeDescriptor) bool) {
		for _, name := range names {
			if !yield(name, r.types[name]) {
				return
			}
		}
	}
}

// Dataset returns a deep copy of the tables registry was built from.
func (r *Registry) Dataset() Dataset {
	return Dataset{Properties: r.props, Types: r.types}.Clone()
}
