package props

import (
	"maps"
	"slices"
)

// Definition describes how a single CSS property is animated. Shorthand
// properties list their sub-properties and carry no types, longhand
// properties list the value types they interpolate as.
type Definition struct {
	Properties []string `yaml:"properties,omitempty" json:"properties,omitempty"` // Sub-properties a shorthand expands into, in order
	Types      []string `yaml:"types,omitempty" json:"types,omitempty"`           // Value types, in order of preference
	Multiple   bool     `yaml:"multiple,omitempty" json:"multiple,omitempty"`     // Accepts a list of values of the declared type(s)
	Repeatable bool     `yaml:"repeatable,omitempty" json:"repeatable,omitempty"` // The value list may repeat, comma separated
}

// IsShorthand returns true if the definition expands into sub-properties.
func (d Definition) IsShorthand() bool {
	return len(d.Properties) > 0
}

func (d Definition) clone() Definition {
	d.Properties = slices.Clone(d.Properties)
	d.Types = slices.Clone(d.Types)
	return d
}

// TypeDescriptor is informational metadata for an animation value type.
type TypeDescriptor struct {
	Name string `yaml:"name" json:"name"` // Human readable label
	Href string `yaml:"href" json:"href"` // Normative description of the interpolation
}

// Dataset is a complete set of property and type tables a Registry can be
// built from.
type Dataset struct {
	Properties map[string]Definition     `yaml:"properties" json:"properties"`
	Types      map[string]TypeDescriptor `yaml:"types" json:"types"`
}

// Clone returns a deep copy of the dataset.
func (ds Dataset) Clone() Dataset {
	out := Dataset{
		Properties: make(map[string]Definition, len(ds.Properties)),
		Types:      maps.Clone(ds.Types),
	}
	if out.Types == nil {
		out.Types = make(map[string]TypeDescriptor)
	}
	for name, def := range ds.Properties {
		out.Properties[name] = def.clone()
	}
	return out
}

// Property is the result of a registry query. It never shares memory with
// the registry, callers are free to modify it.
type Property struct {
	Name       string      `yaml:"name" json:"name"`
	Properties []string    `yaml:"properties,omitempty" json:"properties,omitempty"` // Sub-property names, only when not expanded
	Expanded   []*Property `yaml:"expanded,omitempty" json:"expanded,omitempty"`     // Resolved sub-properties, only when expanded
	Types      []string    `yaml:"types,omitempty" json:"types,omitempty"`
	Multiple   bool        `yaml:"multiple,omitempty" json:"multiple,omitempty"`
	Repeatable bool        `yaml:"repeatable,omitempty" json:"repeatable,omitempty"`
}

// IsShorthand returns true if the property expands into sub-properties,
// regardless of whether the result was expanded or not.
func (p *Property) IsShorthand() bool {
	return len(p.Properties) > 0 || len(p.Expanded) > 0
}

// SubPropertyNames returns names of sub-properties in order for both
// expanded and plain results. Unresolved expanded entries are reported as
// empty strings.
func (p *Property) SubPropertyNames() []string {
	if len(p.Expanded) == 0 {
		return slices.Clone(p.Properties)
	}
	names := make([]string, len(p.Expanded))
	for i, sub := range p.Expanded {
		if sub != nil {
			names[i] = sub.Name
		}
	}
	return names
}

// Longhands returns all non-shorthand properties reachable from an expanded
// result in depth-first order. For a longhand result it returns the result
// itself.
func (p *Property) Longhands() []*Property {
	if !p.IsShorthand() {
		return []*Property{p}
	}
	var out []*Property
	for _, sub := range p.Expanded {
		if sub == nil {
			continue
		}
		out = append(out, sub.Longhands()...)
	}
	return out
}
