// Package common keeps enums shared by configuration and command actions.
package common

//go:generate go tool go-enum --marshal --names --values

// Specification of requested output type.
// ENUM(text, yaml, json)
type OutputFmt int

// Which properties to list.
// ENUM(all, shorthand, longhand)
type PropertyKind int

// Match returns true if property of the given shape belongs to the kind.
func (k PropertyKind) Match(shorthand bool) bool {
	switch k {
	case PropertyKindShorthand:
		return shorthand
	case PropertyKindLonghand:
		return !shorthand
	default:
		return true
	}
}
