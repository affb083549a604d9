// Package props is a registry of CSS properties which can be animated.
//
// For every property it knows whether it is a shorthand (and which
// properties it expands into) or which value types are interpolated when it
// is animated. Value types are described separately with a reference to the
// normative text. Registry does not parse CSS and does not compute
// interpolated values, consumers do that.
//
// Registry data is validated once, when registry is created, and never
// changes afterwards. Query results are always fresh copies.
package props
