package props

// Value type keys used by the built-in dataset.
const (
	TypeColor        = "color"
	TypeLength       = "length"
	TypePercentage   = "percentage"
	TypeLengthPcCalc = "length-percentage-calc"
	TypeInteger      = "integer"
	TypeFontWeight   = "font-weight"
	TypeNumber       = "number"
	TypeRectangle    = "rectangle"
	TypeVisibility   = "visibility"
	TypeShadowList   = "shadow-list"
	TypeTransform    = "transform"
	TypeFontStretch  = "font-stretch"
	TypeBasicShape   = "basic-shape"
)

func shorthand(sub ...string) Definition {
	return Definition{Properties: sub}
}

func typed(types ...string) Definition {
	return Definition{Types: types}
}

func multi(types ...string) Definition {
	return Definition{Types: types, Multiple: true}
}

func repeated(types ...string) Definition {
	return Definition{Types: types, Multiple: true, Repeatable: true}
}

// Builtin returns a fresh copy of the canonical dataset. Only properties
// defined as animatable by W3C specifications at Candidate Recommendation
// level or better are listed, plus Text Level 3, Flexbox and Transforms
// working drafts.
func Builtin() Dataset {
	return Dataset{
		Properties: map[string]Definition{
			// CSS 2.1 box model
			"margin":         shorthand("margin-top", "margin-right", "margin-bottom", "margin-left"),
			"margin-bottom":  typed(TypeLength),
			"margin-left":    typed(TypeLength),
			"margin-right":   typed(TypeLength),
			"margin-top":     typed(TypeLength),
			"padding":        shorthand("padding-top", "padding-right", "padding-bottom", "padding-left"),
			"padding-bottom": typed(TypeLength),
			"padding-left":   typed(TypeLength),
			"padding-right":  typed(TypeLength),
			"padding-top":    typed(TypeLength),

			// CSS 2.1 visual formatting
			"bottom":         typed(TypeLengthPcCalc),
			"left":           typed(TypeLengthPcCalc),
			"right":          typed(TypeLengthPcCalc),
			"top":            typed(TypeLengthPcCalc),
			"z-index":        typed(TypeInteger),
			"width":          typed(TypeLengthPcCalc),
			"max-width":      typed(TypeLengthPcCalc),
			"min-width":      typed(TypeLengthPcCalc),
			"height":         typed(TypeLengthPcCalc),
			"max-height":     typed(TypeLengthPcCalc),
			"min-height":     typed(TypeLengthPcCalc),
			"line-height":    typed(TypeNumber, TypeLength),
			"vertical-align": typed(TypeLength),
			"visibility":     typed(TypeVisibility),
			"border-spacing": multi(TypeLength),

			// Color Level 3
			"color":   typed(TypeColor),
			"opacity": typed(TypeNumber),

			// Backgrounds and Borders Level 3
			"background":                 shorthand("background-color", "background-position", "background-size"),
			"background-color":           typed(TypeColor),
			"background-position":        repeated(TypeLengthPcCalc),
			"background-size":            repeated(TypeLengthPcCalc),
			"border":                     shorthand("border-color", "border-width"),
			"border-bottom":              shorthand("border-bottom-color", "border-bottom-width"),
			"border-left":                shorthand("border-left-color", "border-left-width"),
			"border-right":               shorthand("border-right-color", "border-right-width"),
			"border-top":                 shorthand("border-top-color", "border-top-width"),
			"border-color":               shorthand("border-top-color", "border-right-color", "border-bottom-color", "border-left-color"),
			"border-width":               shorthand("border-top-width", "border-right-width", "border-bottom-width", "border-left-width"),
			"border-bottom-color":        typed(TypeColor),
			"border-left-color":          typed(TypeColor),
			"border-right-color":         typed(TypeColor),
			"border-top-color":           typed(TypeColor),
			"border-bottom-width":        typed(TypeLength),
			"border-left-width":          typed(TypeLength),
			"border-right-width":         typed(TypeLength),
			"border-top-width":           typed(TypeLength),
			"border-radius":              shorthand("border-top-left-radius", "border-top-right-radius", "border-bottom-right-radius", "border-bottom-left-radius"),
			"border-top-left-radius":     multi(TypeLengthPcCalc),
			"border-top-right-radius":    multi(TypeLengthPcCalc),
			"border-bottom-right-radius": multi(TypeLengthPcCalc),
			"border-bottom-left-radius":  multi(TypeLengthPcCalc),
			"box-shadow":                 typed(TypeShadowList),

			// Basic User Interface Level 3
			"outline":        shorthand("outline-color", "outline-width"),
			"outline-color":  typed(TypeColor),
			"outline-width":  typed(TypeLength),
			"outline-offset": typed(TypeLength),

			// Fonts Level 3
			"font":             shorthand("font-weight", "font-stretch", "font-size", "line-height"),
			"font-weight":      typed(TypeFontWeight),
			"font-stretch":     typed(TypeFontStretch),
			"font-size":        typed(TypeLength),
			"font-size-adjust": typed(TypeNumber),

			// Masking Level 1, clip is deprecated
			"clip":          typed(TypeRectangle),
			"clip-path":     typed(TypeBasicShape),
			"mask":          shorthand("mask-position", "mask-size"),
			"mask-position": repeated(TypeLengthPcCalc),
			"mask-size":     repeated(TypeLengthPcCalc),

			// Multi-column Layout
			"columns":           shorthand("column-width", "column-count"),
			"column-width":      typed(TypeLength),
			"column-count":      typed(TypeInteger),
			"column-gap":        typed(TypeLength),
			"column-rule":       shorthand("column-rule-color", "column-rule-width"),
			"column-rule-color": typed(TypeColor),
			"column-rule-width": typed(TypeLength),

			// Shapes Level 1
			"shape-outside":         typed(TypeBasicShape),
			"shape-margin":          typed(TypeLengthPcCalc),
			"shape-image-threshold": typed(TypeNumber),

			// Text Decoration Level 3
			"text-decoration":       shorthand("text-decoration-color"),
			"text-decoration-color": typed(TypeColor),
			"text-emphasis":         shorthand("text-emphasis-color"),
			"text-emphasis-color":   typed(TypeColor),
			"text-shadow":           typed(TypeShadowList),

			// Text Level 3
			"letter-spacing": typed(TypeLength),
			"tab-size":       typed(TypeLength),
			"text-indent":    typed(TypeLengthPcCalc),
			"word-spacing":   typed(TypeLengthPcCalc),

			// Flexible Box Layout Level 1
			"flex":        shorthand("flex-grow", "flex-shrink", "flex-basis"),
			"flex-grow":   typed(TypeNumber),
			"flex-shrink": typed(TypeNumber),
			"flex-basis":  typed(TypeLengthPcCalc),
			"order":       typed(TypeInteger),

			// Transforms Level 1
			"transform":          typed(TypeTransform),
			"transform-origin":   multi(TypeLengthPcCalc),
			"perspective":        typed(TypeLength),
			"perspective-origin": multi(TypeLengthPcCalc),
		},
		Types: map[string]TypeDescriptor{
			TypeColor:        {Name: "color", Href: "http://www.w3.org/TR/css3-transitions/#animtype-color"},
			TypeLength:       {Name: "length", Href: "http://www.w3.org/TR/css3-transitions/#animtype-length"},
			TypePercentage:   {Name: "percentage", Href: "http://www.w3.org/TR/css3-transitions/#animtype-percentage"},
			TypeLengthPcCalc: {Name: "length, percentage, or calc", Href: "http://www.w3.org/TR/css3-transitions/#animtype-lpcalc"},
			TypeInteger:      {Name: "integer", Href: "http://www.w3.org/TR/css3-transitions/#animtype-integer"},
			TypeFontWeight:   {Name: "font weight", Href: "http://www.w3.org/TR/css3-transitions/#animtype-font-weight"},
			TypeNumber:       {Name: "number", Href: "http://www.w3.org/TR/css3-transitions/#animtype-number"},
			TypeRectangle:    {Name: "rectangle", Href: "http://www.w3.org/TR/css3-transitions/#animtype-rect"},
			TypeVisibility:   {Name: "visibility", Href: "http://www.w3.org/TR/css3-transitions/#animtype-visibility"},
			TypeShadowList:   {Name: "shadow list", Href: "http://www.w3.org/TR/css3-transitions/#animtype-shadow-list"},
			TypeTransform:    {Name: "transform", Href: "http://www.w3.org/TR/css3-transforms/#interpolation-of-transforms"},
			TypeFontStretch:  {Name: "font stretch", Href: "http://www.w3.org/TR/css3-fonts/#font-stretch-animation"},
			TypeBasicShape:   {Name: "basic shape", Href: "http://www.w3.org/TR/css-shapes-1/#basic-shape-interpolation"},
		},
	}
}
