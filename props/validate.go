package props

import (
	"fmt"
	"net/url"
	"sort"

	"github.com/maruel/natural"
	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/multierr"
)

// validate checks dataset consistency: names must be CSS identifiers, all
// references must resolve, shorthand chains must be acyclic and no deeper
// than maxDepth.
func validate(ds Dataset, maxDepth int) (err error) {
	violation := func(format string, args ...any) {
		err = multierr.Append(err, fmt.Errorf("%w: "+format, append([]any{ErrIntegrity}, args...)...))
	}

	// iterate in stable order so reported errors are reproducible
	names := sortedKeys(ds.Properties)
	for _, name := range names {
		def := ds.Properties[name]
		if !isIdent(name) {
			violation("property name '%s' is not a CSS identifier", name)
		}
		switch {
		case def.IsShorthand() && len(def.Types) > 0:
			violation("shorthand property '%s' must not declare types", name)
		case !def.IsShorthand() && len(def.Types) == 0:
			violation("property '%s' declares neither sub-properties nor types", name)
		}
		if def.Repeatable && !def.Multiple {
			violation("property '%s' is repeatable but does not accept multiple values", name)
		}
		for _, sub := range def.Properties {
			if _, ok := ds.Properties[sub]; !ok {
				violation("property '%s' refers to unknown sub-property '%s'", name, sub)
			}
		}
		for _, t := range def.Types {
			if _, ok := ds.Types[t]; !ok {
				violation("property '%s' refers to unknown type '%s'", name, t)
			}
		}
	}

	for _, name := range sortedKeys(ds.Types) {
		t := ds.Types[name]
		if !isIdent(name) {
			violation("type name '%s' is not a CSS identifier", name)
		}
		if len(t.Name) == 0 {
			violation("type '%s' has no name", name)
		}
		if u, e := url.Parse(t.Href); e != nil || !u.IsAbs() {
			violation("type '%s' has invalid reference '%s'", name, t.Href)
		}
	}

	if e := checkNesting(ds.Properties, names, maxDepth); e != nil {
		err = multierr.Append(err, e)
	}
	return err
}

// checkNesting detects shorthand cycles and measures nesting depth. Dangling
// references are ignored here, they are reported separately.
func checkNesting(defs map[string]Definition, names []string, maxDepth int) error {
	visiting := make(map[string]bool)
	depths := make(map[string]int)

	var visit func(name string) (int, error)
	visit = func(name string) (int, error) {
		if d, ok := depths[name]; ok {
			return d, nil
		}
		visiting[name] = true
		depth := 0
		for _, sub := range defs[name].Properties {
			if _, ok := defs[sub]; !ok {
				continue
			}
			if visiting[sub] {
				return 0, fmt.Errorf("%w: shorthand cycle detected involving '%s' and '%s'", ErrIntegrity, name, sub)
			}
			d, err := visit(sub)
			if err != nil {
				return 0, err
			}
			depth = max(depth, d+1)
		}
		delete(visiting, name)
		depths[name] = depth
		return depth, nil
	}

	var err error
	for _, name := range names {
		if _, ok := depths[name]; ok {
			continue
		}
		d, e := visit(name)
		if e != nil {
			// one cycle is enough, everything on it would be reported again
			return e
		}
		if d > maxDepth {
			err = multierr.Append(err, fmt.Errorf("%w: property '%s' is nested %d levels deep (limit %d)", ErrIntegrity, name, d, maxDepth))
		}
	}
	return err
}

// isIdent returns true if name lexes as exactly one CSS identifier token.
func isIdent(name string) bool {
	l := css.NewLexer(parse.NewInputString(name))
	tt, _ := l.Next()
	if tt != css.IdentToken {
		return false
	}
	tt, _ = l.Next()
	return tt == css.ErrorToken
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Sort(natural.StringSlice(keys))
	return keys
}
