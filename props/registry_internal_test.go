package props

import (
	"errors"
	"testing"

	"go.uber.org/zap/zaptest"
)

// Registries below bypass New on purpose to exercise the guards which
// validated data can never reach.

func TestResolve_DanglingSubProperty(t *testing.T) {
	r := &Registry{
		log: zaptest.NewLogger(t),
		props: map[string]Definition{
			"gap":     shorthand("row-gap", "column-gap"),
			"row-gap": typed(TypeLength),
		},
		maxDepth: DefaultMaxDepth,
	}

	p, err := r.GetProperty("gap", true)
	if err != nil {
		t.Fatalf("GetProperty() error = %v", err)
	}
	if len(p.Expanded) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(p.Expanded))
	}
	if p.Expanded[0] == nil || p.Expanded[0].Name != "row-gap" {
		t.Errorf("first entry = %+v, want row-gap", p.Expanded[0])
	}
	if p.Expanded[1] != nil {
		t.Errorf("unresolvable entry must be nil, got %+v", p.Expanded[1])
	}
	if names := p.SubPropertyNames(); names[1] != "" {
		t.Errorf("unresolvable entry name = %q, want empty", names[1])
	}
	if l := p.Longhands(); len(l) != 1 {
		t.Errorf("expected 1 longhand, got %d", len(l))
	}
}

func TestResolve_CycleHitsDepthGuard(t *testing.T) {
	r := &Registry{
		log: zaptest.NewLogger(t),
		props: map[string]Definition{
			"a": shorthand("b"),
			"b": shorthand("a"),
		},
		maxDepth: 4,
	}

	p, err := r.GetProperty("a", true)
	if !errors.Is(err, ErrDepthExceeded) {
		t.Fatalf("expected ErrDepthExceeded, got %v", err)
	}
	if p != nil {
		t.Errorf("expected no result, got %+v", p)
	}

	// without expansion nothing is followed
	if p, err = r.GetProperty("a", false); err != nil || p == nil {
		t.Errorf("GetProperty(a, false) = %+v, %v", p, err)
	}
}

func TestValidate_BuiltinDepth(t *testing.T) {
	ds := Builtin()
	// border -> border-color -> border-top-color
	if err := validate(ds, 2); err != nil {
		t.Errorf("built-in data must fit into depth 2: %v", err)
	}
	if err := validate(ds, 1); err == nil {
		t.Error("built-in data must not fit into depth 1")
	}
}

func TestIsIdent(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"margin", true},
		{"z-index", true},
		{"-webkit-transform", true},
		{"length-percentage-calc", true},
		{"", false},
		{"--var", false},
		{"12px", false},
		{"margin top", false},
		{"margin:", false},
		{"url(x)", false},
	}
	for _, tt := range tests {
		if got := isIdent(tt.in); got != tt.want {
			t.Errorf("isIdent(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
