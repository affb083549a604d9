package props_test

import (
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"go.uber.org/zap"

	"cssanim/props"
)

const gridDataset = `properties:
  grid-gap:
    properties: [grid-row-gap, grid-column-gap]
  grid-row-gap:
    types: [length]
  grid-column-gap:
    types: [length]
  grid-template-columns:
    types: [length]
    multiple: true
types:
  length:
    name: length
    href: https://www.w3.org/TR/css-values-4/#lengths
`

func TestLoadDataset(t *testing.T) {
	ds, err := props.LoadDataset(strings.NewReader(gridDataset))
	if err != nil {
		t.Fatalf("LoadDataset() error = %v", err)
	}

	reg, err := props.New(zap.NewNop(), ds, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if reg.Len() != 4 {
		t.Errorf("Len() = %d, want 4", reg.Len())
	}

	p, err := reg.GetProperty("grid-gap", false)
	if err != nil || p == nil {
		t.Fatalf("GetProperty() = %v, %v", p, err)
	}
	if !slices.Equal(p.Properties, []string{"grid-row-gap", "grid-column-gap"}) {
		t.Errorf("Properties = %v", p.Properties)
	}
	if def, _ := reg.Definition("grid-template-columns"); !def.Multiple {
		t.Error("expected grid-template-columns to accept multiple values")
	}
}

func TestLoadDataset_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want string
	}{
		{"empty", "", "empty"},
		{"unknown field", "properties:\n  width:\n    typs: [length]\n", "failed to decode"},
		{"no properties", "types:\n  length:\n    name: length\n    href: http://example.com\n", "no properties"},
		{"malformed", "properties: [", "failed to decode"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := props.LoadDataset(strings.NewReader(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error %q does not mention %q", err.Error(), tt.want)
			}
		})
	}
}

func TestLoadDatasetFile_BuiltinExport(t *testing.T) {
	data, err := props.MarshalDataset(props.Default().Dataset())
	if err != nil {
		t.Fatalf("MarshalDataset() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "dataset.yaml")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	ds, err := props.LoadDatasetFile(path)
	if err != nil {
		t.Fatalf("LoadDatasetFile() error = %v", err)
	}
	reg, err := props.New(nil, ds, 0)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if !slices.Equal(reg.Names(), props.Default().Names()) {
		t.Error("exported dataset does not describe the same properties")
	}

	if _, err := props.LoadDatasetFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("expected error for absent file")
	}
}
