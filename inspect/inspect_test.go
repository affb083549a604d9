package inspect

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	yaml "gopkg.in/yaml.v3"

	"cssanim/common"
	"cssanim/config"
	"cssanim/props"
	"cssanim/state"
)

// setupTestEnv creates a test environment with default configuration and
// output captured in the returned buffer.
func setupTestEnv(t *testing.T) (context.Context, *state.LocalEnv, *bytes.Buffer) {
	t.Helper()
	cfg, err := config.LoadConfiguration("")
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	ctx := state.ContextWithEnv(context.Background())
	env := state.EnvFromContext(ctx)
	env.Log = zaptest.NewLogger(t, zaptest.WrapOptions(zap.AddCaller(), zap.AddCallerSkip(1)))
	env.Cfg = cfg
	out := new(bytes.Buffer)
	env.Out = out
	return ctx, env, out
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{Name: "expand"},
		&cli.BoolFlag{Name: "strict"},
		&cli.StringFlag{Name: "format"},
		&cli.StringFlag{Name: "template"},
		&cli.StringFlag{Name: "kind"},
	}
}

func run(ctx context.Context, action cli.ActionFunc, args ...string) error {
	cmd := &cli.Command{Name: "test", Flags: outputFlags(), Action: action}
	return cmd.Run(ctx, append([]string{"test"}, args...))
}

func TestShow_Text(t *testing.T) {
	ctx, _, out := setupTestEnv(t)

	if err := run(ctx, Show, "margin", "background-position"); err != nil {
		t.Fatalf("Show() error = %v", err)
	}

	want := `margin
  properties: margin-top, margin-right, margin-bottom, margin-left
background-position
  types: length-percentage-calc
  multiple: true
  repeatable: true
`
	if out.String() != want {
		t.Errorf("Show() output:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestShow_TextExpanded(t *testing.T) {
	ctx, env, out := setupTestEnv(t)
	env.Cfg.Output.Indent = 4

	if err := run(ctx, Show, "--expand", "border"); err != nil {
		t.Fatalf("Show() error = %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 19 {
		t.Fatalf("expected 19 lines, got %d:\n%s", len(lines), out.String())
	}
	if lines[0] != "border" || lines[1] != "    border-color" || lines[2] != "        border-top-color" || lines[3] != "            types: color" {
		t.Errorf("unexpected tree:\n%s", out.String())
	}
}

func TestShow_JSON(t *testing.T) {
	ctx, _, out := setupTestEnv(t)

	if err := run(ctx, Show, "--format", "json", "--expand", "margin"); err != nil {
		t.Fatalf("Show() error = %v", err)
	}

	var p props.Property
	if err := json.Unmarshal(out.Bytes(), &p); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out.String())
	}
	if p.Name != "margin" || len(p.Expanded) != 4 || p.Expanded[3].Name != "margin-left" {
		t.Errorf("unexpected result %+v", p)
	}
	if !slices.Equal(p.Expanded[0].Types, []string{"length"}) {
		t.Errorf("unexpected sub-property types %v", p.Expanded[0].Types)
	}
}

func TestShow_YAMLFromConfig(t *testing.T) {
	ctx, env, out := setupTestEnv(t)
	env.Cfg.Output.Format = common.OutputFmtYaml

	if err := run(ctx, Show, "line-height", "opacity"); err != nil {
		t.Fatalf("Show() error = %v", err)
	}

	var results []props.Property
	if err := yaml.Unmarshal(out.Bytes(), &results); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out.String())
	}
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if !slices.Equal(results[0].Types, []string{"number", "length"}) {
		t.Errorf("line-height types = %v", results[0].Types)
	}
}

func TestShow_UnknownFormatFallsBack(t *testing.T) {
	ctx, _, out := setupTestEnv(t)

	if err := run(ctx, Show, "--format", "xml", "opacity"); err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	if out.String() != "opacity\n  types: number\n" {
		t.Errorf("expected configured text output, got %q", out.String())
	}
}

func TestShow_Template(t *testing.T) {
	ctx, _, out := setupTestEnv(t)

	err := run(ctx, Show, "--template", `{{ .Name }}={{ join "," .Types }}{{ if .Multiple }} (multiple){{ end }}`, "line-height", "border-spacing")
	if err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	want := "line-height=number,length\nborder-spacing=length (multiple)\n"
	if out.String() != want {
		t.Errorf("Show() output = %q, want %q", out.String(), want)
	}

	if err := run(ctx, Show, "--template", "{{ .Name", "opacity"); err == nil {
		t.Error("expected error for malformed template")
	}
}

func TestShow_Unknown(t *testing.T) {
	ctx, _, out := setupTestEnv(t)

	if err := run(ctx, Show, "display", "opacity"); err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	if out.String() != "opacity\n  types: number\n" {
		t.Errorf("unknown property must be skipped, got %q", out.String())
	}

	out.Reset()
	err := run(ctx, Show, "--strict", "--", "display", "-moz-opacity")
	if !errors.Is(err, ErrNotAnimatable) {
		t.Fatalf("expected ErrNotAnimatable, got %v", err)
	}
	if !strings.Contains(err.Error(), "display, -moz-opacity") {
		t.Errorf("error must name properties: %v", err)
	}

	if err := run(ctx, Show); err == nil {
		t.Error("expected error without arguments")
	}
}

func TestCheck(t *testing.T) {
	ctx, _, out := setupTestEnv(t)

	if err := run(ctx, Check, "margin", "display", "Margin"); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	want := "margin\ttrue\ndisplay\tfalse\nMargin\tfalse\n"
	if out.String() != want {
		t.Errorf("Check() output = %q, want %q", out.String(), want)
	}

	if err := run(ctx, Check, "--strict", "margin", "display"); !errors.Is(err, ErrNotAnimatable) {
		t.Errorf("expected ErrNotAnimatable, got %v", err)
	}
	if err := run(ctx, Check, "--strict", "margin", "opacity"); err != nil {
		t.Errorf("Check() error = %v", err)
	}

	out.Reset()
	if err := run(ctx, Check, "--", "-moz-opacity"); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	if out.String() != "-moz-opacity\tfalse\n" {
		t.Errorf("Check() output = %q", out.String())
	}

	out.Reset()
	if err := run(ctx, Check, "--format", "json", "color"); err != nil {
		t.Fatalf("Check() error = %v", err)
	}
	var entries []checkEntry
	if err := json.Unmarshal(out.Bytes(), &entries); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(entries) != 1 || !entries[0].Animate {
		t.Errorf("unexpected entries %+v", entries)
	}
}

func TestList(t *testing.T) {
	tests := []struct {
		kind     string
		present  []string
		excluded []string
	}{
		{"", []string{"margin", "margin-top"}, nil},
		{"shorthand", []string{"margin", "border", "font"}, []string{"margin-top", "color"}},
		{"longhand", []string{"margin-top", "color"}, []string{"margin", "border"}},
	}

	for _, tt := range tests {
		t.Run("kind="+tt.kind, func(t *testing.T) {
			ctx, _, out := setupTestEnv(t)
			args := []string{}
			if tt.kind != "" {
				args = append(args, "--kind", tt.kind)
			}
			if err := run(ctx, List, args...); err != nil {
				t.Fatalf("List() error = %v", err)
			}
			names := strings.Fields(out.String())
			for _, n := range tt.present {
				if !slices.Contains(names, n) {
					t.Errorf("expected %q to be listed", n)
				}
			}
			for _, n := range tt.excluded {
				if slices.Contains(names, n) {
					t.Errorf("expected %q not to be listed", n)
				}
			}
		})
	}

	ctx, _, _ := setupTestEnv(t)
	if err := run(ctx, List, "--kind", "vendor"); err == nil {
		t.Error("expected error for unknown kind")
	}
}

func TestTypes(t *testing.T) {
	ctx, _, out := setupTestEnv(t)

	if err := run(ctx, Types, "--format", "json"); err != nil {
		t.Fatalf("Types() error = %v", err)
	}
	var entries []typeEntry
	if err := json.Unmarshal(out.Bytes(), &entries); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if len(entries) != len(props.Builtin().Types) {
		t.Errorf("expected %d types, got %d", len(props.Builtin().Types), len(entries))
	}

	out.Reset()
	if err := run(ctx, Types); err != nil {
		t.Fatalf("Types() error = %v", err)
	}
	if !strings.Contains(out.String(), "length-percentage-calc\n  name: \"length, percentage, or calc\"\n  href: http://www.w3.org/TR/css3-transitions/#animtype-lpcalc\n") {
		t.Errorf("unexpected text output:\n%s", out.String())
	}
}

func TestTypes_IgnoresConfiguredTemplate(t *testing.T) {
	ctx, env, out := setupTestEnv(t)
	env.Cfg.Output.Template = `{{ .Name }}: {{ join ", " .Types }}`

	if err := run(ctx, Show, "margin-top"); err != nil {
		t.Fatalf("Show() error = %v", err)
	}
	if out.String() != "margin-top: length\n" {
		t.Errorf("Show() output = %q", out.String())
	}

	out.Reset()
	if err := run(ctx, Types); err != nil {
		t.Fatalf("Types() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "basic-shape\n  name: \"basic shape\"\n") {
		t.Errorf("expected text output, got:\n%s", out.String())
	}

	out.Reset()
	if err := run(ctx, Types, "--template", "{{ .Key }}"); err != nil {
		t.Fatalf("Types() error = %v", err)
	}
	if !strings.HasPrefix(out.String(), "basic-shape\ncolor\n") {
		t.Errorf("expected template output, got:\n%s", out.String())
	}
}

func TestDump(t *testing.T) {
	ctx, env, out := setupTestEnv(t)

	path := filepath.Join(t.TempDir(), "dataset.yaml")
	if err := run(ctx, Dump, path); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if out.Len() != 0 {
		t.Errorf("nothing must be written to output, got %d bytes", out.Len())
	}

	ds, err := props.LoadDatasetFile(path)
	if err != nil {
		t.Fatalf("LoadDatasetFile() error = %v", err)
	}
	if len(ds.Properties) != env.Registry.Len() {
		t.Errorf("dumped %d properties, registry has %d", len(ds.Properties), env.Registry.Len())
	}

	if err := run(ctx, Dump); err != nil {
		t.Fatalf("Dump() error = %v", err)
	}
	if !strings.Contains(out.String(), "line-height:\n") {
		t.Error("expected dataset on output")
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, _, _ := setupTestEnv(t)
	ctx, cancel := context.WithCancel(ctx)
	cancel()

	if err := run(ctx, Show, "margin"); err == nil {
		t.Error("expected error for canceled context")
	}
}
