package inspect

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/template"

	sprig "github.com/go-task/slim-sprig/v3"
	yaml "gopkg.in/yaml.v3"

	"cssanim/common"
	"cssanim/props"
	"cssanim/utils/debug"
)

// typeEntry is a type descriptor together with its key, as reported to the user.
type typeEntry struct {
	Key  string `yaml:"key" json:"key"`
	Name string `yaml:"name" json:"name"`
	Href string `yaml:"href" json:"href"`
}

// checkEntry is a CanAnimate answer as reported to the user.
type checkEntry struct {
	Name    string `yaml:"name" json:"name"`
	Animate bool   `yaml:"animate" json:"animate"`
}

type renderer struct {
	format common.OutputFmt
	indent int
	tmpl   *template.Template
}

// newRenderer prepares renderer, non-empty text is parsed as template which
// takes precedence over format.
func newRenderer(format common.OutputFmt, indent int, text string) (*renderer, error) {
	r := &renderer{format: format, indent: indent}
	if len(text) == 0 {
		return r, nil
	}
	tmpl, err := template.New("output").Funcs(sprig.FuncMap()).Parse(text)
	if err != nil {
		return nil, fmt.Errorf("unable to parse output template: %w", err)
	}
	r.tmpl = tmpl
	return r, nil
}

// encode writes value in structured format. Single values are written as is,
// everything else as a list.
func (r *renderer) encode(w io.Writer, value any) error {
	switch r.format {
	case common.OutputFmtYaml:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(max(r.indent, 2))
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("unable to encode yaml: %w", err)
		}
		return enc.Close()
	case common.OutputFmtJson:
		enc := json.NewEncoder(w)
		enc.SetIndent("", strings.Repeat(" ", r.indent))
		if err := enc.Encode(value); err != nil {
			return fmt.Errorf("unable to encode json: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported structured output format '%s'", r.format)
	}
}

func (r *renderer) execute(w io.Writer, items []any) error {
	for _, item := range items {
		if err := r.tmpl.Execute(w, item); err != nil {
			return fmt.Errorf("unable to execute output template: %w", err)
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) properties(w io.Writer, results []*props.Property) error {
	switch {
	case r.tmpl != nil:
		items := make([]any, len(results))
		for i, p := range results {
			items[i] = p
		}
		return r.execute(w, items)
	case r.format != common.OutputFmtText:
		if len(results) == 1 {
			return r.encode(w, results[0])
		}
		return r.encode(w, results)
	}

	tw := debug.NewTreeWriter(r.indent)
	for _, p := range results {
		writeProperty(tw, 0, p)
	}
	_, err := io.WriteString(w, tw.String())
	return err
}

func writeProperty(tw *debug.TreeWriter, depth int, p *props.Property) {
	if p == nil {
		tw.Line(depth, "<unresolved>")
		return
	}
	tw.Line(depth, "%s", p.Name)
	tw.List(depth+1, "properties", p.Properties)
	tw.List(depth+1, "types", p.Types)
	if p.Multiple {
		tw.Line(depth+1, "multiple: true")
	}
	if p.Repeatable {
		tw.Line(depth+1, "repeatable: true")
	}
	for _, sub := range p.Expanded {
		writeProperty(tw, depth+1, sub)
	}
}

func (r *renderer) types(w io.Writer, entries []typeEntry) error {
	switch {
	case r.tmpl != nil:
		items := make([]any, len(entries))
		for i, e := range entries {
			items[i] = e
		}
		return r.execute(w, items)
	case r.format != common.OutputFmtText:
		return r.encode(w, entries)
	}

	tw := debug.NewTreeWriter(r.indent)
	for _, e := range entries {
		tw.Line(0, "%s", e.Key)
		tw.TextBlock(1, "name", e.Name)
		tw.Line(1, "href: %s", e.Href)
	}
	_, err := io.WriteString(w, tw.String())
	return err
}

func (r *renderer) names(w io.Writer, names []string) error {
	if r.format != common.OutputFmtText {
		return r.encode(w, names)
	}
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func (r *renderer) checks(w io.Writer, entries []checkEntry) error {
	if r.format != common.OutputFmtText {
		return r.encode(w, entries)
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s\t%t\n", e.Name, e.Animate); err != nil {
			return err
		}
	}
	return nil
}
