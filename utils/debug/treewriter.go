// Package debug renders nested structures as indented human readable text.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

type TreeWriter struct {
	w      *strings.Builder
	indent string
}

// NewTreeWriter creates writer indenting every nesting level by width
// spaces. Non-positive width means two spaces.
func NewTreeWriter(width int) *TreeWriter {
	if width <= 0 {
		width = 2
	}
	return &TreeWriter{
		w:      &strings.Builder{},
		indent: strings.Repeat(" ", width),
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) pad(depth int) {
	for range depth {
		tw.w.WriteString(tw.indent)
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

func (tw TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(encodeText(value))
	tw.w.WriteByte('\n')
}

// List writes label followed by comma separated items, nothing when there
// are no items.
func (tw TreeWriter) List(depth int, label string, items []string) {
	if len(items) == 0 {
		return
	}
	tw.pad(depth)
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(strings.Join(items, ", "))
	tw.w.WriteByte('\n')
}

func encodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
