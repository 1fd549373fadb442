package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table renders rows of data in aligned columns.
type Table struct {
	w       *tabwriter.Writer
	headers []string
}

// NewTable creates a new table writer with the given column headers.
func NewTable(out io.Writer, headers ...string) *Table {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	t := &Table{w: tw, headers: headers}
	_, _ = fmt.Fprintln(tw, strings.Join(headers, "\t"))
	return t
}

// Row appends a row of values. The number of values should match the number of headers.
func (t *Table) Row(values ...any) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%v", v)
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

// Flush writes the buffered output.
func (t *Table) Flush() error {
	return t.w.Flush()
}

// KV renders label/value pairs in two aligned columns, for single-record
// reports like `jspkg which`.
type KV struct {
	w *tabwriter.Writer
}

// NewKV creates a key/value writer.
func NewKV(out io.Writer) *KV {
	return &KV{w: tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)}
}

// Pair appends one label/value line.
func (k *KV) Pair(label string, value any) {
	_, _ = fmt.Fprintf(k.w, "%s\t%v\n", label, value)
}

// Flush writes the buffered output.
func (k *KV) Flush() error {
	return k.w.Flush()
}
