package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/routeperm/pkg/errors"
	"github.com/matzehuels/routeperm/pkg/lookup"
	"github.com/matzehuels/routeperm/pkg/route"
)

// Options configures route diagram generation.
type Options struct {
	// Unit is appended to distance labels ("mi", "km"). Empty omits it.
	Unit string

	// Table, when set, adds city and coordinates to stop labels.
	Table *lookup.Table
}

// Diagram formats accepted by [Render].
const (
	FormatDOT = "dot"
	FormatSVG = "svg"
)

// ToDOT converts a route and its legs to Graphviz DOT source.
// legs must be the hops of r in order, as returned by route.Evaluator.Legs.
func ToDOT(r route.Route, legs []route.Leg, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph route {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	fmt.Fprintf(&buf, "  label=%q;\n", "total "+withUnit(r.Distance, opts.Unit))
	buf.WriteString("\n")

	// Nodes are named by position, not identifier.
	for i, id := range r.Stops {
		attrs := []string{fmt.Sprintf("label=%q", stopLabel(id, opts.Table))}
		if i == 0 || i == len(r.Stops)-1 {
			attrs = append(attrs, "penwidth=2")
		}
		fmt.Fprintf(&buf, "  n%d [%s];\n", i, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for i, leg := range legs {
		fmt.Fprintf(&buf, "  n%d -> n%d [label=%q];\n", i, i+1, withUnit(leg.Distance, opts.Unit))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func stopLabel(id string, t *lookup.Table) string {
	if t == nil {
		return id
	}
	loc, ok := t.Find(id)
	if !ok {
		return id
	}
	label := id
	if loc.City != "" {
		label += "\n" + loc.City
	}
	return label + "\n" + loc.Point.String()
}

func withUnit(d float64, unit string) string {
	if unit == "" {
		return fmt.Sprintf("%.1f", d)
	}
	return fmt.Sprintf("%.1f %s", d, unit)
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

// FormatFromPath returns the diagram format implied by a file extension.
func FormatFromPath(path string) (string, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".dot", ".gv":
		return FormatDOT, nil
	case ".svg":
		return FormatSVG, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidPath, "unsupported diagram extension %q (use .dot or .svg)", ext)
	}
}

// Render produces diagram bytes in the given format.
func Render(dot, format string) ([]byte, error) {
	switch format {
	case FormatDOT:
		return []byte(dot), nil
	case FormatSVG:
		return RenderSVG(dot)
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "unsupported diagram format %q", format)
	}
}
