// Package pipeline runs a complete route enumeration for routeperm.
//
// This package implements the load → evaluate → write pipeline shared by
// every entry point. By centralizing it, the CLI subcommands and any host
// application produce identical route tables for the same inputs.
//
// # Architecture
//
// A run consists of four stages:
//
//  1. Load: read the lookup table and the route request, and restrict the
//     table to the selected stops
//  2. Summarize: compute the direct start/end distance and write the summary
//  3. Enumerate: drive the permutation generator, evaluate every route and
//     stream one CSV row per route
//  4. Diagram: optionally render the shortest route as DOT or SVG
//
// The enumeration is single-threaded and checks the context between
// permutations, so a cancelled run stops after the current row.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    LookupPath: "look_up.json",
//	    Request:    route.Request{From: "IA", To: "DC"},
//	})
//
// Run the core loop without touching the filesystem:
//
//	enum, err := runner.Enumerate(ctx, table, req, opts, func(i int, r route.Route) error {
//	    fmt.Println(i, r.Stops, r.Distance)
//	    return nil
//	})
package pipeline

import (
	"time"

	"github.com/matzehuels/routeperm/pkg/errors"
	"github.com/matzehuels/routeperm/pkg/geo"
	"github.com/matzehuels/routeperm/pkg/io"
	"github.com/matzehuels/routeperm/pkg/lookup"
	"github.com/matzehuels/routeperm/pkg/perm"
	"github.com/matzehuels/routeperm/pkg/render/nodelink"
	"github.com/matzehuels/routeperm/pkg/route"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and library callers
// =============================================================================

const (
	// DefaultLookupPath is the lookup table read when none is given.
	DefaultLookupPath = "look_up.json"

	// DefaultRequestPath is the route request read when no endpoints are given.
	DefaultRequestPath = "states.json"

	// DefaultRoutesPath is where the route table is written.
	DefaultRoutesPath = "cypher.csv"

	// DefaultSummaryPath is where the start/end distance summary is written.
	DefaultSummaryPath = "output.json"

	// DefaultMaxStops bounds the intermediate set of a run.
	DefaultMaxStops = perm.DefaultMaxItems

	// DefaultTop is the number of shortest routes kept in the result.
	DefaultTop = 5
)

// DefaultUnit is the distance unit used when none is given.
const DefaultUnit = geo.DefaultUnit

// Logger is the sink the pipeline reports progress to.
// *log.Logger from github.com/charmbracelet/log satisfies it.
type Logger interface {
	Debug(msg any, keyvals ...any)
	Info(msg any, keyvals ...any)
	Warn(msg any, keyvals ...any)
	Error(msg any, keyvals ...any)
}

// =============================================================================
// Options - Run Configuration
// =============================================================================

// Options contains all configuration for a route run.
type Options struct {
	// Input options. Table takes precedence over LookupPath, and a non-empty
	// Request takes precedence over RequestPath.
	LookupPath  string
	Table       *lookup.Table
	RequestPath string
	Request     route.Request

	// Stops restricts the intermediate set to these identifiers.
	// Empty means every entry of the lookup table.
	Stops []string

	// Evaluation options
	Unit     string
	MaxStops int
	Top      int

	// Output options. An empty SummaryPath or GraphPath skips that output.
	RoutesPath  string
	SummaryPath string
	GraphPath   string

	unit      geo.Unit
	validated bool
}

// ValidateAndSetDefaults checks option values and fills in defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.validateForEnumerate(); err != nil {
		return err
	}

	if o.Table == nil && o.LookupPath == "" {
		o.LookupPath = DefaultLookupPath
	}
	if o.Request == (route.Request{}) && o.RequestPath == "" {
		o.RequestPath = DefaultRequestPath
	}
	if o.Request != (route.Request{}) {
		if err := o.Request.Validate(); err != nil {
			return err
		}
	}
	for _, id := range o.Stops {
		if err := errors.ValidateIdentifier(id); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "stop")
		}
	}

	if o.RoutesPath == "" {
		o.RoutesPath = DefaultRoutesPath
	}
	for _, p := range []string{o.RoutesPath, o.SummaryPath, o.GraphPath} {
		if p == "" {
			continue
		}
		if err := errors.ValidateOutputPath(p); err != nil {
			return err
		}
	}
	if o.GraphPath != "" {
		if _, err := nodelink.FormatFromPath(o.GraphPath); err != nil {
			return err
		}
	}

	o.validated = true
	return nil
}

// validateForEnumerate applies the defaults the core loop needs.
func (o *Options) validateForEnumerate() error {
	if o.Unit == "" {
		o.Unit = string(DefaultUnit)
	}
	u, err := geo.ParseUnit(o.Unit)
	if err != nil {
		return err
	}
	o.unit = u
	o.Unit = string(u)

	if o.MaxStops == 0 {
		o.MaxStops = DefaultMaxStops
	}
	if o.MaxStops < 0 || o.MaxStops > perm.MaxItems {
		return errors.New(errors.ErrCodeInvalidInput,
			"max stops must be between 1 and %d, got %d", perm.MaxItems, o.MaxStops)
	}
	if o.Top == 0 {
		o.Top = DefaultTop
	}
	if o.Top < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "top must not be negative, got %d", o.Top)
	}
	return nil
}

// =============================================================================
// Results
// =============================================================================

// Ranked is a route together with its row number in the route table.
type Ranked struct {
	Index int
	Route route.Route
}

// Enumeration is the outcome of the core loop.
type Enumeration struct {
	// Intermediates is the size N of the permuted set.
	Intermediates int

	// Rows is the number of routes evaluated; it equals N! for a completed run.
	Rows int

	// Shortest is the first route with the smallest distance.
	Shortest Ranked

	// Top holds up to Options.Top shortest routes, ascending by distance and
	// then by row number.
	Top []Ranked
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// RunID identifies the run in the summary file.
	RunID string

	// Request is the resolved start and end.
	Request route.Request

	// Summary is the direct start/end distance record.
	Summary io.Summary

	// Enumeration holds row count and shortest routes.
	Enumeration

	// Legs are the hops of the shortest route.
	Legs []route.Leg

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Locations    int
	LoadTime     time.Duration
	EvaluateTime time.Duration
	GraphTime    time.Duration
}
