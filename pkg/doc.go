// Package pkg provides the core libraries for routeperm route enumeration.
//
// # Overview
//
// Routeperm takes a table of named locations, a fixed start and a fixed end,
// and evaluates every route that visits all remaining locations in between.
// Each route becomes one row of a CSV route table, ready for bulk import into
// a graph database. The pkg directory is organized into three areas:
//
//  1. Domain logic: [geo], [perm], [route], [table], [lookup]
//  2. Boundary I/O: [io], [render/nodelink]
//  3. Orchestration: [pipeline], [observability], [errors]
//
// # Architecture
//
// The data flow of one run:
//
//	look_up.json + states.json
//	         ↓
//	    [io] package (decode the lookup table and the route request)
//	         ↓
//	    [lookup] package (identifier → coordinates, intermediate set)
//	         ↓
//	    [perm] package (every ordering of the intermediate set)
//	         ↓
//	    [route] package (start + ordering + end, distance per route)
//	         ↓
//	    [table] package (KEY, STATE_n, DISTANCE rows)
//	         ↓
//	    cypher.csv, output.json, optional route diagram
//
// # Quick Start
//
// Evaluate every route from IA to DC:
//
//	import (
//	    "github.com/matzehuels/routeperm/pkg/geo"
//	    "github.com/matzehuels/routeperm/pkg/io"
//	    "github.com/matzehuels/routeperm/pkg/perm"
//	    "github.com/matzehuels/routeperm/pkg/route"
//	)
//
//	// 1. Load the lookup table
//	tbl, _ := io.ImportLookup("look_up.json")
//
//	// 2. Permute everything except the endpoints
//	ids, _ := tbl.Intermediates("IA", "DC")
//	gen, _ := perm.NewHeap(ids, perm.DefaultMaxItems)
//
//	// 3. Evaluate each ordering
//	for i, p := range gen.All() {
//	    r, _ := route.Evaluate(p, tbl, "IA", "DC", geo.HaversineMiles)
//	    fmt.Println(i, r.Stops, r.Distance)
//	}
//
// # Main Packages
//
// ## Domain Logic
//
// [geo] - Haversine great-circle distance in kilometres or miles, and the
// one-decimal rounding applied to route totals.
//
// [perm] - Heap's algorithm as a lazy, bounded generator. Runs are refused
// above a configurable number of items since the row count is N!.
//
// [route] - Builds start + ordering + end and accumulates its distance,
// rounding the running total after every leg.
//
// [table] - Route table header and rows, and a streaming CSV writer.
//
// [lookup] - The identifier → location table and the intermediate-set rule
// (every entry except start and end).
//
// ## Boundary I/O
//
// [io] - Lookup table and route request import, distance summary export.
//
// [render/nodelink] - Shortest-route diagrams as DOT or SVG via Graphviz.
//
// ## Orchestration
//
// [pipeline] - The complete load → summarize → enumerate → diagram run used by
// the CLI. [pipeline.Runner.Enumerate] is the file-free core loop.
//
// [observability] - Optional run hooks for metrics and progress reporting.
//
// [errors] - Coded errors shared by every package.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/perm/...      # Specific package
//	go test -run Example ./...  # Examples only
//
// [geo]: https://pkg.go.dev/github.com/matzehuels/routeperm/pkg/geo
// [perm]: https://pkg.go.dev/github.com/matzehuels/routeperm/pkg/perm
// [route]: https://pkg.go.dev/github.com/matzehuels/routeperm/pkg/route
// [table]: https://pkg.go.dev/github.com/matzehuels/routeperm/pkg/table
// [lookup]: https://pkg.go.dev/github.com/matzehuels/routeperm/pkg/lookup
// [io]: https://pkg.go.dev/github.com/matzehuels/routeperm/pkg/io
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/routeperm/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/routeperm/pkg/pipeline
// [pipeline.Runner.Enumerate]: https://pkg.go.dev/github.com/matzehuels/routeperm/pkg/pipeline#Runner.Enumerate
// [observability]: https://pkg.go.dev/github.com/matzehuels/routeperm/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/routeperm/pkg/errors
package pkg
