package pipeline

import (
	"cmp"
	"context"
	"fmt"
	stdio "io"
	"slices"
	"time"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/shirou/gopsutil/mem"

	"github.com/matzehuels/routeperm/pkg/errors"
	"github.com/matzehuels/routeperm/pkg/geo"
	"github.com/matzehuels/routeperm/pkg/io"
	"github.com/matzehuels/routeperm/pkg/lookup"
	"github.com/matzehuels/routeperm/pkg/observability"
	"github.com/matzehuels/routeperm/pkg/perm"
	"github.com/matzehuels/routeperm/pkg/render/nodelink"
	"github.com/matzehuels/routeperm/pkg/route"
	"github.com/matzehuels/routeperm/pkg/table"
)

// virtualMemory is replaced in tests.
var virtualMemory = mem.VirtualMemory

// Runner executes route runs.
//
// The Runner holds no run state; multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Logger Logger

	// Hooks receives run events. Nil means the globally registered hooks.
	Hooks observability.RunHooks
}

// NewRunner creates a runner that logs to logger.
// If logger is nil, log output is discarded.
func NewRunner(logger Logger) *Runner {
	if logger == nil {
		logger = charmlog.NewWithOptions(stdio.Discard, charmlog.Options{})
	}
	return &Runner{Logger: logger}
}

func (r *Runner) hooks() observability.RunHooks {
	if r.Hooks != nil {
		return r.Hooks
	}
	return observability.Run()
}

// Execute runs the complete load → summarize → enumerate → diagram pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	result := &Result{RunID: uuid.NewString()}

	// Stage 1: Load
	loadStart := time.Now()
	tbl, req, err := r.load(ctx, opts)
	if err != nil {
		return nil, err
	}
	result.Request = req
	result.Stats.LoadTime = time.Since(loadStart)
	result.Stats.Locations = tbl.Len()

	// Size and lookup checks run before any output file is touched.
	p, err := r.plan(tbl, req, opts)
	if err != nil {
		return nil, err
	}

	// Stage 2: Summarize
	summary, err := r.summarize(tbl, req, opts.unit)
	if err != nil {
		return nil, err
	}
	summary.RunID = result.RunID
	result.Summary = summary
	if opts.SummaryPath != "" {
		err := io.ExportSummary(summary, opts.SummaryPath)
		r.hooks().OnWrite(ctx, "summary", opts.SummaryPath, err)
		if err != nil {
			return nil, err
		}
		r.Logger.Info("wrote distance summary", "path", opts.SummaryPath, "distance", summary.Distance, "unit", summary.Unit)
	}

	// Stage 3: Enumerate
	evalStart := time.Now()
	enum, err := r.writeRoutes(ctx, req, p, opts)
	if err != nil {
		return nil, err
	}
	result.Enumeration = *enum
	result.Stats.EvaluateTime = time.Since(evalStart)

	r.Logger.Info("wrote route table",
		"path", opts.RoutesPath,
		"rows", enum.Rows,
		"shortest", table.FormatDistance(enum.Shortest.Route.Distance),
		"duration", result.Stats.EvaluateTime)

	// Stage 4: Diagram
	if result.Legs, err = p.ev.Legs(enum.Shortest.Route.Stops); err != nil {
		return nil, err
	}
	if opts.GraphPath != "" {
		graphStart := time.Now()
		err := r.writeGraph(enum.Shortest.Route, result.Legs, tbl, opts)
		r.hooks().OnWrite(ctx, "graph", opts.GraphPath, err)
		if err != nil {
			return nil, err
		}
		result.Stats.GraphTime = time.Since(graphStart)
		r.Logger.Info("wrote route diagram", "path", opts.GraphPath, "duration", result.Stats.GraphTime)
	}

	return result, nil
}

// load reads the lookup table and the request, then applies the stop
// selection.
func (r *Runner) load(ctx context.Context, opts Options) (*lookup.Table, route.Request, error) {
	tbl := opts.Table
	source := "memory"
	start := time.Now()
	if tbl == nil {
		source = opts.LookupPath
		var err error
		tbl, err = io.ImportLookup(opts.LookupPath)
		if err != nil {
			r.hooks().OnLoad(ctx, source, 0, time.Since(start), err)
			return nil, route.Request{}, err
		}
	}
	r.hooks().OnLoad(ctx, source, tbl.Len(), time.Since(start), nil)
	r.Logger.Info("loaded lookup table", "source", source, "locations", tbl.Len())

	req := opts.Request
	if req == (route.Request{}) {
		var err error
		if req, err = io.ImportRequest(opts.RequestPath); err != nil {
			return nil, route.Request{}, err
		}
		if err := req.Validate(); err != nil {
			return nil, route.Request{}, errors.Wrap(errors.GetCode(err), err, "request in %s", opts.RequestPath)
		}
	}

	for _, id := range []string{req.From, req.To} {
		loc, err := tbl.Get(id)
		if err != nil {
			return nil, route.Request{}, err
		}
		r.Logger.Debug("resolved endpoint", "id", id, "city", loc.City, "zip", loc.ZipCode, "point", loc.Point)
	}

	sub, err := tbl.Subset(req.From, req.To, opts.Stops)
	if err != nil {
		return nil, route.Request{}, err
	}
	if len(opts.Stops) > 0 {
		r.Logger.Debug("restricted lookup table", "stops", opts.Stops, "locations", sub.Len())
	}
	return sub, req, nil
}

func (r *Runner) summarize(tbl *lookup.Table, req route.Request, unit geo.Unit) (io.Summary, error) {
	from, err := tbl.Get(req.From)
	if err != nil {
		return io.Summary{}, err
	}
	to, err := tbl.Get(req.To)
	if err != nil {
		return io.Summary{}, err
	}
	d := unit.Distance(from.Point.Lat, from.Point.Lon, to.Point.Lat, to.Point.Lon)
	return io.Summary{
		FromState:   from.ID,
		FromZipCode: from.ZipCode,
		ToState:     to.ID,
		ToZipCode:   to.ZipCode,
		Distance:    table.FormatDistance(geo.Round1(d)),
		Unit:        string(unit),
		CreatedAt:   time.Now().UTC(),
	}, nil
}

func (r *Runner) writeRoutes(ctx context.Context, req route.Request, p *enumPlan, opts Options) (enum *Enumeration, err error) {
	f, err := io.Create(opts.RoutesPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeIO, cerr, "close %s", opts.RoutesPath)
		}
		r.hooks().OnWrite(ctx, "routes", opts.RoutesPath, err)
	}()

	w := table.NewWriter(f)
	enum, err = r.enumerate(ctx, req, p, opts, func(index int, rt route.Route) error {
		return w.Write(index, rt.Distance, rt.Stops)
	})
	if err != nil {
		return nil, err
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}
	if w.Rows() != enum.Rows {
		return nil, errors.New(errors.ErrCodeInternal, "wrote %d rows for %d routes", w.Rows(), enum.Rows)
	}
	return enum, nil
}

// Enumerate evaluates every route from req.From to req.To through all
// orderings of the remaining entries of tbl, calling emit once per route in
// generation order with its 1-based row number.
//
// Enumerate stops at the first error from emit or from ctx. On completion it
// verifies that exactly N! routes were produced.
func (r *Runner) Enumerate(ctx context.Context, tbl *lookup.Table, req route.Request, opts Options, emit func(index int, rt route.Route) error) (*Enumeration, error) {
	if err := opts.validateForEnumerate(); err != nil {
		return nil, err
	}
	p, err := r.plan(tbl, req, opts)
	if err != nil {
		return nil, err
	}
	return r.enumerate(ctx, req, p, opts, emit)
}

// enumPlan is a checked enumeration: the intermediate set, its generator and
// the evaluator for the request.
type enumPlan struct {
	ids []string
	gen *perm.Heap[string]
	ev  *route.Evaluator
}

func (r *Runner) plan(tbl *lookup.Table, req route.Request, opts Options) (*enumPlan, error) {
	ids, err := tbl.Intermediates(req.From, req.To)
	if err != nil {
		return nil, err
	}
	gen, err := perm.NewHeap(ids, opts.MaxStops)
	if err != nil {
		return nil, err
	}
	ev, err := route.NewEvaluator(tbl, req, opts.unit.Func())
	if err != nil {
		return nil, err
	}
	return &enumPlan{ids: ids, gen: gen, ev: ev}, nil
}

func (r *Runner) enumerate(ctx context.Context, req route.Request, p *enumPlan, opts Options, emit func(index int, rt route.Route) error) (*Enumeration, error) {
	ids, gen, ev := p.ids, p.gen, p.ev
	total := gen.Total()
	r.preflight(total, ids)
	r.Logger.Info("evaluating routes", "from", req.From, "to", req.To, "intermediates", len(ids), "routes", total)

	hooks := r.hooks()
	hooks.OnEvaluateStart(ctx, len(ids), uint64(total))
	start := time.Now()

	enum := &Enumeration{Intermediates: len(ids)}
	err := func() error {
		for index, order := range gen.All() {
			if err := ctx.Err(); err != nil {
				return err
			}
			rt, err := ev.Evaluate(order)
			if err != nil {
				return err
			}
			if emit != nil {
				if err := emit(index, rt); err != nil {
					return err
				}
			}
			enum.Rows = index
			enum.record(Ranked{Index: index, Route: rt}, opts.Top)
		}
		if enum.Rows != total {
			return errors.New(errors.ErrCodeInternal,
				"generated %d routes for %d intermediate stops, expected %d", enum.Rows, len(ids), total)
		}
		return nil
	}()
	hooks.OnEvaluateComplete(ctx, uint64(enum.Rows), time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return enum, nil
}

// record tracks the shortest route and the top list.
func (e *Enumeration) record(rk Ranked, top int) {
	if e.Rows == 1 || rk.Route.Distance < e.Shortest.Route.Distance {
		e.Shortest = rk
	}
	if top <= 0 {
		return
	}
	if len(e.Top) == top && !less(rk, e.Top[top-1]) {
		return
	}
	i, _ := slices.BinarySearchFunc(e.Top, rk, compare)
	e.Top = slices.Insert(e.Top, i, rk)
	if len(e.Top) > top {
		e.Top = e.Top[:top]
	}
}

func compare(a, b Ranked) int {
	if c := cmp.Compare(a.Route.Distance, b.Route.Distance); c != 0 {
		return c
	}
	return cmp.Compare(a.Index, b.Index)
}

func less(a, b Ranked) bool { return compare(a, b) < 0 }

// preflight warns when the route table will not fit in available memory,
// since the writer's output lands in the page cache as it streams.
func (r *Runner) preflight(total int, ids []string) {
	// KEY, separators, the two endpoints and the distance column
	rowBytes := 32
	for _, id := range ids {
		rowBytes += len(id) + 1
	}
	estimate := uint64(total) * uint64(rowBytes)

	vm, err := virtualMemory()
	if err != nil {
		r.Logger.Debug("memory preflight skipped", "error", err)
		return
	}
	r.Logger.Debug("memory preflight", "estimate_bytes", estimate, "available_bytes", vm.Available)
	if estimate > vm.Available {
		r.Logger.Warn("route table is larger than available memory",
			"estimate_mb", estimate>>20, "available_mb", vm.Available>>20)
	}
}

func (r *Runner) writeGraph(rt route.Route, legs []route.Leg, tbl *lookup.Table, opts Options) error {
	format, err := nodelink.FormatFromPath(opts.GraphPath)
	if err != nil {
		return err
	}
	dot := nodelink.ToDOT(rt, legs, nodelink.Options{Unit: opts.Unit, Table: tbl})
	data, err := nodelink.Render(dot, format)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "render route diagram")
	}

	f, err := io.Create(opts.GraphPath)
	if err != nil {
		return err
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return errors.Wrap(errors.ErrCodeIO, err, "write %s", opts.GraphPath)
	}
	if err := f.Close(); err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "close %s", opts.GraphPath)
	}
	return nil
}
