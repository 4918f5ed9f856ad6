package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/routeperm/internal/config"
	"github.com/matzehuels/routeperm/pkg/io"
	"github.com/matzehuels/routeperm/pkg/observability"
)

// runCommand creates the run command, which evaluates every route and
// writes the route table.
func (c *CLI) runCommand() *cobra.Command {
	var (
		configPath  string
		interactive bool
		noSummary   bool
	)
	flags := config.Default()

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Evaluate every route between two locations",
		Long: `Evaluate every route between two locations.

The run command reads the lookup table and the route request, enumerates
every ordering of the remaining locations, and writes one CSV row per route
with its great-circle distance. A summary of the direct start/end distance is
written alongside.

Settings are read from built-in defaults, then the --config TOML file, then
ROUTEPERM_* environment variables (a .env file in the working directory is
loaded first), and finally from flags.

Use --stops to restrict the run to a few intermediate locations: the number of
routes is the factorial of the number of intermediate stops.`,
		Example: `  routeperm run
  routeperm run --from IA --to DC --stops OH,TX --unit km
  routeperm run --config routeperm.toml --graph out/route.svg --top 10
  routeperm run --interactive`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			applyRunFlags(cmd.Flags().Changed, &cfg, flags)
			if noSummary {
				cfg.Output.Summary = ""
			}
			return c.runRoutes(cmd.Context(), cfg, interactive)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML run file")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "pick start and end from the lookup table")
	cmd.Flags().BoolVar(&noSummary, "no-summary", false, "skip the distance summary")

	// Input flags
	cmd.Flags().StringVar(&flags.Lookup, "lookup", flags.Lookup, "lookup table JSON")
	cmd.Flags().StringVar(&flags.Request, "request", flags.Request, "route request JSON (ignored with --from/--to)")
	cmd.Flags().StringVar(&flags.From, "from", "", "start location identifier")
	cmd.Flags().StringVar(&flags.To, "to", "", "end location identifier")
	cmd.Flags().StringSliceVar(&flags.Stops, "stops", nil, "intermediate stops to permute (default: every other location)")

	// Evaluation flags
	cmd.Flags().StringVarP(&flags.Unit, "unit", "u", flags.Unit, "distance unit: mi, km")
	cmd.Flags().IntVar(&flags.MaxStops, "max-stops", flags.MaxStops, "refuse runs with more intermediate stops than this")
	cmd.Flags().IntVar(&flags.Top, "top", flags.Top, "number of shortest routes to show")

	// Output flags
	cmd.Flags().StringVarP(&flags.Output.Routes, "routes", "o", flags.Output.Routes, "route table CSV")
	cmd.Flags().StringVar(&flags.Output.Summary, "summary", flags.Output.Summary, "distance summary JSON")
	cmd.Flags().StringVarP(&flags.Output.Graph, "graph", "g", "", "shortest-route diagram (.dot, .svg)")

	return cmd
}

// applyRunFlags copies every flag the user set from src onto dst, so flags
// win over the config file and the environment.
func applyRunFlags(changed func(name string) bool, dst *config.Config, src config.Config) {
	if changed("lookup") {
		dst.Lookup = src.Lookup
	}
	if changed("request") {
		dst.Request = src.Request
	}
	if changed("from") {
		dst.From = src.From
	}
	if changed("to") {
		dst.To = src.To
	}
	if changed("stops") {
		dst.Stops = src.Stops
	}
	if changed("unit") {
		dst.Unit = src.Unit
	}
	if changed("max-stops") {
		dst.MaxStops = src.MaxStops
	}
	if changed("top") {
		dst.Top = src.Top
	}
	if changed("routes") {
		dst.Output.Routes = src.Output.Routes
	}
	if changed("summary") {
		dst.Output.Summary = src.Output.Summary
	}
	if changed("graph") {
		dst.Output.Graph = src.Output.Graph
	}
}

// runRoutes executes the pipeline and prints the outcome.
func (c *CLI) runRoutes(ctx context.Context, cfg config.Config, interactive bool) error {
	logger := loggerFromContext(ctx)
	opts := cfg.PipelineOptions()

	if interactive {
		tbl, err := io.ImportLookup(opts.LookupPath)
		if err != nil {
			return err
		}
		req, err := pickEndpoints(tbl)
		if err != nil {
			return err
		}
		opts.Table = tbl
		opts.Request = req
		opts.RequestPath = ""
	}

	runner := c.newRunner()
	runner.Logger = logger

	spinner := newSpinnerWithContext(ctx, "Loading lookup table...")
	runner.Hooks = &spinnerHooks{RunHooks: observability.Run(), spinner: spinner}
	spinner.Start()

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		if spinner.Cancelled() {
			spinner.Stop()
			printWarning("Run cancelled; %s may be incomplete", opts.RoutesPath)
			return err
		}
		spinner.StopWithError("Run failed")
		return err
	}

	unit := result.Summary.Unit
	spinner.StopWithSuccess(fmt.Sprintf("Evaluated %s routes from %s to %s",
		StyleNumber.Render(strconv.Itoa(result.Rows)), result.Request.From, result.Request.To))
	printKeyValue("Run", result.RunID)
	printKeyValue("Direct", result.Summary.Distance+" "+unit)
	printKeyValue("Shortest", fmt.Sprintf("%.1f %s (row %d)", result.Shortest.Route.Distance, unit, result.Shortest.Index))
	printDetail("%s", joinStops(result.Shortest.Route.Stops))

	printNewline()
	printInfo("Outputs")
	printFile(opts.RoutesPath)
	if opts.SummaryPath != "" {
		printFile(opts.SummaryPath)
	}
	if opts.GraphPath != "" {
		printFile(opts.GraphPath)
	}

	if len(result.Top) > 1 {
		printNewline()
		fmt.Println(renderTopRoutes(result.Top, unit))
	}

	if opts.GraphPath == "" {
		printNewline()
		printNextStep("Draw the shortest route", appName+" run --graph route.svg")
	}
	return nil
}

// spinnerHooks reports run progress on the spinner and forwards every event
// to the registered hooks.
type spinnerHooks struct {
	observability.RunHooks
	spinner *Spinner
}

func (h *spinnerHooks) OnEvaluateStart(ctx context.Context, intermediates int, total uint64) {
	h.RunHooks.OnEvaluateStart(ctx, intermediates, total)
	h.spinner.SetMessage(fmt.Sprintf("Evaluating %d routes through %d stops...", total, intermediates))
}

func (h *spinnerHooks) OnWrite(ctx context.Context, kind, path string, err error) {
	h.RunHooks.OnWrite(ctx, kind, path, err)
	if err == nil && kind == "routes" {
		h.spinner.SetMessage("Writing outputs...")
	}
}

var _ observability.RunHooks = (*spinnerHooks)(nil)
