package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/routeperm/pkg/perm"
)

// permuteCommand creates the permute debug command.
func (c *CLI) permuteCommand() *cobra.Command {
	var limit, maxItems int

	cmd := &cobra.Command{
		Use:   "permute [ITEM...]",
		Short: "Print the orderings of a list in generation order",
		Long: `Print the orderings of a list in generation order.

This is a debugging tool: it shows the exact order in which route rows are
produced for a given intermediate set. Orderings are generated with Heap's
algorithm, so consecutive lines differ by a single swap.`,
		Example: `  routeperm permute OH TX PA
  routeperm permute a b c d e --limit 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, err := perm.NewHeap(args, maxItems)
			if err != nil {
				return err
			}
			prog := newProgress(loggerFromContext(cmd.Context()))
			out := cmd.OutOrStdout()
			width := len(fmt.Sprint(gen.Total()))

			emitted := 0
			if limit > 0 {
				// A bounded prefix is small enough to build eagerly.
				for i, order := range perm.Generate(len(args), limit) {
					items := make([]string, len(order))
					for j, k := range order {
						items[j] = args[k]
					}
					fmt.Fprintf(out, "%*d  %s\n", width, i+1, strings.Join(items, " "))
					emitted++
				}
			} else {
				for i, p := range gen.All() {
					fmt.Fprintf(out, "%*d  %s\n", width, i, strings.Join(p, " "))
				}
				emitted = gen.Emitted()
			}

			prog.done(permuteSummary(emitted, gen.Total()))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after this many orderings (0 = all)")
	cmd.Flags().IntVar(&maxItems, "max", perm.DefaultMaxItems, fmt.Sprintf("refuse more items than this (at most %d)", perm.MaxItems))

	return cmd
}

func permuteSummary(emitted, total int) string {
	return fmt.Sprintf("Generated %d of %d permutations", emitted, total)
}
