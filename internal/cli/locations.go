package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/routeperm/pkg/io"
	"github.com/matzehuels/routeperm/pkg/perm"
)

// locationsCommand creates the locations command for listing the lookup table.
func (c *CLI) locationsCommand() *cobra.Command {
	var (
		configPath string
		lookupPath string
		idsOnly    bool
	)

	cmd := &cobra.Command{
		Use:   "locations",
		Short: "List the locations of the lookup table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("lookup") {
				cfg.Lookup = lookupPath
			}

			tbl, err := io.ImportLookup(cfg.Lookup)
			if err != nil {
				return err
			}

			if idsOnly {
				for _, id := range tbl.IDs() {
					fmt.Println(id)
				}
				return nil
			}

			fmt.Println(renderLocations(tbl.Locations()))
			printInfo("%s locations in %s", StyleNumber.Render(strconv.Itoa(tbl.Len())), cfg.Lookup)
			if n := tbl.Len() - 2; n > cfg.MaxStops {
				printWarning("a full run permutes %d stops; use --stops to select at most %d", n, cfg.MaxStops)
			} else if n >= 0 {
				printDetail("a full run writes %d routes", perm.Factorial(n))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML run file")
	cmd.Flags().StringVar(&lookupPath, "lookup", "", "lookup table JSON")
	cmd.Flags().BoolVar(&idsOnly, "ids", false, "print identifiers only, one per line")

	return cmd
}
