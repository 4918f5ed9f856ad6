package cli

import (
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/routeperm/pkg/errors"
	"github.com/matzehuels/routeperm/pkg/geo"
	"github.com/matzehuels/routeperm/pkg/io"
	"github.com/matzehuels/routeperm/pkg/lookup"
	"github.com/matzehuels/routeperm/pkg/table"
)

// distanceCommand creates the distance command.
func (c *CLI) distanceCommand() *cobra.Command {
	var configPath, lookupPath string

	cmd := &cobra.Command{
		Use:   "distance FROM TO",
		Short: "Print the great-circle distance between two locations",
		Long: `Print the great-circle distance between two locations.

Each argument is either an identifier from the lookup table or a literal
"lat,lon" pair in degrees. Literal pairs need no lookup table.`,
		Example: `  routeperm distance IA DC
  routeperm distance 42.0,-93.5 38.9,-77.0`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("lookup") {
				cfg.Lookup = lookupPath
			}

			var tbl *lookup.Table
			if !isCoordinate(args[0]) || !isCoordinate(args[1]) {
				if tbl, err = io.ImportLookup(cfg.Lookup); err != nil {
					return err
				}
			}
			from, err := resolvePoint(args[0], tbl)
			if err != nil {
				return err
			}
			to, err := resolvePoint(args[1], tbl)
			if err != nil {
				return err
			}

			km := geo.Between(from, to)
			loggerFromContext(cmd.Context()).Debug("computed distance", "from", from, "to", to, "km", km)

			printKeyValue("From", args[0]+" "+StyleDim.Render(from.String()))
			printKeyValue("To", args[1]+" "+StyleDim.Render(to.String()))
			printKeyValue("Kilometres", table.FormatDistance(geo.Round1(km)))
			printKeyValue("Miles", table.FormatDistance(geo.Round1(km/geo.KilometersPerMile)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML run file")
	cmd.Flags().StringVar(&lookupPath, "lookup", "", "lookup table JSON")

	return cmd
}

func isCoordinate(s string) bool {
	return strings.Contains(s, ",")
}

// resolvePoint parses a "lat,lon" literal or looks the identifier up in t.
func resolvePoint(s string, t *lookup.Table) (geo.Point, error) {
	if !isCoordinate(s) {
		return t.Coordinates(s)
	}
	lat, lon, _ := strings.Cut(s, ",")
	var p geo.Point
	var err error
	if p.Lat, err = strconv.ParseFloat(strings.TrimSpace(lat), 64); err != nil {
		return geo.Point{}, errors.Wrap(errors.ErrCodeParse, err, "latitude in %q", s)
	}
	if p.Lon, err = strconv.ParseFloat(strings.TrimSpace(lon), 64); err != nil {
		return geo.Point{}, errors.Wrap(errors.ErrCodeParse, err, "longitude in %q", s)
	}
	return p, nil
}
