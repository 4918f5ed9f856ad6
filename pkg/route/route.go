// Package route turns an ordering of intermediate stops into a route and its
// distance.
//
// A route is always the fixed start, the ordered intermediate stops and the
// fixed end. Its distance is accumulated leg by leg, and the running total is
// rounded to one decimal after every leg rather than once at the end. Route
// tables produced by earlier tooling were computed that way, and rounding
// only the final sum would change the last digit of some rows.
package route

import (
	"github.com/matzehuels/routeperm/pkg/errors"
	"github.com/matzehuels/routeperm/pkg/geo"
)

// DistanceFunc computes the distance between two points given in degrees.
// geo.Haversine and geo.HaversineMiles both satisfy it.
type DistanceFunc func(lat1, lon1, lat2, lon2 float64) float64

// Resolver maps an identifier to its coordinates. *lookup.Table satisfies it.
type Resolver interface {
	Coordinates(id string) (geo.Point, error)
}

// Request names the fixed first and last stops of every route.
type Request struct {
	From string `json:"from_state"`
	To   string `json:"to_state"`
}

// Validate checks both identifiers are usable.
func (r Request) Validate() error {
	if err := errors.ValidateIdentifier(r.From); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "route start")
	}
	if err := errors.ValidateIdentifier(r.To); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "route end")
	}
	if r.From == r.To {
		return errors.New(errors.ErrCodeInvalidInput, "route start and end are both %q", r.From)
	}
	return nil
}

// Route is an evaluated route.
type Route struct {
	Stops    []string
	Distance float64
}

// Build returns [start] + perm + [end] as a new slice.
func Build(perm []string, start, end string) []string {
	stops := make([]string, 0, len(perm)+2)
	stops = append(stops, start)
	stops = append(stops, perm...)
	return append(stops, end)
}

// Evaluate builds the route for one ordering and accumulates its distance.
//
// Every stop is resolved through table; an unknown identifier aborts with
// the resolver's error (LOOKUP_ERROR for a lookup.Table). The running sum is
// rounded to one decimal after each leg.
func Evaluate(perm []string, table Resolver, start, end string, dist DistanceFunc) (Route, error) {
	stops := Build(perm, start, end)

	prev, err := table.Coordinates(stops[0])
	if err != nil {
		return Route{}, err
	}

	var sum float64
	for _, id := range stops[1:] {
		next, err := table.Coordinates(id)
		if err != nil {
			return Route{}, err
		}
		sum = geo.Round1(sum + dist(prev.Lat, prev.Lon, next.Lat, next.Lon))
		prev = next
	}

	return Route{Stops: stops, Distance: sum}, nil
}
