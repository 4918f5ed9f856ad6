package route

import (
	"github.com/matzehuels/routeperm/pkg/errors"
)

// Evaluator binds the lookup table, the fixed endpoints and the distance
// function so that many orderings can be evaluated with one call each.
type Evaluator struct {
	table Resolver
	start string
	end   string
	dist  DistanceFunc
}

// NewEvaluator resolves both endpoints up front so that a bad request fails
// before any ordering is evaluated.
func NewEvaluator(table Resolver, req Request, dist DistanceFunc) (*Evaluator, error) {
	if dist == nil {
		return nil, errors.New(errors.ErrCodeInvalidInput, "distance function is required")
	}
	if _, err := table.Coordinates(req.From); err != nil {
		return nil, err
	}
	if _, err := table.Coordinates(req.To); err != nil {
		return nil, err
	}
	return &Evaluator{table: table, start: req.From, end: req.To, dist: dist}, nil
}

// Evaluate returns the route and distance for one ordering of the
// intermediate stops.
func (e *Evaluator) Evaluate(perm []string) (Route, error) {
	return Evaluate(perm, e.table, e.start, e.end, e.dist)
}

// Leg is one hop of a route.
type Leg struct {
	From     string
	To       string
	Distance float64 // unrounded
}

// Legs returns the individual hops of stops with their unrounded distances.
func (e *Evaluator) Legs(stops []string) ([]Leg, error) {
	if len(stops) < 2 {
		return nil, nil
	}
	legs := make([]Leg, 0, len(stops)-1)
	prev, err := e.table.Coordinates(stops[0])
	if err != nil {
		return nil, err
	}
	for i := 1; i < len(stops); i++ {
		next, err := e.table.Coordinates(stops[i])
		if err != nil {
			return nil, err
		}
		legs = append(legs, Leg{
			From:     stops[i-1],
			To:       stops[i],
			Distance: e.dist(prev.Lat, prev.Lon, next.Lat, next.Lon),
		})
		prev = next
	}
	return legs, nil
}
