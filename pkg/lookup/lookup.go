// Package lookup holds the reference table that maps location identifiers to
// coordinates and metadata.
//
// A [Table] is built once per run from source [Record] values (string-encoded
// fields as they appear in the JSON lookup file) and is read-only afterwards.
// Identifiers are expected to be unique but this is not enforced: lookups
// return the first matching entry.
package lookup

import (
	"strconv"
	"strings"

	"github.com/matzehuels/routeperm/pkg/errors"
	"github.com/matzehuels/routeperm/pkg/geo"
)

// Record is one entry of the source lookup file. All fields are strings,
// including the coordinates.
type Record struct {
	ZipCode        string `json:"zip_code"`
	City           string `json:"city"`
	State          string `json:"state"`
	Latitude       string `json:"latitude"`
	Longitude      string `json:"longitude"`
	Classification string `json:"classification"`
	Population     string `json:"population"`
}

// Location is a parsed lookup entry.
type Location struct {
	ID             string // identifier used in routes (the record's state tag)
	ZipCode        string
	City           string
	Classification string
	Population     string
	Point          geo.Point
}

// Table is an ordered, immutable set of locations.
type Table struct {
	locs  []Location
	index map[string]int
}

// New builds a table from already-parsed locations, preserving their order.
func New(locs []Location) *Table {
	t := &Table{
		locs:  append([]Location(nil), locs...),
		index: make(map[string]int, len(locs)),
	}
	for i, l := range t.locs {
		if _, dup := t.index[l.ID]; !dup {
			t.index[l.ID] = i
		}
	}
	return t
}

// FromRecords parses source records into a table.
// A latitude or longitude that is not a valid decimal yields PARSE_ERROR
// naming the record's position and identifier.
func FromRecords(records []Record) (*Table, error) {
	locs := make([]Location, 0, len(records))
	for i, r := range records {
		lat, err := parseCoord(r.Latitude)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "latitude of record %d (%s)", i, r.State)
		}
		lon, err := parseCoord(r.Longitude)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeParse, err, "longitude of record %d (%s)", i, r.State)
		}
		locs = append(locs, Location{
			ID:             r.State,
			ZipCode:        r.ZipCode,
			City:           r.City,
			Classification: r.Classification,
			Population:     r.Population,
			Point:          geo.Point{Lat: lat, Lon: lon},
		})
	}
	return New(locs), nil
}

func parseCoord(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// Len returns the number of entries, duplicates included.
func (t *Table) Len() int { return len(t.locs) }

// Locations returns a copy of the entries in table order.
func (t *Table) Locations() []Location {
	return append([]Location(nil), t.locs...)
}

// IDs returns the identifiers in table order.
func (t *Table) IDs() []string {
	ids := make([]string, len(t.locs))
	for i, l := range t.locs {
		ids[i] = l.ID
	}
	return ids
}

// Find returns the first location with the given identifier.
func (t *Table) Find(id string) (Location, bool) {
	i, ok := t.index[id]
	if !ok {
		return Location{}, false
	}
	return t.locs[i], true
}

// Get is Find with a LOOKUP_ERROR for unknown identifiers.
func (t *Table) Get(id string) (Location, error) {
	l, ok := t.Find(id)
	if !ok {
		return Location{}, errors.New(errors.ErrCodeLookup, "no location with identifier %q", id)
	}
	return l, nil
}

// Coordinates resolves an identifier to its point.
func (t *Table) Coordinates(id string) (geo.Point, error) {
	l, err := t.Get(id)
	if err != nil {
		return geo.Point{}, err
	}
	return l.Point, nil
}

// Intermediates returns the identifiers to permute for a route from start to
// end: every entry except the two fixed endpoints, in table order.
//
// The result must contain exactly Len()-2 identifiers. Intermediates returns
// LOOKUP_ERROR when start or end is missing, and INVALID_INPUT when start
// equals end or either endpoint appears more than once, since any of those
// would silently change the size of the permutation set.
func (t *Table) Intermediates(start, end string) ([]string, error) {
	if start == end {
		return nil, errors.New(errors.ErrCodeInvalidInput, "start and end are both %q", start)
	}
	if _, err := t.Get(start); err != nil {
		return nil, err
	}
	if _, err := t.Get(end); err != nil {
		return nil, err
	}

	ids := make([]string, 0, max(len(t.locs)-2, 0))
	for _, l := range t.locs {
		if l.ID != start && l.ID != end {
			ids = append(ids, l.ID)
		}
	}

	const reserved = 2 // start and end
	if want := len(t.locs) - reserved; len(ids) != want {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"lookup table has %d entries, so %d intermediate stops were expected, found %d: start or end identifier is duplicated",
			len(t.locs), want, len(ids))
	}
	return ids, nil
}

// Subset returns a table restricted to the given identifiers plus start and
// end, in the original table order. Unknown identifiers yield LOOKUP_ERROR.
// An empty ids list selects every entry.
func (t *Table) Subset(start, end string, ids []string) (*Table, error) {
	if len(ids) == 0 {
		return t, nil
	}
	keep := map[string]bool{start: true, end: true}
	for _, id := range ids {
		if _, err := t.Get(id); err != nil {
			return nil, err
		}
		keep[id] = true
	}

	locs := make([]Location, 0, len(keep))
	for _, l := range t.locs {
		if keep[l.ID] {
			locs = append(locs, l)
		}
	}
	return New(locs), nil
}
