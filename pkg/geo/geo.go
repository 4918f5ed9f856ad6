package geo

import (
	"fmt"
	"math"
	"strings"

	"github.com/matzehuels/routeperm/pkg/errors"
)

const (
	// EarthRadiusKm is the mean Earth radius used by [Haversine].
	EarthRadiusKm = 6371.0

	// KilometersPerMile converts kilometres to statute miles.
	KilometersPerMile = 1.609344
)

// Point is a latitude/longitude pair in decimal degrees.
type Point struct {
	Lat float64
	Lon float64
}

// String formats the point as "lat,lon".
func (p Point) String() string {
	return fmt.Sprintf("%g,%g", p.Lat, p.Lon)
}

// Haversine returns the great-circle distance in kilometres between
// (lat1, lon1) and (lat2, lon2), all in degrees.
//
// The asin argument is clamped to [0, 1] so that rounding noise near
// antipodal points cannot produce NaN, and identical points give exactly 0.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	phi1 := lat1 * math.Pi / 180
	phi2 := lat2 * math.Pi / 180
	dPhi := (lat2 - lat1) * math.Pi / 180
	dLambda := (lon2 - lon1) * math.Pi / 180

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda

	return 2 * EarthRadiusKm * math.Asin(math.Sqrt(math.Min(1, math.Max(0, a))))
}

// HaversineMiles is [Haversine] expressed in statute miles.
func HaversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	return Haversine(lat1, lon1, lat2, lon2) / KilometersPerMile
}

// Between returns the distance in kilometres between two points.
func Between(a, b Point) float64 {
	return Haversine(a.Lat, a.Lon, b.Lat, b.Lon)
}

// Round1 rounds x to one decimal place, halves away from zero.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Unit is a distance unit.
type Unit string

const (
	Kilometers Unit = "km"
	Miles      Unit = "mi"
)

// DefaultUnit matches the historical route tables, which were in miles.
const DefaultUnit = Miles

// ParseUnit accepts "km", "mi" and their long spellings, case-insensitively.
// An empty string yields [DefaultUnit].
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "":
		return DefaultUnit, nil
	case "km", "kilometer", "kilometers", "kilometre", "kilometres":
		return Kilometers, nil
	case "mi", "mile", "miles":
		return Miles, nil
	}
	return "", errors.New(errors.ErrCodeInvalidUnit, "unknown distance unit %q (must be km or mi)", s)
}

// Func returns the distance function for the unit.
func (u Unit) Func() func(lat1, lon1, lat2, lon2 float64) float64 {
	if u == Kilometers {
		return Haversine
	}
	return HaversineMiles
}

// Distance returns the distance between (lat1, lon1) and (lat2, lon2) in u.
func (u Unit) Distance(lat1, lon1, lat2, lon2 float64) float64 {
	return u.Func()(lat1, lon1, lat2, lon2)
}
