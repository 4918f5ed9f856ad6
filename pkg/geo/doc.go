// Package geo computes great-circle distances between latitude/longitude
// pairs.
//
// [Haversine] is the single distance primitive: it takes two points in decimal
// degrees and returns kilometres on a sphere of radius [EarthRadiusKm].
// [HaversineMiles] converts with the statute-mile factor [KilometersPerMile].
// A [Unit] selects between the two so callers can pass the distance function
// around as a value.
//
// The functions are pure. Invalid input (NaN, out-of-range degrees) is not
// rejected; it propagates into the result.
package geo
