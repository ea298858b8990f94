package domain

import "math"

// Immutable geographic point. Latitude and longitude are held in radians;
// construct from degrees with NewCoordinate.
type Coordinate struct {
	Lat float64
	Lon float64
}

// Build a Coordinate from latitude and longitude given in degrees.
// No range checks are applied: values outside [-90,90]/[-180,180] are
// accepted and yield a mathematically well-defined point, even when it is
// geographically meaningless.
func NewCoordinate(latDegrees, lonDegrees float64) Coordinate {
	return Coordinate{
		Lat: latDegrees * math.Pi / 180,
		Lon: lonDegrees * math.Pi / 180,
	}
}
