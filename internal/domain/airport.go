package domain

// A named ground station used to drive example computations.
// Lat and Lon are in degrees as found in source CSV files; Position
// converts to the internal radian representation.
type Airport struct {
	Code string  `csv:"code"`
	Name string  `csv:"name"`
	Lat  float64 `csv:"lat"`
	Lon  float64 `csv:"lon"`
}

func (a Airport) Position() Coordinate {
	return NewCoordinate(a.Lat, a.Lon)
}
