package datastructure

import "math"

const (
	earthRadiusKM = 6371.0
)

// https://scikit-learn.org/stable/modules/generated/sklearn.metrics.pairwise.haversine_distances.html
// sin^2(a/2)
func havFunction(angleRad float64) float64 {
	return math.Pow(math.Sin(angleRad/2.0), 2)
}

func degreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

// HaversineDistance returns the great-circle distance in km. Only used for
// reporting; clustering stays in flat degree space.
func HaversineDistance(a, b Point) float64 {
	latOne := degreeToRadians(a.Lat)
	longOne := degreeToRadians(a.Lon)
	latTwo := degreeToRadians(b.Lat)
	longTwo := degreeToRadians(b.Lon)

	dist := 2.0 * math.Asin(math.Sqrt(havFunction(latOne-latTwo)+math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)))
	return earthRadiusKM * dist
}

// LengthKM sums the haversine length of consecutive segments.
func (p Path) LengthKM() float64 {
	total := 0.0
	for i := 1; i < len(p.Points); i++ {
		total += HaversineDistance(p.Points[i-1], p.Points[i])
	}
	return total
}

// DegreesToMeters approximates a distance in degrees as meters at the equator.
func DegreesToMeters(deg float64) float64 {
	return degreeToRadians(deg) * earthRadiusKM * 1000
}
