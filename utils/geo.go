package utils

import "math"

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// CalculateDistance returns the great-circle distance in kilometres between
// two coordinates, rounded to 2 decimal places. The asin-of-sqrt form is used
// rather than arccosine so the result stays numerically stable for very small
// separations.
func CalculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	rLat1 := degreesToRadians(lat1)
	rLat2 := degreesToRadians(lat2)
	dLat := degreesToRadians(lat2 - lat1)
	dLon := degreesToRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return Round2(earthRadiusKm * c)
}

// CalculateFare derives the trip fare from a distance in kilometres.
// A zero-distance trip still pays the base fare.
func CalculateFare(distanceKm float64) float64 {
	return Round2(BaseFare + distanceKm*PerKmRate)
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
