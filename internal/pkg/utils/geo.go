package utils

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
)

// CrowDistanceKm - расстояние по прямой между двумя точками в градусах lng/lat, км
func CrowDistanceKm(fromLng, fromLat, toLng, toLat float64) float64 {
	return geo.DistanceHaversine(orb.Point{fromLng, fromLat}, orb.Point{toLng, toLat}) / 1000
}

// ValidateCoordinates проверяет валидность координат
func ValidateCoordinates(lat, lon float64) bool {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return false
	}
	return lat >= -90 && lat <= 90 && lon >= -180 && lon <= 180
}

// ValidateBound проверяет, что углы прямоугольника валидны и min не больше max
func ValidateBound(minLng, minLat, maxLng, maxLat float64) bool {
	return ValidateCoordinates(minLat, minLng) &&
		ValidateCoordinates(maxLat, maxLng) &&
		minLng <= maxLng && minLat <= maxLat
}
