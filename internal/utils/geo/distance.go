// Package geo provides haversine distance and walk-time estimation used by
// the restaurant search ranking.
package geo

import (
	"fmt"
	"math"
)

const (
	EarthRadiusMeters      = 6371000
	AverageWalkingSpeedKmh = 5
)

// CalculateDistance returns the great-circle distance between two
// coordinates in whole meters.
func CalculateDistance(lat1, lon1, lat2, lon2 float64) int {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return int(math.Round(EarthRadiusMeters * c))
}

func CalculateDistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	return float64(CalculateDistance(lat1, lon1, lat2, lon2)) / 1000
}

// EstimateWalkTime returns the walking time between two coordinates in
// minutes, at the average walking speed of 5 km/h.
func EstimateWalkTime(lat1, lon1, lat2, lon2 float64) int {
	return EstimateWalkTimeAtSpeed(lat1, lon1, lat2, lon2, AverageWalkingSpeedKmh)
}

func EstimateWalkTimeAtSpeed(lat1, lon1, lat2, lon2, walkingSpeedKmh float64) int {
	distanceKm := CalculateDistanceKm(lat1, lon1, lat2, lon2)
	timeHours := distanceKm / walkingSpeedKmh
	return int(math.Round(timeHours * 60))
}

// FormatDistance renders meters as "500 m" or "1.2 km".
func FormatDistance(distanceMeters int) string {
	if distanceMeters < 1000 {
		return fmt.Sprintf("%d m", distanceMeters)
	}
	return fmt.Sprintf("%.1f km", float64(distanceMeters)/1000)
}

// FormatWalkTime renders minutes as "5 min" or "1 hr 15 min".
func FormatWalkTime(minutes int) string {
	if minutes < 60 {
		return fmt.Sprintf("%d min", minutes)
	}
	hours := minutes / 60
	remaining := minutes % 60
	if remaining == 0 {
		return fmt.Sprintf("%d hr", hours)
	}
	return fmt.Sprintf("%d hr %d min", hours, remaining)
}

func IsWithinRadius(centerLat, centerLon, pointLat, pointLon float64, radiusMeters int) bool {
	return CalculateDistance(centerLat, centerLon, pointLat, pointLon) <= radiusMeters
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
