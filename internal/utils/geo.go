package utils

import (
	"fmt"
	"math"

	"github.com/krypton4149/washnow/internal/pkg/models"
	"github.com/mmcloughlin/geohash"
)

// EncodeLocation converts a location to a geohash string
func EncodeLocation(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// LocationLabel builds the best-effort "your location" label shown on the
// broadcast screen. With no address it falls back to a short geohash so the
// screen always has something to render.
func LocationLabel(location models.Location) string {
	if location.Address != "" {
		return location.Address
	}
	if location.Latitude == 0 && location.Longitude == 0 {
		return "Unknown location"
	}
	return fmt.Sprintf("Near %s", EncodeLocation(location, 6))
}

// CalculateDistanceKm calculates the distance between two locations in
// kilometers using the Haversine formula
func CalculateDistanceKm(a, b models.Location) float64 {
	const earthRadius = 6371.0

	lat1 := a.Latitude * math.Pi / 180.0
	lon1 := a.Longitude * math.Pi / 180.0
	lat2 := b.Latitude * math.Pi / 180.0
	lon2 := b.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	h := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadius * c
}
