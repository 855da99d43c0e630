package utils

import (
	"testing"

	"github.com/krypton4149/washnow/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestLocationLabel(t *testing.T) {
	withAddress := models.Location{Latitude: -6.17, Longitude: 106.82, Address: "Jl. Sudirman 12"}
	assert.Equal(t, "Jl. Sudirman 12", LocationLabel(withAddress))

	noAddress := models.Location{Latitude: -6.175392, Longitude: 106.827153}
	label := LocationLabel(noAddress)
	assert.Contains(t, label, "Near ")

	assert.Equal(t, "Unknown location", LocationLabel(models.Location{}))
}

func TestCalculateDistanceKm(t *testing.T) {
	jakarta := models.Location{Latitude: -6.175392, Longitude: 106.827153}
	bandung := models.Location{Latitude: -6.914744, Longitude: 107.609810}

	distance := CalculateDistanceKm(jakarta, bandung)

	// Roughly 115 km between the two city centers
	assert.InDelta(t, 115, distance, 15)

	assert.Equal(t, float64(0), CalculateDistanceKm(jakarta, jakarta))
}
