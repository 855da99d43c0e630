package usecase

import "github.com/krypton4149/washnow/internal/pkg/models"

// fallbackCenters is the built-in sample directory used when the backend
// directory cannot be loaded, so a broadcast run can still be demonstrated
// end to end.
func fallbackCenters() []models.ServiceCenter {
	return []models.ServiceCenter{
		{
			ID:         "fallback-1",
			Name:       "Sparkle Auto Spa",
			Address:    "12 Harbour Road",
			DistanceKm: 1.2,
			ServicesOffered: []models.WashService{
				{ID: "basic", Name: "Basic Wash", Price: 15},
				{ID: "premium", Name: "Premium Wash", Price: 30},
			},
		},
		{
			ID:         "fallback-2",
			Name:       "QuickShine Car Wash",
			Address:    "48 Station Street",
			DistanceKm: 2.8,
			ServicesOffered: []models.WashService{
				{ID: "basic", Name: "Basic Wash", Price: 12},
			},
		},
		{
			ID:         "fallback-3",
			Name:       "AquaGleam Detailing",
			Address:    "7 Mill Lane",
			DistanceKm: 4.5,
			ServicesOffered: []models.WashService{
				{ID: "premium", Name: "Premium Wash", Price: 28},
				{ID: "detail", Name: "Full Detail", Price: 75},
			},
		},
	}
}
