package store

import "holohome/internal/models"

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

// Seed returns the mock home the dashboard boots with. There is no real
// hardware behind any of this; values are chosen to look plausible on the
// panels.
func Seed() []models.Room {
	return []models.Room{
		{
			ID: "living-room", Name: "Living Room",
			TempC: 22.5, Humidity: 42, LightsOn: true, PowerWatts: 120, Active: true,
			Devices: []models.Device{
				{ID: "tv-main", Name: "Holo TV", Category: models.CategoryTV, Status: models.DeviceActive, PowerWatts: 180},
				{ID: "speaker-living", Name: "Soundbar", Category: models.CategorySpeaker, Status: models.DeviceIdle, PowerWatts: 35},
				{ID: "cam-living", Name: "Room Camera", Category: models.CategoryCamera, Status: models.DeviceActive, PowerWatts: 8},
			},
		},
		{
			ID: "kitchen", Name: "Kitchen",
			TempC: 23.8, Humidity: 51, LightsOn: false, PowerWatts: 95,
			Devices: []models.Device{
				{ID: "fridge-main", Name: "Fridge", Category: models.CategoryFridge, Status: models.DeviceActive, PowerWatts: 150, TempC: floatPtr(4.0)},
				{ID: "washer-main", Name: "Washer", Category: models.CategoryWasher, Status: models.DeviceIdle, PowerWatts: 500, Progress: intPtr(0)},
			},
		},
		{
			ID: "bedroom", Name: "Bedroom",
			TempC: 21.0, Humidity: 45, LightsOn: false, PowerWatts: 60,
			Devices: []models.Device{
				{ID: "thermostat-bed", Name: "Thermostat", Category: models.CategoryThermostat, Status: models.DeviceActive, PowerWatts: 5, TempC: floatPtr(21.0)},
				{ID: "speaker-bed", Name: "Bedside Speaker", Category: models.CategorySpeaker, Status: models.DeviceIdle, PowerWatts: 20},
			},
		},
		{
			ID: "server-closet", Name: "Server Closet",
			TempC: 27.3, Humidity: 35, LightsOn: false, PowerWatts: 40,
			Devices: []models.Device{
				{ID: "server-rack", Name: "Home Server", Category: models.CategoryServer, Status: models.DeviceActive, PowerWatts: 220, TempC: floatPtr(41.5)},
				{ID: "router-core", Name: "Core Router", Category: models.CategoryRouter, Status: models.DeviceActive, PowerWatts: 25},
			},
		},
	}
}
