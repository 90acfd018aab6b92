package service

import "holohome/internal/models"

// Power rule constants. A room with its lights off is charged a flat idle
// baseline regardless of its configured draw; the same applies to any device
// that is not active.
const (
	RoomIdleWatts   = 5.0
	DeviceIdleWatts = 2.0
)

// TotalPower computes the aggregate wattage of the whole home: per room the
// baseline draw when lights are on (else the room idle baseline), plus per
// device the full draw when active (else the device idle baseline). Pure
// function; recomputed in full on every mutation.
func TotalPower(rooms []models.Room) float64 {
	var total float64
	for _, r := range rooms {
		if r.LightsOn {
			total += r.PowerWatts
		} else {
			total += RoomIdleWatts
		}
		for _, d := range r.Devices {
			if d.Status == models.DeviceActive {
				total += d.PowerWatts
			} else {
				total += DeviceIdleWatts
			}
		}
	}
	return total
}
