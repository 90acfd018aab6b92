package store

import (
	"errors"
	"sync"

	"holohome/internal/models"
)

var (
	ErrRoomNotFound   = errors.New("room not found")
	ErrDeviceNotFound = errors.New("device not found")
)

// AggregateFunc computes the home's total power draw from the room
// collection. Injected so the store stays free of the power rule itself.
type AggregateFunc func(rooms []models.Room) float64

// Store holds the whole in-memory dashboard state: rooms with their devices,
// system status, the active view mode and the selection. Every mutation runs
// under the write lock and finishes with a recompute of the total-power
// cache, so callers always observe a consistent snapshot.
type Store struct {
	mu        sync.RWMutex
	rooms     []models.Room
	status    models.SystemStatus
	view      models.ViewMode
	selection models.Selection
	aggregate AggregateFunc
}

// New builds a store seeded with the given rooms. Status starts disarmed,
// online and idle; the view starts in standard mode; nothing is selected.
func New(rooms []models.Room, aggregate AggregateFunc) *Store {
	s := &Store{
		rooms:     copyRooms(rooms),
		view:      models.ViewStandard,
		aggregate: aggregate,
		status: models.SystemStatus{
			Security:  models.SecurityDisarmed,
			Network:   models.NetworkOnline,
			Assistant: models.AssistantIdle,
		},
	}
	s.status.TotalPowerWatts = s.aggregate(s.rooms)
	return s
}

// Rooms returns a copy of the room collection in display order.
func (s *Store) Rooms() []models.Room {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyRooms(s.rooms)
}

// Room returns a copy of one room by id.
func (s *Store) Room(id string) (models.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.rooms {
		if s.rooms[i].ID == id {
			return copyRoom(s.rooms[i]), nil
		}
	}
	return models.Room{}, ErrRoomNotFound
}

// ToggleLight flips a room's lights and recomputes total power.
func (s *Store) ToggleLight(roomID string) (models.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		if s.rooms[i].ID == roomID {
			s.rooms[i].LightsOn = !s.rooms[i].LightsOn
			s.recompute()
			return copyRoom(s.rooms[i]), nil
		}
	}
	return models.Room{}, ErrRoomNotFound
}

// ToggleDevice flips a device between active and idle and recomputes total
// power. Devices in any non-active state become active; active devices
// become idle. Returns the owning room and the updated device.
func (s *Store) ToggleDevice(deviceID string) (models.Room, models.Device, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		for j := range s.rooms[i].Devices {
			if s.rooms[i].Devices[j].ID != deviceID {
				continue
			}
			d := &s.rooms[i].Devices[j]
			if d.Status == models.DeviceActive {
				d.Status = models.DeviceIdle
			} else {
				d.Status = models.DeviceActive
			}
			s.recompute()
			return copyRoom(s.rooms[i]), *d, nil
		}
	}
	return models.Room{}, models.Device{}, ErrDeviceNotFound
}

// ToggleSecurity flips the security panel between armed and disarmed and
// returns the new status.
func (s *Store) ToggleSecurity() models.SystemStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.status.Security == models.SecurityArmed {
		s.status.Security = models.SecurityDisarmed
	} else {
		s.status.Security = models.SecurityArmed
	}
	return s.status
}

// SetAssistantStatus records the assistant lifecycle state.
func (s *Store) SetAssistantStatus(st models.AssistantStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.status.Assistant = st
}

// Status returns the current system status including the total-power cache.
func (s *Store) Status() models.SystemStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// ViewMode returns the active floor-plan overlay.
func (s *Store) ViewMode() models.ViewMode {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// SetViewMode switches the active overlay.
func (s *Store) SetViewMode(m models.ViewMode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = m
}

// Selection returns the current focus state.
func (s *Store) Selection() models.Selection {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selection
}

// SelectRoom focuses a room and clears any device selection.
func (s *Store) SelectRoom(roomID string) (models.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		if s.rooms[i].ID == roomID {
			s.selection = models.Selection{RoomID: roomID}
			return s.selection, nil
		}
	}
	return s.selection, ErrRoomNotFound
}

// SelectDevice focuses a device and its owning room. The room is resolved
// from the device, so the room selection is never left empty.
func (s *Store) SelectDevice(deviceID string) (models.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.rooms {
		for j := range s.rooms[i].Devices {
			if s.rooms[i].Devices[j].ID == deviceID {
				s.selection = models.Selection{RoomID: s.rooms[i].ID, DeviceID: deviceID}
				return s.selection, nil
			}
		}
	}
	return s.selection, ErrDeviceNotFound
}

// ClearDevice backs out of the device view, keeping the room focused.
func (s *Store) ClearDevice() models.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.DeviceID = ""
	return s.selection
}

// Snapshot returns the dashboard state in one consistent read. The activity
// log lives in the event repository and is attached by the caller.
func (s *Store) Snapshot() models.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.Snapshot{
		Status:    s.status,
		Rooms:     copyRooms(s.rooms),
		View:      s.view,
		Selection: s.selection,
	}
}

// Summary condenses the home for the text-generation collaborator.
func (s *Store) Summary() models.HomeSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sum := models.HomeSummary{
		Security:        s.status.Security,
		Network:         s.status.Network,
		TotalPowerWatts: s.status.TotalPowerWatts,
		Rooms:           make([]models.RoomSummary, 0, len(s.rooms)),
	}
	for _, r := range s.rooms {
		rs := models.RoomSummary{
			Name:       r.Name,
			TempC:      r.TempC,
			PowerWatts: r.PowerWatts,
			LightsOn:   r.LightsOn,
			Devices:    make([]string, 0, len(r.Devices)),
		}
		for _, d := range r.Devices {
			rs.Devices = append(rs.Devices, d.Name+": "+string(d.Status))
		}
		sum.Rooms = append(sum.Rooms, rs)
	}
	return sum
}

// recompute refreshes the total-power cache. Callers must hold the write
// lock.
func (s *Store) recompute() {
	s.status.TotalPowerWatts = s.aggregate(s.rooms)
}

func copyRoom(r models.Room) models.Room {
	out := r
	out.Devices = make([]models.Device, len(r.Devices))
	copy(out.Devices, r.Devices)
	return out
}

func copyRooms(rooms []models.Room) []models.Room {
	out := make([]models.Room, len(rooms))
	for i, r := range rooms {
		out[i] = copyRoom(r)
	}
	return out
}
