package models

// DeviceCategory identifies the kind of appliance a device represents.
type DeviceCategory string

const (
	CategoryWasher     DeviceCategory = "washer"
	CategoryFridge     DeviceCategory = "fridge"
	CategoryTV         DeviceCategory = "tv"
	CategoryServer     DeviceCategory = "server"
	CategoryRouter     DeviceCategory = "router"
	CategorySpeaker    DeviceCategory = "speaker"
	CategoryCamera     DeviceCategory = "camera"
	CategoryThermostat DeviceCategory = "thermostat"
)

// DeviceStatus is the operational state of a device.
//
// DeviceOff and DeviceError are part of the status palette the dashboard can
// render, but no transition here ever produces them; toggles only move a
// device between idle and active.
type DeviceStatus string

const (
	DeviceOff    DeviceStatus = "off"
	DeviceIdle   DeviceStatus = "idle"
	DeviceActive DeviceStatus = "active"
	DeviceError  DeviceStatus = "error"
)

// Device is a controllable unit owned by exactly one room.
type Device struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Category   DeviceCategory `json:"category"`
	Status     DeviceStatus   `json:"status"`
	PowerWatts float64        `json:"power_watts"`        // draw when active, >= 0
	Progress   *int           `json:"progress,omitempty"` // 0-100, e.g. wash cycle
	TempC      *float64       `json:"temp_c,omitempty"`   // internal temperature
}
