package models

// SecurityMode is the state of the home security panel. SecurityBreach is
// renderable but never produced by any transition; toggling only moves
// between armed and disarmed.
type SecurityMode string

const (
	SecurityArmed    SecurityMode = "armed"
	SecurityDisarmed SecurityMode = "disarmed"
	SecurityBreach   SecurityMode = "breach"
)

// NetworkMode reports connectivity of the (mock) home network.
type NetworkMode string

const (
	NetworkOnline  NetworkMode = "online"
	NetworkOffline NetworkMode = "offline"
)

// AssistantStatus gates command submission while a text-generation request
// is outstanding: only one command may be in flight at a time.
type AssistantStatus string

const (
	AssistantIdle       AssistantStatus = "idle"
	AssistantAnalyzing  AssistantStatus = "analyzing"
	AssistantGenerating AssistantStatus = "generating"
)

// SystemStatus is the single process-wide status record. TotalPowerWatts is
// a cache of the aggregate power rule and is recomputed on every mutation of
// room or device state.
type SystemStatus struct {
	Security        SecurityMode    `json:"security"`
	Network         NetworkMode     `json:"network"`
	Assistant       AssistantStatus `json:"assistant"`
	TotalPowerWatts float64         `json:"total_power_watts"`
}
