package models

// Snapshot is the full dashboard state pushed to clients over the websocket
// and returned by the snapshot endpoint.
type Snapshot struct {
	Status    SystemStatus `json:"status"`
	Rooms     []Room       `json:"rooms"`
	View      ViewMode     `json:"view"`
	Selection Selection    `json:"selection"`
	Log       []LogEntry   `json:"log,omitempty"`
}

// HomeSummary is the serialized form of the home handed to the
// text-generation collaborator alongside a user query.
type HomeSummary struct {
	Security        SecurityMode  `json:"security"`
	Network         NetworkMode   `json:"network"`
	TotalPowerWatts float64       `json:"total_power_watts"`
	Rooms           []RoomSummary `json:"rooms"`
}

// RoomSummary condenses one room for the collaborator prompt.
type RoomSummary struct {
	Name       string   `json:"name"`
	TempC      float64  `json:"temp_c"`
	PowerWatts float64  `json:"power_watts"`
	LightsOn   bool     `json:"lights_on"`
	Devices    []string `json:"devices"` // "Fridge: active"
}
