package models

// Selection is the dashboard's focus state. An empty string means nothing is
// selected at that level. DeviceID is never set without RoomID.
type Selection struct {
	RoomID   string `json:"room_id,omitempty"`
	DeviceID string `json:"device_id,omitempty"`
}
