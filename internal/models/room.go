package models

// Room is a named zone owning zero or more devices and ambient readings.
type Room struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	TempC      float64  `json:"temp_c"`
	Humidity   float64  `json:"humidity"`    // percent
	LightsOn   bool     `json:"lights_on"`
	PowerWatts float64  `json:"power_watts"` // baseline draw with lights on
	Active     bool     `json:"active"`
	Devices    []Device `json:"devices"`     // insertion order is display order
}
