package models

import (
	"fmt"
	"strings"
)

// ViewMode selects which overlay the floor-plan visualization renders.
// Exactly one mode is active at a time.
type ViewMode string

const (
	ViewStandard    ViewMode = "standard"
	ViewPower       ViewMode = "power"
	ViewVentilation ViewMode = "ventilation"
	ViewWifi        ViewMode = "wifi"
	ViewWater       ViewMode = "water"
	ViewThermal     ViewMode = "thermal"
)

// ParseViewMode normalizes and validates a mode string.
func ParseViewMode(s string) (ViewMode, error) {
	switch m := ViewMode(strings.ToLower(strings.TrimSpace(s))); m {
	case ViewStandard, ViewPower, ViewVentilation, ViewWifi, ViewWater, ViewThermal:
		return m, nil
	default:
		return "", fmt.Errorf("unknown view mode %q", s)
	}
}
