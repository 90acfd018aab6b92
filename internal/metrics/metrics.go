// Package metrics exposes the dashboard's Prometheus instrumentation. All
// methods are safe on a nil receiver so tests can skip wiring a registry.
package metrics

import "github.com/prometheus/client_golang/prometheus"

type Metrics struct {
	totalPowerWatts   prometheus.Gauge
	lightToggles      prometheus.Counter
	deviceToggles     prometheus.Counter
	commandsTotal     prometheus.Counter
	assistantFailures prometheus.Counter
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		totalPowerWatts: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "holohome_total_power_watts",
			Help: "Aggregate power draw of all rooms and devices (W)",
		}),
		lightToggles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "holohome_light_toggles_total",
			Help: "Room light toggles processed",
		}),
		deviceToggles: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "holohome_device_toggles_total",
			Help: "Device toggles processed",
		}),
		commandsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "holohome_assistant_commands_total",
			Help: "Free-text commands accepted by the assistant",
		}),
		assistantFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "holohome_assistant_failures_total",
			Help: "Text-generation calls that fell back to the canned error reply",
		}),
	}
	reg.MustRegister(
		m.totalPowerWatts,
		m.lightToggles,
		m.deviceToggles,
		m.commandsTotal,
		m.assistantFailures,
	)
	return m
}

func (m *Metrics) SetTotalPower(watts float64) {
	if m == nil {
		return
	}
	m.totalPowerWatts.Set(watts)
}

func (m *Metrics) IncLightToggles() {
	if m == nil {
		return
	}
	m.lightToggles.Inc()
}

func (m *Metrics) IncDeviceToggles() {
	if m == nil {
		return
	}
	m.deviceToggles.Inc()
}

func (m *Metrics) IncCommands() {
	if m == nil {
		return
	}
	m.commandsTotal.Inc()
}

func (m *Metrics) IncAssistantFailures() {
	if m == nil {
		return
	}
	m.assistantFailures.Inc()
}
