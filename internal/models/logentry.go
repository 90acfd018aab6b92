package models

import "time"

// LogLevel tags a log entry for display.
type LogLevel string

const (
	LevelInfo    LogLevel = "info"
	LevelWarning LogLevel = "warning"
	LevelError   LogLevel = "error"
	LevelAI      LogLevel = "ai"
)

// LogEntry is a single line in the dashboard activity feed.
type LogEntry struct {
	ID         string    `json:"id"`
	OccurredAt time.Time `json:"occurred_at"`
	Source     string    `json:"source"` // e.g. "user", "assistant", a room name
	Message    string    `json:"message"`
	Level      LogLevel  `json:"level"`
}
