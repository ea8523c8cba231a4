package renderer

import (
	"github.com/charmbracelet/log"

	"gl-scene/core"
)

// DebugSeverity is the driver's rating of a debug-output message.
type DebugSeverity int

const (
	SeverityNotification DebugSeverity = iota
	SeverityLow
	SeverityMedium
	SeverityHigh
)

func (s DebugSeverity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	}
	return "notification"
}

// LogLevel maps a severity to the level it is logged at. Notifications are
// not logged.
func (s DebugSeverity) LogLevel() (log.Level, bool) {
	switch s {
	case SeverityHigh:
		return log.ErrorLevel, true
	case SeverityMedium:
		return log.WarnLevel, true
	case SeverityLow:
		return log.InfoLevel, true
	}
	return log.DebugLevel, false
}

// DriverMessage is one message from the driver's debug output.
type DriverMessage struct {
	Source   string
	Type     string
	ID       uint32
	Severity DebugSeverity
	Text     string
}

// LogDriverMessage logs m by severity. Rendering continues whatever the
// severity.
func LogDriverMessage(m DriverMessage) {
	level, ok := m.Severity.LogLevel()
	if !ok {
		return
	}
	core.Logger().Log(level, m.Text,
		"source", m.Source,
		"type", m.Type,
		"id", m.ID,
		"severity", m.Severity,
	)
}
