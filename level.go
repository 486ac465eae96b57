package pluginlog

import "strings"

// Level is one of the eight standard log severities. Values mirror slog numeric
// semantics where they overlap and extend upwards for critical/alert/emergency.
// LevelUnknown is the explicit default variant for anything unrecognized.
type Level int

const (
	LevelUnknown   Level = -100
	LevelDebug     Level = -4
	LevelInfo      Level = 0
	LevelNotice    Level = 2
	LevelWarning   Level = 4
	LevelError     Level = 8
	LevelCritical  Level = 12
	LevelAlert     Level = 16
	LevelEmergency Level = 20
)

var levelNames = map[Level]string{
	LevelDebug:     "debug",
	LevelInfo:      "info",
	LevelNotice:    "notice",
	LevelWarning:   "warning",
	LevelError:     "error",
	LevelCritical:  "critical",
	LevelAlert:     "alert",
	LevelEmergency: "emergency",
}

// String returns the lower-case standard name, or "unknown".
func (l Level) String() string {
	if s, ok := levelNames[l]; ok {
		return s
	}
	return "unknown"
}

// ParseLevel maps an open level string onto Level. It never fails:
// unrecognized input yields LevelUnknown, which Log routes like info.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "info":
		return LevelInfo
	case "notice":
		return LevelNotice
	case "warning", "warn":
		return LevelWarning
	case "error":
		return LevelError
	case "critical":
		return LevelCritical
	case "alert":
		return LevelAlert
	case "emergency":
		return LevelEmergency
	default:
		return LevelUnknown
	}
}
