package domain

// Stage names a step of the per-platform render pipeline.
type Stage string

const (
	// StageResolve invokes the external resolver.
	StageResolve Stage = "resolve"
	// StageLock renders the pinned lock file.
	StageLock Stage = "lock"
	// StageMetapackage filters and writes the metapackage environment.
	StageMetapackage Stage = "metapackage"
	// StageMaterialize stages the installer directory.
	StageMaterialize Stage = "materialize"
	// StagePatchTemplate patches the NSIS template (Windows only).
	StagePatchTemplate Stage = "patch-template"
)

// VertexName returns the telemetry name of a stage for a platform.
func (s Stage) VertexName(platform Platform) string {
	return string(s) + " " + string(platform)
}

// LogLevel represents the severity of a log message, mirroring the standard slog levels.
type LogLevel int

const (
	// LogLevelDebug represents debug-level verbosity.
	LogLevelDebug LogLevel = -4
	// LogLevelInfo represents informational verbosity.
	LogLevelInfo LogLevel = 0
	// LogLevelWarn represents warning verbosity.
	LogLevelWarn LogLevel = 4
	// LogLevelError represents error verbosity.
	LogLevelError LogLevel = 8
)

// String returns the string representation of the LogLevel.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "INFO"
	}
}
