package config

const (
	// DefaultPort is the default HTTP server port.
	DefaultPort = "8080"

	// DefaultLogLevel is used when no log level is provided.
	DefaultLogLevel = "info"

	// DefaultLogFormat is used when no log format is provided.
	DefaultLogFormat = "json"

	// DefaultCalendarPath is empty; the built-in calendar is used unless a file is given.
	DefaultCalendarPath = ""
)
