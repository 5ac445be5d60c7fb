package config

// Config is the global application config.
type Config struct {
	// LogLevel is the log level for the application
	LogLevel string `conf:"log_level"`

	// LogFormat is the log format for the application.
	// Options: production, development.
	LogFormat string `conf:"log_format"`
}

// DefaultConfig holds the defaults applied before any other
// configuration source.
var DefaultConfig = map[string]any{
	"log_level":  "info",
	"log_format": "production",
}
