package logger

// Log levels accepted in Config.Level.
const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config controls logger construction.
type Config struct {
	// Level is one of Debug, Info, Warning or Error. Anything else means Info.
	Level string `yaml:"level" env:"ZAP_LOGGER_LEVEL"`

	// EnableTracing adds trace and span ids to entries logged with a context.
	EnableTracing bool `yaml:"enable_tracing" env:"LOGGER_ENABLE_TRACING"`

	// ServiceName is attached to every entry.
	ServiceName string `yaml:"service_name" env:"LOGGER_SERVICE_NAME"`
}
