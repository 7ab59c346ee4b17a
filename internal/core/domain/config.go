package domain

// LogLevel names the minimum level the logger emits.
type LogLevel string

const (
	// LogDebug emits everything, including per-artifact load traces.
	LogDebug LogLevel = "debug"
	// LogInfo is the default level.
	LogInfo LogLevel = "info"
	// LogWarn only emits warnings and errors.
	LogWarn LogLevel = "warn"
	// LogError only emits errors.
	LogError LogLevel = "error"
)

// DefaultFlushConcurrency bounds how many sheets are flushed or verified at once.
const DefaultFlushConcurrency = 4

// Config is the resolved scorebook configuration.
type Config struct {
	// Book is the root directory of the book.
	Book string
	// LogJSON switches the logger to JSON output.
	LogJSON bool
	// LogLevel is the minimum emitted level.
	LogLevel LogLevel
	// FlushConcurrency bounds parallel sheet flushes and verifications.
	FlushConcurrency int
	// Path is the config file the values came from, empty for defaults.
	Path string
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Book:             DefaultBookDir,
		LogLevel:         LogInfo,
		FlushConcurrency: DefaultFlushConcurrency,
	}
}
