package config

// Environment variables read by Resolve.
const (
	EnvLogLevel  = "CRULER_LOG_LEVEL"
	EnvLogFormat = "CRULER_LOG_FORMAT"
	EnvRules     = "CRULER_RULES"
)

// Config is the effective tool configuration after merging defaults, the
// config file and the environment.
type Config struct {
	LogLevel  string
	LogFormat string
	RulesPath string
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Resolve layers file (may be nil) and then environment values read through
// getenv on top of the defaults. Empty values never override.
func Resolve(file *FileConfig, getenv func(string) string) Config {
	cfg := Default()

	if file != nil {
		cfg.LogLevel = firstNonEmpty(file.Log.Level, cfg.LogLevel)
		cfg.LogFormat = firstNonEmpty(file.Log.Format, cfg.LogFormat)
		cfg.RulesPath = firstNonEmpty(file.Rules, cfg.RulesPath)
	}

	if getenv != nil {
		cfg.LogLevel = firstNonEmpty(getenv(EnvLogLevel), cfg.LogLevel)
		cfg.LogFormat = firstNonEmpty(getenv(EnvLogFormat), cfg.LogFormat)
		cfg.RulesPath = firstNonEmpty(getenv(EnvRules), cfg.RulesPath)
	}

	return cfg
}

func firstNonEmpty(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
