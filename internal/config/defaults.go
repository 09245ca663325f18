package config

// Default configuration values.
const (
	DefaultScriptsDir  = "udfs"
	DefaultManifest    = "functions.yaml"
	DefaultDatabase    = "default"
	DefaultLogLevel    = "info"
	DefaultOutput      = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultConcurrency = 4
)

// Config file names, in lookup order.
const (
	ConfigFileName    = "leapudf.yaml"
	ConfigFileNameAlt = "leapudf.yml"
)

// EnvPrefix is the prefix of environment variables read into the config.
const EnvPrefix = "LEAPUDF_"

func defaults() map[string]any {
	return map[string]any{
		"scripts_dir":      DefaultScriptsDir,
		"manifest":         DefaultManifest,
		"database":         DefaultDatabase,
		"log_level":        DefaultLogLevel,
		"verbose":          false,
		"output":           DefaultOutput,
		"concurrency":      DefaultConcurrency,
		"register_timeout": "0s",
	}
}

// Default returns the configuration used when nothing is loaded.
func Default() *Config {
	return &Config{
		ScriptsDir:   DefaultScriptsDir,
		Manifest:     DefaultManifest,
		Database:     DefaultDatabase,
		LogLevel:     DefaultLogLevel,
		OutputFormat: DefaultOutput,
		Concurrency:  DefaultConcurrency,
	}
}
