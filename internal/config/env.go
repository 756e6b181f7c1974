package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is the prefix for environment variables, e.g. XACT_PORT.
const EnvPrefix = "XACT"

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: XACT_HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: XACT_PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: XACT_DATA_DIR
	// Default: ~/.xact
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: XACT_DB_URL
	// Default: sqlite:///{data_dir}/xact.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: XACT_LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: XACT_LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// Layout is the default timespan layout for output.
	// Env: XACT_LAYOUT (default: c)
	Layout string `envconfig:"LAYOUT" default:"c"`

	// CORSOrigins is a comma-separated list of allowed origins.
	// Env: XACT_CORS_ORIGINS
	CORSOrigins string `envconfig:"CORS_ORIGINS"`

	// APIKeys is a comma-separated list of keys that unlock mutating requests.
	// Env: XACT_API_KEYS
	APIKeys string `envconfig:"API_KEYS"`

	// ShutdownTimeout is the graceful shutdown timeout in seconds.
	// Env: XACT_SHUTDOWN_TIMEOUT (default: 10)
	ShutdownTimeout float64 `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// LoadFromEnv loads configuration from XACT_ prefixed environment variables.
func LoadFromEnv() (EnvConfig, error) {
	return LoadFromEnvWithPrefix(EnvPrefix)
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	var opts []AppConfigOption

	if e.Host != "" {
		opts = append(opts, WithHost(e.Host))
	}
	if e.Port != 0 {
		opts = append(opts, WithPort(e.Port))
	}
	if e.DataDir != "" {
		opts = append(opts, WithDataDir(e.DataDir))
	}
	if e.DBURL != "" {
		opts = append(opts, WithDBURL(e.DBURL))
	}
	if e.LogLevel != "" {
		opts = append(opts, WithLogLevel(e.LogLevel))
	}
	if e.LogFormat != "" {
		opts = append(opts, WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	opts = append(opts,
		WithLayout(e.Layout),
		WithCORSOrigins(ParseList(e.CORSOrigins)),
		WithAPIKeys(ParseList(e.APIKeys)),
		WithShutdownTimeout(time.Duration(e.ShutdownTimeout*float64(time.Second))),
	)

	return NewAppConfigWithOptions(opts...)
}

func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
