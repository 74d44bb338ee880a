package config

import (
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables recognised by parseEnv.
const (
	EnvAddr            = "HOPE_ADDR"
	EnvDatabaseDriver  = "HOPE_DB_DRIVER"
	EnvDatabaseDSN     = "HOPE_DATABASE_DSN"
	EnvSecretKey       = "HOPE_SECRET_KEY"
	EnvTokenTTL        = "HOPE_TOKEN_TTL"
	EnvAuthHeader      = "HOPE_AUTH_HEADER"
	EnvBcryptCost      = "HOPE_BCRYPT_COST"
	EnvLogFormat       = "HOPE_LOG_FORMAT"
	EnvReadTimeout     = "HOPE_HTTP_READ_TIMEOUT"
	EnvWriteTimeout    = "HOPE_HTTP_WRITE_TIMEOUT"
	EnvIdleTimeout     = "HOPE_HTTP_IDLE_TIMEOUT"
	EnvShutdownTimeout = "HOPE_SHUTDOWN_TIMEOUT"
)

// loadDotEnv exports variables from the given files (".env" by default)
// without overriding ones already set. A missing file is not an error.
func loadDotEnv(paths ...string) {
	_ = godotenv.Load(paths...)
}

// parseEnv overlays values from the environment. Unparsable numbers and
// durations are ignored.
func parseEnv(config *Config, lookup func(string) (string, bool)) {
	get := func(key string) string {
		if v, ok := lookup(key); ok {
			return v
		}
		return ""
	}

	setString(&config.EndpointAddrHTTP, get(EnvAddr))
	setString(&config.DatabaseDriver, get(EnvDatabaseDriver))
	setString(&config.DatabaseDSN, get(EnvDatabaseDSN))
	setString(&config.SecretKey, get(EnvSecretKey))
	setString(&config.AuthHeaderName, get(EnvAuthHeader))
	setString(&config.LogFormat, get(EnvLogFormat))

	if v, err := strconv.Atoi(get(EnvBcryptCost)); err == nil {
		config.PasswordHashCost = v
	}

	envDuration(&config.AccessTokenValidityDuration, get(EnvTokenTTL))
	envDuration(&config.HTTPReadTimeout, get(EnvReadTimeout))
	envDuration(&config.HTTPWriteTimeout, get(EnvWriteTimeout))
	envDuration(&config.HTTPIdleTimeout, get(EnvIdleTimeout))
	envDuration(&config.ShutdownTimeout, get(EnvShutdownTimeout))
}

func envDuration(dst *time.Duration, v string) {
	if v == "" {
		return
	}
	if d, err := time.ParseDuration(v); err == nil {
		*dst = d
	}
}
