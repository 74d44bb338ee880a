// Package config builds the server configuration from defaults, an optional
// JSON file, environment variables and command-line flags, in that order.
package config

import (
	"os"
	"time"

	"github.com/dmitrijs2005/hopeconnect/internal/cryptox"
)

// Supported database drivers.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite"
)

// Config holds runtime settings for the HopeConnect server.
//
// Fields:
//   - EndpointAddrHTTP: bind address of the JSON API.
//   - DatabaseDriver / DatabaseDSN: "pgx" with a PostgreSQL DSN, or "sqlite"
//     with a modernc.org/sqlite DSN.
//   - SecretKey: HMAC secret for signing JWTs (HS256). When left empty a
//     random key is generated at startup and tokens do not survive restarts.
//   - AccessTokenValidityDuration: fixed token lifetime.
//   - AuthHeaderName: header carrying "Bearer <token>".
//   - PasswordHashCost: bcrypt cost factor.
//   - LogFormat: "json", "text" or "console".
type Config struct {
	EndpointAddrHTTP            string
	DatabaseDriver              string
	DatabaseDSN                 string
	SecretKey                   string
	AccessTokenValidityDuration time.Duration
	AuthHeaderName              string
	PasswordHashCost            int
	LogFormat                   string
	HTTPReadTimeout             time.Duration
	HTTPWriteTimeout            time.Duration
	HTTPIdleTimeout             time.Duration
	ShutdownTimeout             time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.EndpointAddrHTTP = ":5555"
	c.DatabaseDriver = DriverSQLite
	c.DatabaseDSN = "file:hopeconnect.db?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	c.SecretKey = ""
	c.AccessTokenValidityDuration = 24 * time.Hour
	c.AuthHeaderName = "Authorization"
	c.PasswordHashCost = 10
	c.LogFormat = "json"
	c.HTTPReadTimeout = 15 * time.Second
	c.HTTPWriteTimeout = 30 * time.Second
	c.HTTPIdleTimeout = 60 * time.Second
	c.ShutdownTimeout = 10 * time.Second
}

// LoadConfig reads .env, then builds a Config from the process arguments and
// environment. It panics on unreadable config files or malformed flags.
func LoadConfig() *Config {
	loadDotEnv()
	return Load(os.Args[1:], os.LookupEnv)
}

// Load builds a Config from explicit arguments and an environment lookup.
func Load(args []string, lookup func(string) (string, bool)) *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg, args)
	parseEnv(cfg, lookup)
	parseFlags(cfg, args)

	if cfg.SecretKey == "" {
		key, err := cryptox.RandomHex(32)
		if err != nil {
			panic(err)
		}
		cfg.SecretKey = key
	}
	return cfg
}
