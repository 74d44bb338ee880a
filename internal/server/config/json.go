package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/hopeconnect/internal/flagx"
	"github.com/dmitrijs2005/hopeconnect/internal/timex"
)

// JsonConfig is the on-disk shape of the optional config file. Durations
// accept both "24h" strings and integer nanoseconds.
type JsonConfig struct {
	EndpointAddrHTTP            string         `json:"endpoint_addr_http"`
	DatabaseDriver              string         `json:"database_driver"`
	DatabaseDSN                 string         `json:"database_dsn"`
	SecretKey                   string         `json:"secret_key"`
	AccessTokenValidityDuration timex.Duration `json:"access_token_validity_duration"`
	AuthHeaderName              string         `json:"auth_header_name"`
	PasswordHashCost            int            `json:"password_hash_cost"`
	LogFormat                   string         `json:"log_format"`
	HTTPReadTimeout             timex.Duration `json:"http_read_timeout"`
	HTTPWriteTimeout            timex.Duration `json:"http_write_timeout"`
	HTTPIdleTimeout             timex.Duration `json:"http_idle_timeout"`
	ShutdownTimeout             timex.Duration `json:"shutdown_timeout"`
}

// parseJson overlays values from the file named by -c/-config. Fields absent
// from the file keep their current values. It panics when the file cannot
// be read or decoded.
func parseJson(config *Config, args []string) {
	path := flagx.ConfigFile(args)
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	setString(&config.EndpointAddrHTTP, c.EndpointAddrHTTP)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.AuthHeaderName, c.AuthHeaderName)
	setString(&config.LogFormat, c.LogFormat)
	if c.PasswordHashCost != 0 {
		config.PasswordHashCost = c.PasswordHashCost
	}
	setDuration(&config.AccessTokenValidityDuration, c.AccessTokenValidityDuration)
	setDuration(&config.HTTPReadTimeout, c.HTTPReadTimeout)
	setDuration(&config.HTTPWriteTimeout, c.HTTPWriteTimeout)
	setDuration(&config.HTTPIdleTimeout, c.HTTPIdleTimeout)
	setDuration(&config.ShutdownTimeout, c.ShutdownTimeout)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v timex.Duration) {
	if v.Duration != 0 {
		*dst = v.Duration
	}
}
