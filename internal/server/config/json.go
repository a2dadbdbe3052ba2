package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/todokeeper/internal/flagx"
	"github.com/dmitrijs2005/todokeeper/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Durations are
// timex.Duration so both "10s" and integer nanoseconds are accepted; a
// pointer marks fields where zero is a legal explicit value.
type JsonConfig struct {
	HTTPAddr              string          `json:"http_addr"`
	GRPCAddr              string          `json:"grpc_addr"`
	Storage               string          `json:"storage"`
	DatabaseDSN           string          `json:"database_dsn"`
	MongoDatabase         string          `json:"mongo_database"`
	SecretKey             string          `json:"secret_key"`
	TokenValidityDuration *timex.Duration `json:"token_validity_duration"`
	BcryptCost            int             `json:"bcrypt_cost"`
	CORSAllowedOrigins    string          `json:"cors_allowed_origins"`
	GinMode               string          `json:"gin_mode"`
	LogLevel              string          `json:"log_level"`
	HealthCheckInterval   timex.Duration  `json:"health_check_interval"`
	ShutdownTimeout       timex.Duration  `json:"shutdown_timeout"`
}

// parseJson overlays the file named by -c/-config onto config. Keys absent
// from the file leave the current values alone. Without the flag nothing is
// loaded; an unreadable or malformed file panics.
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

	setString(&config.HTTPAddr, c.HTTPAddr)
	setString(&config.GRPCAddr, c.GRPCAddr)
	setString(&config.Storage, c.Storage)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.MongoDatabase, c.MongoDatabase)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.CORSAllowedOrigins, c.CORSAllowedOrigins)
	setString(&config.GinMode, c.GinMode)
	setString(&config.LogLevel, c.LogLevel)

	if c.TokenValidityDuration != nil {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.BcryptCost != 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.HealthCheckInterval.Duration != 0 {
		config.HealthCheckInterval = c.HealthCheckInterval.Duration
	}
	if c.ShutdownTimeout.Duration != 0 {
		config.ShutdownTimeout = c.ShutdownTimeout.Duration
	}
}
