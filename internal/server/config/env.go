package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// EnvConfig mirrors Config for environment variables. Unset variables keep
// their zero value and leave the corresponding Config field untouched.
type EnvConfig struct {
	HTTPAddr              string        `env:"TODO_HTTP_ADDR"`
	GRPCAddr              string        `env:"TODO_GRPC_ADDR"`
	Storage               string        `env:"TODO_STORAGE"`
	DatabaseDSN           string        `env:"TODO_DATABASE_DSN"`
	MongoDatabase         string        `env:"TODO_MONGO_DATABASE"`
	SecretKey             string        `env:"TODO_SECRET_KEY"`
	TokenValidityDuration time.Duration `env:"TODO_TOKEN_TTL"`
	BcryptCost            int           `env:"TODO_BCRYPT_COST"`
	CORSAllowedOrigins    string        `env:"TODO_CORS_ORIGINS"`
	GinMode               string        `env:"TODO_GIN_MODE"`
	LogLevel              string        `env:"TODO_LOG_LEVEL"`
	HealthCheckInterval   time.Duration `env:"TODO_HEALTH_INTERVAL"`
	ShutdownTimeout       time.Duration `env:"TODO_SHUTDOWN_TIMEOUT"`
}

// loadDotEnv exports the variables of a .env file that are not already set.
// A missing file is not an error; a malformed one panics.
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return
		}
		panic(err)
	}
}

// parseEnv overlays environment variables onto config.
// Panics if a variable holds a value of the wrong type.
func parseEnv(config *Config) {
	e := &EnvConfig{}
	if err := cleanenv.ReadEnv(e); err != nil {
		panic(err)
	}

	setString(&config.HTTPAddr, e.HTTPAddr)
	setString(&config.GRPCAddr, e.GRPCAddr)
	setString(&config.Storage, e.Storage)
	setString(&config.DatabaseDSN, e.DatabaseDSN)
	setString(&config.MongoDatabase, e.MongoDatabase)
	setString(&config.SecretKey, e.SecretKey)
	setString(&config.CORSAllowedOrigins, e.CORSAllowedOrigins)
	setString(&config.GinMode, e.GinMode)
	setString(&config.LogLevel, e.LogLevel)

	// TTL zero is meaningful ("no expiry"), so presence decides.
	if _, ok := os.LookupEnv("TODO_TOKEN_TTL"); ok {
		config.TokenValidityDuration = e.TokenValidityDuration
	}
	if e.BcryptCost != 0 {
		config.BcryptCost = e.BcryptCost
	}
	if e.HealthCheckInterval != 0 {
		config.HealthCheckInterval = e.HealthCheckInterval
	}
	if e.ShutdownTimeout != 0 {
		config.ShutdownTimeout = e.ShutdownTimeout
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
