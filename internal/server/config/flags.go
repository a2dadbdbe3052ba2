package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/todokeeper/internal/flagx"
)

// parseFlags overlays command-line flags onto config.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g. ":3000")
//	-g string   gRPC health bind address (e.g. ":50051")
//	-b string   storage backend: postgres, mongo, memory
//	-d string   database DSN / mongo URI
//	-m string   mongo database name
//	-s string   token signing secret
//	-t int      token validity in minutes, 0 disables expiry
//	-k int      bcrypt cost
//	-l string   log level
//
// Arguments are filtered with flagx.FilterArgs first, so flags owned by
// other parsers (-c) do not cause errors here. Parse errors panic.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-b", "-d", "-m", "-s", "-t", "-k", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.HTTPAddr, "a", config.HTTPAddr, "address and port to run the HTTP server")
	fs.StringVar(&config.GRPCAddr, "g", config.GRPCAddr, "address and port to run the gRPC health server")
	fs.StringVar(&config.Storage, "b", config.Storage, "storage backend (postgres, mongo, memory)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.MongoDatabase, "m", config.MongoDatabase, "mongo database name")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")
	ttl := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes, 0 = until logout)")
	fs.IntVar(&config.BcryptCost, "k", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "t" {
			config.TokenValidityDuration = time.Duration(*ttl) * time.Minute
		}
	})
}
