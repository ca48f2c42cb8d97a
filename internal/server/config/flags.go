package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/salesmatch/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-d string   PostgreSQL DSN, empty for the in-memory store
//	-s string   JWT HMAC secret key
//	-t int      session token validity, minutes
//	-l int      simulated latency of login and list calls, milliseconds
//	-u int      simulated latency of status updates, milliseconds
//	-m string   metrics bind address (e.g., ":9090")
//	-seed path  seed dataset (YAML)
//
// Durations are accepted as integers and converted to time.Duration.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-t", "-l", "-u", "-m", "-seed"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity duration (in minutes)")
	readLatency := fs.Int("l", int(config.ReadLatency.Milliseconds()), "login and list latency (in milliseconds)")
	updateLatency := fs.Int("u", int(config.UpdateLatency.Milliseconds()), "update latency (in milliseconds)")

	fs.StringVar(&config.MetricsAddr, "m", config.MetricsAddr, "metrics endpoint address")
	fs.StringVar(&config.SeedFile, "seed", config.SeedFile, "seed dataset file")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
	config.ReadLatency = time.Duration(*readLatency) * time.Millisecond
	config.UpdateLatency = time.Duration(*updateLatency) * time.Millisecond
}
