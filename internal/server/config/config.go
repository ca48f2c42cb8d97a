// Package config handles configuration for the backing store server,
// including defaults, JSON overlay, and command-line flags.
package config

import "time"

// Config holds runtime settings for the SalesMatch server.
//
// Fields:
//   - EndpointAddrGRPC: bind address for the gRPC endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty keeps the dataset in memory.
//   - SecretKey: HMAC secret for signing session tokens (HS256).
//   - TokenValidityDuration: session token lifetime.
//   - ReadLatency / UpdateLatency: simulated network delay per call.
//   - MetricsAddr: bind address of the /metrics endpoint; empty disables it.
//   - SeedFile: YAML dataset restored on logout; empty uses the built-in one.
type Config struct {
	EndpointAddrGRPC      string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	ReadLatency           time.Duration
	UpdateLatency         time.Duration
	MetricsAddr           string
	SeedFile              string
}

// LoadDefaults populates Config with development defaults.
// NOTE: the secret key must be overridden outside of a demo.
func (c *Config) LoadDefaults() {
	c.EndpointAddrGRPC = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.ReadLatency = 800 * time.Millisecond
	c.UpdateLatency = 600 * time.Millisecond
	c.MetricsAddr = ""
	c.SeedFile = ""
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
