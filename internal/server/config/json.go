package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/salesmatch/internal/flagx"
	"github.com/dmitrijs2005/salesmatch/internal/timex"
)

// JsonConfig is the on-disk shape of the server config. Durations may be
// strings ("800ms") or integer nanoseconds.
type JsonConfig struct {
	EndpointAddrGRPC      string         `json:"endpoint_addr_grpc"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	ReadLatency           timex.Duration `json:"read_latency"`
	UpdateLatency         timex.Duration `json:"update_latency"`
	MetricsAddr           string         `json:"metrics_addr"`
	SeedFile              string         `json:"seed_file"`
}

// parseJson overlays values from the file named by -c/-config. Keys absent
// from the file keep their current value. Unreadable or malformed files panic.
func parseJson(config *Config) {
	path := flagx.ConfigPath()
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

	if c.EndpointAddrGRPC != "" {
		config.EndpointAddrGRPC = c.EndpointAddrGRPC
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = c.TokenValidityDuration.Duration
	}
	if c.ReadLatency.Duration != 0 {
		config.ReadLatency = c.ReadLatency.Duration
	}
	if c.UpdateLatency.Duration != 0 {
		config.UpdateLatency = c.UpdateLatency.Duration
	}
	if c.MetricsAddr != "" {
		config.MetricsAddr = c.MetricsAddr
	}
	if c.SeedFile != "" {
		config.SeedFile = c.SeedFile
	}
}
