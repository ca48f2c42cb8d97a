package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withArgs(t *testing.T, args ...string) {
	t.Helper()
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })
	os.Args = append([]string{"testbin"}, args...)
}

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "127.0.0.1:50051", c.ServerEndpointAddr)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
	assert.Equal(t, 3*time.Second, c.OnlineCheckInterval)
}

func TestLoadConfig_Precedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.json")
	b, err := json.Marshal(map[string]any{
		"server_endpoint_addr":  "json:1",
		"request_timeout":       "30s",
		"online_check_interval": "1m",
	})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))

	withArgs(t, "-c", path, "-a", "flag:2")

	got := LoadConfig()
	want := &Config{
		ServerEndpointAddr:  "flag:2",
		RequestTimeout:      30 * time.Second,
		OnlineCheckInterval: time.Minute,
	}
	assert.Empty(t, cmp.Diff(want, got))
}

func TestParseFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		expected    *Config
		expectPanic bool
	}{
		{
			name:     "no flags keeps defaults",
			args:     nil,
			expected: &Config{ServerEndpointAddr: "127.0.0.1:50051", RequestTimeout: 10 * time.Second, OnlineCheckInterval: 3 * time.Second},
		},
		{
			name:     "all flags",
			args:     []string{"-a", "example:9000", "-r", "2", "-i", "5"},
			expected: &Config{ServerEndpointAddr: "example:9000", RequestTimeout: 2 * time.Second, OnlineCheckInterval: 5 * time.Second},
		},
		{
			name:        "bad number",
			args:        []string{"-r", "x"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withArgs(t, tt.args...)

			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			assert.Empty(t, cmp.Diff(tt.expected, cfg))
		})
	}
}

func TestParseJson_MalformedPanics(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))
	withArgs(t, "-config", path)

	assert.Panics(t, func() { parseJson(&Config{}) })
}
