package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd",
			"-a", "127.0.0.1:9090", "-m", ":9100", "-d", "db", "-s", "secret", "-t", "30",
			"-k", "/key", "-l", "debug", "-o", "audit.jsonl",
			"-u", "user", "-p", "password", "-b", "bucket", "-g", "us-west-1", "-e", "http://endpoint",
		}, expected: &Config{
			EndpointAddrGRPC:             "127.0.0.1:9090",
			MetricsAddr:                  ":9100",
			DatabaseDSN:                  "db",
			SecretKey:                    "secret",
			SessionTokenValidityDuration: 30 * time.Minute,
			MasterKeyFile:                "/key",
			LogLevel:                     "debug",
			AuditLogFile:                 "audit.jsonl",
			S3RootUser:                   "user",
			S3RootPassword:               "password",
			S3Bucket:                     "bucket",
			S3Region:                     "us-west-1",
			S3BaseEndpoint:               "http://endpoint",
		}},
		{name: "foreign flags are ignored", args: []string{"cmd", "-c", "cfg.json", "-z", "1", "-a", ":1"},
			expected: &Config{EndpointAddrGRPC: ":1"}},
		{name: "bad duration", args: []string{"cmd", "-t", "soon"}, expectPanic: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
