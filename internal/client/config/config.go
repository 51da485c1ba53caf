package config

import "time"

// Config holds runtime settings for the gophvault CLI.
//
// Fields:
//   - ServerEndpointAddr: host:port of the vault gRPC endpoint.
//   - RequestTimeout: deadline applied to each RPC the client issues.
//
// Units: RequestTimeout is a time.Duration (e.g., 10*time.Second). The -r
// flag sets it in whole seconds; the JSON file takes a duration string
// such as "10s".
type Config struct {
	ServerEndpointAddr string
	RequestTimeout     time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig constructs a Config and applies, in order: defaults, the JSON
// file named by -c/-config (if present), then command-line flags (if
// present). Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
