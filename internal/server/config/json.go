package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophvault/internal/flagx"
	"github.com/dmitrijs2005/gophvault/internal/timex"
)

// JsonConfig is the on-disk form of Config. Durations accept both strings
// such as "24h" and integer nanoseconds. Absent fields leave the current
// value untouched.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	MetricsAddr                  string         `json:"metrics_addr"`
	DatabaseDSN                  string         `json:"database_dsn"`
	DatabaseMaxConns             int            `json:"database_max_conns"`
	SecretKey                    string         `json:"secret_key"`
	SessionTokenValidityDuration timex.Duration `json:"session_token_validity_duration"`
	MasterKeyFile                string         `json:"master_key_file"`
	BcryptCost                   int            `json:"bcrypt_cost"`
	Environment                  string         `json:"environment"`
	LogLevel                     string         `json:"log_level"`
	AuditLogFile                 string         `json:"audit_log_file"`
	AuditS3Enabled               *bool          `json:"audit_s3_enabled"`
	AuditFlushInterval           timex.Duration `json:"audit_flush_interval"`
	S3RootUser                   string         `json:"s3_root_user"`
	S3RootPassword               string         `json:"s3_root_password"`
	S3Bucket                     string         `json:"s3_bucket"`
	S3Region                     string         `json:"s3_region"`
	S3BaseEndpoint               string         `json:"s3_base_endpoint"`
}

// parseJson loads the file named by -c / -config, if any, over config.
// An unreadable or malformed file panics.
func parseJson(config *Config) {

	// try flags
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.MetricsAddr, c.MetricsAddr)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.MasterKeyFile, c.MasterKeyFile)
	setString(&config.Environment, c.Environment)
	setString(&config.LogLevel, c.LogLevel)
	setString(&config.AuditLogFile, c.AuditLogFile)
	setString(&config.S3RootUser, c.S3RootUser)
	setString(&config.S3RootPassword, c.S3RootPassword)
	setString(&config.S3Bucket, c.S3Bucket)
	setString(&config.S3Region, c.S3Region)
	setString(&config.S3BaseEndpoint, c.S3BaseEndpoint)

	if c.DatabaseMaxConns > 0 {
		config.DatabaseMaxConns = c.DatabaseMaxConns
	}
	if c.BcryptCost > 0 {
		config.BcryptCost = c.BcryptCost
	}
	if c.SessionTokenValidityDuration.Duration > 0 {
		config.SessionTokenValidityDuration = c.SessionTokenValidityDuration.Duration
	}
	if c.AuditFlushInterval.Duration > 0 {
		config.AuditFlushInterval = c.AuditFlushInterval.Duration
	}
	if c.AuditS3Enabled != nil {
		config.AuditS3Enabled = *c.AuditS3Enabled
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
