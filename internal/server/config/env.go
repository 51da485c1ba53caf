package config

import (
	"os"
	"strconv"
)

// parseEnv overlays config with the environment variables that are set.
// Malformed numeric or boolean values are ignored.
func parseEnv(config *Config) {
	lookup(&config.DatabaseDSN, "DATABASE_DSN")
	lookup(&config.SecretKey, "JWT_SECRET")
	lookup(&config.MasterKey, "MASTER_KEY")
	lookup(&config.MasterKeyFile, "MASTER_KEY_FILE")
	lookup(&config.Environment, "APP_ENV")
	lookup(&config.LogLevel, "LOG_LEVEL")
	lookup(&config.AuditLogFile, "AUDIT_LOG_FILE")
	lookup(&config.EndpointAddrGRPC, "GRPC_ADDR")
	lookup(&config.MetricsAddr, "METRICS_ADDR")
	lookup(&config.S3RootUser, "S3_ROOT_USER")
	lookup(&config.S3RootPassword, "S3_ROOT_PASSWORD")

	if v, ok := os.LookupEnv("BCRYPT_COST"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.BcryptCost = n
		}
	}
	if v, ok := os.LookupEnv("AUDIT_S3_ENABLED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			config.AuditS3Enabled = b
		}
	}
}

func lookup(dst *string, name string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		*dst = v
	}
}
