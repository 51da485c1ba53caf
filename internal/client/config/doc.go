// Package config handles configuration for the client component,
// including defaults, JSON overlay, and command-line flags.
package config
