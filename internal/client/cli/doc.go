// Package cli implements the interactive gophvault command line: a small
// REPL over the vault gRPC client.
package cli
