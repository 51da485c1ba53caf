// Package client is the gRPC client of the vault service. It keeps the
// session token in memory, attaches it to every call and maps status
// codes to the errors the CLI reports.
package client
