// Package common contains shared constants and sentinel errors used across
// gophvault components.
package common

// AuthorizationHeaderName is the gRPC metadata key that carries the session
// token on authenticated requests. gRPC lowercases metadata keys.
const AuthorizationHeaderName = "authorization"

// BearerScheme prefixes the session token inside the authorization header.
const BearerScheme = "Bearer"
