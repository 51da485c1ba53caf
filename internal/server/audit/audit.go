// Package audit records security-relevant events: account activity and
// every operation on a secret record, successful or not.
package audit

import (
	"context"
	"time"
)

// Event names.
const (
	UserRegistered      = "user_registered"
	LoginSuccess        = "login_success"
	LoginFailed         = "login_failed"
	PasswordChanged     = "password_changed"
	SecretCreated       = "secret_created"
	SecretRead          = "secret_read"
	SecretDecryptFailed = "secret_decrypt_failed"
	SecretUpdated       = "secret_updated"
	SecretDeleted       = "secret_deleted"
)

type Outcome string

const (
	OutcomeSuccess Outcome = "success"
	OutcomeFailure Outcome = "failure"
)

// Event is one audit record. It never carries secret values, notes,
// passwords or tokens.
type Event struct {
	Event     string    `json:"event"`
	Actor     string    `json:"actor,omitempty"`
	Username  string    `json:"username,omitempty"`
	RecordID  string    `json:"recordId,omitempty"`
	Outcome   Outcome   `json:"outcome"`
	Reason    string    `json:"reason,omitempty"`
	Peer      string    `json:"peer,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Sink receives audit events. Record must not block on slow storage for
// longer than it takes to buffer the event.
type Sink interface {
	Record(ctx context.Context, e Event)
}

// Nop discards events.
type Nop struct{}

func (Nop) Record(context.Context, Event) {}

// Multi fans an event out to every sink in order.
type Multi []Sink

func (m Multi) Record(ctx context.Context, e Event) {
	for _, s := range m {
		s.Record(ctx, e)
	}
}

type peerKey struct{}

// WithPeer returns a copy of ctx carrying the caller's network address.
func WithPeer(ctx context.Context, addr string) context.Context {
	return context.WithValue(ctx, peerKey{}, addr)
}

// PeerFromContext returns the address stored by WithPeer, or "".
func PeerFromContext(ctx context.Context) string {
	addr, _ := ctx.Value(peerKey{}).(string)
	return addr
}
