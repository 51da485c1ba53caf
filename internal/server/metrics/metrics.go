// Package metrics exposes Prometheus counters for audit events, decryption
// outcomes and access-gate rejections.
package metrics

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/gophvault/internal/server/audit"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	auditEventsTotal  *prometheus.CounterVec
	decryptTotal      *prometheus.CounterVec
	authRejectedTotal *prometheus.CounterVec

	metricsOnce sync.Once
)

// InitMetrics registers all collectors with the default registry. It is
// safe to call more than once.
func InitMetrics() {
	metricsOnce.Do(func() {
		auditEventsTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gophvault_audit_events_total",
				Help: "Total number of audit events by event and outcome",
			},
			[]string{"event", "outcome"},
		)

		decryptTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gophvault_decrypt_total",
				Help: "Total number of secret decryptions by outcome",
			},
			[]string{"outcome"},
		)

		authRejectedTotal = promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gophvault_auth_rejected_total",
				Help: "Total number of requests rejected by the access gate",
			},
			[]string{"reason"},
		)
	})
}

// AuditSink counts audit events. It implements audit.Sink.
type AuditSink struct{}

func NewAuditSink() *AuditSink {
	InitMetrics()
	return &AuditSink{}
}

func (*AuditSink) Record(_ context.Context, e audit.Event) {
	auditEventsTotal.WithLabelValues(e.Event, string(e.Outcome)).Inc()

	switch e.Event {
	case audit.SecretRead:
		decryptTotal.WithLabelValues(string(audit.OutcomeSuccess)).Inc()
	case audit.SecretDecryptFailed:
		decryptTotal.WithLabelValues(string(audit.OutcomeFailure)).Inc()
	}
}

// RecordAuthRejected counts a request rejected for reason ("missing",
// "expired", "invalid").
func RecordAuthRejected(reason string) {
	InitMetrics()
	authRejectedTotal.WithLabelValues(reason).Inc()
}
