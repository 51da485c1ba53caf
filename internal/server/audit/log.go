package audit

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/dmitrijs2005/gophvault/internal/logging"
)

// LogSink writes each event as one JSON line.
type LogSink struct {
	mu     sync.Mutex
	enc    *json.Encoder
	logger logging.Logger
}

func NewLogSink(w io.Writer, logger logging.Logger) *LogSink {
	return &LogSink{enc: json.NewEncoder(w), logger: logger}
}

func (s *LogSink) Record(ctx context.Context, e Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.enc.Encode(e); err != nil {
		s.logger.Error(ctx, "failed to write audit event", "event", e.Event, "error", err.Error())
	}
}
