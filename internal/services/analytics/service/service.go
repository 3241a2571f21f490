// Package service contains the analytics sink
package service

import (
	"context"
	"encoding/json"
	"time"

	"gitwrapped/internal/modkit/scope"
	"gitwrapped/internal/platform/logger"
	"gitwrapped/internal/platform/store"
	"gitwrapped/internal/services/analytics/domain"
)

const table = "analytics_events"

// Service defines the service contract for analytics
type Service interface{ domain.TrackerPort }

// Svc writes events to ClickHouse. A nil sink degrades to a logging no-op
// so callers never have to care whether analytics is configured
type Svc struct {
	ch  store.Clickhouse
	log logger.Logger
	now func() time.Time
}

// New creates the analytics sink
func New(ch store.Clickhouse, log logger.Logger) *Svc {
	return &Svc{ch: ch, log: log, now: time.Now}
}

// Track records one event. Failures are logged and swallowed
func (s *Svc) Track(ctx context.Context, ev domain.Event) {
	if s == nil || s.ch == nil {
		return
	}

	at := ev.At
	if at.IsZero() {
		at = s.now().UTC()
	}

	fields := make(map[string]any, len(ev.Metadata)+1)
	// request scoped attributes ride along; explicit metadata wins on clash
	for k, v := range scope.From(ctx).Values {
		fields[k] = v
	}
	for k, v := range ev.Metadata {
		fields[k] = v
	}

	meta := "{}"
	if len(fields) > 0 {
		if b, err := json.Marshal(fields); err == nil {
			meta = string(b)
		} else {
			s.log.Warn().Err(err).Str("event", ev.Name).Msg("analytics metadata not serializable")
		}
	}

	rows := [][]any{{at, ev.Name, ev.Username, meta}}
	if err := s.ch.Insert(ctx, table, rows); err != nil {
		s.log.Warn().Err(err).Str("event", ev.Name).Msg("analytics insert failed")
	}
}
