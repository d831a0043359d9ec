package health

import (
	"context"
	"time"
)

const defaultTimeout = 2 * time.Second

// Pinger reports whether a backing store is reachable.
type Pinger func(ctx context.Context) error

// Report is the readiness payload.
type Report struct {
	OK    bool   `json:"ok"`
	Store string `json:"store"`
	Error string `json:"error,omitempty"`
}

// Service encapsulates health-related checks.
type Service struct {
	Store   string
	Ping    Pinger
	Timeout time.Duration
}

// NewService constructs a health service for the named store. A nil ping means
// the store is in-process and always reachable.
func NewService(store string, ping Pinger) *Service {
	return &Service{Store: store, Ping: ping, Timeout: defaultTimeout}
}

// Status pings the configured store and reports the result.
func (s *Service) Status(ctx context.Context) Report {
	if s == nil {
		return Report{OK: true}
	}
	report := Report{OK: true, Store: s.Store}
	if s.Ping == nil {
		return report
	}
	timeout := s.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := s.Ping(ctx); err != nil {
		report.OK = false
		report.Error = err.Error()
	}
	return report
}
