package autodraw

import (
	"log/slog"
	"time"

	"github.com/askiada/go-autodraw/internal/store"
	"github.com/askiada/go-autodraw/pkg/autodraw/measure"
)

// DefaultFetchTimeout bounds every fetch on top of the caller's context.
const DefaultFetchTimeout = 20 * time.Second

type Option func(s *Synchronizer)

// WithFetchTimeout bounds each fetch. A non positive value disables the bound.
func WithFetchTimeout(timeout time.Duration) Option {
	return func(s *Synchronizer) {
		s.fetchTimeout = timeout
	}
}

// WithMeasure records the duration and outcome of every fetch.
func WithMeasure(m measure.Measure) Option {
	return func(s *Synchronizer) {
		s.measure = m
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Synchronizer) {
		s.logger = logger
	}
}

// WithStore replaces the in-memory baseline store.
func WithStore(st store.ProjectStore) Option {
	return func(s *Synchronizer) {
		s.store = st
	}
}
