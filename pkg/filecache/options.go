package filecache

import (
	"github.com/oneconcern/commonfiles/pkg/metrics"
	"go.uber.org/zap"
)

const defaultInitialSize = 64

type settings struct {
	l           *zap.Logger
	m           *metrics.Collectors
	withMetrics bool
	initialSize int
}

// Option for the file cache
type Option func(*settings)

func defaultSettings() settings {
	return settings{
		l:           zap.NewNop(),
		initialSize: defaultInitialSize,
	}
}

// WithLogger sets the logger used to report lookup failures
func WithLogger(l *zap.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.l = l
		}
	}
}

// WithMetrics toggles metrics collection, with the default collectors
func WithMetrics(enabled bool) Option {
	return func(s *settings) {
		s.withMetrics = enabled
	}
}

// WithCollectors enables metrics collection with some specific collectors
func WithCollectors(m *metrics.Collectors) Option {
	return func(s *settings) {
		s.m = m
		s.withMetrics = m != nil
	}
}

// WithInitialSize preallocates the cache for some expected number of ids
func WithInitialSize(size int) Option {
	return func(s *settings) {
		if size > 0 {
			s.initialSize = size
		}
	}
}
