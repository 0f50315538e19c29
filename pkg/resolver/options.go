package resolver

import (
	"github.com/oneconcern/commonfiles/pkg/metrics"
	"go.uber.org/zap"
)

// Option for the resolver
type Option func(*Resolver)

// WithLogger sets the resolver logger
func WithLogger(l *zap.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.l = l
		}
	}
}

// WithMetrics counts resolution outcomes with the default collectors
func WithMetrics(enabled bool) Option {
	return func(r *Resolver) {
		if enabled {
			r.m = metrics.Default()
		} else {
			r.m = nil
		}
	}
}

// WithCollectors counts resolution outcomes with some specific collectors
func WithCollectors(m *metrics.Collectors) Option {
	return func(r *Resolver) {
		r.m = m
	}
}
