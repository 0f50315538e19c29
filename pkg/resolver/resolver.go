// Package resolver decides which file record of the open case represents
// each instance of some content found by a common files search.
//
// Given the candidates already known to be backed by a record of the open case,
// an instance is either matched against one of them (same data source, same case, same path),
// or becomes a reference to a cross-case instance, backed by an arbitrary identical local record.
package resolver

import (
	"context"
	"iter"

	"github.com/oneconcern/commonfiles/pkg/filecache"
	"github.com/oneconcern/commonfiles/pkg/metrics"
	"github.com/oneconcern/commonfiles/pkg/model"
	"github.com/oneconcern/commonfiles/pkg/resolver/status"
	"go.uber.org/zap"
)

// Resolver of identical instances, for the open case.
//
// A Resolver is as safe for concurrent use as the cache it uses.
type Resolver struct {
	openCase string
	cache    filecache.Cache
	l        *zap.Logger
	m        *metrics.Collectors
}

// New resolver for instances against the open case named openCase.
func New(openCase string, cache filecache.Cache, opts ...Option) *Resolver {
	r := &Resolver{
		openCase: openCase,
		cache:    cache,
		l:        zap.NewNop(),
	}
	for _, apply := range opts {
		apply(r)
	}
	return r
}

// OpenCase is the display name of the case candidates belong to
func (r *Resolver) OpenCase() string {
	return r.openCase
}

// Resolve an instance against candidates, scanned in order.
//
// The first candidate matching the instance is reused. Otherwise, the instance resolves as a
// cross-case reference, with the last candidate record found as fallback.
//
// Candidates whose record cannot be found are skipped. When no candidate could be found,
// Resolve fails with status.ErrResolution.
func (r *Resolver) Resolve(ctx context.Context, candidates iter.Seq[model.Candidate], instance model.InstanceDescriptor) (model.ResolvedInstance, error) {
	var (
		fallback    model.FileRecordID
		hasFallback bool
	)

	instanceDataSource := model.NormalizeName(instance.DataSource)
	instanceCase := model.NormalizeName(instance.Case)
	instancePath := model.NormalizePath(instance.FilePath)
	referenceCase := model.NormalizeName(r.openCase)

	for candidate := range candidates {
		record := r.cache.Get(ctx, candidate.RecordID())
		if record == nil {
			r.l.Debug("skipped candidate without record",
				zap.Stringer("obj_id", candidate.RecordID()),
				zap.Stringer("instance", instance),
			)
			continue
		}
		fallback, hasFallback = record.ID, true

		sameDataSource := model.NormalizeName(candidate.DataSourceName()) == instanceDataSource
		sameCase := referenceCase == instanceCase
		samePathAndName := model.NormalizePath(record.FullPath()) == instancePath

		if sameDataSource && sameCase && samePathAndName {
			r.count(model.KindLocal)
			return model.ResolvedInstance{
				Kind:       model.KindLocal,
				ID:         record.ID,
				Label:      model.DataSourceLabel(r.openCase, candidate.DataSourceName()),
				DataSource: candidate.DataSourceName(),
			}, nil
		}
	}

	if !hasFallback {
		r.count(0)
		return model.ResolvedInstance{}, status.ErrResolution.Wrapf("instance %v", instance)
	}

	resolved := instance
	r.count(model.KindCrossCase)
	return model.ResolvedInstance{
		Kind:       model.KindCrossCase,
		ID:         fallback,
		Label:      model.DataSourceLabel(instance.Case, instance.DataSource),
		DataSource: instance.DataSource,
		Instance:   &resolved,
	}, nil
}

func (r *Resolver) count(kind model.InstanceKind) {
	if r.m == nil {
		return
	}
	outcome := "failed"
	if kind != 0 {
		outcome = kind.String()
	}
	r.m.Resolutions.WithLabelValues(outcome).Inc()
}
