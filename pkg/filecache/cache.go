// Package filecache memoizes file record lookups against a record store.
//
// A cache is meant to live for one query (e.g. one common files search) and be discarded afterwards.
// The record store is assumed immutable while the cache is in use: once an id has been looked up,
// the cache never asks the store about it again, even when the lookup failed.
//
// Caches returned by New are not safe for concurrent use. Use Synchronized to share a cache
// between goroutines.
package filecache

import (
	"context"
	"fmt"

	"github.com/oneconcern/commonfiles/pkg/filecache/status"
	"github.com/oneconcern/commonfiles/pkg/metrics"
	"github.com/oneconcern/commonfiles/pkg/model"
	"github.com/oneconcern/commonfiles/pkg/recordstore"
	recordstatus "github.com/oneconcern/commonfiles/pkg/recordstore/status"
	"go.uber.org/zap"
)

// Cache of file records, keyed by FileRecordID
type Cache interface {
	// Get a file record, or nil if it could not be retrieved. Failures are logged when first met.
	Get(context.Context, model.FileRecordID) *model.FileRecord

	// Lookup a file record. Failures are reported as a *LookupError.
	Lookup(context.Context, model.FileRecordID) (*model.FileRecord, error)

	// Len yields the number of memoized ids
	Len() int
}

// LookupError reports a record which could not be fetched from the record store.
type LookupError struct {
	ID  model.FileRecordID
	Err error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("%v: obj_id %v: %v", status.ErrLookup, e.ID, e.Err)
}

// Unwrap yields the cause of the failure
func (e *LookupError) Unwrap() error {
	return e.Err
}

// Is a LookupError matches status.ErrLookup
func (e *LookupError) Is(target error) bool {
	return target == status.ErrLookup
}

type entry struct {
	record *model.FileRecord
	err    error
}

type fileCache struct {
	store   recordstore.Store
	entries map[model.FileRecordID]entry
	l       *zap.Logger
	m       *metrics.Collectors
}

// New cache of file records, backed by store
func New(store recordstore.Store, opts ...Option) Cache {
	settings := defaultSettings()
	for _, apply := range opts {
		apply(&settings)
	}

	c := &fileCache{
		store:   store,
		entries: make(map[model.FileRecordID]entry, settings.initialSize),
		l:       settings.l,
	}
	if settings.withMetrics {
		c.m = settings.m
		if c.m == nil {
			c.m = metrics.Default()
		}
	}
	return c
}

func (c *fileCache) Get(ctx context.Context, id model.FileRecordID) *model.FileRecord {
	record, err := c.Lookup(ctx, id)
	if err != nil {
		return nil
	}
	return record
}

func (c *fileCache) Lookup(ctx context.Context, id model.FileRecordID) (*model.FileRecord, error) {
	if e, ok := c.entries[id]; ok {
		c.inc(func(m *metrics.Collectors) { m.CacheHits.Inc() })
		return e.record, e.err
	}

	c.inc(func(m *metrics.Collectors) { m.CacheMisses.Inc() })
	record, err := c.fetch(ctx, id)
	if err != nil {
		// failures are memoized, and so reported only once
		c.inc(func(m *metrics.Collectors) { m.CacheFailures.Inc() })
		c.l.Error("unable to find file record", zap.Stringer("obj_id", id), zap.Error(err))
		err = &LookupError{ID: id, Err: err}
	}
	c.entries[id] = entry{record: record, err: err}

	return record, err
}

func (c *fileCache) Len() int {
	return len(c.entries)
}

func (c *fileCache) fetch(ctx context.Context, id model.FileRecordID) (*model.FileRecord, error) {
	records, err := c.store.FindRecordsWhere(ctx, recordstore.IDIn(id))
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, recordstatus.ErrNotFound
	}
	record := records[0]
	return &record, nil
}

func (c *fileCache) inc(fn func(*metrics.Collectors)) {
	if c.m != nil {
		fn(c.m)
	}
}
