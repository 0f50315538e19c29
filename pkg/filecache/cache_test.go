package filecache

import (
	"context"
	"sync"
	"testing"

	"github.com/oneconcern/commonfiles/pkg/errors"
	"github.com/oneconcern/commonfiles/pkg/filecache/status"
	"github.com/oneconcern/commonfiles/pkg/metrics"
	"github.com/oneconcern/commonfiles/pkg/model"
	"github.com/oneconcern/commonfiles/pkg/recordstore"
	recordstatus "github.com/oneconcern/commonfiles/pkg/recordstore/status"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

var errBackend = errors.New("backend down")

// countingStore counts queries per id and fails on demand
type countingStore struct {
	recordstore.Store
	calls   map[model.FileRecordID]int
	failing map[model.FileRecordID]bool
	sync.Mutex
}

func newCountingStore(failing ...model.FileRecordID) *countingStore {
	s := &countingStore{
		Store: recordstore.NewMemory(
			model.FileRecord{ID: 1, ParentPath: "/Users/x", Name: "doc.txt", DataSource: "USB1"},
			model.FileRecord{ID: 2, ParentPath: "/Users/y", Name: "doc.txt", DataSource: "USB1"},
		),
		calls:   make(map[model.FileRecordID]int),
		failing: make(map[model.FileRecordID]bool),
	}
	for _, id := range failing {
		s.failing[id] = true
	}
	return s
}

func (s *countingStore) FindRecordsWhere(ctx context.Context, p recordstore.Predicate) ([]model.FileRecord, error) {
	s.Lock()
	for _, id := range p.IDs() {
		s.calls[id]++
		if s.failing[id] {
			s.Unlock()
			return nil, errBackend
		}
	}
	s.Unlock()
	return s.Store.FindRecordsWhere(ctx, p)
}

func (s *countingStore) Calls(id model.FileRecordID) int {
	s.Lock()
	defer s.Unlock()
	return s.calls[id]
}

func TestCacheMemoizes(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	c := New(store)

	first := c.Get(ctx, 1)
	require.NotNil(t, first)
	assert.Equal(t, "/Users/x/doc.txt", first.FullPath())

	second := c.Get(ctx, 1)
	assert.Same(t, first, second)
	assert.Equal(t, 1, store.Calls(1))

	record, err := c.Lookup(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, model.FileRecordID(2), record.ID)
	_, _ = c.Lookup(ctx, 2)
	assert.Equal(t, 1, store.Calls(2))
	assert.Equal(t, 2, c.Len())
}

func TestCacheMissingRecord(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	core, logs := observer.New(zapcore.ErrorLevel)
	c := New(store, WithLogger(zap.New(core)))

	assert.Nil(t, c.Get(ctx, 42))
	assert.Nil(t, c.Get(ctx, 42))
	assert.Equal(t, 1, store.Calls(42), "absence is memoized too")

	_, err := c.Lookup(ctx, 42)
	require.Error(t, err)
	assert.True(t, errors.Is(err, status.ErrLookup))
	assert.True(t, errors.Is(err, recordstatus.ErrNotFound))

	var lookupErr *LookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, model.FileRecordID(42), lookupErr.ID)
	assert.Contains(t, lookupErr.Error(), "obj_id 42")

	entries := logs.All()
	require.Len(t, entries, 1, "a memoized failure is logged once")
	assert.Equal(t, "42", entries[0].ContextMap()["obj_id"])
	assert.Equal(t, "unable to find file record", entries[0].Message)
}

func TestCacheBackendFailure(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore(2)
	core, logs := observer.New(zapcore.ErrorLevel)
	c := New(store, WithLogger(zap.New(core)))

	assert.Nil(t, c.Get(ctx, 2))
	assert.Nil(t, c.Get(ctx, 2))
	_, err := c.Lookup(ctx, 2)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errBackend))
	assert.Equal(t, 1, store.Calls(2))
	assert.Equal(t, 1, logs.FilterField(zap.Stringer("obj_id", model.FileRecordID(2))).Len())

	assert.NotNil(t, c.Get(ctx, 1))
}

func TestCacheMetrics(t *testing.T) {
	ctx := context.Background()
	m := metrics.New(prometheus.NewRegistry())
	c := New(newCountingStore(2), WithCollectors(m), WithInitialSize(2))

	_ = c.Get(ctx, 1)
	_ = c.Get(ctx, 1)
	_ = c.Get(ctx, 2)
	_ = c.Get(ctx, 2)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.CacheHits))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.CacheMisses))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CacheFailures))
}

func TestSynchronized(t *testing.T) {
	ctx := context.Background()
	store := newCountingStore()
	c := Synchronized(New(store))
	assert.Same(t, c, Synchronized(c))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id model.FileRecordID) {
			defer wg.Done()
			_ = c.Get(ctx, id)
			_, _ = c.Lookup(ctx, id)
		}(model.FileRecordID(i%3 + 1))
	}
	wg.Wait()

	assert.Equal(t, 1, store.Calls(1))
	assert.Equal(t, 1, store.Calls(2))
	assert.Equal(t, 1, store.Calls(3))
	assert.Equal(t, 3, c.Len())
}
