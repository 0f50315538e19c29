package recordstore

import (
	"context"
	"time"

	"github.com/oneconcern/commonfiles/pkg/metrics"
	"github.com/oneconcern/commonfiles/pkg/model"
	"go.uber.org/zap"
)

const defaultSlowQuery = 500 * time.Millisecond

// InstrumentOption configures an instrumented store
type InstrumentOption func(*instrumentedStore)

// InstrumentLogger sets the logger of the instrumented store
func InstrumentLogger(l *zap.Logger) InstrumentOption {
	return func(i *instrumentedStore) {
		if l != nil {
			i.l = l
		}
	}
}

// InstrumentMetrics sets the collectors of the instrumented store
func InstrumentMetrics(m *metrics.Collectors) InstrumentOption {
	return func(i *instrumentedStore) {
		if m != nil {
			i.m = m
		}
	}
}

// InstrumentSlowQuery sets the duration above which a query is logged as slow
func InstrumentSlowQuery(d time.Duration) InstrumentOption {
	return func(i *instrumentedStore) {
		i.slow = d
	}
}

// Instrument a store with logs and metrics
func Instrument(store Store, opts ...InstrumentOption) Store {
	i := &instrumentedStore{
		store: store,
		l:     zap.NewNop(),
		slow:  defaultSlowQuery,
	}
	for _, apply := range opts {
		apply(i)
	}
	if i.m == nil {
		i.m = metrics.Default()
	}
	i.l = i.l.With(zap.String("store", store.String()))
	return i
}

type instrumentedStore struct {
	store Store
	l     *zap.Logger
	m     *metrics.Collectors
	slow  time.Duration
}

func (i *instrumentedStore) String() string {
	return i.store.String()
}

func (i *instrumentedStore) FindRecordsWhere(ctx context.Context, p Predicate) ([]model.FileRecord, error) {
	start := time.Now()
	records, err := i.store.FindRecordsWhere(ctx, p)
	elapsed := time.Since(start)

	i.m.StoreQueryDuration.Observe(elapsed.Seconds())
	if err != nil {
		i.m.StoreQueries.WithLabelValues("error").Inc()
		i.l.Debug("record store query failed", zap.Stringer("query", p), zap.Error(err))
		return nil, err
	}
	i.m.StoreQueries.WithLabelValues("ok").Inc()

	if i.slow > 0 && elapsed > i.slow {
		i.l.Warn("slow record store query", zap.Stringer("query", p), zap.Duration("elapsed", elapsed))
	} else {
		i.l.Debug("record store query", zap.Stringer("query", p), zap.Int("records", len(records)))
	}
	return records, nil
}

func (i *instrumentedStore) Put(ctx context.Context, records ...model.FileRecord) error {
	i.l.Debug("record store put", zap.Int("records", len(records)))
	return i.store.Put(ctx, records...)
}

func (i *instrumentedStore) Close() error {
	return i.store.Close()
}
