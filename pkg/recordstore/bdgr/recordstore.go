// Package bdgr provides a record store backed by a badger KV database.
package bdgr

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/dgraph-io/badger/v3"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/oneconcern/commonfiles/pkg/model"
	"github.com/oneconcern/commonfiles/pkg/recordstore"
	"github.com/oneconcern/commonfiles/pkg/recordstore/status"
)

var (
	recordPref = [4]byte{'o', 'b', 'j', ':'}

	_ recordstore.Store = &recordStore{}
)

// Option configures the badger record store
type Option func(*recordStore)

// WithLogger sets a logger for the store and the underlying badger DB
func WithLogger(l *zap.Logger) Option {
	return func(s *recordStore) {
		if l != nil {
			s.l = l
		}
	}
}

// WithInMemory runs badger without persisting anything on disk
func WithInMemory(enabled bool) Option {
	return func(s *recordStore) {
		s.inMemory = enabled
	}
}

// New opens a badger record store located in directory pth.
//
// The directory is created if needed.
func New(pth string, opts ...Option) (recordstore.Store, error) {
	s := &recordStore{
		baseDir: pth,
		l:       zap.NewNop(),
	}
	for _, apply := range opts {
		apply(s)
	}

	options := badger.DefaultOptions(s.baseDir).
		WithLogger(badgerLogger{s.l.Sugar()}).
		WithLoggingLevel(badger.WARNING)

	if s.inMemory {
		options = options.WithInMemory(true).WithDir("").WithValueDir("")
	} else if err := os.MkdirAll(s.baseDir, 0700); err != nil {
		return nil, fmt.Errorf("record store: mkdir: %w", err)
	}

	db, err := badger.Open(options)
	if err != nil {
		return nil, fmt.Errorf("record store: open badger db: %w", err)
	}
	s.db = db

	return s, nil
}

type recordStore struct {
	baseDir  string
	inMemory bool
	db       *badger.DB
	l        *zap.Logger
	close    sync.Once
}

func (s *recordStore) String() string {
	return "badger:" + s.baseDir
}

func recordKey(id model.FileRecordID) []byte {
	return append(recordPref[:], strconv.FormatInt(int64(id), 10)...)
}

func badgerRewriteError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, badger.ErrKeyNotFound):
		return status.ErrNotFound
	case errors.Is(err, badger.ErrDBClosed):
		return status.ErrClosed
	default:
		return status.ErrQuery.Wrap(err)
	}
}

func (s *recordStore) FindRecordsWhere(ctx context.Context, p recordstore.Predicate) ([]model.FileRecord, error) {
	ids := p.IDs()
	result := make([]model.FileRecord, 0, len(ids))

	err := s.db.View(func(txn *badger.Txn) error {
		for _, id := range ids {
			if err := ctx.Err(); err != nil {
				return err
			}

			item, err := txn.Get(recordKey(id))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return err
			}

			var record model.FileRecord
			if err = item.Value(func(data []byte) error {
				return jsoniter.Unmarshal(data, &record)
			}); err != nil {
				return fmt.Errorf("json unmarshal failed for record %v: %w", id, err)
			}

			if p.Match(record) {
				result = append(result, record)
			}
		}
		return nil
	})
	if err != nil {
		return nil, badgerRewriteError(err)
	}

	return result, nil
}

// Put stores records through a badger write batch, which splits large loads
// into as many transactions as needed.
func (s *recordStore) Put(ctx context.Context, records ...model.FileRecord) error {
	for _, r := range records {
		if r.ID <= 0 {
			return status.ErrInvalidRecord.Wrapf("id %d", r.ID)
		}
	}

	wb := s.db.NewWriteBatch()
	defer wb.Cancel()

	for _, r := range records {
		if err := ctx.Err(); err != nil {
			return status.ErrQuery.Wrap(err)
		}
		data, err := jsoniter.Marshal(r)
		if err != nil {
			return fmt.Errorf("json marshal failed for record %v: %w", r.ID, err)
		}
		if err = wb.Set(recordKey(r.ID), data); err != nil {
			return badgerRewriteError(err)
		}
	}

	if err := wb.Flush(); err != nil {
		return badgerRewriteError(err)
	}

	s.l.Debug("stored records", zap.Int("records", len(records)))
	return nil
}

func (s *recordStore) Close() error {
	var err error

	s.close.Do(func() {
		if s.db != nil {
			err = s.db.Close()
		}
	})

	return err
}

// badgerLogger routes badger logs to zap
type badgerLogger struct {
	*zap.SugaredLogger
}

func (b badgerLogger) Warningf(format string, args ...interface{}) {
	b.SugaredLogger.Warnf(format, args...)
}
