package recordstore

import (
	"context"
	"sort"
	"sync"

	"github.com/oneconcern/commonfiles/pkg/model"
	"github.com/oneconcern/commonfiles/pkg/recordstore/status"
)

// NewMemory builds an in-memory record store, seeded with some records
func NewMemory(records ...model.FileRecord) Store {
	m := &memory{
		records: make(map[model.FileRecordID]model.FileRecord, len(records)),
	}
	for _, r := range records {
		m.records[r.ID] = r
	}
	return m
}

type memory struct {
	records map[model.FileRecordID]model.FileRecord
	closed  bool
	sync.RWMutex
}

func (m *memory) String() string {
	return "memory"
}

func (m *memory) FindRecordsWhere(ctx context.Context, p Predicate) ([]model.FileRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, status.ErrQuery.Wrap(err)
	}

	m.RLock()
	defer m.RUnlock()
	if m.closed {
		return nil, status.ErrClosed
	}

	result := make([]model.FileRecord, 0, len(p.IDs()))
	for _, id := range p.IDs() {
		if r, ok := m.records[id]; ok && p.Match(r) {
			result = append(result, r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *memory) Put(ctx context.Context, records ...model.FileRecord) error {
	if err := ctx.Err(); err != nil {
		return status.ErrQuery.Wrap(err)
	}

	m.Lock()
	defer m.Unlock()
	if m.closed {
		return status.ErrClosed
	}
	for _, r := range records {
		if r.ID <= 0 {
			return status.ErrInvalidRecord.Wrapf("id %d", r.ID)
		}
	}
	for _, r := range records {
		m.records[r.ID] = r
	}
	return nil
}

func (m *memory) Close() error {
	m.Lock()
	defer m.Unlock()
	m.closed = true
	return nil
}
