package filecache

import (
	"context"
	"sync"

	"github.com/oneconcern/commonfiles/pkg/model"
)

// Synchronized wraps a cache so it may be shared by several goroutines.
//
// Lookups are serialized, so the one-fetch-per-id guarantee of the wrapped cache still holds.
func Synchronized(c Cache) Cache {
	if s, ok := c.(*syncCache); ok {
		return s
	}
	return &syncCache{cache: c}
}

type syncCache struct {
	cache     Cache
	exclusive sync.Mutex
}

func (s *syncCache) Get(ctx context.Context, id model.FileRecordID) *model.FileRecord {
	s.exclusive.Lock()
	defer s.exclusive.Unlock()
	return s.cache.Get(ctx, id)
}

func (s *syncCache) Lookup(ctx context.Context, id model.FileRecordID) (*model.FileRecord, error) {
	s.exclusive.Lock()
	defer s.exclusive.Unlock()
	return s.cache.Lookup(ctx, id)
}

func (s *syncCache) Len() int {
	s.exclusive.Lock()
	defer s.exclusive.Unlock()
	return s.cache.Len()
}
