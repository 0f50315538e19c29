// Package recordstore defines the record store of a case: the file metadata
// backend queried by file record identifier.
package recordstore

import (
	"context"
	"strings"

	"github.com/oneconcern/commonfiles/pkg/model"
)

// Store implementations know how to find file records matching some predicate.
//
// Records are assumed immutable while a resolution pass runs.
type Store interface {
	String() string
	FindRecordsWhere(context.Context, Predicate) ([]model.FileRecord, error)
	Put(context.Context, ...model.FileRecord) error
	Close() error
}

// Predicate selects file records.
//
// String renders the predicate as a query clause, e.g. "obj_id in (12)".
type Predicate interface {
	String() string
	Match(model.FileRecord) bool
	IDs() []model.FileRecordID
}

// IDIn selects records by identifier
func IDIn(ids ...model.FileRecordID) Predicate {
	return idIn(ids)
}

type idIn []model.FileRecordID

func (p idIn) String() string {
	parts := make([]string, 0, len(p))
	for _, id := range p {
		parts = append(parts, id.String())
	}
	return "obj_id in (" + strings.Join(parts, ",") + ")"
}

func (p idIn) Match(r model.FileRecord) bool {
	for _, id := range p {
		if r.ID == id {
			return true
		}
	}
	return false
}

func (p idIn) IDs() []model.FileRecordID {
	return p
}
