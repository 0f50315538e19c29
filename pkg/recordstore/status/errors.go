// Package status exports errors produced by the recordstore package.
package status

import (
	"github.com/oneconcern/commonfiles/pkg/errors"
)

var (
	// ErrNotFound indicates that no record matched a query
	ErrNotFound = errors.New("record not found")

	// ErrClosed indicates that the store has been closed
	ErrClosed = errors.New("record store closed")

	// ErrInvalidRecord indicates an attempt to store a record without a valid id
	ErrInvalidRecord = errors.New("invalid record")

	// ErrQuery indicates a failure while querying the store
	ErrQuery = errors.New("record store query failed")
)
