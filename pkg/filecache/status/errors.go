// Package status exports errors produced by the filecache package.
package status

import (
	"github.com/oneconcern/commonfiles/pkg/errors"
)

var (
	// ErrLookup indicates that a file record could not be fetched from the record store
	ErrLookup = errors.New("file record lookup failed")
)
