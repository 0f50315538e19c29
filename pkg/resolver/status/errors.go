// Package status exports errors produced by the resolver package.
package status

import (
	"github.com/oneconcern/commonfiles/pkg/errors"
)

var (
	// ErrResolution indicates that no usable instance could be determined
	ErrResolution = errors.New("unable to obtain any instance")

	// ErrInterrupted signals that a batch resolution was interrupted
	ErrInterrupted = errors.New("resolution interrupted")
)
