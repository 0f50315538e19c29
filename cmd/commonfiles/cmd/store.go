package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/oneconcern/commonfiles/pkg/recordstore"
	"github.com/oneconcern/commonfiles/pkg/recordstore/bdgr"
)

func openStore() (recordstore.Store, error) {
	if config.Store == "" {
		return nil, errors.New("a record store directory is required (--store)")
	}
	store, err := bdgr.New(config.Store, bdgr.WithLogger(logger))
	if err != nil {
		return nil, fmt.Errorf("open record store: %w", err)
	}
	return recordstore.Instrument(store,
		recordstore.InstrumentLogger(logger),
	), nil
}

// signalContext is cancelled on SIGINT or SIGTERM
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}
