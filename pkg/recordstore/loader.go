package recordstore

import (
	"context"
	"fmt"

	"github.com/oneconcern/commonfiles/pkg/model"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// ReadRecords reads file records from a YAML document
func ReadRecords(fs afero.Fs, pth string) ([]model.FileRecord, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	b, err := afero.ReadFile(fs, pth)
	if err != nil {
		return nil, fmt.Errorf("reading records file %q: %w", pth, err)
	}

	var doc model.FileRecords
	if err = yaml.UnmarshalStrict(b, &doc); err != nil {
		return nil, fmt.Errorf("parsing records file %q: %w", pth, err)
	}
	return doc.Records, nil
}

// Load file records from a YAML document into store, and returns the number of loaded records.
func Load(ctx context.Context, store Store, fs afero.Fs, pth string) (int, error) {
	records, err := ReadRecords(fs, pth)
	if err != nil {
		return 0, err
	}
	if len(records) == 0 {
		return 0, nil
	}
	if err = store.Put(ctx, records...); err != nil {
		return 0, fmt.Errorf("storing records from %q: %w", pth, err)
	}
	return len(records), nil
}
