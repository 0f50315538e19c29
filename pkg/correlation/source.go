// Package correlation supplies the instances of identical content known across cases.
package correlation

import (
	"context"
	"fmt"
	"sort"

	"github.com/oneconcern/commonfiles/pkg/model"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v2"
)

// Source of instance groups, one per content hash
type Source interface {
	Groups(context.Context) ([]model.InstanceGroup, error)
}

// Document is the YAML layout read by a file source
type Document struct {
	Case   string                `json:"case,omitempty" yaml:"case,omitempty"`
	Groups []model.InstanceGroup `json:"groups" yaml:"groups"`
}

// NewFileSource reads instance groups from a YAML file
func NewFileSource(fs afero.Fs, pth string) *FileSource {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FileSource{fs: fs, path: pth}
}

// FileSource is a correlation source backed by a YAML document
type FileSource struct {
	fs   afero.Fs
	path string
}

// Read the full document.
//
// Instance paths are normalized, and groups are sorted by MD5.
func (f *FileSource) Read(ctx context.Context) (Document, error) {
	var doc Document
	if err := ctx.Err(); err != nil {
		return doc, err
	}

	b, err := afero.ReadFile(f.fs, f.path)
	if err != nil {
		return doc, fmt.Errorf("reading correlation file %q: %w", f.path, err)
	}
	if err = yaml.UnmarshalStrict(b, &doc); err != nil {
		return doc, fmt.Errorf("parsing correlation file %q: %w", f.path, err)
	}

	for i, group := range doc.Groups {
		if group.MD5 == "" {
			return doc, fmt.Errorf("correlation file %q: group %d has no md5", f.path, i)
		}
		for j := range group.Instances {
			group.Instances[j].FilePath = model.NormalizePath(group.Instances[j].FilePath)
		}
	}
	sort.SliceStable(doc.Groups, func(i, j int) bool { return doc.Groups[i].MD5 < doc.Groups[j].MD5 })

	return doc, nil
}

// Groups of instances from the document
func (f *FileSource) Groups(ctx context.Context) ([]model.InstanceGroup, error) {
	doc, err := f.Read(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Groups, nil
}
