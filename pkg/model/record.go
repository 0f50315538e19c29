package model

import (
	"strconv"
	"strings"
)

// FileRecordID identifies a file record within the record store of a case.
type FileRecordID int64

func (id FileRecordID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// FileRecord is a concrete file of the open case.
type FileRecord struct {
	ID         FileRecordID `json:"id" yaml:"id"`
	ParentPath string       `json:"parentPath" yaml:"parentPath"`
	Name       string       `json:"name" yaml:"name"`
	DataSource string       `json:"dataSource,omitempty" yaml:"dataSource,omitempty"`
	MD5        string       `json:"md5,omitempty" yaml:"md5,omitempty"`
	_          struct{}
}

// FullPath joins the parent path and the name of the record with a single "/".
//
// The result is not normalized: use NormalizePath for comparisons.
func (r FileRecord) FullPath() string {
	switch {
	case r.ParentPath == "":
		return r.Name
	case r.Name == "":
		return r.ParentPath
	}
	return strings.TrimRight(r.ParentPath, `/\`) + "/" + strings.TrimLeft(r.Name, `/\`)
}

// FileRecords is a collection of records, as loaded from a file.
type FileRecords struct {
	Records []FileRecord `json:"records" yaml:"records"`
	_       struct{}
}
