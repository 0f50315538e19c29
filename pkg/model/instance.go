package model

import "fmt"

// InstanceDescriptor describes one occurrence of a file with some known content,
// as reported by the correlation source.
type InstanceDescriptor struct {
	Case       string       `json:"case" yaml:"case"`
	DataSource string       `json:"dataSource" yaml:"dataSource"`
	FilePath   string       `json:"path" yaml:"path"`
	RecordID   FileRecordID `json:"id" yaml:"id"`
	_          struct{}
}

func (d InstanceDescriptor) String() string {
	return fmt.Sprintf("%s/%s:%s", d.Case, d.DataSource, d.FilePath)
}

// Candidate is an instance already known to be backed by a record of the open case.
type Candidate interface {
	RecordID() FileRecordID
	DataSourceName() string
}

var _ Candidate = LocalInstance{}

// LocalInstance is an occurrence of some content in the open case.
type LocalInstance struct {
	ID         FileRecordID `json:"id" yaml:"id"`
	DataSource string       `json:"dataSource" yaml:"dataSource"`
	_          struct{}
}

// RecordID of the local file record
func (l LocalInstance) RecordID() FileRecordID { return l.ID }

// DataSourceName where the instance appears
func (l LocalInstance) DataSourceName() string { return l.DataSource }

// InstanceKind tells which variant a ResolvedInstance is.
type InstanceKind uint8

const (
	// KindLocal is the reuse of an existing record of the open case
	KindLocal InstanceKind = iota + 1

	// KindCrossCase refers to an instance in another case (or another place), with
	// some arbitrary identical local record to fall back on
	KindCrossCase
)

func (k InstanceKind) String() string {
	switch k {
	case KindLocal:
		return "local"
	case KindCrossCase:
		return "cross-case"
	default:
		return "unknown"
	}
}

// MarshalText renders the kind as text
func (k InstanceKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ResolvedInstance is the outcome of resolving an InstanceDescriptor.
//
// For KindLocal, ID is the reused record and Instance is nil.
// For KindCrossCase, ID is the fallback record and Instance holds the resolved descriptor.
type ResolvedInstance struct {
	Kind       InstanceKind        `json:"kind" yaml:"kind"`
	ID         FileRecordID        `json:"id" yaml:"id"`
	Label      string              `json:"label" yaml:"label"`
	DataSource string              `json:"dataSource" yaml:"dataSource"`
	Instance   *InstanceDescriptor `json:"instance,omitempty" yaml:"instance,omitempty"`
	_          struct{}
}

// IsLocal tells if this instance reuses a record of the open case
func (r ResolvedInstance) IsLocal() bool { return r.Kind == KindLocal }

// InstanceGroup gathers all the known instances of some content.
type InstanceGroup struct {
	MD5       string               `json:"md5" yaml:"md5"`
	Local     []LocalInstance      `json:"local" yaml:"local"`
	Instances []InstanceDescriptor `json:"instances" yaml:"instances"`
	_         struct{}
}

// Candidates yields the local instances of the group, in order.
func (g InstanceGroup) Candidates() []Candidate {
	candidates := make([]Candidate, 0, len(g.Local))
	for _, l := range g.Local {
		candidates = append(candidates, l)
	}
	return candidates
}
