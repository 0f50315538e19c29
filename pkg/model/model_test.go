package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v2"
)

func TestFullPath(t *testing.T) {
	for _, toPin := range []struct {
		Record   FileRecord
		Expected string
	}{
		{Record: FileRecord{ParentPath: "/Users/x/", Name: "doc.txt"}, Expected: "/Users/x/doc.txt"},
		{Record: FileRecord{ParentPath: "/Users/x", Name: "doc.txt"}, Expected: "/Users/x/doc.txt"},
		{Record: FileRecord{ParentPath: `C:\Users\x\`, Name: "doc.txt"}, Expected: `C:\Users\x/doc.txt`},
		{Record: FileRecord{Name: "doc.txt"}, Expected: "doc.txt"},
		{Record: FileRecord{ParentPath: "/"}, Expected: "/"},
	} {
		fixture := toPin
		assert.Equal(t, fixture.Expected, fixture.Record.FullPath())
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "usb1", NormalizeName("USB1"))
	assert.Equal(t, "c:/users/x/doc.txt", NormalizePath(`C:\Users\x/Doc.TXT`))
	assert.Equal(t, NormalizePath(`\Users\X\doc.txt`), NormalizePath("/users/x/DOC.txt"))
	assert.Equal(t, "CaseA: usb1", DataSourceLabel("CaseA", "USB1"))
}

func TestInstanceKind(t *testing.T) {
	assert.Equal(t, "local", KindLocal.String())
	assert.Equal(t, "cross-case", KindCrossCase.String())
	assert.Equal(t, "unknown", InstanceKind(0).String())

	r := ResolvedInstance{Kind: KindCrossCase, ID: 3, Label: "CaseB: usb2", DataSource: "USB2"}
	assert.False(t, r.IsLocal())

	// outcomes are not candidates: only local instances back later resolutions
	var outcome interface{} = r
	_, isCandidate := outcome.(Candidate)
	assert.False(t, isCandidate)

	b, err := yaml.Marshal(r)
	require.NoError(t, err)
	assert.Contains(t, string(b), "kind: cross-case")
}

func TestGroupCandidates(t *testing.T) {
	g := InstanceGroup{
		MD5: "d41d8cd98f00b204e9800998ecf8427e",
		Local: []LocalInstance{
			{ID: 2, DataSource: "usb1"},
			{ID: 1, DataSource: "disk"},
		},
	}
	candidates := g.Candidates()
	require.Len(t, candidates, 2)
	assert.Equal(t, FileRecordID(2), candidates[0].RecordID())
	assert.Equal(t, "disk", candidates[1].DataSourceName())
	assert.Equal(t, "2", candidates[0].RecordID().String())
}
