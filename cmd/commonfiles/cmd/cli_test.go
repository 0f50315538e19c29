package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	recordsFixture = `records:
- id: 10
  parentPath: /Users/x
  name: doc.txt
  dataSource: USB1
  md5: 0cc175b9c0f1b6a831c399e269772661
- id: 11
  parentPath: /Users/other
  name: doc.txt
  dataSource: USB1
  md5: 0cc175b9c0f1b6a831c399e269772661
`

	groupsFixture = `case: CaseA
groups:
- md5: 0cc175b9c0f1b6a831c399e269772661
  local:
  - id: 10
    dataSource: USB1
  - id: 11
    dataSource: USB1
  instances:
  - case: CaseA
    dataSource: USB1
    path: /Users/x/doc.txt
    id: 10
  - case: CaseB
    dataSource: Phone
    path: /sdcard/doc.txt
    id: 3
- md5: 92eb5ffee6ae2fec3ad71c777531578f
  local:
  - id: 404
    dataSource: USB1
  instances:
  - case: CaseB
    dataSource: Phone
    path: /sdcard/other.txt
    id: 4
`
)

func runCLI(t testing.TB, args ...string) (string, error) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeFixture(t testing.TB, dir, name, content string) string {
	pth := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(pth, []byte(content), 0600))
	return pth
}

func TestCLI(t *testing.T) {
	color.NoColor = true
	dir := t.TempDir()
	storeDir := filepath.Join(dir, "store")
	records := writeFixture(t, dir, "records.yaml", recordsFixture)
	groups := writeFixture(t, dir, "groups.yaml", groupsFixture)

	out, err := runCLI(t, "records", "load", "--loglevel", "none", "--store", storeDir, "--file", records)
	require.NoError(t, err)
	assert.Contains(t, out, "loaded 2 records into badger:"+storeDir)

	out, err = runCLI(t, "resolve", "--store", storeDir, "--correlation", groups, "--format", "list", "--metrics")
	require.NoError(t, err)
	assert.Contains(t, out, "0cc175b9c0f1b6a831c399e269772661\n")
	assert.Contains(t, out, "\tlocal\t10\tCaseA: usb1\n")
	assert.Contains(t, out, "\tcross-case\t11\tCaseB: phone\t/sdcard/doc.txt\n")
	assert.Contains(t, out, "\t1 skipped\n")
	assert.Contains(t, out, "# TYPE commonfiles_cache_misses_total counter\n")
	assert.Contains(t, out, "commonfiles_cache_misses_total 3\n")
	assert.Contains(t, out, `commonfiles_resolver_resolutions_total{outcome="local"} 1`)
	assert.Contains(t, out, `commonfiles_store_queries_total{status="ok"}`)

	out, err = runCLI(t, "resolve", "--case", "CaseZ", "--format", "yaml", "--metrics=false")
	require.NoError(t, err)
	assert.NotContains(t, out, "commonfiles_cache_misses_total", "metrics are only printed with --metrics")
	assert.Contains(t, out, "kind: cross-case")
	assert.NotContains(t, out, "kind: local")
	assert.Contains(t, out, "CaseA: usb1")

	_, err = runCLI(t, "resolve", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")

	out, err = runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "version: dev\n", out)
}

func TestVersionInfo(t *testing.T) {
	Version = "v1.2.3"
	defer func() { Version = "" }()

	v := NewVersionInfo()
	assert.Equal(t, "v1.2.3", v.Version)
	assert.Equal(t, "clean", v.GitState)
	assert.Equal(t, "version: v1.2.3\ngitState: clean\n", v.String())

	GitCommit = "4f2b1c9"
	defer func() { GitCommit = "" }()
	assert.Contains(t, NewVersionInfo().String(), "gitCommit: 4f2b1c9\n")
}
