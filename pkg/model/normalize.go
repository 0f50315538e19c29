package model

import "strings"

// PathSeparator is the canonical separator of normalized paths
const PathSeparator = "/"

// NormalizeName lower-cases a case or data source name for comparisons.
func NormalizeName(name string) string {
	return strings.ToLower(name)
}

// NormalizePath lower-cases a path and replaces alternate separators by PathSeparator.
func NormalizePath(pth string) string {
	return strings.ReplaceAll(strings.ToLower(pth), `\`, PathSeparator)
}

// DataSourceLabel renders the data source label displayed for an instance,
// e.g. "CaseA: usb1".
//
// The case keeps its display casing and the data source is normalized.
func DataSourceLabel(caseName, dataSource string) string {
	return caseName + ": " + NormalizeName(dataSource)
}
