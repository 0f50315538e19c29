// Package model describes the base objects manipulated by commonfiles.
//
// The object model is composed of:
//
//  File records:
//    A file record is a concrete file of the open case, as known by the case record store.
//    Records are identified by a FileRecordID, unique within a case.
//
//  Instances:
//    An instance is one occurrence of a file with some given content (MD5), located in a case,
//    a data source and a path. Instances are reported by a correlation source and may belong
//    to other cases than the open one.
//
//  Candidates:
//    A candidate is an instance already known to be materialized by a record of the open case.
//
//  Resolved instances:
//    The outcome of resolving an instance against the candidates: either the reuse of a local
//    record, or a reference to a cross-case instance.
package model
