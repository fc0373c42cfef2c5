// Package store reads and writes the record files that connect the
// pipeline stages.
//
// JSON is the native interchange encoding; CSV is offered for spreadsheet
// round trips. Both carry the same eight fields and preserve record order,
// so a file written by one stage is byte-stable input for the next.
package store
