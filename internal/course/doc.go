// Package course defines the record type shared by every stage of the
// timetable pipeline.
//
// A Record keeps every field as the raw string the extractor produced,
// including the N/A sentinel for fields whose marker was missing. Parsing
// into minutes happens lazily through helper methods that report whether
// the field held a usable value, so a record with a broken time range can
// still flow through storage and display untouched.
package course
