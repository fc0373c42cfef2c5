// Package cli implements the command-line interface for regtable.
//
// The cli package provides the Cobra-based CLI with one subcommand per
// pipeline surface: extract (page to records), render (records to page),
// generate (both in one shot), preview (terminal listing), and calendar
// (iCalendar export). It coordinates the extract, grid, render, and store
// packages and owns the process-level concerns: flags, logging, exit codes,
// and stdin/stdout plumbing.
package cli
