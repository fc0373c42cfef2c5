// Package grid lays course records onto a week grid of fixed-width time
// slots.
//
// Layout is deterministic and rebuilt from scratch on every run: each day's
// records are sorted by start time (equal starts keep input order) and
// placed left to right with a cursor that never moves backward. Starts are
// floored to the slot boundary at or before them, spans are the ceiling of
// duration over slot width, and blocks running past the axis are clipped.
// Every row always accounts for every slot exactly once; anything that
// could not be placed cleanly comes back as a Warning instead of breaking
// the row.
package grid
