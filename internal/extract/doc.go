// Package extract parses registration-page exports into course records.
//
// The page renders one card per class meeting. Cards come in two language
// variants (English and Thai) that share the same markup skeleton; field
// markers are style attributes and label text, and both label vocabularies
// resolve to the same record fields. A card missing a marker degrades that
// field to the N/A sentinel and nothing else: a field failure never drops
// the card, and a malformed card never stops the scan.
package extract
