// Package nameutil normalizes show names before similarity comparison.
//
// Normalization runs three steps in a fixed order: traditional Han characters
// fold to simplified using a conversion table, fullwidth ASCII and punctuation
// fold to halfwidth, and the result is lowercased. The conversion table is a
// plain rune map supplied by the caller; DefaultTable covers the characters
// that actually show up in tracker titles and can be replaced wholesale when
// an operator ships a fuller table.
package nameutil
