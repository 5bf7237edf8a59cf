package nameutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ConversionTable maps traditional Han characters to their simplified forms.
type ConversionTable map[rune]rune

var lowerCaser = cases.Lower(language.Und)

// Normalize folds a show name for comparison: traditional→simplified via the
// table, fullwidth→halfwidth, then lowercase. A nil table falls back to
// DefaultTable. The function is pure and total.
func Normalize(name string, table ConversionTable) string {
	if table == nil {
		table = DefaultTable
	}
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if simplified, ok := table[r]; ok {
			r = simplified
		}
		b.WriteRune(foldWidth(r))
	}
	return lowerCaser.String(b.String())
}

// foldWidth converts fullwidth ASCII and punctuation to their halfwidth
// counterparts. The ideographic space becomes a plain space; the fullwidth
// block U+FF01–U+FF5E shifts down by 0xFEE0.
func foldWidth(r rune) rune {
	switch {
	case r == 0x3000:
		return ' '
	case r >= 0xFF01 && r <= 0xFF5E:
		return r - 0xFEE0
	default:
		return r
	}
}
