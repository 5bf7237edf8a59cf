package matching

import (
	"math"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"anisub/internal/nameutil"
)

// Matcher scores similarity between two show names. The Han conversion table
// is injected at construction; a nil table uses nameutil.DefaultTable.
type Matcher struct {
	table nameutil.ConversionTable
}

// NewMatcher constructs a Matcher bound to the supplied conversion table.
func NewMatcher(table nameutil.ConversionTable) *Matcher {
	return &Matcher{table: table}
}

// Similarity returns an integer score in [0,100] for the two names.
//
// Evaluation order: manual overrides on the raw names, then normalization,
// then the substring and prefix shortcuts, then a character-level
// longest-matching-blocks ratio. The ordering lets cheap high-confidence
// checks short-circuit before the ratio computation, and it is asymmetric:
// the prefix shortcut reads name1's head against name2 only.
func (m *Matcher) Similarity(name1, name2 string, links *LinkTable) int {
	if kind, ok := links.lookup(name1, name2); ok {
		if kind == KindLink {
			return 100
		}
		return 0
	}

	n1 := nameutil.Normalize(name1, m.table)
	n2 := nameutil.Normalize(name2, m.table)

	if n1 != "" && n2 != "" && (strings.Contains(n1, n2) || strings.Contains(n2, n1)) {
		return 100
	}

	if prefix := runePrefix(n1, 5); prefix != "" && strings.HasPrefix(n2, prefix) {
		return 100
	}

	return int(math.Round(sequenceRatio(n1, n2) * 100))
}

// runePrefix returns the first min(n, len(s)) runes of s.
func runePrefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) < n {
		n = len(runes)
	}
	return string(runes[:n])
}

// sequenceRatio computes the diff-style matching-blocks ratio over the two
// strings, character by character.
func sequenceRatio(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}
	return difflib.NewMatcher(splitRunes(a), splitRunes(b)).Ratio()
}

func splitRunes(s string) []string {
	runes := []rune(s)
	out := make([]string, len(runes))
	for i, r := range runes {
		out[i] = string(r)
	}
	return out
}
