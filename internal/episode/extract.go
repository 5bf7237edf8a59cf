package episode

import (
	"regexp"
	"strconv"
	"strings"

	"anisub/internal/numeral"
)

// cjkNumerals is the character class accepted by the numeral converter,
// duplicated here for pattern building.
const cjkNumerals = "零〇一二三四五六七八九十百千万亿壹贰叁肆伍陆柒捌玖拾佰仟萬億两兩貳參陸"

var (
	reFullRange = regexp.MustCompile(`全\s?[0-9` + cjkNumerals + `]+\s?[話话集]`)
	reBareRange = regexp.MustCompile(`[0-9]+\s?-\s?[0-9]+`)
	reCJKRange  = regexp.MustCompile(`第\s?[0-9]+\s?-\s?[0-9]+\s?[話话集]`)

	reCJKDigit   = regexp.MustCompile(`第?\s?(\d{1,3})\s?[話话集]`)
	reCJKNumeral = regexp.MustCompile(`第([` + cjkNumerals + `]+)\s?[話话集]`)
	reVersioned  = regexp.MustCompile(`[【\[](\d+)\s*[vV]\d(?:END)?[】\]]`)
	reBracketed  = regexp.MustCompile(`[【\[](\d+)\s?(?:END)?[】\]]`)

	// Token-scan variants applied to individual tokens after bracket
	// characters have been stripped away.
	reTokenVersioned = regexp.MustCompile(`(\d+)\s?[vV]\d(?:END)?`)
	reTokenOVA       = regexp.MustCompile(`(\d{2,})\s?\((?:OVA|OAD)\)`)
	reTokenOnlyNum   = regexp.MustCompile(`^(\d{2,})$`)
)

// yearGuard discards bracketed number sets whose minimum looks like a year
// rather than an episode. The token-scan spare threshold is deliberately a
// different constant; do not unify them.
const (
	yearGuard      = 1900
	spareThreshold = 1000
)

// rule is one step of the extraction cascade. A rule returns (n, true) when
// it decides the episode number, including the deliberate 0 of the range
// guard; (0, false) passes control to the next rule.
type rule struct {
	name string
	try  func(title string) (int, bool)
}

// rules is the precedence table. Order is semantic: earlier rules win.
var rules = []rule{
	{name: "range_guard", try: tryRangeGuard},
	{name: "cjk_digit_marker", try: tryCJKDigitMarker},
	{name: "cjk_numeral_marker", try: tryCJKNumeralMarker},
	{name: "versioned_bracket", try: tryVersionedBracket},
	{name: "bracketed_minimum", try: tryBracketedMinimum},
	{name: "token_scan", try: tryTokenScan},
}

// ParseEpisode extracts an episode number from a raw release title.
// It is pure, deterministic, and total: malformed titles yield 0.
func ParseEpisode(title string) int {
	for _, r := range rules {
		if n, ok := r.try(title); ok {
			return n
		}
	}
	return 0
}

// tryRangeGuard rejects range releases outright. A title naming a span of
// episodes cannot name a single one, so the answer is 0 by policy.
func tryRangeGuard(title string) (int, bool) {
	if reFullRange.MatchString(title) || reBareRange.MatchString(title) || reCJKRange.MatchString(title) {
		return 0, true
	}
	return 0, false
}

func tryCJKDigitMarker(title string) (int, bool) {
	m := reCJKDigit.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

func tryCJKNumeralMarker(title string) (int, bool) {
	m := reCJKNumeral.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	n, err := numeral.ToArabic(m[1])
	if err != nil {
		// Conversion failure is "no match here", never an error upward.
		return 0, false
	}
	return n, true
}

func tryVersionedBracket(title string) (int, bool) {
	m := reVersioned.FindStringSubmatch(title)
	if m == nil {
		return 0, false
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0, false
	}
	return n, true
}

// tryBracketedMinimum collects every bracketed number in the title and keeps
// the minimum: bracket groups typically list episode alongside resolution, and
// the smallest plausible integer is the episode. A minimum above the year
// guard means the whole set is likely a year, so the rule declines.
func tryBracketedMinimum(title string) (int, bool) {
	matches := reBracketed.FindAllStringSubmatch(title, -1)
	if len(matches) == 0 {
		return 0, false
	}
	minimum := -1
	for _, m := range matches {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if minimum < 0 || n < minimum {
			minimum = n
		}
	}
	if minimum < 0 || minimum > yearGuard {
		return 0, false
	}
	return minimum, true
}

// tryTokenScan is the last resort: split the title into bracket segments and
// whitespace tokens, then re-apply the pattern set per token. The first token
// whose capture is a 2+ digit number wins, except that values above the spare
// threshold are remembered and only used when nothing better turns up.
func tryTokenScan(title string) (int, bool) {
	segments := strings.Split(strings.ReplaceAll(title, "【", "["), "[")
	spare := 0
	for _, segment := range segments {
		for _, token := range strings.Fields(segment) {
			n, ok := matchToken(token)
			if !ok {
				continue
			}
			if n > spareThreshold {
				if spare == 0 {
					spare = n
				}
				continue
			}
			return n, true
		}
	}
	if spare > 0 {
		return spare, true
	}
	return 0, false
}

var tokenPatterns = []*regexp.Regexp{
	reCJKDigit,
	reBracketed,
	reTokenOVA,
	reTokenVersioned,
	reTokenOnlyNum,
}

func matchToken(token string) (int, bool) {
	for _, pattern := range tokenPatterns {
		m := pattern.FindStringSubmatch(token)
		if m == nil {
			continue
		}
		capture := m[1]
		if len(capture) < 2 {
			continue
		}
		n, err := strconv.Atoi(capture)
		if err != nil {
			continue
		}
		return n, true
	}
	return 0, false
}
