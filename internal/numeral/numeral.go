// Package numeral converts Chinese numeral strings to integers.
//
// Simplified, traditional, and formal ("daxie") digit variants are all
// accepted, so 二, 贰, and 兩/两 parse the same way. The converter is a leaf
// used by episode number extraction; callers treat a conversion error as
// "no numeral here" rather than a failure.
package numeral

import (
	"errors"
	"fmt"
)

// ErrEmpty reports an empty input string.
var ErrEmpty = errors.New("numeral: empty string")

var digitValues = map[rune]int{
	'零': 0, '〇': 0,
	'一': 1, '壹': 1,
	'二': 2, '贰': 2, '貳': 2, '两': 2, '兩': 2,
	'三': 3, '叁': 3, '參': 3,
	'四': 4, '肆': 4,
	'五': 5, '伍': 5,
	'六': 6, '陆': 6, '陸': 6,
	'七': 7, '柒': 7,
	'八': 8, '捌': 8,
	'九': 9, '玖': 9,
}

var unitValues = map[rune]int{
	'十': 10, '拾': 10,
	'百': 100, '佰': 100,
	'千': 1000, '仟': 1000,
	'万': 10000, '萬': 10000,
	'亿': 100000000, '億': 100000000,
}

// group is one entry on the digit-group stack. Big units (万/亿) are kept as
// markers so the final fold knows where a subtotal must be multiplied.
type group struct {
	value int
	big   bool
}

// ToArabic converts a Chinese numeral string to its arithmetic value.
//
// The string is scanned right to left. Unit characters set a pending
// multiplier for the digit to their left; the big units 万 and 亿 are pushed
// as group markers and reset the multiplier to one so the partial sum built
// after them is scaled during the fold. A bare leading 十 with no digit
// (as in 十一) contributes ten on its own.
func ToArabic(s string) (int, error) {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0, ErrEmpty
	}

	unit := 0
	stack := make([]group, 0, len(runes))
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]
		if u, ok := unitValues[r]; ok {
			unit = u
			if u >= 10000 {
				stack = append(stack, group{value: u, big: true})
				unit = 1
			}
			continue
		}
		d, ok := digitValues[r]
		if !ok {
			return 0, fmt.Errorf("numeral: unexpected character %q", r)
		}
		if unit > 0 {
			d *= unit
			unit = 0
		}
		stack = append(stack, group{value: d})
	}
	if unit == 10 {
		// 十一, 十五: the ten had no leading digit.
		stack = append(stack, group{value: 10})
	}

	// Fold in string order (reverse of push order), flushing the running
	// subtotal whenever a big-unit marker is crossed.
	total, subtotal := 0, 0
	for i := len(stack) - 1; i >= 0; i-- {
		g := stack[i]
		if g.big {
			total += subtotal * g.value
			subtotal = 0
			continue
		}
		subtotal += g.value
	}
	return total + subtotal, nil
}
