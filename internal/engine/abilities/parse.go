// Package abilities turns raw form input into ability scores
package abilities

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/coldtimes/MapFantasai/internal/entities/character"
)

// Parse reads the leading base-10 integer of raw, the way a free-text number
// box is read while the user is still typing. Leading whitespace and one sign
// are allowed, anything after the digits is ignored ("12.9" is 12, "17abc" is
// 17). Input with no leading digits, or digits too large for an int, gives
// the not-a-number sentinel. Negative values are kept as typed.
func Parse(raw string) character.Score {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return character.NaN()
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil {
		return character.NaN()
	}
	return character.NewScore(v)
}
