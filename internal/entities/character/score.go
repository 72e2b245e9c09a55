package character

import (
	"fmt"
	"strconv"
)

// Score is a stored ability score: an integer, or the not-a-number sentinel
// left behind by a raw input with no leading digits.
type Score struct {
	value int
	nan   bool
}

// NewScore returns a numeric score
func NewScore(v int) Score {
	return Score{value: v}
}

// NaN returns the not-a-number sentinel
func NaN() Score {
	return Score{nan: true}
}

// IsNaN reports whether s is the not-a-number sentinel
func (s Score) IsNaN() bool {
	return s.nan
}

// Int returns the numeric value; ok is false for the sentinel
func (s Score) Int() (v int, ok bool) {
	return s.value, !s.nan
}

func (s Score) String() string {
	if s.nan {
		return "NaN"
	}
	return strconv.Itoa(s.value)
}

// MarshalJSON writes the score as a number, or null for the sentinel
func (s Score) MarshalJSON() ([]byte, error) {
	if s.nan {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, int64(s.value), 10), nil
}

// UnmarshalJSON reads an integer, or null as the sentinel
func (s *Score) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = NaN()
		return nil
	}
	v, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("ability score must be an integer or null, got %s", data)
	}
	*s = NewScore(v)
	return nil
}
