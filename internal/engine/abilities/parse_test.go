package abilities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coldtimes/MapFantasai/internal/engine/abilities"
	"github.com/coldtimes/MapFantasai/internal/entities/character"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want character.Score
	}{
		{"plain number", "17", character.NewScore(17)},
		{"zero", "0", character.NewScore(0)},
		{"negative kept", "-3", character.NewScore(-3)},
		{"explicit plus", "+8", character.NewScore(8)},
		{"leading whitespace", "  \t12", character.NewScore(12)},
		{"trailing garbage", "17abc", character.NewScore(17)},
		{"decimal truncated", "12.9", character.NewScore(12)},
		{"negative decimal truncated", "-3.7", character.NewScore(-3)},
		{"exponent ignored", "1e3", character.NewScore(1)},
		{"leading zeros", "007", character.NewScore(7)},
		{"empty", "", character.NaN()},
		{"whitespace only", "   ", character.NaN()},
		{"letters", "abc", character.NaN()},
		{"sign only", "-", character.NaN()},
		{"leading dot", ".5", character.NaN()},
		{"double sign", "--4", character.NaN()},
		{"overflow", "99999999999999999999999", character.NaN()},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, abilities.Parse(tc.raw))
		})
	}
}

func TestParseIsIdempotent(t *testing.T) {
	for _, raw := range []string{"17", "abc", "", "-2", "4.5"} {
		assert.Equal(t, abilities.Parse(raw), abilities.Parse(raw), raw)
	}
}
