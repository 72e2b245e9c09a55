package character

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Stats holds exactly one Score per Ability. Being an array, it can never gain
// or lose keys, and copying a Draft copies its stats.
type Stats [abilityCount]Score

// Get returns the score for a. It panics if a is not a valid Ability.
func (s Stats) Get(a Ability) Score {
	mustAbility(a)
	return s[a]
}

// With returns a copy of s with a set to v. It panics if a is not a valid Ability.
func (s Stats) With(a Ability, v Score) Stats {
	mustAbility(a)
	s[a] = v
	return s
}

// MarshalJSON writes an object keyed by ability name in serialization order
func (s Stats) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, score := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%q:", abilityNames[i])
		raw, err := score.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object keyed by ability name. Missing abilities
// default to 0; unknown keys are rejected.
func (s *Stats) UnmarshalJSON(data []byte) error {
	var raw map[string]Score
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	var out Stats
	for name, score := range raw {
		a, err := ParseAbility(name)
		if err != nil || name != a.String() {
			return fmt.Errorf("unknown ability %q in stats", name)
		}
		out[a] = score
	}
	*s = out
	return nil
}

func mustAbility(a Ability) {
	if !a.Valid() {
		panic(fmt.Sprintf("character: unknown ability %d", int(a)))
	}
}
