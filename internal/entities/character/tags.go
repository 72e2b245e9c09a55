package character

import (
	"strings"
)

// Tags is an ordered list of trimmed, non-empty strings. Duplicates are allowed.
type Tags []string

// MarshalJSON writes an empty list as [] rather than null
func (t Tags) MarshalJSON() ([]byte, error) {
	if t == nil {
		return []byte("[]"), nil
	}
	return EncodeJSON([]string(t), "")
}

// Clone returns a copy that shares no backing array with t
func (t Tags) Clone() Tags {
	out := make(Tags, len(t))
	copy(out, t)
	return out
}

// valid reports whether every element is already trimmed and non-empty
func (t Tags) valid() (int, bool) {
	for i, tag := range t {
		if tag == "" || strings.TrimSpace(tag) != tag {
			return i, false
		}
	}
	return -1, true
}
