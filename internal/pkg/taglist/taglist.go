// Package taglist edits ordered, duplicate-permitting lists of tags.
// The inventory, personality trait and quirk lists all share it.
package taglist

import (
	"fmt"
	"strings"
)

// Add returns a new list with the trimmed raw input appended. Input that is
// empty after trimming returns list unchanged.
func Add[L ~[]string](list L, raw string) L {
	tag := strings.TrimSpace(raw)
	if tag == "" {
		return list
	}

	out := make(L, len(list), len(list)+1)
	copy(out, list)
	return append(out, tag)
}

// Remove returns a new list without the element at index, keeping the order
// of the rest. An index outside the list panics: the caller rendered an index
// that does not exist.
func Remove[L ~[]string](list L, index int) L {
	if index < 0 || index >= len(list) {
		panic(fmt.Sprintf("taglist: remove index %d out of range [0,%d)", index, len(list)))
	}

	out := make(L, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...)
}

// InRange reports whether index addresses an element of list
func InRange[L ~[]string](list L, index int) bool {
	return index >= 0 && index < len(list)
}
