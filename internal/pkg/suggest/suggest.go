// Package suggest finds the closest known name for a mistyped one
package suggest

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Closest returns the candidate nearest to input by edit distance.
// A candidate is only offered when the distance is small relative to its
// length, so unrelated words produce no suggestion.
func Closest(input string, candidates []string) (string, bool) {
	token := strings.ToLower(strings.TrimSpace(input))
	if token == "" {
		return "", false
	}

	best := ""
	bestDist := -1
	for _, cand := range candidates {
		if strings.HasPrefix(cand, token) && len(token) >= 3 {
			return cand, true
		}
		dist := levenshtein.ComputeDistance(token, cand)
		if dist > limit(len(cand)) {
			continue
		}
		if bestDist < 0 || dist < bestDist {
			best, bestDist = cand, dist
		}
	}

	return best, bestDist >= 0
}

func limit(n int) int {
	switch {
	case n <= 4:
		return 1
	case n <= 8:
		return 2
	default:
		return 3
	}
}
