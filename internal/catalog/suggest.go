package catalog

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a known id.
const maxSuggestDistance = 3

// Suggest returns the known model id closest to s.
func Suggest(s string) (string, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	best, bestDist := "", maxSuggestDistance+1
	for _, e := range All() {
		if d := levenshtein.ComputeDistance(s, e.ID); d < bestDist {
			best, bestDist = e.ID, d
		}
	}
	return best, best != ""
}
