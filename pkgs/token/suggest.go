package token

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// KindFromName resolves a kind by its display name, case-insensitively.
func KindFromName(name string) (Kind, bool) {
	upper := strings.ToUpper(name)
	for i, n := range kindNames {
		if n == upper {
			return Kind(i), true
		}
	}
	return EOF, false
}

// SuggestKind returns the closest known kind name for a misspelled one,
// for "did you mean" hints in tooling. Returns false when nothing is
// close enough to be worth suggesting.
func SuggestKind(name string) (string, bool) {
	ranks := fuzzy.RankFindNormalizedFold(name, kindNames[:])
	if len(ranks) == 0 {
		return "", false
	}
	sort.Sort(ranks)
	return ranks[0].Target, true
}
