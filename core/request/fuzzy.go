package request

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

const (
	// MinSimilarity is the lowest similarity accepted as a match.
	MinSimilarity = 0.6
	// MaxSuggestions caps the candidates returned by Suggest.
	MaxSuggestions = 3
)

type candidate struct {
	name  string
	score float64
}

// Similarity returns 1 - distance/longest over the lower-cased names, in [0, 1].
func Similarity(a, b string) float64 {
	a, b = strings.ToLower(a), strings.ToLower(b)
	longest := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if longest == 0 {
		return 1
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(longest)
}

// Suggest returns up to MaxSuggestions names from known that are at least MinSimilarity
// similar to name, best first. Ties sort by name.
func Suggest(name string, known []string) []string {
	var cands []candidate
	for _, k := range known {
		if s := Similarity(name, k); s >= MinSimilarity {
			cands = append(cands, candidate{name: k, score: s})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].score == cands[j].score {
			return cands[i].name < cands[j].name
		}
		return cands[i].score > cands[j].score
	})
	if len(cands) > MaxSuggestions {
		cands = cands[:MaxSuggestions]
	}
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.name
	}
	return out
}
