// Package match ranks registered node kinds against an unknown tag so the
// validator can suggest likely-intended alternatives.
package match

import "sort"

// distance computes the Levenshtein edit distance between two strings using
// the two-row formulation, O(len(a)*len(b)) time and O(min) space.
func distance(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			del := prev[i] + 1
			ins := curr[i-1] + 1
			sub := prev[i-1] + cost

			curr[i] = del
			if ins < curr[i] {
				curr[i] = ins
			}
			if sub < curr[i] {
				curr[i] = sub
			}
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Similarity returns a normalized score in [0,1]; 1 means identical.
func Similarity(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}

	return 1.0 - float64(distance(a, b))/float64(maxLen)
}

// scored pairs a candidate kind with its similarity to the query.
type scored struct {
	kind  string
	score float64
}

// SuggestKinds returns up to limit known kinds ranked by similarity to the
// unknown tag, most similar first. Candidates scoring below 0.3 are dropped;
// a garbage tag yields no suggestions rather than misleading ones.
func SuggestKinds(unknown string, known []string, limit int) []string {
	if limit <= 0 || len(known) == 0 {
		return nil
	}

	candidates := make([]scored, 0, len(known))
	for _, k := range known {
		s := Similarity(unknown, k)
		if s < 0.3 {
			continue
		}

		candidates = append(candidates, scored{kind: k, score: s})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].score != candidates[j].score {
			return candidates[i].score > candidates[j].score
		}

		return candidates[i].kind < candidates[j].kind
	})

	if len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.kind
	}

	return out
}
