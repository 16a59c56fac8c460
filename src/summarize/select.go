package summarize

import "sort"

// keepCount decides how many sentences survive selection for an input of n
// sentences.
func keepCount(n int) int {
	switch {
	case n <= 5:
		return 2
	case n <= 10:
		return 3
	default:
		if third := n / 3; third > 3 {
			return third
		}
		return 3
	}
}

// Select ranks sentences by score and keeps the top keepCount(n). Ties are
// broken by ascending position so the result is stable across runs. The kept
// subset is re-sorted into source order before returning, so a rendered
// summary reads the way the original text did.
func Select(scored []ScoredSentence) []Sentence {
	n := len(scored)
	if n == 0 {
		return nil
	}

	ranked := make([]ScoredSentence, n)
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Position < ranked[j].Position
	})

	keep := keepCount(n)
	if keep > n {
		keep = n
	}
	kept := ranked[:keep]

	sort.Slice(kept, func(i, j int) bool {
		return kept[i].Position < kept[j].Position
	})

	out := make([]Sentence, keep)
	for i, s := range kept {
		out[i] = s.Sentence
	}
	return out
}
