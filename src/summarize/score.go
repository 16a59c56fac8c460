package summarize

import (
	"strings"
	"unicode"
)

// ScoredSentence pairs a sentence with its heuristic importance score.
// Scores are sums of independent non-negative contributions, so they are
// never negative and have no upper bound.
type ScoredSentence struct {
	Sentence
	Score int
}

// keywords that bump a sentence's score. Each keyword contributes at most
// once per sentence, matched as a case-insensitive substring.
var keywords = []string{
	"important", "key", "main", "primary", "significant", "crucial",
	"essential", "major", "conclusion", "result", "therefore", "however",
	"because",
}

// Score assigns an importance score to every sentence. The output has the
// same length and order as the input, and identical input always yields
// identical scores.
func Score(sentences []Sentence) []ScoredSentence {
	n := len(sentences)
	scored := make([]ScoredSentence, n)

	for i, sent := range sentences {
		score := 0

		// First and last sentences carry the most positional weight.
		switch {
		case i == 0:
			score += 3
		case i == n-1:
			score += 2
		case float64(i) < 0.3*float64(n):
			score++
		}

		// Medium-length sentences score best; the tighter band wins.
		switch l := len(sent.Text); {
		case l >= 50 && l < 200:
			score += 2
		case l > 20 && l < 300:
			score++
		}

		lower := strings.ToLower(sent.Text)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}

		if strings.ContainsFunc(sent.Text, unicode.IsDigit) {
			score++
		}

		scored[i] = ScoredSentence{Sentence: sent, Score: score}
	}
	return scored
}
