package summarize

import "strings"

// Sentence is one qualifying fragment of the source text. Position is the
// emission index within a single segmentation run and is never reused.
type Sentence struct {
	Text     string
	Position int
}

// minFragmentLen is the shortest trimmed fragment worth keeping. The scripted
// variants this engine replaces disagreed (10 vs 15); 12 is the documented
// compromise.
const minFragmentLen = 12

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// Segment splits text into candidate sentences on runs of '.', '!' and '?',
// consuming the delimiters. Fragments whose trimmed length is at most
// minFragmentLen are discarded. An input with no qualifying fragments yields
// an empty slice, not an error.
func Segment(text string) []Sentence {
	pieces := strings.FieldsFunc(text, isTerminator)

	var out []Sentence
	for _, piece := range pieces {
		piece = strings.TrimSpace(piece)
		if len(piece) <= minFragmentLen {
			continue
		}
		out = append(out, Sentence{Text: piece, Position: len(out)})
	}
	return out
}
