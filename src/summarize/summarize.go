// Package summarize implements deterministic extractive summarization:
// sentence segmentation, heuristic scoring, key-sentence selection and
// rendering. The pipeline is pure and allocation-local, so it is safe to run
// from any number of goroutines without coordination.
package summarize

import "strings"

// minChars is the sanity floor below which summarization is pointless.
const minChars = 50

const alreadyConciseLabel = "This text is already concise:"

const emptyInputGuidance = `There is no text to summarize yet. Paste the text after your request, for example: "summarize this: <your text>".`

// Summarize runs the full pipeline on text and returns the rendered summary.
// Texts with fewer than three qualifying sentences come back verbatim under
// an "already concise" label, and empty or whitespace-only input yields a
// usage hint. Summarize never fails.
func Summarize(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return emptyInputGuidance
	}
	if len(trimmed) < minChars {
		return alreadyConciseLabel + "\n\n" + trimmed
	}

	sentences := Segment(trimmed)
	if len(sentences) < 3 {
		return alreadyConciseLabel + "\n\n" + trimmed
	}

	return Render(Select(Score(sentences)), len(trimmed))
}
