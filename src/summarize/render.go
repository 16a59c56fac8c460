package summarize

import (
	"fmt"
	"strings"
)

// ensureTerminated appends a period unless the sentence already ends with
// sentence punctuation.
func ensureTerminated(s string) string {
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?") {
		return s
	}
	return s + "."
}

// Render formats selected sentences into the final summary text. A single
// sentence becomes plain prose; multiple sentences become a bulleted
// "Key Points" list. A compression footnote is appended only when the
// original text exceeded 1000 characters. Rendering is deterministic: the
// same sentence sequence always produces byte-identical output.
func Render(sentences []Sentence, originalLen int) string {
	if len(sentences) == 0 {
		return "Unable to generate summary - please provide more substantial text."
	}

	if len(sentences) == 1 {
		return ensureTerminated(strings.TrimSpace(sentences[0].Text))
	}

	var sb strings.Builder
	sb.WriteString("**Key Points:**\n")
	for _, sent := range sentences {
		sb.WriteString("• ")
		sb.WriteString(ensureTerminated(strings.TrimSpace(sent.Text)))
		sb.WriteString("\n")
	}

	body := strings.TrimRight(sb.String(), "\n")
	if originalLen > 1000 {
		body += fmt.Sprintf("\n\n*This summary condensed %d characters into %d characters.*",
			originalLen, len(body))
	}
	return body
}
