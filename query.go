package limbor

import (
	"regexp"
	"strings"

	"github.com/limbor-ai/limbor/src/mathexpr"
)

// QueryType is the routing decision for one piece of user input.
type QueryType int

const (
	// QueryLookup goes to the answer compiler.
	QueryLookup QueryType = iota
	// QuerySummarize is a summarization request carrying embedded text.
	QuerySummarize
	// QueryMath is a bare arithmetic expression or a calculate request.
	QueryMath
)

var (
	summaryExtractPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?is)summarize this:?\s*(.+)`),
		regexp.MustCompile(`(?is)summary of:?\s*(.+)`),
		regexp.MustCompile(`(?is)\btldr:?\s*(.+)`),
		regexp.MustCompile(`(?is)\bcondense:?\s*(.+)`),
	}

	summaryKeywords = []string{"summarize", "summary", "tldr", "condense"}

	calculatePrefix = regexp.MustCompile(`(?i)^(calculate|compute|what is|what's)\s+`)
)

// classifyQuery decides which subsystem handles the input.
func classifyQuery(input string) QueryType {
	if input == "" {
		return QueryLookup
	}

	if extractMathExpression(input) != "" {
		return QueryMath
	}

	lower := strings.ToLower(input)
	for _, kw := range summaryKeywords {
		if strings.Contains(lower, kw) {
			return QuerySummarize
		}
	}

	return QueryLookup
}

// extractMathExpression pulls a candidate arithmetic expression out of the
// input, stripping a leading "calculate"-style prefix. Empty means the input
// is not a math request.
func extractMathExpression(input string) string {
	expr := strings.TrimSpace(calculatePrefix.ReplaceAllString(input, ""))
	expr = strings.TrimRight(expr, "?!. ")
	if mathexpr.IsCandidate(expr) {
		return expr
	}
	return ""
}

// extractSummaryText finds the text a summarization request carries.
// Pattern-extracted text must be substantial (over 100 characters) to count;
// failing that, a long request (over 500 characters) is treated as the text
// itself.
func extractSummaryText(input string) (string, bool) {
	for _, pattern := range summaryExtractPatterns {
		m := pattern.FindStringSubmatch(input)
		if m == nil {
			continue
		}
		if text := strings.TrimSpace(m[1]); len(text) > 100 {
			return text, true
		}
	}
	if len(input) > 500 {
		return input, true
	}
	return "", false
}
