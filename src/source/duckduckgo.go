package source

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/html"
)

const (
	defaultDuckDuckGoBase = "https://html.duckduckgo.com/html"
	searchUserAgent       = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36"

	// maxSnippets caps how many snippets one lookup returns.
	maxSnippets = 3
	// snippet length window; anything outside is navigation or noise.
	minSnippetLen = 30
	maxSnippetLen = 400
)

// boilerplate phrases that mark a snippet as navigation, consent banners or
// ads rather than content.
var snippetBlocklist = []string{
	"cookies", "privacy", "javascript", "sign in", "advertisement",
}

// DuckDuckGo extracts result snippets from the HTML search results page.
type DuckDuckGo struct {
	BaseURL string
	Client  *http.Client
}

// NewDuckDuckGo builds the provider against the public HTML endpoint.
func NewDuckDuckGo() *DuckDuckGo {
	return &DuckDuckGo{
		BaseURL: defaultDuckDuckGoBase,
		Client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (d *DuckDuckGo) Name() string { return "DuckDuckGo Search" }

// Lookup fetches and scrapes the results page. Transport failures, parse
// failures and pages without usable snippets all yield (nil, nil).
func (d *DuckDuckGo) Lookup(ctx context.Context, query string) (*Result, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}

	searchURL := d.BaseURL + "/?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, nil
	}
	req.Header.Set("User-Agent", searchUserAgent)

	client := d.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, nil
	}

	doc, err := html.Parse(resp.Body)
	if err != nil {
		return nil, nil
	}

	snippets := extractSnippets(doc)
	if len(snippets) == 0 {
		return nil, nil
	}
	return &Result{
		Source:   d.Name(),
		URL:      searchURL,
		Kind:     KindSnippets,
		Snippets: snippets,
	}, nil
}

// extractSnippets walks the parsed results page, pulls candidate snippets
// out of result blocks, filters boilerplate and deduplicates by containment.
func extractSnippets(doc *html.Node) []Snippet {
	var candidates []Snippet
	walk(doc, func(n *html.Node) {
		if n.Type != html.ElementNode || !hasClass(n, "result") {
			return
		}
		snip := snippetFromResult(n)
		if snip.Snippet != "" {
			candidates = append(candidates, snip)
		}
	})

	var kept []Snippet
	for _, cand := range candidates {
		if !usableSnippet(cand.Snippet) {
			continue
		}
		if kept = mergeSnippet(kept, cand); len(kept) == maxSnippets {
			// Containment can still replace entries, so keep scanning only
			// if there is room; three good snippets is the contract.
			break
		}
	}
	return kept
}

// snippetFromResult pulls the title, link and snippet text out of one
// result block.
func snippetFromResult(block *html.Node) Snippet {
	var snip Snippet
	walk(block, func(n *html.Node) {
		if n.Type != html.ElementNode {
			return
		}
		switch {
		case hasClass(n, "result__a"):
			if snip.Title == "" {
				snip.Title = strings.TrimSpace(textContent(n))
				snip.URL = attr(n, "href")
			}
		case hasClass(n, "snippet"):
			if snip.Snippet == "" {
				snip.Snippet = strings.TrimSpace(textContent(n))
			}
		}
	})
	return snip
}

func usableSnippet(text string) bool {
	if len(text) < minSnippetLen || len(text) > maxSnippetLen {
		return false
	}
	lower := strings.ToLower(text)
	for _, blocked := range snippetBlocklist {
		if strings.Contains(lower, blocked) {
			return false
		}
	}
	return true
}

// mergeSnippet adds cand to kept unless its text is contained in an already
// kept snippet; a kept snippet contained in cand is replaced, so at most one
// of any containment pair survives.
func mergeSnippet(kept []Snippet, cand Snippet) []Snippet {
	lower := strings.ToLower(cand.Snippet)
	for i, existing := range kept {
		existingLower := strings.ToLower(existing.Snippet)
		if strings.Contains(existingLower, lower) {
			return kept
		}
		if strings.Contains(lower, existingLower) {
			kept[i] = cand
			return kept
		}
	}
	return append(kept, cand)
}

func walk(n *html.Node, visit func(*html.Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func hasClass(n *html.Node, substr string) bool {
	return strings.Contains(attr(n, "class"), substr)
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	walk(n, func(c *html.Node) {
		if c.Type == html.TextNode {
			sb.WriteString(c.Data)
		}
	})
	return strings.Join(strings.Fields(sb.String()), " ")
}
