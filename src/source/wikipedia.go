package source

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	defaultWikipediaBase = "https://en.wikipedia.org"
	wikipediaUserAgent   = "limbor/1.0 (answer engine)"

	// maxExtractLen bounds the returned summary; longer extracts are cut
	// with an ellipsis marker.
	maxExtractLen = 400
)

// interrogativePrefixes are stripped from the front of a query before it is
// used as an encyclopedia topic.
var interrogativePrefixes = []string{
	"what is", "what's", "what are", "who is", "who's", "who was",
	"tell me about", "explain", "how does", "define", "search for", "look up",
}

// Wikipedia looks up a topic summary through the REST summary endpoint,
// falling back to the MediaWiki search API when the direct page is missing.
type Wikipedia struct {
	BaseURL string
	Client  *http.Client
}

// NewWikipedia builds the provider against the public API with an 8 second
// transport timeout.
func NewWikipedia() *Wikipedia {
	return &Wikipedia{
		BaseURL: defaultWikipediaBase,
		Client:  &http.Client{Timeout: 8 * time.Second},
	}
}

func (w *Wikipedia) Name() string { return "Wikipedia" }

// Lookup fetches a summary for the cleaned query. Transport failures,
// missing pages and empty extracts all come back as (nil, nil).
func (w *Wikipedia) Lookup(ctx context.Context, query string) (*Result, error) {
	topic := CleanTopic(query)
	if topic == "" {
		return nil, nil
	}

	extract, pageURL := w.summary(ctx, topic)
	if extract == "" {
		if title := w.searchTitle(ctx, topic); title != "" {
			extract, pageURL = w.summary(ctx, title)
		}
	}
	if extract == "" {
		return nil, nil
	}

	return &Result{
		Source: w.Name(),
		URL:    pageURL,
		Kind:   KindText,
		Text:   Truncate(extract, maxExtractLen),
	}, nil
}

// summary hits the REST summary endpoint and returns the extract text and
// the canonical page URL, or empty strings when anything goes wrong.
func (w *Wikipedia) summary(ctx context.Context, topic string) (extract, pageURL string) {
	endpoint := w.BaseURL + "/api/rest_v1/page/summary/" + url.PathEscape(topic)
	body, ok := w.get(ctx, endpoint)
	if !ok {
		return "", ""
	}
	return gjson.GetBytes(body, "extract").String(),
		gjson.GetBytes(body, "content_urls.desktop.page").String()
}

// searchTitle asks the MediaWiki search API for the best matching page title.
func (w *Wikipedia) searchTitle(ctx context.Context, topic string) string {
	params := url.Values{
		"action":   {"query"},
		"list":     {"search"},
		"srsearch": {topic},
		"format":   {"json"},
		"srlimit":  {"1"},
	}
	body, ok := w.get(ctx, w.BaseURL+"/w/api.php?"+params.Encode())
	if !ok {
		return ""
	}
	return gjson.GetBytes(body, "query.search.0.title").String()
}

func (w *Wikipedia) get(ctx context.Context, endpoint string) ([]byte, bool) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, false
	}
	req.Header.Set("User-Agent", wikipediaUserAgent)

	client := w.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, false
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, false
	}
	return body, true
}

// CleanTopic strips interrogative prefixes and trailing question marks from
// a free-text query, leaving the bare topic.
func CleanTopic(query string) string {
	topic := strings.TrimSpace(query)
	lower := strings.ToLower(topic)
	for _, prefix := range interrogativePrefixes {
		if strings.HasPrefix(lower, prefix) {
			topic = strings.TrimSpace(topic[len(prefix):])
			lower = strings.ToLower(topic)
		}
	}
	topic = strings.TrimRight(topic, "?!. ")
	return strings.TrimSpace(topic)
}

// Truncate cuts s to at most max bytes, marking the cut with an ellipsis.
func Truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max - 3
	// Back up to a rune boundary so the ellipsis never splits a character.
	for cut > 0 && s[cut]&0xC0 == 0x80 {
		cut--
	}
	return s[:cut] + "..."
}
