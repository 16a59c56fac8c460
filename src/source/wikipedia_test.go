package source

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestWikipedia(handler http.Handler) (*Wikipedia, *httptest.Server) {
	srv := httptest.NewServer(handler)
	w := NewWikipedia()
	w.BaseURL = srv.URL
	w.Client = srv.Client()
	return w, srv
}

func TestWikipediaDirectSummary(t *testing.T) {
	w, srv := newTestWikipedia(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/api/rest_v1/page/summary/") {
			http.NotFound(rw, r)
			return
		}
		fmt.Fprint(rw, `{"extract":"Go is a statically typed programming language designed at Google.","content_urls":{"desktop":{"page":"https://en.wikipedia.org/wiki/Go"}}}`)
	}))
	defer srv.Close()

	res, err := w.Lookup(context.Background(), "what is Go")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if res == nil {
		t.Fatalf("expected a result")
	}
	if res.Kind != KindText {
		t.Fatalf("expected text result, got kind %d", res.Kind)
	}
	if !strings.Contains(res.Text, "statically typed") {
		t.Fatalf("unexpected extract: %q", res.Text)
	}
	if res.URL != "https://en.wikipedia.org/wiki/Go" {
		t.Fatalf("unexpected page url: %q", res.URL)
	}
}

func TestWikipediaSearchFallback(t *testing.T) {
	var summaryHits int
	w, srv := newTestWikipedia(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasPrefix(r.URL.Path, "/api/rest_v1/page/summary/"):
			summaryHits++
			if strings.Contains(r.URL.Path, "Grace%20Hopper") || strings.Contains(r.URL.Path, "Grace+Hopper") || strings.Contains(r.URL.Path, "Grace Hopper") {
				fmt.Fprint(rw, `{"extract":"Grace Hopper was an American computer scientist and Navy rear admiral."}`)
				return
			}
			http.NotFound(rw, r)
		case r.URL.Path == "/w/api.php":
			fmt.Fprint(rw, `{"query":{"search":[{"title":"Grace Hopper"}]}}`)
		default:
			http.NotFound(rw, r)
		}
	}))
	defer srv.Close()

	res, err := w.Lookup(context.Background(), "who is grace hoper")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if res == nil {
		t.Fatalf("expected fallback search to rescue the lookup")
	}
	if !strings.Contains(res.Text, "computer scientist") {
		t.Fatalf("unexpected extract: %q", res.Text)
	}
	if summaryHits != 2 {
		t.Fatalf("expected direct miss then fallback hit, got %d summary calls", summaryHits)
	}
}

func TestWikipediaTruncatesLongExtracts(t *testing.T) {
	long := strings.Repeat("All work and no play makes a dull answer. ", 20)
	w, srv := newTestWikipedia(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(rw, `{"extract":%q}`, long)
	}))
	defer srv.Close()

	res, err := w.Lookup(context.Background(), "dullness")
	if err != nil || res == nil {
		t.Fatalf("expected result, got res=%v err=%v", res, err)
	}
	if len(res.Text) > maxExtractLen {
		t.Fatalf("extract not truncated: %d bytes", len(res.Text))
	}
	if !strings.HasSuffix(res.Text, "...") {
		t.Fatalf("truncation must end with ellipsis: %q", res.Text)
	}
}

func TestWikipediaTransportFailureIsNoResult(t *testing.T) {
	w, srv := newTestWikipedia(http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		http.Error(rw, "boom", http.StatusInternalServerError)
	}))
	srv.Close() // closed server: the request itself fails

	res, err := w.Lookup(context.Background(), "anything at all")
	if err != nil {
		t.Fatalf("transport failure must not surface as error, got %v", err)
	}
	if res != nil {
		t.Fatalf("transport failure must be no-result, got %+v", res)
	}
}

func TestWikipediaEmptyTopicIsNoResult(t *testing.T) {
	w := NewWikipedia()
	res, err := w.Lookup(context.Background(), "what is")
	if err != nil || res != nil {
		t.Fatalf("empty topic should short-circuit, got res=%v err=%v", res, err)
	}
}

func TestCleanTopic(t *testing.T) {
	cases := []struct{ in, want string }{
		{"what is NPU?", "NPU"},
		{"Who is Ada Lovelace", "Ada Lovelace"},
		{"explain quantum computing", "quantum computing"},
		{"tell me about black holes!", "black holes"},
		{"gravity", "gravity"},
		{"what is", ""},
	}
	for _, c := range cases {
		if got := CleanTopic(c.in); got != c.want {
			t.Fatalf("CleanTopic(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
