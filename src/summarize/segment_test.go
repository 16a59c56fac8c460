package summarize

import "testing"

func TestSegmentAssignsSequentialPositions(t *testing.T) {
	text := "Sun is a star. It is very hot. It provides light and heat to Earth."
	sentences := Segment(text)
	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d", len(sentences))
	}
	want := []string{"Sun is a star", "It is very hot", "It provides light and heat to Earth"}
	for i, s := range sentences {
		if s.Position != i {
			t.Fatalf("sentence %d has position %d", i, s.Position)
		}
		if s.Text != want[i] {
			t.Fatalf("sentence %d: got %q, want %q", i, s.Text, want[i])
		}
	}
}

func TestSegmentDiscardsShortFragments(t *testing.T) {
	sentences := Segment("Yes. No! Ok? This sentence is long enough to keep.")
	if len(sentences) != 1 {
		t.Fatalf("expected 1 sentence, got %d", len(sentences))
	}
	if sentences[0].Position != 0 {
		t.Fatalf("surviving sentence should be re-indexed to 0, got %d", sentences[0].Position)
	}
}

func TestSegmentConsumesDelimiterRuns(t *testing.T) {
	sentences := Segment("What an incredible result!!! Truly a remarkable outcome?!")
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sentences))
	}
	for _, s := range sentences {
		for _, r := range s.Text {
			if isTerminator(r) {
				t.Fatalf("delimiter leaked into sentence %q", s.Text)
			}
		}
	}
}

func TestSegmentEmptyAndNoise(t *testing.T) {
	if got := Segment(""); len(got) != 0 {
		t.Fatalf("empty input should yield no sentences, got %d", len(got))
	}
	if got := Segment("... !!! ???"); len(got) != 0 {
		t.Fatalf("pure punctuation should yield no sentences, got %d", len(got))
	}
	if got := Segment("a. b. c. d."); len(got) != 0 {
		t.Fatalf("sub-threshold fragments should be discarded, got %d", len(got))
	}
}
