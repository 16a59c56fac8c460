package summarize

import "testing"

func sentencesFrom(texts ...string) []Sentence {
	out := make([]Sentence, len(texts))
	for i, txt := range texts {
		out[i] = Sentence{Text: txt, Position: i}
	}
	return out
}

func TestScorePositionBonuses(t *testing.T) {
	// All texts sit in the 20..50 band so the length bonus is the same +1.
	sents := sentencesFrom(
		"the opening sentence of it all",
		"somewhere in the middle part",
		"another middle filler sentence",
		"one more of the middle block",
		"the very final closing remark",
	)
	scored := Score(sents)
	if scored[0].Score != 3+1 {
		t.Fatalf("first sentence: got %d, want 4", scored[0].Score)
	}
	if scored[4].Score != 2+1 {
		t.Fatalf("last sentence: got %d, want 3", scored[4].Score)
	}
	// Index 1 is below 0.3*5 = 1.5, so it earns the early bonus.
	if scored[1].Score != 1+1 {
		t.Fatalf("early sentence: got %d, want 2", scored[1].Score)
	}
	if scored[2].Score != 0+1 {
		t.Fatalf("middle sentence: got %d, want 1", scored[2].Score)
	}
}

func TestScoreLengthBands(t *testing.T) {
	tight := make([]byte, 60)
	loose := make([]byte, 250)
	tiny := make([]byte, 15)
	for i := range tight {
		tight[i] = 'x'
	}
	for i := range loose {
		loose[i] = 'x'
	}
	for i := range tiny {
		tiny[i] = 'x'
	}

	scored := Score([]Sentence{
		{Text: string(tight), Position: 0},
		{Text: string(loose), Position: 1},
		{Text: string(tiny), Position: 2},
	})
	// Subtract the positional contributions (3, 0, 2) to isolate length.
	if got := scored[0].Score - 3; got != 2 {
		t.Fatalf("tight band: got %d, want 2", got)
	}
	if got := scored[1].Score; got != 1 {
		t.Fatalf("loose band: got %d, want 1", got)
	}
	if got := scored[2].Score - 2; got != 0 {
		t.Fatalf("tiny sentence should earn no length bonus, got %d", got)
	}
}

func TestScoreKeywordMonotonicity(t *testing.T) {
	base := "the committee reviewed the findings over several weeks"
	boosted := "the committee reviewed the key findings over several weeks"

	plain := Score([]Sentence{{Text: base, Position: 0}})[0].Score
	withKeyword := Score([]Sentence{{Text: boosted, Position: 0}})[0].Score
	if withKeyword < plain {
		t.Fatalf("adding a keyword lowered the score: %d -> %d", plain, withKeyword)
	}
	if withKeyword != plain+1 {
		t.Fatalf("single keyword should add exactly 1: %d -> %d", plain, withKeyword)
	}
}

func TestScoreKeywordCountsOncePerKeyword(t *testing.T) {
	one := Score([]Sentence{{Text: "this is important work on display", Position: 0}})[0].Score
	two := Score([]Sentence{{Text: "important and important again for emphasis", Position: 0}})[0].Score
	// Both contain "important" once as far as scoring is concerned.
	if d := two - one; d > 1 {
		t.Fatalf("keyword contribution exceeded one hit per keyword (delta %d)", d)
	}
}

func TestScoreNumericContent(t *testing.T) {
	without := Score([]Sentence{{Text: "revenue grew substantially this quarter", Position: 0}})[0].Score
	with := Score([]Sentence{{Text: "revenue grew 40 percent this quarter!!", Position: 0}})[0].Score
	if with != without+1 {
		t.Fatalf("digit bonus mismatch: %d vs %d", without, with)
	}
}

func TestScoreIsDeterministic(t *testing.T) {
	sents := sentencesFrom(
		"The main result is that 7 of 10 trials succeeded beyond expectation.",
		"However the control group behaved differently than predicted.",
		"Further study is needed before any conclusion can be drawn here.",
	)
	a := Score(sents)
	b := Score(sents)
	if len(a) != len(b) {
		t.Fatalf("length mismatch")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("nondeterministic score at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}
