package source

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type fakeAgent struct {
	reply string
	err   error

	gotPrompt string
}

func (f *fakeAgent) Generate(_ context.Context, prompt string) (string, error) {
	f.gotPrompt = prompt
	return f.reply, f.err
}

func TestLLMWrapsModelAnswer(t *testing.T) {
	agent := &fakeAgent{reply: "Quicksort is a divide and conquer sorting algorithm."}
	l := NewLLM(agent)

	res, err := l.Lookup(context.Background(), "explain quicksort")
	if err != nil {
		t.Fatalf("Lookup returned error: %v", err)
	}
	if res == nil || res.Kind != KindText {
		t.Fatalf("expected text result, got %+v", res)
	}
	if res.Text != agent.reply {
		t.Fatalf("unexpected answer: %q", res.Text)
	}
	if res.Source != "Language Model" {
		t.Fatalf("unexpected source label: %q", res.Source)
	}
	if !strings.Contains(agent.gotPrompt, "explain quicksort") {
		t.Fatalf("query missing from prompt: %q", agent.gotPrompt)
	}
}

func TestLLMModelErrorIsNoResult(t *testing.T) {
	l := NewLLM(&fakeAgent{err: errors.New("rate limited")})
	res, err := l.Lookup(context.Background(), "anything")
	if err != nil || res != nil {
		t.Fatalf("model error must become no-result, got res=%v err=%v", res, err)
	}
}

func TestLLMEmptyOutputIsNoResult(t *testing.T) {
	l := NewLLM(&fakeAgent{reply: "   \n"})
	res, err := l.Lookup(context.Background(), "anything")
	if err != nil || res != nil {
		t.Fatalf("blank answer must become no-result, got res=%v err=%v", res, err)
	}
}

func TestLLMNilModelIsNoResult(t *testing.T) {
	l := NewLLM(nil)
	res, err := l.Lookup(context.Background(), "anything")
	if err != nil || res != nil {
		t.Fatalf("nil model must report no-result, got res=%v err=%v", res, err)
	}
}

func TestLLMCustomLabel(t *testing.T) {
	l := &LLM{Model: &fakeAgent{reply: "ok answer"}, Label: "GPT"}
	if l.Name() != "GPT" {
		t.Fatalf("Name() = %q", l.Name())
	}
}
