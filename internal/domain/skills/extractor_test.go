package skills

import (
	"context"
	"errors"
	"log"
	"testing"
)

type fakeTagger struct {
	entities []Entity
	err      error
	calls    int
}

func (t *fakeTagger) Tag(ctx context.Context, text string) ([]Entity, error) {
	t.calls++
	if t.err != nil {
		return nil, t.err
	}
	return t.entities, nil
}

func contains(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}

func TestExtractEmptyText(t *testing.T) {
	e := NewExtractor(nil, log.Default())

	if got := e.Extract(context.Background(), ""); len(got) != 0 {
		t.Fatalf("expected no skills for empty text, got %v", got)
	}
	if got := e.Extract(context.Background(), "   \n\t"); len(got) != 0 {
		t.Fatalf("expected no skills for blank text, got %v", got)
	}
}

func TestExtractExactMatches(t *testing.T) {
	e := NewExtractor(nil, log.Default())

	got := e.Extract(context.Background(), "Experience with Python and Docker required. Knowledge of PostgreSQL is a plus.")
	for _, want := range []string{"python", "docker", "postgresql"} {
		if !contains(got, want) {
			t.Fatalf("expected %q in %v", want, got)
		}
	}
}

func TestExtractPunctuationBoundaries(t *testing.T) {
	e := NewExtractor(nil, log.Default())

	got := e.Extract(context.Background(), "Strong C++ skills, ideally with node.js.")
	if !contains(got, "c++") {
		t.Fatalf("expected c++ in %v", got)
	}
	if !contains(got, "node.js") {
		t.Fatalf("expected node.js in %v", got)
	}
}

func TestExtractVariantsResolveToCanonicalForm(t *testing.T) {
	e := NewExtractor(nil, log.Default())

	got := e.Extract(context.Background(), "We build backend services with node js and express.")
	if !contains(got, "node.js") {
		t.Fatalf("expected variant 'node js' to resolve to node.js, got %v", got)
	}
	if contains(got, "node js") {
		t.Fatalf("raw variant should not appear, got %v", got)
	}
}

func TestExtractUmbrellaIndicators(t *testing.T) {
	e := NewExtractor(nil, log.Default())

	got := e.Extract(context.Background(), "You will write reusable UI pieces with jsx and hooks.")
	if !contains(got, "react") {
		t.Fatalf("expected jsx/hooks to imply react, got %v", got)
	}
}

func TestExtractTaggerFailureIsSoft(t *testing.T) {
	tagger := &fakeTagger{err: errors.New("model loading")}
	e := NewExtractor(tagger, log.Default())

	got := e.Extract(context.Background(), "Looking for a Python engineer.")
	if !contains(got, "python") {
		t.Fatalf("lexical passes should survive a tagger failure, got %v", got)
	}
	if tagger.calls != 1 {
		t.Fatalf("expected exactly one tagger call, got %d", tagger.calls)
	}
}

func TestExtractTaggerFallback(t *testing.T) {
	tagger := &fakeTagger{entities: []Entity{
		{Label: "B-MISC", Word: "##devops"},
		{Label: "O", Word: "coder"},
		{Label: "B-ORG", Word: "io"},
		{Label: "I-MISC", Word: "banana"},
	}}
	e := NewExtractor(tagger, log.Default())

	got := e.Extract(context.Background(), "An unusual posting mentioning nothing from the phrase list.")
	if !contains(got, "devops") {
		t.Fatalf("expected tagged devops entity, got %v", got)
	}
	if contains(got, "coder") {
		t.Fatalf("entities without B-/I- labels must be dropped, got %v", got)
	}
	if contains(got, "io") {
		t.Fatalf("short entities must be dropped, got %v", got)
	}
	if contains(got, "banana") {
		t.Fatalf("non-technical entities must be dropped, got %v", got)
	}
}

func TestExtractDeterministicOrder(t *testing.T) {
	e := NewExtractor(nil, log.Default())
	text := "python sql docker python sql"

	first := e.Extract(context.Background(), text)
	second := e.Extract(context.Background(), text)

	if len(first) != len(second) {
		t.Fatalf("length mismatch: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("order mismatch: %v vs %v", first, second)
		}
	}

	seen := map[string]int{}
	for _, s := range first {
		seen[s]++
		if seen[s] > 1 {
			t.Fatalf("duplicate %q in %v", s, first)
		}
	}
}

func TestExtractFromTitle(t *testing.T) {
	got := ExtractFromTitle("Senior Frontend Developer (Remote)")
	for _, want := range []string{"javascript", "html", "css", "react"} {
		if !contains(got, want) {
			t.Fatalf("expected %q in %v", want, got)
		}
	}

	if got := ExtractFromTitle("Chief Happiness Officer"); len(got) != 0 {
		t.Fatalf("expected no skills for unrelated title, got %v", got)
	}
	if got := ExtractFromTitle(""); len(got) != 0 {
		t.Fatalf("expected no skills for empty title, got %v", got)
	}
}
