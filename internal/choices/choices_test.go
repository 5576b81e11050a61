package choices

import (
	"math/rand"
	"testing"

	"github.com/riekarimayu-boop/karin-geo-trainer/internal/model"
)

func deckOf(answers ...string) model.Deck {
	deck := model.Deck{ID: "d"}
	for i, answer := range answers {
		deck.Items = append(deck.Items, model.Item{
			ID:     string(rune('a' + i)),
			Prompt: "P",
			Answer: answer,
		})
	}
	return deck
}

func TestBuildSynthesizesFourChoices(t *testing.T) {
	deck := deckOf("A", "B", "C", "D", "E")
	rnd := rand.New(rand.NewSource(1))

	for trial := 0; trial < 50; trial++ {
		question, ok := Build(deck.Items[0], deck, rnd)
		if !ok {
			t.Fatalf("expected a question")
		}
		if len(question.Choices) != 4 {
			t.Fatalf("expected 4 choices, got %d", len(question.Choices))
		}
		count := 0
		for _, choice := range question.Choices {
			if choice == "A" {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("canonical answer appears %d times: %v", count, question.Choices)
		}
		if question.Choices[question.CorrectIndex] != "A" {
			t.Fatalf("correct index %d does not point at answer: %v", question.CorrectIndex, question.Choices)
		}
	}
}

func TestBuildInsufficientAlternatives(t *testing.T) {
	// Two distinct answer texts in the whole deck leaves one alternative.
	deck := deckOf("A", "B", "B", "A")
	rnd := rand.New(rand.NewSource(1))

	for _, item := range deck.Items {
		if _, ok := Build(item, deck, rnd); ok {
			t.Fatalf("expected no question for item %q", item.ID)
		}
	}
}

func TestBuildExactlyThreeAlternatives(t *testing.T) {
	deck := deckOf("A", "B", "C", "D")
	rnd := rand.New(rand.NewSource(7))

	question, ok := Build(deck.Items[0], deck, rnd)
	if !ok {
		t.Fatalf("expected a question with exactly 3 alternatives")
	}
	seen := map[string]bool{}
	for _, choice := range question.Choices {
		if seen[choice] {
			t.Fatalf("duplicate choice %q: %v", choice, question.Choices)
		}
		seen[choice] = true
	}
	for _, want := range []string{"A", "B", "C", "D"} {
		if !seen[want] {
			t.Fatalf("missing choice %q: %v", want, question.Choices)
		}
	}
}

func TestBuildExplicitChoicesKept(t *testing.T) {
	deck := deckOf("A", "B", "C", "D")
	item := deck.Items[0]
	item.Choices = []string{"W", "X", "A", "Y"}
	rnd := rand.New(rand.NewSource(3))

	question, ok := Build(item, deck, rnd)
	if !ok {
		t.Fatalf("expected a question")
	}
	if len(question.Choices) != 4 {
		t.Fatalf("expected 4 choices, got %v", question.Choices)
	}
	seen := map[string]bool{}
	for _, choice := range question.Choices {
		seen[choice] = true
	}
	for _, want := range []string{"W", "X", "A", "Y"} {
		if !seen[want] {
			t.Fatalf("explicit choice %q dropped: %v", want, question.Choices)
		}
	}
}

func TestBuildExplicitChoicesMissingAnswerOverwritesFirst(t *testing.T) {
	deck := deckOf("A", "B", "C", "D")
	item := deck.Items[0]
	item.Choices = []string{"W", "X", "Y", "Z"}
	rnd := rand.New(rand.NewSource(5))

	question, ok := Build(item, deck, rnd)
	if !ok {
		t.Fatalf("expected a question")
	}
	seen := map[string]bool{}
	for _, choice := range question.Choices {
		seen[choice] = true
	}
	if !seen["A"] {
		t.Fatalf("answer not injected: %v", question.Choices)
	}
	if seen["W"] {
		t.Fatalf("first explicit entry should have been overwritten: %v", question.Choices)
	}
	if question.Choices[question.CorrectIndex] != "A" {
		t.Fatalf("correct index mismatch: %v", question.Choices)
	}
}

func TestBuildExplicitChoicesAnswerSurvivesTruncation(t *testing.T) {
	// The answer listed past the four-option cutoff must not be dropped.
	deck := deckOf("A", "B", "C", "D")
	item := deck.Items[0]
	item.Choices = []string{"W", "X", "Y", "Z", "A"}

	for seed := int64(0); seed < 20; seed++ {
		rnd := rand.New(rand.NewSource(seed))
		question, ok := Build(item, deck, rnd)
		if !ok {
			t.Fatalf("seed %d: expected a question", seed)
		}
		if len(question.Choices) != 4 {
			t.Fatalf("seed %d: expected 4 choices, got %v", seed, question.Choices)
		}
		count := 0
		for _, choice := range question.Choices {
			if choice == "A" {
				count++
			}
		}
		if count != 1 {
			t.Fatalf("seed %d: answer appears %d times: %v", seed, count, question.Choices)
		}
		if question.Choices[question.CorrectIndex] != "A" {
			t.Fatalf("seed %d: correct index %d does not point at answer: %v",
				seed, question.CorrectIndex, question.Choices)
		}
	}
}

func TestBuildExplicitChoicesToppedUpFromDeck(t *testing.T) {
	deck := deckOf("A", "B", "C", "D", "E")
	item := deck.Items[0]
	item.Choices = []string{"A", "X"}
	rnd := rand.New(rand.NewSource(11))

	question, ok := Build(item, deck, rnd)
	if !ok {
		t.Fatalf("expected a question")
	}
	if len(question.Choices) != 4 {
		t.Fatalf("expected top-up to 4 choices, got %v", question.Choices)
	}
	seen := map[string]bool{}
	for _, choice := range question.Choices {
		if seen[choice] {
			t.Fatalf("duplicate filler %q: %v", choice, question.Choices)
		}
		seen[choice] = true
	}
	if !seen["A"] || !seen["X"] {
		t.Fatalf("explicit entries lost: %v", question.Choices)
	}
}

func TestBuildDeterministicUnderSeed(t *testing.T) {
	deck := deckOf("A", "B", "C", "D", "E", "F")

	first, _ := Build(deck.Items[0], deck, rand.New(rand.NewSource(42)))
	second, _ := Build(deck.Items[0], deck, rand.New(rand.NewSource(42)))
	for i := range first.Choices {
		if first.Choices[i] != second.Choices[i] {
			t.Fatalf("seeded builds differ: %v vs %v", first.Choices, second.Choices)
		}
	}
}
