package scheduler

import (
	"testing"
	"time"

	"github.com/riekarimayu-boop/karin-geo-trainer/internal/model"
)

func testDeck(n int) model.Deck {
	deck := model.Deck{ID: "d"}
	for i := 0; i < n; i++ {
		deck.Items = append(deck.Items, model.Item{
			ID:     string(rune('a' + i)),
			Prompt: "P",
			Answer: "A",
		})
	}
	return deck
}

func TestApplyAnswerCorrectClimbsBoxes(t *testing.T) {
	deck := testDeck(1)
	snap := model.NewSnapshot("d")
	now := time.UnixMilli(1_000_000)

	for step, wantBox := range []int{1, 2, 3, 4, 5, 6, 6} {
		var state model.CardState
		snap, state = ApplyAnswer(deck, snap, "a", true, now)
		if state.Box != wantBox {
			t.Fatalf("step %d: expected box %d, got %d", step, wantBox, state.Box)
		}
		if state.Streak != step+1 {
			t.Fatalf("step %d: expected streak %d, got %d", step, step+1, state.Streak)
		}
		if want := now.UnixMilli() + Intervals[wantBox]; state.Due != want {
			t.Fatalf("step %d: expected due %d, got %d", step, want, state.Due)
		}
		if state.Box < 0 || state.Box > model.MaxBox {
			t.Fatalf("step %d: box out of range: %d", step, state.Box)
		}
	}
}

func TestApplyAnswerFiveCorrectFromZero(t *testing.T) {
	deck := testDeck(1)
	snap := model.NewSnapshot("d")
	now := time.UnixMilli(0)

	var state model.CardState
	for i := 0; i < 5; i++ {
		now = now.Add(time.Second)
		snap, state = ApplyAnswer(deck, snap, "a", true, now)
	}
	if state.Box != 5 {
		t.Fatalf("expected box 5 after 5 correct answers, got %d", state.Box)
	}
	if want := now.UnixMilli() + (24 * time.Hour).Milliseconds(); state.Due != want {
		t.Fatalf("expected 24h due %d, got %d", want, state.Due)
	}
}

func TestApplyAnswerIncorrectResets(t *testing.T) {
	deck := testDeck(1)
	snap := model.NewSnapshot("d")
	now := time.UnixMilli(500_000)

	// Climb to box 4 first.
	for i := 0; i < 4; i++ {
		snap, _ = ApplyAnswer(deck, snap, "a", true, now)
	}
	snap, state := ApplyAnswer(deck, snap, "a", false, now)
	if state.Box != 0 {
		t.Fatalf("expected box 0 after incorrect answer, got %d", state.Box)
	}
	if state.Streak != 0 {
		t.Fatalf("expected streak 0, got %d", state.Streak)
	}
	// A missed item waits one minute, not zero.
	if want := now.UnixMilli() + time.Minute.Milliseconds(); state.Due != want {
		t.Fatalf("expected due %d, got %d", want, state.Due)
	}
	if got := snap.State("a"); got != state {
		t.Fatalf("snapshot not updated: %+v vs %+v", got, state)
	}
}

func TestApplyAnswerCopiesSnapshot(t *testing.T) {
	deck := testDeck(2)
	snap := model.NewSnapshot("d")
	now := time.UnixMilli(1000)

	updated, _ := ApplyAnswer(deck, snap, "a", true, now)
	if _, ok := snap.PerItem["a"]; ok {
		t.Fatalf("original snapshot mutated in place")
	}
	if _, ok := updated.PerItem["b"]; ok {
		t.Fatalf("unrelated item state created")
	}
}

func TestApplyAnswerUnknownItemPanics(t *testing.T) {
	deck := testDeck(1)
	snap := model.NewSnapshot("d")
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for unknown item id")
		}
	}()
	ApplyAnswer(deck, snap, "missing", true, time.Now())
}

func TestSelectNextAllDefaultPicksFirst(t *testing.T) {
	deck := testDeck(6)
	snap := model.NewSnapshot("d")
	if got := SelectNext(deck, snap, time.Now()); got != "a" {
		t.Fatalf("expected first item by deck order, got %q", got)
	}
}

func TestSelectNextPrefersEarliestDue(t *testing.T) {
	deck := testDeck(3)
	snap := model.NewSnapshot("d")
	now := time.UnixMilli(10_000)
	snap.PerItem["a"] = model.CardState{Box: 1, Due: 9_000}
	snap.PerItem["b"] = model.CardState{Box: 1, Due: 5_000}
	snap.PerItem["c"] = model.CardState{Box: 1, Due: 50_000}

	if got := SelectNext(deck, snap, now); got != "b" {
		t.Fatalf("expected earliest due item b, got %q", got)
	}
}

func TestSelectNextNeverSkipsDueForResting(t *testing.T) {
	deck := testDeck(2)
	snap := model.NewSnapshot("d")
	now := time.UnixMilli(10_000)
	snap.PerItem["a"] = model.CardState{Box: 0, Due: 90_000} // resting, low box
	snap.PerItem["b"] = model.CardState{Box: 6, Due: 1_000}  // due, high box

	if got := SelectNext(deck, snap, now); got != "b" {
		t.Fatalf("due item must win over resting item, got %q", got)
	}
}

func TestSelectNextNothingDueFallsBackToLowestBox(t *testing.T) {
	deck := testDeck(3)
	snap := model.NewSnapshot("d")
	now := time.UnixMilli(10_000)
	snap.PerItem["a"] = model.CardState{Box: 4, Due: 20_000}
	snap.PerItem["b"] = model.CardState{Box: 2, Due: 40_000}
	snap.PerItem["c"] = model.CardState{Box: 2, Due: 30_000}

	// Lowest box wins; within box 2 the earlier due wins.
	if got := SelectNext(deck, snap, now); got != "c" {
		t.Fatalf("expected item c, got %q", got)
	}
}

func TestSelectNextFallbackTiesBreakByDeckOrder(t *testing.T) {
	deck := testDeck(3)
	snap := model.NewSnapshot("d")
	now := time.UnixMilli(10_000)
	snap.PerItem["a"] = model.CardState{Box: 3, Due: 20_000}
	snap.PerItem["b"] = model.CardState{Box: 3, Due: 20_000}
	snap.PerItem["c"] = model.CardState{Box: 3, Due: 20_000}

	if got := SelectNext(deck, snap, now); got != "a" {
		t.Fatalf("expected deck-order tie-break, got %q", got)
	}
}

func TestSelectNextEmptyDeck(t *testing.T) {
	if got := SelectNext(model.Deck{ID: "d"}, model.NewSnapshot("d"), time.Now()); got != "" {
		t.Fatalf("expected empty selection for empty deck, got %q", got)
	}
}

func TestSummaryCountsLearned(t *testing.T) {
	deck := testDeck(4)
	snap := model.NewSnapshot("d")
	snap.PerItem["a"] = model.CardState{Box: 3}
	snap.PerItem["b"] = model.CardState{Box: 6}
	snap.PerItem["c"] = model.CardState{Box: 2}

	summary := Summary(deck, snap)
	if summary.Learned != 2 || summary.Total != 4 {
		t.Fatalf("unexpected summary: %+v", summary)
	}
	if summary.Percent != 50 {
		t.Fatalf("expected 50%%, got %d", summary.Percent)
	}
}

func TestBoxCounts(t *testing.T) {
	deck := testDeck(3)
	snap := model.NewSnapshot("d")
	snap.PerItem["a"] = model.CardState{Box: 6}
	snap.PerItem["b"] = model.CardState{Box: 6}

	counts := BoxCounts(deck, snap)
	if counts[6] != 2 || counts[0] != 1 {
		t.Fatalf("unexpected counts: %v", counts)
	}
}
