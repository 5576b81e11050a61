// Package scheduler decides which item to review next and how answers
// move items between Leitner boxes.
package scheduler

import (
	"fmt"
	"time"

	"github.com/riekarimayu-boop/karin-geo-trainer/internal/model"
)

// Intervals maps a Leitner box to its review interval in milliseconds:
// immediate, 1 minute, 10 minutes, 1 hour, 6 hours, 24 hours, 72 hours.
var Intervals = [model.MaxBox + 1]int64{
	0,
	time.Minute.Milliseconds(),
	(10 * time.Minute).Milliseconds(),
	time.Hour.Milliseconds(),
	(6 * time.Hour).Milliseconds(),
	(24 * time.Hour).Milliseconds(),
	(72 * time.Hour).Milliseconds(),
}

// SelectNext picks the item to present. Items whose due timestamp has
// passed win first, earliest due ahead; ties break by deck order. When
// nothing is due the least-mastered item is resurfaced instead: lowest
// box, then earliest due, then deck order, so being ahead of schedule
// never stalls the session. Returns the empty string for an empty deck.
func SelectNext(deck model.Deck, snap model.Snapshot, now time.Time) string {
	nowMs := now.UnixMilli()

	bestIdx := -1
	var best model.CardState
	anyDue := false
	for i, item := range deck.Items {
		state := snap.State(item.ID)
		due := state.Due <= nowMs
		switch {
		case bestIdx == -1:
		case due && !anyDue:
		case due == anyDue && betterCandidate(state, best, anyDue):
		default:
			continue
		}
		bestIdx = i
		best = state
		anyDue = anyDue || due
	}
	if bestIdx == -1 {
		return ""
	}
	return deck.Items[bestIdx].ID
}

// betterCandidate reports whether state should replace best within the
// same phase. Earlier deck positions were seen first, so a strict
// improvement is required.
func betterCandidate(state, best model.CardState, duePhase bool) bool {
	if duePhase {
		return state.Due < best.Due
	}
	if state.Box != best.Box {
		return state.Box < best.Box
	}
	return state.Due < best.Due
}

// ApplyAnswer computes the state transition for one answered item and
// returns an updated copy of the snapshot together with the item's new
// state. No other item's state changes. Passing an item id that is not
// in the deck is a caller bug and panics.
func ApplyAnswer(deck model.Deck, snap model.Snapshot, itemID string, correct bool, now time.Time) (model.Snapshot, model.CardState) {
	if _, ok := deck.ItemByID(itemID); !ok {
		panic(fmt.Sprintf("scheduler: item %q is not in deck %q", itemID, deck.ID))
	}
	nowMs := now.UnixMilli()
	state := snap.State(itemID)

	var next model.CardState
	if correct {
		next.Box = state.Box + 1
		if next.Box > model.MaxBox {
			next.Box = model.MaxBox
		}
		next.Due = nowMs + Intervals[next.Box]
		next.Streak = state.Streak + 1
	} else {
		// A missed item drops to box 0 but waits one minute rather than
		// reappearing instantly.
		next.Box = 0
		next.Due = nowMs + Intervals[1]
		next.Streak = 0
	}

	updated := snap.Clone()
	updated.PerItem[itemID] = next
	return updated, next
}

// Summary counts learned items (box >= 3) for a deck.
func Summary(deck model.Deck, snap model.Snapshot) model.ProgressSummary {
	summary := model.ProgressSummary{Total: len(deck.Items)}
	for _, item := range deck.Items {
		if snap.State(item.ID).Box >= model.LearnedBox {
			summary.Learned++
		}
	}
	if summary.Total > 0 {
		summary.Percent = summary.Learned * 100 / summary.Total
	}
	return summary
}

// BoxCounts tallies deck items per Leitner box.
func BoxCounts(deck model.Deck, snap model.Snapshot) [model.MaxBox + 1]int {
	var counts [model.MaxBox + 1]int
	for _, item := range deck.Items {
		box := snap.State(item.ID).Box
		if box < 0 || box > model.MaxBox {
			continue
		}
		counts[box]++
	}
	return counts
}
