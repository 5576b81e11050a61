package rewards

import (
	"context"
	"encoding/json"
	"math/rand"

	"github.com/riekarimayu-boop/karin-geo-trainer/internal/kv"
)

const walletKey = "rewards/state"

// walletState is the persisted form of a wallet.
type walletState struct {
	Owned        []string `json:"owned"`
	Score        int      `json:"score"`
	TotalCorrect int      `json:"totalCorrect"`
	BestStreak   int      `json:"bestStreak"`
}

// Wallet tracks lifetime counters and the owned card collection across
// decks. It persists as a single key-value entry; a missing or
// unparsable stored value degrades to an empty wallet.
type Wallet struct {
	kv           kv.KV
	owned        map[string]bool
	score        int
	totalCorrect int
	bestStreak   int
}

// LoadWallet reads the wallet from the key-value store.
func LoadWallet(ctx context.Context, store kv.KV) *Wallet {
	w := &Wallet{kv: store, owned: map[string]bool{}}
	raw, ok, err := store.Get(ctx, walletKey)
	if err != nil || !ok {
		return w
	}
	var state walletState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return w
	}
	for _, id := range state.Owned {
		if _, known := CardByID(id); known {
			w.owned[id] = true
		}
	}
	w.score = state.Score
	w.totalCorrect = state.TotalCorrect
	w.bestStreak = state.BestStreak
	return w
}

// RecordCorrect bumps the lifetime counters for a correct answer and
// grants a card on every GrantInterval-th correct answer. The granted
// card, if any, is returned.
func (w *Wallet) RecordCorrect(ctx context.Context, streak int, rnd *rand.Rand) (Card, bool) {
	w.score++
	w.totalCorrect++
	if streak > w.bestStreak {
		w.bestStreak = streak
	}
	var granted Card
	ok := false
	if w.totalCorrect%GrantInterval == 0 {
		granted = Grant(w.owned, rnd)
		w.owned[granted.ID] = true
		ok = true
	}
	w.save(ctx)
	return granted, ok
}

// Owned reports whether a card is in the collection.
func (w *Wallet) Owned(cardID string) bool {
	return w.owned[cardID]
}

// OwnedCount returns the number of collected cards.
func (w *Wallet) OwnedCount() int {
	return len(w.owned)
}

// Score returns the lifetime correct-answer score.
func (w *Wallet) Score() int {
	return w.score
}

// TotalCorrect returns the lifetime correct-answer count.
func (w *Wallet) TotalCorrect() int {
	return w.totalCorrect
}

// BestStreak returns the best streak seen so far.
func (w *Wallet) BestStreak() int {
	return w.bestStreak
}

func (w *Wallet) save(ctx context.Context) {
	owned := make([]string, 0, len(w.owned))
	for _, card := range Cards {
		if w.owned[card.ID] {
			owned = append(owned, card.ID)
		}
	}
	state := walletState{
		Owned:        owned,
		Score:        w.score,
		TotalCorrect: w.totalCorrect,
		BestStreak:   w.bestStreak,
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return
	}
	// Write failures degrade to in-memory state for the session.
	_ = w.kv.Set(ctx, walletKey, string(raw))
}
