// Package session wires decks, scheduling, and persistence into the
// surface the presentation layer drives.
package session

import (
	"context"
	"math/rand"
	"time"

	"github.com/riekarimayu-boop/karin-geo-trainer/internal/choices"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/kv"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/model"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/progress"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/rewards"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/scheduler"
)

const lastDeckKey = "session/lastDeck"

// AnswerResult reports the outcome of one answered item.
type AnswerResult struct {
	State   model.CardState
	Message string
	Streak  int
	Reward  rewards.Card
	// HasReward is set when this answer granted a reward card.
	HasReward bool
	// Degraded is set when persisting the snapshot failed; the
	// in-memory state remains authoritative for this session.
	Degraded bool
}

// Session owns one open deck and its mastery snapshot. Turns are
// processed one at a time: each answer reads the current snapshot,
// derives a new one, and persists it, so the host must not interleave
// answers.
type Session struct {
	store  *progress.Store
	wallet *rewards.Wallet
	kv     kv.KV
	rnd    *rand.Rand
	now    func() time.Time

	deck      model.Deck
	snap      model.Snapshot
	currentID string
	streak    int
}

// New constructs a session. The random source drives choice shuffling
// and reward draws; now supplies the scheduling clock.
func New(store *progress.Store, wallet *rewards.Wallet, kvStore kv.KV, rnd *rand.Rand, now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{store: store, wallet: wallet, kv: kvStore, rnd: rnd, now: now}
}

// OpenDeck loads the mastery snapshot for a deck, selects the first
// item, and records the deck as last opened.
func (s *Session) OpenDeck(ctx context.Context, deck model.Deck) {
	s.deck = deck
	s.snap = s.store.Load(ctx, deck.ID)
	s.streak = 0
	s.advance()
	// Remembering the last deck is best-effort.
	_ = s.kv.Set(ctx, lastDeckKey, deck.ID)
}

// Deck returns the open deck.
func (s *Session) Deck() model.Deck {
	return s.deck
}

// Current returns the item selected for presentation. ok is false when
// the deck has no items.
func (s *Session) Current() (model.Item, bool) {
	return s.deck.ItemByID(s.currentID)
}

// CurrentState returns the mastery state of the current item.
func (s *Session) CurrentState() model.CardState {
	return s.snap.State(s.currentID)
}

// Choices builds the multiple-choice presentation for the current item.
// ok is false when the deck cannot supply enough distinct alternatives;
// the caller falls back to a flip-card presentation.
func (s *Session) Choices() (model.Question, bool) {
	item, ok := s.Current()
	if !ok {
		return model.Question{}, false
	}
	return choices.Build(item, s.deck, s.rnd)
}

// Answer applies the state transition for the current item, persists
// the updated snapshot, updates lifetime counters, and advances to the
// next item.
func (s *Session) Answer(ctx context.Context, correct bool) AnswerResult {
	item, ok := s.Current()
	if !ok {
		return AnswerResult{}
	}

	snap, state := scheduler.ApplyAnswer(s.deck, s.snap, item.ID, correct, s.now())
	s.snap = snap

	result := AnswerResult{State: state}
	if err := s.store.Save(ctx, s.snap); err != nil {
		result.Degraded = true
	}

	if correct {
		s.streak++
		result.Message = rewards.CorrectLine(s.streak, s.rnd)
		if card, granted := s.wallet.RecordCorrect(ctx, s.streak, s.rnd); granted {
			result.Reward = card
			result.HasReward = true
		}
	} else {
		s.streak = 0
		result.Message = rewards.WrongLine(s.rnd)
	}
	result.Streak = s.streak

	s.advance()
	return result
}

// ResetDeck discards all mastery state for the open deck, leaving the
// deck itself untouched.
func (s *Session) ResetDeck(ctx context.Context) {
	s.snap = s.store.Reset(ctx, s.deck.ID)
	s.streak = 0
	s.advance()
}

// Progress summarizes mastery of the open deck.
func (s *Session) Progress() model.ProgressSummary {
	return scheduler.Summary(s.deck, s.snap)
}

// Streak returns the running correct streak of this session.
func (s *Session) Streak() int {
	return s.streak
}

// Wallet exposes the lifetime reward state.
func (s *Session) Wallet() *rewards.Wallet {
	return s.wallet
}

func (s *Session) advance() {
	s.currentID = scheduler.SelectNext(s.deck, s.snap, s.now())
}

// LastDeckID returns the id of the deck opened most recently, if any.
func LastDeckID(ctx context.Context, store kv.KV) (string, bool) {
	id, ok, err := store.Get(ctx, lastDeckKey)
	if err != nil || !ok || id == "" {
		return "", false
	}
	return id, true
}
