// Package progress persists per-deck mastery snapshots.
package progress

import (
	"context"
	"encoding/json"

	"github.com/riekarimayu-boop/karin-geo-trainer/internal/kv"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/model"
)

const keyPrefix = "progress/"

// Store loads, saves, and validates mastery snapshots against the
// key-value store. A stored snapshot is the single source of truth for
// one deck and is always replaced as a whole.
type Store struct {
	kv kv.KV
}

// NewStore returns a snapshot store over the given key-value store.
func NewStore(store kv.KV) *Store {
	return &Store{kv: store}
}

// Load returns the snapshot for a deck. A missing, unparsable, or
// mismatching stored value (wrong version or wrong deck id) is discarded
// and replaced with a freshly initialized empty snapshot, which is
// persisted immediately so subsequent loads are stable.
func (s *Store) Load(ctx context.Context, deckID string) model.Snapshot {
	raw, ok, err := s.kv.Get(ctx, keyPrefix+deckID)
	if err == nil && ok {
		var snap model.Snapshot
		if jerr := json.Unmarshal([]byte(raw), &snap); jerr == nil &&
			snap.Version == model.SnapshotVersion && snap.DeckID == deckID {
			if snap.PerItem == nil {
				snap.PerItem = map[string]model.CardState{}
			}
			return snap
		}
	}
	return s.Reset(ctx, deckID)
}

// Save serializes and writes the full snapshot under its deck-scoped
// key. A write failure leaves the in-memory snapshot authoritative for
// the current session; the error is returned so callers can warn about
// degraded durability, but no retry is attempted.
func (s *Store) Save(ctx context.Context, snap model.Snapshot) error {
	raw, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, keyPrefix+snap.DeckID, string(raw))
}

// Reset writes and returns a fresh empty snapshot, unconditionally
// overwriting any stored value.
func (s *Store) Reset(ctx context.Context, deckID string) model.Snapshot {
	snap := model.NewSnapshot(deckID)
	// Persistence failures are non-fatal here as well.
	_ = s.Save(ctx, snap)
	return snap
}
