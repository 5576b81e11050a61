// Package model defines shared data structures.
package model

// DeckMeta describes one entry of the deck index document.
type DeckMeta struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	File        string `json:"file,omitempty"`
	Count       int    `json:"count,omitempty"`
}

// Item is one reviewable unit of a deck.
type Item struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"q"`
	Answer  string   `json:"a"`
	Hint    string   `json:"hint,omitempty"`
	Choices []string `json:"choices,omitempty"`
}

// Deck is an ordered, immutable sequence of items plus metadata.
// Item order is preserved from the source document and is significant.
type Deck struct {
	ID          string
	Title       string
	Description string
	Items       []Item
}

// ItemByID returns the item with the given id and whether it exists.
func (d Deck) ItemByID(id string) (Item, bool) {
	for _, item := range d.Items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

const (
	// MaxBox is the highest Leitner box index.
	MaxBox = 6
	// LearnedBox is the box at which an item counts as learned.
	LearnedBox = 3
)

// CardState is the mastery record for one item within one deck.
// The zero value (box 0, due 0, streak 0) means never seen and
// immediately due.
type CardState struct {
	Box    int   `json:"box"`
	Due    int64 `json:"due"`
	Streak int   `json:"streak"`
}

// SnapshotVersion tags the persisted snapshot format. A stored snapshot
// with any other version is treated as absent.
const SnapshotVersion = 1

// Snapshot is the complete per-deck mastery state, persisted as one unit.
type Snapshot struct {
	DeckID  string               `json:"deckId"`
	Version int                  `json:"version"`
	PerItem map[string]CardState `json:"perItem"`
}

// NewSnapshot returns an empty snapshot for a deck.
func NewSnapshot(deckID string) Snapshot {
	return Snapshot{
		DeckID:  deckID,
		Version: SnapshotVersion,
		PerItem: map[string]CardState{},
	}
}

// Clone returns a deep copy of the snapshot. Mutation always goes through
// a copy so a persisted snapshot is never aliased by a live one.
func (s Snapshot) Clone() Snapshot {
	perItem := make(map[string]CardState, len(s.PerItem))
	for id, state := range s.PerItem {
		perItem[id] = state
	}
	return Snapshot{DeckID: s.DeckID, Version: s.Version, PerItem: perItem}
}

// State returns the card state for an item, falling back to the
// never-seen zero state.
func (s Snapshot) State(itemID string) CardState {
	return s.PerItem[itemID]
}

// Question is a multiple-choice presentation of an item.
type Question struct {
	Prompt       string
	Hint         string
	Choices      []string
	CorrectIndex int
}

// ProgressSummary reports deck mastery for display.
type ProgressSummary struct {
	Learned int
	Total   int
	Percent int
}

// ReviewConfig defines review session settings.
type ReviewConfig struct {
	DecksDir string
	DecksURL string
	Hint     bool
	Cheer    bool
}

// DeckOverview summarizes one deck for stats output.
type DeckOverview struct {
	Meta    DeckMeta
	Summary ProgressSummary
	// Boxes counts items per Leitner box, index 0 through MaxBox.
	Boxes [MaxBox + 1]int
}
