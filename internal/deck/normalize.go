// Package deck loads deck documents and normalizes them into canonical decks.
package deck

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/riekarimayu-boop/karin-geo-trainer/internal/model"
)

// rawItem tolerates both the short (q/a) and the long (prompt/answer)
// field spellings found in deck documents.
type rawItem struct {
	ID      string   `json:"id"`
	Q       string   `json:"q"`
	Prompt  string   `json:"prompt"`
	A       string   `json:"a"`
	Answer  string   `json:"answer"`
	Hint    string   `json:"hint"`
	Choices []string `json:"choices"`
}

type rawDeck struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Items       json.RawMessage `json:"items"`
}

// Normalize converts a raw deck document into a canonical deck. The
// document may be an object carrying an items sequence plus optional
// metadata, or a bare sequence of items; any other shape degrades to a
// deck with no items. Normalize never fails: malformed content produces
// empty or defaulted values so the caller stays navigable.
func Normalize(meta model.DeckMeta, raw []byte) model.Deck {
	deck := model.Deck{
		ID:          meta.ID,
		Title:       meta.Title,
		Description: meta.Description,
	}

	var items []rawItem
	switch firstToken(raw) {
	case '{':
		var doc rawDeck
		if err := json.Unmarshal(raw, &doc); err == nil {
			if doc.ID != "" {
				deck.ID = doc.ID
			}
			if doc.Title != "" {
				deck.Title = doc.Title
			}
			if doc.Description != "" {
				deck.Description = doc.Description
			}
			items = decodeItems(doc.Items)
		}
	case '[':
		items = decodeItems(raw)
	}

	deck.Items = make([]model.Item, 0, len(items))
	for ordinal, item := range items {
		deck.Items = append(deck.Items, canonicalItem(deck.ID, ordinal, item))
	}
	return deck
}

func decodeItems(raw json.RawMessage) []rawItem {
	if len(raw) == 0 {
		return nil
	}
	var items []rawItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

func canonicalItem(deckID string, ordinal int, item rawItem) model.Item {
	id := item.ID
	if id == "" {
		// Ordinals follow source position, so ids are stable across
		// reloads of the same document.
		id = fmt.Sprintf("%s#%d", deckID, ordinal)
	}
	prompt := item.Q
	if prompt == "" {
		prompt = item.Prompt
	}
	answer := item.A
	if answer == "" {
		answer = item.Answer
	}
	return model.Item{
		ID:      id,
		Prompt:  prompt,
		Answer:  answer,
		Hint:    item.Hint,
		Choices: item.Choices,
	}
}

func firstToken(raw []byte) byte {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return 0
	}
	return trimmed[0]
}
