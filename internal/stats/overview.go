// Package stats contains mastery calculations and reporting.
package stats

import (
	"context"

	"github.com/riekarimayu-boop/karin-geo-trainer/internal/model"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/progress"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/scheduler"
)

// BuildOverview computes per-deck mastery summaries and box histograms.
// Decks and metas are parallel slices as produced by the deck source.
func BuildOverview(ctx context.Context, metas []model.DeckMeta, decks []model.Deck, store *progress.Store) []model.DeckOverview {
	overviews := make([]model.DeckOverview, 0, len(decks))
	for i, deck := range decks {
		snap := store.Load(ctx, deck.ID)
		overview := model.DeckOverview{
			Summary: scheduler.Summary(deck, snap),
			Boxes:   scheduler.BoxCounts(deck, snap),
		}
		if i < len(metas) {
			overview.Meta = metas[i]
		}
		overviews = append(overviews, overview)
	}
	return overviews
}
