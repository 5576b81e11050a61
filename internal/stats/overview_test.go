package stats

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/riekarimayu-boop/karin-geo-trainer/internal/kv"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/model"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/progress"
)

func TestBuildOverview(t *testing.T) {
	kvStore, err := kv.Open(filepath.Join(t.TempDir(), "geotrainer.db"))
	if err != nil {
		t.Fatalf("open kv: %v", err)
	}
	t.Cleanup(func() {
		_ = kvStore.Close()
	})
	store := progress.NewStore(kvStore)
	ctx := context.Background()

	deck := model.Deck{ID: "d1", Items: []model.Item{
		{ID: "a", Answer: "A"},
		{ID: "b", Answer: "B"},
		{ID: "c", Answer: "C"},
	}}
	snap := model.NewSnapshot("d1")
	snap.PerItem["a"] = model.CardState{Box: 4}
	snap.PerItem["b"] = model.CardState{Box: 2}
	if err := store.Save(ctx, snap); err != nil {
		t.Fatalf("save: %v", err)
	}

	metas := []model.DeckMeta{{ID: "d1", Title: "Deck One", File: "d1.json"}}
	overviews := BuildOverview(ctx, metas, []model.Deck{deck}, store)
	if len(overviews) != 1 {
		t.Fatalf("expected 1 overview, got %d", len(overviews))
	}
	o := overviews[0]
	if o.Meta.Title != "Deck One" {
		t.Fatalf("meta not carried: %+v", o.Meta)
	}
	if o.Summary.Learned != 1 || o.Summary.Total != 3 {
		t.Fatalf("unexpected summary: %+v", o.Summary)
	}
	if o.Boxes[4] != 1 || o.Boxes[2] != 1 || o.Boxes[0] != 1 {
		t.Fatalf("unexpected boxes: %v", o.Boxes)
	}
}

func TestRenderOverviewAlignment(t *testing.T) {
	overviews := []model.DeckOverview{
		{
			Meta:    model.DeckMeta{ID: "d1", Title: "Deck"},
			Summary: model.ProgressSummary{Learned: 2, Total: 10, Percent: 20},
		},
	}
	lines := RenderOverview(overviews)
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	if lines[0][:4] != "DECK" {
		t.Fatalf("unexpected header: %q", lines[0])
	}
}

func TestRenderDecksUsesTrueCounts(t *testing.T) {
	metas := []model.DeckMeta{{ID: "d1", Title: "Deck", File: "d1.json", Count: 999}}
	decks := []model.Deck{{ID: "d1", Items: []model.Item{{ID: "a"}, {ID: "b"}}}}

	lines := RenderDecks(metas, decks)
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d", len(lines))
	}
	row := lines[1]
	if !containsField(row, "2") {
		t.Fatalf("expected derived count 2 in row %q", row)
	}
	if containsField(row, "999") {
		t.Fatalf("advertised count must not be trusted: %q", row)
	}
}

func containsField(row, field string) bool {
	for _, part := range strings.Fields(row) {
		if part == field {
			return true
		}
	}
	return false
}
