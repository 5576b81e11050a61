package stats

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/riekarimayu-boop/karin-geo-trainer/internal/model"
)

const (
	defaultTermWidth = 80
	barLabelWidth    = 10
)

// RenderOverview formats the per-deck mastery table.
func RenderOverview(overviews []model.DeckOverview) []string {
	headers := []string{"DECK", "TITLE", "LEARNED", "TOTAL", "PCT"}
	rows := make([][]string, 0, len(overviews))
	for _, o := range overviews {
		rows = append(rows, []string{
			o.Meta.ID,
			o.Meta.Title,
			strconv.Itoa(o.Summary.Learned),
			strconv.Itoa(o.Summary.Total),
			fmt.Sprintf("%d%%", o.Summary.Percent),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true}
	return formatTable(headers, rows, rightAlign)
}

// RenderDecks formats the deck listing with true item counts derived
// from the loaded documents, not the index's advertised counts.
func RenderDecks(metas []model.DeckMeta, decks []model.Deck) []string {
	headers := []string{"DECK", "TITLE", "CARDS", "FILE"}
	rows := make([][]string, 0, len(decks))
	for i, deck := range decks {
		meta := model.DeckMeta{}
		if i < len(metas) {
			meta = metas[i]
		}
		rows = append(rows, []string{
			meta.ID,
			meta.Title,
			strconv.Itoa(len(deck.Items)),
			meta.File,
		})
	}
	return formatTable(headers, rows, map[int]bool{2: true})
}

// RenderBoxes formats a horizontal-bar histogram of items per Leitner
// box, scaled to the terminal width.
func RenderBoxes(overview model.DeckOverview) []string {
	width := terminalWidth()
	barWidth := width - barLabelWidth
	if barWidth < 10 {
		barWidth = 10
	}

	max := 0
	for _, count := range overview.Boxes {
		if count > max {
			max = count
		}
	}

	lines := make([]string, 0, len(overview.Boxes))
	for box, count := range overview.Boxes {
		bar := ""
		if max > 0 {
			bar = strings.Repeat("█", count*barWidth/max)
		}
		if count > 0 && bar == "" {
			bar = "▏"
		}
		lines = append(lines, fmt.Sprintf("box %d %4d %s", box, count, bar))
	}
	return lines
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}
