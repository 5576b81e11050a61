// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riekarimayu-boop/karin-geo-trainer/internal/model"
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	barStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	borderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")).
			Padding(0, 1)
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	overviews []model.DeckOverview
	table     table.Model

	width  int
	height int
}

// NewModel constructs a stats UI model over precomputed overviews.
func NewModel(overviews []model.DeckOverview) *Model {
	columns := []table.Column{
		{Title: "Deck", Width: 18},
		{Title: "Title", Width: 36},
		{Title: "Learned", Width: 8},
		{Title: "Total", Width: 6},
		{Title: "Pct", Width: 5},
	}
	rows := make([]table.Row, 0, len(overviews))
	for _, o := range overviews {
		rows = append(rows, table.Row{
			o.Meta.ID,
			o.Meta.Title,
			strconv.Itoa(o.Summary.Learned),
			strconv.Itoa(o.Summary.Total),
			fmt.Sprintf("%d%%", o.Summary.Percent),
		})
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(len(rows)+1),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("#B0B0B0")).Bold(true)
	styles.Selected = styles.Selected.Foreground(lipgloss.Color("#F0F0F0")).Background(lipgloss.Color("#2F2F2F")).Bold(true)
	t.SetStyles(styles)

	return &Model{overviews: overviews, table: t}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" || msg.Type == tea.KeyEsc {
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if len(m.overviews) == 0 {
		return mutedStyle.Render("No decks found.")
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("Deck mastery"))
	b.WriteString("\n\n")
	b.WriteString(borderStyle.Render(m.table.View()))
	b.WriteString("\n\n")
	b.WriteString(m.renderSelectedBoxes())
	b.WriteString("\n\n")
	b.WriteString(headerStyle.Render("↑/↓ select deck · q quit"))
	return b.String()
}

func (m *Model) renderSelectedBoxes() string {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.overviews) {
		return ""
	}
	overview := m.overviews[idx]

	max := 0
	for _, count := range overview.Boxes {
		if count > max {
			max = count
		}
	}
	barWidth := 30
	if m.width > 50 && m.width-20 < barWidth {
		barWidth = m.width - 20
	}

	lines := make([]string, 0, len(overview.Boxes)+1)
	lines = append(lines, mutedStyle.Render(fmt.Sprintf("Boxes · %s", overview.Meta.Title)))
	for box, count := range overview.Boxes {
		bar := ""
		if max > 0 && count > 0 {
			n := count * barWidth / max
			if n == 0 {
				n = 1
			}
			bar = barStyle.Render(strings.Repeat("█", n))
		}
		lines = append(lines, fmt.Sprintf("box %d %4d %s", box, count, bar))
	}
	return strings.Join(lines, "\n")
}
