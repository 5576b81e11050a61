package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/riekarimayu-boop/karin-geo-trainer/internal/model"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/rewards"
	"github.com/riekarimayu-boop/karin-geo-trainer/internal/session"
)

// advanceDelay matches the brief feedback pause before the next card.
const advanceDelay = 800 * time.Millisecond

type screen int

const (
	screenMenu screen = iota
	screenQuestion
	screenFeedback
	screenReward
	screenConfirmReset
)

type advanceMsg struct{}

var (
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	promptStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	choiceStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#3FB950")).Bold(true)
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	hintStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C8B27A"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	modalStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(1, 2)
)

// Model implements the Bubble Tea review UI.
type Model struct {
	sess  *session.Session
	decks []model.Deck

	screen    screen
	menuIndex int

	question    model.Question
	hasQuestion bool
	revealed    bool
	hintOn      bool
	cheerOn     bool

	feedback        string
	feedbackCorrect bool
	answerText      string
	rewardEmoji     string
	rewardLabel     string
	degradedWarned  bool

	indexError string

	width  int
	height int
}

// NewModel constructs a review TUI model. lastDeckID preselects the
// menu cursor on the deck opened most recently.
func NewModel(sess *session.Session, decks []model.Deck, cfg model.ReviewConfig, lastDeckID, indexError string) *Model {
	m := &Model{
		sess:       sess,
		decks:      decks,
		hintOn:     cfg.Hint,
		cheerOn:    cfg.Cheer,
		indexError: indexError,
		screen:     screenMenu,
	}
	for i, deck := range decks {
		if deck.ID == lastDeckID {
			m.menuIndex = i
			break
		}
	}
	return m
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
	case advanceMsg:
		if m.screen == screenFeedback {
			m.nextCard()
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	default:
		return m, nil
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	switch m.screen {
	case screenMenu:
		return m.handleMenuKey(msg)
	case screenQuestion:
		return m.handleQuestionKey(msg)
	case screenFeedback:
		// Any key skips the pause.
		m.nextCard()
		return m, nil
	case screenReward:
		m.nextCard()
		return m, nil
	case screenConfirmReset:
		return m.handleConfirmKey(msg)
	}
	return m, nil
}

func (m *Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.String() == "q" || msg.Type == tea.KeyEsc:
		return m, tea.Quit
	case msg.Type == tea.KeyUp || msg.String() == "k":
		if m.menuIndex > 0 {
			m.menuIndex--
		}
	case msg.Type == tea.KeyDown || msg.String() == "j":
		if m.menuIndex < len(m.decks)-1 {
			m.menuIndex++
		}
	case msg.Type == tea.KeyEnter:
		if m.menuIndex >= 0 && m.menuIndex < len(m.decks) {
			m.openDeck(m.decks[m.menuIndex])
		}
	}
	return m, nil
}

func (m *Model) handleQuestionKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.screen = screenMenu
		return m, nil
	case "h":
		m.hintOn = !m.hintOn
		return m, nil
	case "r":
		m.screen = screenConfirmReset
		return m, nil
	}
	if m.hasQuestion {
		switch msg.String() {
		case "1", "2", "3", "4":
			idx := int(msg.String()[0] - '1')
			if idx < len(m.question.Choices) {
				return m.answer(idx == m.question.CorrectIndex)
			}
		}
		return m, nil
	}
	// Flip-card fallback.
	switch msg.String() {
	case " ", "enter":
		m.revealed = true
	case "g":
		if m.revealed {
			return m.answer(true)
		}
	case "a":
		if m.revealed {
			return m.answer(false)
		}
	}
	return m, nil
}

func (m *Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		m.sess.ResetDeck(context.Background())
		m.prepareCard()
		m.screen = screenQuestion
	case "n", "esc":
		m.screen = screenQuestion
	}
	return m, nil
}

func (m *Model) openDeck(deck model.Deck) {
	m.sess.OpenDeck(context.Background(), deck)
	if _, ok := m.sess.Current(); !ok {
		// Broken or empty content stays navigable: remain on the menu.
		m.indexError = fmt.Sprintf("デッキ %q にカードがありません", deck.ID)
		return
	}
	m.prepareCard()
	m.screen = screenQuestion
}

func (m *Model) prepareCard() {
	m.revealed = false
	m.question, m.hasQuestion = m.sess.Choices()
}

func (m *Model) answer(correct bool) (tea.Model, tea.Cmd) {
	item, ok := m.sess.Current()
	if !ok {
		m.screen = screenMenu
		return m, nil
	}
	result := m.sess.Answer(context.Background(), correct)
	m.feedbackCorrect = correct
	m.answerText = item.Answer
	if m.cheerOn || !correct {
		m.feedback = result.Message
	} else {
		m.feedback = plainCorrectLine(result.Streak)
	}
	if result.Degraded && !m.degradedWarned {
		m.degradedWarned = true
		m.feedback += "\n" + mutedStyle.Render("保存に失敗しました（このセッション中の進捗はメモリ上に保持されます）")
	}
	if result.HasReward {
		m.rewardEmoji = result.Reward.Emoji
		m.rewardLabel = result.Reward.Label
		m.screen = screenReward
		return m, nil
	}
	m.screen = screenFeedback
	return m, tea.Tick(advanceDelay, func(time.Time) tea.Msg { return advanceMsg{} })
}

// plainCorrectLine mirrors the non-cheer feedback tiers.
func plainCorrectLine(streak int) string {
	switch {
	case streak >= 6:
		return fmt.Sprintf("%d連続正解！！神レベル✨", streak)
	case streak == 5:
		return "完璧だね！！！"
	case streak == 4:
		return "その調子！！"
	case streak == 3:
		return "すごい！"
	default:
		return "正解！"
	}
}

func (m *Model) nextCard() {
	if _, ok := m.sess.Current(); !ok {
		m.screen = screenMenu
		return
	}
	m.prepareCard()
	m.screen = screenQuestion
}

// View implements tea.Model.
func (m *Model) View() string {
	var content string
	switch m.screen {
	case screenMenu:
		content = m.viewMenu()
	case screenQuestion:
		content = m.viewQuestion()
	case screenFeedback:
		content = m.viewFeedback()
	case screenReward:
		content = m.viewReward()
	case screenConfirmReset:
		content = modalStyle.Render("このデッキの進捗をリセットしますか？  y/n")
	}
	if m.width == 0 || m.height == 0 {
		return content
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footer := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.renderFooter())
	return body + "\n" + footer
}

func (m *Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("地理攻略トレーナー"))
	b.WriteString("\n\n")
	if m.indexError != "" {
		b.WriteString(wrongStyle.Render(m.indexError))
		b.WriteString("\n\n")
	}
	if len(m.decks) == 0 {
		b.WriteString(mutedStyle.Render("デッキが見つかりません。geotrainer init でサンプルを作成できます。"))
		return b.String()
	}
	for i, deck := range m.decks {
		line := fmt.Sprintf("%s  (%d枚)", deck.Title, len(deck.Items))
		if i == m.menuIndex {
			b.WriteString(selectedStyle.Render("> " + line))
			if deck.Description != "" {
				b.WriteRune('\n')
				b.WriteString(mutedStyle.Render("    " + deck.Description))
			}
		} else {
			b.WriteString(choiceStyle.Render("  " + line))
		}
		b.WriteRune('\n')
	}
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("↑/↓ 選択 · enter 開始 · q 終了"))
	return b.String()
}

func (m *Model) viewQuestion() string {
	item, ok := m.sess.Current()
	if !ok {
		return mutedStyle.Render("カードがありません")
	}
	contentWidth := m.contentWidth()

	var b strings.Builder
	b.WriteString(mutedStyle.Render(m.sess.Deck().Title))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render(wrapText(item.Prompt, contentWidth)))
	b.WriteString("\n\n")

	if m.hasQuestion {
		for i, choice := range m.question.Choices {
			b.WriteString(choiceStyle.Render(fmt.Sprintf("%d. %s", i+1, choice)))
			b.WriteRune('\n')
		}
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render("1-4 解答 · h ヒント · r リセット · esc メニュー"))
	} else if !m.revealed {
		b.WriteString(mutedStyle.Render("space 答えを表示"))
	} else {
		b.WriteString(correctStyle.Render(wrapText(item.Answer, contentWidth)))
		b.WriteString("\n\n")
		b.WriteString(mutedStyle.Render("g 覚えた！ · a まだ · esc メニュー"))
	}

	if m.hintOn && item.Hint != "" {
		b.WriteString("\n\n")
		b.WriteString(hintStyle.Render(wrapText("ヒント: "+item.Hint, contentWidth)))
	}
	return b.String()
}

func (m *Model) viewFeedback() string {
	var b strings.Builder
	if m.feedbackCorrect {
		b.WriteString(correctStyle.Render("正解！"))
	} else {
		b.WriteString(wrongStyle.Render("残念…"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("答え: " + m.answerText))
	}
	if m.feedback != "" {
		b.WriteString("\n\n")
		b.WriteString(promptStyle.Render(m.feedback))
	}
	return b.String()
}

func (m *Model) viewReward() string {
	inner := fmt.Sprintf("ご褒美カード！\n\n   %s\n  %s\n\n所持 %d/%d · 続けるには何かキーを",
		m.rewardEmoji, m.rewardLabel, m.sess.Wallet().OwnedCount(), len(rewards.Cards))
	return modalStyle.Render(inner)
}

func (m *Model) renderFooter() string {
	progress := m.sess.Progress()
	segments := []string{
		fmt.Sprintf("習得 %d/%d (%d%%)", progress.Learned, progress.Total, progress.Percent),
		fmt.Sprintf("得点 %d", m.sess.Wallet().Score()),
		fmt.Sprintf("連続 %d", m.sess.Streak()),
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 60
	}
	w := int(float64(m.width) * 0.70)
	if w < 20 {
		w = 20
	}
	return w
}
