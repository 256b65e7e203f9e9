// Package tui provides the full-screen Bubble Tea front end: a scrolling
// call log alongside every player's card, driven one draw at a time or by a
// timed auto-caller.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/minibingo/internal/card"
	"github.com/lox/minibingo/internal/game"
)

// Model is the Bubble Tea model for a bingo game.
type Model struct {
	game   *game.Game
	logger *log.Logger
	delay  time.Duration

	logViewport viewport.Model
	gameLog     []string

	auto     bool
	quitting bool

	width       int
	height      int
	initialized bool
}

// tickMsg paces auto-calling.
type tickMsg time.Time

// New creates a TUI model over an existing game. delay is the auto-call
// interval.
func New(g *game.Game, delay time.Duration, logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	m := &Model{
		game:        g,
		logger:      logger.WithPrefix("tui"),
		delay:       delay,
		logViewport: vp,
	}
	m.appendLog(fmt.Sprintf("Game %s — %d players, %d numbers in the pool.",
		g.ID(), len(g.Players()), g.Remaining()))
	m.appendLog("Press d to draw, a to auto-call, q to quit.")
	return m
}

// Run starts the TUI program and blocks until it exits.
func Run(g *game.Game, delay time.Duration, logger *log.Logger) error {
	p := tea.NewProgram(New(g, delay, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.delay, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		m.initialized = true

	case tickMsg:
		if !m.auto {
			return m, nil
		}
		m.drawOnce()
		if m.auto {
			return m, m.tick()
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.quitting = true
			return m, tea.Quit

		case "d":
			m.auto = false
			m.drawOnce()

		case "p":
			if n, ok := m.game.PeekNext(); ok {
				m.appendLog(fmt.Sprintf("Next up (peek): %d", n))
			} else {
				m.appendLog("Next up (peek): (pool empty)")
			}

		case "a":
			if m.game.Finished() {
				m.appendLog(ErrorStyle.Render("Game over — press r to start a new round."))
				return m, nil
			}
			m.auto = !m.auto
			if m.auto {
				m.appendLog("Auto-calling until the first bingo...")
				return m, m.tick()
			}
			m.appendLog("Auto-calling stopped.")

		case "s":
			m.logStatus()

		case "r":
			m.auto = false
			m.game.Reset(nil)
			m.gameLog = nil
			m.appendLog("New round — fresh cards, full pool.")
		}
	}

	var cmd tea.Cmd
	m.logViewport, cmd = m.logViewport.Update(msg)
	return m, cmd
}

// drawOnce advances the game by one number and logs the outcome. Auto mode
// stops at the first bingo or when the pool runs dry.
func (m *Model) drawOnce() {
	res, err := m.game.DrawNext()
	if err != nil {
		m.auto = false
		if errors.Is(err, game.ErrFinished) {
			m.appendLog(ErrorStyle.Render("Game over — the pool is exhausted."))
		} else {
			m.logger.Error("Draw failed", "error", err)
			m.appendLog(ErrorStyle.Render("Draw failed: " + err.Error()))
		}
		return
	}

	var markedBy []string
	for _, p := range m.game.Players() {
		if res.Marked[p.ID] {
			markedBy = append(markedBy, p.Name)
		}
	}
	line := CallStyle.Render(fmt.Sprintf("Called %d", res.Number))
	if len(markedBy) > 0 {
		line += " — marked by " + strings.Join(markedBy, ", ")
	} else {
		line += " — no player had it"
	}
	m.appendLog(line)

	for _, msg := range res.Announcements {
		m.appendLog(AnnouncementStyle.Render(msg))
	}
	if len(m.game.Winners()) > 0 || m.game.Finished() {
		m.auto = false
	}
	if m.game.Finished() {
		m.appendLog("Pool exhausted — game over.")
	}
}

func (m *Model) logStatus() {
	called := m.game.Called()
	m.appendLog(fmt.Sprintf("Numbers called: %d, remaining: %d", len(called), m.game.Remaining()))
	if len(m.game.Winners()) == 0 {
		m.appendLog("No winners yet.")
		return
	}
	for _, id := range m.game.Winners() {
		p, err := m.game.PlayerByID(id)
		if err != nil {
			continue
		}
		labels := make([]string, 0, len(p.Lines))
		for _, l := range p.Lines {
			labels = append(labels, l.Label())
		}
		m.appendLog(fmt.Sprintf("Winner: %s (P%d) — %s", p.Name, p.ID, strings.Join(labels, ", ")))
	}
}

func (m *Model) appendLog(line string) {
	m.gameLog = append(m.gameLog, line)
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

// Log returns the accumulated log lines, for tests.
func (m *Model) Log() []string {
	out := make([]string, len(m.gameLog))
	copy(out, m.gameLog)
	return out
}

func (m *Model) layout() {
	cardsWidth := lipgloss.Width(m.renderCards())
	logWidth := m.width - cardsWidth - 2
	if logWidth < 20 {
		logWidth = 20
	}
	m.logViewport.Width = logWidth
	m.logViewport.Height = m.height - 4
	if m.logViewport.Height < 3 {
		m.logViewport.Height = 3
	}
	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.GotoBottom()
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.initialized {
		return "loading..."
	}

	header := HeaderStyle.Render(" ● MINI BINGO ● ")
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.logViewport.View(), " ", m.renderCards())
	help := HelpStyle.Render("d draw · p peek · a auto · s status · r reset · q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, body, help)
}

// renderCards draws every player's card side by side with marked and free
// cells highlighted.
func (m *Model) renderCards() string {
	snap := m.game.Snapshot()
	panes := make([]string, 0, len(snap.Players))
	for _, p := range snap.Players {
		panes = append(panes, CardPaneStyle.Render(renderCard(p)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, panes...)
}

func renderCard(p game.PlayerSnapshot) string {
	var b strings.Builder
	title := fmt.Sprintf("%s (P%d)", p.Name, p.ID)
	if p.HasBingo {
		b.WriteString(WinnerTitleStyle.Render(title + " ★"))
	} else {
		b.WriteString(CardTitleStyle.Render(title))
	}
	b.WriteByte('\n')
	b.WriteString(HelpStyle.Render("  B   I   N   G   O"))
	for r := 0; r < card.Size; r++ {
		b.WriteByte('\n')
		for col := 0; col < card.Size; col++ {
			cell := fmt.Sprintf(" %2d ", p.Grid[r][col])
			switch {
			case r == card.CenterRow && col == card.CenterCol:
				b.WriteString(FreeCellStyle.Render(" ★  "))
			case p.Marks[r][col]:
				b.WriteString(MarkedCellStyle.Render(cell))
			default:
				b.WriteString(CellStyle.Render(cell))
			}
		}
	}
	return b.String()
}
