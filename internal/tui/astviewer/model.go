// ============================================================================
// drawlang - Drawing language toolchain
// ============================================================================
//
// Package:     astviewer
// Description: Bubbletea model for browsing a parsed drawing program
// Author:      Mike Stoffels
// Created:     2025-03-02
// License:     MIT
// ============================================================================

package astviewer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/msto63/drawlang/foundation/drawlang"
	"github.com/msto63/drawlang/internal/tui"
)

// Config holds viewer configuration
type Config struct {
	Path   string
	Engine *drawlang.Engine
	Color  bool
}

// Model is the Bubbletea model of the AST viewer
type Model struct {
	// State
	width   int
	height  int
	ready   bool
	loading bool
	err     error

	// Components
	viewport viewport.Model
	spinner  spinner.Model
	filter   textinput.Model

	// Content
	result *drawlang.Result
	lines  []string

	// Configuration
	path   string
	engine *drawlang.Engine
	color  bool
}

// New creates a viewer for the token stream at cfg.Path
func New(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#7C3AED"))

	ti := textinput.New()
	ti.Prompt = "/"
	ti.Placeholder = "filter nodes"
	ti.CharLimit = 64

	return Model{
		spinner: sp,
		filter:  ti,
		loading: true,
		path:    cfg.Path,
		engine:  cfg.Engine,
		color:   cfg.Color,
	}
}

// Init starts parsing
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.parse)
}

func (m Model) parse() tea.Msg {
	res, err := m.engine.ParseFile(context.Background(), m.path)
	return parsedMsg{result: res, err: err}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 2
		footerHeight := 2
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()

	case spinner.TickMsg:
		if m.loading {
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}

	case parsedMsg:
		m.loading = false
		m.err = msg.err
		m.result = msg.result
		m.lines = nil
		if msg.err == nil {
			m.lines = strings.Split(strings.TrimRight(tui.RenderTree(msg.result.Root, m.color), "\n"), "\n")
		}
		m.updateViewportContent()
		m.viewport.GotoTop()

	case reloadMsg:
		m.loading = true
		cmds = append(cmds, m.spinner.Tick, m.parse)
	}

	m.viewport, cmd = m.viewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.filter.Focused() {
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEnter:
			m.filter.Blur()
			return m, nil
		case tea.KeyEsc:
			m.filter.Blur()
			m.filter.SetValue("")
			m.updateViewportContent()
			return m, nil
		}

		var cmd tea.Cmd
		m.filter, cmd = m.filter.Update(msg)
		m.updateViewportContent()
		return m, cmd
	}

	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit

	case tea.KeyEsc:
		m.filter.SetValue("")
		m.updateViewportContent()
		return m, nil

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		case "r":
			return m, func() tea.Msg { return reloadMsg{} }
		case "/":
			return m, m.filter.Focus()
		}

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil

	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyUp:
		m.viewport.LineUp(1)
		return m, nil

	case tea.KeyDown:
		m.viewport.LineDown(1)
		return m, nil
	}

	return m, nil
}

// visibleLines returns the tree lines matching the filter. Matching is
// done on the unstyled text.
func (m Model) visibleLines() []string {
	query := strings.ToLower(strings.TrimSpace(m.filter.Value()))
	if query == "" {
		return m.lines
	}

	var out []string
	for _, line := range m.lines {
		if strings.Contains(strings.ToLower(ansi.Strip(line)), query) {
			out = append(out, line)
		}
	}
	return out
}

func (m *Model) updateViewportContent() {
	if !m.ready {
		return
	}
	switch {
	case m.err != nil:
		m.viewport.SetContent(tui.RenderError(m.err.Error()))
	case m.result == nil:
		m.viewport.SetContent("")
	default:
		lines := m.visibleLines()
		if len(lines) == 0 {
			m.viewport.SetContent(tui.RenderHelp("no node matches " + m.filter.Value()))
			return
		}
		m.viewport.SetContent(strings.Join(lines, "\n"))
	}
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "loading " + m.path + "..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

func (m Model) renderHeader() string {
	title := tui.RenderTitle("drawc view") + "  " + tui.SubtitleStyle.Render(m.path)

	switch {
	case m.loading:
		return title + "  " + m.spinner.View() + " parsing"
	case m.err != nil:
		return title + "  " + tui.ErrorMessageStyle.Render("failed")
	case m.result != nil:
		summary := fmt.Sprintf("%d nodes, depth %d, %d tokens, %s",
			m.result.Nodes, m.result.Depth, m.result.Tokens, m.result.Duration.Round(time.Microsecond))
		return title + "  " + tui.RenderOK(summary)
	}
	return title
}

func (m Model) renderFooter() string {
	if m.filter.Focused() || m.filter.Value() != "" {
		return m.filter.View()
	}
	help := "↑/↓ scroll • g/G top/bottom • / filter • r reload • q quit"
	return tui.StatusBarStyle.Width(max(m.width, 0)).Render(
		fmt.Sprintf("%3.f%%  %s", m.viewport.ScrollPercent()*100, tui.RenderHelp(help)))
}
