// Package logoverlay shows recent debug log entries in a box drawn over
// the editor, with level filtering and scrolling.
package logoverlay

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/zjrosen/quill/internal/log"
	"github.com/zjrosen/quill/internal/ui/overlay"
	"github.com/zjrosen/quill/internal/ui/styles"
)

const (
	viewportMaxHeight = 25
	viewportMinHeight = 5
	boxMaxWidth       = 160
	boxMinWidth       = 40

	// header (2) + footer (2) + border (2)
	chromeHeight = 6

	// maxEntries bounds how much of the log ring is pulled per refresh.
	maxEntries = log.DefaultBufferSize
)

// CloseMsg is sent when the overlay closes itself.
type CloseMsg struct{}

// Model is the log overlay component state.
type Model struct {
	visible  bool
	minLevel log.Level
	width    int
	height   int
	viewport viewport.Model
}

// New creates a hidden log overlay showing all levels.
func New() Model {
	return Model{minLevel: log.LevelDebug}
}

// Update handles keys while visible and window resizes always.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if !m.visible {
			return m, nil
		}
		return m.handleKey(msg)
	}
	return m, nil
}

var levelKeys = map[string]log.Level{
	"d": log.LevelDebug,
	"i": log.LevelInfo,
	"w": log.LevelWarn,
	"e": log.LevelError,
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()

	if level, ok := levelKeys[key]; ok {
		m.minLevel = level
		m.refreshViewport()
		return m, nil
	}

	switch key {
	case "c":
		log.ClearBuffer()
		m.refreshViewport()
	case "j", "down":
		m.viewport.ScrollDown(1)
	case "k", "up":
		m.viewport.ScrollUp(1)
	case "g":
		m.viewport.GotoTop()
	case "G":
		m.viewport.GotoBottom()
	case "ctrl+x", "esc":
		m.visible = false
		return m, func() tea.Msg { return CloseMsg{} }
	}
	return m, nil
}

// View renders the bordered log box, or "" when hidden.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	boxWidth := m.boxWidth()

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor).
		PaddingLeft(1)
	dividerStyle := lipgloss.NewStyle().Foreground(styles.OverlayBorderColor)
	divider := dividerStyle.Render(strings.Repeat("─", boxWidth))

	body := strings.Join([]string{
		titleStyle.Render("Logs"),
		divider,
		m.viewport.View(),
		divider,
		m.filterHint(),
	}, "\n")

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Width(boxWidth).
		Render(body)
}

// Overlay draws the box centred over bg, or returns bg when hidden.
func (m Model) Overlay(bg string) string {
	if !m.visible {
		return bg
	}
	return overlay.Place(overlay.Config{Width: m.width, Height: m.height}, m.View(), bg)
}

// Visible reports whether the overlay is showing.
func (m Model) Visible() bool {
	return m.visible
}

// Toggle shows or hides the overlay.
func (m *Model) Toggle() {
	m.visible = !m.visible
	if m.visible {
		m.refreshViewport()
		m.viewport.GotoBottom()
	}
}

// Hide closes the overlay.
func (m *Model) Hide() {
	m.visible = false
}

// SetSize records the frame size and re-lays out the viewport.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.refreshViewport()
}

// Refresh reloads entries from the log ring. A viewport scrolled to the
// bottom stays pinned there so new entries stay in view.
func (m *Model) Refresh() {
	if !m.visible {
		return
	}
	follow := m.viewport.AtBottom()
	offset := m.viewport.YOffset
	m.refreshViewport()
	if follow {
		m.viewport.GotoBottom()
	} else {
		m.viewport.SetYOffset(offset)
	}
}

func (m *Model) refreshViewport() {
	if m.width == 0 || m.height == 0 {
		return
	}
	height := max(min(viewportMaxHeight, m.height-chromeHeight), viewportMinHeight)
	m.viewport = viewport.New(m.contentWidth(), height)
	m.viewport.SetContent(m.content())
}

func (m Model) boxWidth() int {
	return max(min(m.width-4, boxMaxWidth), boxMinWidth)
}

func (m Model) contentWidth() int {
	return m.boxWidth() - 2
}

func (m Model) content() string {
	var lines []string
	for _, entry := range log.GetRecentLogs(maxEntries) {
		if m.matchesLevel(entry) {
			lines = append(lines, colorize(entry, m.contentWidth()))
		}
	}
	if len(lines) == 0 {
		return lipgloss.NewStyle().
			Foreground(styles.TextMutedColor).
			Italic(true).
			Render("No logs to display")
	}
	return strings.Join(lines, "\n")
}

// entryLevel extracts the level tag written by the log package.
func entryLevel(entry string) (log.Level, bool) {
	for _, level := range []log.Level{log.LevelError, log.LevelWarn, log.LevelInfo, log.LevelDebug} {
		if strings.Contains(entry, "["+level.String()+"]") {
			return level, true
		}
	}
	return 0, false
}

// matchesLevel reports whether entry is at or above the filter level.
// Entries without a recognisable level are always shown.
func (m Model) matchesLevel(entry string) bool {
	level, ok := entryLevel(entry)
	return !ok || level >= m.minLevel
}

func colorize(entry string, maxWidth int) string {
	entry = strings.TrimSuffix(entry, "\n")
	if maxWidth > 0 {
		entry = truncate.StringWithTail(entry, uint(maxWidth), "...")
	}

	color := styles.TextPrimaryColor
	if level, ok := entryLevel(entry); ok {
		switch level {
		case log.LevelError:
			color = styles.LogErrorColor
		case log.LevelWarn:
			color = styles.LogWarnColor
		case log.LevelInfo:
			color = styles.LogInfoColor
		case log.LevelDebug:
			color = styles.LogDebugColor
		}
	}
	return lipgloss.NewStyle().Foreground(color).Render(entry)
}

// filterHint renders the footer, bolding the active level.
func (m Model) filterHint() string {
	hint := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	active := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Bold(true)

	parts := []string{hint.Render("[c] Clear")}
	for _, opt := range []struct {
		label string
		level log.Level
	}{
		{"[d] Debug", log.LevelDebug},
		{"[i] Info", log.LevelInfo},
		{"[w] Warn", log.LevelWarn},
		{"[e] Error", log.LevelError},
	} {
		if m.minLevel == opt.level {
			parts = append(parts, active.Render(opt.label))
		} else {
			parts = append(parts, hint.Render(opt.label))
		}
	}
	return strings.Join(parts, "  ")
}
