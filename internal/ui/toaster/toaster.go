// Package toaster provides a notification toast overlay component.
package toaster

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/zjrosen/quill/internal/ui/overlay"
	"github.com/zjrosen/quill/internal/ui/styles"
)

// Style determines the visual appearance of the toast.
type Style int

const (
	// StyleInfo shows a bordered note for informational messages.
	StyleInfo Style = iota
	// StyleError shows a bordered note in the error color.
	StyleError
)

// DefaultDuration is how long a toast stays up.
const DefaultDuration = 3 * time.Second

// Model holds the toaster state.
type Model struct {
	message string
	style   Style
	visible bool
	// seq identifies the latest Show so an older dismissal is ignored.
	seq int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays a toast and returns the command that dismisses it after d.
func (m Model) Show(message string, style Style, d time.Duration) (Model, tea.Cmd) {
	m.message = message
	m.style = style
	m.visible = true
	m.seq++
	return m, ScheduleDismiss(m.seq, d)
}

// Update hides the toast when its dismissal arrives.
func (m Model) Update(msg tea.Msg) Model {
	if dm, ok := msg.(DismissMsg); ok && dm.seq == m.seq {
		return m.Hide()
	}
	return m
}

// Hide dismisses the toast.
func (m Model) Hide() Model {
	m.visible = false
	m.message = ""
	return m
}

// Visible returns whether the toast is currently showing.
func (m Model) Visible() bool {
	return m.visible
}

// View renders the toast box.
func (m Model) View() string {
	return m.render(0)
}

// render draws the box, truncating the message so the box fits in
// maxWidth cells. Zero means no limit.
func (m Model) render(maxWidth int) string {
	if !m.visible || m.message == "" {
		return ""
	}

	message := m.message
	if maxWidth > 0 {
		// border (2) + padding (2)
		message = ansi.Truncate(message, max(maxWidth-4, 1), "…")
	}

	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	switch m.style {
	case StyleError:
		style = style.BorderForeground(styles.LogErrorColor).Foreground(styles.LogErrorColor)
	default:
		style = style.BorderForeground(styles.OverlayBorderColor).Foreground(styles.TextPrimaryColor)
	}

	return style.Render(message)
}

// Overlay renders the toast on top of a background view.
// Uses bottom-center positioning with padding from the bottom edge.
func (m Model) Overlay(bg string, width, height int) string {
	if !m.visible || m.message == "" {
		return bg
	}

	cfg := overlay.Config{
		Width:    width,
		Height:   height,
		Position: overlay.Bottom,
		PadY:     2, // Keep the status bar and help line visible
	}

	return overlay.Place(cfg, m.render(width), bg)
}

// DismissMsg signals that the toast should be dismissed.
type DismissMsg struct {
	seq int
}

// ScheduleDismiss returns a command that dismisses toast seq after d.
func ScheduleDismiss(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return DismissMsg{seq: seq}
	})
}
