package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/devbush/cueline/internal/domain"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading..."
	}

	var sb strings.Builder
	sb.WriteString(m.renderHeader())
	sb.WriteString("\n")

	for _, row := range m.renderTimeline() {
		sb.WriteString(row)
		sb.WriteString("\n")
	}

	sb.WriteString(dimStyle.Render(strings.Repeat("─", m.width)))
	sb.WriteString("\n")

	left := m.renderTranscript(m.panelHeight())
	right := m.renderSpeakerPanel(m.panelHeight())
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	sb.WriteString("\n")

	sb.WriteString(m.renderStatus())
	sb.WriteString("\n")
	sb.WriteString(m.renderFooter())
	return sb.String()
}

// panelHeight is the space left for the transcript and speaker panels
// after the header, timeline, divider, status and footer rows.
func (m Model) panelHeight() int {
	used := trackTopRow + len(m.editor.Speakers()) + 3
	h := m.height - used
	if h < 3 {
		return 3
	}
	return h
}

func (m Model) renderHeader() string {
	title := m.editor.Meta().Title
	if title == "" {
		title = "untitled"
	}
	if m.dirty {
		title += " *"
	}

	mark := "▶"
	if !m.playing {
		mark = "⏸"
	}
	info := fmt.Sprintf(" %s %s / %s  zoom %.0fx",
		mark,
		domain.FormatClock(m.playhead),
		domain.FormatClock(m.editor.Duration()),
		m.zoom,
	)
	return titleStyle.Render(" "+title) + headerInfoStyle.Render(info)
}

// renderTranscript draws the scrolling segment list with the cursor and
// any current search matches marked.
func (m Model) renderTranscript(height int) string {
	width := m.width - speakerPanelWidth - 3
	if width < 20 {
		width = 20
	}

	segments := m.editor.Segments()
	rows := height - 1

	// keep cursor in the window
	scroll := m.listScroll
	if m.cursor < scroll {
		scroll = m.cursor
	}
	if m.cursor >= scroll+rows {
		scroll = m.cursor - rows + 1
	}
	if scroll < 0 {
		scroll = 0
	}

	matched := make(map[string]bool, len(m.matches))
	for _, match := range m.matches {
		matched[match.SegmentID] = true
	}

	var lines []string
	titleStyle := panelTitleStyle
	if m.focus == focusTranscript {
		titleStyle = panelTitleActiveStyle
	}
	lines = append(lines, titleStyle.Render(fmt.Sprintf(" Transcript (%d)", len(segments))))

	for i := scroll; i < len(segments) && i < scroll+rows; i++ {
		seg := segments[i]
		marker := "  "
		if i == m.cursor && m.focus == focusTranscript {
			marker = "> "
		} else if seg.ID == m.editor.Selected() {
			marker = "• "
		}

		line := marker + segmentLine(seg, m.speakerName(seg.SpeakerID), width-2)

		switch {
		case seg.ID == m.editor.Selected():
			line = selectedStyle.Render(line)
		case matched[seg.ID]:
			line = statusOKStyle.Render(line)
		default:
			line = normalStyle.Render(line)
		}
		lines = append(lines, line)
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return lipgloss.NewStyle().Width(width).Render(strings.Join(lines, "\n"))
}

func (m Model) renderSpeakerPanel(height int) string {
	speakers := m.editor.Speakers()

	titleStyle := panelTitleStyle
	if m.focus == focusSpeakers {
		titleStyle = panelTitleActiveStyle
	}
	lines := []string{titleStyle.Render(fmt.Sprintf(" Speakers (%d)", len(speakers)))}

	for i, sp := range speakers {
		marker := "  "
		if i == m.spkCursor && m.focus == focusSpeakers {
			marker = "> "
		}
		dot := speakerDotStyle(sp.Color).Render("●")
		line := marker + dot + " " + speakerLine(sp, m.ownedSegmentCount(sp.ID), speakerPanelWidth-4)
		if i == m.spkCursor && m.focus == focusSpeakers {
			line = selectedStyle.Render(line)
		}
		lines = append(lines, line)
	}

	for len(lines) < height {
		lines = append(lines, "")
	}
	return lipgloss.NewStyle().Width(speakerPanelWidth).Render(strings.Join(lines, "\n"))
}

func (m Model) renderStatus() string {
	if m.mode != modeNormal && m.mode != modeConfirmDelete {
		return promptStyle.Render(" " + m.input.View())
	}
	if m.isErr {
		return statusErrStyle.Render(" " + m.status)
	}
	return statusOKStyle.Render(" " + m.status)
}

func (m Model) renderFooter() string {
	var pairs [][2]string
	switch {
	case m.mode != modeNormal:
		pairs = [][2]string{{"enter", "apply"}, {"esc", "cancel"}}
	case m.focus == focusSpeakers:
		pairs = [][2]string{
			{"r", "rename"}, {"c", "color"}, {"A", "new"}, {"m", "merge up"},
			{"K/J", "reorder"}, {"D", "delete"}, {"tab", "focus"}, {"q", "quit"},
		}
	default:
		pairs = [][2]string{
			{"a", "add"}, {"x", "split"}, {"d", "delete"}, {"e", "edit"},
			{"[/]", "times"}, {"s", "speaker"}, {"/", "search"}, {"u", "undo"},
			{"^s", "save"}, {"q", "quit"},
		}
	}

	parts := make([]string, 0, len(pairs))
	for _, p := range pairs {
		parts = append(parts, footerKeyStyle.Render(p[0])+footerDescStyle.Render(" "+p[1]))
	}
	return " " + strings.Join(parts, footerDescStyle.Render(" · "))
}

func (m Model) speakerName(id string) string {
	if sp, ok := m.editor.SpeakerByID(id); ok {
		return sp.Name
	}
	return id
}
