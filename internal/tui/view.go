package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"sitepath/internal/site"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dimmedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

func (m AppModel) View() string {
	if m.Loading {
		return "\n  Composing search path... please wait.\n"
	}
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}

	// Layout dimensions
	width := m.WindowSize.Width
	height := m.WindowSize.Height

	netWidth := width - 6
	if netWidth < 20 {
		netWidth = 20
	}

	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	boxHeight := height - 6
	if boxHeight < 6 {
		boxHeight = 6
	}

	// Interior height (excluding borders)
	interiorHeight := boxHeight - 2
	if interiorHeight < 2 {
		interiorHeight = 2
	}

	borderColor := lipgloss.Color("63")
	activeColor := lipgloss.Color("205")

	// LEFT PANEL: candidate list
	var leftView strings.Builder
	leftView.WriteString(titleStyle.Render("Search Path Candidates"))
	leftView.WriteString("\n\n")

	// Windowing: keep the selection roughly centered.
	visibleItems := interiorHeight - 2
	if visibleItems < 1 {
		visibleItems = 1
	}
	startIdx := 0
	endIdx := len(m.FilteredIndices)

	if len(m.FilteredIndices) > visibleItems {
		if m.SelectedIdx >= visibleItems/2 {
			startIdx = m.SelectedIdx - (visibleItems / 2)
		}
		if startIdx < 0 {
			startIdx = 0
		}
		if startIdx+visibleItems > len(m.FilteredIndices) {
			startIdx = len(m.FilteredIndices) - visibleItems
		}
		endIdx = startIdx + visibleItems
	}

	for i := startIdx; i < endIdx; i++ {
		idx := m.FilteredIndices[i]
		entry := m.Analysis.Entries[idx]

		line := fmt.Sprintf("%2d. %s %s", idx+1, entry.Marker(), entry.Path)
		if entry.IsDuplicate {
			line += " (duplicate)"
		} else if !entry.Exists {
			line += " (missing)"
		}
		if idx == 0 {
			line += " (highest priority)"
		} else if idx == len(m.Analysis.Entries)-1 {
			line += " (lowest priority)"
		}

		// Truncate
		if len(line) > leftWidth-2 {
			line = line[:leftWidth-5] + "..."
		}

		style := normalStyle
		if i == m.SelectedIdx {
			style = selectedStyle
		} else if !entry.Exists {
			style = dimmedStyle
		}

		leftView.WriteString(style.Render(line))
		leftView.WriteString("\n")
	}

	if len(m.FilteredIndices) == 0 {
		leftView.WriteString(dimmedStyle.Render("  (no matching entries)"))
		leftView.WriteString("\n")
	}

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(activeColor).
		Render(strings.TrimSuffix(leftView.String(), "\n"))

	// RIGHT PANEL: details or configuration
	var rightView strings.Builder
	if m.ShowConfig {
		rightView.WriteString(titleStyle.Render("Configuration"))
	} else {
		rightView.WriteString(titleStyle.Render("Details"))
	}
	rightView.WriteString("\n\n")
	rightView.WriteString(m.DetailsViewport.View())

	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(rightView.String())

	// Footer
	help := "Help: ↑/↓: Navigate • c: Config • w: Which Module • PgUp/PgDn: Scroll Details • q: Quit"
	if m.SearchActive {
		help = fmt.Sprintf("Filter: %q (%d match) • Esc: Clear • q: Quit",
			m.InputBuffer.Value(), len(m.FilteredIndices))
	}

	footer := "\n\n" + footerStyle.Render(help)
	if m.InputMode {
		footer = fmt.Sprintf("\n\nWhich module: %s", m.InputBuffer.View())
	}

	header := fmt.Sprintf(" sitepath v%s — %d candidates, %d installed",
		site.Version, len(m.Analysis.Entries), len(m.Analysis.SearchPath))

	return header + "\n" + lipgloss.JoinHorizontal(lipgloss.Top, left, right) + footer
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, InitSiteCmd())
}
