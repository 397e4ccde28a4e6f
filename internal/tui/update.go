package tui

import (
	"fmt"
	"strings"

	"sitepath/internal/config"
	"sitepath/internal/site"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// MsgSiteReady indicates that the compose+install pass has completed.
type MsgSiteReady struct {
	Cfg      config.Config
	Analysis site.Analysis
}

// MsgError indicates an error occurred.
type MsgError error

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 6 // minus footer/header/borders
		m.refreshDetails()
		return m, nil

	case MsgSiteReady:
		m.Loading = false
		m.Cfg = msg.Cfg
		m.Analysis = msg.Analysis
		m.FilteredIndices = make([]int, len(m.Analysis.Entries))
		for i := range m.Analysis.Entries {
			m.FilteredIndices[i] = i
		}
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = 0
		}
		m.refreshDetails()
		return m, nil

	case MsgError:
		m.Err = msg
		m.Loading = false
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.performSearch()
				m.refreshDetails()
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.performSearch() // Reset filter to all
				m.refreshDetails()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.SearchActive {
				m.InputMode = false
				m.InputBuffer.Blur()
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.performSearch()
				m.refreshDetails()
				return m, nil
			}
			if m.ShowConfig {
				m.ShowConfig = false
				m.refreshDetails()
				return m, nil
			}
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.refreshDetails()
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
				m.refreshDetails()
			}
		case "c":
			m.ShowConfig = !m.ShowConfig
			m.refreshDetails()
		case "w":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		case "pgup", "pgdown":
			m.DetailsViewport, cmd = m.DetailsViewport.Update(msg)
			return m, cmd
		}
	}

	return m, cmd
}

// performSearch filters entries to those providing a module whose name starts
// with the typed term. Missing directories can't provide anything, so they
// drop out of the filter while a search is active.
func (m *AppModel) performSearch() {
	term := strings.ToLower(m.InputBuffer.Value())
	if term == "" {
		m.SearchActive = false
		m.SearchMatches = nil
		m.FilteredIndices = make([]int, len(m.Analysis.Entries))
		for i := range m.Analysis.Entries {
			m.FilteredIndices[i] = i
		}
	} else {
		m.SearchActive = true
		m.SearchMatches = make(map[int]string)
		var result []int
		for i, entry := range m.Analysis.Entries {
			for _, mod := range site.Modules(entry.Path) {
				if strings.HasPrefix(strings.ToLower(mod), term) {
					m.SearchMatches[i] = mod
					result = append(result, i)
					break
				}
			}
		}
		m.FilteredIndices = result
	}

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
}

// refreshDetails rebuilds the right-hand pane content for the current
// selection (or the configuration, in config mode).
func (m *AppModel) refreshDetails() {
	var b strings.Builder

	if m.ShowConfig {
		fmt.Fprintf(&b, "Root:         %s\n", m.Cfg.Root)
		fmt.Fprintf(&b, "Deploy root:  %s\n", m.Cfg.DeployRoot)
		fmt.Fprintf(&b, "Platform:     %s\n", m.Cfg.Platform)
		fmt.Fprintf(&b, "Python dir:   %s\n", m.Cfg.PythonDir)
		fmt.Fprintf(&b, "Environments: %s\n", strings.Join(m.Cfg.Environments(), ", "))
		fmt.Fprintf(&b, "Dev active:   %v\n", m.Cfg.Dev)
		fmt.Fprintf(&b, "Custom env:   %q\n", m.Cfg.CustomEnv)
		if m.Analysis.EnvDir != "" {
			fmt.Fprintf(&b, "\n%s:\n  %s\n", config.EnvDirVar, m.Analysis.EnvDir)
		}
		m.DetailsViewport.SetContent(b.String())
		m.DetailsViewport.GotoTop()
		return
	}

	if len(m.FilteredIndices) == 0 || m.SelectedIdx >= len(m.FilteredIndices) {
		m.DetailsViewport.SetContent("No entries.")
		return
	}

	idx := m.FilteredIndices[m.SelectedIdx]
	entry := m.Analysis.Entries[idx]

	fmt.Fprintf(&b, "Directory:   %s\n", entry.Path)
	fmt.Fprintf(&b, "Environment: %s\n", entry.Env)
	fmt.Fprintf(&b, "Template:    platform-specific=%v versioned=%v\n",
		entry.PlatformSpecific, entry.Versioned)
	fmt.Fprintf(&b, "Exists:      %v\n", entry.Exists)
	fmt.Fprintf(&b, "Installed:   %v\n", entry.Installed)
	if entry.IsDuplicate {
		dup := m.Analysis.Entries[entry.DuplicateOf]
		fmt.Fprintf(&b, "\nDuplicate of entry %d; the %s environment wins.\n",
			entry.DuplicateOf+1, dup.Env)
	}

	if m.SearchActive {
		if mod, ok := m.SearchMatches[idx]; ok {
			fmt.Fprintf(&b, "\n--- Found Module ---\n")
			fmt.Fprintf(&b, "Name: %s\n", mod)
			if loc, err := site.Locate(mod, []string{entry.Path}); err == nil {
				fmt.Fprintf(&b, "Path: %s\n", loc)
			}
		}
	}

	if entry.Exists {
		if mods := site.Modules(entry.Path); len(mods) > 0 {
			fmt.Fprintf(&b, "\n--- Provides (%d) ---\n", len(mods))
			for _, mod := range mods {
				fmt.Fprintf(&b, "  %s\n", mod)
			}
		} else {
			b.WriteString("\n(directory provides no modules)\n")
		}
	}

	m.DetailsViewport.SetContent(b.String())
	m.DetailsViewport.GotoTop()
}

// InitSiteCmd runs the compose+install pass in the background.
func InitSiteCmd() tea.Cmd {
	return func() tea.Msg {
		cfg := config.Load()
		sp := site.FromEnviron()
		a := site.Setup(cfg, sp)
		return MsgSiteReady{Cfg: cfg, Analysis: a}
	}
}
