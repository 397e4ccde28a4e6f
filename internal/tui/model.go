package tui

import (
	"sitepath/internal/config"
	"sitepath/internal/site"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Cfg      config.Config
	Analysis site.Analysis
	Loading  bool
	Err      error

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg

	// View Modes
	ShowConfig bool // 'c' swaps the details pane for the configuration

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int          // Indices of entries to show
	SearchMatches   map[int]string // Entry index -> matched module name
	SearchActive    bool

	// Components
	DetailsViewport viewport.Model
}

// InitialModel returns the initial state.
func InitialModel() AppModel {
	ti := textinput.New()
	ti.Placeholder = "Module name..."
	ti.CharLimit = 50
	ti.Width = 20

	return AppModel{
		Loading:     true,
		InputBuffer: ti,
		SelectedIdx: 0,
	}
}
