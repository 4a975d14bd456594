package tui

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/paperacers/internal/core"
	racecore "github.com/vovakirdan/paperacers/internal/games/racer/core"
)

// Track menu layout constants
const (
	minWidthForPreview = 90 // Minimum width to show the track preview
	tableWidth         = 44 // Width of the track table
)

// MenuKeyMap defines the key bindings for the track menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "race"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// MenuModel is the Bubble Tea model for the track picker.
type MenuModel struct {
	tracks      []racecore.Track
	table       table.Model
	help        help.Model
	keys        MenuKeyMap
	config      core.RuntimeConfig
	width       int
	height      int
	showPreview bool
	quitting    bool
	selected    *racecore.Track // Set when user picks a track
}

// NewMenuModel creates a track picker with the cursor on selectedID.
func NewMenuModel(tracks []racecore.Track, selectedID string, cfg core.RuntimeConfig) MenuModel {
	h := help.New()
	h.ShowAll = false

	m := MenuModel{
		tracks:      tracks,
		help:        h,
		keys:        DefaultMenuKeyMap(),
		config:      cfg,
		width:       cfg.ScreenW,
		height:      cfg.ScreenH,
		showPreview: cfg.ScreenW >= minWidthForPreview,
	}
	m.table = m.createTable()

	for i, t := range tracks {
		if t.ID == selectedID {
			m.table.SetCursor(i)
			break
		}
	}
	return m
}

// createTable creates the track table sized for the current window.
func (m *MenuModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "ID", Width: 10},
		{Title: "Name", Width: 18},
		{Title: "Size", Width: 8},
	}

	rows := make([]table.Row, len(m.tracks))
	for i, t := range m.tracks {
		tl, br := t.Bounds()
		rows[i] = table.Row{
			t.ID,
			t.Name,
			fmt.Sprintf("%dx%d", br.X-tl.X+1, br.Y-tl.Y+1),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for title, help, and margins
	)

	theme := GetTheme()
	s := table.DefaultStyles()
	s.Header = s.Header.Inherit(theme.TableHeader)
	s.Selected = s.Selected.Inherit(theme.TableSelected)
	t.SetStyles(s)

	return t
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if t, ok := m.current(); ok {
				m.selected = &t
				return m, tea.Quit // Exit menu to start the race
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.showPreview = m.width >= minWidthForPreview
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.table.SetCursor(cursor)
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass navigation to the table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// current returns the track under the table cursor.
func (m MenuModel) current() (racecore.Track, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.tracks) {
		return racecore.Track{}, false
	}
	return m.tracks[i], true
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	theme := GetTheme()
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.MenuTitle.Render(centerText("P A P E R A C E R S", m.width)))
	b.WriteString("\n")
	b.WriteString(theme.MenuSubtitle.Render(centerText("Select a track", m.width)))
	b.WriteString("\n\n")

	if len(m.tracks) == 0 {
		b.WriteString(theme.MenuDescription.Render(centerText("No tracks found.", m.width)))
	} else {
		tablePane := theme.Border.Render(m.table.View())
		if m.showPreview {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tablePane, "  ", m.renderPreview()))
		} else {
			b.WriteString(tablePane)
		}
	}

	b.WriteString("\n")
	b.WriteString(theme.Help.Render(m.help.View(m.keys)))

	return b.String()
}

// renderPreview draws the selected track as text.
func (m MenuModel) renderPreview() string {
	t, ok := m.current()
	if !ok {
		return ""
	}
	theme := GetTheme()
	title := theme.MenuItemActive.Render(t.Name)
	body := title + "\n\n" + racecore.RenderASCII(t, nil)
	if notes := formatMetadata(t.Metadata); notes != "" {
		body += "\n" + theme.MenuDescription.Render(notes)
	}
	return theme.Border.Render(body)
}

// formatMetadata lists track metadata as "key: value" lines sorted by key.
func formatMetadata(meta map[string]string) string {
	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = k + ": " + meta[k]
	}
	return strings.Join(lines, "\n")
}

// Selected returns the chosen track, or nil if none was chosen.
func (m MenuModel) Selected() *racecore.Track {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := len([]rune(text))
	if n >= width {
		return text
	}
	padding := (width - n) / 2
	return strings.Repeat(" ", padding) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	Track  *racecore.Track
	Config core.RuntimeConfig
	Quit   bool
}

// RunMenu runs the track picker and returns the selection result.
func RunMenu(tracks []racecore.Track, selectedID string, cfg core.RuntimeConfig) (MenuResult, error) {
	model := NewMenuModel(tracks, selectedID, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, fmt.Errorf("tui: cannot run menu: %w", err)
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}

	result := MenuResult{Config: m.Config()}
	if m.IsQuitting() || m.Selected() == nil {
		result.Quit = true
		return result, nil
	}
	result.Track = m.Selected()
	return result, nil
}
