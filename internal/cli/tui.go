package cli

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/routeperm/pkg/errors"
	"github.com/matzehuels/routeperm/pkg/lookup"
	"github.com/matzehuels/routeperm/pkg/route"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// LocationListModel - Interactive start/end selection
// =============================================================================

// LocationListModel is the bubbletea model for picking one location.
type LocationListModel struct {
	Title     string
	Locations []lookup.Location
	Exclude   string // identifier that cannot be picked
	Cursor    int
	Selected  *lookup.Location
	Height    int
	Offset    int
}

// NewLocationListModel creates a new location list model.
func NewLocationListModel(title string, locs []lookup.Location, exclude string) LocationListModel {
	m := LocationListModel{
		Title:     title,
		Locations: locs,
		Exclude:   exclude,
		Height:    15,
	}
	if len(locs) > 0 && locs[0].ID == exclude {
		m.move(1)
	}
	return m
}

func (m LocationListModel) Init() tea.Cmd {
	return nil
}

func (m LocationListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "enter":
			if len(m.Locations) == 0 {
				return m, nil
			}
			loc := m.Locations[m.Cursor]
			if loc.ID == m.Exclude {
				return m, nil
			}
			m.Selected = &loc
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

// move steps the cursor by delta, skipping the excluded location and keeping
// the cursor inside the visible window.
func (m *LocationListModel) move(delta int) {
	next := m.Cursor + delta
	if next >= 0 && next < len(m.Locations) && m.Locations[next].ID == m.Exclude {
		next += delta
	}
	if next < 0 || next >= len(m.Locations) {
		return
	}
	m.Cursor = next
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
}

func (m LocationListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(m.Title))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Locations))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		l := m.Locations[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, l.ID, l.City, l.ZipCode, l.Point.String()})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "ID", "City", "Zip", "Coordinates").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return headerStyle
			}
			idx := m.Offset + row
			if idx >= len(m.Locations) {
				return lipgloss.NewStyle()
			}
			switch {
			case m.Locations[idx].ID == m.Exclude:
				return lipgloss.NewStyle().Foreground(colorDim).Strikethrough(true)
			case idx == m.Cursor:
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			default:
				return lipgloss.NewStyle().Foreground(colorWhite)
			}
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Locations))))

	return b.String()
}

// =============================================================================
// Endpoint Picker
// =============================================================================

// pickLocation runs one selection list and returns the chosen identifier.
func pickLocation(title string, locs []lookup.Location, exclude string) (string, error) {
	final, err := tea.NewProgram(NewLocationListModel(title, locs, exclude), tea.WithOutput(os.Stderr)).Run()
	if err != nil {
		return "", fmt.Errorf("interactive selection: %w", err)
	}
	m, ok := final.(LocationListModel)
	if !ok || m.Selected == nil {
		return "", errors.New(errors.ErrCodeInvalidInput, "no location selected")
	}
	return m.Selected.ID, nil
}

// pickEndpoints asks for the route start, then for the route end.
func pickEndpoints(t *lookup.Table) (route.Request, error) {
	if t.Len() < 2 {
		return route.Request{}, errors.New(errors.ErrCodeInvalidInput, "lookup table needs at least two locations, has %d", t.Len())
	}
	locs := t.Locations()
	from, err := pickLocation("Select Route Start", locs, "")
	if err != nil {
		return route.Request{}, err
	}
	to, err := pickLocation(fmt.Sprintf("Select Route End (from %s)", from), locs, from)
	if err != nil {
		return route.Request{}, err
	}
	return route.Request{From: from, To: to}, nil
}
