package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/histoscene/pkg/chart"
	"github.com/matzehuels/histoscene/pkg/render/histogram/geometry"
)

// List styles
var (
	listDimStyle = lipgloss.NewStyle().Foreground(colorDim)
)

// DemoEntry describes one built-in dataset in the picker.
type DemoEntry struct {
	Name       string
	Caption    string
	Categories int
	Series     []string
	Max        uint64
	Missing    int
}

// demoEntries summarizes every built-in dataset.
func demoEntries() []DemoEntry {
	names := chart.DemoNames()
	entries := make([]DemoEntry, 0, len(names))
	for _, name := range names {
		spec, err := chart.Demo(name)
		if err != nil {
			continue
		}
		e := DemoEntry{Name: name, Caption: spec.Caption, Categories: len(spec.Labels)}
		for _, s := range spec.Series {
			e.Series = append(e.Series, s.Name)
			e.Missing += len(s.Values) - s.Present()
		}
		_, e.Max, _ = spec.Range()
		entries = append(entries, e)
	}
	return entries
}

// =============================================================================
// DemoListModel - Interactive dataset selection
// =============================================================================

// DemoListModel is the bubbletea model for interactive dataset selection.
type DemoListModel struct {
	Demos    []DemoEntry
	Cursor   int
	Selected *DemoEntry
}

// NewDemoListModel creates a new dataset list model.
func NewDemoListModel(demos []DemoEntry) DemoListModel {
	return DemoListModel{Demos: demos}
}

func (m DemoListModel) Init() tea.Cmd {
	return nil
}

func (m DemoListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Demos)-1 {
				m.Cursor++
			}
		case "enter":
			if len(m.Demos) == 0 {
				return m, tea.Quit
			}
			d := m.Demos[m.Cursor]
			m.Selected = &d
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m DemoListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Dataset"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	rows := make([][]string, 0, len(m.Demos))
	for i, d := range m.Demos {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		missing := "—"
		if d.Missing > 0 {
			missing = fmt.Sprint(d.Missing)
		}
		rows = append(rows, []string{
			cursor, d.Name, d.Caption, fmt.Sprint(d.Categories),
			strings.Join(d.Series, ", "), geometry.FormatCount(d.Max), missing,
		})
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Name", "Caption", "Labels", "Series", "Max", "Missing").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return headerStyle
			case row == m.Cursor:
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			case col >= 3:
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Demos))))
	return b.String()
}
