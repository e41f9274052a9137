package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/archdraw/pkg/blueprints"
)

var listDimStyle = lipgloss.NewStyle().Foreground(colorDim)

// =============================================================================
// BlueprintListModel - Interactive blueprint selection
// =============================================================================

// BlueprintListModel is the bubbletea model for picking a blueprint to
// render.
type BlueprintListModel struct {
	Items    []blueprints.Blueprint
	Cursor   int
	Selected *blueprints.Blueprint
	Height   int
	Offset   int
}

// NewBlueprintListModel creates a picker over items.
func NewBlueprintListModel(items []blueprints.Blueprint) BlueprintListModel {
	return BlueprintListModel{Items: items, Height: 15}
}

func (m BlueprintListModel) Init() tea.Cmd {
	return nil
}

func (m BlueprintListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
				if m.Cursor < m.Offset {
					m.Offset = m.Cursor
				}
			}
		case "down", "j":
			if m.Cursor < len(m.Items)-1 {
				m.Cursor++
				if m.Cursor >= m.Offset+m.Height {
					m.Offset = m.Cursor - m.Height + 1
				}
			}
		case "enter":
			if len(m.Items) == 0 {
				return m, nil
			}
			b := m.Items[m.Cursor]
			m.Selected = &b
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}
	return m, nil
}

func (m BlueprintListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Blueprint"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ render  q quit"))
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(m.Items))
	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		bp := m.Items[i]
		rows = append(rows, []string{cursor, bp.Name, bp.Title, string(bp.Direction)})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Blueprint", "Title", "Dir").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			if m.Offset+row == m.Cursor {
				return lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
			}
			if col == 3 {
				return lipgloss.NewStyle().Foreground(colorDim)
			}
			return lipgloss.NewStyle().Foreground(colorWhite)
		})

	b.WriteString(t.Render())
	b.WriteString("\n")
	if m.Cursor < len(m.Items) {
		b.WriteString(listDimStyle.Render("  " + m.Items[m.Cursor].Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Items))))

	return b.String()
}

// pickBlueprint runs the picker and returns the chosen blueprint name, or
// "" if the user quit.
func pickBlueprint() (string, error) {
	p := tea.NewProgram(NewBlueprintListModel(blueprints.All()))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("blueprint picker: %w", err)
	}
	if m, ok := final.(BlueprintListModel); ok && m.Selected != nil {
		return m.Selected.Name, nil
	}
	return "", nil
}
