package browse

import (
	tea "github.com/charmbracelet/bubbletea"
)

type pickerModel struct {
	types  []string
	cursor int
	chosen int // -1 = no choice yet, -2 = quit
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.chosen = -2
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.types)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = m.cursor
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m pickerModel) View() string {
	s := pickerTitleStyle.Render("Career Connect · Pick a job type")
	s += "\n"

	for i, t := range m.types {
		if i == m.cursor {
			s += pickerSelectedStyle.Render("> "+t) + "\n"
		} else {
			s += pickerItemStyle.Render(t) + "\n"
		}
	}

	s += hintStyle.Render("↑/↓/j/k navigate  enter select  q quit")
	return s
}

// RunTypePicker shows the job type selector. It returns the chosen type, or
// ok=false if the user quit.
func RunTypePicker(types []string) (string, bool, error) {
	p := tea.NewProgram(pickerModel{types: types, chosen: -1})
	result, err := p.Run()
	if err != nil {
		return "", false, err
	}
	final := result.(pickerModel)
	if final.chosen < 0 {
		return "", false, nil
	}
	return final.types[final.chosen], true, nil
}
