package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"data-desert/internal/app"
	"data-desert/internal/ui"
	"data-desert/pkg/sims/life"
)

// Model is the Bubble Tea model driving a Loop.
type Model struct {
	loop     *app.Loop
	painter  *Painter
	keys     *KeyMapper
	quitting bool
}

// NewModel creates a model for loop drawn with theme's colours.
func NewModel(loop *app.Loop, theme life.Theme) Model {
	return Model{loop: loop, painter: NewPainter(theme), keys: NewKeyMapper()}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.loop.TPS())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if x, y, mode, ok := m.keys.MapMouse(msg); ok {
			m.loop.Paint(x, y, mode)
		}
		return m, nil

	case TickMsg:
		m.loop.Tick()
		return m, tickCmd(m.loop.TPS())
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "1" {
		m.painter.ToggleDecay()
		return m, nil
	}
	if m.loop.Dispatch(m.keys.MapKey(msg)) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the grid with a status line underneath.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	status := strings.Join(ui.StatusLines(m.loop.Sim(), m.loop), "  |  ")
	return m.painter.Render(m.loop.Sim().Grid()) + "\n\n" + statusStyle.Render(status)
}

// Run takes over the terminal until the user quits.
func Run(loop *app.Loop, theme life.Theme) error {
	p := tea.NewProgram(
		NewModel(loop, theme),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
