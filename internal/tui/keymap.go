package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"data-desert/internal/core"
)

// KeyMapper translates Bubble Tea key and mouse messages into loop input.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey returns the command bound to msg, or CommandNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Command {
	return core.CommandForKey(msg.String())
}

// MapMouse converts a mouse event into a grid cell and paint mode. Each
// cell is two columns wide. ok is false for events that do not paint.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (x, y int, mode core.PaintMode, ok bool) {
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return 0, 0, 0, false
	}
	switch msg.Button {
	case tea.MouseButtonLeft:
		mode = core.PaintActivate
	case tea.MouseButtonRight:
		mode = core.PaintDeactivate
	default:
		return 0, 0, 0, false
	}
	return msg.X / cellWidth, msg.Y, mode, true
}
