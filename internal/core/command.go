package core

// Command is a semantic request issued by an input front-end. Front-ends map
// their raw key events onto commands; the loop dispatches them with a switch.
type Command int

const (
	CommandNone Command = iota
	CommandQuit
	CommandReset
	CommandTogglePause
	CommandStepOnce
	CommandGrowthUp
	CommandGrowthDown
	CommandDecayUp
	CommandDecayDown
	CommandSeedUp
	CommandSeedDown
	CommandToggleRule
	CommandFaster
	CommandSlower
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CommandNone:
		return "None"
	case CommandQuit:
		return "Quit"
	case CommandReset:
		return "Reset"
	case CommandTogglePause:
		return "TogglePause"
	case CommandStepOnce:
		return "StepOnce"
	case CommandGrowthUp:
		return "GrowthUp"
	case CommandGrowthDown:
		return "GrowthDown"
	case CommandDecayUp:
		return "DecayUp"
	case CommandDecayDown:
		return "DecayDown"
	case CommandSeedUp:
		return "SeedUp"
	case CommandSeedDown:
		return "SeedDown"
	case CommandToggleRule:
		return "ToggleRule"
	case CommandFaster:
		return "Faster"
	case CommandSlower:
		return "Slower"
	default:
		return "Unknown"
	}
}

// PaintMode distinguishes the primary (activate) and secondary (deactivate)
// pointer gestures.
type PaintMode int

const (
	PaintActivate PaintMode = iota
	PaintDeactivate
)

// Value returns the cell state written by the gesture.
func (m PaintMode) Value() int {
	if m == PaintDeactivate {
		return 0
	}
	return 1
}

// keyCommands maps key names, as reported by the terminal front-end and
// used by the GUI binding table, onto commands.
var keyCommands = map[string]Command{
	"r":      CommandReset,
	"p":      CommandTogglePause,
	"n":      CommandStepOnce,
	"q":      CommandGrowthUp,
	"w":      CommandGrowthDown,
	"a":      CommandDecayUp,
	"s":      CommandDecayDown,
	"e":      CommandSeedUp,
	"d":      CommandSeedDown,
	"c":      CommandToggleRule,
	"+":      CommandFaster,
	"=":      CommandFaster,
	"-":      CommandSlower,
	"esc":    CommandQuit,
	"ctrl+c": CommandQuit,
}

// CommandForKey returns the command bound to key, or CommandNone.
func CommandForKey(key string) Command {
	if cmd, ok := keyCommands[key]; ok {
		return cmd
	}
	return CommandNone
}
