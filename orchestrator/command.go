package orchestrator

// Action names the capability a Command is dispatched to.
type Action string

const (
	// ActionDisplay dispatches to the Display capability.
	ActionDisplay Action = "display"

	// ActionPrint dispatches to the Print capability.
	ActionPrint Action = "print"

	// ActionSerialize dispatches to the Serialize capability and ends the run.
	ActionSerialize Action = "serialize"
)

// Commands is a slice of Command instances.
type Commands = []Command

// Command is one (action, variant) step of a run.
type Command struct {
	Action  Action
	Variant string
}

// BuildCommand creates a new Command.
func BuildCommand(action Action, variant string) Command {
	return Command{
		Action:  action,
		Variant: variant,
	}
}
