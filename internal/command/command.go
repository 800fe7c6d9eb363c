// Package command defines the message protocol between components and the
// controller. Commands are immutable values: a component that wants any
// effect outside its own state returns commands instead of reaching out.
package command

// Slot addresses one of the three status line text fields.
type Slot int

const (
	SlotLeft Slot = iota
	SlotCenter
	SlotRight
)

// Mode is the status line input mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeInsert
)

func (m Mode) String() string {
	if m == ModeInsert {
		return "insert"
	}
	return "normal"
}

// Command is the closed set of messages resolved by the controller. The
// unexported marker keeps the set sealed so the resolver's type switch
// stays exhaustive.
type Command interface {
	isCommand()
}

// Quit requests popping the active view; with unsaved changes it is
// rejected by the editor unless Forced.
type Quit struct {
	Forced bool
}

// Save requests writing the score. An empty Path reuses the current one.
type Save struct {
	Path   string
	Forced bool
}

// Open requests loading a score from Path, guarded against unsaved changes
// unless Forced.
type Open struct {
	Path   string
	Forced bool
}

// PushView pushes the named component onto the stack and focuses it.
type PushView struct {
	Name string
}

// PopView removes the stack tail; popping the last view exits the program.
type PopView struct{}

// ToggleFocus flips focus between the status line and the active component.
type ToggleFocus struct{}

// SetStatusText replaces the text of one status line slot.
type SetStatusText struct {
	Slot Slot
	Text string
}

// ClearStatus empties all three status line slots.
type ClearStatus struct{}

// SetStatusMode switches the status line between normal and insert mode.
type SetStatusMode struct {
	Mode Mode
}

// InsertText carries a submitted insert-mode payload to the active
// component, uninterpreted.
type InsertText struct {
	Text string
}

func (Quit) isCommand()          {}
func (Save) isCommand()          {}
func (Open) isCommand()          {}
func (PushView) isCommand()      {}
func (PopView) isCommand()       {}
func (ToggleFocus) isCommand()   {}
func (SetStatusText) isCommand() {}
func (ClearStatus) isCommand()   {}
func (SetStatusMode) isCommand() {}
func (InsertText) isCommand()    {}
