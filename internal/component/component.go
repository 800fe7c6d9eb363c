// Package component contains the modal units of the interface. A component
// owns its private state and dirty flag; every outward effect (switching
// views, touching the status line, quitting) travels as commands returned
// from its handlers, never as a direct call into another component.
package component

import (
	"github.com/xiaoxiae/vimvaldi/internal/command"
	"github.com/xiaoxiae/vimvaldi/internal/input"
	"github.com/xiaoxiae/vimvaldi/internal/view"
)

// Component is the contract every modal unit fulfills. Draw is only ever
// invoked by the controller, guarded by the dirty flag, and must be
// idempotent while the flag is clear.
type Component interface {
	// HandleKey reacts to a normalized input event.
	HandleKey(ev input.Event) []command.Command

	// HandleCommand reacts to a command the controller routed here.
	HandleCommand(cmd command.Command) []command.Command

	// GainedFocus is the synthetic notification issued when the component
	// becomes the stack tail after a push or pop.
	GainedFocus() []command.Command

	// Draw renders the component into the view. Out-of-bounds writes
	// propagate so the controller can enter its too-small fallback.
	Draw(v *view.View) error

	HasChanged() bool
	SetChanged(changed bool)
}

// Changeable is the dirty-flag mixin. The flag lives on each instance;
// constructors set it explicitly so a fresh component is always drawn once.
type Changeable struct {
	changed bool
}

// HasChanged reports whether a redraw is pending.
func (c *Changeable) HasChanged() bool { return c.changed }

// SetChanged marks or clears the pending redraw.
func (c *Changeable) SetChanged(changed bool) { c.changed = changed }

// centerCoordinate returns the starting coordinate of an object of size b
// centered within size a.
func centerCoordinate(a, b int) int {
	return a/2 - b/2 - b%2
}
