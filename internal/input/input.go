// Package input normalizes raw terminal key messages into a closed event
// enum. Components never see Bubble Tea key types; the translation happens
// exactly once, here.
package input

import tea "github.com/charmbracelet/bubbletea"

// Kind enumerates the recognized input events.
type Kind int

const (
	KindRune Kind = iota
	KindEnter
	KindEscape
	KindBackspace
	KindDelete
	KindLeft
	KindRight
	KindUp
	KindDown
	KindHome
	KindEnd
	KindWordLeft
	KindWordRight
	KindPageDown
	KindPageUp
	KindInterrupt
)

// Event is a single normalized input event. Rune is only meaningful for
// KindRune.
type Event struct {
	Kind Kind
	Rune rune
}

// RuneEvent is a convenience constructor used heavily in tests.
func RuneEvent(r rune) Event {
	return Event{Kind: KindRune, Rune: r}
}

// FromKeyMsg translates a Bubble Tea key message into an Event. The second
// return value is false for keys outside the recognized palette, which the
// caller should drop.
func FromKeyMsg(msg tea.KeyMsg) (Event, bool) {
	switch msg.String() {
	case "ctrl+c":
		return Event{Kind: KindInterrupt}, true
	case "ctrl+left":
		return Event{Kind: KindWordLeft}, true
	case "ctrl+right":
		return Event{Kind: KindWordRight}, true
	case "ctrl+d":
		return Event{Kind: KindPageDown}, true
	case "ctrl+u":
		return Event{Kind: KindPageUp}, true
	}

	switch msg.Type {
	case tea.KeyEnter:
		return Event{Kind: KindEnter}, true
	case tea.KeyEscape:
		return Event{Kind: KindEscape}, true
	case tea.KeyBackspace, tea.KeyCtrlH:
		return Event{Kind: KindBackspace}, true
	case tea.KeyDelete:
		return Event{Kind: KindDelete}, true
	case tea.KeyLeft:
		return Event{Kind: KindLeft}, true
	case tea.KeyRight:
		return Event{Kind: KindRight}, true
	case tea.KeyUp:
		return Event{Kind: KindUp}, true
	case tea.KeyDown:
		return Event{Kind: KindDown}, true
	case tea.KeyHome:
		return Event{Kind: KindHome}, true
	case tea.KeyEnd:
		return Event{Kind: KindEnd}, true
	case tea.KeySpace:
		return Event{Kind: KindRune, Rune: ' '}, true
	case tea.KeyTab:
		return Event{}, false
	case tea.KeyRunes:
		if msg.Alt || len(msg.Runes) == 0 {
			return Event{}, false
		}
		return Event{Kind: KindRune, Rune: msg.Runes[0]}, true
	}
	return Event{}, false
}
