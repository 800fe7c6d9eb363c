package component

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/xiaoxiae/vimvaldi/internal/command"
	"github.com/xiaoxiae/vimvaldi/internal/input"
	"github.com/xiaoxiae/vimvaldi/internal/logging/events"
	"github.com/xiaoxiae/vimvaldi/internal/theme"
	"github.com/xiaoxiae/vimvaldi/internal/view"
)

// StatusLine is the one-row strip at the bottom of the screen. Unfocused it
// shows three text slots (left, centered, right-aligned); focused it becomes
// a line editor whose submit behavior depends on the mode: normal mode runs
// the command grammar, insert mode hands the raw text to the active
// component.
type StatusLine struct {
	Changeable

	slots   [3]string
	mode    command.Mode
	focused bool

	Buffer []rune
	cursor int

	styles *theme.Styles
}

// NewStatusLine builds an empty status line in normal mode.
func NewStatusLine(styles *theme.Styles) *StatusLine {
	s := &StatusLine{styles: styles}
	s.SetChanged(true)
	return s
}

// Mode reports the current input mode.
func (s *StatusLine) Mode() command.Mode { return s.mode }

// Focused reports whether the status line owns the keyboard.
func (s *StatusLine) Focused() bool { return s.focused }

// SetFocused is called by the controller on focus toggles. Gaining focus
// starts a fresh edit buffer.
func (s *StatusLine) SetFocused(focused bool) {
	s.focused = focused
	if focused {
		s.Buffer = nil
		s.cursor = 0
	}
	s.SetChanged(true)
}

func (s *StatusLine) HandleKey(ev input.Event) []command.Command {
	s.SetChanged(true)

	switch ev.Kind {
	case input.KindRune:
		s.Buffer = append(s.Buffer[:s.cursor], append([]rune{ev.Rune}, s.Buffer[s.cursor:]...)...)
		s.cursor++

	case input.KindBackspace:
		if s.cursor > 0 {
			s.Buffer = append(s.Buffer[:s.cursor-1], s.Buffer[s.cursor:]...)
			s.cursor--
		} else if len(s.Buffer) == 0 {
			return []command.Command{command.ToggleFocus{}}
		}

	case input.KindDelete:
		if s.cursor < len(s.Buffer) {
			s.Buffer = append(s.Buffer[:s.cursor], s.Buffer[s.cursor+1:]...)
		}

	case input.KindEscape:
		s.Buffer = nil
		s.cursor = 0
		return []command.Command{command.ToggleFocus{}}

	case input.KindLeft:
		if s.cursor > 0 {
			s.cursor--
		}

	case input.KindRight:
		if s.cursor < len(s.Buffer) {
			s.cursor++
		}

	case input.KindHome:
		s.cursor = 0

	case input.KindEnd:
		s.cursor = len(s.Buffer)

	case input.KindWordLeft:
		s.cursor = s.previousWord()

	case input.KindWordRight:
		s.cursor = s.nextWord()

	case input.KindEnter:
		return s.submit()
	}
	return nil
}

// previousWord finds the position just after the nearest space strictly
// before the cursor, or the line start.
func (s *StatusLine) previousWord() int {
	for i := s.cursor - 2; i >= 0; i-- {
		if s.Buffer[i] == ' ' {
			return i + 1
		}
	}
	return 0
}

// nextWord finds the position just after the nearest space at or past the
// cursor, or the line end.
func (s *StatusLine) nextWord() int {
	for i := s.cursor; i < len(s.Buffer); i++ {
		if s.Buffer[i] == ' ' {
			return i + 1
		}
	}
	return len(s.Buffer)
}

// submit consumes the buffer. The focus always returns to the active
// component; what follows depends on the mode.
func (s *StatusLine) submit() []command.Command {
	text := string(s.Buffer)
	s.Buffer = nil
	s.cursor = 0

	events.Status.Submit(s.mode.String(), text)
	cmds := []command.Command{command.ToggleFocus{}}

	if s.mode == command.ModeInsert {
		return append(cmds, command.InsertText{Text: text})
	}

	parsed, ok := command.Parse(text)
	if !ok {
		events.Status.Unknown(text)
		return append(cmds, command.SetStatusText{
			Slot: command.SlotCenter,
			Text: unknownCommandMessage(text),
		})
	}
	return append(cmds, parsed...)
}

func unknownCommandMessage(text string) string {
	msg := fmt.Sprintf("Unknown command: %q", text)
	if suggestion := command.Suggest(firstWord(text)); suggestion != "" {
		msg += fmt.Sprintf(" (did you mean %q?)", suggestion)
	}
	return msg
}

func firstWord(text string) string {
	for i, r := range text {
		if r == ' ' {
			return text[:i]
		}
	}
	return text
}

func (s *StatusLine) HandleCommand(cmd command.Command) []command.Command {
	switch c := cmd.(type) {
	case command.SetStatusText:
		s.slots[c.Slot] = c.Text
		s.SetChanged(true)
	case command.ClearStatus:
		s.slots = [3]string{}
		s.SetChanged(true)
	case command.SetStatusMode:
		if s.mode != c.Mode {
			s.mode = c.Mode
			events.Status.ModeChange(c.Mode.String())
			s.SetChanged(true)
		}
	}
	return nil
}

func (s *StatusLine) GainedFocus() []command.Command {
	return nil
}

func (s *StatusLine) Draw(v *view.View) error {
	if s.focused {
		return s.drawEditor(v)
	}
	return s.drawSlots(v)
}

func (s *StatusLine) drawEditor(v *view.View) error {
	prompt := ":"
	if s.mode == command.ModeInsert {
		prompt = ">"
	}
	if err := v.Write(0, 0, prompt, s.styles.Prompt); err != nil {
		return err
	}

	// Keep the cursor visible by sliding a window over long buffers.
	room := v.Width() - 1
	if room < 1 {
		return view.ErrOutOfBounds
	}
	start := 0
	if s.cursor > room-1 {
		start = s.cursor - (room - 1)
	}
	end := start + room
	if end > len(s.Buffer) {
		end = len(s.Buffer)
	}
	if err := v.Write(1, 0, string(s.Buffer[start:end]), s.styles.Text); err != nil {
		return err
	}

	caret := 1 + s.cursor - start
	if caret > v.Width()-1 {
		caret = v.Width() - 1
	}
	return v.MoveCursor(caret, 0)
}

func (s *StatusLine) drawSlots(v *view.View) error {
	width := v.Width()
	place := func(x int, text string, style *lipgloss.Style) error {
		rs := []rune(text)
		if len(rs) == 0 {
			return nil
		}
		if len(rs) > width {
			rs = rs[:width]
		}
		if x+len(rs) > width {
			x = width - len(rs)
		}
		if x < 0 {
			x = 0
		}
		return v.Write(x, 0, string(rs), style)
	}

	if err := place(0, s.slots[command.SlotLeft], s.styles.StatusLeft); err != nil {
		return err
	}
	center := s.slots[command.SlotCenter]
	if err := place(centerCoordinate(width, len([]rune(center))), center, s.styles.StatusInfo); err != nil {
		return err
	}
	right := s.slots[command.SlotRight]
	if err := place(width-len([]rune(right)), right, s.styles.StatusBadge); err != nil {
		return err
	}
	v.HideCursor()
	return nil
}
