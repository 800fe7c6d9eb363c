package component

import (
	"strings"

	"github.com/xiaoxiae/vimvaldi/internal/command"
	"github.com/xiaoxiae/vimvaldi/internal/input"
	"github.com/xiaoxiae/vimvaldi/internal/textwrap"
	"github.com/xiaoxiae/vimvaldi/internal/theme"
	"github.com/xiaoxiae/vimvaldi/internal/view"
)

// Side margins of the text area inside the view.
const (
	textSideX = 3
	textSideY = 1
)

// TextDisplay is a scrollable viewer over a marked-up document, used for the
// help and info pages. The scroll offset survives pushes and pops; it is
// only re-clamped against the current layout on draw.
type TextDisplay struct {
	Changeable

	text   string
	offset int

	// pageJump is the last drawn text height, used by ctrl+d / ctrl+u.
	pageJump int

	styles *theme.Styles
}

// NewTextDisplay builds a viewer over the given markup source.
func NewTextDisplay(text string, styles *theme.Styles) *TextDisplay {
	t := &TextDisplay{text: text, pageJump: 1, styles: styles}
	t.SetChanged(true)
	return t
}

func (t *TextDisplay) scroll(delta int) []command.Command {
	t.offset += delta
	if t.offset < 0 {
		t.offset = 0
	}
	t.SetChanged(true)
	return nil
}

func (t *TextDisplay) HandleKey(ev input.Event) []command.Command {
	switch {
	case ev.Kind == input.KindDown || ev.Kind == input.KindEnter || ev.Rune == 'j':
		return t.scroll(1)
	case ev.Kind == input.KindUp || ev.Rune == 'k':
		return t.scroll(-1)
	case ev.Kind == input.KindPageDown:
		return t.scroll(t.pageJump / 3)
	case ev.Kind == input.KindPageUp:
		return t.scroll(-t.pageJump / 3)
	case ev.Rune == 'q':
		return []command.Command{command.PopView{}}
	case ev.Rune == ':':
		return []command.Command{
			command.SetStatusMode{Mode: command.ModeNormal},
			command.ToggleFocus{},
		}
	}
	return nil
}

func (t *TextDisplay) HandleCommand(cmd command.Command) []command.Command {
	if _, ok := cmd.(command.Quit); ok {
		return []command.Command{command.PopView{}}
	}
	return nil
}

func (t *TextDisplay) GainedFocus() []command.Command {
	return []command.Command{command.ClearStatus{}}
}

// Draw lays the document out against the current text area and renders the
// visible slice. The offset is clamped so shrinking the terminal cannot
// leave the viewport past the end of the text.
func (t *TextDisplay) Draw(v *view.View) error {
	width := v.Width() - 2*textSideX
	height := v.Height() - 2*textSideY
	if width < 1 || height < 1 {
		return view.ErrOutOfBounds
	}
	t.pageJump = height

	lines := textwrap.Wrap(t.text, width)
	runs := textwrap.Runs(lines)

	if max := textwrap.MaxOffset(len(lines), height); t.offset > max {
		t.offset = max
	}

	for row := 0; row < height; row++ {
		i := t.offset + row
		if i >= len(lines) {
			break
		}
		y := textSideY + row
		if lines[i].Rule {
			rule := strings.Repeat("─", width)
			if err := v.Write(textSideX, y, rule, t.styles.Rule); err != nil {
				return err
			}
			continue
		}
		x := textSideX
		for _, run := range runs[i] {
			style := t.styles.TextRun(run.Style, lines[i].Heading)
			if err := v.Write(x, y, run.Text, style); err != nil {
				return err
			}
			x += len([]rune(run.Text))
		}
	}
	v.HideCursor()
	return nil
}
