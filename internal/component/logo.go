package component

import (
	"strings"

	"github.com/xiaoxiae/vimvaldi/internal/command"
	"github.com/xiaoxiae/vimvaldi/internal/graphics"
	"github.com/xiaoxiae/vimvaldi/internal/input"
	"github.com/xiaoxiae/vimvaldi/internal/theme"
	"github.com/xiaoxiae/vimvaldi/internal/view"
)

// Logo is the startup splash. Any Enter dismisses it by popping itself off
// the stack, revealing the menu underneath.
type Logo struct {
	Changeable

	art    []string
	styles *theme.Styles
}

// NewLogo builds the splash component from the embedded art.
func NewLogo(styles *theme.Styles) *Logo {
	l := &Logo{
		art:    strings.Split(graphics.Logo, "\n"),
		styles: styles,
	}
	l.SetChanged(true)
	return l
}

func (l *Logo) HandleKey(ev input.Event) []command.Command {
	if ev.Kind == input.KindEnter {
		return []command.Command{command.PopView{}}
	}
	return nil
}

func (l *Logo) HandleCommand(cmd command.Command) []command.Command {
	if _, ok := cmd.(command.Quit); ok {
		return []command.Command{command.PopView{}}
	}
	return nil
}

func (l *Logo) GainedFocus() []command.Command {
	return []command.Command{command.ClearStatus{}}
}

// Draw centers the art; asterisk cells get the accent color. A view smaller
// than the art fails the first write and bubbles up as too-small.
func (l *Logo) Draw(v *view.View) error {
	widest := 0
	for _, row := range l.art {
		if n := len([]rune(row)); n > widest {
			widest = n
		}
	}
	x0 := centerCoordinate(v.Width(), widest)
	y0 := centerCoordinate(v.Height(), len(l.art))

	for dy, row := range l.art {
		for dx, r := range []rune(row) {
			if r == ' ' {
				continue
			}
			style := l.styles.Logo
			if r == '*' {
				style = l.styles.LogoAccent
			}
			if err := v.Write(x0+dx, y0+dy, string(r), style); err != nil {
				return err
			}
		}
	}
	v.HideCursor()
	return nil
}
