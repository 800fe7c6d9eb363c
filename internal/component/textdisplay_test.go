package component

import (
	"reflect"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/xiaoxiae/vimvaldi/internal/command"
	"github.com/xiaoxiae/vimvaldi/internal/input"
	"github.com/xiaoxiae/vimvaldi/internal/theme"
	"github.com/xiaoxiae/vimvaldi/internal/view"
)

func TestTextDisplayDrawsMarkup(t *testing.T) {
	d := NewTextDisplay("# Title\nplain *bold* text\n---", theme.Default())
	v := view.New(30, 10)
	if err := d.Draw(v); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	out := ansi.Strip(v.Render())
	if !strings.Contains(out, "Title") {
		t.Fatalf("heading text missing:\n%s", out)
	}
	if strings.Contains(out, "#") || strings.Contains(out, "*") {
		t.Fatalf("markup leaked into output:\n%s", out)
	}
	if !strings.Contains(out, strings.Repeat("─", 24)) {
		t.Fatalf("rule missing:\n%s", out)
	}
}

func TestTextDisplayScrollClamping(t *testing.T) {
	d := NewTextDisplay(strings.Repeat("line\n", 19)+"last", theme.Default())
	v := view.New(30, 7) // 5 content rows

	for i := 0; i < 100; i++ {
		d.HandleKey(input.RuneEvent('j'))
	}
	if err := d.Draw(v); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	if d.offset != 15 {
		t.Fatalf("offset should clamp to 15, got %d", d.offset)
	}
	if out := ansi.Strip(v.Render()); !strings.Contains(out, "last") {
		t.Fatalf("the final line should be visible:\n%s", out)
	}

	for i := 0; i < 100; i++ {
		d.HandleKey(input.RuneEvent('k'))
	}
	if d.offset != 0 {
		t.Fatalf("offset should clamp to 0, got %d", d.offset)
	}
}

func TestTextDisplayPageScroll(t *testing.T) {
	d := NewTextDisplay(strings.Repeat("line\n", 50), theme.Default())
	v := view.New(30, 14) // 12 content rows
	if err := d.Draw(v); err != nil {
		t.Fatalf("draw failed: %v", err)
	}
	d.HandleKey(input.Event{Kind: input.KindPageDown})
	if d.offset != 4 {
		t.Fatalf("page down should jump a third of the height, got %d", d.offset)
	}
	d.HandleKey(input.Event{Kind: input.KindPageUp})
	if d.offset != 0 {
		t.Fatalf("page up should jump back, got %d", d.offset)
	}
}

func TestTextDisplayKeys(t *testing.T) {
	d := NewTextDisplay("text", theme.Default())
	if cmds := d.HandleKey(input.RuneEvent('q')); !reflect.DeepEqual(cmds, []command.Command{command.PopView{}}) {
		t.Fatalf("q should pop, got %#v", cmds)
	}
	want := []command.Command{
		command.SetStatusMode{Mode: command.ModeNormal},
		command.ToggleFocus{},
	}
	if cmds := d.HandleKey(input.RuneEvent(':')); !reflect.DeepEqual(cmds, want) {
		t.Fatalf(": should focus the status line, got %#v", cmds)
	}
}

func TestTextDisplayTooSmall(t *testing.T) {
	d := NewTextDisplay("text", theme.Default())
	if err := d.Draw(view.New(6, 2)); err != view.ErrOutOfBounds {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestLogoDismissal(t *testing.T) {
	l := NewLogo(theme.Default())
	if cmds := l.HandleKey(input.Event{Kind: input.KindEnter}); !reflect.DeepEqual(cmds, []command.Command{command.PopView{}}) {
		t.Fatalf("enter should pop the logo, got %#v", cmds)
	}
	if cmds := l.HandleKey(input.RuneEvent('x')); cmds != nil {
		t.Fatalf("other keys should be inert, got %#v", cmds)
	}
}

func TestLogoDrawTooSmall(t *testing.T) {
	l := NewLogo(theme.Default())
	if err := l.Draw(view.New(10, 5)); err == nil {
		t.Fatalf("expected an error on a tiny view")
	}
}
