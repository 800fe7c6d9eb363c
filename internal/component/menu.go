package component

import (
	"strings"

	"github.com/xiaoxiae/vimvaldi/internal/command"
	"github.com/xiaoxiae/vimvaldi/internal/graphics"
	"github.com/xiaoxiae/vimvaldi/internal/input"
	"github.com/xiaoxiae/vimvaldi/internal/theme"
	"github.com/xiaoxiae/vimvaldi/internal/view"
)

// MenuItem is a single selectable entry. A nil *MenuItem in the item list is
// a spacer: it is drawn blank and navigation skips over it.
type MenuItem struct {
	Label    string
	Commands []command.Command
	Tooltip  string
}

// Menu is the vertically centered list the application starts on. Selection
// wraps around and never lands on a spacer.
type Menu struct {
	Changeable

	title  []string
	items  []*MenuItem
	index  int
	styles *theme.Styles
}

// NewMenu builds a menu over the given items. At least one item must be
// selectable; the selection starts on the first such item.
func NewMenu(items []*MenuItem, styles *theme.Styles) *Menu {
	m := &Menu{
		title:  strings.Split(graphics.MenuTitle, "\n"),
		items:  items,
		styles: styles,
	}
	for m.items[m.index] == nil {
		m.index++
		if m.index == len(m.items) {
			panic("menu: no selectable items")
		}
	}
	m.SetChanged(true)
	return m
}

// Selected returns the currently selected item.
func (m *Menu) Selected() *MenuItem {
	return m.items[m.index]
}

func (m *Menu) next() {
	for {
		m.index = (m.index + 1) % len(m.items)
		if m.items[m.index] != nil {
			return
		}
	}
}

func (m *Menu) previous() {
	for {
		m.index = (m.index - 1 + len(m.items)) % len(m.items)
		if m.items[m.index] != nil {
			return
		}
	}
}

func (m *Menu) tooltip() []command.Command {
	return []command.Command{
		command.ClearStatus{},
		command.SetStatusText{Slot: command.SlotCenter, Text: m.Selected().Tooltip},
	}
}

func (m *Menu) HandleKey(ev input.Event) []command.Command {
	switch {
	case ev.Kind == input.KindDown || ev.Rune == 'j':
		m.next()
		m.SetChanged(true)
		return m.tooltip()

	case ev.Kind == input.KindUp || ev.Rune == 'k':
		m.previous()
		m.SetChanged(true)
		return m.tooltip()

	case ev.Kind == input.KindEnter || ev.Rune == 'l':
		return m.Selected().Commands

	case ev.Rune == ':':
		return []command.Command{
			command.SetStatusMode{Mode: command.ModeNormal},
			command.ToggleFocus{},
		}
	}
	return nil
}

// HandleCommand honors :q and friends; the menu has no unsaved state, so a
// quit is always a plain pop.
func (m *Menu) HandleCommand(cmd command.Command) []command.Command {
	if _, ok := cmd.(command.Quit); ok {
		return []command.Command{command.PopView{}}
	}
	return nil
}

// GainedFocus restores the tooltip of the selected entry whenever the menu
// resurfaces as the stack tail.
func (m *Menu) GainedFocus() []command.Command {
	return m.tooltip()
}

func (m *Menu) Draw(v *view.View) error {
	height := len(m.title) + 1 + len(m.items)
	y := centerCoordinate(v.Height(), height)

	for _, row := range m.title {
		x := centerCoordinate(v.Width(), len([]rune(row)))
		if err := v.Write(x, y, row, m.styles.Title); err != nil {
			return err
		}
		y++
	}
	y++

	for i, item := range m.items {
		if item == nil {
			y++
			continue
		}
		label, style := item.Label, m.styles.MenuItem
		if i == m.index {
			label = "> " + label + " <"
			style = m.styles.MenuChosen
		}
		x := centerCoordinate(v.Width(), len([]rune(label)))
		if err := v.Write(x, y, label, style); err != nil {
			return err
		}
		y++
	}
	v.HideCursor()
	return nil
}
