// Package ui hosts the Bubble Tea model tying everything together: the
// component stack, the status line, command resolution and the draw cycle.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/cursor"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xiaoxiae/vimvaldi/internal/command"
	"github.com/xiaoxiae/vimvaldi/internal/component"
	"github.com/xiaoxiae/vimvaldi/internal/graphics"
	"github.com/xiaoxiae/vimvaldi/internal/input"
	"github.com/xiaoxiae/vimvaldi/internal/logging/events"
	"github.com/xiaoxiae/vimvaldi/internal/theme"
	"github.com/xiaoxiae/vimvaldi/internal/view"
)

const tooSmallMessage = "Terminal size too small!"

// Options configures the initial controller state.
type Options struct {
	// NoLogo skips the startup splash.
	NoLogo bool
	// Path, when set, opens the editor on the given score file directly.
	Path string
}

// Controller is the root Bubble Tea model. Exactly one keyboard owner exists
// at any time: the status line when focused, otherwise the stack tail.
type Controller struct {
	styles *theme.Styles

	registry map[string]component.Component
	stack    []component.Component

	status        *component.StatusLine
	statusFocused bool

	main       *view.View
	statusView *view.View

	width, height int
	tooSmall      bool
	quitting      bool

	caret cursor.Model
}

// NewController wires the component registry and the initial stack: the menu
// at the bottom, covered by the splash unless disabled or a score file is
// opened right away.
func NewController(opts Options) *Controller {
	styles := theme.Default()

	menu := component.NewMenu([]*component.MenuItem{
		{
			Label:    "CREATE",
			Commands: []command.Command{command.PushView{Name: "editor"}},
			Tooltip:  "Creates a new score.",
		},
		{
			Label:   "IMPORT",
			Tooltip: "Imports a score from another format (not yet implemented).",
		},
		nil,
		{
			Label:    "HELP",
			Commands: []command.Command{command.PushView{Name: "help"}},
			Tooltip:  "Displays the help page.",
		},
		{
			Label:    "INFO",
			Commands: []command.Command{command.PushView{Name: "info"}},
			Tooltip:  "Displays the info page.",
		},
		nil,
		{
			Label:    "QUIT",
			Commands: []command.Command{command.PopView{}},
			Tooltip:  "Terminates the application.",
		},
	}, styles)

	caret := cursor.New()
	caret.Style = *styles.Cursor

	m := &Controller{
		styles: styles,
		registry: map[string]component.Component{
			"logo":   component.NewLogo(styles),
			"menu":   menu,
			"help":   component.NewTextDisplay(graphics.HelpText, styles),
			"info":   component.NewTextDisplay(graphics.InfoText, styles),
			"editor": component.NewEditor(styles),
		},
		status:     component.NewStatusLine(styles),
		main:       view.New(0, 0),
		statusView: view.New(0, 0),
		caret:      caret,
	}

	m.stack = []component.Component{menu}
	m.resolve(menu.GainedFocus())

	switch {
	case opts.Path != "":
		m.resolve([]command.Command{
			command.PushView{Name: "editor"},
			command.Open{Path: opts.Path},
		})
	case !opts.NoLogo:
		m.resolve([]command.Command{command.PushView{Name: "logo"}})
	}
	return m
}

func (m *Controller) active() component.Component {
	return m.stack[len(m.stack)-1]
}

func (m *Controller) setStatusFocused(focused bool) {
	if m.statusFocused == focused {
		return
	}
	m.statusFocused = focused
	m.status.SetFocused(focused)
	events.UI.FocusToggle(focused)
}

func (m *Controller) markAllChanged() {
	for _, c := range m.registry {
		c.SetChanged(true)
	}
	m.status.SetChanged(true)
}

// resolve drains the command queue breadth-first: commands a handler returns
// are appended behind those already queued, so sibling effects keep their
// emission order.
func (m *Controller) resolve(cmds []command.Command) tea.Cmd {
	queue := append([]command.Command(nil), cmds...)

	for len(queue) > 0 {
		cmd := queue[0]
		queue = queue[1:]
		events.Command.Resolve(fmt.Sprintf("%T", cmd))

		switch c := cmd.(type) {
		case command.PopView:
			m.stack = m.stack[:len(m.stack)-1]
			events.UI.ComponentPop(len(m.stack))
			if len(m.stack) == 0 {
				m.quitting = true
				events.App.Exit()
				return tea.Quit
			}
			m.setStatusFocused(false)
			top := m.active()
			top.SetChanged(true)
			queue = m.enqueue(queue, cmd, top.GainedFocus())

		case command.PushView:
			next, ok := m.registry[c.Name]
			if !ok {
				panic(fmt.Sprintf("ui: push of unknown view %q", c.Name))
			}
			m.stack = append(m.stack, next)
			events.UI.ComponentPush(c.Name, len(m.stack))
			m.setStatusFocused(false)
			next.SetChanged(true)
			queue = m.enqueue(queue, cmd, next.GainedFocus())

		case command.ToggleFocus:
			m.setStatusFocused(!m.statusFocused)

		case command.SetStatusText, command.ClearStatus, command.SetStatusMode:
			queue = m.enqueue(queue, cmd, m.status.HandleCommand(cmd))

		default:
			queue = m.enqueue(queue, cmd, m.active().HandleCommand(cmd))
		}
	}
	return nil
}

func (m *Controller) enqueue(queue []command.Command, source command.Command, followups []command.Command) []command.Command {
	if len(followups) > 0 {
		events.Command.Emitted(fmt.Sprintf("%T", source), len(followups))
	}
	return append(queue, followups...)
}

// Init starts the caret blinking.
func (m *Controller) Init() tea.Cmd {
	return m.caret.Focus()
}

func (m *Controller) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	var caretCmd tea.Cmd
	m.caret, caretCmd = m.caret.Update(msg)
	cmds = append(cmds, caretCmd)

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.main.Resize(msg.Width, msg.Height-1)
		m.statusView.Resize(msg.Width, 1)
		m.tooSmall = false
		m.markAllChanged()
		events.App.Resize(msg.Width, msg.Height)

	case tea.InterruptMsg:
		// SIGINT is deliberately inert; quitting goes through :q.

	case tea.KeyMsg:
		ev, ok := input.FromKeyMsg(msg)
		if !ok || ev.Kind == input.KindInterrupt || m.tooSmall {
			// Ctrl-C is deliberately inert, and a too-small screen
			// suspends input until a resize succeeds.
			break
		}
		var out []command.Command
		if m.statusFocused {
			out = m.status.HandleKey(ev)
		} else {
			out = m.active().HandleKey(ev)
		}
		if cmd := m.resolve(out); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Controller) View() string {
	if m.quitting || m.width <= 0 || m.height <= 0 {
		return ""
	}
	if m.tooSmall {
		return m.fallback()
	}
	if err := drawComponent(m.active(), m.main); err != nil {
		return m.enterFallback()
	}
	if err := drawComponent(m.status, m.statusView); err != nil {
		return m.enterFallback()
	}

	mainStr := m.main.Render()
	statusStr := m.statusView.Render()
	if m.statusFocused {
		statusStr = m.statusView.RenderWithCaret(m.renderCaret)
	} else if _, _, ok := m.main.Cursor(); ok {
		mainStr = m.main.RenderWithCaret(m.renderCaret)
	}
	return mainStr + "\n" + statusStr
}

// drawComponent runs one dirty-guarded draw. The flag is only cleared after
// a successful draw, so a failed attempt is retried once the view is usable
// again.
func drawComponent(c component.Component, v *view.View) error {
	if !c.HasChanged() {
		return nil
	}
	v.Clear()
	if err := c.Draw(v); err != nil {
		return err
	}
	c.SetChanged(false)
	return nil
}

func (m *Controller) enterFallback() string {
	if !m.tooSmall {
		m.tooSmall = true
		events.App.TooSmall(m.width, m.height)
	}
	return m.fallback()
}

func (m *Controller) fallback() string {
	return lipgloss.Place(
		m.width, m.height,
		lipgloss.Center, lipgloss.Center,
		m.styles.Error.Render(tooSmallMessage),
	)
}

func (m *Controller) renderCaret(char string) string {
	m.caret.SetChar(char)
	return m.caret.View()
}
