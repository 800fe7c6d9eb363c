package component

import (
	"fmt"
	"os"
	"strings"

	"github.com/xiaoxiae/vimvaldi/internal/command"
	"github.com/xiaoxiae/vimvaldi/internal/graphics"
	"github.com/xiaoxiae/vimvaldi/internal/input"
	"github.com/xiaoxiae/vimvaldi/internal/score"
	"github.com/xiaoxiae/vimvaldi/internal/theme"
	"github.com/xiaoxiae/vimvaldi/internal/view"
)

const (
	staffSideX = 3
	// measureUnits is a whole measure expressed in 384ths, so every legal
	// duration (including dotted ones) accumulates without rounding.
	measureUnits = 384
)

// Editor is the score editing surface. Normal-mode keys move the edit
// position; insert mode is delegated to the status line, which hands the
// typed identifiers back as an InsertText command.
type Editor struct {
	Changeable

	score    *score.Score
	path     string
	pendingG bool

	styles *theme.Styles

	// File access is injected so tests can run without a filesystem.
	readFile   func(string) ([]byte, error)
	writeFile  func(string, []byte) error
	fileExists func(string) bool
}

// NewEditor builds an editor over an empty score.
func NewEditor(styles *theme.Styles) *Editor {
	e := &Editor{
		score:     score.New(),
		styles:    styles,
		readFile:  os.ReadFile,
		writeFile: func(path string, data []byte) error { return os.WriteFile(path, data, 0o644) },
		fileExists: func(path string) bool {
			_, err := os.Stat(path)
			return err == nil
		},
	}
	e.SetChanged(true)
	return e
}

// Score exposes the underlying model, mainly for tests.
func (e *Editor) Score() *score.Score { return e.score }

// Path returns the file the score was last saved to or opened from.
func (e *Editor) Path() string { return e.path }

func (e *Editor) badge() string {
	name := e.path
	if name == "" {
		name = "[no file]"
	}
	if e.score.Modified() {
		name += " [+]"
	}
	return name
}

func (e *Editor) badgeUpdate() []command.Command {
	return []command.Command{
		command.SetStatusText{Slot: command.SlotRight, Text: e.badge()},
	}
}

func statusMsg(text string) []command.Command {
	return []command.Command{
		command.SetStatusText{Slot: command.SlotCenter, Text: text},
	}
}

func (e *Editor) HandleKey(ev input.Event) []command.Command {
	pending := e.pendingG
	e.pendingG = false

	switch {
	case ev.Rune == 'i':
		return []command.Command{
			command.SetStatusMode{Mode: command.ModeInsert},
			command.ToggleFocus{},
		}

	case ev.Rune == ':':
		return []command.Command{
			command.SetStatusMode{Mode: command.ModeNormal},
			command.ToggleFocus{},
		}

	case ev.Rune == 'l' || ev.Kind == input.KindRight:
		e.score.Next()
		e.SetChanged(true)

	case ev.Rune == 'h' || ev.Kind == input.KindLeft:
		e.score.Previous()
		e.SetChanged(true)

	case ev.Rune == 'G':
		e.score.Last()
		e.SetChanged(true)

	case ev.Rune == 'g':
		if pending {
			e.score.First()
			e.SetChanged(true)
			return e.badgeUpdate()
		}
		e.pendingG = true
		// Echo the pending chord where the file badge normally sits.
		return []command.Command{
			command.SetStatusText{Slot: command.SlotRight, Text: "g"},
		}

	case ev.Rune == 'x':
		if !e.score.Remove() {
			return statusMsg("Nothing to remove here.")
		}
		e.SetChanged(true)
		return e.badgeUpdate()
	}

	if pending {
		return e.badgeUpdate()
	}
	return nil
}

func (e *Editor) HandleCommand(cmd command.Command) []command.Command {
	switch c := cmd.(type) {
	case command.InsertText:
		return e.insert(c.Text)
	case command.Save:
		return e.save(c.Path, c.Forced)
	case command.Open:
		return e.open(c.Path, c.Forced)
	case command.Quit:
		if e.score.Modified() && !c.Forced {
			return statusMsg("Unsaved changes! Use :q! to discard them.")
		}
		return []command.Command{command.PopView{}}
	}
	return nil
}

// insert parses whitespace-separated identifiers, placing each at the edit
// position. The first bad identifier stops the batch; objects before it
// stay inserted.
func (e *Editor) insert(text string) []command.Command {
	for _, token := range strings.Fields(text) {
		obj, err := score.ParseToken(token)
		if err != nil {
			e.SetChanged(true)
			return statusMsg(fmt.Sprintf("Incorrect identifier: %v", err))
		}
		e.score.Insert(e.score.Position(), obj)
	}
	e.SetChanged(true)
	return append([]command.Command{command.ClearStatus{}}, e.badgeUpdate()...)
}

func (e *Editor) save(path string, forced bool) []command.Command {
	if path == "" {
		path = e.path
	}
	if path == "" {
		return statusMsg("No file name! Use :w <path>.")
	}
	if path != e.path && !forced && e.fileExists(path) {
		return statusMsg(fmt.Sprintf("File %q already exists! Use :w! to overwrite.", path))
	}

	data, err := score.Serialize(e.score)
	if err != nil {
		return statusMsg(fmt.Sprintf("Could not serialize the score: %v.", err))
	}
	// The path is only adopted after a successful write, so a failed save
	// to a new location leaves the previous one intact.
	if err := e.writeFile(path, data); err != nil {
		return statusMsg(fmt.Sprintf("Could not write %q: %v.", path, err))
	}
	e.path = path
	e.score.ClearModified()
	e.SetChanged(true)
	return append(
		statusMsg(fmt.Sprintf("Written to %q.", path)),
		e.badgeUpdate()...,
	)
}

func (e *Editor) open(path string, forced bool) []command.Command {
	if e.score.Modified() && !forced {
		return statusMsg("Unsaved changes! Use :o! to discard them.")
	}
	data, err := e.readFile(path)
	if err != nil {
		return statusMsg(fmt.Sprintf("Could not read %q.", path))
	}
	s, err := score.Parse(data)
	if err != nil {
		return statusMsg(fmt.Sprintf("Could not parse %q: %v.", path, err))
	}
	e.score = s
	e.path = path
	e.SetChanged(true)
	return append([]command.Command{command.ClearStatus{}}, e.badgeUpdate()...)
}

func (e *Editor) GainedFocus() []command.Command {
	return append([]command.Command{command.ClearStatus{}}, e.badgeUpdate()...)
}

func (e *Editor) Draw(v *view.View) error {
	title := strings.Split(graphics.EditorTitle, "\n")
	inner := v.Width() - 2*staffSideX
	if inner < 16 {
		return view.ErrOutOfBounds
	}

	y0 := centerCoordinate(v.Height(), len(title)+2+5)
	if y0 < 0 {
		return view.ErrOutOfBounds
	}
	for i, row := range title {
		x := centerCoordinate(v.Width(), len([]rune(row)))
		if err := v.Write(x, y0+i, row, e.styles.Title); err != nil {
			return err
		}
	}

	staffTop := y0 + len(title) + 2
	for i := 0; i < 5; i++ {
		blank := strings.Repeat(" ", inner)
		if err := v.Write(staffSideX, staffTop+i, blank, e.styles.Staff); err != nil {
			return err
		}
	}
	middle := staffTop + 2

	if err := v.Write(staffSideX+1, middle, e.score.Clef, e.styles.Staff); err != nil {
		return err
	}
	if num, den, ok := strings.Cut(e.score.Time, "/"); ok {
		if err := v.Write(staffSideX+4, staffTop+1, num, e.styles.Staff); err != nil {
			return err
		}
		if err := v.Write(staffSideX+4, staffTop+3, den, e.styles.Staff); err != nil {
			return err
		}
	}
	if err := e.drawBar(v, staffSideX+6, staffTop); err != nil {
		return err
	}

	x := staffSideX + 8
	limit := staffSideX + inner - 2
	caretX := x
	accumulated := 0

	for i := 0; i < e.score.Len() && x < limit; i++ {
		if i == e.score.Position() {
			caretX = x
		}
		obj := e.score.At(i)
		sym := obj.Symbol()
		if err := v.Write(x, middle, sym, e.styles.Staff); err != nil {
			return err
		}
		step := len([]rune(sym)) + 1
		if step < 2 {
			step = 2
		}
		x += step

		accumulated += objectUnits(obj)
		if accumulated >= measureUnits && x < limit {
			if err := e.drawBar(v, x, staffTop); err != nil {
				return err
			}
			x += 2
			accumulated = 0
		}
	}
	if e.score.Position() >= e.score.Len() {
		caretX = x
	}
	if caretX > staffSideX+inner-1 {
		caretX = staffSideX + inner - 1
	}
	return v.MoveCursor(caretX, middle)
}

func (e *Editor) drawBar(v *view.View, x, staffTop int) error {
	for i := 0; i < 5; i++ {
		if err := v.Write(x, staffTop+i, "|", e.styles.Staff); err != nil {
			return err
		}
	}
	return nil
}

func objectUnits(obj score.Object) int {
	units := measureUnits / obj.Duration()
	if n, ok := obj.(score.Note); ok && n.Dotted {
		units += units / 2
	}
	return units
}
