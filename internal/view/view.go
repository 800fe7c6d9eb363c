// Package view provides the clipped rectangular drawing surface components
// render into. Writes are bounds-checked: anything falling outside the
// rectangle returns ErrOutOfBounds, which the controller treats as the
// terminal-too-small condition rather than a crash.
package view

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

// ErrOutOfBounds signals a write or cursor move outside the view rectangle.
var ErrOutOfBounds = errors.New("view: write out of bounds")

// View is a width x height grid of styled character cells.
type View struct {
	width  int
	height int

	cells  [][]rune
	styles [][]*lipgloss.Style

	cursorX, cursorY int
	cursorSet        bool
}

// New allocates a view of the given dimensions. Dimensions below zero are
// clamped to zero; a zero-sized view rejects every write.
func New(width, height int) *View {
	v := &View{}
	v.Resize(width, height)
	return v
}

// Width returns the horizontal size of the view in cells.
func (v *View) Width() int { return v.width }

// Height returns the vertical size of the view in rows.
func (v *View) Height() int { return v.height }

// Resize re-clips the view to new dimensions, discarding previous content.
func (v *View) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	v.width = width
	v.height = height
	v.cells = make([][]rune, height)
	v.styles = make([][]*lipgloss.Style, height)
	for y := range v.cells {
		v.cells[y] = make([]rune, width)
		v.styles[y] = make([]*lipgloss.Style, width)
	}
	v.clearCells()
	v.cursorSet = false
}

// Clear blanks every cell and drops the cursor.
func (v *View) Clear() {
	v.clearCells()
	v.cursorSet = false
}

func (v *View) clearCells() {
	for y := 0; y < v.height; y++ {
		for x := 0; x < v.width; x++ {
			v.cells[y][x] = ' '
			v.styles[y][x] = nil
		}
	}
}

// Write places text at (x, y) with an optional style. The whole run must
// fit inside the view.
func (v *View) Write(x, y int, text string, style *lipgloss.Style) error {
	rs := []rune(text)
	if x < 0 || y < 0 || y >= v.height || x+len(rs) > v.width {
		return ErrOutOfBounds
	}
	for i, r := range rs {
		v.cells[y][x+i] = r
		v.styles[y][x+i] = style
	}
	return nil
}

// MoveCursor records the caret position for this view.
func (v *View) MoveCursor(x, y int) error {
	if x < 0 || y < 0 || x >= v.width || y >= v.height {
		return ErrOutOfBounds
	}
	v.cursorX, v.cursorY = x, y
	v.cursorSet = true
	return nil
}

// HideCursor drops any recorded caret position.
func (v *View) HideCursor() {
	v.cursorSet = false
}

// Cursor reports the recorded caret position, if any.
func (v *View) Cursor() (x, y int, ok bool) {
	return v.cursorX, v.cursorY, v.cursorSet
}

// Render composes the view into terminal rows, grouping adjacent cells that
// share a style into single render calls.
func (v *View) Render() string {
	return v.render(-1, -1, nil)
}

// RenderWithCaret renders the view with the cell at the caret position
// passed through renderCaret (typically a cursor model honoring blink
// state). When no caret is recorded this is identical to Render.
func (v *View) RenderWithCaret(renderCaret func(string) string) string {
	if !v.cursorSet || renderCaret == nil {
		return v.Render()
	}
	return v.render(v.cursorX, v.cursorY, renderCaret)
}

func (v *View) render(caretX, caretY int, renderCaret func(string) string) string {
	rows := make([]string, v.height)
	for y := 0; y < v.height; y++ {
		var b strings.Builder
		x := 0
		for x < v.width {
			if y == caretY && x == caretX {
				b.WriteString(renderCaret(string(v.cells[y][x])))
				x++
				continue
			}
			style := v.styles[y][x]
			start := x
			for x < v.width && v.styles[y][x] == style && !(y == caretY && x == caretX) {
				x++
			}
			segment := string(v.cells[y][start:x])
			if style != nil {
				segment = style.Render(segment)
			}
			b.WriteString(segment)
		}
		row := b.String()
		if lipgloss.Width(row) > v.width && v.width > 0 {
			row = truncate.String(row, uint(v.width))
		}
		rows[y] = row
	}
	return strings.Join(rows, "\n")
}
