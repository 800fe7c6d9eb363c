package view

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestWriteWithinBounds(t *testing.T) {
	v := New(10, 2)
	if err := v.Write(2, 1, "hi", nil); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	rows := strings.Split(ansi.Strip(v.Render()), "\n")
	if rows[1] != "  hi      " {
		t.Fatalf("unexpected row: %q", rows[1])
	}
}

func TestWriteOutOfBounds(t *testing.T) {
	v := New(5, 2)
	cases := []struct {
		x, y int
		text string
	}{
		{-1, 0, "a"},
		{0, -1, "a"},
		{0, 2, "a"},
		{3, 0, "abc"},
		{0, 0, "abcdef"},
	}
	for _, c := range cases {
		if err := v.Write(c.x, c.y, c.text, nil); err != ErrOutOfBounds {
			t.Fatalf("Write(%d, %d, %q) = %v, want ErrOutOfBounds", c.x, c.y, c.text, err)
		}
	}
}

func TestZeroSizedViewRejectsEverything(t *testing.T) {
	v := New(0, 0)
	if err := v.Write(0, 0, "a", nil); err != ErrOutOfBounds {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if err := v.MoveCursor(0, 0); err != ErrOutOfBounds {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestResizeDiscardsContent(t *testing.T) {
	v := New(6, 1)
	if err := v.Write(0, 0, "kept?", nil); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	v.Resize(4, 1)
	if got := ansi.Strip(v.Render()); got != "    " {
		t.Fatalf("expected blank view, got %q", got)
	}
}

func TestCursorLifecycle(t *testing.T) {
	v := New(4, 2)
	if _, _, ok := v.Cursor(); ok {
		t.Fatalf("fresh view should have no cursor")
	}
	if err := v.MoveCursor(3, 1); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	x, y, ok := v.Cursor()
	if !ok || x != 3 || y != 1 {
		t.Fatalf("cursor = (%d, %d, %v)", x, y, ok)
	}
	v.HideCursor()
	if _, _, ok := v.Cursor(); ok {
		t.Fatalf("cursor should be hidden")
	}
	if err := v.MoveCursor(4, 0); err != ErrOutOfBounds {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestClearBlanksCells(t *testing.T) {
	v := New(3, 1)
	if err := v.Write(0, 0, "abc", nil); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	v.Clear()
	if got := ansi.Strip(v.Render()); got != "   " {
		t.Fatalf("expected blanks, got %q", got)
	}
}

func TestRenderWithCaretMarksCell(t *testing.T) {
	v := New(3, 1)
	if err := v.Write(0, 0, "abc", nil); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	if err := v.MoveCursor(1, 0); err != nil {
		t.Fatalf("move failed: %v", err)
	}
	got := v.RenderWithCaret(func(s string) string { return "[" + s + "]" })
	if got != "a[b]c" {
		t.Fatalf("expected caret wrap, got %q", got)
	}
}

func TestRenderWithoutCaretFallsBack(t *testing.T) {
	v := New(2, 1)
	if err := v.Write(0, 0, "ab", nil); err != nil {
		t.Fatalf("write failed: %v", err)
	}
	got := v.RenderWithCaret(func(s string) string { return "!" })
	if got != "ab" {
		t.Fatalf("expected plain render, got %q", got)
	}
}
