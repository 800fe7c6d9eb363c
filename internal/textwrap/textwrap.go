// Package textwrap implements the structured text layout engine shared by
// the scrollable text viewers and the status line.
//
// Source text uses four sentinel characters that toggle styling from the
// point they occur onward: '*' (bold), '/' (italic), '_' (underline) and
// '~' (strikethrough). Sentinels are not printable content and do not count
// toward the wrap width. A backslash escapes the following character,
// printing it literally; the escaped pair counts as a single content
// character. A run of '#' at the start of a source line sets its heading
// level, and a source line consisting solely of "---" marks a horizontal
// rule.
package textwrap

import "strings"

// Line is a single wrapped output line. Text retains markup (sentinels and
// escapes); Cont marks a continuation of the previous source line.
type Line struct {
	Text    string
	Heading int
	Rule    bool
	Cont    bool
}

// Style is the set of toggles active for a run of characters.
type Style struct {
	Bold          bool
	Italic        bool
	Underline     bool
	Strikethrough bool
}

// Run is a stretch of visible characters sharing one style. Sentinels and
// escape backslashes never appear in Text.
type Run struct {
	Text  string
	Style Style
}

// Wrap lays out the source text against the target width. Each source line
// is wrapped independently: the scan greedily consumes content characters
// up to the width, breaking at the last seen space when the width is
// reached, or at the hard character boundary when a single token is wider
// than the viewport. An empty source line yields exactly one empty output
// line at heading level zero.
func Wrap(text string, width int) []Line {
	if width < 1 {
		width = 1
	}

	var out []Line
	for _, src := range strings.Split(text, "\n") {
		if src == "" {
			out = append(out, Line{})
			continue
		}
		if strings.TrimSpace(src) == "---" {
			out = append(out, Line{Text: src, Rule: true})
			continue
		}

		heading := 0
		for heading < len(src) && src[heading] == '#' {
			heading++
		}
		if heading > 0 {
			src = strings.TrimLeft(src[heading:], " ")
			if src == "" {
				out = append(out, Line{Heading: heading})
				continue
			}
		}

		line := []rune(src)
		first := true
		for len(line) > 0 {
			prevSpace := -1
			i, count := 0, 0

			for i < len(line) && count < width {
				switch line[i] {
				case '*', '/', '_', '~':
					// styling sentinels are free
				case '\\':
					i++ // the escaped character rides along
					count++
				default:
					if line[i] == ' ' {
						prevSpace = i
					}
					count++
				}
				i++
			}

			// Word-wrap only when the scan actually filled the width.
			if prevSpace != -1 && count == width {
				i = prevSpace
			}
			if i > len(line) {
				i = len(line)
			}

			out = append(out, Line{
				Text:    string(line[:i]),
				Heading: heading,
				Cont:    !first,
			})
			first = false
			line = []rune(strings.TrimSpace(string(line[i:])))
		}
	}
	return out
}

// Runs computes the styled runs for every wrapped line in one pass. Toggle
// state carries across the wrapped pieces of a source line and resets when
// a new source line begins, so a consumer may render any slice of the
// result and styling stays correct. The result is recomputed from scratch
// on every call; nothing persists between draws.
func Runs(lines []Line) [][]Run {
	var state Style
	out := make([][]Run, len(lines))
	for idx, ln := range lines {
		if !ln.Cont {
			state = Style{}
		}
		if ln.Rule {
			continue
		}

		var runs []Run
		var buf []rune
		flush := func() {
			if len(buf) > 0 {
				runs = append(runs, Run{Text: string(buf), Style: state})
				buf = nil
			}
		}

		rs := []rune(ln.Text)
		for i := 0; i < len(rs); i++ {
			switch rs[i] {
			case '*':
				flush()
				state.Bold = !state.Bold
			case '/':
				flush()
				state.Italic = !state.Italic
			case '_':
				flush()
				state.Underline = !state.Underline
			case '~':
				flush()
				state.Strikethrough = !state.Strikethrough
			case '\\':
				if i+1 < len(rs) {
					i++
					buf = append(buf, rs[i])
				}
			default:
				buf = append(buf, rs[i])
			}
		}
		flush()
		out[idx] = runs
	}
	return out
}

// ContentWidth counts the visible characters of a marked-up string:
// sentinels are free and an escaped pair counts once.
func ContentWidth(s string) int {
	rs := []rune(s)
	count := 0
	for i := 0; i < len(rs); i++ {
		switch rs[i] {
		case '*', '/', '_', '~':
		case '\\':
			i++
			count++
		default:
			count++
		}
	}
	return count
}

// MaxOffset clamps a scroll offset for the given output length and viewport
// height.
func MaxOffset(total, height int) int {
	if max := total - height; max > 0 {
		return max
	}
	return 0
}
