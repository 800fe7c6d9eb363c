// Package score is the musical data model: note and rest parsing, the
// score container, and its serialization. The UI layer only ever calls
// ParseToken, Serialize/Parse and the Score navigation methods, and turns
// their errors into status line messages.
package score

import (
	"fmt"
	"strings"
)

// Accidental modifies a note pitch.
type Accidental int

const (
	Natural Accidental = iota
	Sharp
	Flat
)

// Object is a single placeable score element.
type Object interface {
	// Duration is the reciprocal note length: 1 whole, 2 half, 4 quarter...
	Duration() int
	// Symbol is the notation rune drawn on the staff.
	Symbol() string
	// Token is the identifier the object round-trips through.
	Token() string
}

// Note is a pitched score object.
type Note struct {
	Pitch      rune // c d e f g a h
	Accidental Accidental
	Octave     int // relative to the base octave; ' raises, , lowers
	Length     int
	Dotted     bool
}

// Rest is an unpitched pause.
type Rest struct {
	Length int
}

func (n Note) Duration() int { return n.Length }
func (r Rest) Duration() int { return r.Length }

func (n Note) Symbol() string {
	s := noteSymbols[durationIndex(n.Length)]
	switch n.Accidental {
	case Sharp:
		s = AccidentalSharp + s
	case Flat:
		s = AccidentalFlat + s
	}
	return s
}

func (r Rest) Symbol() string {
	return restSymbols[durationIndex(r.Length)]
}

func (n Note) Token() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d%c", n.Length, n.Pitch)
	switch n.Accidental {
	case Sharp:
		b.WriteString("is")
	case Flat:
		b.WriteString("es")
	}
	for i := 0; i < n.Octave; i++ {
		b.WriteByte('\'')
	}
	for i := 0; i > n.Octave; i-- {
		b.WriteByte(',')
	}
	if n.Dotted {
		b.WriteByte('.')
	}
	return b.String()
}

func (r Rest) Token() string {
	return fmt.Sprintf("%dr", r.Length)
}

// ParseToken interprets a note or rest identifier:
//
//	[<duration>]<pitch>[is|es]['|,...][.]   e.g. 4c, 2dis', 8a,,.
//	[<duration>]r                            e.g. 4r
//
// The duration defaults to 4 (a quarter) and must be a power of two no
// larger than 64. Pitches use the German convention c..h.
func ParseToken(text string) (Object, error) {
	rest := text
	length := 0
	for len(rest) > 0 && rest[0] >= '0' && rest[0] <= '9' {
		length = length*10 + int(rest[0]-'0')
		rest = rest[1:]
	}
	if length == 0 {
		if strings.HasPrefix(text, "0") {
			return nil, fmt.Errorf("invalid duration in %q", text)
		}
		length = 4
	}
	if !isPowerOfTwo(length) || length > 64 {
		return nil, fmt.Errorf("duration %d is not a power of two up to 64", length)
	}
	if rest == "" {
		return nil, fmt.Errorf("missing pitch in %q", text)
	}

	if rest == "r" {
		return Rest{Length: length}, nil
	}

	pitch := rune(rest[0])
	if !strings.ContainsRune("cdefgah", pitch) {
		return nil, fmt.Errorf("unknown pitch %q in %q", string(pitch), text)
	}
	rest = rest[1:]

	note := Note{Pitch: pitch, Length: length}
	if strings.HasPrefix(rest, "is") {
		note.Accidental = Sharp
		rest = rest[2:]
	} else if strings.HasPrefix(rest, "es") {
		note.Accidental = Flat
		rest = rest[2:]
	}
	for len(rest) > 0 && rest[0] == '\'' {
		note.Octave++
		rest = rest[1:]
	}
	for len(rest) > 0 && rest[0] == ',' {
		if note.Octave > 0 {
			return nil, fmt.Errorf("mixed octave marks in %q", text)
		}
		note.Octave--
		rest = rest[1:]
	}
	if rest == "." {
		note.Dotted = true
		rest = ""
	}
	if rest != "" {
		return nil, fmt.Errorf("trailing %q in %q", rest, text)
	}
	return note, nil
}

// Score stores the sheet state: a clef, a time signature and an ordered
// object list with an edit position.
type Score struct {
	Clef string
	Time string

	objects  []Object
	position int
	modified bool
}

// New returns an empty score with the default clef and time signature.
func New() *Score {
	return &Score{Clef: ClefTreble, Time: TimeCommon}
}

// Len reports the number of objects in the score.
func (s *Score) Len() int { return len(s.objects) }

// At returns the i-th object.
func (s *Score) At(i int) Object { return s.objects[i] }

// Position is the current edit position, in [0, Len()].
func (s *Score) Position() int { return s.position }

// Modified reports whether the score changed since the last save or load.
func (s *Score) Modified() bool { return s.modified }

// ClearModified marks the score as saved.
func (s *Score) ClearModified() { s.modified = false }

// Insert places the object at the given position and moves the edit
// position past it.
func (s *Score) Insert(position int, obj Object) {
	if position < 0 {
		position = 0
	}
	if position > len(s.objects) {
		position = len(s.objects)
	}
	s.objects = append(s.objects, nil)
	copy(s.objects[position+1:], s.objects[position:])
	s.objects[position] = obj
	s.position = position + 1
	s.modified = true
}

// Remove deletes the object at the edit position, reporting whether there
// was one to delete.
func (s *Score) Remove() bool {
	if s.position >= len(s.objects) {
		return false
	}
	s.objects = append(s.objects[:s.position], s.objects[s.position+1:]...)
	s.modified = true
	return true
}

// Next moves the edit position one object forward.
func (s *Score) Next() {
	if s.position < len(s.objects) {
		s.position++
	}
}

// Previous moves the edit position one object back.
func (s *Score) Previous() {
	if s.position > 0 {
		s.position--
	}
}

// First jumps to the start of the score.
func (s *Score) First() { s.position = 0 }

// Last jumps past the final object.
func (s *Score) Last() { s.position = len(s.objects) }
