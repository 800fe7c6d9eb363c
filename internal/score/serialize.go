package score

import (
	"fmt"
	"strings"
)

// The on-disk format is a small plain-text header followed by one token per
// score object:
//
//	vimvaldi 1
//	clef treble
//	time 4/4
//	4c 4d 2r 4e'
var clefNames = map[string]string{
	"treble": ClefTreble,
	"alto":   ClefAlto,
	"bass":   ClefBass,
}

const formatHeader = "vimvaldi 1"

// Serialize renders the score into its file format.
func Serialize(s *Score) ([]byte, error) {
	clef, err := clefName(s.Clef)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%s\nclef %s\ntime %s\n", formatHeader, clef, s.Time)
	tokens := make([]string, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		tokens = append(tokens, s.At(i).Token())
	}
	b.WriteString(strings.Join(tokens, " "))
	b.WriteByte('\n')
	return []byte(b.String()), nil
}

// Parse reads a serialized score back.
func Parse(data []byte) (*Score, error) {
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	if len(lines) < 3 || lines[0] != formatHeader {
		return nil, fmt.Errorf("not a vimvaldi score file")
	}

	s := New()
	name := strings.TrimPrefix(lines[1], "clef ")
	clef, ok := clefNames[name]
	if !ok || name == lines[1] {
		return nil, fmt.Errorf("unknown clef %q", lines[1])
	}
	s.Clef = clef

	if !strings.HasPrefix(lines[2], "time ") {
		return nil, fmt.Errorf("missing time signature")
	}
	s.Time = strings.TrimPrefix(lines[2], "time ")

	if len(lines) > 3 {
		for _, token := range strings.Fields(lines[3]) {
			obj, err := ParseToken(token)
			if err != nil {
				return nil, fmt.Errorf("token %q: %w", token, err)
			}
			s.Insert(s.Len(), obj)
		}
	}
	s.First()
	s.ClearModified()
	return s, nil
}

func clefName(symbol string) (string, error) {
	for name, s := range clefNames {
		if s == symbol {
			return name, nil
		}
	}
	return "", fmt.Errorf("unknown clef symbol %q", symbol)
}
