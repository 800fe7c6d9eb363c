package score

import (
	"strings"
	"testing"
)

func TestParseTokenNotes(t *testing.T) {
	cases := []struct {
		token string
		want  Note
	}{
		{"c", Note{Pitch: 'c', Length: 4}},
		{"4c", Note{Pitch: 'c', Length: 4}},
		{"2d", Note{Pitch: 'd', Length: 2}},
		{"8cis", Note{Pitch: 'c', Accidental: Sharp, Length: 8}},
		{"16hes", Note{Pitch: 'h', Accidental: Flat, Length: 16}},
		{"4c''", Note{Pitch: 'c', Octave: 2, Length: 4}},
		{"4a,,", Note{Pitch: 'a', Octave: -2, Length: 4}},
		{"2g.", Note{Pitch: 'g', Length: 2, Dotted: true}},
		{"64fis',.", Note{}},
	}
	for _, c := range cases[:len(cases)-1] {
		obj, err := ParseToken(c.token)
		if err != nil {
			t.Fatalf("ParseToken(%q) failed: %v", c.token, err)
		}
		if obj != c.want {
			t.Fatalf("ParseToken(%q) = %#v, want %#v", c.token, obj, c.want)
		}
	}
	// Mixed octave marks are an error even with an otherwise valid tail.
	if _, err := ParseToken("64fis',."); err == nil {
		t.Fatalf("mixed octave marks should fail")
	}
}

func TestParseTokenRests(t *testing.T) {
	obj, err := ParseToken("2r")
	if err != nil {
		t.Fatalf("ParseToken failed: %v", err)
	}
	if obj != (Rest{Length: 2}) {
		t.Fatalf("unexpected rest: %#v", obj)
	}
	if obj, err = ParseToken("r"); err != nil || obj != (Rest{Length: 4}) {
		t.Fatalf("default rest duration wrong: %#v, %v", obj, err)
	}
}

func TestParseTokenRejectsBadInput(t *testing.T) {
	for _, token := range []string{
		"", "3c", "128c", "0c", "4x", "4cisis", "4c'x", "4c..", "4r'",
	} {
		if _, err := ParseToken(token); err == nil {
			t.Fatalf("%q should not parse", token)
		}
	}
}

func TestTokenRoundTrip(t *testing.T) {
	for _, token := range []string{"4c", "2dis'", "8ges,,", "1h.", "16r"} {
		obj, err := ParseToken(token)
		if err != nil {
			t.Fatalf("ParseToken(%q) failed: %v", token, err)
		}
		if got := obj.Token(); got != token {
			t.Fatalf("round trip %q -> %q", token, got)
		}
	}
}

func TestScoreInsertAdvancesPosition(t *testing.T) {
	s := New()
	a, _ := ParseToken("4c")
	b, _ := ParseToken("4d")
	s.Insert(s.Position(), a)
	s.Insert(s.Position(), b)
	if s.Len() != 2 || s.Position() != 2 {
		t.Fatalf("len=%d pos=%d", s.Len(), s.Position())
	}
	if s.At(0) != a || s.At(1) != b {
		t.Fatalf("insertion order wrong")
	}
	if !s.Modified() {
		t.Fatalf("insert should mark the score modified")
	}
}

func TestScoreInsertInMiddle(t *testing.T) {
	s := New()
	a, _ := ParseToken("4c")
	b, _ := ParseToken("4d")
	mid, _ := ParseToken("4e")
	s.Insert(0, a)
	s.Insert(1, b)
	s.Insert(1, mid)
	if s.At(0) != a || s.At(1) != mid || s.At(2) != b {
		t.Fatalf("middle insert misplaced")
	}
	if s.Position() != 2 {
		t.Fatalf("position should follow the insert, got %d", s.Position())
	}
}

func TestScoreRemove(t *testing.T) {
	s := New()
	a, _ := ParseToken("4c")
	s.Insert(0, a)
	s.First()
	if !s.Remove() {
		t.Fatalf("remove at an object should succeed")
	}
	if s.Remove() {
		t.Fatalf("remove past the end should fail")
	}
}

func TestScoreNavigationClamps(t *testing.T) {
	s := New()
	a, _ := ParseToken("4c")
	s.Insert(0, a)
	s.Previous()
	s.Previous()
	if s.Position() != 0 {
		t.Fatalf("position underflow: %d", s.Position())
	}
	s.Next()
	s.Next()
	if s.Position() != 1 {
		t.Fatalf("position overflow: %d", s.Position())
	}
	s.First()
	if s.Position() != 0 {
		t.Fatalf("First: %d", s.Position())
	}
	s.Last()
	if s.Position() != 1 {
		t.Fatalf("Last: %d", s.Position())
	}
}

func TestSerializeRoundTrip(t *testing.T) {
	s := New()
	for _, token := range []string{"4c", "2dis'", "8r", "1h."} {
		obj, err := ParseToken(token)
		if err != nil {
			t.Fatalf("ParseToken(%q) failed: %v", token, err)
		}
		s.Insert(s.Len(), obj)
	}

	data, err := Serialize(s)
	if err != nil {
		t.Fatalf("Serialize failed: %v", err)
	}
	if !strings.HasPrefix(string(data), "vimvaldi 1\nclef treble\ntime 4/4\n") {
		t.Fatalf("unexpected header: %q", data)
	}

	loaded, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if loaded.Len() != s.Len() {
		t.Fatalf("length mismatch: %d vs %d", loaded.Len(), s.Len())
	}
	for i := 0; i < s.Len(); i++ {
		if loaded.At(i).Token() != s.At(i).Token() {
			t.Fatalf("object %d: %q vs %q", i, loaded.At(i).Token(), s.At(i).Token())
		}
	}
	if loaded.Modified() {
		t.Fatalf("a freshly parsed score should not be modified")
	}
	if loaded.Position() != 0 {
		t.Fatalf("a freshly parsed score should start at 0, got %d", loaded.Position())
	}
}

func TestParseRejectsBadFiles(t *testing.T) {
	for _, data := range []string{
		"",
		"not a score\nclef treble\ntime 4/4\n",
		"vimvaldi 1\nclef lute\ntime 4/4\n",
		"vimvaldi 1\nclef treble\nbeat 4/4\n",
		"vimvaldi 1\nclef treble\ntime 4/4\n4c 3d\n",
	} {
		if _, err := Parse([]byte(data)); err == nil {
			t.Fatalf("%q should not parse", data)
		}
	}
}
