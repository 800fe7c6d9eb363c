package command

import (
	"reflect"
	"testing"
)

func TestParseViewCommands(t *testing.T) {
	for _, text := range []string{"help", "info"} {
		cmds, ok := Parse(text)
		if !ok {
			t.Fatalf("%q should parse", text)
		}
		want := []Command{PushView{Name: text}}
		if !reflect.DeepEqual(cmds, want) {
			t.Fatalf("expected %#v, got %#v", want, cmds)
		}
	}
}

func TestParseViewCommandsRejectExtras(t *testing.T) {
	for _, text := range []string{"help!", "help me", "info now"} {
		if _, ok := Parse(text); ok {
			t.Fatalf("%q should not parse", text)
		}
	}
}

func TestParseQuit(t *testing.T) {
	cases := []struct {
		text   string
		forced bool
	}{
		{"q", false},
		{"quit", false},
		{"q!", true},
		{"quit!", true},
	}
	for _, c := range cases {
		cmds, ok := Parse(c.text)
		if !ok || len(cmds) != 1 {
			t.Fatalf("%q: unexpected result %#v", c.text, cmds)
		}
		if q, isQuit := cmds[0].(Quit); !isQuit || q.Forced != c.forced {
			t.Fatalf("%q: expected Quit{Forced:%v}, got %#v", c.text, c.forced, cmds[0])
		}
	}
}

func TestParseSaveWithOptionalPath(t *testing.T) {
	cmds, ok := Parse("w")
	if !ok || !reflect.DeepEqual(cmds, []Command{Save{}}) {
		t.Fatalf("bare w: %#v", cmds)
	}
	cmds, ok = Parse("write! fugue.vv")
	if !ok || !reflect.DeepEqual(cmds, []Command{Save{Path: "fugue.vv", Forced: true}}) {
		t.Fatalf("write!: %#v", cmds)
	}
	if _, ok := Parse("w a b"); ok {
		t.Fatalf("w with two paths should not parse")
	}
}

func TestParseOpenRequiresPath(t *testing.T) {
	cmds, ok := Parse("o fugue.vv")
	if !ok || !reflect.DeepEqual(cmds, []Command{Open{Path: "fugue.vv"}}) {
		t.Fatalf("open: %#v", cmds)
	}
	if _, ok := Parse("open"); ok {
		t.Fatalf("open without path should not parse")
	}
	if _, ok := Parse("open! a b"); ok {
		t.Fatalf("open with two paths should not parse")
	}
}

func TestParseWriteQuitDecomposes(t *testing.T) {
	cmds, ok := Parse("wq! fugue.vv")
	if !ok {
		t.Fatalf("wq! should parse")
	}
	want := []Command{Save{Path: "fugue.vv", Forced: true}, Quit{}}
	if !reflect.DeepEqual(cmds, want) {
		t.Fatalf("expected %#v, got %#v", want, cmds)
	}
}

func TestParseEmptyLineIsRecognizedNoop(t *testing.T) {
	cmds, ok := Parse("   ")
	if !ok || len(cmds) != 0 {
		t.Fatalf("expected empty success, got %#v ok=%v", cmds, ok)
	}
}

func TestParseUnknownAndCaseSensitivity(t *testing.T) {
	for _, text := range []string{"Q", "Write", "noop", "hel p"} {
		if _, ok := Parse(text); ok {
			t.Fatalf("%q should not parse", text)
		}
	}
}

func TestSuggest(t *testing.T) {
	cases := []struct {
		word string
		want string
	}{
		{"qiut", "quit"},
		{"wrte", "write"},
		{"hlep", "help"},
		{"zzzzzz", ""},
	}
	for _, c := range cases {
		if got := Suggest(c.word); got != c.want {
			t.Fatalf("Suggest(%q) = %q, want %q", c.word, got, c.want)
		}
	}
}
