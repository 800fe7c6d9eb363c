package command

import (
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// keywords lists every literal the normal-mode grammar accepts, used for
// fuzzy suggestions on unknown input.
var keywords = []string{
	"help", "info",
	"q", "quit", "q!", "quit!",
	"w", "write", "w!", "write!",
	"o", "open", "o!", "open!",
	"wq", "wq!",
}

// Parse tokenizes a submitted normal-mode line and matches it against the
// command grammar. It returns the resulting commands and whether the line
// was recognized. Keywords are case-sensitive; an empty line parses to no
// commands successfully.
func Parse(text string) ([]Command, bool) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, true
	}

	head, forced := splitBang(fields[0])
	args := fields[1:]

	switch head {
	case "help", "info":
		if forced || len(args) != 0 {
			return nil, false
		}
		return []Command{PushView{Name: head}}, true

	case "q", "quit":
		if len(args) != 0 {
			return nil, false
		}
		return []Command{Quit{Forced: forced}}, true

	case "w", "write":
		path, ok := optionalPath(args)
		if !ok {
			return nil, false
		}
		return []Command{Save{Path: path, Forced: forced}}, true

	case "o", "open":
		if len(args) != 1 {
			return nil, false
		}
		return []Command{Open{Path: args[0], Forced: forced}}, true

	case "wq":
		path, ok := optionalPath(args)
		if !ok {
			return nil, false
		}
		return []Command{Save{Path: path, Forced: forced}, Quit{}}, true
	}

	return nil, false
}

// Suggest returns the closest grammar keyword for an unrecognized command
// word, or the empty string when nothing is close enough to be useful.
func Suggest(word string) string {
	const maxDistance = 2
	best, bestDistance := "", maxDistance+1
	for _, kw := range keywords {
		if d := fuzzy.LevenshteinDistance(word, kw); d < bestDistance {
			best, bestDistance = kw, d
		}
	}
	return best
}

func splitBang(word string) (string, bool) {
	if strings.HasSuffix(word, "!") {
		return word[:len(word)-1], true
	}
	return word, false
}

func optionalPath(args []string) (string, bool) {
	switch len(args) {
	case 0:
		return "", true
	case 1:
		return args[0], true
	default:
		return "", false
	}
}
