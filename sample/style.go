package sample

import "strings"

// PathStyle is the display wrapper carried by an @sample cell. It controls
// how (and whether) the matched path is emitted.
type PathStyle int

const (
	// StyleBare emits the path as-is: sample=./Kick.wav
	StyleBare PathStyle = iota
	// StyleQuoted wraps the emitted path in double quotes.
	StyleQuoted
	// StyleHidden expands the pattern but suppresses the sample opcode.
	StyleHidden
)

func (s PathStyle) String() string {
	switch s {
	case StyleQuoted:
		return "quoted"
	case StyleHidden:
		return "hidden"
	default:
		return "bare"
	}
}

// StripStyle removes the optional display wrapper from an @sample cell and
// reports which one it was. A "//" prefix hides the row's sample opcode; a
// quoted pattern is unwrapped and re-quoted on emission. A hidden pattern may
// itself be quoted; the hidden style wins.
func StripStyle(cell string) (string, PathStyle) {
	if rest, ok := strings.CutPrefix(cell, "//"); ok {
		rest = strings.TrimLeft(rest, " \t")
		if inner, quoted := cutQuotes(rest); quoted {
			return inner, StyleHidden
		}
		return rest, StyleHidden
	}
	if inner, quoted := cutQuotes(cell); quoted {
		return inner, StyleQuoted
	}
	return cell, StyleBare
}

func cutQuotes(s string) (string, bool) {
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		return s[1 : len(s)-1], true
	}
	return s, false
}
