package cliutil

import (
	"strings"
)

// Wrap the string `s` to a maximum width `w`.  Pass `w` == 0 to do no
// wrapping.
//
// In order to have some room for slop to avoid things like a short word
// being on a line by itself, most lines are actually wrapped to `w - 5`.
func Wrap(w int, s string) string {
	return wrap(0, w, s)
}

// WrapIndent wraps the string `s` to a maximum width `w` with leading indent
// `i`.  The first line is not indented (this is assumed to be done by the
// caller).  Pass `w` == 0 to do no wrapping.
//
// In order to have some room for slop to avoid things like a short word
// being on a line by itself, most lines are actually wrapped to `w - 5`.
func WrapIndent(i, w int, s string) string {
	return wrap(i, w, s)
}

func wrap(indent, width int, str string) string {
	if width == 0 {
		return str
	}
	width -= 5
	if width <= indent {
		return str
	}

	pad := strings.Repeat(" ", indent)
	var ret strings.Builder
	for p, paragraph := range strings.Split(str, "\n\n") {
		if p > 0 {
			ret.WriteString("\n\n")
			ret.WriteString(pad)
		}
		lineLen := indent
		for i, word := range strings.Fields(paragraph) {
			switch {
			case i == 0:
				ret.WriteString(word)
				lineLen += len(word)
			case lineLen+1+len(word) > width:
				ret.WriteString("\n")
				ret.WriteString(pad)
				ret.WriteString(word)
				lineLen = indent + len(word)
			default:
				ret.WriteString(" ")
				ret.WriteString(word)
				lineLen += 1 + len(word)
			}
		}
	}
	return ret.String()
}
