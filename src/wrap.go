package bulletin

/*------------------------------------------------------------------
 *
 * Purpose:	Split message text into lines that fit one frame each.
 *
 * Description:	Greedy word wrap.  Runs of white space, including
 *		newlines, become a single space.  A word is never split
 *		unless it is wider than a whole line by itself.  What
 *		happens then depends on the OverflowPolicy.
 *
 *		Widths are in bytes because that is what counts against
 *		the information field.  A hard cut never splits a UTF-8
 *		sequence.
 *
 *------------------------------------------------------------------*/

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrEncodingOverflow is returned under OverflowFail when a single word
// does not fit on a line.
var ErrEncodingOverflow = errors.New("word too long for line")

type OverflowPolicy int

const (
	OverflowHardCut OverflowPolicy = iota // Cut the word into line sized pieces.
	OverflowEmit                          // Send the word on its own over-length line.
	OverflowFail                          // Refuse with ErrEncodingOverflow.
)

var overflowNames = map[OverflowPolicy]string{
	OverflowHardCut: "hardcut",
	OverflowEmit:    "emit",
	OverflowFail:    "fail",
}

func (p OverflowPolicy) String() string {
	if name, ok := overflowNames[p]; ok {
		return name
	}

	return fmt.Sprintf("OverflowPolicy(%d)", int(p))
}

// ParseOverflowPolicy accepts the names used in configuration files.
func ParseOverflowPolicy(s string) (OverflowPolicy, error) {
	for p, name := range overflowNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}

	return OverflowHardCut, fmt.Errorf("%w: unknown overflow policy %q, expected hardcut, emit or fail", ErrInvalidConfig, s)
}

/*------------------------------------------------------------------
 *
 * Name:	WrapText
 *
 * Inputs:	text	- Any text.
 *
 *		width	- Maximum line length in bytes.  Must be positive.
 *
 *		policy	- What to do with a word longer than width.
 *
 * Returns:	Lines, none of them empty.  No lines for blank text.
 *
 *------------------------------------------------------------------*/

func WrapText(text string, width int, policy OverflowPolicy) ([]string, error) {
	if width <= 0 {
		return nil, fmt.Errorf("%w: line width %d must be positive", ErrInvalidConfig, width)
	}

	var lines []string
	var current string

	var flush = func() {
		if current != "" {
			lines = append(lines, current)
			current = ""
		}
	}

	for _, word := range strings.Fields(text) {
		if len(word) > width {
			switch policy {
			case OverflowFail:
				return nil, fmt.Errorf("%w: %q is %d bytes, line width is %d", ErrEncodingOverflow, word, len(word), width)
			case OverflowEmit:
				flush()
				lines = append(lines, word)
				continue
			default:
				flush()
				for len(word) > width {
					var n = cutPoint(word, width)
					lines = append(lines, word[:n])
					word = word[n:]
				}
				current = word
				continue
			}
		}

		switch {
		case current == "":
			current = word
		case len(current)+1+len(word) <= width:
			current += " " + word
		default:
			flush()
			current = word
		}
	}

	flush()

	return lines, nil
}

// cutPoint is the largest index <= width that does not fall inside a
// UTF-8 sequence.  At least one rune is always taken.
func cutPoint(s string, width int) int {
	var n = width
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}

	if n == 0 {
		var _, size = utf8.DecodeRuneInString(s)
		return size
	}

	return n
}

// padGroup pads with spaces, or truncates, to exactly n bytes.  A cut
// never lands inside a UTF-8 sequence; the shortfall is padded instead.
func padGroup(group string, n int) string {
	if len(group) > n {
		group = group[:cutPoint(group, n)]
	}

	return group + strings.Repeat(" ", n-len(group))
}
