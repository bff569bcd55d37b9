package bulletin

// A lightweight replacement for Dire Wolf's textcolor.c on top of
// charmbracelet/log.  Text colour 0 means no colour at all, which keeps
// output clean when piped.

import (
	"io"

	"github.com/charmbracelet/log"
)

// NewLogger returns a logger writing to w.  textColor 0 selects plain
// logfmt output, anything else the coloured text formatter.
func NewLogger(w io.Writer, debug bool, textColor int) *log.Logger {
	var formatter = log.TextFormatter
	if textColor == 0 {
		formatter = log.LogfmtFormatter
	}

	return log.NewWithOptions(w, log.Options{ //nolint:exhaustruct
		Prefix:    "ax25bln",
		Level:     IfThenElse(debug, log.DebugLevel, log.InfoLevel),
		Formatter: formatter,
	})
}

// Because sometimes it's really convenient to have C's ternary ?:
func IfThenElse[T any](x bool, a T, b T) T { //nolint:ireturn
	if x {
		return a
	} else {
		return b
	}
}
