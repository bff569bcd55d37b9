package bulletin

import (
	"fmt"
	"io"
	"strings"
)

const HEX_DUMP_WIDTH = 16

/*------------------------------------------------------------------
 *
 * Name:	hex_dump
 *
 * Purpose:	Show a frame byte by byte for troubleshooting.
 *
 * Description:	One row per 16 bytes:
 *
 *		  000:  82 a0 a4 a6 40 40 e0 ...  ....@@.
 *
 *		Offset in hex, the bytes, then the same bytes as ASCII with
 *		anything unprintable shown as a dot.  A short last row is
 *		padded so the ASCII column lines up.
 *
 *------------------------------------------------------------------*/

func hex_dump(w io.Writer, frame []byte) {
	for offset := 0; offset < len(frame); offset += HEX_DUMP_WIDTH {
		var row = frame[offset:min(offset+HEX_DUMP_WIDTH, len(frame))]

		var line strings.Builder

		fmt.Fprintf(&line, "  %03x: ", offset)

		for _, b := range row {
			fmt.Fprintf(&line, " %02x", b)
		}
		line.WriteString(strings.Repeat("   ", HEX_DUMP_WIDTH-len(row)))

		line.WriteString("  ")

		for _, b := range row {
			line.WriteByte(IfThenElse(b >= 0x20 && b <= 0x7e, b, '.'))
		}

		line.WriteString("\n")

		io.WriteString(w, line.String()) //nolint:errcheck
	}
}
