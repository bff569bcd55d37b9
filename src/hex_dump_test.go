package bulletin

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHexDump(t *testing.T) {
	var frame = []byte("ABCDEFGHIJKLMNOP\x00\x03\xf0z")

	var out bytes.Buffer
	hex_dump(&out, frame)

	var want = "  000:  41 42 43 44 45 46 47 48 49 4a 4b 4c 4d 4e 4f 50  ABCDEFGHIJKLMNOP\n" +
		"  010:  00 03 f0 7a                                      ...z\n"

	assert.Equal(t, want, out.String())
}

func TestHexDumpEmpty(t *testing.T) {
	var out bytes.Buffer
	hex_dump(&out, nil)
	assert.Empty(t, out.String())
}
