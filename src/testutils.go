package bulletin

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureStdout runs command and returns whatever it wrote to os.Stdout.
// The pipe is drained while command runs so a large write cannot block.
func captureStdout(t *testing.T, command func()) string {
	t.Helper()

	var r, w, err = os.Pipe()
	require.NoError(t, err)

	var saved = os.Stdout
	os.Stdout = w
	t.Cleanup(func() { os.Stdout = saved })

	var captured = make(chan []byte)
	go func() {
		var buf bytes.Buffer
		io.Copy(&buf, r) //nolint:errcheck
		captured <- buf.Bytes()
	}()

	command()

	os.Stdout = saved
	require.NoError(t, w.Close())

	return string(<-captured)
}

func AssertOutputContains(t *testing.T, command func(), expectedOutputContains string) {
	t.Helper()

	assert.Contains(t, captureStdout(t, command), expectedOutputContains)
}
