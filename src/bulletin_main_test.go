package bulletin

import (
	"bytes"
	"io"
	"net"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runBulletin(t *testing.T, stdin string, args ...string) (int, string) {
	t.Helper()

	setupPflag(append([]string{"ax25bln"}, args...))

	var stdout bytes.Buffer
	var status = bulletinRun(strings.NewReader(stdin), &stdout, io.Discard)

	return status, stdout.String()
}

func Test_BulletinDryRun(t *testing.T) {
	var status, out = runBulletin(t, "", "-n", "-N", "-s", "N0CALL", "-b", "-g", "GROUP", "-l", "3", "Net", "tonight")
	assert.Equal(t, 0, status)
	assert.Equal(t, "N0CALL>APRS::BLN3GROUP:Net tonight\n", out)
}

func Test_BulletinStdinNumbering(t *testing.T) {
	var status, out = runBulletin(t, "first\n\nsecond\n", "-n", "-N", "-s", "N0CALL", "-v", "WIDE2-1", "-b", "-g", "WX")
	assert.Equal(t, 0, status)
	assert.Equal(t, "N0CALL>APRS,WIDE2-1::BLN0WX   :first\nN0CALL>APRS,WIDE2-1::BLN1WX   :second\n", out)
}

func Test_MessageHexDump(t *testing.T) {
	var status, out = runBulletin(t, "", "-n", "-N", "-x", "-s", "N0CALL", "-g", "bom_warn", "hi")
	assert.Equal(t, 0, status)
	assert.Contains(t, out, "N0CALL>APRS::BOM_WARN :hi\n")
	assert.Contains(t, out, "  000:  82 a0 a4 a6 40 40 60 9c 60 86 82 98 98 61 03 f0")
}

func Test_BulletinMainStdout(t *testing.T) {
	setupPflag([]string{"ax25bln", "-n", "-N", "-s", "N0CALL", "-g", "GROUP", "hello"})
	AssertOutputContains(t, BulletinMain, "N0CALL>APRS::GROUP    :hello")
}

func Test_BulletinErrors(t *testing.T) {
	var status, _ = runBulletin(t, "", "-n", "-s", "N0CALL", "text")
	assert.Equal(t, 1, status, "group is required")

	status, _ = runBulletin(t, "", "-n", "-g", "GROUP", "text")
	assert.Equal(t, 1, status, "mycall is required")

	status, _ = runBulletin(t, "", "-n", "-s", "N0CALL-16", "-g", "GROUP", "text")
	assert.Equal(t, 1, status)

	status, _ = runBulletin(t, "", "-n", "-s", "N0CALL", "-g", "GROUP", "-o", "fail", strings.Repeat("x", 100))
	assert.Equal(t, 1, status)
}

func Test_BulletinConfigFile(t *testing.T) {
	var path = writeConfig(t, "mycall: VK2ABC\npath: WIDE1-1\nomit_timestamp: true\n")

	var status, out = runBulletin(t, "", "-c", path, "-n", "-s", "VK2ABC-5", "-g", "GROUP", "-b", "x")
	assert.Equal(t, 0, status)
	assert.Equal(t, "VK2ABC-5>APRS,WIDE1-1::BLN0GROUP:x\n", out)
}

func Test_BulletinSendUDP(t *testing.T) {
	var listener = listenUDP(t)
	var port = listener.LocalAddr().(*net.UDPAddr).Port //nolint:forcetypeassert

	var status, _ = runBulletin(t, "", "-N", "-h", "127.0.0.1", "-p", strconv.Itoa(port), "-s", "N0CALL", "-b", "-g", "GROUP", "on", "air")
	require.Equal(t, 0, status)

	require.NoError(t, listener.SetReadDeadline(time.Now().Add(5*time.Second)))

	var buf = make([]byte, 512)
	var n, _, readErr = listener.ReadFromUDP(buf)
	require.NoError(t, readErr)

	var cfg = DefaultFrameConfig(StationAddress{Callsign: "N0CALL"})
	var want, err = BuildUIFrame(cfg, []byte(":BLN0GROUP:on air"))
	require.NoError(t, err)
	assert.Equal(t, want, buf[:n])
}

func Test_BulletinStdinFailsBeforeSend(t *testing.T) {
	var listener = listenUDP(t)
	var port = listener.LocalAddr().(*net.UDPAddr).Port //nolint:forcetypeassert

	var stdin = "first line ok\nsecond " + strings.Repeat("x", 100) + "\n"

	var status, _ = runBulletin(t, stdin, "-N", "-o", "fail", "-h", "127.0.0.1", "-p", strconv.Itoa(port), "-s", "N0CALL", "-b", "-g", "GROUP")
	require.Equal(t, 1, status)

	require.NoError(t, listener.SetReadDeadline(time.Now().Add(200*time.Millisecond)))

	var buf = make([]byte, 512)
	var _, _, readErr = listener.ReadFromUDP(buf)

	var netErr net.Error
	require.ErrorAs(t, readErr, &netErr, "the first line must not have been sent")
	assert.True(t, netErr.Timeout())
}

func Test_BulletinLineNumberLimit(t *testing.T) {
	var status, out = runBulletin(t, "", "-n", "-N", "-s", "N0CALL", "-b", "-g", "GROUP", "-l", "9", "last")
	assert.Equal(t, 0, status)
	assert.Equal(t, "N0CALL>APRS::BLN9GROUP:last\n", out)

	status, out = runBulletin(t, "one\ntwo\n", "-n", "-N", "-s", "N0CALL", "-b", "-g", "GROUP", "-l", "9")
	assert.Equal(t, 1, status)
	assert.Empty(t, out)
}
