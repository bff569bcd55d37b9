//go:build unix

package bulletin

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func broadcastControl(_ string, _ string, c syscall.RawConn) error {
	var sockErr error

	var err = c.Control(func(fd uintptr) {
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_BROADCAST, 1)
	})
	if err != nil {
		return err
	}

	return sockErr
}
