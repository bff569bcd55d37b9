//go:build !unix

package bulletin

import "syscall"

func broadcastControl(_ string, _ string, _ syscall.RawConn) error {
	return nil
}
