package bulletin

/*------------------------------------------------------------------
 *
 * Purpose:	Send finished frames as UDP datagrams, typically to a
 *		TNC listening for raw AX.25 frames.
 *
 * Description:	One frame per datagram.  Nothing is read back so there
 *		is no way to know whether it was heard; a send error only
 *		means the local network stack refused it.
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

const DEFAULT_TNC_HOST = "localhost"
const DEFAULT_TNC_PORT = 8001

const udpDialTimeout = 5 * time.Second

type UDPTransport struct {
	conn net.Conn
}

// DialUDP resolves host once.  A broadcast address such as
// 255.255.255.255 works because the socket has SO_BROADCAST set where the
// platform supports it.
func DialUDP(host string, port int) (*UDPTransport, error) {
	if port <= 0 || port > 65535 {
		return nil, fmt.Errorf("%w: UDP port %d out of range", ErrInvalidConfig, port)
	}

	var dialer = net.Dialer{ //nolint:exhaustruct
		Timeout: udpDialTimeout,
		Control: broadcastControl,
	}

	var address = net.JoinHostPort(host, strconv.Itoa(port))

	var conn, err = dialer.Dial("udp", address)
	if err != nil {
		return nil, fmt.Errorf("could not open UDP socket to %s: %w", address, err)
	}

	return &UDPTransport{conn: conn}, nil
}

func (t *UDPTransport) Send(frame []byte) error {
	var n, err = t.conn.Write(frame)
	if err != nil {
		return err
	}

	if n != len(frame) {
		return fmt.Errorf("short write to %s: %d of %d bytes", t.conn.RemoteAddr(), n, len(frame))
	}

	return nil
}

func (t *UDPTransport) Close() error {
	return t.conn.Close()
}

func (t *UDPTransport) String() string {
	return "udp://" + t.conn.RemoteAddr().String()
}
