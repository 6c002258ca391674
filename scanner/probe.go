package scanner

import (
	"errors"
	"net"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
)

// Prober attempts one TCP connect against addr:port and reports whether the
// port accepted the connection. Implementations must finish within the
// timeout and must not leak the connection on any path.
type Prober func(addr string, portNum uint16, timeout time.Duration) bool

// ProbeTCP is the default Prober: a full connect() handshake.
// Every connection-layer outcome other than a clean accept (refused,
// timeout, unreachable, socket creation failure) collapses to closed;
// nothing propagates to the engine.
func ProbeTCP(addr string, portNum uint16, timeout time.Duration) bool {
	hostPort := net.JoinHostPort(addr, strconv.Itoa(int(portNum)))
	conn, err := net.DialTimeout("tcp", hostPort, timeout)
	if err == nil {
		_ = conn.Close()
		return true
	}
	logrus.WithField("addr", hostPort).Debugf("probe: %s", classifyDialErr(err))
	return false
}

// classifyDialErr names the failure for debug logs.
func classifyDialErr(err error) string {
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		if opErr.Timeout() {
			return "timeout during connect()"
		}
		if errors.Is(opErr.Err, syscall.ECONNREFUSED) {
			return "connection refused"
		}
	}
	return err.Error()
}
