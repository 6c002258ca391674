package netutil

import (
	"fmt"
	"net"
)

// lookupIP is an injection point for tests. Defaults to net.LookupIP.
var lookupIP = net.LookupIP

// ResolutionError reports a target that could not be mapped to an IPv4
// address. The target name is preserved for diagnostics.
type ResolutionError struct {
	Target string
	Err    error
}

func (e *ResolutionError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("unable to resolve target %q: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("unable to resolve target %q", e.Target)
}

func (e *ResolutionError) Unwrap() error { return e.Err }

// Resolve turns a hostname or IP literal into an IPv4 dotted-quad string.
// Literal IPv4 addresses are accepted without a lookup. IPv6-only targets
// fail; the scanner dials IPv4 only.
func Resolve(target string) (string, error) {
	if ip := net.ParseIP(target); ip != nil {
		if ip4 := ip.To4(); ip4 != nil {
			return ip4.String(), nil
		}
		return "", &ResolutionError{Target: target, Err: fmt.Errorf("IPv6 addresses are not supported")}
	}

	ips, err := lookupIP(target)
	if err != nil {
		return "", &ResolutionError{Target: target, Err: err}
	}
	for _, ip := range ips {
		if v4 := ip.To4(); v4 != nil {
			return v4.String(), nil
		}
	}
	return "", &ResolutionError{Target: target, Err: fmt.Errorf("no A records found")}
}
