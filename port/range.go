package port

import (
	"errors"
	"strconv"
	"strings"
)

// DefaultRange covers the well-known and registered-low ports scanned when
// the user gives no (or an unusable) range.
var DefaultRange = Range{Start: 1, End: 1024}

// Range is an inclusive [Start, End] span of TCP ports.
// A Range with Start > End or a bound outside 1..65535 is a configuration
// error; ParseRange never produces one.
type Range struct {
	Start uint16
	End   uint16
}

// Count returns the number of ports covered by the range.
func (r Range) Count() int {
	return int(r.End) - int(r.Start) + 1
}

// Ports expands the range into an ascending slice of port numbers.
func (r Range) Ports() []uint16 {
	out := make([]uint16, 0, r.Count())
	for p := int(r.Start); p <= int(r.End); p++ {
		out = append(out, uint16(p))
	}
	return out
}

func (r Range) String() string {
	if r.Start == r.End {
		return strconv.Itoa(int(r.Start))
	}
	return strconv.Itoa(int(r.Start)) + "-" + strconv.Itoa(int(r.End))
}

// ParseRange parses a port range specification.
// Supported forms:
//   - single: "80"
//   - range: "1-1024"
func ParseRange(spec string) (Range, error) {
	spec = strings.TrimSpace(spec)
	if spec == "" {
		return Range{}, errors.New("empty port range")
	}

	if strings.Contains(spec, "-") {
		bounds := strings.SplitN(spec, "-", 2)
		start, err := parsePort(bounds[0])
		if err != nil {
			return Range{}, err
		}
		end, err := parsePort(bounds[1])
		if err != nil {
			return Range{}, err
		}
		if start > end {
			return Range{}, errors.New("range start greater than end: " + spec)
		}
		return Range{Start: start, End: end}, nil
	}

	p, err := parsePort(spec)
	if err != nil {
		return Range{}, err
	}
	return Range{Start: p, End: p}, nil
}

func parsePort(s string) (uint16, error) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	if v < 1 || v > 65535 {
		return 0, errors.New("port numbers must be in 1..65535")
	}
	return uint16(v), nil
}
