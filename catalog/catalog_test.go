package catalog

import "testing"

func TestServiceName_Known(t *testing.T) {
	cases := map[uint16]string{
		22:    "SSH",
		80:    "HTTP",
		443:   "HTTPS",
		5432:  "PostgreSQL",
		27017: "MongoDB",
	}
	for port, want := range cases {
		if got := ServiceName(port); got != want {
			t.Errorf("ServiceName(%d) = %q, want %q", port, got, want)
		}
	}
}

func TestServiceName_Unknown(t *testing.T) {
	for _, port := range []uint16{1, 4444, 65535} {
		if got := ServiceName(port); got != Unknown {
			t.Errorf("ServiceName(%d) = %q, want %q", port, got, Unknown)
		}
	}
}
