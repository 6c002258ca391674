package scanner

import (
	"context"
	"net"
	"testing"
	"time"

	"portscout/port"
)

func TestProbeTCP_OpenAndClosed(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	portNum := uint16(l.Addr().(*net.TCPAddr).Port)

	if !ProbeTCP("127.0.0.1", portNum, time.Second) {
		t.Fatal("expected open while listener is up")
	}

	_ = l.Close()
	time.Sleep(50 * time.Millisecond)

	if ProbeTCP("127.0.0.1", portNum, 500*time.Millisecond) {
		t.Fatal("expected closed after listener shut down")
	}
}

func TestProbeTCP_Timeout(t *testing.T) {
	// 192.0.2.0/24 is TEST-NET-1; connects should never be accepted.
	start := time.Now()
	if ProbeTCP("192.0.2.1", 80, 100*time.Millisecond) {
		t.Fatal("expected closed for unroutable address")
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("probe did not honor timeout, took %v", elapsed)
	}
}

func TestEngineWithRealListener(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()
	go func() {
		for {
			conn, err := l.Accept()
			if err != nil {
				return
			}
			_ = conn.Close()
		}
	}()

	open := uint16(l.Addr().(*net.TCPAddr).Port)
	cfg := Config{
		Target:      "localhost",
		Addr:        "127.0.0.1",
		Range:       rangeAround(open),
		Timeout:     time.Second,
		Concurrency: 16,
	}
	eng := New(cfg, nil)
	findings, err := eng.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for _, f := range findings {
		if f.Port == open {
			found = true
		}
	}
	if !found {
		t.Fatalf("listener port %d not reported open: %v", open, findings)
	}
}

// rangeAround spans a few ports either side of p, clamped to valid bounds.
func rangeAround(p uint16) port.Range {
	start, end := int(p)-3, int(p)+3
	if start < 1 {
		start = 1
	}
	if end > 65535 {
		end = 65535
	}
	return port.Range{Start: uint16(start), End: uint16(end)}
}
