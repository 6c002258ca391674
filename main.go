package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"

	"portscout/netutil"
	"portscout/output"
	"portscout/port"
	"portscout/scanner"
)

func main() {
	portsSpec := flag.String("p", "", "port range, N or N-M (default 1-1024)")
	sequential := flag.Bool("seq", false, "scan sequentially instead of concurrently")
	concurrency := flag.Int("c", 100, "max concurrent probes")
	timeout := flag.Duration("t", time.Second, "per-probe timeout")
	fileOut := flag.String("o", "", "also write the report to a file (atomic)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <target>\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	logrus.SetOutput(os.Stderr)
	if *verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if flag.NArg() < 1 || flag.Arg(0) == "" {
		fmt.Fprintln(os.Stderr, "error: target positional argument required")
		flag.Usage()
		os.Exit(2)
	}
	target := flag.Arg(0)

	// A malformed range is not fatal: fall back to the default and proceed.
	portRange := port.DefaultRange
	if *portsSpec != "" {
		r, err := port.ParseRange(*portsSpec)
		if err != nil {
			logrus.WithField("spec", *portsSpec).Warnf("invalid port range, using default %s", port.DefaultRange)
		} else {
			portRange = r
		}
	}

	addr, err := netutil.Resolve(target)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(3)
	}
	logrus.WithFields(logrus.Fields{"target": target, "addr": addr}).Debug("target resolved")

	strategy := scanner.BoundedConcurrent
	if *sequential {
		strategy = scanner.Sequential
	}
	cfg := scanner.Config{
		Target:      target,
		Addr:        addr,
		Range:       portRange,
		Timeout:     *timeout,
		Concurrency: *concurrency,
		Strategy:    strategy,
	}

	eng := scanner.New(cfg, nil)
	// Live hit lines are for humans watching the scan; piped output gets only
	// the frozen report.
	if isatty.IsTerminal(os.Stdout.Fd()) {
		eng.OnFinding(func(f scanner.Finding) {
			fmt.Printf("Port %d/tcp open - %s\n", f.Port, f.Service)
		})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	findings, runErr := eng.Run(ctx)
	interrupted := errors.Is(runErr, scanner.ErrInterrupted)
	if runErr != nil && !interrupted {
		fmt.Fprintf(os.Stderr, "scan failed: %v\n", runErr)
		os.Exit(4)
	}
	if interrupted {
		fmt.Fprintln(os.Stderr, "scan interrupted, reporting partial results")
	}

	report := output.Report{
		Target:   target,
		Addr:     addr,
		Findings: findings,
		Elapsed:  time.Since(start),
		Partial:  interrupted,
	}

	// Render once, then fan the same bytes out to stdout and the optional file.
	var buf bytes.Buffer
	output.WriteSummary(&buf, report)
	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write to stdout: %v\n", err)
		os.Exit(4)
	}
	if *fileOut != "" {
		if err := output.WriteAtomic(*fileOut, buf.Bytes()); err != nil {
			fmt.Fprintf(os.Stderr, "failed to write output file: %v\n", err)
			os.Exit(4)
		}
	}

	if interrupted {
		os.Exit(130)
	}
}
