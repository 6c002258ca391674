package scanner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"portscout/catalog"
	"portscout/port"
)

// Strategy selects how the engine drives probes across the range.
type Strategy int

const (
	// BoundedConcurrent probes up to Config.Concurrency ports in parallel.
	BoundedConcurrent Strategy = iota
	// Sequential probes one port at a time on the calling goroutine.
	Sequential
)

func (s Strategy) String() string {
	if s == Sequential {
		return "sequential"
	}
	return "concurrent"
}

// ErrInterrupted marks a run that was cancelled before covering the whole
// range. Findings collected up to that point are still returned.
var ErrInterrupted = errors.New("scan interrupted")

// Config is the fully resolved configuration for one scan run.
// It is read-only once the engine starts.
type Config struct {
	Target      string // identifier as given by the user
	Addr        string // resolved IPv4 address, dialed per probe
	Range       port.Range
	Timeout     time.Duration
	Concurrency int
	Strategy    Strategy
}

// Finding records one confirmed open port and its catalog service name.
type Finding struct {
	Port    uint16
	Service string
}

// Engine orchestrates probing over a port range. All per-run state lives
// inside Run, so a single Engine value is safe to reuse across runs.
type Engine struct {
	cfg    Config
	probe  Prober
	onOpen func(Finding)
}

// New builds an Engine for cfg. A nil prober selects ProbeTCP.
func New(cfg Config, probe Prober) *Engine {
	if probe == nil {
		probe = ProbeTCP
	}
	return &Engine{cfg: cfg, probe: probe}
}

// OnFinding registers a hook invoked for each open port as it is discovered,
// in completion order. Must be set before Run.
func (e *Engine) OnFinding(fn func(Finding)) {
	e.onOpen = fn
}

// Run probes every port in the configured range and returns the findings
// sorted ascending by port. On cancellation it stops dispatching new probes,
// waits for in-flight ones, and returns the partial findings with
// ErrInterrupted.
func (e *Engine) Run(ctx context.Context) ([]Finding, error) {
	if e.cfg.Addr == "" {
		return nil, errors.New("engine config: missing resolved address")
	}
	if e.cfg.Range.Start == 0 || e.cfg.Range.Start > e.cfg.Range.End {
		return nil, fmt.Errorf("engine config: invalid port range %s", e.cfg.Range)
	}

	logrus.WithFields(logrus.Fields{
		"addr":     e.cfg.Addr,
		"ports":    e.cfg.Range.String(),
		"strategy": e.cfg.Strategy.String(),
	}).Debug("scan starting")

	var findings []Finding
	var err error
	if e.cfg.Strategy == Sequential {
		findings, err = e.runSequential(ctx)
	} else {
		findings, err = e.runBounded(ctx)
	}

	// Both strategies append in completion order; present a deterministic
	// ascending-port order regardless.
	sort.Slice(findings, func(i, j int) bool { return findings[i].Port < findings[j].Port })

	logrus.WithField("open", len(findings)).Debug("scan finished")
	return findings, err
}

func (e *Engine) runSequential(ctx context.Context) ([]Finding, error) {
	var findings []Finding
	for _, p := range e.cfg.Range.Ports() {
		if ctx.Err() != nil {
			return findings, fmt.Errorf("%w: %v", ErrInterrupted, ctx.Err())
		}
		if e.probe(e.cfg.Addr, p, e.cfg.Timeout) {
			f := Finding{Port: p, Service: catalog.ServiceName(p)}
			findings = append(findings, f)
			e.notify(f)
		}
	}
	return findings, nil
}

func (e *Engine) runBounded(ctx context.Context) ([]Finding, error) {
	limit := e.cfg.Concurrency
	if limit < 1 {
		limit = 1
	}

	var (
		sem      = semaphore.NewWeighted(int64(limit))
		wg       sync.WaitGroup
		mu       sync.Mutex
		findings []Finding
		runErr   error
	)

	for _, p := range e.cfg.Range.Ports() {
		if ctx.Err() != nil {
			runErr = fmt.Errorf("%w: %v", ErrInterrupted, ctx.Err())
			break
		}
		// Blocking admission control: waits until a probe slot frees.
		if err := sem.Acquire(ctx, 1); err != nil {
			runErr = fmt.Errorf("%w: %v", ErrInterrupted, err)
			break
		}

		wg.Add(1)
		go func(p uint16) {
			defer wg.Done()
			defer sem.Release(1)
			if !e.probe(e.cfg.Addr, p, e.cfg.Timeout) {
				return
			}
			f := Finding{Port: p, Service: catalog.ServiceName(p)}
			mu.Lock()
			findings = append(findings, f)
			mu.Unlock()
			e.notify(f)
		}(p)
	}

	// Barrier: no finding may arrive after the engine claims completion.
	wg.Wait()
	return findings, runErr
}

func (e *Engine) notify(f Finding) {
	if e.onOpen != nil {
		e.onOpen(f)
	}
}
