// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
)

const defaultInterval = 5 * time.Minute

// Periodic calls a Job on a ticker. It is idle until Run is called.
type Periodic struct {
	name     string
	interval time.Duration
	job      Job

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewPeriodic creates a worker named name that runs job every interval. A
// zero or negative interval defaults to 5 minutes.
func NewPeriodic(name string, interval time.Duration, job Job, logger *logger.Logger) *Periodic {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Periodic{name: name, interval: interval, job: job, logger: logger}
}

// Run implements Worker. It stops any previous run, then launches a goroutine
// that calls the job on every tick until ctx is cancelled or Stop is called.
// A failing tick is logged and the next one runs as scheduled.
func (p *Periodic) Run(ctx context.Context) {
	p.Stop()

	p.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	p.cancel = cancel
	p.wg.Add(1)
	p.mu.Unlock()

	p.logger.Debug().Str("worker", p.name).Dur("interval", p.interval).Msg("worker started")

	go func() {
		defer p.wg.Done()
		t := time.NewTicker(p.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				p.tick(jobCtx)
			}
		}
	}()
}

// Trigger runs the job once on the calling goroutine.
func (p *Periodic) Trigger(ctx context.Context) error {
	return p.job(ctx)
}

func (p *Periodic) tick(ctx context.Context) {
	if err := p.job(ctx); err != nil && ctx.Err() == nil {
		p.logger.Err(err).Str("worker", p.name).Msg("worker tick failed")
	}
}

// Stop implements Worker. It cancels the running goroutine and blocks until
// it has exited. Safe to call when the worker is not running.
func (p *Periodic) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	p.cancel = nil
	p.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	p.wg.Wait()
}
