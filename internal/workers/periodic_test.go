package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-shop-sync/internal/logger"
)

type countingJob struct {
	calls atomic.Int64
	err   error
}

func (j *countingJob) run(context.Context) error {
	j.calls.Add(1)
	return j.err
}

func TestPeriodic_RunCallsJob(t *testing.T) {
	job := &countingJob{}
	p := NewPeriodic("test", 10*time.Millisecond, job.run, logger.Nop())

	p.Run(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool { return job.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestPeriodic_StopHaltsTicks(t *testing.T) {
	job := &countingJob{}
	p := NewPeriodic("test", 10*time.Millisecond, job.run, logger.Nop())

	p.Run(context.Background())
	assert.Eventually(t, func() bool { return job.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)
	p.Stop()

	callsAfterStop := job.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, job.calls.Load())
}

func TestPeriodic_StopWithoutRun(t *testing.T) {
	p := NewPeriodic("test", time.Second, (&countingJob{}).run, logger.Nop())

	assert.NotPanics(t, func() {
		p.Stop()
		p.Stop()
	})
}

func TestPeriodic_DefaultInterval(t *testing.T) {
	for _, interval := range []time.Duration{0, -time.Second} {
		p := NewPeriodic("test", interval, (&countingJob{}).run, logger.Nop())
		assert.Equal(t, defaultInterval, p.interval)
	}
}

func TestPeriodic_RestartReplacesPreviousRun(t *testing.T) {
	job := &countingJob{}
	p := NewPeriodic("test", 10*time.Millisecond, job.run, logger.Nop())
	ctx := context.Background()

	p.Run(ctx)
	assert.Eventually(t, func() bool { return job.calls.Load() >= 1 }, time.Second, 5*time.Millisecond)

	before := job.calls.Load()
	p.Run(ctx)
	assert.Eventually(t, func() bool { return job.calls.Load() > before }, time.Second, 5*time.Millisecond)
	p.Stop()
}

func TestPeriodic_ContextCancelStopsRun(t *testing.T) {
	p := NewPeriodic("test", 10*time.Millisecond, (&countingJob{}).run, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	p.Run(ctx)
	cancel()

	done := make(chan struct{})
	go func() {
		p.Stop()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop hung after the context was cancelled")
	}
}

func TestPeriodic_FailingJobKeepsRunning(t *testing.T) {
	job := &countingJob{err: assert.AnError}
	p := NewPeriodic("test", 10*time.Millisecond, job.run, logger.Nop())

	p.Run(context.Background())
	defer p.Stop()

	assert.Eventually(t, func() bool { return job.calls.Load() >= 3 }, time.Second, 5*time.Millisecond)
}

func TestPeriodic_Trigger(t *testing.T) {
	job := &countingJob{err: assert.AnError}
	p := NewPeriodic("test", time.Hour, job.run, logger.Nop())

	assert.ErrorIs(t, p.Trigger(context.Background()), assert.AnError)
	assert.Equal(t, int64(1), job.calls.Load())
}
