package replay

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/kruskalviz/kruskal"
)

// Sentinel errors for Driver control calls.
var (
	// ErrPlaying indicates StepOnce was called while the driver is playing.
	ErrPlaying = errors.New("replay: driver is playing")

	// ErrFinished indicates a control call after Done or Failed.
	ErrFinished = errors.New("replay: playback finished")

	// ErrBusy indicates a step fetch is already in flight.
	ErrBusy = errors.New("replay: step fetch in progress")

	// ErrBadSpeed indicates a speed that is not strictly positive.
	ErrBadSpeed = errors.New("replay: speed must be > 0")

	// ErrOutOfOrder indicates a source that skipped or repeated a StepIndex.
	ErrOutOfOrder = errors.New("replay: step out of order")

	// ErrNilSource indicates Reset was called without a source.
	ErrNilSource = errors.New("replay: nil step source")
)

// State is the driver lifecycle state.
type State int

const (
	Idle State = iota
	Playing
	Paused
	Done
	Failed
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Playing:
		return "playing"
	case Paused:
		return "paused"
	case Done:
		return "done"
	case Failed:
		return "failed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Driver plays one StepSource at a time.
type Driver struct {
	mu sync.Mutex

	base      time.Duration
	speed     float64
	observers []Observer
	logger    *slog.Logger

	src      kruskal.StepSource
	ctx      context.Context
	state    State
	run      uint64 // bumped by Reset; stale fetches compare against it
	gen      uint64 // bumped by every schedule and Pause; stale timers compare against it
	timer    *time.Timer
	fetching bool
	history  []kruskal.Step
	summary  kruskal.Summary
	out      *outcome
}

// outcome is the terminal result of one run; err is written before done is closed.
type outcome struct {
	done chan struct{}
	err  error
}

func newOutcome() *outcome { return &outcome{done: make(chan struct{})} }

// New returns an Idle driver for src.
func New(src kruskal.StepSource, opts ...Option) *Driver {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Driver{
		base:      o.BaseInterval,
		speed:     o.Speed,
		observers: o.Observers,
		logger:    o.Logger,
		src:       src,
		ctx:       context.Background(),
		out:       newOutcome(),
	}
}

// Interval returns the current tick interval (base / speed).
func (d *Driver) Interval() time.Duration {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.interval()
}

func (d *Driver) interval() time.Duration {
	return time.Duration(float64(d.base) / d.speed)
}

// State returns the lifecycle state.
func (d *Driver) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.state
}

// Position returns the number of steps delivered so far (the next StepIndex).
func (d *Driver) Position() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.history)
}

// Steps returns a copy of the steps delivered so far.
func (d *Driver) Steps() []kruskal.Step {
	d.mu.Lock()
	defer d.mu.Unlock()

	out := make([]kruskal.Step, len(d.history))
	copy(out, d.history)

	return out
}

// Summary returns the terminal summary once the driver is Done.
func (d *Driver) Summary() (kruskal.Summary, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.state != Done {
		return kruskal.Summary{}, kruskal.ErrNotComplete
	}

	return d.summary, nil
}

// Play starts or resumes timed playback. ctx bounds every source fetch of
// this run; cancelling it fails the run with ctx.Err().
func (d *Driver) Play(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	switch d.state {
	case Playing:
		return nil
	case Done, Failed:
		return ErrFinished
	}
	d.ctx = ctx
	d.state = Playing
	d.logger.Debug("play", "position", len(d.history), "interval", d.interval())
	if !d.fetching {
		d.schedule()
	}

	return nil
}

// Resume is Play with the context of the previous Play call.
func (d *Driver) Resume() error {
	d.mu.Lock()
	ctx := d.ctx
	d.mu.Unlock()

	return d.Play(ctx)
}

// Pause stops the timer and keeps the position. A fetch already in flight
// still delivers its step.
func (d *Driver) Pause() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != Playing {
		return
	}
	d.state = Paused
	d.cancelTimer()
	d.logger.Debug("pause", "position", len(d.history))
}

// SetSpeed changes the multiplier; a playing driver reschedules its next tick.
func (d *Driver) SetSpeed(speed float64) error {
	if !(speed > 0) {
		return fmt.Errorf("SetSpeed: %g: %w", speed, ErrBadSpeed)
	}
	d.mu.Lock()
	defer d.mu.Unlock()

	d.speed = speed
	if d.state == Playing && !d.fetching {
		d.schedule()
	}

	return nil
}

// StepOnce delivers exactly one step while Idle or Paused. At the end of the
// sequence it completes the run and returns io.EOF.
func (d *Driver) StepOnce(ctx context.Context) (kruskal.Step, error) {
	d.mu.Lock()
	switch {
	case d.state == Playing:
		d.mu.Unlock()
		return kruskal.Step{}, ErrPlaying
	case d.state == Done || d.state == Failed:
		d.mu.Unlock()
		return kruskal.Step{}, ErrFinished
	case d.fetching:
		d.mu.Unlock()
		return kruskal.Step{}, ErrBusy
	}
	if d.state == Idle {
		d.state = Paused
	}
	d.fetching = true
	run, src := d.run, d.src
	d.mu.Unlock()

	return d.advance(ctx, src, run)
}

// Reset closes the current source and rewinds to Idle with src.
// A nil src is rejected and leaves the driver untouched.
func (d *Driver) Reset(src kruskal.StepSource) error {
	if src == nil {
		return fmt.Errorf("Reset: %w", ErrNilSource)
	}
	d.mu.Lock()
	old := d.src
	d.cancelTimer()
	if d.state != Done && d.state != Failed {
		d.out.err = kruskal.ErrClosed
		close(d.out.done)
	}
	d.run++
	d.src = src
	d.state = Idle
	d.fetching = false
	d.history = nil
	d.summary = kruskal.Summary{}
	d.out = newOutcome()
	d.logger.Debug("reset", "run", d.run)
	d.mu.Unlock()

	if old != nil {
		return old.Close()
	}

	return nil
}

// Stop cancels playback and closes the source. The run ends Failed with
// kruskal.ErrClosed unless it had already finished.
func (d *Driver) Stop() error {
	d.mu.Lock()
	d.cancelTimer()
	src := d.src
	if d.state == Done || d.state == Failed {
		d.mu.Unlock()
		return closeSource(src)
	}
	d.run++
	d.fail(kruskal.ErrClosed)

	return closeSource(src)
}

func closeSource(src kruskal.StepSource) error {
	if src == nil {
		return nil
	}

	return src.Close()
}

// Wait blocks until the current run is Done or Failed; it returns the run
// error (nil when Done) or ctx.Err().
func (d *Driver) Wait(ctx context.Context) error {
	d.mu.Lock()
	out := d.out
	d.mu.Unlock()

	select {
	case <-out.done:
		return out.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// schedule arms the timer for the next tick. Caller holds mu.
func (d *Driver) schedule() {
	d.cancelTimer()
	run, gen := d.run, d.gen
	d.timer = time.AfterFunc(d.interval(), func() { d.tick(run, gen) })
}

// cancelTimer stops the pending timer and invalidates its tick. Caller holds mu.
func (d *Driver) cancelTimer() {
	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// tick runs on the timer goroutine.
func (d *Driver) tick(run, gen uint64) {
	// 1. Discard stale ticks.
	d.mu.Lock()
	if run != d.run || gen != d.gen || d.state != Playing || d.fetching {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.fetching = true
	ctx, src := d.ctx, d.src
	d.mu.Unlock()

	// 2. Fetch and deliver one step; advance re-arms the timer.
	_, _ = d.advance(ctx, src, run)
}

// advance fetches one step outside the lock, records it if the run is still
// current, notifies observers, then clears fetching and re-arms the timer if
// the driver is still playing. The caller has set fetching.
func (d *Driver) advance(ctx context.Context, src kruskal.StepSource, run uint64) (kruskal.Step, error) {
	step, err := src.Next(ctx)

	d.mu.Lock()
	if run != d.run {
		d.mu.Unlock()
		return kruskal.Step{}, kruskal.ErrClosed
	}

	// Terminal outcomes.
	if err != nil {
		if errors.Is(err, io.EOF) {
			sum, serr := src.Summary()
			if serr == nil {
				d.summary = sum
				out := d.finish(Done, nil)
				d.mu.Unlock()
				d.notify(func(o Observer) { o.OnComplete(sum) })
				close(out.done)
				return kruskal.Step{}, io.EOF
			}
			err = serr
		}
		d.fail(err)
		return kruskal.Step{}, err
	}

	// Out-of-order delivery is terminal.
	if want := len(d.history); step.StepIndex != want {
		err = fmt.Errorf("advance: got step %d, want %d: %w", step.StepIndex, want, ErrOutOfOrder)
		d.fail(err)
		return kruskal.Step{}, err
	}
	d.history = append(d.history, step)
	d.mu.Unlock()

	d.notify(func(o Observer) {
		o.OnExamine(step)
		o.OnStep(step)
	})

	d.mu.Lock()
	if run == d.run {
		d.fetching = false
		if d.state == Playing && d.timer == nil {
			d.schedule()
		}
	}
	d.mu.Unlock()

	return step, nil
}

// finish records the terminal state and returns the outcome for the caller
// to close once observers were notified. Caller holds mu.
func (d *Driver) finish(s State, err error) *outcome {
	d.state = s
	d.fetching = false
	d.cancelTimer()
	d.out.err = err
	d.logger.Debug("finish", "state", s.String(), "position", len(d.history), "error", err)

	return d.out
}

// fail finishes the run as Failed. Caller holds mu; fail releases it.
func (d *Driver) fail(err error) {
	out := d.finish(Failed, err)
	d.mu.Unlock()
	d.notify(func(o Observer) { o.OnError(err) })
	close(out.done)
}

func (d *Driver) notify(fn func(Observer)) {
	for _, o := range d.observers {
		fn(o)
	}
}
