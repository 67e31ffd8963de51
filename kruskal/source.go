package kruskal

import (
	"context"
	"errors"
	"io"
	"sync/atomic"

	"github.com/katalvlaran/kruskalviz/core"
)

// ErrNotComplete is returned by Summary before the final step was delivered.
var ErrNotComplete = errors.New("kruskal: step sequence not complete")

// ErrClosed is returned by Next on a closed source.
var ErrClosed = errors.New("kruskal: step source closed")

// StepSource is the contract shared by the local engine and the remote relay.
//
//   - Next returns steps in strictly increasing StepIndex starting at 0,
//     then io.EOF exactly when the run completed normally.
//   - Any other error is terminal: no further steps follow.
//   - Summary is valid once Next has returned io.EOF.
//   - Close releases resources; it is safe to call more than once.
type StepSource interface {
	Next(ctx context.Context) (Step, error)
	Summary() (Summary, error)
	Close() error
}

// LocalSource adapts an in-process Engine to StepSource.
// Close may be called concurrently with Next; Next itself is single-consumer.
type LocalSource struct {
	engine *Engine
	closed atomic.Bool
}

// NewLocalSource returns a StepSource computing steps in-process.
func NewLocalSource(edges []core.Edge, opts ...Option) *LocalSource {
	return &LocalSource{engine: NewEngine(edges, opts...)}
}

// Engine exposes the underlying engine (ordered list, position).
func (s *LocalSource) Engine() *Engine { return s.engine }

// Next returns the next step, io.EOF at the end, or ctx.Err() when cancelled.
func (s *LocalSource) Next(ctx context.Context) (Step, error) {
	if s.closed.Load() {
		return Step{}, ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return Step{}, err
	}
	step, ok := s.engine.Next()
	if !ok {
		return Step{}, io.EOF
	}

	return step, nil
}

// Summary returns the terminal summary or ErrNotComplete.
func (s *LocalSource) Summary() (Summary, error) {
	if !s.engine.Done() {
		return Summary{}, ErrNotComplete
	}

	return s.engine.Summary(), nil
}

// Close marks the source closed.
func (s *LocalSource) Close() error {
	s.closed.Store(true)

	return nil
}

// Drain pulls every remaining step from src and returns them with the summary.
// The first non-EOF error is returned with the steps read so far.
func Drain(ctx context.Context, src StepSource) ([]Step, Summary, error) {
	var steps []Step
	for {
		step, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return steps, Summary{}, err
		}
		steps = append(steps, step)
	}
	sum, err := src.Summary()

	return steps, sum, err
}
