package replay

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/katalvlaran/kruskalviz/internal/logging"
)

// Defaults.
const (
	DefaultBaseInterval = time.Second
	DefaultSpeed        = 1.0
)

// Options configures a Driver.
type Options struct {
	BaseInterval time.Duration
	Speed        float64
	Observers    []Observer
	Logger       *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns 1s base interval, speed 1, no observers, a discard logger.
func DefaultOptions() Options {
	return Options{
		BaseInterval: DefaultBaseInterval,
		Speed:        DefaultSpeed,
		Logger:       logging.Discard(),
	}
}

// WithBaseInterval sets the tick at speed 1. Panics if d <= 0.
func WithBaseInterval(d time.Duration) Option {
	if d <= 0 {
		panic(fmt.Sprintf("WithBaseInterval: interval must be > 0, got %s", d))
	}

	return func(o *Options) { o.BaseInterval = d }
}

// WithSpeed sets the initial speed multiplier. Panics if s <= 0.
func WithSpeed(s float64) Option {
	if !(s > 0) {
		panic(fmt.Sprintf("WithSpeed: speed must be > 0, got %g", s))
	}

	return func(o *Options) { o.Speed = s }
}

// WithObserver appends an observer.
func WithObserver(obs Observer) Option {
	return func(o *Options) { o.Observers = append(o.Observers, obs) }
}

// WithLogger sets the driver's own logger (state transitions).
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
