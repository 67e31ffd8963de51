package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/katalvlaran/kruskalviz/core"
	"github.com/katalvlaran/kruskalviz/kruskal"
)

// Relay reads a streamed run and implements kruskal.StepSource.
// Next is single-consumer; Close may be called concurrently with Next.
type Relay struct {
	conn *websocket.Conn

	next    int              // expected StepIndex
	summary *kruskal.Summary // set by the complete envelope
	stats   kruskal.Statistics
	err     error // sticky terminal error; io.EOF after completion

	closeOnce sync.Once
	closeErr  error
}

// Dial connects to url, sends the request and returns a Relay positioned
// before step 0.
func Dial(ctx context.Context, url string, edges []core.Edge, speed float64) (*Relay, error) {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("Dial: %s: HTTP %d: %v: %w", url, resp.StatusCode, err, ErrConnection)
		}
		return nil, fmt.Errorf("Dial: %s: %v: %w", url, err, ErrConnection)
	}

	_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
	if err = conn.WriteJSON(Request{Edges: edges, Speed: speed}); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("Dial: send request: %v: %w", err, ErrConnection)
	}

	return &Relay{conn: conn}, nil
}

// Next blocks for the next step. It returns io.EOF after the complete
// envelope, ctx.Err() on cancellation, and otherwise a terminal error
// wrapping ErrServer, ErrProtocol, ErrOutOfOrder or ErrConnection.
func (r *Relay) Next(ctx context.Context) (kruskal.Step, error) {
	if r.err != nil {
		return kruskal.Step{}, r.err
	}

	// Cancellation interrupts a blocked read by expiring its deadline.
	stop := context.AfterFunc(ctx, func() { _ = r.conn.SetReadDeadline(time.Now()) })
	defer stop()

	var env Envelope
	if err := r.conn.ReadJSON(&env); err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return kruskal.Step{}, r.fail(cerr)
		}
		return kruskal.Step{}, r.fail(fmt.Errorf("Next: read: %v: %w", err, ErrConnection))
	}

	switch env.Type {
	case TypeStep:
		var step kruskal.Step
		if err := json.Unmarshal(env.Data, &step); err != nil {
			return kruskal.Step{}, r.fail(fmt.Errorf("Next: step payload: %v: %w", err, ErrProtocol))
		}
		if step.StepIndex != r.next {
			return kruskal.Step{}, r.fail(fmt.Errorf("Next: got step %d, want %d: %w", step.StepIndex, r.next, ErrOutOfOrder))
		}
		r.next++
		return step, nil

	case TypeComplete:
		var c Complete
		if err := json.Unmarshal(env.Data, &c); err != nil {
			return kruskal.Step{}, r.fail(fmt.Errorf("Next: complete payload: %v: %w", err, ErrProtocol))
		}
		if c.EdgesExamined != r.next {
			return kruskal.Step{}, r.fail(fmt.Errorf("Next: complete after %d of %d steps: %w", r.next, c.EdgesExamined, ErrOutOfOrder))
		}
		r.summary = &c.Summary
		r.stats = c.Statistics
		r.err = io.EOF
		_ = r.Close()
		return kruskal.Step{}, io.EOF

	case TypeError:
		return kruskal.Step{}, r.fail(fmt.Errorf("%w: %s", ErrServer, env.Message))

	default:
		return kruskal.Step{}, r.fail(fmt.Errorf("Next: envelope type %q: %w", env.Type, ErrProtocol))
	}
}

// Summary returns the summary carried by the complete envelope.
func (r *Relay) Summary() (kruskal.Summary, error) {
	if r.summary == nil {
		return kruskal.Summary{}, kruskal.ErrNotComplete
	}

	return *r.summary, nil
}

// Statistics returns the statistics block of the complete envelope.
func (r *Relay) Statistics() (kruskal.Statistics, error) {
	if r.summary == nil {
		return kruskal.Statistics{}, kruskal.ErrNotComplete
	}

	return r.stats, nil
}

// Close sends a close frame and releases the connection. Safe to call twice.
func (r *Relay) Close() error {
	r.closeOnce.Do(func() {
		_ = r.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		if err := r.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			r.closeErr = err
		}
	})

	return r.closeErr
}

// fail records a terminal error and closes the connection.
func (r *Relay) fail(err error) error {
	r.err = err
	_ = r.Close()

	return err
}
