package remote

import (
	"encoding/json"
	"errors"

	"github.com/katalvlaran/kruskalviz/core"
	"github.com/katalvlaran/kruskalviz/kruskal"
)

// Envelope types.
const (
	TypeStep     = "step"
	TypeComplete = "complete"
	TypeError    = "error"
)

// Sentinel errors reported by Relay and the HTTP handlers.
var (
	// ErrServer wraps the message of a server "error" envelope.
	ErrServer = errors.New("remote: server error")

	// ErrProtocol indicates an envelope that cannot be decoded or has an unknown type.
	ErrProtocol = errors.New("remote: protocol violation")

	// ErrOutOfOrder indicates a step whose StepIndex is not the next expected one.
	ErrOutOfOrder = errors.New("remote: step out of order")

	// ErrConnection indicates a dial, read or write failure.
	ErrConnection = errors.New("remote: connection failed")
)

// Request is the single client message of a stream.
type Request struct {
	Edges []core.Edge `json:"edges"`
	Speed float64     `json:"speed,omitempty"`
}

// Envelope is one server message of a stream.
type Envelope struct {
	Type    string          `json:"type"`
	Data    json.RawMessage `json:"data,omitempty"`
	Message string          `json:"message,omitempty"`
}

// Complete is the payload of the terminal "complete" envelope.
type Complete struct {
	kruskal.Summary
	Statistics kruskal.Statistics `json:"statistics"`
}

// GraphRequest is the body of the REST endpoints.
type GraphRequest struct {
	Edges []core.Edge `json:"edges"`
}

// RunResponse is the body of POST /api/kruskal.
type RunResponse struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message,omitempty"`
	MSTEdges   []core.Edge        `json:"mstEdges"`
	TotalCost  float64            `json:"totalCost"`
	Statistics kruskal.Statistics `json:"statistics"`
	Steps      []kruskal.Step     `json:"steps"`
}

// ValidateResponse is the body of POST /api/validate-graph.
type ValidateResponse struct {
	IsValid     bool        `json:"isValid"`
	Message     string      `json:"message"`
	Nodes       []string    `json:"nodes"`
	EdgesCount  int         `json:"edgesCount"`
	SortedEdges []core.Edge `json:"sortedEdges,omitempty"`
	Connected   bool        `json:"connected"`
	Components  int         `json:"components"`
}

// HealthResponse is the body of GET /.
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Version string `json:"version"`
}

func envelope(typ string, payload any) (Envelope, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Envelope{}, err
	}

	return Envelope{Type: typ, Data: raw}, nil
}
