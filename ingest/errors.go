package ingest

import "errors"

var (
	// ErrFormat indicates a line that does not split into at least three fields.
	ErrFormat = errors.New("ingest: expected source, target and weight")

	// ErrWeight indicates a weight token that is not a number.
	ErrWeight = errors.New("ingest: weight is not a number")

	// ErrNoEdges indicates that no valid edge was found in the input.
	ErrNoEdges = errors.New("ingest: no valid edges")

	// ErrUnsupportedFormat indicates an unknown file extension or Format.
	ErrUnsupportedFormat = errors.New("ingest: unsupported format")
)
