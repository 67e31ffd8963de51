package samples

import "errors"

// ErrUnknownSample indicates a name not present in the catalog.
var ErrUnknownSample = errors.New("samples: unknown sample")

// ErrTooFewVertices indicates a size parameter below the generator minimum.
var ErrTooFewVertices = errors.New("samples: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("samples: probability out of range")
