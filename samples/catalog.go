package samples

import (
	"fmt"

	"github.com/katalvlaran/kruskalviz/core"
)

// Catalog names.
const (
	NameClassroom = "classroom"
	NameTriangle  = "triangle"
	NameForest    = "forest"
	NameLarge     = "large"
	NameGrid      = "grid"
	NameComplete  = "complete"
)

// Large graph parameters.
const (
	largeVertices = 50
	largeDensity  = 0.06
	largeSeed     = 2024
)

// Sample is one catalog entry.
type Sample struct {
	Name        string
	Description string
	build       func() ([]core.Edge, error)
}

// Build returns a fresh copy of the sample's edges.
func (s Sample) Build() ([]core.Edge, error) { return s.build() }

var catalog = []Sample{
	{
		Name:        NameClassroom,
		Description: "6 nodes, 9 edges: 5 selected, 4 rejected",
		build:       func() ([]core.Edge, error) { return Classroom(), nil },
	},
	{
		Name:        NameTriangle,
		Description: "A-B(1) B-C(2) A-C(3): one cycle rejection",
		build: func() ([]core.Edge, error) {
			return []core.Edge{
				core.NewEdge("A", "B", 1),
				core.NewEdge("B", "C", 2),
				core.NewEdge("A", "C", 3),
			}, nil
		},
	},
	{
		Name:        NameForest,
		Description: "two disconnected pairs: spanning forest with 2 components",
		build: func() ([]core.Edge, error) {
			return []core.Edge{core.NewEdge("A", "B", 1), core.NewEdge("C", "D", 2)}, nil
		},
	},
	{
		Name:        NameLarge,
		Description: fmt.Sprintf("%d nodes, seeded random sparse graph", largeVertices),
		build:       Large,
	},
	{
		Name:        NameGrid,
		Description: "4x4 lattice",
		build:       func() ([]core.Edge, error) { return Grid(4, 4) },
	},
	{
		Name:        NameComplete,
		Description: "K6 with random weights",
		build:       func() ([]core.Edge, error) { return Complete(6) },
	},
}

// Classroom returns the six-node walkthrough graph. In order of weight it
// accepts B-C, D-E, E-F, A-B, A-D and rejects B-E, C-F, A-C, D-F.
func Classroom() []core.Edge {
	return []core.Edge{
		core.NewEdge("B", "C", 1),
		core.NewEdge("D", "E", 2),
		core.NewEdge("E", "F", 3),
		core.NewEdge("A", "B", 4),
		core.NewEdge("A", "D", 5),
		core.NewEdge("B", "E", 6),
		core.NewEdge("C", "F", 7),
		core.NewEdge("A", "C", 8),
		core.NewEdge("D", "F", 9),
	}
}

// Large returns the deterministic 50-node demo graph.
func Large() ([]core.Edge, error) {
	return RandomSparse(largeVertices, largeDensity, WithSeed(largeSeed), WithWeightRange(1, 99))
}

// Names lists the catalog in display order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, s := range catalog {
		names[i] = s.Name
	}

	return names
}

// All returns the catalog entries in display order.
func All() []Sample {
	out := make([]Sample, len(catalog))
	copy(out, catalog)

	return out
}

// Get builds the sample called name (case-sensitive).
func Get(name string) ([]core.Edge, error) {
	for _, s := range catalog {
		if s.Name == name {
			return s.Build()
		}
	}

	return nil, fmt.Errorf("Get: %q: %w", name, ErrUnknownSample)
}
