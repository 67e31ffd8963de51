package ingest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/kruskalviz/core"
)

// graphDocument is the YAML/JSON file shape.
type graphDocument struct {
	Name  string       `yaml:"name" json:"name"`
	Edges []edgeRecord `yaml:"edges" json:"edges"`
}

type edgeRecord struct {
	Source string  `yaml:"source" json:"source"`
	Target string  `yaml:"target" json:"target"`
	Weight float64 `yaml:"weight" json:"weight"`
}

// ParseYAML decodes a YAML document into edges.
// Both {edges: [...]} and a bare list of {source, target, weight} are accepted.
func ParseYAML(r io.Reader) (Report, error) {
	var root yaml.Node
	if err := yaml.NewDecoder(r).Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return Report{}, fmt.Errorf("ParseYAML: %w", ErrNoEdges)
		}
		return Report{}, fmt.Errorf("ParseYAML: decode: %w", err)
	}

	var records []edgeRecord
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	switch node.Kind {
	case yaml.SequenceNode:
		if err := node.Decode(&records); err != nil {
			return Report{}, fmt.Errorf("ParseYAML: edges: %w", err)
		}
	case yaml.MappingNode:
		var doc graphDocument
		if err := node.Decode(&doc); err != nil {
			return Report{}, fmt.Errorf("ParseYAML: document: %w", err)
		}
		records = doc.Edges
	default:
		return Report{}, fmt.Errorf("ParseYAML: top-level kind %d: %w", node.Kind, ErrUnsupportedFormat)
	}

	return collectRecords("ParseYAML", records)
}

// ParseJSON decodes a JSON document with the same shapes as ParseYAML.
func ParseJSON(r io.Reader) (Report, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return Report{}, fmt.Errorf("ParseJSON: read: %w", err)
	}
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return Report{}, fmt.Errorf("ParseJSON: %w", ErrNoEdges)
	}

	var records []edgeRecord
	if raw[0] == '[' {
		err = json.Unmarshal(raw, &records)
	} else {
		var doc graphDocument
		err = json.Unmarshal(raw, &doc)
		records = doc.Edges
	}
	if err != nil {
		return Report{}, fmt.Errorf("ParseJSON: decode: %w", err)
	}

	return collectRecords("ParseJSON", records)
}

func collectRecords(method string, records []edgeRecord) (Report, error) {
	c := newCollector()
	for i, rec := range records {
		e := core.NewEdge(rec.Source, rec.Target, rec.Weight)
		c.add(i+1, e.String(), e)
	}

	return c.result(method)
}
