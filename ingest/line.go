package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/kruskalviz/core"
)

// minFields is source, target, weight.
const minFields = 3

// separators in detection order; whitespace is the fallback.
var separators = []string{",", "\t", "-", "|"}

// ParseLine parses one edge like "A B 5", "a,b,5", "A-B-5" or "A|B|2.5".
//
// Error Conditions:
//   - ErrFormat          : fewer than three fields.
//   - ErrWeight          : the third field is not a number.
//   - core.ErrEmptyNodeID, core.ErrSelfLoop, core.ErrBadWeight from core.Validate.
func ParseLine(line string) (core.Edge, error) {
	fields := splitFields(line)
	if len(fields) < minFields {
		return core.Edge{}, fmt.Errorf("ParseLine: %q: %w", line, ErrFormat)
	}

	return parseFields(fields)
}

// splitFields picks the first separator present in the trimmed line.
func splitFields(line string) []string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}
	for _, sep := range separators {
		if strings.Contains(trimmed, sep) {
			parts := strings.Split(trimmed, sep)
			for i := range parts {
				parts[i] = strings.TrimSpace(parts[i])
			}

			return parts
		}
	}

	return strings.Fields(trimmed)
}

// parseFields builds and validates an edge from the first three fields.
func parseFields(fields []string) (core.Edge, error) {
	w, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return core.Edge{}, fmt.Errorf("parseFields: %q: %w", fields[2], ErrWeight)
	}
	e := core.NewEdge(fields[0], fields[1], w)
	if err = core.Validate(e); err != nil {
		return core.Edge{}, err
	}

	return e, nil
}
