package ingest

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseText reads one edge per line. Blank lines are ignored silently.
func ParseText(r io.Reader) (Report, error) {
	c := newCollector()
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		c.line(n, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return Report{}, fmt.Errorf("ParseText: read: %w", err)
	}

	return c.result("ParseText")
}

// ParseInline parses a single string where both newlines and ";" end an edge.
func ParseInline(s string) (Report, error) {
	c := newCollector()
	parts := strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' })
	for i, p := range parts {
		c.line(i+1, p)
	}

	return c.result("ParseInline")
}

func (c *collector) line(n int, text string) {
	if strings.TrimSpace(text) == "" {
		return
	}
	e, err := ParseLine(text)
	if err != nil {
		c.skip(n, text, err)
		return
	}
	c.add(n, text, e)
}
