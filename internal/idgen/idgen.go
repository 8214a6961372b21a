// Package idgen generates opaque, process-lifetime-unique IDs for panes,
// tabs, and other entities that need a stable identity but no semantic
// meaning in their string form.
package idgen

import (
	"strconv"
	"sync/atomic"
)

// Generator produces opaque string IDs. It is safe for concurrent use.
type Generator struct {
	prefix  string
	counter uint64
}

// New creates a Generator whose IDs are prefixed with prefix (e.g. "pane",
// "tab"). An empty prefix is valid.
func New(prefix string) *Generator {
	return &Generator{prefix: prefix}
}

// Next returns the next ID in the sequence, base36-encoded and at least 8
// characters long, matching the opaque-ID shape spec.md requires.
func (g *Generator) Next() string {
	n := atomic.AddUint64(&g.counter, 1)
	encoded := strconv.FormatUint(n, 36)
	for len(encoded) < 8 {
		encoded = "0" + encoded
	}
	if g.prefix == "" {
		return encoded
	}
	return g.prefix + "-" + encoded
}

// Func adapts a Generator to the plain func() string shape the usecase
// layer's IDGenerator type expects.
func (g *Generator) Func() func() string {
	return g.Next
}
