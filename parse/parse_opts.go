package parse

import (
	"github.com/jdoc-format/go-jdoc/ir"
	"github.com/jdoc-format/go-jdoc/token"
)

// MaxDepth is the default bound on container nesting. Exceeding it is
// a parse failure, never a runaway recursion.
const MaxDepth = 128

type parseOpts struct {
	maxDepth  int
	positions map[*ir.Node]*token.Pos
}

type Option func(*parseOpts)

// WithMaxDepth overrides the nesting bound. Values below 1 are
// ignored.
func WithMaxDepth(n int) Option {
	return func(o *parseOpts) {
		if n > 0 {
			o.maxDepth = n
		}
	}
}

// Positions records the start offset of every parsed node into m.
func Positions(m map[*ir.Node]*token.Pos) Option {
	return func(o *parseOpts) {
		o.positions = m
	}
}
