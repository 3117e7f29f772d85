package graph

import "log"

// config holds the effect of every Option applied to a new GraphView.
type config struct {
	logger           *log.Logger
	nodeCapacityHint int
	edgeCapacityHint int
}

// Option configures a GraphView (or, via typegraph.Option, a TypeGraph) at
// construction time. This is the functional-options pattern nornicdb's own
// code uses sparingly and yammm's graph.New(s, opts ...GraphOption) uses as
// its primary construction surface (_examples/simon-lentz-yammm/graph/graph.go).
type Option func(*config)

// WithLogger overrides the default logger (log.Default()) stored on the
// view. No GraphView operation currently writes to it; in particular the
// hot path (insert/iterate) never logs.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}

// WithNodeCapacityHint preallocates node storage for n entries.
func WithNodeCapacityHint(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.nodeCapacityHint = n
		}
	}
}

// WithEdgeCapacityHint preallocates edge storage for n entries.
func WithEdgeCapacityHint(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.edgeCapacityHint = n
		}
	}
}

func newConfig(opts []Option) config {
	var c config
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	return c
}
