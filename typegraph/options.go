package typegraph

import "log"

// config holds the effect of every Option applied to a new TypeGraph.
type config struct {
	logger *log.Logger
}

// Option configures a TypeGraph at construction time, mirroring
// graph.Option.
type Option func(*config)

// WithLogger overrides the default logger (log.Default()).
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
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
