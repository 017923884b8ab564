package vecmath

type options struct {
	absTolerance float64
	relTolerance float64
}

var defaultOptions = options{}

// Option configures tolerant comparisons such as ApproxEqual.
type Option func(*options)

// WithAbsTolerance sets the absolute tolerance per element.
// Negative values are treated as zero.
func WithAbsTolerance(tol float64) Option {
	return func(o *options) {
		o.absTolerance = max(tol, 0)
	}
}

// WithRelTolerance sets the tolerance relative to the larger magnitude of
// each element pair. Negative values are treated as zero.
func WithRelTolerance(tol float64) Option {
	return func(o *options) {
		o.relTolerance = max(tol, 0)
	}
}
