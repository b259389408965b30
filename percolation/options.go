package percolation

import "fmt"

// DefaultSampleCount is the number of evenly spaced sample points used when
// none are configured.
const DefaultSampleCount = 100

// DefaultDepth is the residual depth used when none is configured.
const DefaultDepth = 1

// Option configures a percolation process. Options only record values;
// the constructors validate them and report configuration errors.
type Option func(*config)

// config is the resolved configuration shared by both processes.
type config struct {
	points []float64 // raw sample points, nil → count
	count  int       // evenly spaced sample points
	policy Policy
	depth  int
}

// WithSamplePoints sets explicit sample probabilities. They are validated,
// deduplicated and sorted by the constructor.
func WithSamplePoints(ps ...float64) Option {
	return func(c *config) {
		c.points = make([]float64, len(ps))
		copy(c.points, ps)
		c.count = 0
	}
}

// WithSampleCount samples at n evenly spaced probabilities in [0,1].
func WithSampleCount(n int) Option {
	return func(c *config) {
		c.points = nil
		c.count = n
	}
}

// WithPolicy selects how sample points map onto occupation states.
func WithPolicy(p Policy) Option {
	return func(c *config) { c.policy = p }
}

// WithDepth sets the maximum residual depth. Ignored by BondPercolation.
func WithDepth(d int) Option {
	return func(c *config) { c.depth = d }
}

// newConfig applies opts over the defaults and resolves the sample points.
func newConfig(opts ...Option) (config, []float64, error) {
	c := config{count: DefaultSampleCount, policy: AtOrAfter, depth: DefaultDepth}
	for _, opt := range opts {
		opt(&c)
	}
	if !c.policy.valid() {
		return c, nil, fmt.Errorf("policy %d: %w", int(c.policy), ErrUnknownPolicy)
	}

	var (
		ps  []float64
		err error
	)
	if c.points != nil {
		ps, err = SamplePoints(c.points)
	} else {
		ps, err = Linspace(c.count)
	}

	return c, ps, err
}
