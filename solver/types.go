package solver

import (
	"context"
	"errors"
	"time"
)

// ErrVerificationFailed indicates an accepted raw solution failed its
// structural checks (wrong piece count, cell overlap, out-of-bounds
// cell, or not 216 cells total). This signals a bug in the DLX engine,
// not a recoverable runtime condition: the driver aborts the run
// rather than silently skipping the solution.
var ErrVerificationFailed = errors.New("solver: accepted solution failed structural verification")

// Report is delivered to a WithProgress callback at every solution
// boundary: the only point where the search is suspended and safe to
// inspect.
type Report struct {
	Pulled   int           // raw solutions pulled from the DLX engine so far
	Accepted int           // raw solutions that passed verification
	Unique   int           // distinct tilings found so far (after symmetry reduction)
	Elapsed  time.Duration // wall-clock time since Run started
}

// config holds the resolved option values for a Run call.
type config struct {
	ctx           context.Context
	maxSolutions  int // 0 = unlimited
	withTutorial  bool
	progress      func(Report)
}

// Option customises a Run call.
type Option func(*config)

// defaultConfig returns the zero-value-safe defaults: no solution cap,
// no tutorial step generation, no progress callback, background context.
func defaultConfig() config {
	return config{
		ctx:          context.Background(),
		maxSolutions: 0,
		withTutorial: false,
		progress:     func(Report) {},
	}
}

// WithContext threads ctx through the DLX pull loop, enabling caller
// cancellation between solutions.
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic("solver: WithContext(nil)")
	}
	return func(c *config) { c.ctx = ctx }
}

// WithMaxSolutions stops Run after n accepted unique solutions. n <= 0
// means unlimited (exhaust the search).
func WithMaxSolutions(n int) Option {
	return func(c *config) { c.maxSolutions = n }
}

// WithTutorial enables per-solution tutorial.Reorder output in Result.
func WithTutorial(enabled bool) Option {
	return func(c *config) { c.withTutorial = enabled }
}

// WithProgress registers a callback invoked after every pulled raw
// solution that passes verification (whether new or a duplicate —
// Report always reflects the latest counts). A solution that fails
// verification ends Run with an error and gets no callback.
// Panics on nil, matching the corpus's fail-fast option-constructor
// policy (builder.WithRand(nil), etc.).
func WithProgress(fn func(Report)) Option {
	if fn == nil {
		panic("solver: WithProgress(nil)")
	}
	return func(c *config) { c.progress = fn }
}

func resolveOptions(opts []Option) config {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}
