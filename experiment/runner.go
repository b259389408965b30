package experiment

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/segmentio/ksuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/simoninireland/cncp-playground/network"
	"github.com/simoninireland/cncp-playground/percolation"
)

var (
	// ErrInvalidTrials indicates a trial count below 1.
	ErrInvalidTrials = errors.New("experiment: trials must be at least 1")

	// ErrInvalidWorkers indicates a worker count below 1.
	ErrInvalidWorkers = errors.New("experiment: workers must be at least 1")

	// ErrNilFactory indicates a missing process factory.
	ErrNilFactory = errors.New("experiment: nil process factory")
)

// Factory builds a fresh, uninitialized process for one trial.
type Factory func() (percolation.Process, error)

// Trial is the outcome of one run of a process.
type Trial struct {
	ID      string               `json:"id" yaml:"id"`
	Index   int                  `json:"index" yaml:"index"`
	Seed    int64                `json:"seed" yaml:"seed"`
	Samples []percolation.Sample `json:"samples" yaml:"samples"`
}

// Option configures a Runner.
type Option func(*Runner)

// WithTrials sets the number of trials (default 1).
func WithTrials(n int) Option {
	return func(r *Runner) { r.trials = n }
}

// WithWorkers bounds how many trials run at once (default GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(r *Runner) { r.workers = n }
}

// WithSeed sets the base seed; trial i uses seed+i.
func WithSeed(seed int64) Option {
	return func(r *Runner) { r.seed = seed }
}

// Runner drives repeated trials.
type Runner struct {
	trials  int
	workers int
	seed    int64
}

// NewRunner applies opts over the defaults and validates the result.
func NewRunner(opts ...Option) (*Runner, error) {
	r := &Runner{trials: 1, workers: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(r)
	}
	if r.trials < 1 {
		return nil, fmt.Errorf("NewRunner: trials=%d: %w", r.trials, ErrInvalidTrials)
	}
	if r.workers < 1 {
		return nil, fmt.Errorf("NewRunner: workers=%d: %w", r.workers, ErrInvalidWorkers)
	}

	return r, nil
}

// Trials returns the configured trial count.
func (r *Runner) Trials() int { return r.trials }

// Run percolates nw once per trial and returns the trials in index order.
// nw is only read, so trials share it.
func (r *Runner) Run(ctx context.Context, nw *network.Network, factory Factory) ([]Trial, error) {
	if factory == nil {
		return nil, fmt.Errorf("Runner.Run: %w", ErrNilFactory)
	}
	l := ctxzap.Extract(ctx)
	start := time.Now()

	results := make([]Trial, r.trials)
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)
	for i := 0; i < r.trials; i++ {
		g.Go(func() error {
			t, err := r.runTrial(gctx, nw, factory, i)
			if err != nil {
				return fmt.Errorf("trial %d: %w", i, err)
			}
			results[i] = t
			l.Debug("trial finished",
				zap.String("trial_id", t.ID),
				zap.Int("index", i),
				zap.Int("samples", len(t.Samples)))

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		l.Error("trials failed", zap.Error(err))
		return nil, fmt.Errorf("Runner.Run: %w", err)
	}

	l.Info("trials complete",
		zap.Int("trials", r.trials),
		zap.Int("workers", r.workers),
		zap.Int("nodes", nw.Order()),
		zap.Int("edges", nw.Size()),
		zap.Duration("elapsed", time.Since(start)))

	return results, nil
}

// runTrial owns one process for the duration of a single trial.
func (r *Runner) runTrial(ctx context.Context, nw *network.Network, factory Factory, i int) (Trial, error) {
	proc, err := factory()
	if err != nil {
		return Trial{}, err
	}
	if err := proc.Initialize(nw); err != nil {
		return Trial{}, err
	}
	defer proc.Release()

	seed := r.seed + int64(i)
	ss, err := proc.Run(ctx, rand.New(rand.NewSource(seed)))
	if err != nil {
		return Trial{}, err
	}

	return Trial{ID: ksuid.New().String(), Index: i, Seed: seed, Samples: ss}, nil
}
