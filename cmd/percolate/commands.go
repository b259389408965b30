package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/simoninireland/cncp-playground/experiment"
	"github.com/simoninireland/cncp-playground/logging"
	"github.com/simoninireland/cncp-playground/percolation"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "percolate",
		Short:         "Bond and residual bond percolation experiments",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "configuration file (default ./percolate.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn or error")
	root.PersistentFlags().String("log-format", logging.LogFormatJSON, "log format: json or console")
	root.PersistentFlags().String("log-file", "", "write logs to this file instead of stderr")

	root.AddCommand(newGenerateCmd(), newRunCmd())

	return root
}

func addNetworkFlags(fs *pflag.FlagSet) {
	fs.String("network", "", "generator: path, cycle, star, complete, grid, er or regular")
	fs.String("input", "", "read the network from a YAML file instead of generating it")
	fs.Int("nodes", 0, "number of nodes")
	fs.Int("rows", 0, "grid rows")
	fs.Int("cols", 0, "grid columns")
	fs.Int("degree", 0, "degree of a random regular network")
	fs.Float64("edge-probability", 0, "edge probability of an Erdős–Rényi network")
	fs.Int64("network-seed", 0, "seed for random generators")
}

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a network and write it as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg GenerateConfig
			if err := loadConfig(cmd, &cfg); err != nil {
				return err
			}
			ctx, err := initLogger(cmd.Context(), cfg.LogConfig)
			if err != nil {
				return err
			}
			l := ctxzap.Extract(ctx)

			nw, err := loadNetwork(cfg.NetworkConfig)
			if err != nil {
				return err
			}
			if err := withOutput(cmd, cfg.Output, nw.Encode); err != nil {
				return err
			}
			l.Info("network written",
				zap.String("network", cfg.Kind),
				zap.Int("nodes", nw.Order()),
				zap.Int("edges", nw.Size()))

			return nil
		},
	}
	addNetworkFlags(cmd.Flags())
	cmd.Flags().StringP("output", "o", "", "output file (default stdout)")

	return cmd
}

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run percolation trials over a network",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg RunConfig
			if err := loadConfig(cmd, &cfg); err != nil {
				return err
			}
			ctx, err := initLogger(cmd.Context(), cfg.LogConfig)
			if err != nil {
				return err
			}

			return runTrials(ctx, cmd, cfg)
		},
	}
	addNetworkFlags(cmd.Flags())
	fs := cmd.Flags()
	fs.String("process", "bond", "process: bond or residual")
	fs.Int("samples", percolation.DefaultSampleCount, "number of evenly spaced sample points")
	fs.String("points", "", "explicit comma-separated sample points, overriding --samples")
	fs.String("policy", percolation.AtOrAfter.String(), "sampling policy: at-or-after or at-or-before")
	fs.Int("depth", percolation.DefaultDepth, "maximum residual depth")
	fs.Int("trials", 1, "number of trials")
	fs.Int("workers", 1, "trials run in parallel")
	fs.Int64("seed", 0, "base seed; trial i uses seed+i")
	fs.String("format", formatJSONLines, "output format: jsonl, csv or yaml")
	fs.Bool("summary", false, "write mean and max GCC per sample point instead of raw samples")
	fs.StringP("output", "o", "", "output file (default stdout)")

	return cmd
}

// initLogger attaches the configured logger to ctx. logging.WithLogLevel
// falls back to debug on a level it cannot parse; that is reported as a
// warning rather than an error.
func initLogger(ctx context.Context, cfg LogConfig) (context.Context, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	out := "stderr"
	if cfg.LogFile != "" {
		out = cfg.LogFile
	}

	ctx, err := logging.Init(ctx,
		logging.WithLogLevel(cfg.LogLevel),
		logging.WithLogFormat(cfg.LogFormat),
		logging.WithOutputPaths([]string{out}))
	if err != nil {
		return nil, err
	}
	if _, perr := zapcore.ParseLevel(cfg.LogLevel); perr != nil {
		ctxzap.Extract(ctx).Warn("unknown log level, logging at debug",
			zap.String("log_level", cfg.LogLevel))
	}

	return ctx, nil
}

func runTrials(ctx context.Context, cmd *cobra.Command, cfg RunConfig) error {
	l := ctxzap.Extract(ctx)

	factory, err := processFactory(cfg)
	if err != nil {
		return err
	}
	// Surface configuration errors before any network is built.
	if _, err := factory(); err != nil {
		return err
	}
	nw, err := loadNetwork(cfg.NetworkConfig)
	if err != nil {
		return err
	}
	l.Info("network ready", zap.Int("nodes", nw.Order()), zap.Int("edges", nw.Size()))

	runner, err := experiment.NewRunner(
		experiment.WithTrials(cfg.Trials),
		experiment.WithWorkers(cfg.Workers),
		experiment.WithSeed(cfg.Seed))
	if err != nil {
		return err
	}
	trials, err := runner.Run(ctx, nw, factory)
	if err != nil {
		return err
	}

	return withOutput(cmd, cfg.Output, func(w io.Writer) error {
		if cfg.Summary {
			return writePoints(w, cfg.Format, experiment.Summarise(trials))
		}
		return writeTrials(w, cfg.Format, trials)
	})
}

// processFactory turns the run configuration into a per-trial Process builder.
func processFactory(cfg RunConfig) (experiment.Factory, error) {
	policy, err := percolation.ParsePolicy(cfg.Policy)
	if err != nil {
		return nil, err
	}
	points, err := parsePoints(cfg.Points)
	if err != nil {
		return nil, err
	}
	opts := []percolation.Option{percolation.WithPolicy(policy), percolation.WithSampleCount(cfg.Samples)}
	if points != nil {
		opts = append(opts, percolation.WithSamplePoints(points...))
	}

	if cfg.Process == "residual" {
		opts = append(opts, percolation.WithDepth(cfg.Depth))
		return func() (percolation.Process, error) {
			return percolation.NewResidualBondPercolation(opts...)
		}, nil
	}

	return func() (percolation.Process, error) {
		return percolation.NewBondPercolation(opts...)
	}, nil
}

// createOutput opens an output file for writing.
var createOutput = func(path string) (io.WriteCloser, error) {
	return os.Create(path)
}

// withOutput runs write against the command's stdout, or against the file at
// path when one is given. A failure to close the file is returned as the
// command's error.
func withOutput(cmd *cobra.Command, path string, write func(io.Writer) error) (err error) {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := createOutput(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing %s: %w", path, cerr)
		}
	}()

	return write(f)
}
