package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/randomizedcoder/queue-latency-profiler/internal/config"
	"github.com/randomizedcoder/queue-latency-profiler/internal/harness"
	"github.com/randomizedcoder/queue-latency-profiler/internal/logging"
	"github.com/randomizedcoder/queue-latency-profiler/internal/report"
	"github.com/randomizedcoder/queue-latency-profiler/internal/tick"
)

var errUsage = errors.New("usage: latency-profiler [mutex|lockfree]")

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "latency-profiler [mutex|lockfree]",
		Short: "Measure enqueue-to-dequeue latency of a concurrent queue",
		Long: `Runs one producer and one consumer goroutine through a fixed number of
timestamped messages and reports the enqueue-to-dequeue latency.

  mutex     unbounded queue guarded by a sync.Mutex
  lockfree  bounded lock-free single-producer/single-consumer ring buffer

Sorted raw samples are written to "<QueueName>_latencies.txt".`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errUsage
			}
			mode, err := harness.ParseMode(args[0])
			if err != nil {
				return err
			}
			return runProfile(cmd, mode, configPath)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ./latency-profiler.yaml if present)")

	return cmd
}

func runProfile(cmd *cobra.Command, mode harness.Mode, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	log.Debug("config loaded",
		zap.Int("messages", cfg.Messages),
		zap.Int("capacity", cfg.Capacity),
		zap.Duration("send_delay", cfg.SendDelay),
		zap.String("pacer", cfg.Pacer),
		zap.String("output_dir", cfg.OutputDir),
	)

	q, err := harness.NewQueue(mode, cfg.Capacity)
	if err != nil {
		return err
	}
	pacer, err := tick.NewPacer(cfg.Pacer, cfg.SendDelay)
	if err != nil {
		return err
	}

	name := mode.QueueName()
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Running %s benchmark with %d messages...\n", name, cfg.Messages)

	res, err := harness.Run(cmd.Context(), name, q, harness.Options{
		Messages: cfg.Messages,
		Pacer:    pacer,
		Logger:   log,
	})
	if err != nil {
		return err
	}

	path, err := report.WriteSamplesFile(cfg.OutputDir, res)
	if err != nil {
		return err
	}
	log.Info("latencies written", zap.String("path", path))

	if err := report.PrintSummary(out, res); err != nil {
		return err
	}

	if cfg.MetricsTextfile {
		path, err := report.WriteMetricsFile(cfg.OutputDir, res)
		if err != nil {
			return err
		}
		log.Info("metrics written", zap.String("path", path))
	}

	return nil
}
