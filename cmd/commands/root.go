/*
Copyright 2022 The Numaproj Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/numaproj/rollingmedian"
	"github.com/numaproj/rollingmedian/pkg/config"
	"github.com/numaproj/rollingmedian/pkg/event"
	"github.com/numaproj/rollingmedian/pkg/forward"
	"github.com/numaproj/rollingmedian/pkg/metrics"
	"github.com/numaproj/rollingmedian/pkg/shared/logging"
	sinkfile "github.com/numaproj/rollingmedian/pkg/sinks/file"
	sourcefile "github.com/numaproj/rollingmedian/pkg/sources/file"
	"github.com/numaproj/rollingmedian/pkg/window"
)

var rootCmd = NewRootCommand()

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "rolling-median [flags] <input> <output>",
		Short: "Compute the rolling median degree of a payment graph",
		Long: `Reads newline delimited payment records from <input> and writes, for every valid record,
the median degree of the payment graph built from the last 60 seconds of payments to <output>.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// usage is only useful for argument errors, which cobra reports before RunE.
			cmd.SilenceUsage = true
			conf, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), conf, args[0], args[1])
		},
	}
	config.AddFlags(command.Flags())
	command.AddCommand(NewVersionCommand())
	return command
}

func run(ctx context.Context, conf *config.Config, input, output string) error {
	level, err := logging.ParseLevel(conf.LogLevel)
	if err != nil {
		return err
	}
	log := logging.NewLoggerWithLevel(level).With("run", uuid.New().String())
	defer func() { _ = log.Sync() }()

	version := rollingmedian.GetVersion()
	log.Infow("Starting rolling median", "version", version)
	metrics.BuildInfo.WithLabelValues(version.Version, version.Platform).Set(1)

	processor, err := window.NewController(window.WithVerify(conf.Verify), window.WithLogger(log))
	if err != nil {
		return fmt.Errorf("failed to create window controller, %w", err)
	}
	normalizer := event.NewNormalizer(event.WithFoldCase(conf.FoldCase))

	reader, err := sourcefile.Open(input)
	if err != nil {
		return err
	}
	writer, err := sinkfile.Create(output)
	if err != nil {
		return multierr.Append(err, reader.Close())
	}
	df, err := forward.NewDataForward(reader, writer, normalizer, processor, forward.WithLogger(log))
	if err != nil {
		return multierr.Combine(err, reader.Close(), writer.Close())
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithLogger(ctx, log)

	stats, err := df.Run(ctx)
	if err != nil {
		log.Errorw("Run failed", zap.Error(err))
	} else {
		log.Infow("Run completed", zap.Int64("emitted", stats.Emitted), zap.Int64("dropped", stats.Dropped))
	}
	if conf.MetricsFile != "" {
		if mErr := metrics.WriteTextfile(conf.MetricsFile, prometheus.DefaultGatherer); mErr != nil {
			err = multierr.Append(err, mErr)
		}
	}
	return err
}
