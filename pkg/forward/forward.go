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

/*
Package forward does the Read (source) -> Normalize -> Process (window) -> Write (sink) loop.

Records are handled strictly one at a time: a record is fully processed and its median written
before the next one is read. Cancellation is only observed between records.
*/
package forward

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/numaproj/rollingmedian/pkg/event"
	"github.com/numaproj/rollingmedian/pkg/window"
)

// Stats summarizes one run.
type Stats struct {
	// Read is the number of records read from the source.
	Read int64
	// Dropped is the number of records rejected by the normalizer.
	Dropped int64
	// Late is the number of records older than the window, they still emit a median.
	Late int64
	// Emitted is the number of medians written to the sink.
	Emitted int64
}

// DataForward moves records from a LineReader through the window to a LineWriter.
type DataForward struct {
	reader     LineReader
	writer     LineWriter
	normalizer Normalizer
	processor  Processor
	shutdown   *Shutdown
	opts       options
}

// NewDataForward creates a new forwarder.
func NewDataForward(reader LineReader, writer LineWriter, normalizer Normalizer, processor Processor, opts ...Option) (*DataForward, error) {
	options := DefaultOptions()
	for _, o := range opts {
		if err := o(options); err != nil {
			return nil, err
		}
	}
	return &DataForward{
		reader:     reader,
		writer:     writer,
		normalizer: normalizer,
		processor:  processor,
		shutdown:   newShutdown(),
		opts:       *options,
	}, nil
}

// Run forwards every record until the reader is exhausted, ctx is cancelled, Stop is called
// or an error occurs.
// Both reader and writer are closed before Run returns.
func (df *DataForward) Run(ctx context.Context) (stats Stats, err error) {
	log := df.opts.logger
	log.Infow("Starting forwarder...", zap.String("from", df.reader.GetName()), zap.String("to", df.writer.GetName()))
	defer func() {
		// Clean up resources for the reader and the writer, the writer flushes on close.
		if cErr := df.reader.Close(); cErr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to close reader, %w", cErr))
		}
		if cErr := df.writer.Close(); cErr != nil {
			err = multierr.Append(err, fmt.Errorf("failed to close writer, %w", cErr))
		}
		log.Infow("Forwarder stopped",
			zap.Int64("read", stats.Read),
			zap.Int64("dropped", stats.Dropped),
			zap.Int64("late", stats.Late),
			zap.Int64("emitted", stats.Emitted),
			zap.Error(err))
	}()

	for {
		if ctx.Err() != nil {
			log.Info("Shutting down...")
			return stats, ctx.Err()
		}
		if df.IsShuttingDown() {
			log.Infow("Stop requested, shutting down...", zap.String("shutdown", df.shutdown.String()))
			return stats, nil
		}
		line, err := df.reader.Read(ctx)
		if errors.Is(err, io.EOF) {
			return stats, nil
		}
		if err != nil {
			return stats, err
		}
		stats.Read++
		if err := df.forwardOne(ctx, line, &stats); err != nil {
			return stats, err
		}
	}
}

// forwardOne handles a single record, writing its median unless the record is dropped.
func (df *DataForward) forwardOne(ctx context.Context, line []byte, stats *Stats) error {
	start := time.Now()
	defer func() {
		processingTime.Observe(float64(time.Since(start).Microseconds()))
	}()

	ev, err := df.normalizer.Normalize(line)
	if err != nil {
		var pe *event.ParseError
		if !errors.As(err, &pe) {
			return fmt.Errorf("failed to normalize record %d, %w", stats.Read, err)
		}
		stats.Dropped++
		droppedRecords.WithLabelValues(pe.Kind()).Inc()
		df.opts.logger.Debugw("Dropping record", zap.Int64("record", stats.Read), zap.Error(err))
		return nil
	}

	res, err := df.processor.Process(ev)
	if err != nil {
		return fmt.Errorf("failed to process record %d, %w", stats.Read, err)
	}
	if res.Outcome == window.Late {
		stats.Late++
		df.opts.logger.Debugw("Late record, repeating last median", zap.Int64("record", stats.Read), zap.Int64("timestamp", ev.Time))
	}

	if err := df.writer.Write(ctx, res.Median); err != nil {
		return err
	}
	stats.Emitted++
	emittedMedians.Inc()
	return nil
}
