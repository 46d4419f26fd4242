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

// Package file implements a line sink backed by a file or any other io.WriteCloser.
package file

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"go.uber.org/multierr"
)

// Writer writes one line per value through a buffer.
type Writer struct {
	name string
	w    *bufio.Writer
	c    io.Closer
}

// Create creates or truncates the file at path.
func Create(path string) (*Writer, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file, %w", err)
	}
	return New(path, f), nil
}

// New returns a Writer over wc. name is only used for logging and metrics.
func New(name string, wc io.WriteCloser) *Writer {
	return &Writer{
		name: name,
		w:    bufio.NewWriter(wc),
		c:    wc,
	}
}

// GetName returns the name.
func (w *Writer) GetName() string {
	return w.name
}

// Write appends value followed by a newline.
func (w *Writer) Write(_ context.Context, value string) error {
	if _, err := w.w.WriteString(value); err != nil {
		writeErrors.WithLabelValues(w.name).Inc()
		return fmt.Errorf("failed to write to %s, %w", w.name, err)
	}
	if err := w.w.WriteByte('\n'); err != nil {
		writeErrors.WithLabelValues(w.name).Inc()
		return fmt.Errorf("failed to write to %s, %w", w.name, err)
	}
	writeLines.WithLabelValues(w.name).Inc()
	return nil
}

// Flush writes any buffered lines to the underlying writer.
func (w *Writer) Flush() error {
	if err := w.w.Flush(); err != nil {
		return fmt.Errorf("failed to flush %s, %w", w.name, err)
	}
	return nil
}

// Close flushes pending lines and closes the underlying writer.
func (w *Writer) Close() error {
	return multierr.Append(w.Flush(), w.c.Close())
}
