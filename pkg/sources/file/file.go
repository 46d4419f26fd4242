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

// Package file implements a line source backed by a file or any other io.ReadCloser.
package file

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
)

// Reader reads newline-delimited records.
type Reader struct {
	name string
	r    *bufio.Reader
	c    io.Closer
	eof  bool
}

// Open opens the file at path for reading.
func Open(path string) (*Reader, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input file, %w", err)
	}
	return New(path, f), nil
}

// New returns a Reader over rc. name is only used for logging and metrics.
func New(name string, rc io.ReadCloser) *Reader {
	return &Reader{
		name: name,
		r:    bufio.NewReader(rc),
		c:    rc,
	}
}

// GetName returns the name.
func (r *Reader) GetName() string {
	return r.name
}

// Read returns the next line without its line terminator. It returns io.EOF once all lines have
// been read; a last line without terminator is returned before io.EOF.
func (r *Reader) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.eof {
		return nil, io.EOF
	}
	line, err := r.r.ReadBytes('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			readErrors.WithLabelValues(r.name).Inc()
			return nil, fmt.Errorf("failed to read from %s, %w", r.name, err)
		}
		r.eof = true
		if len(line) == 0 {
			return nil, io.EOF
		}
	}
	readLines.WithLabelValues(r.name).Inc()
	readBytes.WithLabelValues(r.name).Add(float64(len(line)))
	return bytes.TrimSuffix(line, []byte{'\n'}), nil
}

// Close closes the underlying reader.
func (r *Reader) Close() error {
	return r.c.Close()
}
