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

package forward

import (
	"context"

	"github.com/numaproj/rollingmedian/pkg/event"
	"github.com/numaproj/rollingmedian/pkg/window"
)

// LineReader is the source of raw records.
type LineReader interface {
	GetName() string
	// Read returns the next record, io.EOF once the source is exhausted.
	Read(ctx context.Context) ([]byte, error)
	Close() error
}

// LineWriter is the destination of the emitted medians.
type LineWriter interface {
	GetName() string
	Write(ctx context.Context, value string) error
	Close() error
}

// Normalizer turns a raw record into an event, or a *event.ParseError if the record is rejected.
type Normalizer interface {
	Normalize(line []byte) (event.Event, error)
}

// Processor applies one event to the window state.
type Processor interface {
	Process(ev event.Event) (window.Result, error)
}
