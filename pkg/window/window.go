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

package window

import "fmt"

// Span is the inclusive width of the window in seconds.
const Span int64 = 60

// Window is the interval [Min, Max] of live timestamps, in seconds.
// The zero value is the empty window used before the first event.
type Window struct {
	Min int64
	Max int64
}

// IsLate returns true if ts falls before the start of the window.
func (w Window) IsLate(ts int64) bool {
	return ts < w.Min
}

// Contains returns true if ts lies within the window, both ends inclusive.
func (w Window) Contains(ts int64) bool {
	return ts >= w.Min && ts <= w.Max
}

// Advance moves the window so that it ends at ts, if ts is newer than the current end.
// It returns true if the window moved.
func (w *Window) Advance(ts int64) bool {
	if ts <= w.Max {
		return false
	}
	w.Max = ts
	w.Min = ts - Span + 1
	return true
}

func (w Window) String() string {
	return fmt.Sprintf("[%d, %d]", w.Min, w.Max)
}
