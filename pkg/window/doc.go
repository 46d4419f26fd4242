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

// Package window implements the trailing event-time window over the payment graph.
//
// The window is anchored at the largest timestamp seen so far (Max) and covers Span seconds,
// both ends inclusive, so Min is always Max-59 once an event has been admitted. Records older
// than Min are late: they never touch the graph and simply repeat the last median.
//
// The Controller owns the edge index, the time index and the degree tracker, and applies every
// event to them in a fixed order: late check, edge admission, window advance and eviction, and
// finally the median of the live degrees.
package window
