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

package graph

import "github.com/numaproj/rollingmedian/pkg/event"

// EdgeIndex maps a canonical edge to its last seen timestamp.
type EdgeIndex struct {
	edges map[event.Edge]int64
}

// NewEdgeIndex returns an empty EdgeIndex.
func NewEdgeIndex() *EdgeIndex {
	return &EdgeIndex{edges: make(map[event.Edge]int64)}
}

// Get returns the timestamp of the edge and whether it is present.
func (ei *EdgeIndex) Get(e event.Edge) (int64, bool) {
	ts, ok := ei.edges[e]
	return ts, ok
}

// Contains returns true if the edge is present.
func (ei *EdgeIndex) Contains(e event.Edge) bool {
	_, ok := ei.edges[e]
	return ok
}

// Put inserts the edge or overwrites its timestamp. It returns the previous timestamp if there was one.
func (ei *EdgeIndex) Put(e event.Edge, ts int64) (int64, bool) {
	prev, ok := ei.edges[e]
	ei.edges[e] = ts
	return prev, ok
}

// Delete removes the edge, returning false if it was not present.
func (ei *EdgeIndex) Delete(e event.Edge) bool {
	if _, ok := ei.edges[e]; !ok {
		return false
	}
	delete(ei.edges, e)
	return true
}

// Len returns the number of live edges.
func (ei *EdgeIndex) Len() int {
	return len(ei.edges)
}

// Range calls fn for every edge until fn returns false. Iteration order is unspecified.
func (ei *EdgeIndex) Range(fn func(e event.Edge, ts int64) bool) {
	for e, ts := range ei.edges {
		if !fn(e, ts) {
			return
		}
	}
}
