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

import (
	"sort"

	"github.com/numaproj/rollingmedian/pkg/event"
)

type bucket map[event.Edge]struct{}

// TimeIndex groups edges by their timestamp.
// Only non-empty buckets are kept, so the number of buckets is bounded by the number of distinct
// seconds inside the window.
type TimeIndex struct {
	buckets map[int64]bucket
	size    int
}

// NewTimeIndex returns an empty TimeIndex.
func NewTimeIndex() *TimeIndex {
	return &TimeIndex{buckets: make(map[int64]bucket)}
}

// Add appends the edge to the bucket of ts. Adding an edge already in the bucket is a no-op.
func (ti *TimeIndex) Add(ts int64, e event.Edge) {
	b, ok := ti.buckets[ts]
	if !ok {
		b = make(bucket)
		ti.buckets[ts] = b
	}
	if _, ok := b[e]; ok {
		return
	}
	b[e] = struct{}{}
	ti.size++
}

// Remove takes the edge out of the bucket of ts, dropping the bucket once it is empty.
// It returns false if the edge was not in that bucket.
func (ti *TimeIndex) Remove(ts int64, e event.Edge) bool {
	b, ok := ti.buckets[ts]
	if !ok {
		return false
	}
	if _, ok := b[e]; !ok {
		return false
	}
	delete(b, e)
	ti.size--
	if len(b) == 0 {
		delete(ti.buckets, ts)
	}
	return true
}

// Move relocates the edge from bucket from to bucket to.
func (ti *TimeIndex) Move(e event.Edge, from, to int64) {
	if ti.Remove(from, e) {
		ti.Add(to, e)
	}
}

// Contains returns true if the edge is in the bucket of ts.
func (ti *TimeIndex) Contains(ts int64, e event.Edge) bool {
	_, ok := ti.buckets[ts][e]
	return ok
}

// Bucket returns the edges carrying timestamp ts.
func (ti *TimeIndex) Bucket(ts int64) []event.Edge {
	b := ti.buckets[ts]
	edges := make([]event.Edge, 0, len(b))
	for e := range b {
		edges = append(edges, e)
	}
	return edges
}

// Expire removes every bucket strictly older than before and returns the removed edges,
// oldest bucket first.
func (ti *TimeIndex) Expire(before int64) []event.Edge {
	var stale []int64
	for ts := range ti.buckets {
		if ts < before {
			stale = append(stale, ts)
		}
	}
	if len(stale) == 0 {
		return nil
	}
	sort.Slice(stale, func(i, j int) bool { return stale[i] < stale[j] })

	var expired []event.Edge
	for _, ts := range stale {
		for e := range ti.buckets[ts] {
			expired = append(expired, e)
		}
		ti.size -= len(ti.buckets[ts])
		delete(ti.buckets, ts)
	}
	return expired
}

// Timestamps returns the timestamps of all non-empty buckets in ascending order.
func (ti *TimeIndex) Timestamps() []int64 {
	out := make([]int64, 0, len(ti.buckets))
	for ts := range ti.buckets {
		out = append(out, ts)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Buckets returns the number of non-empty buckets.
func (ti *TimeIndex) Buckets() int {
	return len(ti.buckets)
}

// Len returns the number of edges across all buckets.
func (ti *TimeIndex) Len() int {
	return ti.size
}
