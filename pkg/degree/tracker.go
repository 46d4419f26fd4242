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

package degree

import (
	"errors"
	"fmt"
)

// ErrUnknownNode is returned when decrementing a node that has no edges.
var ErrUnknownNode = errors.New("unknown node")

// Tracker keeps the degree of every node with at least one edge.
// A node is dropped as soon as its degree returns to 0.
type Tracker struct {
	degrees map[string]int
	values  *Multiset
}

// NewTracker returns an empty Tracker.
func NewTracker() *Tracker {
	return &Tracker{
		degrees: make(map[string]int),
		values:  NewMultiset(),
	}
}

// Increment adds one to the degree of node, creating it at 1, and returns the new degree.
func (t *Tracker) Increment(node string) int {
	d := t.degrees[node]
	if d == 0 {
		// Insert only fails for values below 1.
		_ = t.values.Insert(1)
	} else {
		_ = t.values.Move(d, d+1)
	}
	t.degrees[node] = d + 1
	return d + 1
}

// Decrement subtracts one from the degree of node and returns the new degree.
// The node is removed when it reaches 0.
func (t *Tracker) Decrement(node string) (int, error) {
	d, ok := t.degrees[node]
	if !ok {
		return 0, fmt.Errorf("decrement %q: %w", node, ErrUnknownNode)
	}
	if d == 1 {
		if err := t.values.Remove(1); err != nil {
			return 0, err
		}
		delete(t.degrees, node)
		return 0, nil
	}
	if err := t.values.Move(d, d-1); err != nil {
		return 0, err
	}
	t.degrees[node] = d - 1
	return d - 1, nil
}

// Degree returns the degree of node, 0 if it has no edges.
func (t *Tracker) Degree(node string) int {
	return t.degrees[node]
}

// Len returns the number of nodes with at least one edge.
func (t *Tracker) Len() int {
	return len(t.degrees)
}

// Degrees returns a copy of the node to degree map.
func (t *Tracker) Degrees() map[string]int {
	out := make(map[string]int, len(t.degrees))
	for n, d := range t.degrees {
		out[n] = d
	}
	return out
}

// Values returns all degrees in ascending order.
func (t *Tracker) Values() []int {
	return t.values.Values()
}

// Median returns the two middle degrees, see Multiset.Median.
func (t *Tracker) Median() (lo, hi int, ok bool) {
	return t.values.Median()
}
