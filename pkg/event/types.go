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

package event

import "fmt"

// Edge is an undirected relationship between two identifiers.
// First is always the byte-wise larger identifier, so {a,b} and {b,a} are the same Edge.
type Edge struct {
	First  string
	Second string
}

// NewEdge returns the canonical Edge for the two identifiers.
func NewEdge(a, b string) Edge {
	if a > b {
		return Edge{First: a, Second: b}
	}
	return Edge{First: b, Second: a}
}

// IsSelfLoop returns true if both ends of the edge are the same identifier.
func (e Edge) IsSelfLoop() bool {
	return e.First == e.Second
}

// Nodes returns both endpoints of the edge.
func (e Edge) Nodes() [2]string {
	return [2]string{e.First, e.Second}
}

func (e Edge) String() string {
	return fmt.Sprintf("%s<->%s", e.First, e.Second)
}

// Event is a normalized payment record.
type Event struct {
	// Time is the creation time of the payment in seconds since the Unix epoch.
	Time int64
	Edge Edge
}
