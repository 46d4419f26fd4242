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

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/numaproj/rollingmedian/pkg/degree"
	"github.com/numaproj/rollingmedian/pkg/event"
	"github.com/numaproj/rollingmedian/pkg/graph"
	"github.com/numaproj/rollingmedian/pkg/median"
)

// ErrInconsistentState is returned when the indexes and the degree tracker disagree.
var ErrInconsistentState = errors.New("inconsistent window state")

// Outcome describes what an event did to the graph.
type Outcome int

const (
	// Added means the edge was new and both endpoint degrees went up.
	Added Outcome = iota
	// Refreshed means an existing edge moved to a newer timestamp.
	Refreshed
	// Stale means an existing edge already carried the same or a newer timestamp.
	Stale
	// SelfLoop means both parties were the same node, no edge was recorded.
	SelfLoop
	// Late means the event was older than the window and was ignored.
	Late
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case Refreshed:
		return "refreshed"
	case Stale:
		return "stale"
	case SelfLoop:
		return "self_loop"
	case Late:
		return "late"
	default:
		return "unknown"
	}
}

// Result is the outcome of processing one event.
type Result struct {
	Outcome Outcome
	// Median is the formatted median to emit for the event.
	Median string
	// Advanced is true if the event moved the window forward.
	Advanced bool
	// Evicted is the number of edges that fell out of the window.
	Evicted int
}

// Controller maintains the live graph of one window and its degree median.
// It is not safe for concurrent use, events must be processed one at a time in input order.
type Controller struct {
	window     Window
	edges      *graph.EdgeIndex
	times      *graph.TimeIndex
	degrees    *degree.Tracker
	lastMedian string
	opts       options
}

// NewController returns a Controller with an empty window.
func NewController(opts ...Option) (*Controller, error) {
	o := defaultOptions()
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return &Controller{
		edges:      graph.NewEdgeIndex(),
		times:      graph.NewTimeIndex(),
		degrees:    degree.NewTracker(),
		lastMedian: median.Zero,
		opts:       *o,
	}, nil
}

// Process applies one event and returns the median to emit for it.
// An error means the internal state can no longer be trusted.
func (c *Controller) Process(ev event.Event) (Result, error) {
	if c.window.IsLate(ev.Time) {
		eventsProcessed.WithLabelValues(Late.String()).Inc()
		return Result{Outcome: Late, Median: c.lastMedian}, nil
	}

	res := Result{Outcome: c.admit(ev)}
	eventsProcessed.WithLabelValues(res.Outcome.String()).Inc()

	if c.window.Advance(ev.Time) {
		res.Advanced = true
		windowMax.Set(float64(c.window.Max))
		evicted, err := c.evict()
		if err != nil {
			return Result{}, err
		}
		res.Evicted = evicted
	}

	if lo, hi, ok := c.degrees.Median(); ok {
		c.lastMedian = median.Format(lo, hi)
	} else {
		c.lastMedian = median.Zero
	}
	res.Median = c.lastMedian

	liveEdges.Set(float64(c.edges.Len()))
	liveNodes.Set(float64(c.degrees.Len()))

	if c.opts.verify {
		if err := c.Verify(); err != nil {
			return Result{}, err
		}
	}
	return res, nil
}

// admit inserts or refreshes the edge of an event that is not late.
func (c *Controller) admit(ev event.Event) Outcome {
	e := ev.Edge
	if e.IsSelfLoop() {
		return SelfLoop
	}
	prev, ok := c.edges.Get(e)
	if !ok {
		c.edges.Put(e, ev.Time)
		c.times.Add(ev.Time, e)
		for _, n := range e.Nodes() {
			c.degrees.Increment(n)
		}
		return Added
	}
	if ev.Time <= prev {
		return Stale
	}
	c.times.Move(e, prev, ev.Time)
	c.edges.Put(e, ev.Time)
	return Refreshed
}

// evict drops every edge older than the start of the window.
func (c *Controller) evict() (int, error) {
	expired := c.times.Expire(c.window.Min)
	for _, e := range expired {
		if !c.edges.Delete(e) {
			return 0, fmt.Errorf("%w: evicted edge %s is not indexed", ErrInconsistentState, e)
		}
		for _, n := range e.Nodes() {
			if _, err := c.degrees.Decrement(n); err != nil {
				return 0, fmt.Errorf("%w: evicting edge %s: %v", ErrInconsistentState, e, err)
			}
		}
	}
	if len(expired) > 0 {
		edgesEvicted.Add(float64(len(expired)))
		c.opts.logger.Debugw("Evicted stale edges", zap.Int("count", len(expired)), zap.Stringer("window", c.window))
	}
	return len(expired), nil
}

// Verify recomputes the degree of every node from the live edges and compares the result with the
// tracked state. All mismatches are reported.
func (c *Controller) Verify() error {
	var err error
	expected := make(map[string]int)
	c.edges.Range(func(e event.Edge, ts int64) bool {
		if !c.window.Contains(ts) {
			err = multierr.Append(err, fmt.Errorf("%w: edge %s at %d outside window %s", ErrInconsistentState, e, ts, c.window))
		}
		if !c.times.Contains(ts, e) {
			err = multierr.Append(err, fmt.Errorf("%w: edge %s missing from bucket %d", ErrInconsistentState, e, ts))
		}
		for _, n := range e.Nodes() {
			expected[n]++
		}
		return true
	})
	if c.times.Len() != c.edges.Len() {
		err = multierr.Append(err, fmt.Errorf("%w: time index holds %d edges, edge index %d", ErrInconsistentState, c.times.Len(), c.edges.Len()))
	}

	actual := c.degrees.Degrees()
	for n, d := range expected {
		if actual[n] != d {
			err = multierr.Append(err, fmt.Errorf("%w: node %q has degree %d, expected %d", ErrInconsistentState, n, actual[n], d))
		}
	}
	for n, d := range actual {
		if _, ok := expected[n]; !ok {
			err = multierr.Append(err, fmt.Errorf("%w: node %q has degree %d but no live edges", ErrInconsistentState, n, d))
		}
	}
	want := make([]int, 0, len(expected))
	for _, d := range expected {
		want = append(want, d)
	}
	slices.Sort(want)
	if got := c.degrees.Values(); !slices.Equal(got, want) {
		err = multierr.Append(err, fmt.Errorf("%w: degree multiset holds %v, expected %v", ErrInconsistentState, got, want))
	}
	return err
}

// Window returns the current window bounds.
func (c *Controller) Window() Window {
	return c.window
}

// LastMedian returns the most recently emitted median.
func (c *Controller) LastMedian() string {
	return c.lastMedian
}

// EdgeTime returns the timestamp of a live edge.
func (c *Controller) EdgeTime(e event.Edge) (int64, bool) {
	return c.edges.Get(e)
}

// Edges returns the number of live edges.
func (c *Controller) Edges() int {
	return c.edges.Len()
}

// Degrees returns a copy of the live node degrees.
func (c *Controller) Degrees() map[string]int {
	return c.degrees.Degrees()
}
