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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/numaproj/rollingmedian/pkg/metrics"
)

// eventsProcessed counts events by what they did to the graph.
var eventsProcessed = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "window",
	Name:      "events_total",
	Help:      "Total number of events processed by the window controller",
}, []string{metrics.LabelOutcome})

// edgesEvicted counts edges that fell out of the window.
var edgesEvicted = promauto.NewCounter(prometheus.CounterOpts{
	Subsystem: "window",
	Name:      "evicted_edges_total",
	Help:      "Total number of edges evicted from the window",
})

var liveEdges = promauto.NewGauge(prometheus.GaugeOpts{
	Subsystem: "window",
	Name:      "live_edges",
	Help:      "Number of edges inside the window",
})

var liveNodes = promauto.NewGauge(prometheus.GaugeOpts{
	Subsystem: "window",
	Name:      "live_nodes",
	Help:      "Number of nodes with at least one edge inside the window",
})

var windowMax = promauto.NewGauge(prometheus.GaugeOpts{
	Subsystem: "window",
	Name:      "max_timestamp_seconds",
	Help:      "Largest event timestamp seen so far, in seconds since the Unix epoch",
})
