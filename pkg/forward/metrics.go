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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/numaproj/rollingmedian/pkg/metrics"
)

// droppedRecords is used to indicate the number of records rejected by the normalizer
var droppedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "forwarder",
	Name:      "drop_total",
	Help:      "Total number of records dropped because they could not be parsed",
}, []string{metrics.LabelReason})

// emittedMedians is used to indicate the number of medians written
var emittedMedians = promauto.NewCounter(prometheus.CounterOpts{
	Subsystem: "forwarder",
	Name:      "emit_total",
	Help:      "Total number of medians emitted",
})

// processingTime is a histogram to observe per record processing latency
var processingTime = promauto.NewHistogram(prometheus.HistogramOpts{
	Subsystem: "forwarder",
	Name:      "processing_time",
	Help:      "Processing times of a single record (1 microsecond to 1 second)",
	Buckets:   prometheus.ExponentialBucketsRange(1, 1000000, 10),
})
