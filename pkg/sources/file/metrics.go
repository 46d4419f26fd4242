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

package file

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/numaproj/rollingmedian/pkg/metrics"
)

// readLines is used to indicate the number of lines read from the source
var readLines = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "source",
	Name:      "read_total",
	Help:      "Total number of lines read",
}, []string{metrics.LabelName})

// readBytes is used to indicate the number of bytes read from the source
var readBytes = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "source",
	Name:      "read_bytes_total",
	Help:      "Total number of bytes read",
}, []string{metrics.LabelName})

// readErrors is used to indicate the number of read errors
var readErrors = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "source",
	Name:      "read_error_total",
	Help:      "Total number of read errors",
}, []string{metrics.LabelName})
