/*
Copyright 2024 The Rollproj Authors.

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

package engine

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/rollproj/rollwin/pkg/metrics"
)

// eventsCount is used to indicate the number of events processed
var eventsCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "engine",
	Name:      "events_total",
	Help:      "Total number of events processed",
}, []string{metrics.LabelEngine, metrics.LabelTransform})

// eventsRejectedCount is used to indicate the number of events rejected
var eventsRejectedCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "engine",
	Name:      "events_rejected_total",
	Help:      "Total number of events rejected, labeled by reason",
}, []string{metrics.LabelEngine, metrics.LabelTransform, metrics.LabelReason})

// invocationsCount is used to indicate the number of transform invocations
var invocationsCount = promauto.NewCounterVec(prometheus.CounterOpts{
	Subsystem: "engine",
	Name:      "invocations_total",
	Help:      "Total number of transform invocations",
}, []string{metrics.LabelEngine, metrics.LabelTransform})

// retainedSlots is used to indicate the number of slots currently retained
var retainedSlots = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Subsystem: "engine",
	Name:      "retained_slots",
	Help:      "Number of period slots currently retained by the window buffer",
}, []string{metrics.LabelEngine, metrics.LabelTransform})

// invokeTime is used to indicate the time taken by one materialize+invoke cycle
var invokeTime = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Subsystem: "engine",
	Name:      "invoke_time",
	Help:      "Processing time of one materialize and invoke cycle (microseconds)",
	Buckets:   prometheus.ExponentialBucketsRange(100, 60000000, 10),
}, []string{metrics.LabelEngine, metrics.LabelTransform})
