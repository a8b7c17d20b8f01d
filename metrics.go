// SPDX-FileCopyrightText: 2025 Comcast Cable Communications Management, LLC
// SPDX-License-Identifier: Apache-2.0

package envlock

// Adder represents a metric to which deltas can be added.  Go-kit's
// metrics.Counter and metrics.Gauge, as well as several prometheus
// interfaces, implement this interface.
type Adder interface {
	Add(float64)
}

// Setter represents a metric that can receive updates, e.g. a gauge.
// Go-kit's metrics.Gauge and prometheus gauges implement this interface.
type Setter interface {
	Set(float64)
}

// Observer is a type of metric which receives observations.  Histograms and
// summaries implement this interface.
type Observer interface {
	Observe(float64)
}
