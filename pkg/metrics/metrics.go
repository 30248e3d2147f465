// Copyright 2026 CareConnect Team
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package metrics holds the Prometheus collectors exposed on /metrics.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// WebhookEventsTotal counts inbound signing provider events by type
	// and outcome (applied, unmatched, unknown, error).
	WebhookEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "webhook_events_total",
			Help: "Total number of inbound e-signature webhook events",
		},
		[]string{"event_type", "outcome"},
	)

	// JobRunsTotal counts scheduled maintenance job runs.
	JobRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scheduled_job_runs_total",
			Help: "Total number of scheduled job runs",
		},
		[]string{"job_name", "status"},
	)

	// JobRunDurationSeconds measures scheduled job run time.
	JobRunDurationSeconds = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scheduled_job_run_duration_seconds",
			Help:    "Duration of scheduled job runs in seconds",
			Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
		},
		[]string{"job_name"},
	)

	// DashboardSubscribers tracks connected realtime subscribers.
	DashboardSubscribers = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "dashboard_subscribers",
			Help: "Number of connected realtime dashboard subscribers",
		},
	)
)

var registerOnce sync.Once

// Register adds every collector to the default registry. Safe to call
// more than once.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			WebhookEventsTotal,
			JobRunsTotal,
			JobRunDurationSeconds,
			DashboardSubscribers,
		)
	})
}
