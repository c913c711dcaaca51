// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"context"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/netapp/ontap-client/config"
)

const (
	metricNamespace = "ontap_client"

	metricStatusSuccess          = "success"
	metricStatusFailure          = "failure"
	metricStatusCanceled         = "canceled"
	metricStatusDeadlineExceeded = "deadline_exceeded"
)

type (
	// Recorder records metrics by relying on a captured context and errors that have been staged by the Telemeter.
	Recorder func(err *error)
	// Telemeter stages metrics recording by capturing the current state of a context and returns a Recorder.
	Telemeter func(context.Context) Recorder
)

var (
	outgoingAPIRequestSharedLabels = []string{"target", "address", "method"}
	// outgoingAPIRequestDurationSeconds tracks the duration of outgoing API requests.
	// i.e. "How long are calls to the appliance taking?"
	outgoingAPIRequestDurationSeconds = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: metricNamespace,
			Subsystem: "outgoing_api",
			Name:      "request_duration_seconds",
			Help:      "Duration of calls to appliance APIs from start to finish.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, config.StorageAPITimeoutSeconds},
		},
		append([]string{"status"}, outgoingAPIRequestSharedLabels...),
	)
	// outgoingAPIRequestsInFlight tracks the number of in-flight outgoing API requests.
	outgoingAPIRequestsInFlight = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: metricNamespace,
			Subsystem: "outgoing_api",
			Name:      "requests_in_flight",
			Help:      "Number of in-flight appliance API requests.",
		},
		outgoingAPIRequestSharedLabels,
	)

	// Compile time safety; every telemeter must conform to the Telemeter type.
	_ Telemeter = OutgoingAPIRequestDurationTelemeter
	_ Telemeter = OutgoingAPIRequestInFlightTelemeter
)

// OutgoingAPIRequestDurationTelemeter creates a Telemeter for measuring how long outgoing API requests take.
// The returned Recorder captures a context to update metrics.
func OutgoingAPIRequestDurationTelemeter(ctx context.Context) Recorder {
	status := metricStatusSuccess
	values := []string{
		getContextTarget(ctx),
		getContextAddress(ctx),
		getContextMethod(ctx),
	}

	startTime := time.Now()
	var once sync.Once
	return func(errPtr *error) {
		once.Do(func() {
			elapsed := time.Since(startTime).Seconds()

			if errPtr != nil && *errPtr != nil {
				status = metricStatusFailure
			}
			if ctxErr := ctx.Err(); ctxErr != nil {
				switch ctxErr {
				case context.Canceled:
					status = metricStatusCanceled
				case context.DeadlineExceeded:
					status = metricStatusDeadlineExceeded
				}
			}

			values = append([]string{status}, values...)
			outgoingAPIRequestDurationSeconds.WithLabelValues(values...).Observe(elapsed)
		})
	}
}

// OutgoingAPIRequestInFlightTelemeter creates a Telemeter for gauging outgoing API requests.
// The returned Recorder captures a context to update metrics.
func OutgoingAPIRequestInFlightTelemeter(ctx context.Context) Recorder {
	values := []string{
		getContextTarget(ctx),
		getContextAddress(ctx),
		getContextMethod(ctx),
	}

	outgoingAPIRequestsInFlight.WithLabelValues(values...).Inc()
	var once sync.Once
	return func(_ *error) {
		once.Do(func() {
			outgoingAPIRequestsInFlight.WithLabelValues(values...).Dec()
		})
	}
}
