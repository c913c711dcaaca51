// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"net/http"
)

// MetricsTransport is an HTTP transport that records metrics for outgoing requests.
// The target must be set based on the HTTP client when initializing this transport.
type MetricsTransport struct {
	base       http.RoundTripper
	target     ContextRequestTarget
	telemeters []Telemeter
}

type MetricsTransportOption func(*MetricsTransport)

func WithMetricsTransportTarget(target ContextRequestTarget) MetricsTransportOption {
	return func(m *MetricsTransport) {
		if target == "" {
			return
		}
		m.target = target
	}
}

func WithMetricsTransportTelemeters(telemeters ...Telemeter) MetricsTransportOption {
	return func(m *MetricsTransport) {
		if telemeters == nil {
			return
		}
		m.telemeters = telemeters
	}
}

// NewMetricsTransport creates a new MetricsTransport with the given options.
// If no options are provided, it defaults the target to ContextRequestTargetUnknown
// and telemeters to all outgoing request telemeters.  A nil base uses http.DefaultTransport.
func NewMetricsTransport(
	base http.RoundTripper, options ...MetricsTransportOption,
) http.RoundTripper {
	if base == nil {
		base = http.DefaultTransport
	}
	transport := &MetricsTransport{
		base:   base,
		target: ContextRequestTargetUnknown,
		telemeters: []Telemeter{
			OutgoingAPIRequestDurationTelemeter,
			OutgoingAPIRequestInFlightTelemeter,
		},
	}
	for _, option := range options {
		option(transport)
	}
	return transport
}

func (m *MetricsTransport) RoundTrip(req *http.Request) (res *http.Response, err error) {
	ctx, rec := NewContextBuilder(req.Context()).
		WithTarget(m.target).      // "ontap"
		WithAddress(req.URL.Host). // IP Address
		WithMethod(req.Method).    // GET, POST, etc.
		WithTelemetry(m.telemeters...).
		BuildContextAndTelemetry()
	defer rec(&err)

	req = req.WithContext(ctx)
	return m.base.RoundTrip(req)
}
