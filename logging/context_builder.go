// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import "context"

type ContextRequestTarget string

const (
	ContextRequestTargetUnknown ContextRequestTarget = "unknown"
	ContextRequestTargetONTAP   ContextRequestTarget = "ontap"

	contextKeyRequestTarget  ContextKey = "requestTarget"
	contextKeyRequestAddress ContextKey = "requestAddress"
	contextKeyRequestMethod  ContextKey = "requestMethod"

	unknownLabelValue = "unknown"
)

// ContextBuilder accumulates the request labels used by telemeters.
type ContextBuilder struct {
	ctx        context.Context
	telemeters []Telemeter
}

func NewContextBuilder(ctx context.Context) *ContextBuilder {
	if ctx == nil {
		ctx = context.Background()
	}
	return &ContextBuilder{ctx: ctx}
}

func (b *ContextBuilder) WithTarget(target ContextRequestTarget) *ContextBuilder {
	b.ctx = setContextTarget(b.ctx, target)
	return b
}

func (b *ContextBuilder) WithAddress(address string) *ContextBuilder {
	b.ctx = context.WithValue(b.ctx, contextKeyRequestAddress, address)
	return b
}

func (b *ContextBuilder) WithMethod(method string) *ContextBuilder {
	b.ctx = context.WithValue(b.ctx, contextKeyRequestMethod, method)
	return b
}

func (b *ContextBuilder) WithTelemetry(telemeters ...Telemeter) *ContextBuilder {
	b.telemeters = append(b.telemeters, telemeters...)
	return b
}

func (b *ContextBuilder) BuildContext() context.Context {
	return b.ctx
}

// BuildContextAndTelemetry starts every staged telemeter and returns a single Recorder that finishes them all.
func (b *ContextBuilder) BuildContextAndTelemetry() (context.Context, Recorder) {
	recorders := make([]Recorder, 0, len(b.telemeters))
	for _, telemeter := range b.telemeters {
		recorders = append(recorders, telemeter(b.ctx))
	}
	return b.ctx, func(err *error) {
		for _, rec := range recorders {
			rec(err)
		}
	}
}

func setContextTarget(ctx context.Context, target ContextRequestTarget) context.Context {
	return context.WithValue(ctx, contextKeyRequestTarget, target)
}

func getContextTarget(ctx context.Context) string {
	if target, ok := ctx.Value(contextKeyRequestTarget).(ContextRequestTarget); ok && target != "" {
		return string(target)
	}
	return string(ContextRequestTargetUnknown)
}

func getContextAddress(ctx context.Context) string {
	if address, ok := ctx.Value(contextKeyRequestAddress).(string); ok && address != "" {
		return address
	}
	return unknownLabelValue
}

func getContextMethod(ctx context.Context) string {
	if method, ok := ctx.Value(contextKeyRequestMethod).(string); ok && method != "" {
		return method
	}
	return unknownLabelValue
}
