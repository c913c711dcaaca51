// Copyright 2025 NetApp, Inc. All Rights Reserved.

package errors

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"

	"go.uber.org/multierr"
)

// ///////////////////////////////////////////////////////////////////////////
// Wrappers for standard library errors package
// ///////////////////////////////////////////////////////////////////////////

func New(message string) error {
	return errors.New(message)
}

func Is(err, target error) bool {
	return errors.Is(err, target)
}

func As(err error, target any) bool {
	return errors.As(err, target)
}

func Unwrap(err error) error {
	return errors.Unwrap(err)
}

func Join(errs ...error) error {
	return errors.Join(errs...)
}

// ///////////////////////////////////////////////////////////////////////////
// configError
// ///////////////////////////////////////////////////////////////////////////

type configError struct {
	inner   error
	message string
}

func (e *configError) Error() string {
	if e.inner == nil || e.inner.Error() == "" {
		return e.message
	} else if e.message == "" {
		return e.inner.Error()
	}
	return fmt.Sprintf("%v; %v", e.message, e.inner.Error())
}

func (e *configError) Unwrap() error { return e.inner }

// ConfigError reports invalid or contradictory client construction parameters.  These are always fatal.
func ConfigError(message string, a ...any) error {
	if len(a) == 0 {
		return &configError{message: message}
	}
	return &configError{message: fmt.Sprintf(message, a...)}
}

func WrapWithConfigError(err error, message string, a ...any) error {
	return &configError{
		inner:   err,
		message: fmt.Sprintf(message, a...),
	}
}

// CombineConfigErrors folds any number of validation failures into a single ConfigError, or nil if there are none.
func CombineConfigErrors(errs ...error) error {
	combined := multierr.Combine(errs...)
	if combined == nil {
		return nil
	}
	if len(multierr.Errors(combined)) == 1 && IsConfigError(combined) {
		return combined
	}
	return &configError{inner: combined, message: "invalid client configuration"}
}

func IsConfigError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *configError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// transportError
// ///////////////////////////////////////////////////////////////////////////

type TransportCategory string

const (
	TransportConnection   TransportCategory = "connection"
	TransportUnauthorized TransportCategory = "unauthorized"
	TransportMalformed    TransportCategory = "malformed"
	TransportHTTP         TransportCategory = "http"
	TransportOther        TransportCategory = "other"
)

type transportError struct {
	inner      error
	message    string
	category   TransportCategory
	statusCode int
}

func (e *transportError) Error() string {
	if e.inner == nil || e.inner.Error() == "" {
		return e.message
	} else if e.message == "" {
		return e.inner.Error()
	}
	return fmt.Sprintf("%v; %v", e.message, e.inner.Error())
}

func (e *transportError) Unwrap() error { return e.inner }

func (e *transportError) Category() TransportCategory { return e.category }

func (e *transportError) StatusCode() int { return e.statusCode }

// TransportError reports a failure below the appliance API: connection refused, TLS failure, HTTP error
// without a structured body, or a response that could not be parsed.
func TransportError(category TransportCategory, statusCode int, message string, a ...any) error {
	if len(a) > 0 {
		message = fmt.Sprintf(message, a...)
	}
	return &transportError{message: message, category: category, statusCode: statusCode}
}

func WrapWithTransportError(
	err error, category TransportCategory, statusCode int, message string, a ...any,
) error {
	return &transportError{
		inner:      err,
		message:    fmt.Sprintf(message, a...),
		category:   category,
		statusCode: statusCode,
	}
}

func IsTransportError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *transportError
	return errors.As(err, &errPtr)
}

// GetTransportCategory returns the category of a TransportError, or an empty category if err is not one.
func GetTransportCategory(err error) TransportCategory {
	var errPtr *transportError
	if errors.As(err, &errPtr) {
		return errPtr.category
	}
	return ""
}

// ClassifyRequestError wraps an error returned by an HTTP round trip as a TransportError.  Dial, DNS and
// timeout failures are connection errors; anything else, such as a TLS handshake failure, is other.
func ClassifyRequestError(err error) error {
	if err == nil {
		return nil
	}

	var opErr *net.OpError
	var dnsErr *net.DNSError
	var netErr net.Error
	var tlsErr tls.RecordHeaderError
	switch {
	case errors.As(err, &tlsErr):
		return WrapWithTransportError(err, TransportOther, 0, "Other error")
	case errors.As(err, &opErr), errors.As(err, &dnsErr):
		return WrapWithTransportError(err, TransportConnection, 0, "Connection error")
	case errors.As(err, &netErr) && netErr.Timeout(), errors.Is(err, context.DeadlineExceeded):
		return WrapWithTransportError(err, TransportConnection, 0, "Connection error")
	default:
		return WrapWithTransportError(err, TransportOther, 0, "Other error")
	}
}

// ///////////////////////////////////////////////////////////////////////////
// endpointError
// ///////////////////////////////////////////////////////////////////////////

type EndpointClass string

const (
	EndpointConnection     EndpointClass = "connection"
	EndpointPermission     EndpointClass = "permission"
	EndpointMissingVserver EndpointClass = "missing_vserver"
	EndpointAPINotFound    EndpointClass = "api_not_found"
	EndpointOther          EndpointClass = "other"
)

type endpointError struct {
	message    string
	code       string
	class      EndpointClass
	statusCode int
}

func (e *endpointError) Error() string {
	if e.code == "" {
		return e.message
	}
	return fmt.Sprintf("%s (code %s)", e.message, e.code)
}

func (e *endpointError) Message() string { return e.message }

func (e *endpointError) Code() string { return e.code }

func (e *endpointError) Class() EndpointClass { return e.class }

func (e *endpointError) StatusCode() int { return e.statusCode }

// EndpointError reports an error the appliance itself returned in a structured form.
func EndpointError(class EndpointClass, code string, statusCode int, message string, a ...any) error {
	if len(a) > 0 {
		message = fmt.Sprintf(message, a...)
	}
	if class == "" {
		class = EndpointOther
	}
	return &endpointError{message: message, code: code, class: class, statusCode: statusCode}
}

func IsEndpointError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *endpointError
	return errors.As(err, &errPtr)
}

// EndpointErrorDetails returns the message, code and class of an EndpointError.  ok is false if err is not one.
func EndpointErrorDetails(err error) (message, code string, class EndpointClass, ok bool) {
	var errPtr *endpointError
	if errors.As(err, &errPtr) {
		return errPtr.message, errPtr.code, errPtr.class, true
	}
	return "", "", "", false
}

// ///////////////////////////////////////////////////////////////////////////
// timeoutError
// ///////////////////////////////////////////////////////////////////////////

type timeoutError struct {
	message string
}

func (e *timeoutError) Error() string { return e.message }

// TimeoutError means the client stopped waiting, not that the awaited operation failed.
func TimeoutError(message string, a ...any) error {
	if len(a) == 0 {
		return &timeoutError{message: message}
	}
	return &timeoutError{message: fmt.Sprintf(message, a...)}
}

func IsTimeoutError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *timeoutError
	return errors.As(err, &errPtr)
}

// ///////////////////////////////////////////////////////////////////////////
// unsupportedError
// ///////////////////////////////////////////////////////////////////////////

type unsupportedError struct {
	message string
}

func (e *unsupportedError) Error() string { return e.message }

func UnsupportedError(message string, a ...any) error {
	if len(a) == 0 {
		return &unsupportedError{message: message}
	}
	return &unsupportedError{message: fmt.Sprintf(message, a...)}
}

func IsUnsupportedError(err error) bool {
	if err == nil {
		return false
	}
	var errPtr *unsupportedError
	return errors.As(err, &errPtr)
}
