// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"fmt"
	"strings"

	"github.com/netapp/ontap-client/storage_drivers/ontap/api/azgo"
	"github.com/netapp/ontap-client/utils/errors"
)

// ///////////////////////////////////////////////////////////////////////////
// REST error codes
// ///////////////////////////////////////////////////////////////////////////
const (
	ENTRY_DOESNT_EXIST = "4"
	DUPLICATE_ENTRY    = "1"
	API_NOT_FOUND      = "3"
)

// Legacy message prefixes that identify connection failures when no structured category is available.
var connectionErrorPrefixes = []string{"URLError", "Unauthorized"}

func classifyRESTError(code, message string) errors.EndpointClass {
	switch {
	case code == API_NOT_FOUND || strings.Contains(message, "API not found"):
		return errors.EndpointAPINotFound
	case strings.Contains(message, "not authorized") || strings.Contains(message, "does not have write access"):
		return errors.EndpointPermission
	default:
		return errors.EndpointOther
	}
}

// IsConnectionError reports whether err means ONTAP could not be reached.  HTTP 401 counts as a connection
// error because callers treat both the same way when choosing a transport; use IsUnauthorizedError to tell
// them apart.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	switch errors.GetTransportCategory(err) {
	case errors.TransportConnection, errors.TransportUnauthorized:
		return true
	}
	if _, _, class, ok := errors.EndpointErrorDetails(err); ok {
		return class == errors.EndpointConnection
	}
	message := err.Error()
	for _, prefix := range connectionErrorPrefixes {
		if strings.HasPrefix(message, prefix) {
			return true
		}
	}
	return false
}

// IsUnauthorizedError reports whether ONTAP rejected the credentials.
func IsUnauthorizedError(err error) bool {
	return errors.GetTransportCategory(err) == errors.TransportUnauthorized
}

// IsWriteAccessError reports whether ONTAP refused a change because the user lacks write access.
func IsWriteAccessError(err error) bool {
	message, code, class, ok := errors.EndpointErrorDetails(err)
	if !ok {
		return false
	}
	if class == errors.EndpointPermission && strings.Contains(message, "does not have write access") {
		return true
	}
	return code == azgo.EAPIPRIVILEGE && strings.HasPrefix(message, "Insufficient privileges:") &&
		strings.Contains(message, "does not have write access")
}

// IsMissingVserverError reports whether a vserver-scoped API was called without a vserver or with an unknown
// one.
func IsMissingVserverError(err error) bool {
	_, _, class, ok := errors.EndpointErrorDetails(err)
	return ok && class == errors.EndpointMissingVserver
}

// IsAPINotFoundError reports whether the requested API does not exist on this ONTAP release.
func IsAPINotFoundError(err error) bool {
	_, _, class, ok := errors.EndpointErrorDetails(err)
	return ok && class == errors.EndpointAPINotFound
}

// IsEntryNotFoundError reports whether a REST call referenced an object that does not exist.
func IsEntryNotFoundError(err error) bool {
	_, code, _, ok := errors.EndpointErrorDetails(err)
	return ok && code == ENTRY_DOESNT_EXIST
}

// ///////////////////////////////////////////////////////////////////////////
// ZapiError
// ///////////////////////////////////////////////////////////////////////////

type ZapiError struct {
	status string
	reason string
	code   string
}

func (e ZapiError) IsPassed() bool {
	return e.status == azgo.StatusPassed
}

func (e ZapiError) Error() string {
	if e.IsPassed() {
		return "API status: passed"
	}
	return fmt.Sprintf("API status: %s, Reason: %s, Code: %s", e.status, e.reason, e.code)
}

func (e ZapiError) IsPrivilegeError() bool {
	return e.code == azgo.EAPIPRIVILEGE
}

func (e ZapiError) IsScopeError() bool {
	return e.code == azgo.EAPIPRIVILEGE || e.code == azgo.EAPINOTFOUND
}

func (e ZapiError) IsFailedToLoadJobError() bool {
	return e.code == azgo.EINTERNALERROR && strings.Contains(e.reason, "Failed to load job")
}

func (e ZapiError) Reason() string {
	return e.reason
}

func (e ZapiError) Code() string {
	return e.code
}
