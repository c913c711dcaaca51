// Copyright 2025 NetApp, Inc. All Rights Reserved.

package azgo

import (
	"strings"

	"github.com/netapp/ontap-client/utils/errors"
)

// ZAPI errno values the client classifies.
const (
	EINTERNALERROR   = "13001"
	EAPIPRIVILEGE    = "13003"
	EAPINOTFOUND     = "13005"
	EVSERVERNOTFOUND = "15698"
)

const (
	StatusPassed = "passed"
	StatusFailed = "failed"

	msgInsufficientPrivileges = "Insufficient privileges:"
	msgNoWriteAccess          = "does not have write access"
	msgMissingVserverParam    = "Vserver API missing vserver parameter."
	msgVserverNotFound        = "Specified vserver not found"
	msgUnableToFindAPI        = "Unable to find API"
)

// ClassifyZapiError maps a ZAPI errno and reason to an endpoint error class.
func ClassifyZapiError(code, reason string) errors.EndpointClass {
	switch {
	case code == EAPIPRIVILEGE && strings.HasPrefix(reason, msgInsufficientPrivileges) &&
		strings.Contains(reason, msgNoWriteAccess):
		return errors.EndpointPermission
	case code == EAPINOTFOUND && strings.HasPrefix(reason, msgMissingVserverParam):
		return errors.EndpointMissingVserver
	case code == EVSERVERNOTFOUND && strings.HasPrefix(reason, msgVserverNotFound):
		return errors.EndpointMissingVserver
	case code == EAPINOTFOUND && strings.HasPrefix(reason, msgUnableToFindAPI):
		return errors.EndpointAPINotFound
	case code == EAPIPRIVILEGE:
		return errors.EndpointPermission
	default:
		return errors.EndpointOther
	}
}

// GetResults returns the <results> element of a parsed envelope, or an EndpointError if ONTAP reported a
// failure.
func GetResults(envelope *NaElement) (*NaElement, error) {
	if envelope == nil {
		return nil, errors.TransportError(errors.TransportMalformed, 0, "empty ZAPI response")
	}

	results := envelope
	if envelope.Name() != "results" {
		results = envelope.ChildGetElement("results")
	}
	if results == nil {
		return nil, errors.TransportError(errors.TransportMalformed, 0,
			"ZAPI response has no results element")
	}

	if status := results.GetAttr("status"); status != StatusPassed {
		code := results.GetAttr("errno")
		reason := results.GetAttr("reason")
		if reason == "" {
			reason = "API status: " + status
		}
		return results, errors.EndpointError(ClassifyZapiError(code, reason), code, 0, reason)
	}

	return results, nil
}
