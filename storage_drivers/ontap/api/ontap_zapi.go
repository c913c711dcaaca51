// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"

	. "github.com/netapp/ontap-client/logging"
	"github.com/netapp/ontap-client/storage_drivers/ontap/api/azgo"
)

// InvokeZAPI wraps the request in a netapp envelope, posts it to the ZAPI servlet and returns the <results>
// element.  A failed results status is returned as an EndpointError together with the element.
func (c *Client) InvokeZAPI(ctx context.Context, request *azgo.NaElement) (*azgo.NaElement, error) {
	ctx = WithWorkflow(ctx, WorkflowZAPIInvoke, LogLayerOntapZAPI)

	sanitize := azgo.SanitizeOptions{}
	if c.flags.Bool(FeatureAlwaysWrapZAPI) {
		sanitize.Enabled = c.flags.Bool(FeatureSanitizeXML)
		sanitize.CodePoints = c.flags.IntSlice(FeatureSanitizeCodePoints)
	}

	results, err := c.zr.ExecuteZapi(ctx, request, sanitize)
	if err != nil {
		return results, c.recordError(ctx, 0, err)
	}

	if output, xmlErr := results.ToXML(); xmlErr == nil {
		c.logDebug(ctx, 200, output)
	}
	return results, nil
}

// NewZapiError accepts a <results> element and returns its status, reason and errno as a ZapiError.
func NewZapiError(results *azgo.NaElement) ZapiError {
	if results == nil {
		return ZapiError{}
	}
	return ZapiError{
		status: results.GetAttr("status"),
		reason: results.GetAttr("reason"),
		code:   results.GetAttr("errno"),
	}
}
