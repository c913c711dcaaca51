// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/netapp/ontap-client/storage_drivers/ontap/api/azgo"
)

// ApplianceClient is the call surface shared by REST and ZAPI callers.
type ApplianceClient interface {
	AuthMethod() AuthMethod
	DetectVersion(ctx context.Context) VersionInfo
	ShouldUseRest(ctx context.Context, unsupportedOptions []string) (bool, error)

	BuildHeaders(accept, svmName, svmUUID string) http.Header
	Invoke(ctx context.Context, method, resourcePath string, params url.Values, body interface{}) (*CallResult, error)
	InvokeWithHeaders(
		ctx context.Context, method, resourcePath string, params url.Values, body interface{}, headers http.Header,
	) (*CallResult, error)
	InvokeZAPI(ctx context.Context, request *azgo.NaElement) (*azgo.NaElement, error)

	GetJob(ctx context.Context, handle JobHandle) (*Job, error)
	WaitOnJob(ctx context.Context, handle JobHandle, timeout, interval time.Duration) (string, error)

	Errors() []string
	RestError() string
	WriteErrorsToFile(tag, path string, appendMode bool) error
	WriteDebugLogToFile(tag, path string, appendMode bool) error
}

var _ ApplianceClient = &Client{}
