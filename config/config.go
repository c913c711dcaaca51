// Copyright 2025 NetApp, Inc. All Rights Reserved.

package config

import (
	"crypto/tls"
	"fmt"
	"time"
)

const (
	/* Misc. client constants */
	ClientAppName = "ontap-client"
	clientVersion = "21.1.0"

	// ClientAppHeader identifies the calling module and this library to ONTAP.
	ClientAppHeader = "X-Dot-Client-App"
	SVMNameHeader   = "X-Dot-SVM-Name"
	SVMUUIDHeader   = "X-Dot-SVM-UUID"

	/* Transport constants */
	DefaultHTTPPort          = 80
	DefaultHTTPSPort         = 443
	StorageAPITimeoutSeconds = 60
	RESTAPIRoot              = "/api/"
	ZAPIServletPath          = "/servlets/netapp.servlets.admin.XMLrequest_filer"
	ZAPINamespace            = "http://www.netapp.com/filer/admin"
	ZAPIMajorVersion         = 1
	DefaultZAPIMinorVersion  = 110

	/* Job polling constants */
	DefaultJobTimeout      = 600 * time.Second
	DefaultJobPollInterval = 60 * time.Second
	MaxJobPollRetries      = 3

	/* Debug-only diagnostic files */
	DiagnosticLogPath = "/tmp/ontap_log"
	APITraceLogPath   = "/tmp/ontap_apis.log"
)

var (
	// BuildHash is the git hash the binary was built from
	BuildHash = "unknown"

	// BuildType is the type of build: custom, beta or stable
	BuildType = "custom"

	// BuildTypeRev is the revision of the build
	BuildTypeRev = "0"

	// BuildTime is the time the binary was built
	BuildTime = "unknown"

	MinTLSVersion uint16 = tls.VersionTLS12

	ClientVersion = version()
)

func version() string {
	var version string

	if BuildType != "stable" {
		if BuildType == "custom" {
			version = fmt.Sprintf("%v-%v+%v", clientVersion, BuildType, BuildHash)
		} else {
			version = fmt.Sprintf("%v-%v.%v+%v", clientVersion, BuildType, BuildTypeRev, BuildHash)
		}
	} else {
		version = clientVersion
	}

	return version
}

// ClientAppHeaderValue builds the client identification header value for a caller.
func ClientAppHeaderValue(callerName string) string {
	if callerName == "" {
		callerName = ClientAppName
	}
	return fmt.Sprintf("%s/%s", callerName, ClientVersion)
}
