// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

//go:generate mockgen -destination=../../../mocks/mock_storage_drivers/mock_ontap/mock_api.go github.com/netapp/ontap-client/storage_drivers/ontap/api ApplianceClient

import (
	"fmt"
	"net/http"

	"github.com/go-openapi/strfmt"
)

// AuthMethod is the authentication strategy chosen once when a client is constructed.
type AuthMethod string

const (
	AuthSingleCert      AuthMethod = "single_cert"
	AuthCertKey         AuthMethod = "cert_key"
	AuthBasic           AuthMethod = "basic_auth"
	AuthSpeedyBasicAuth AuthMethod = "speedy_basic_auth"
)

func (a AuthMethod) IsCertificate() bool {
	return a == AuthSingleCert || a == AuthCertKey
}

// TransportPreference selects between REST and ZAPI.
type TransportPreference string

const (
	UseRESTAlways TransportPreference = "always"
	UseRESTNever  TransportPreference = "never"
	UseRESTAuto   TransportPreference = "auto"
)

// VersionInfo is the ONTAP release reported by the cluster endpoint.
type VersionInfo struct {
	Generation int    `json:"generation"`
	Major      int    `json:"major"`
	Minor      int    `json:"minor"`
	Full       string `json:"full"`
	Valid      bool   `json:"valid"`
}

// InvalidVersionInfo is returned when the version could not be determined.
func InvalidVersionInfo() VersionInfo {
	return VersionInfo{Generation: -1, Major: -1, Minor: -1, Full: "unknown"}
}

func (v VersionInfo) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Generation, v.Major, v.Minor)
}

// AtLeast reports whether the version is valid and not older than generation.major.minor.
func (v VersionInfo) AtLeast(generation, major, minor int) bool {
	if !v.Valid {
		return false
	}
	if v.Generation != generation {
		return v.Generation > generation
	}
	if v.Major != major {
		return v.Major > major
	}
	return v.Minor >= minor
}

// JobHandle identifies a server-side asynchronous job.
type JobHandle struct {
	UUID strfmt.UUID `json:"uuid"`
	Href string      `json:"href"`
}

type JobState string

const (
	JobStateQueued  JobState = "queued"
	JobStateRunning JobState = "running"
	JobStatePaused  JobState = "paused"
	JobStateSuccess JobState = "success"
	JobStateFailure JobState = "failure"
)

// IsActive reports whether the job may still change state.
func (s JobState) IsActive() bool {
	return s == JobStateQueued || s == JobStateRunning
}

// Job is the REST job resource.
type Job struct {
	UUID        strfmt.UUID     `json:"uuid,omitempty"`
	Description string          `json:"description,omitempty"`
	State       JobState        `json:"state"`
	Message     string          `json:"message,omitempty"`
	Code        int64           `json:"code,omitempty"`
	StartTime   strfmt.DateTime `json:"start_time,omitempty"`
	EndTime     strfmt.DateTime `json:"end_time,omitempty"`
}

// CallResult is a REST response.  Body is the decoded JSON object, or nil when the response had none.
type CallResult struct {
	StatusCode int
	Header     http.Header
	Body       map[string]interface{}
	Raw        []byte
}
