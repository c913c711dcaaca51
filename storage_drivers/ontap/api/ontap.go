// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"crypto/tls"
	"encoding/base64"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"k8s.io/utils/clock"

	"github.com/netapp/ontap-client/config"
	. "github.com/netapp/ontap-client/logging"
	"github.com/netapp/ontap-client/storage_drivers/ontap/api/azgo"
	"github.com/netapp/ontap-client/utils/errors"
)

const (
	preclusterMessage = "are available in precluster."

	// REST is trusted from 9.6 onward.  9.4 and 9.5 expose partial REST APIs that are not supported.
	restMinimumGeneration = 9
	restMinimumMajor      = 6
)

// Client is the object to use for interacting with ONTAP controllers.  A Client is meant to serve one logical
// operation and is not safe for concurrent use.
type Client struct {
	config     ClientConfig
	flags      FeatureFlags
	authMethod AuthMethod
	useRest    TransportPreference

	httpClient    *http.Client
	zr            *azgo.ZapiRunner
	authorization string

	clock       clock.Clock
	fs          afero.Fs
	traceLogger *log.Logger

	version    VersionInfo
	precluster bool
	restError  string
	errors     []string
	debugLogs  []DebugLogEntry
}

// DebugLogEntry records one exchange with the appliance.
type DebugLogEntry struct {
	StatusCode int
	Message    string
}

type ClientOption func(*Client)

// WithHTTPClient replaces the HTTP client used for every call.  The caller's transport is then responsible for
// presenting any client certificate.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
		}
	}
}

// WithClock replaces the clock used to sleep between job polls.
func WithClock(clk clock.Clock) ClientOption {
	return func(c *Client) {
		if clk != nil {
			c.clock = clk
		}
	}
}

// WithFileSystem replaces the file system used for diagnostic files.
func WithFileSystem(fs afero.Fs) ClientOption {
	return func(c *Client) {
		if fs != nil {
			c.fs = fs
		}
	}
}

// NewClient is a factory method for creating a new instance.  All configuration is validated here; no network
// activity takes place.
func NewClient(ctx context.Context, clientConfig ClientConfig, options ...ClientOption) (*Client, error) {
	if clientConfig.Hostname == "" {
		return nil, errors.ConfigError("hostname is required")
	}

	flags, flagErr := ResolveFeatureFlags(clientConfig.FeatureFlags)
	if flagErr != nil {
		return nil, flagErr
	}

	useRest, prefErr := clientConfig.transportPreference()
	method, authErr := clientConfig.authMethod(flags)
	if err := errors.CombineConfigErrors(prefErr, authErr); err != nil {
		return nil, err
	}

	certificates, err := clientConfig.loadCertificate(method)
	if err != nil {
		return nil, err
	}

	c := &Client{
		config:     clientConfig,
		flags:      flags,
		authMethod: method,
		useRest:    useRest,
		clock:      clock.RealClock{},
		fs:         afero.NewOsFs(),
		version:    InvalidVersionInfo(),
	}

	if method == AuthSpeedyBasicAuth {
		credentials := clientConfig.Username + ":" + clientConfig.Password
		c.authorization = "Basic " + base64.StdEncoding.EncodeToString([]byte(credentials))
	}

	for _, option := range options {
		option(c)
	}

	if c.httpClient == nil {
		c.httpClient = &http.Client{
			Transport: NewMetricsTransport(&http.Transport{
				Proxy: http.ProxyFromEnvironment,
				TLSClientConfig: &tls.Config{
					InsecureSkipVerify: clientConfig.InsecureSkipVerify,
					MinVersion:         config.MinTLSVersion,
					Certificates:       certificates,
				},
			}, WithMetricsTransportTarget(ContextRequestTargetONTAP)),
			Timeout: clientConfig.timeout(),
		}
	}

	zapiHost, secure := clientConfig.zapiHost(method)
	c.zr = azgo.NewZapiRunner(zapiHost, clientConfig.SVM, clientConfig.ClientName, secure,
		clientConfig.ontapiVersion(), c.httpClient, c.authorize)

	if flags.Bool(FeatureTraceAPIs) {
		traceLogger, err := APITraceLogger(config.APITraceLogPath)
		if err != nil {
			Logc(ctx).WithError(err).Warning("Could not open API trace file.")
		} else {
			c.traceLogger = traceLogger
			c.zr.SetTraceLogger(traceLogger)
		}
	}

	Logc(ctx).WithFields(LogFields{
		"hostname":   clientConfig.Hostname,
		"authMethod": method,
		"useRest":    useRest,
	}).Debug("Created ONTAP client.")

	return c, nil
}

// authorize attaches basic credentials.  Certificate methods authenticate in the TLS handshake.
func (c *Client) authorize(req *http.Request) {
	switch c.authMethod {
	case AuthSpeedyBasicAuth:
		req.Header.Set("Authorization", c.authorization)
	case AuthBasic:
		req.SetBasicAuth(c.config.Username, c.config.Password)
	case AuthSingleCert, AuthCertKey:
	}
}

// AuthMethod returns the authentication strategy selected at construction.
func (c *Client) AuthMethod() AuthMethod {
	return c.authMethod
}

// FeatureFlags returns a copy of the resolved feature flags.
func (c *Client) FeatureFlags() FeatureFlags {
	flags := make(FeatureFlags, len(c.flags))
	for name, value := range c.flags {
		flags[name] = value
	}
	return flags
}

// GetZapiRunner returns the ZAPI runner configured on this client.
func (c *Client) GetZapiRunner() *azgo.ZapiRunner {
	return c.zr
}

// DetectVersion returns the ONTAP version, probing the cluster endpoint if it is not yet known.  Failures are
// recorded rather than returned; an invalid VersionInfo means the version could not be determined.
func (c *Client) DetectVersion(ctx context.Context) VersionInfo {
	if c.version.Valid {
		return c.version
	}

	ctx = WithWorkflow(ctx, WorkflowTransportDetectVersion, LogLayerOntapAPI)

	result, err := c.Get(ctx, "cluster", url.Values{"fields": {"version"}})
	if err != nil {
		message, _, _, isEndpoint := errors.EndpointErrorDetails(err)
		if isEndpoint && strings.Contains(message, preclusterMessage) {
			// The version is not available in precluster mode, but REST is.
			Logc(ctx).WithField("message", message).Debug("Cluster is in precluster mode.")
			c.precluster = true
			c.restError = ""
			return c.version
		}
		c.precluster = false
		c.restError = err.Error()
		return c.version
	}

	c.precluster = false
	c.restError = ""
	c.setVersion(ctx, result)
	return c.version
}

func (c *Client) setVersion(ctx context.Context, result *CallResult) {
	version, ok := result.Body["version"].(map[string]interface{})
	if !ok {
		c.logDebug(ctx, result.StatusCode, "version key not found in cluster response")
		return
	}

	info := VersionInfo{}
	var missing []string
	for key, target := range map[string]*int{
		"generation": &info.Generation,
		"major":      &info.Major,
		"minor":      &info.Minor,
	} {
		value, ok := toInt(version[key])
		if !ok {
			missing = append(missing, key)
			continue
		}
		*target = value
	}
	if len(missing) > 0 {
		c.logDebug(ctx, result.StatusCode, fmt.Sprintf("version fields missing or not integers: %v", missing))
		return
	}

	info.Full, _ = version["full"].(string)
	info.Valid = true
	c.version = info

	Logc(ctx).WithFields(LogFields{
		"version": info.String(),
		"full":    info.Full,
	}).Debug("Detected ONTAP version.")
}

// ShouldUseRest decides between REST and ZAPI.  With the "always" preference the returned error lists the
// options REST cannot serve; the caller decides whether that is fatal.
func (c *Client) ShouldUseRest(ctx context.Context, unsupportedOptions []string) (bool, error) {
	ctx = WithWorkflow(ctx, WorkflowTransportSelect, LogLayerOntapAPI)

	var used []string
	for _, option := range unsupportedOptions {
		if option != "" {
			used = append(used, option)
		}
	}

	switch c.useRest {
	case UseRESTNever:
		return false, nil
	case UseRESTAlways:
		if len(used) > 0 {
			return true, errors.UnsupportedError("REST API currently does not support '%s'",
				strings.Join(used, ", "))
		}
		return true, nil
	}

	if len(used) > 0 {
		if c.MeetsRestMinimumVersion(ctx, true, restMinimumGeneration, restMinimumMajor, 0) {
			Logc(ctx).Warningf("Falling back to ZAPI because of unsupported option(s) in REST: %v", used)
		}
		return false, nil
	}

	version := c.DetectVersion(ctx)
	if !version.Valid {
		return c.precluster, nil
	}
	return version.AtLeast(restMinimumGeneration, restMinimumMajor, 0), nil
}

// MeetsRestMinimumVersion reports whether REST is in use and the appliance is at least the given version.
func (c *Client) MeetsRestMinimumVersion(ctx context.Context, useRest bool, generation, major, minor int) bool {
	if !useRest {
		return false
	}
	return c.DetectVersion(ctx).AtLeast(generation, major, minor)
}

// RequiresOntapVersion builds the error message for a REST-only feature.
func RequiresOntapVersion(name, version string) string {
	if version == "" {
		version = "9.6"
	}
	return fmt.Sprintf("%s only supports REST, and requires ONTAP %s or later.", name, version)
}

// OptionsRequireOntapVersion builds the error message for options that need a newer ONTAP with REST enabled.
// The message includes the last version detection error, the detected version and the transport when known.
func (c *Client) OptionsRequireOntapVersion(options []string, version string, useRest *bool) string {
	if version == "" {
		version = "9.6"
	}

	var suffix string
	if c.restError != "" {
		suffix = " - " + c.restError
	}
	if c.version.Valid {
		suffix += " - ONTAP version: " + c.version.String()
	}
	if useRest != nil {
		transport := "ZAPI"
		if *useRest {
			transport = "REST"
		}
		suffix += " - using " + transport
	}

	var tag string
	switch len(options) {
	case 0:
		tag = "[]"
	case 1:
		tag = options[0]
	default:
		tag = fmt.Sprintf("any of %v", options)
	}

	return fmt.Sprintf("using %s requires ONTAP %s or later and REST must be enabled%s.", tag, version, suffix)
}
