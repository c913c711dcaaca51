// Copyright 2025 NetApp, Inc. All Rights Reserved.

package azgo

import (
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"sync"

	xrv "github.com/mattermost/xml-roundtrip-validator"
	log "github.com/sirupsen/logrus"

	"github.com/netapp/ontap-client/config"
	. "github.com/netapp/ontap-client/logging"
	"github.com/netapp/ontap-client/utils/errors"
)

// RequestAuthorizer attaches credentials to an outgoing request.
type RequestAuthorizer func(*http.Request)

type ZapiRunner struct {
	managementLIF   string
	svm             string
	clientName      string
	secure          bool
	ontapApiVersion string
	httpClient      *http.Client
	authorize       RequestAuthorizer
	traceLogger     *log.Logger
	m               *sync.RWMutex
}

// NewZapiRunner creates a runner that posts envelopes to the ZAPI servlet on managementLIF (host[:port]).
// clientName is embedded in the client identification header of every call.
func NewZapiRunner(
	managementLIF, svm, clientName string, secure bool, ontapApiVersion string, httpClient *http.Client,
	authorize RequestAuthorizer,
) *ZapiRunner {
	return &ZapiRunner{
		managementLIF:   managementLIF,
		svm:             svm,
		clientName:      clientName,
		secure:          secure,
		ontapApiVersion: ontapApiVersion,
		httpClient:      httpClient,
		authorize:       authorize,
		m:               &sync.RWMutex{},
	}
}

// GetSVM returns the SVM name used for vfiler tunneling.
func (o *ZapiRunner) GetSVM() string {
	o.m.RLock()
	defer o.m.RUnlock()
	return o.svm
}

// GetOntapApiVersion returns the ONTAPI version sent in the envelope, e.g. "1.110".
func (o *ZapiRunner) GetOntapApiVersion() string {
	o.m.RLock()
	defer o.m.RUnlock()
	return o.ontapApiVersion
}

// SetOntapApiVersion updates the ONTAPI version sent in the envelope.
func (o *ZapiRunner) SetOntapApiVersion(version string) {
	o.m.Lock()
	defer o.m.Unlock()
	o.ontapApiVersion = version
}

// SetTraceLogger enables request/response tracing.  A nil logger disables it.
func (o *ZapiRunner) SetTraceLogger(logger *log.Logger) {
	o.m.Lock()
	defer o.m.Unlock()
	o.traceLogger = logger
}

func (o *ZapiRunner) getTraceLogger() *log.Logger {
	o.m.RLock()
	defer o.m.RUnlock()
	return o.traceLogger
}

// CopyForNontunneledZapiRunner returns a clone of the ZapiRunner with the SVM cleared so calls made with it are
// not tunneled.  The calls could still go directly to either a cluster or vserver management LIF.
func (o *ZapiRunner) CopyForNontunneledZapiRunner() *ZapiRunner {
	o.m.RLock()
	defer o.m.RUnlock()
	return &ZapiRunner{
		managementLIF:   o.managementLIF,
		clientName:      o.clientName,
		secure:          o.secure,
		ontapApiVersion: o.ontapApiVersion,
		httpClient:      o.httpClient,
		authorize:       o.authorize,
		traceLogger:     o.traceLogger,
		m:               &sync.RWMutex{},
	}
}

// URL returns the servlet address for this runner.
func (o *ZapiRunner) URL() string {
	scheme := "http"
	if o.secure {
		scheme = "https"
	}
	return scheme + "://" + o.managementLIF + config.ZAPIServletPath
}

func (o *ZapiRunner) envelope(request *NaElement) (string, error) {
	zapiCommand, err := request.ToXML()
	if err != nil {
		return "", err
	}

	var vfiler string
	if svm := o.GetSVM(); svm != "" {
		var escaped bytes.Buffer
		if err = xml.EscapeText(&escaped, []byte(svm)); err != nil {
			return "", err
		}
		vfiler = fmt.Sprintf(` vfiler="%s"`, escaped.String())
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<netapp xmlns="%s" version="%s"%s>%s</netapp>`,
		config.ZAPINamespace, o.GetOntapApiVersion(), vfiler, zapiCommand), nil
}

// SendZapi sends the provided request to the ONTAP system and returns the raw HTTP response.
func (o *ZapiRunner) SendZapi(ctx context.Context, request *NaElement) (*http.Response, error) {
	fields := LogFields{"Method": "SendZapi", "Type": "ZapiRunner", "API": request.Name()}
	Logc(ctx).WithFields(fields).Trace(">>>> SendZapi")
	defer Logc(ctx).WithFields(fields).Trace("<<<< SendZapi")

	s, err := o.envelope(request)
	if err != nil {
		return nil, errors.WrapWithTransportError(err, errors.TransportOther, 0, "could not build ZAPI request")
	}

	url := o.URL()
	Logc(ctx).WithField("URL", url).Debug("Sending ZAPI request.")
	TraceAPI(o.getTraceLogger(), "zapi request", LogFields{"url": url}, []byte(s))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBufferString(s))
	if err != nil {
		return nil, errors.WrapWithTransportError(err, errors.TransportOther, 0, "could not build ZAPI request")
	}
	req.Header.Set("Content-Type", "text/xml; charset=utf-8")
	req.Header.Set(config.ClientAppHeader, config.ClientAppHeaderValue(o.clientName))
	if o.authorize != nil {
		o.authorize(req)
	}

	response, err := o.httpClient.Do(req)
	if err != nil {
		return nil, errors.ClassifyRequestError(err)
	} else if response.StatusCode == http.StatusUnauthorized {
		response.Body.Close()
		return nil, errors.TransportError(errors.TransportUnauthorized, response.StatusCode,
			"Unauthorized: response code 401, incorrect or missing credentials")
	}

	Logc(ctx).WithFields(LogFields{
		"status":  response.Status,
		"headers": response.Header,
	}).Trace("ZAPI response received.")

	return response, nil
}

// ExecuteZapi sends the request, parses the response and checks the results status.  When parsing fails and
// sanitization is enabled, the body is sanitized and parsed one more time.
func (o *ZapiRunner) ExecuteZapi(
	ctx context.Context, request *NaElement, sanitize SanitizeOptions,
) (*NaElement, error) {
	response, err := o.SendZapi(ctx, request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, errors.WrapWithTransportError(err, errors.TransportOther, response.StatusCode,
			"unable to read ZAPI response body")
	}
	TraceAPI(o.getTraceLogger(), "zapi response", LogFields{"status": response.StatusCode}, raw)

	if response.StatusCode >= http.StatusBadRequest {
		return nil, errors.TransportError(errors.TransportHTTP, response.StatusCode, "HTTP error: %s",
			response.Status)
	}

	envelope, parseErr := ParseZAPIResponse(raw)
	if parseErr != nil {
		if !sanitize.Enabled {
			return nil, errors.WrapWithTransportError(parseErr, errors.TransportMalformed, response.StatusCode,
				"could not parse ZAPI response")
		}
		Logc(ctx).WithError(parseErr).Debug("Retrying ZAPI response parse after sanitizing.")
		envelope, err = ParseZAPIResponse(SanitizeXML(raw, sanitize.CodePoints))
		if err != nil {
			return nil, errors.TransportError(errors.TransportMalformed, response.StatusCode, "%v. Received: %s",
				parseErr, quoteRaw(raw))
		}
	}

	return GetResults(envelope)
}

// ParseZAPIResponse validates and unmarshals a ZAPI response body.
func ParseZAPIResponse(body []byte) (*NaElement, error) {
	if err := xrv.Validate(bytes.NewReader(body)); err != nil {
		return nil, err
	}
	envelope := &NaElement{}
	if err := xml.Unmarshal(body, envelope); err != nil {
		return nil, err
	}
	return envelope, nil
}
