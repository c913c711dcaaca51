// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"crypto/tls"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/netapp/ontap-client/config"
	"github.com/netapp/ontap-client/utils/errors"
)

// ClientConfig holds the configuration data for Client objects
type ClientConfig struct {
	Hostname           string                 `json:"hostname"`
	Username           string                 `json:"username,omitempty"`
	Password           string                 `json:"password,omitempty"`
	CertFile           string                 `json:"certFile,omitempty"`
	KeyFile            string                 `json:"keyFile,omitempty"`
	UseREST            TransportPreference    `json:"useRest,omitempty"`
	Port               int                    `json:"port,omitempty"`
	HTTPS              bool                   `json:"https,omitempty"`
	InsecureSkipVerify bool                   `json:"insecureSkipVerify,omitempty"`
	OntapiVersion      int                    `json:"ontapiVersion,omitempty"`
	SVM                string                 `json:"svm,omitempty"`
	ClientName         string                 `json:"clientName,omitempty"`
	Timeout            time.Duration          `json:"timeout,omitempty"`
	FeatureFlags       map[string]interface{} `json:"featureFlags,omitempty"`
}

// String hides credentials when a config is logged.
func (c ClientConfig) String() string {
	password := ""
	if c.Password != "" {
		password = "<REDACTED>"
	}
	return "ClientConfig{Hostname: " + c.Hostname + ", Username: " + c.Username + ", Password: " + password +
		", CertFile: " + c.CertFile + ", KeyFile: " + c.KeyFile + ", UseREST: " + string(c.UseREST) +
		", Port: " + strconv.Itoa(c.Port) + ", SVM: " + c.SVM + "}"
}

func (c ClientConfig) transportPreference() (TransportPreference, error) {
	switch pref := TransportPreference(strings.ToLower(string(c.UseREST))); pref {
	case "":
		return UseRESTAuto, nil
	case UseRESTAlways, UseRESTNever, UseRESTAuto:
		return pref, nil
	default:
		return "", errors.ConfigError("use_rest must be one of: never, always, auto. Got: '%s'", c.UseREST)
	}
}

// authMethod selects the authentication strategy.  Exactly one of username/password or a certificate must
// be configured.
func (c ClientConfig) authMethod(flags FeatureFlags) (AuthMethod, error) {
	hasUser := c.Username != ""
	hasPassword := c.Password != ""
	hasCert := c.CertFile != ""
	hasKey := c.KeyFile != ""

	switch {
	case !hasUser && !hasPassword:
		if !hasCert && hasKey {
			return "", errors.ConfigError("cannot have a key file without a cert file")
		} else if !hasCert {
			return "", errors.ConfigError("ONTAP client requires username/password or SSL certificate file(s)")
		} else if !hasKey {
			return AuthSingleCert, nil
		}
		return AuthCertKey, nil
	case hasUser && hasPassword:
		if hasCert || hasKey {
			return "", errors.ConfigError("cannot have both basic authentication (username/password) " +
				"and certificate authentication (cert/key files)")
		} else if flags.Bool(FeatureClassicBasicAuthorization) {
			return AuthBasic, nil
		}
		return AuthSpeedyBasicAuth, nil
	default:
		message := "username and password have to be provided together"
		if hasCert || hasKey {
			message += " and cannot be used with cert or key files"
		}
		return "", errors.ConfigError("%s", message)
	}
}

// loadCertificate reads the client certificate.  A single file must hold both the certificate and its key.
func (c ClientConfig) loadCertificate(method AuthMethod) ([]tls.Certificate, error) {
	var certFile, keyFile string
	switch method {
	case AuthSingleCert:
		certFile, keyFile = c.CertFile, c.CertFile
	case AuthCertKey:
		certFile, keyFile = c.CertFile, c.KeyFile
	default:
		return nil, nil
	}

	cert, err := tls.LoadX509KeyPair(certFile, keyFile)
	if err != nil {
		return nil, errors.WrapWithConfigError(err, "cannot load certificate and key")
	}
	return []tls.Certificate{cert}, nil
}

// restHost returns host[:port] for REST, which is always HTTPS.
func (c ClientConfig) restHost() string {
	return joinHostPort(c.Hostname, c.Port)
}

// zapiHost returns host[:port] and whether ZAPI should use HTTPS.  Certificate auth forces HTTPS.
func (c ClientConfig) zapiHost(method AuthMethod) (string, bool) {
	secure := c.HTTPS || method.IsCertificate()
	return joinHostPort(c.Hostname, c.Port), secure
}

func (c ClientConfig) ontapiVersion() string {
	minor := c.OntapiVersion
	if minor <= 0 {
		minor = config.DefaultZAPIMinorVersion
	}
	return strconv.Itoa(config.ZAPIMajorVersion) + "." + strconv.Itoa(minor)
}

func (c ClientConfig) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return config.StorageAPITimeoutSeconds * time.Second
}

func joinHostPort(host string, port int) string {
	if port > 0 {
		return net.JoinHostPort(strings.Trim(host, "[]"), strconv.Itoa(port))
	}
	if strings.Contains(host, ":") && !strings.HasPrefix(host, "[") {
		return "[" + host + "]"
	}
	return host
}
