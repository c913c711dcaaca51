// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import "regexp"

type redactedPattern struct {
	re  *regexp.Regexp
	rep []byte
}

var (
	basicAuthorization = redactedPattern{
		re:  regexp.MustCompile(`Authorization: Basic [A-Za-z0-9+/=]+`),
		rep: []byte("Authorization: Basic <REDACTED>"),
	}
	headerAuthorization = redactedPattern{
		re:  regexp.MustCompile(`(?i)"?authorization"?:\s*\[?"?Basic [A-Za-z0-9+/=]+"?\]?`),
		rep: []byte(`Authorization: <REDACTED>`),
	}
	zapiPassword = redactedPattern{
		re:  regexp.MustCompile(`<password>.*?</password>`),
		rep: []byte("<password><REDACTED></password>"),
	}

	redactedPatterns = []redactedPattern{basicAuthorization, headerAuthorization, zapiPassword}
)

// RedactSecrets masks credentials that may appear in traced requests and responses.
func RedactSecrets(data []byte) []byte {
	for _, p := range redactedPatterns {
		data = p.re.ReplaceAll(data, p.rep)
	}
	return data
}
