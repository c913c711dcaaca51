// Copyright 2025 NetApp, Inc. All Rights Reserved.

package azgo

import (
	"bytes"
	"strconv"
)

// Some ONTAP releases terminate error text with BEL and a line ending (9.1 uses CRLF), and 9.7 may embed
// backspaces.  None of these are legal XML 1.0 characters.
var bellSequences = [][]byte{
	[]byte("\x07\n"),
	[]byte("\x07\r\n"),
}

// SanitizeOptions controls the second-chance parse of a malformed ZAPI response.
type SanitizeOptions struct {
	Enabled    bool
	CodePoints []int
}

// SanitizeXML strips BEL line endings and replaces each listed code point with '.'.
func SanitizeXML(response []byte, codePoints []int) []byte {
	sanitized := response
	for _, seq := range bellSequences {
		sanitized = bytes.ReplaceAll(sanitized, seq, nil)
	}
	for _, codePoint := range codePoints {
		if codePoint < 0 {
			continue
		}
		sanitized = bytes.ReplaceAll(sanitized, []byte(string(rune(codePoint))), []byte("."))
	}
	return sanitized
}

// quoteRaw renders a raw response for an error message without letting control bytes reach a terminal.
func quoteRaw(raw []byte) string {
	quoted := strconv.Quote(string(raw))
	return quoted[1 : len(quoted)-1]
}
