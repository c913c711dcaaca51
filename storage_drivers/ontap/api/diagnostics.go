// Copyright 2025 NetApp, Inc. All Rights Reserved.

package api

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/afero"

	"github.com/netapp/ontap-client/config"
	. "github.com/netapp/ontap-client/logging"
	"github.com/netapp/ontap-client/utils/errors"
)

// Errors returns every error message recorded by this client, oldest first.
func (c *Client) Errors() []string {
	return append([]string(nil), c.errors...)
}

// DebugLogs returns every exchange recorded by this client, oldest first.
func (c *Client) DebugLogs() []DebugLogEntry {
	return append([]DebugLogEntry(nil), c.debugLogs...)
}

// RestError returns the error from the last version detection, or an empty string if it succeeded.
func (c *Client) RestError() string {
	return c.restError
}

func (c *Client) logError(ctx context.Context, statusCode int, message string) {
	Logc(ctx).WithField("statusCode", statusCode).Debug(message)
	c.errors = append(c.errors, message)
	c.debugLogs = append(c.debugLogs, DebugLogEntry{StatusCode: statusCode, Message: message})
}

func (c *Client) logDebug(ctx context.Context, statusCode int, message string) {
	Logc(ctx).WithField("statusCode", statusCode).Trace(message)
	c.debugLogs = append(c.debugLogs, DebugLogEntry{StatusCode: statusCode, Message: message})
}

// recordError logs err and returns it unchanged.
func (c *Client) recordError(ctx context.Context, statusCode int, err error) error {
	message := err.Error()
	if errors.IsEndpointError(err) {
		message = fmt.Sprintf("Endpoint error: %d: %s", statusCode, message)
	}
	c.logError(ctx, statusCode, message)
	return err
}

// WriteToFile writes "<tag>: <data>" to path, or just the tag if data is empty.  An empty path uses the
// default diagnostic log.  The file is truncated first unless appendMode is set.
func (c *Client) WriteToFile(tag, data, path string, appendMode bool) error {
	if path == "" {
		path = config.DiagnosticLogPath
	}

	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	file, err := c.fs.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("could not open diagnostic file %s; %v", path, err)
	}
	defer file.Close()

	line := tag + "\n"
	if data != "" {
		line = tag + ": " + data + "\n"
	}
	_, err = file.WriteString(line)
	return err
}

// WriteErrorsToFile writes each recorded error under the tag, "Error" by default.
func (c *Client) WriteErrorsToFile(tag, path string, appendMode bool) error {
	if tag == "" {
		tag = "Error"
	}
	for _, message := range c.errors {
		if err := c.WriteToFile(tag, message, path, appendMode); err != nil {
			return err
		}
		appendMode = true
	}
	return nil
}

// WriteDebugLogToFile writes each recorded exchange as a status line followed by a message line, under the
// tag, "Debug" by default.
func (c *Client) WriteDebugLogToFile(tag, path string, appendMode bool) error {
	if tag == "" {
		tag = "Debug"
	}
	for _, entry := range c.debugLogs {
		if err := c.WriteToFile(tag, strconv.Itoa(entry.StatusCode), path, appendMode); err != nil {
			return err
		}
		appendMode = true
		if err := c.WriteToFile(tag, entry.Message, path, appendMode); err != nil {
			return err
		}
	}
	return nil
}

// ReadDiagnosticFile returns the contents of a diagnostic file.
func (c *Client) ReadDiagnosticFile(path string) (string, error) {
	if path == "" {
		path = config.DiagnosticLogPath
	}
	content, err := afero.ReadFile(c.fs, path)
	return string(content), err
}
