// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Disable any standard log output
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func TestInitLogLevel(t *testing.T) {
	defer log.SetLevel(log.GetLevel())

	assert.NoError(t, InitLogLevel(true, "error"))
	assert.Equal(t, log.DebugLevel, log.GetLevel(), "debug flag wins")

	assert.NoError(t, InitLogLevel(false, "warn"))
	assert.Equal(t, log.WarnLevel, log.GetLevel())

	assert.Error(t, InitLogLevel(false, "chatty"))
}

func TestInitLogFormat(t *testing.T) {
	defer log.SetFormatter(log.StandardLogger().Formatter)

	assert.NoError(t, InitLogFormat(JSONFormat))
	assert.IsType(t, &JSONFormatter{}, log.StandardLogger().Formatter)
	assert.NoError(t, InitLogFormat(TextFormat))
	assert.IsType(t, &log.TextFormatter{}, log.StandardLogger().Formatter)
	assert.Error(t, InitLogFormat("xml"))
}

func TestGenerateRequestContext(t *testing.T) {
	ctx := GenerateRequestContext(context.Background(), "", "", WorkflowRESTInvoke, LogLayerOntapREST)
	assert.NotEmpty(t, ctx.Value(ContextKeyRequestID))
	assert.Equal(t, "Unknown", ctx.Value(ContextKeyRequestSource))
	assert.Equal(t, WorkflowRESTInvoke, ctx.Value(ContextKeyWorkflow))
	assert.Equal(t, LogLayerOntapREST, ctx.Value(ContextKeyLogLayer))

	// Existing request values are kept
	child := GenerateRequestContext(ctx, "other", ContextSourceCLI, WorkflowJobWait, LogLayerCLI)
	assert.Equal(t, ctx.Value(ContextKeyRequestID), child.Value(ContextKeyRequestID))
	assert.Equal(t, "Unknown", child.Value(ContextKeyRequestSource))
	assert.Equal(t, WorkflowJobWait, child.Value(ContextKeyWorkflow))

	//nolint:staticcheck
	fresh := GenerateRequestContext(nil, "req-1", ContextSourceLibrary, WorkflowNone, LogLayerNone)
	assert.Equal(t, "req-1", fresh.Value(ContextKeyRequestID))
	assert.Equal(t, ContextSourceLibrary, fresh.Value(ContextKeyRequestSource))
}

func TestLogc(t *testing.T) {
	ctx := GenerateRequestContext(context.Background(), "req-2", ContextSourceCLI, WorkflowNone, LogLayerNone)
	entry := Logc(ctx)
	assert.Equal(t, "req-2", entry.Data["requestID"])
	assert.Equal(t, ContextSourceCLI, entry.Data["requestSource"])
	assert.NotContains(t, entry.Data, "workflow", "WorkflowNone is not logged")
	assert.NotContains(t, entry.Data, "logLayer", "LogLayerNone is not logged")

	entry = Logc(WithWorkflow(ctx, WorkflowZAPIInvoke, LogLayerOntapZAPI))
	assert.Equal(t, WorkflowZAPIInvoke, entry.Data["workflow"])
	assert.Equal(t, LogLayerOntapZAPI, entry.Data["logLayer"])

	//nolint:staticcheck
	assert.NotNil(t, Logc(nil))
	assert.NotNil(t, Log())
}

func TestWorkflowAndLayerNames(t *testing.T) {
	assert.Equal(t, "transport=detect_version", WorkflowTransportDetectVersion.String())
	assert.Equal(t, "job=wait", WorkflowJobWait.String())
	assert.True(t, IsValidLogLayer("ontap_rest"))
	assert.False(t, IsValidLogLayer("none"))
}

func TestJSONFormatter(t *testing.T) {
	entry := &log.Entry{
		Logger:  log.StandardLogger(),
		Time:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   log.WarnLevel,
		Message: "Job error: Reach max retries.",
		Data:    log.Fields{"error": errors.New("connection refused"), "retries": 4},
	}

	output, err := (&JSONFormatter{}).Format(entry)
	require.NoError(t, err)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(output, &decoded))
	assert.Equal(t, "connection refused", decoded["error"])
	assert.Equal(t, "4", decoded["retries"])
	assert.Equal(t, "warning", decoded["level"])
	assert.Equal(t, "Job error: Reach max retries.", decoded["message"])
	assert.Equal(t, "2025-01-02T03:04:05Z", decoded["@timestamp"])
}

func TestPlainTextFormatter(t *testing.T) {
	entry := &log.Entry{
		Logger:  log.StandardLogger(),
		Time:    time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC),
		Level:   log.InfoLevel,
		Message: "Invoked.",
		Data:    log.Fields{"method": "GET", "url": "https://10.0.0.1/api/cluster", "msg": "clash"},
	}

	output, err := (&PlainTextFormatter{}).Format(entry)
	require.NoError(t, err)

	line := string(output)
	assert.True(t, strings.HasPrefix(line, "INFO[2025-01-02T03:04:05Z] Invoked."))
	assert.Contains(t, line, " method=GET")
	assert.Contains(t, line, ` url="https://10.0.0.1/api/cluster"`)
	assert.Contains(t, line, " fields.msg=clash")
	assert.NotContains(t, line, " msg=clash")
	assert.True(t, strings.HasSuffix(line, "\n"))
	assert.Equal(t, "clash", entry.Data["msg"], "entry data is left untouched")
}

func TestNewHooksRejectUnknownFormat(t *testing.T) {
	_, err := NewConsoleHook("xml")
	assert.Error(t, err)
	_, err = NewFileHook(filepath.Join(t.TempDir(), "x.log"), "xml")
	assert.Error(t, err)
}

func TestFileHook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ontap.log")
	hook, err := NewFileHook(path, JSONFormat)
	require.NoError(t, err)
	assert.Equal(t, path, hook.GetLocation())

	logger := log.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(hook)
	logger.WithField("status", 200).Info("Called appliance.")

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), `"message":"Called appliance."`)
	assert.Contains(t, string(contents), `"status":"200"`)
}

func TestRedactSecrets(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "raw header",
			input:    "GET /api/cluster\r\nAuthorization: Basic YWRtaW46c2VjcmV0\r\n",
			expected: "GET /api/cluster\r\nAuthorization: Basic <REDACTED>\r\n",
		},
		{
			name:     "header map",
			input:    `{"Authorization":["Basic YWRtaW46c2VjcmV0"]}`,
			expected: `{Authorization: <REDACTED>}`,
		},
		{
			name:     "zapi password",
			input:    "<security-login-create><password>hunter2</password></security-login-create>",
			expected: "<security-login-create><password><REDACTED></password></security-login-create>",
		},
		{
			name:     "nothing to redact",
			input:    `{"name":"vol1"}`,
			expected: `{"name":"vol1"}`,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, string(RedactSecrets([]byte(test.input))))
		})
	}
}

func TestAPITraceLogger(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ontap_apis.log")

	logger, err := APITraceLogger(path)
	require.NoError(t, err)

	again, err := APITraceLogger(path)
	require.NoError(t, err)
	assert.Same(t, logger, again, "one logger per path")

	TraceAPI(logger, "zapi request", LogFields{"url": "https://10.0.0.1/servlets"},
		[]byte("<netapp><password>hunter2</password></netapp>"))
	TraceAPI(nil, "ignored", nil, []byte("nothing"))

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), "zapi request")
	assert.Contains(t, string(contents), "<password><REDACTED></password>")
	assert.NotContains(t, string(contents), "hunter2")
}

func TestConsoleHookRoutesByLevel(t *testing.T) {
	hook, err := NewConsoleHook(JSONFormat)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	hook.stdout, hook.stderr = &out, &errOut

	logger := log.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(hook)

	logger.Warn("Job still running.")
	logger.Error("Job failed.")

	assert.Contains(t, out.String(), "Job still running.")
	assert.NotContains(t, out.String(), "Job failed.")
	assert.Contains(t, errOut.String(), "Job failed.")

	out.Reset()
	logger.Info(strings.Repeat("x", MaxLogEntryLength+10))
	assert.Len(t, out.String(), MaxLogEntryLength+len("<truncated>\n"))
	assert.True(t, strings.HasSuffix(out.String(), "<truncated>\n"))
}

func TestFileHookRotation(t *testing.T) {
	defer func(every int) { rotateCheckEvery = every }(rotateCheckEvery)
	rotateCheckEvery = 1

	fs := afero.NewMemMapFs()
	hook, err := newFileHook(fs, "ontapctl", TextFormat)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(LogRoot, "ontapctl.log"), hook.GetLocation())

	require.NoError(t, afero.WriteFile(fs, hook.GetLocation(), make([]byte, LogRotationThreshold), 0o644))

	logger := log.New()
	logger.SetOutput(io.Discard)
	logger.AddHook(hook)
	logger.Info("Rotated.")

	exists, err := afero.Exists(fs, hook.GetLocation()+".old")
	require.NoError(t, err)
	assert.True(t, exists)

	logger.Info("Fresh file.")
	contents, err := afero.ReadFile(fs, hook.GetLocation())
	require.NoError(t, err)
	assert.Contains(t, string(contents), "Fresh file.")
	assert.NotContains(t, string(contents), "Rotated.")
}

func TestFileHookRejectsFileAsDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/logs", []byte("x"), 0o644))

	_, err := newFileHook(fs, "/logs/ontap.log", TextFormat)
	assert.ErrorContains(t, err, "is not a directory")
}

func TestInitLoggingForCLI(t *testing.T) {
	std := log.StandardLogger()
	defer std.ReplaceHooks(std.ReplaceHooks(make(log.LevelHooks)))
	defer log.SetFormatter(std.Formatter)
	defer log.SetOutput(io.Discard)
	defer log.SetLevel(log.GetLevel())

	assert.Error(t, InitLoggingForCLI("", "xml"))

	path := filepath.Join(t.TempDir(), "ontapctl.log")
	t.Setenv(LogRotateCheckEnvVar, "5")
	require.NoError(t, InitLoggingForCLI(path, JSONFormat))
	assert.IsType(t, &JSONFormatter{}, std.Formatter)
	assert.Equal(t, 5, rotateCheckEvery)
	rotateCheckEvery = 20

	log.SetLevel(log.DebugLevel)
	log.WithField("hostname", "cluster1").Debug("Logging to the CLI log file.")

	contents, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(contents), `"message":"Logging to the CLI log file."`)
	assert.Contains(t, string(contents), `"hostname":"cluster1"`)
}
