// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

const (
	TextFormat             = "text"
	JSONFormat             = "json"
	defaultTimestampFormat = time.RFC3339
)

// InitLoggingForCLI configures logging for ontapctl.  The standard logger writes nowhere; the console and the
// optional log file are each served by a hook so both can use their own formatter.
func InitLoggingForCLI(logFile, logFormat string) error {
	if err := InitLogFormat(logFormat); err != nil {
		return err
	}
	log.SetOutput(io.Discard)

	consoleHook, err := NewConsoleHook(logFormat)
	if err != nil {
		return fmt.Errorf("could not initialize logging to console: %v", err)
	}
	log.AddHook(consoleHook)

	if v, err := strconv.Atoi(os.Getenv(LogRotateCheckEnvVar)); err == nil && v > 0 {
		rotateCheckEvery = v
	}

	if logFile == "" {
		return nil
	}

	fileHook, err := NewFileHook(logFile, logFormat)
	if err != nil {
		return fmt.Errorf("could not initialize logging to file: %v", err)
	}
	log.AddHook(fileHook)
	log.WithField("logFileLocation", fileHook.GetLocation()).Debug("Logging to file.")

	return nil
}

// InitLogLevel configures the logging level.  The debug flag takes precedence if set,
// otherwise the logLevel flag (debug, info, warn, error, fatal) is used.
func InitLogLevel(debug bool, logLevel string) error {
	if debug {
		log.SetLevel(log.DebugLevel)
		return nil
	}
	level, err := log.ParseLevel(logLevel)
	if err != nil {
		return err
	}
	log.SetLevel(level)
	return nil
}

// InitLogFormat sets the standard logger's formatter, allowing a choice of text or JSON.
func InitLogFormat(logFormat string) error {
	switch logFormat {
	case TextFormat:
		log.SetFormatter(&log.TextFormatter{})
	case JSONFormat:
		log.SetFormatter(&JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format: %s", logFormat)
	}
	return nil
}

// Log returns an entry on the standard logger with no request context.
func Log() *log.Entry {
	return log.NewEntry(log.StandardLogger())
}

// Logc returns an entry stamped with the request-scoped values carried by ctx.
func Logc(ctx context.Context) *log.Entry {
	if ctx == nil {
		ctx = context.Background()
	}

	entry := log.WithFields(LogFields{
		"requestID":     ctx.Value(ContextKeyRequestID),
		"requestSource": ctx.Value(ContextKeyRequestSource),
	})

	if wf, ok := ctx.Value(ContextKeyWorkflow).(Workflow); ok && wf != WorkflowNone {
		entry = entry.WithField(string(ContextKeyWorkflow), wf)
	}
	if layer, ok := ctx.Value(ContextKeyLogLayer).(LogLayer); ok && layer != LogLayerNone {
		entry = entry.WithField(string(ContextKeyLogLayer), layer)
	}

	return entry
}

// GenerateRequestContext returns a context carrying a request ID and source, preserving any already present.
func GenerateRequestContext(ctx context.Context, requestID, requestSource string, workflow Workflow,
	logLayer LogLayer,
) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	if v := ctx.Value(ContextKeyRequestID); v != nil {
		requestID = fmt.Sprint(v)
	}
	if v := ctx.Value(ContextKeyRequestSource); v != nil {
		requestSource = fmt.Sprint(v)
	}
	if requestID == "" {
		requestID = uuid.New().String()
	}
	if requestSource == "" {
		requestSource = "Unknown"
	}
	ctx = context.WithValue(ctx, ContextKeyRequestID, requestID)
	ctx = context.WithValue(ctx, ContextKeyRequestSource, requestSource)
	return WithWorkflow(ctx, workflow, logLayer)
}

// WithWorkflow returns a copy of ctx tagged with the supplied workflow and layer.
func WithWorkflow(ctx context.Context, workflow Workflow, logLayer LogLayer) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = context.WithValue(ctx, ContextKeyWorkflow, workflow)
	return context.WithValue(ctx, ContextKeyLogLayer, logLayer)
}

// hookFormatter picks the formatter a hook uses for logFormat.  Console text gets logrus colors when attached
// to a terminal; file text stays plain.
func hookFormatter(logFormat string, console bool) (log.Formatter, error) {
	switch {
	case logFormat == JSONFormat:
		return &JSONFormatter{}, nil
	case logFormat == TextFormat && console:
		return &log.TextFormatter{FullTimestamp: true}, nil
	case logFormat == TextFormat:
		return &PlainTextFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown log format: %s", logFormat)
	}
}

// ConsoleHook sends informational entries to stdout and errors to stderr.
type ConsoleHook struct {
	formatter log.Formatter
	stdout    io.Writer
	stderr    io.Writer
}

func NewConsoleHook(logFormat string) (*ConsoleHook, error) {
	formatter, err := hookFormatter(logFormat, true)
	if err != nil {
		return nil, err
	}
	return &ConsoleHook{formatter: formatter, stdout: os.Stdout, stderr: os.Stderr}, nil
}

func (hook *ConsoleHook) Levels() []log.Level {
	return log.AllLevels
}

func (hook *ConsoleHook) Fire(entry *log.Entry) error {
	w := hook.stdout
	if entry.Level <= log.ErrorLevel {
		w = hook.stderr
	}

	if textFormatter, ok := hook.formatter.(*log.TextFormatter); ok {
		f, isFile := w.(*os.File)
		textFormatter.ForceColors = isFile && term.IsTerminal(int(f.Fd()))
	}

	line, err := hook.formatter.Format(entry)
	if err != nil {
		return err
	}
	if len(line) > MaxLogEntryLength {
		line = append(line[:MaxLogEntryLength:MaxLogEntryLength], []byte("<truncated>\n")...)
	}
	_, err = w.Write(line)
	return err
}

// FileHook appends entries to a log file, moving it aside to <file>.old once it passes LogRotationThreshold.
type FileHook struct {
	location  string
	formatter log.Formatter
	fs        afero.Fs

	mutex  sync.Mutex
	writes int
}

// NewFileHook creates a hook writing to logName.  A bare name is placed under LogRoot with a .log suffix; a
// path containing a directory is used as is.
func NewFileHook(logName, logFormat string) (*FileHook, error) {
	return newFileHook(afero.NewOsFs(), logName, logFormat)
}

func newFileHook(fs afero.Fs, logName, logFormat string) (*FileHook, error) {
	formatter, err := hookFormatter(logFormat, false)
	if err != nil {
		return nil, err
	}

	location := logName
	if filepath.Dir(logName) == "." {
		location = filepath.Join(LogRoot, logName+".log")
	}

	logDir := filepath.Dir(location)
	if info, err := fs.Stat(logDir); err == nil && !info.IsDir() {
		return nil, fmt.Errorf("log path %v exists and is not a directory, please remove it", logDir)
	}
	if err := fs.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create log directory %v; %v", logDir, err)
	}

	return &FileHook{location: location, formatter: formatter, fs: fs}, nil
}

func (hook *FileHook) Levels() []log.Level {
	return log.AllLevels
}

func (hook *FileHook) Fire(entry *log.Entry) error {
	line, err := hook.formatter.Format(entry)
	if err != nil {
		return err
	}

	hook.mutex.Lock()
	defer hook.mutex.Unlock()

	f, err := hook.fs.OpenFile(hook.location, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o666)
	if err != nil {
		return fmt.Errorf("could not open log file %v; %v", hook.location, err)
	}
	_, err = f.Write(line)
	size := int64(-1)
	if info, statErr := f.Stat(); statErr == nil {
		size = info.Size()
	}
	_ = f.Close()
	if err != nil {
		return err
	}

	hook.writes++
	if hook.writes%rotateCheckEvery == 0 && size >= LogRotationThreshold {
		// Rename overwrites any previous .old file.
		return hook.fs.Rename(hook.location, hook.location+".old")
	}
	return nil
}

func (hook *FileHook) GetLocation() string {
	return hook.location
}

// PlainTextFormatter writes uncolored "LEVL[time] message key=value" lines with sorted keys.
type PlainTextFormatter struct {
	TimestampFormat string
}

// reservedKeys are moved under a "fields." prefix so they cannot be confused with the line's own parts.
var reservedKeys = []string{"time", "msg", "level"}

func (f *PlainTextFormatter) Format(entry *log.Entry) ([]byte, error) {
	data := make(LogFields, len(entry.Data))
	for k, v := range entry.Data {
		data[k] = v
	}
	for _, k := range reservedKeys {
		if v, ok := data[k]; ok {
			data["fields."+k] = v
			delete(data, k)
		}
	}

	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	timestampFormat := f.TimestampFormat
	if timestampFormat == "" {
		timestampFormat = defaultTimestampFormat
	}

	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}
	level := strings.ToUpper(entry.Level.String())
	if len(level) > 4 {
		level = level[:4]
	}
	fmt.Fprintf(b, "%s[%s] %-44s ", level, entry.Time.Format(timestampFormat), entry.Message)
	for _, k := range keys {
		fmt.Fprintf(b, " %s=%s", k, plainValue(data[k]))
	}
	b.WriteByte('\n')

	return b.Bytes(), nil
}

// plainValue renders a field value, quoting anything beyond letters, digits, dashes and dots.
func plainValue(value interface{}) string {
	var text string
	switch v := value.(type) {
	case string:
		text = v
	case error:
		text = v.Error()
	default:
		return fmt.Sprint(v)
	}
	for _, ch := range text {
		if !(ch >= 'a' && ch <= 'z' || ch >= 'A' && ch <= 'Z' || ch >= '0' && ch <= '9' || ch == '-' || ch == '.') {
			return strconv.Quote(text)
		}
	}
	return text
}

// JSONFormatter writes one JSON object per entry with every field rendered as a string, so errors survive
// encoding.
type JSONFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
	PrettyPrint      bool
}

func (f *JSONFormatter) Format(entry *log.Entry) ([]byte, error) {
	data := make(map[string]string, len(entry.Data)+3)
	for k, v := range entry.Data {
		if err, ok := v.(error); ok {
			data[k] = err.Error()
		} else {
			data[k] = fmt.Sprintf("%+v", v)
		}
	}

	if !f.DisableTimestamp {
		timestampFormat := f.TimestampFormat
		if timestampFormat == "" {
			timestampFormat = defaultTimestampFormat
		}
		data["@timestamp"] = entry.Time.Format(timestampFormat)
	}
	data["message"] = entry.Message
	data["level"] = entry.Level.String()

	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}
	encoder := json.NewEncoder(b)
	if f.PrettyPrint {
		encoder.SetIndent("", "  ")
	}
	if err := encoder.Encode(data); err != nil {
		return nil, fmt.Errorf("failed to marshal fields to JSON; %v", err)
	}
	return b.Bytes(), nil
}
