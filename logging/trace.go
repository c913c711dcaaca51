// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	"io"
	"sync"

	log "github.com/sirupsen/logrus"
)

var (
	traceLoggers     = make(map[string]*log.Logger)
	traceLoggersLock sync.Mutex
)

// APITraceLogger returns the append-only trace logger for the supplied file path.  Loggers are created once per
// path and shared for the life of the process.
func APITraceLogger(path string) (*log.Logger, error) {
	traceLoggersLock.Lock()
	defer traceLoggersLock.Unlock()

	if logger, ok := traceLoggers[path]; ok {
		return logger, nil
	}

	hook, err := NewFileHook(path, TextFormat)
	if err != nil {
		return nil, err
	}

	logger := log.New()
	logger.SetOutput(io.Discard)
	logger.SetLevel(log.DebugLevel)
	logger.AddHook(hook)

	traceLoggers[path] = logger
	return logger, nil
}

// TraceAPI writes a redacted request or response record to the trace logger.
func TraceAPI(logger *log.Logger, tag string, fields LogFields, payload []byte) {
	if logger == nil {
		return
	}
	logger.WithFields(fields).Debugf("%s: %s", tag, RedactSecrets(payload))
}
