// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import (
	log "github.com/sirupsen/logrus"
)

const (
	ContextKeyRequestID     ContextKey = "requestID"
	ContextKeyRequestSource ContextKey = "requestSource"
	ContextKeyWorkflow      ContextKey = "workflow"
	ContextKeyLogLayer      ContextKey = "logLayer"

	ContextSourceCLI      = "CLI"
	ContextSourceLibrary  = "Library"
	ContextSourceInternal = "Internal"

	LogSource = "logSource"
)

// ContextKey is used for context.Context value. The value requires a key that is not primitive type.
type ContextKey string // ContextKeyRequestID is the ContextKey for RequestID

type WorkflowCategory string

func (w WorkflowCategory) String() string {
	return string(w)
}

type WorkflowOperation string

func (w WorkflowOperation) String() string {
	return string(w)
}

type Workflow struct {
	Category  WorkflowCategory
	Operation WorkflowOperation
}

func (w Workflow) String() string {
	return w.Category.String() + workflowCategorySeparator + w.Operation.String()
}

type LogFields = log.Fields
