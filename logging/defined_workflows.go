// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

const (
	workflowCategorySeparator = "="

	CategoryTransport = WorkflowCategory("transport")
	CategoryREST      = WorkflowCategory("rest")
	CategoryZAPI      = WorkflowCategory("zapi")
	CategoryJob       = WorkflowCategory("job")
	CategoryNone      = WorkflowCategory("none")

	OpDetectVersion = WorkflowOperation("detect_version")
	OpSelect        = WorkflowOperation("select")
	OpInvoke        = WorkflowOperation("invoke")
	OpWait          = WorkflowOperation("wait")
	OpGet           = WorkflowOperation("get")
	OpNone          = WorkflowOperation("none")
)

var (
	WorkflowNone = Workflow{CategoryNone, OpNone}

	WorkflowTransportDetectVersion = Workflow{CategoryTransport, OpDetectVersion}
	WorkflowTransportSelect        = Workflow{CategoryTransport, OpSelect}

	WorkflowRESTInvoke = Workflow{CategoryREST, OpInvoke}
	WorkflowZAPIInvoke = Workflow{CategoryZAPI, OpInvoke}

	WorkflowJobWait = Workflow{CategoryJob, OpWait}
	WorkflowJobGet  = Workflow{CategoryJob, OpGet}
)
