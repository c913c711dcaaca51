// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

import "github.com/netapp/ontap-client/config"

const (
	LogRoot              = "/var/log/" + config.ClientAppName
	LogRotationThreshold = 10485760 // 10 MB
	MaxLogEntryLength    = 64000

	// LogRotateCheckEnvVar overrides how many writes a file hook makes between size checks.
	LogRotateCheckEnvVar = "ONTAP_LOG_ROTATE_CHECK"
)

var rotateCheckEvery = 20
