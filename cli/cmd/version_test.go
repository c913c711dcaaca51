// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/netapp/ontap-client/config"
	"github.com/netapp/ontap-client/storage_drivers/ontap/api"
)

var ontap98 = api.VersionInfo{Generation: 9, Major: 8, Minor: 0, Full: "NetApp Release 9.8.0", Valid: true}

func TestVersionClientOnly(t *testing.T) {
	run := runCommand(t, nil, "version", "--client")

	require.NoError(t, run.err)
	assert.Nil(t, run.clientConfig, "no client should be created")
	assert.Contains(t, run.output, "CLIENT VERSION")
	assert.Contains(t, run.output, config.ClientVersion)
}

func TestVersionJSON(t *testing.T) {
	client := newMockClient(t)
	client.EXPECT().DetectVersion(gomock.Any()).Return(ontap98)
	client.EXPECT().ShouldUseRest(gomock.Any(), gomock.Nil()).Return(true, nil)

	run := runCommand(t, client, "version", "--hostname", "h", "-o", "json")
	require.NoError(t, run.err)

	var response VersionResponse
	require.NoError(t, json.Unmarshal([]byte(run.output), &response))
	require.NotNil(t, response.Server)
	assert.Equal(t, ontap98, *response.Server)
	require.NotNil(t, response.UseREST)
	assert.True(t, *response.UseREST)
	assert.Equal(t, config.ClientVersion, response.Client.Version)
}

func TestVersionTable(t *testing.T) {
	tests := []struct {
		name     string
		format   string
		contains []string
	}{
		{"default", "", []string{"ONTAP VERSION", "9.8.0"}},
		{"wide", FormatWide, []string{"ONTAP RELEASE", "NetApp Release 9.8.0", "USE REST", "false"}},
		{"yaml", FormatYAML, []string{"generation: 9", "useRest: false"}},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client := newMockClient(t)
			client.EXPECT().DetectVersion(gomock.Any()).Return(ontap98)
			client.EXPECT().ShouldUseRest(gomock.Any(), gomock.Nil()).Return(false, nil)

			args := []string{"version", "--hostname", "h"}
			if test.format != "" {
				args = append(args, "-o", test.format)
			}
			run := runCommand(t, client, args...)

			require.NoError(t, run.err)
			for _, s := range test.contains {
				assert.Contains(t, run.output, s)
			}
		})
	}
}

func TestVersionUndetermined(t *testing.T) {
	client := newMockClient(t)
	client.EXPECT().DetectVersion(gomock.Any()).Return(api.InvalidVersionInfo())
	client.EXPECT().RestError().Return("Connection error; dial tcp 10.0.0.1:443: connect: connection refused")

	run := runCommand(t, client, "version", "--hostname", "10.0.0.1")

	require.Error(t, run.err)
	assert.Contains(t, run.err.Error(), "connection refused")
	assert.Empty(t, run.output)
}

func TestVersionUndeterminedNoRestError(t *testing.T) {
	client := newMockClient(t)
	client.EXPECT().DetectVersion(gomock.Any()).Return(api.InvalidVersionInfo())
	client.EXPECT().RestError().Return("")

	run := runCommand(t, client, "version", "--hostname", "10.0.0.1")

	require.Error(t, run.err)
	assert.Equal(t, "could not determine the ONTAP version", run.err.Error())
}
