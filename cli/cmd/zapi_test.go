// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/netapp/ontap-client/storage_drivers/ontap/api/azgo"
	"github.com/netapp/ontap-client/utils/errors"
)

func TestBuildZapiRequest(t *testing.T) {
	request, err := buildZapiRequest("volume-get-iter", []string{
		"max-records=10",
		"query.volume-attributes.volume-id-attributes.name=vol1",
		"query.volume-attributes.volume-id-attributes.owning-vserver-name=svm0",
	})
	require.NoError(t, err)

	output, err := request.ToXML()
	require.NoError(t, err)
	assert.Equal(t, "<volume-get-iter><max-records>10</max-records><query><volume-attributes>"+
		"<volume-id-attributes><name>vol1</name><owning-vserver-name>svm0</owning-vserver-name>"+
		"</volume-id-attributes></volume-attributes></query></volume-get-iter>", output)

	_, err = buildZapiRequest("volume-get-iter", []string{"max-records"})
	assert.Error(t, err)
}

func TestNaElementToMap(t *testing.T) {
	results := azgo.NewNaElement("results").
		AddNewChild("num-records", "3").
		AddChild(azgo.NewNaElement("attributes-list").
			AddNewChild("name", "vol1").
			AddNewChild("name", "vol2").
			AddNewChild("name", "vol3"))

	assert.Equal(t, map[string]interface{}{
		"num-records":     "3",
		"attributes-list": map[string]interface{}{"name": []interface{}{"vol1", "vol2", "vol3"}},
	}, naElementToMap(results))

	assert.Equal(t, "leaf", naElementToMap(azgo.NewNaElement("leaf", " leaf ")))
}

func TestZapiCommand(t *testing.T) {
	results := azgo.NewNaElement("results").SetAttr("status", azgo.StatusPassed).
		AddNewChild("version", "NetApp Release 9.8.0")

	tests := []struct {
		name     string
		format   string
		expected string
	}{
		{"xml", "", `<results status="passed"><version>NetApp Release 9.8.0</version></results>`},
		{"yaml", FormatYAML, "version: NetApp Release 9.8.0"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			client := newMockClient(t)
			client.EXPECT().InvokeZAPI(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ interface{}, request *azgo.NaElement) (*azgo.NaElement, error) {
					assert.Equal(t, "system-get-version", request.Name())
					assert.False(t, request.HasChildren())
					return results, nil
				})

			args := []string{"zapi", "system-get-version", "--hostname", "h"}
			if test.format != "" {
				args = append(args, "-o", test.format)
			}
			run := runCommand(t, client, args...)

			require.NoError(t, run.err)
			assert.Contains(t, run.output, test.expected)
		})
	}
}

func TestZapiCommandJSON(t *testing.T) {
	results := azgo.NewNaElement("results").SetAttr("status", azgo.StatusPassed).
		AddChild(azgo.NewNaElement("attributes").AddNewChild("vserver-name", "svm0"))

	client := newMockClient(t)
	client.EXPECT().InvokeZAPI(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ interface{}, request *azgo.NaElement) (*azgo.NaElement, error) {
			assert.Equal(t, "svm0", request.ChildGetString("vserver-name"))
			return results, nil
		})

	run := runCommand(t, client, "zapi", "vserver-get", "--hostname", "h", "--arg", "vserver-name=svm0",
		"-o", "json")
	require.NoError(t, run.err)

	var output map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(run.output), &output))
	assert.Equal(t, map[string]interface{}{"attributes": map[string]interface{}{"vserver-name": "svm0"}}, output)
}

func TestZapiCommandFailed(t *testing.T) {
	results := azgo.NewNaElement("results").
		SetAttr("status", azgo.StatusFailed).
		SetAttr("reason", "Unable to find API: volume-get-iterr").
		SetAttr("errno", azgo.EAPINOTFOUND)

	client := newMockClient(t)
	client.EXPECT().InvokeZAPI(gomock.Any(), gomock.Any()).Return(results,
		errors.EndpointError(errors.EndpointAPINotFound, azgo.EAPINOTFOUND, 200, "Unable to find API: volume-get-iterr"))

	run := runCommand(t, client, "zapi", "volume-get-iterr", "--hostname", "h")

	require.Error(t, run.err)
	assert.Contains(t, run.err.Error(), "volume-get-iterr failed")
	assert.Contains(t, run.err.Error(), "Code: 13005")
	assert.Empty(t, run.output)
}

func TestZapiCommandTransportError(t *testing.T) {
	transportErr := errors.TransportError(errors.TransportUnauthorized, 401,
		"Unauthorized: response code 401, incorrect or missing credentials")

	client := newMockClient(t)
	client.EXPECT().InvokeZAPI(gomock.Any(), gomock.Any()).Return(nil, transportErr)

	run := runCommand(t, client, "zapi", "system-get-version", "--hostname", "h")

	assert.Equal(t, transportErr, run.err)
	assert.Equal(t, ExitCodeFailure, GetExitCodeFromError(fmt.Errorf("wrapped; %w", run.err)))
}
