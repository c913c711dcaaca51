// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/netapp/ontap-client/config"
	. "github.com/netapp/ontap-client/logging"
	"github.com/netapp/ontap-client/storage_drivers/ontap/api"
)

var (
	invokeParams     []string
	invokeBody       string
	invokeAccept     string
	invokeSVMScoped  bool
	invokeSVMUUID    string
	invokeWait       bool
	invokeJobTimeout time.Duration
	invokeJobPoll    time.Duration
)

func init() {
	RootCmd.AddCommand(invokeCmd)
	invokeCmd.Flags().StringArrayVar(&invokeParams, "param", nil, "Query parameter in the form key=value (repeatable)")
	invokeCmd.Flags().StringVar(&invokeBody, "body", "", "JSON request body")
	invokeCmd.Flags().StringVar(&invokeAccept, "accept", "", "Accept header")
	invokeCmd.Flags().BoolVar(&invokeSVMScoped, "svm-scoped", false, "Scope the call to the SVM named by --svm")
	invokeCmd.Flags().StringVar(&invokeSVMUUID, "svm-uuid", "", "Scope the call to the SVM with this UUID")
	invokeCmd.Flags().BoolVar(&invokeWait, "wait", false, "Wait for the job started by the call to finish")
	invokeCmd.Flags().DurationVar(&invokeJobTimeout, "job-timeout", config.DefaultJobTimeout,
		"How long --wait waits for the job")
	invokeCmd.Flags().DurationVar(&invokeJobPoll, "job-interval", config.DefaultJobPollInterval,
		"How often --wait polls the job")
}

type InvokeResponse struct {
	StatusCode int                    `json:"statusCode"`
	Header     http.Header            `json:"header,omitempty"`
	Body       map[string]interface{} `json:"body,omitempty"`
	JobMessage string                 `json:"jobMessage,omitempty"`
}

var invokeCmd = &cobra.Command{
	Use:     "invoke METHOD PATH",
	Short:   "Call a REST endpoint of the appliance",
	Example: "  ontapctl invoke GET storage/volumes --param fields=name,size",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		method := strings.ToUpper(args[0])
		resourcePath := args[1]

		params, err := parseQueryParams(invokeParams)
		if err != nil {
			return err
		}

		var body interface{}
		if invokeBody != "" {
			if err := json.Unmarshal([]byte(invokeBody), &body); err != nil {
				return fmt.Errorf("could not parse request body; %v", err)
			}
		}

		ctx, client, err := getClient(cmd)
		if err != nil {
			return err
		}
		defer writeDiagnostics(ctx, client)

		svmName := ""
		if invokeSVMScoped {
			svmName = settings.GetString("svm")
		}
		headers := client.BuildHeaders(invokeAccept, svmName, invokeSVMUUID)

		result, err := client.InvokeWithHeaders(ctx, method, resourcePath, params, body, headers)
		if err != nil {
			return err
		}

		response := InvokeResponse{StatusCode: result.StatusCode, Header: result.Header, Body: result.Body}

		if invokeWait {
			handle, err := api.JobFromResponse(result)
			if err != nil {
				return fmt.Errorf("cannot wait; %v", err)
			}
			Logc(ctx).WithField("job", handle.UUID).Debug("Waiting for job.")
			if response.JobMessage, err = client.WaitOnJob(ctx, handle, invokeJobTimeout, invokeJobPoll); err != nil {
				return err
			}
		}

		writeInvokeResponse(response)
		return nil
	},
}

// parseQueryParams turns key=value pairs into query parameters.  Repeated keys accumulate.
func parseQueryParams(pairs []string) (url.Values, error) {
	params := url.Values{}
	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("parameter %q must have the form key=value", pair)
		}
		params.Add(key, value)
	}
	return params, nil
}

// invokeJobDocument is what json and yaml output print once --wait has collected a job message.
type invokeJobDocument struct {
	Body       map[string]interface{} `json:"body,omitempty"`
	JobMessage string                 `json:"jobMessage"`
}

func writeInvokeResponse(response InvokeResponse) {
	var document interface{} = response.Body
	if response.JobMessage != "" {
		document = invokeJobDocument{Body: response.Body, JobMessage: response.JobMessage}
	}

	switch OutputFormat {
	case FormatYAML:
		WriteYAML(document)
	case FormatWide:
		WriteJSON(response)
	default:
		WriteJSON(document)
	}
}
