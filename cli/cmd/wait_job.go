// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"strings"
	"time"

	"github.com/go-openapi/strfmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/ontap-client/config"
	"github.com/netapp/ontap-client/storage_drivers/ontap/api"
)

var (
	waitTimeout  time.Duration
	waitInterval time.Duration
)

func init() {
	RootCmd.AddCommand(waitJobCmd)
	waitJobCmd.Flags().DurationVar(&waitTimeout, "timeout", config.DefaultJobTimeout, "How long to wait for the job")
	waitJobCmd.Flags().DurationVar(&waitInterval, "interval", config.DefaultJobPollInterval, "How often to poll the job")
}

type WaitJobResponse struct {
	Job     api.JobHandle `json:"job"`
	Message string        `json:"message"`
}

var waitJobCmd = &cobra.Command{
	Use:     "wait-job HREF|UUID",
	Short:   "Wait for an asynchronous appliance job to finish",
	Example: "  ontapctl wait-job /api/cluster/jobs/2c0d5d1a-1c1e-11ef-8f2b-005056bb1e9f --timeout 5m",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handle := jobHandleFromArg(args[0])

		ctx, client, err := getClient(cmd)
		if err != nil {
			return err
		}
		defer writeDiagnostics(ctx, client)

		message, err := client.WaitOnJob(ctx, handle, waitTimeout, waitInterval)
		if err != nil {
			return err
		}

		writeWaitJob(WaitJobResponse{Job: handle, Message: message})
		return nil
	},
}

// jobHandleFromArg accepts either a job link or a bare job UUID.
func jobHandleFromArg(arg string) api.JobHandle {
	if strings.Contains(arg, "/") {
		return api.JobHandle{Href: arg}
	}
	return api.JobHandle{UUID: strfmt.UUID(arg)}
}

func writeWaitJob(response WaitJobResponse) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(response)
	case FormatYAML:
		WriteYAML(response)
	default:
		job := response.Job.Href
		if job == "" {
			job = response.Job.UUID.String()
		}
		table := tablewriter.NewWriter(stdout)
		table.SetHeader([]string{"Job", "Message"})
		table.Append([]string{job, response.Message})
		table.Render()
	}
}
