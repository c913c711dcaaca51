// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/ontap-client/storage_drivers/ontap/api"
)

var unsupportedOptions []string

func init() {
	RootCmd.AddCommand(useRestCmd)
	useRestCmd.Flags().StringSliceVar(&unsupportedOptions, "unsupported", nil,
		"Options the caller needs that REST cannot serve yet")
}

type UseRESTResponse struct {
	UseREST     bool           `json:"useRest"`
	Preference  string         `json:"preference"`
	AuthMethod  api.AuthMethod `json:"authMethod"`
	Unsupported []string       `json:"unsupported,omitempty"`
}

var useRestCmd = &cobra.Command{
	Use:   "use-rest",
	Short: "Report whether calls to the appliance should use REST",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, client, err := getClient(cmd)
		if err != nil {
			return err
		}
		defer writeDiagnostics(ctx, client)

		useRest, err := client.ShouldUseRest(ctx, unsupportedOptions)
		if err != nil {
			return err
		}

		writeUseREST(UseRESTResponse{
			UseREST:     useRest,
			Preference:  settings.GetString("use-rest"),
			AuthMethod:  client.AuthMethod(),
			Unsupported: unsupportedOptions,
		})
		return nil
	},
}

func writeUseREST(response UseRESTResponse) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(response)
	case FormatYAML:
		WriteYAML(response)
	default:
		table := tablewriter.NewWriter(stdout)
		header := []string{"Use REST", "Preference", "Auth Method"}
		row := []string{strconv.FormatBool(response.UseREST), response.Preference, string(response.AuthMethod)}
		if OutputFormat == FormatWide {
			header = append(header, "Unsupported")
			row = append(row, strings.Join(response.Unsupported, ","))
		}
		table.SetHeader(header)
		table.Append(row)
		table.Render()
	}
}
