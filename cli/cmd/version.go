// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"fmt"
	"runtime"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/netapp/ontap-client/config"
	"github.com/netapp/ontap-client/storage_drivers/ontap/api"
)

var clientOnly bool

func init() {
	RootCmd.AddCommand(versionCmd)
	versionCmd.Flags().BoolVar(&clientOnly, "client", false, "Client version only (no appliance required).")
}

type ClientVersion struct {
	Version   string `json:"version"`
	GoVersion string `json:"goVersion"`
}

type VersionResponse struct {
	Client  ClientVersion    `json:"client"`
	Server  *api.VersionInfo `json:"server,omitempty"`
	UseREST *bool            `json:"useRest,omitempty"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of the ONTAP appliance",
	RunE: func(cmd *cobra.Command, args []string) error {
		response := VersionResponse{Client: getClientVersion()}
		if clientOnly {
			writeVersion(response)
			return nil
		}

		ctx, client, err := getClient(cmd)
		if err != nil {
			return err
		}
		defer writeDiagnostics(ctx, client)

		version := client.DetectVersion(ctx)
		if !version.Valid {
			if restError := client.RestError(); restError != "" {
				return fmt.Errorf("could not determine the ONTAP version; %s", restError)
			}
			return fmt.Errorf("could not determine the ONTAP version")
		}
		response.Server = &version

		useRest, err := client.ShouldUseRest(ctx, nil)
		if err != nil {
			return err
		}
		response.UseREST = &useRest

		writeVersion(response)
		return nil
	},
}

func getClientVersion() ClientVersion {
	return ClientVersion{
		Version:   config.ClientVersion,
		GoVersion: runtime.Version(),
	}
}

func writeVersion(version VersionResponse) {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(version)
	case FormatYAML:
		WriteYAML(version)
	case FormatWide:
		writeWideVersionTable(version)
	default:
		writeVersionTable(version)
	}
}

func writeVersionTable(version VersionResponse) {
	table := tablewriter.NewWriter(stdout)
	if version.Server == nil {
		table.SetHeader([]string{"Client Version"})
		table.Append([]string{version.Client.Version})
	} else {
		table.SetHeader([]string{"ONTAP Version", "Client Version"})
		table.Append([]string{version.Server.String(), version.Client.Version})
	}
	table.Render()
}

func writeWideVersionTable(version VersionResponse) {
	table := tablewriter.NewWriter(stdout)
	if version.Server == nil {
		table.SetHeader([]string{"Client Version", "Client Go Version"})
		table.Append([]string{version.Client.Version, version.Client.GoVersion})
	} else {
		useRest := ""
		if version.UseREST != nil {
			useRest = strconv.FormatBool(*version.UseREST)
		}
		table.SetHeader([]string{"ONTAP Version", "ONTAP Release", "Use REST", "Client Version", "Client Go Version"})
		table.Append([]string{
			version.Server.String(),
			version.Server.Full,
			useRest,
			version.Client.Version,
			version.Client.GoVersion,
		})
	}
	table.Render()
}
