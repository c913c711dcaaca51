// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netapp/ontap-client/storage_drivers/ontap/api"
	"github.com/netapp/ontap-client/storage_drivers/ontap/api/azgo"
)

var zapiArgs []string

func init() {
	RootCmd.AddCommand(zapiCmd)
	zapiCmd.Flags().StringArrayVar(&zapiArgs, "arg", nil,
		"Request argument in the form name=value; dots build nested elements, e.g. query.volume-attributes.name=vol1")
}

var zapiCmd = &cobra.Command{
	Use:     "zapi API",
	Short:   "Call a ZAPI of the appliance",
	Example: "  ontapctl zapi system-get-version",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		request, err := buildZapiRequest(args[0], zapiArgs)
		if err != nil {
			return err
		}

		ctx, client, err := getClient(cmd)
		if err != nil {
			return err
		}
		defer writeDiagnostics(ctx, client)

		results, err := client.InvokeZAPI(ctx, request)
		if err != nil {
			if zerr := api.NewZapiError(results); zerr.Code() != "" {
				return fmt.Errorf("%s failed; %v", args[0], zerr)
			}
			return err
		}

		return writeZapiResults(results)
	},
}

// buildZapiRequest assembles a request element from dotted name=value arguments.
func buildZapiRequest(name string, arguments []string) (*azgo.NaElement, error) {
	request := azgo.NewNaElement(name)
	for _, argument := range arguments {
		path, value, found := strings.Cut(argument, "=")
		if !found || path == "" {
			return nil, fmt.Errorf("argument %q must have the form name=value", argument)
		}

		parent := request
		names := strings.Split(path, ".")
		for _, child := range names[:len(names)-1] {
			next := parent.ChildGetElement(child)
			if next == nil {
				next = azgo.NewNaElement(child)
				parent.AddChild(next)
			}
			parent = next
		}
		parent.AddNewChild(names[len(names)-1], value)
	}
	return request, nil
}

// naElementToMap converts an element tree to nested maps.  Leaves become strings and repeated children
// become lists.
func naElementToMap(element *azgo.NaElement) interface{} {
	if !element.HasChildren() {
		return element.GetContent()
	}
	result := make(map[string]interface{})
	for _, child := range element.Children {
		value := naElementToMap(child)
		existing, ok := result[child.Name()]
		switch {
		case !ok:
			result[child.Name()] = value
		case isList(existing):
			result[child.Name()] = append(existing.([]interface{}), value)
		default:
			result[child.Name()] = []interface{}{existing, value}
		}
	}
	return result
}

func isList(value interface{}) bool {
	_, ok := value.([]interface{})
	return ok
}

func writeZapiResults(results *azgo.NaElement) error {
	switch OutputFormat {
	case FormatJSON:
		WriteJSON(naElementToMap(results))
	case FormatYAML:
		WriteYAML(naElementToMap(results))
	default:
		output, err := results.ToXML()
		if err != nil {
			return err
		}
		fmt.Fprintln(stdout, output)
	}
	return nil
}
