// Copyright 2025 NetApp, Inc. All Rights Reserved.

package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ghodss/yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/netapp/ontap-client/config"
	. "github.com/netapp/ontap-client/logging"
	"github.com/netapp/ontap-client/storage_drivers/ontap/api"
)

const (
	FormatJSON = "json"
	FormatWide = "wide"
	FormatYAML = "yaml"

	ExitCodeSuccess = 0
	ExitCodeFailure = 1

	envPrefix = "ONTAP"
)

var (
	Debug         bool
	OutputFormat  string
	ConfigFile    string
	LogFormat     string
	LogFile       string
	DiagnosticLog string

	ExitCode int

	settings = viper.New()

	loggingInitialized bool

	// stdout receives all command output
	stdout io.Writer = os.Stdout

	// newApplianceClient is replaced in unit tests
	newApplianceClient = func(ctx context.Context, clientConfig api.ClientConfig) (api.ApplianceClient, error) {
		return api.NewClient(ctx, clientConfig)
	}
)

var RootCmd = &cobra.Command{
	Use:          "ontapctl",
	Short:        "A CLI tool for NetApp ONTAP",
	Long:         `A CLI tool for calling the ONTAP REST and ZAPI interfaces of a NetApp storage appliance`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initLogging(); err != nil {
			return err
		}
		return initSettings(cmd)
	},
}

func init() {
	flags := RootCmd.PersistentFlags()
	flags.BoolVarP(&Debug, "debug", "d", false, "Debug output")
	flags.StringVarP(&OutputFormat, "output", "o", "", "Output format. One of json|yaml|wide (default table)")
	flags.StringVar(&ConfigFile, "config", "", "Path to a JSON or YAML file holding connection settings")
	flags.StringVar(&LogFormat, "log-format", TextFormat, "Log format. One of text|json")
	flags.StringVar(&LogFile, "log-file", "", "Also write logs to this file")
	flags.StringVar(&DiagnosticLog, "diagnostic-log", "",
		"Append the client's errors and debug log to this file after each command")

	flags.String("hostname", "", "Management LIF hostname or IP address")
	flags.String("username", "", "Username for basic authentication")
	flags.String("password", "", "Password for basic authentication")
	flags.String("cert-file", "", "Client certificate for certificate authentication")
	flags.String("key-file", "", "Client private key for certificate authentication")
	flags.String("use-rest", "auto", "Transport preference. One of never|always|auto")
	flags.Int("port", 0, "Management port (default 80 or 443)")
	flags.Bool("https", false, "Use HTTPS for ZAPI calls")
	flags.Bool("insecure", false, "Skip server certificate verification")
	flags.String("svm", "", "SVM to tunnel ZAPI calls to")
	flags.Duration("api-timeout", time.Duration(config.StorageAPITimeoutSeconds)*time.Second,
		"Timeout for each API call")
	flags.StringArray("feature-flag", nil, "Feature flag override in the form name=value (repeatable)")
}

func initLogging() error {
	if loggingInitialized {
		return InitLogLevel(Debug, "info")
	}
	if err := InitLoggingForCLI(LogFile, LogFormat); err != nil {
		return err
	}
	loggingInitialized = true
	return InitLogLevel(Debug, "info")
}

// initSettings layers flags over environment variables over the config file.  Environment variables use the
// ONTAP_ prefix with dashes replaced by underscores, e.g. ONTAP_CERT_FILE.
func initSettings(cmd *cobra.Command) error {
	settings.SetEnvPrefix(envPrefix)
	settings.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	settings.AutomaticEnv()

	if ConfigFile != "" {
		settings.SetConfigFile(ConfigFile)
		if err := settings.ReadInConfig(); err != nil {
			return fmt.Errorf("could not read config file %s; %v", ConfigFile, err)
		}
		Log().WithField("configFile", settings.ConfigFileUsed()).Debug("Read config file.")
	}

	return settings.BindPFlags(cmd.Flags())
}

// clientConfigFromSettings builds the client configuration from the merged settings.
func clientConfigFromSettings() (api.ClientConfig, error) {
	clientConfig := api.ClientConfig{
		Hostname:           settings.GetString("hostname"),
		Username:           settings.GetString("username"),
		Password:           settings.GetString("password"),
		CertFile:           settings.GetString("cert-file"),
		KeyFile:            settings.GetString("key-file"),
		UseREST:            api.TransportPreference(settings.GetString("use-rest")),
		Port:               settings.GetInt("port"),
		HTTPS:              settings.GetBool("https"),
		InsecureSkipVerify: settings.GetBool("insecure"),
		SVM:                settings.GetString("svm"),
		ClientName:         "ontapctl",
		Timeout:            settings.GetDuration("api-timeout"),
	}

	overrides := make(map[string]interface{})
	for name, value := range settings.GetStringMap("feature-flags") {
		overrides[name] = value
	}
	for _, setting := range settings.GetStringSlice("feature-flag") {
		name, value, err := api.ParseFeatureFlag(setting)
		if err != nil {
			return api.ClientConfig{}, err
		}
		overrides[name] = value
	}
	if len(overrides) > 0 {
		clientConfig.FeatureFlags = overrides
	}

	return clientConfig, nil
}

// getClient returns a client for the configured appliance along with a request context for the command.
func getClient(cmd *cobra.Command) (context.Context, api.ApplianceClient, error) {
	ctx := GenerateRequestContext(cmd.Context(), "", ContextSourceCLI, WorkflowNone, LogLayerCLI)

	clientConfig, err := clientConfigFromSettings()
	if err != nil {
		return ctx, nil, err
	}

	Logc(ctx).WithField("config", clientConfig.String()).Debug("Creating ONTAP client.")

	client, err := newApplianceClient(ctx, clientConfig)
	if err != nil {
		return ctx, nil, err
	}
	return ctx, client, nil
}

// writeDiagnostics saves the client's error and debug history when --diagnostic-log is set.
func writeDiagnostics(ctx context.Context, client api.ApplianceClient) {
	if DiagnosticLog == "" || client == nil {
		return
	}
	if err := client.WriteErrorsToFile("", DiagnosticLog, true); err != nil {
		Logc(ctx).WithError(err).Warning("Could not write errors to diagnostic log.")
	}
	if err := client.WriteDebugLogToFile("", DiagnosticLog, true); err != nil {
		Logc(ctx).WithError(err).Warning("Could not write debug log to diagnostic log.")
	}
}

func WriteJSON(out interface{}) {
	jsonBytes, _ := json.MarshalIndent(out, "", "  ")
	fmt.Fprintln(stdout, string(jsonBytes))
}

func WriteYAML(out interface{}) {
	jsonBytes, _ := json.Marshal(out)
	yamlBytes, _ := yaml.JSONToYAML(jsonBytes)
	fmt.Fprintln(stdout, string(yamlBytes))
}

func SetExitCodeFromError(err error) {
	ExitCode = GetExitCodeFromError(err)
}

func GetExitCodeFromError(err error) int {
	if err == nil {
		return ExitCodeSuccess
	}
	return ExitCodeFailure
}
