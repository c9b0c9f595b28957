package commands

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/atelierhq/atelier/pkg/api/v1/client"
	"github.com/atelierhq/atelier/pkg/api/v1/routes"
)

// flag names
const (
	flagServerAddress = "server-address"
	flagID            = "id"
)

// environment variable names
const (
	envServerAddress = "ATELIER_SERVER_ADDRESS"
)

var (
	// apiClient is the shared API client instance
	apiClient client.Client
	// serverAddress holds the target API server address. Flag parsing sets this.
	serverAddress string
)

// initClient initializes the API client
func initClient() error {
	var err error
	opts := client.DefaultOptions()
	opts.BaseURL = serverAddress

	apiClient, err = client.NewClient(opts)
	return err
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&serverAddress, flagServerAddress, "s", routes.DefaultBaseURL, "Address of the Atelier API server (env: ATELIER_SERVER_ADDRESS)")

	RootCmd.AddCommand(GetClientsCmd())
	RootCmd.AddCommand(GetJobsCmd())
	RootCmd.AddCommand(GetJobTypesCmd())
	RootCmd.AddCommand(GetPaymentsCmd())
	RootCmd.AddCommand(GetConfigCmd())
}

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "atelier",
	Short: "Atelier CLI - A command line interface for the Atelier API",
	Long:  `Atelier CLI is a command line tool for managing clients, jobs and payments through the Atelier API.`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		// Flag > env var > default
		if !cmd.Flags().Changed(flagServerAddress) {
			if envAddr := os.Getenv(envServerAddress); envAddr != "" {
				serverAddress = envAddr
			}
		}

		if serverAddress == "" {
			return fmt.Errorf("server address cannot be empty")
		}
		return initClient()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// getID retrieves and parses the --id flag.
func getID(cmd *cobra.Command) (uint, error) {
	raw, err := cmd.Flags().GetString(flagID)
	if err != nil {
		return 0, fmt.Errorf("error getting id flag: %w", err)
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id format: %w", err)
	}
	return uint(id), nil
}
