package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

// Flag names
const (
	flagKey   = "key"
	flagValue = "value"
)

func init() {
	configCmd.AddCommand(getConfigCmd)
	configCmd.AddCommand(setConfigCmd)
	configCmd.AddCommand(listConfigCmd)
	configCmd.AddCommand(deleteConfigCmd)

	// Add flags for get
	getConfigCmd.Flags().StringP(flagKey, "k", "", "Config key")
	if err := getConfigCmd.MarkFlagRequired(flagKey); err != nil {
		panic(fmt.Errorf("failed to mark key flag as required for get config command: %w", err))
	}

	// Add flags for set
	setConfigCmd.Flags().StringP(flagKey, "k", "", "Config key")
	setConfigCmd.Flags().StringP(flagValue, "v", "", "Config value")
	if err := setConfigCmd.MarkFlagRequired(flagKey); err != nil {
		panic(fmt.Errorf("failed to mark key flag as required for set config command: %w", err))
	}
	if err := setConfigCmd.MarkFlagRequired(flagValue); err != nil {
		panic(fmt.Errorf("failed to mark value flag as required for set config command: %w", err))
	}

	// Add flags for delete
	deleteConfigCmd.Flags().StringP(flagKey, "k", "", "Config key")
	if err := deleteConfigCmd.MarkFlagRequired(flagKey); err != nil {
		panic(fmt.Errorf("failed to mark key flag as required for delete config command: %w", err))
	}
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage application settings",
}

var getConfigCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a setting",
	RunE: func(cmd *cobra.Command, _ []string) error {
		key, err := cmd.Flags().GetString(flagKey)
		if err != nil {
			return fmt.Errorf("error getting key flag: %w", err)
		}

		value, err := apiClient.GetConfig(context.Background(), key)
		if err != nil {
			return fmt.Errorf("error getting config: %w", err)
		}

		fmt.Println(value)
		return nil
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Set a setting",
	RunE: func(cmd *cobra.Command, _ []string) error {
		key, err := cmd.Flags().GetString(flagKey)
		if err != nil {
			return fmt.Errorf("error getting key flag: %w", err)
		}
		value, err := cmd.Flags().GetString(flagValue)
		if err != nil {
			return fmt.Errorf("error getting value flag: %w", err)
		}

		config, err := apiClient.SetConfig(context.Background(), key, value)
		if err != nil {
			return fmt.Errorf("error setting config: %w", err)
		}
		return printJSON(config)
	},
}

var listConfigCmd = &cobra.Command{
	Use:   "list",
	Short: "List all settings",
	RunE: func(_ *cobra.Command, _ []string) error {
		configs, err := apiClient.GetAllConfig(context.Background())
		if err != nil {
			return fmt.Errorf("error listing config: %w", err)
		}
		return printJSON(configs)
	},
}

var deleteConfigCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a setting",
	RunE: func(cmd *cobra.Command, _ []string) error {
		key, err := cmd.Flags().GetString(flagKey)
		if err != nil {
			return fmt.Errorf("error getting key flag: %w", err)
		}

		if err := apiClient.DeleteConfig(context.Background(), key); err != nil {
			return fmt.Errorf("error deleting config: %w", err)
		}

		fmt.Printf("Config %q deleted successfully\n", key)
		return nil
	},
}

// GetConfigCmd returns the config command
func GetConfigCmd() *cobra.Command {
	return configCmd
}
