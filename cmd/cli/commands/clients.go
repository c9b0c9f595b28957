package commands

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelierhq/atelier/internal/services"
)

// Flag names
const (
	flagName    = "name"
	flagEmail   = "email"
	flagPhone   = "phone"
	flagDiscord = "discord"
	flagTerm    = "term"
)

// clientOutput represents the filtered output for a client
type clientOutput struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Discord string `json:"discord,omitempty"`
}

func init() {
	clientsCmd.AddCommand(createClientCmd)
	clientsCmd.AddCommand(getClientCmd)
	clientsCmd.AddCommand(listClientsCmd)
	clientsCmd.AddCommand(deleteClientCmd)
	clientsCmd.AddCommand(searchClientsCmd)

	// Add flags for create
	createClientCmd.Flags().StringP(flagName, "n", "", "Client name")
	createClientCmd.Flags().StringP(flagEmail, "e", "", "Client email")
	createClientCmd.Flags().StringP(flagPhone, "p", "", "Client phone")
	createClientCmd.Flags().StringP(flagDiscord, "d", "", "Client discord handle")
	if err := createClientCmd.MarkFlagRequired(flagName); err != nil {
		panic(fmt.Errorf("failed to mark name flag as required for create client command: %w", err))
	}
	if err := createClientCmd.MarkFlagRequired(flagEmail); err != nil {
		panic(fmt.Errorf("failed to mark email flag as required for create client command: %w", err))
	}

	// Add flags for get
	getClientCmd.Flags().String(flagID, "", "Client ID")
	if err := getClientCmd.MarkFlagRequired(flagID); err != nil {
		panic(fmt.Errorf("failed to mark id flag as required for get client command: %w", err))
	}

	// Add flags for delete
	deleteClientCmd.Flags().String(flagID, "", "Client ID")
	if err := deleteClientCmd.MarkFlagRequired(flagID); err != nil {
		panic(fmt.Errorf("failed to mark id flag as required for delete client command: %w", err))
	}

	// Add flags for search
	searchClientsCmd.Flags().StringP(flagTerm, "t", "", "Search term")
	if err := searchClientsCmd.MarkFlagRequired(flagTerm); err != nil {
		panic(fmt.Errorf("failed to mark term flag as required for search clients command: %w", err))
	}
}

var clientsCmd = &cobra.Command{
	Use:   "clients",
	Short: "Manage clients",
}

var createClientCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new client",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return fmt.Errorf("error getting name flag: %w", err)
		}
		email, err := cmd.Flags().GetString(flagEmail)
		if err != nil {
			return fmt.Errorf("error getting email flag: %w", err)
		}
		phone, err := cmd.Flags().GetString(flagPhone)
		if err != nil {
			return fmt.Errorf("error getting phone flag: %w", err)
		}
		discord, err := cmd.Flags().GetString(flagDiscord)
		if err != nil {
			return fmt.Errorf("error getting discord flag: %w", err)
		}

		params := services.ClientCreate{
			Name:    name,
			Email:   email,
			Phone:   phone,
			Discord: discord,
		}

		client, err := apiClient.CreateClient(context.Background(), params)
		if err != nil {
			return fmt.Errorf("error creating client: %w", err)
		}

		return printJSON(clientOutput{
			ID:      client.ID,
			Name:    client.Name,
			Email:   client.Email,
			Phone:   client.Phone,
			Discord: client.Discord,
		})
	},
}

var getClientCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a specific client",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := getID(cmd)
		if err != nil {
			return err
		}

		client, err := apiClient.GetClient(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error getting client: %w", err)
		}

		return printJSON(clientOutput{
			ID:      client.ID,
			Name:    client.Name,
			Email:   client.Email,
			Phone:   client.Phone,
			Discord: client.Discord,
		})
	},
}

var listClientsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all clients",
	RunE: func(_ *cobra.Command, _ []string) error {
		clients, err := apiClient.GetClients(context.Background(), nil)
		if err != nil {
			return fmt.Errorf("error listing clients: %w", err)
		}

		output := make([]clientOutput, len(clients))
		for i, client := range clients {
			output[i] = clientOutput{
				ID:      client.ID,
				Name:    client.Name,
				Email:   client.Email,
				Phone:   client.Phone,
				Discord: client.Discord,
			}
		}
		return printJSON(output)
	},
}

var deleteClientCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a client",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := getID(cmd)
		if err != nil {
			return err
		}

		if err := apiClient.DeleteClient(context.Background(), id); err != nil {
			return fmt.Errorf("error deleting client: %w", err)
		}

		fmt.Printf("Client %d deleted successfully\n", id)
		return nil
	},
}

var searchClientsCmd = &cobra.Command{
	Use:   "search",
	Short: "Search clients by name, email, phone or discord",
	RunE: func(cmd *cobra.Command, _ []string) error {
		term, err := cmd.Flags().GetString(flagTerm)
		if err != nil {
			return fmt.Errorf("error getting term flag: %w", err)
		}

		clients, err := apiClient.SearchClients(context.Background(), term)
		if err != nil {
			return fmt.Errorf("error searching clients: %w", err)
		}

		output := make([]clientOutput, len(clients))
		for i, client := range clients {
			output[i] = clientOutput{
				ID:      client.ID,
				Name:    client.Name,
				Email:   client.Email,
				Phone:   client.Phone,
				Discord: client.Discord,
			}
		}
		return printJSON(output)
	},
}

// printJSON pretty prints a value as indented JSON
func printJSON(v interface{}) error {
	prettyJSON, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("error formatting response: %w", err)
	}
	fmt.Println(string(prettyJSON))
	return nil
}

// GetClientsCmd returns the clients command
func GetClientsCmd() *cobra.Command {
	return clientsCmd
}
