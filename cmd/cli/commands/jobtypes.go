package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelierhq/atelier/internal/db/models"
	"github.com/atelierhq/atelier/internal/services"
)

// Flag names
const (
	flagBasePrice = "base-price"
	flagBaseHours = "base-hours"
	flagColor     = "color"
)

// jobTypeOutput represents the filtered output for a job type
type jobTypeOutput struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description,omitempty"`
	BasePrice   float64 `json:"base_price"`
	BaseHours   float64 `json:"base_hours"`
	ColorHex    string  `json:"color_hex"`
}

func jobTypeToOutput(jobType models.JobType) jobTypeOutput {
	return jobTypeOutput{
		ID:          jobType.ID,
		Name:        jobType.Name,
		Description: jobType.Description,
		BasePrice:   jobType.BasePrice,
		BaseHours:   jobType.BaseHours,
		ColorHex:    jobType.ColorHex,
	}
}

func init() {
	jobTypesCmd.AddCommand(createJobTypeCmd)
	jobTypesCmd.AddCommand(getJobTypeCmd)
	jobTypesCmd.AddCommand(listJobTypesCmd)
	jobTypesCmd.AddCommand(deleteJobTypeCmd)

	// Add flags for create
	createJobTypeCmd.Flags().StringP(flagName, "n", "", "Job type name")
	createJobTypeCmd.Flags().StringP(flagDescription, "d", "", "Job type description")
	createJobTypeCmd.Flags().Float64(flagBasePrice, 0, "Base price")
	createJobTypeCmd.Flags().Float64(flagBaseHours, 1, "Base hours estimate")
	createJobTypeCmd.Flags().StringP(flagColor, "c", "", "Calendar color (#RRGGBB)")
	if err := createJobTypeCmd.MarkFlagRequired(flagName); err != nil {
		panic(fmt.Errorf("failed to mark name flag as required for create job type command: %w", err))
	}

	// Add flags for get
	getJobTypeCmd.Flags().String(flagID, "", "Job type ID")
	if err := getJobTypeCmd.MarkFlagRequired(flagID); err != nil {
		panic(fmt.Errorf("failed to mark id flag as required for get job type command: %w", err))
	}

	// Add flags for delete
	deleteJobTypeCmd.Flags().String(flagID, "", "Job type ID")
	if err := deleteJobTypeCmd.MarkFlagRequired(flagID); err != nil {
		panic(fmt.Errorf("failed to mark id flag as required for delete job type command: %w", err))
	}
}

var jobTypesCmd = &cobra.Command{
	Use:   "job-types",
	Short: "Manage job types",
}

var createJobTypeCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new job type",
	RunE: func(cmd *cobra.Command, _ []string) error {
		name, err := cmd.Flags().GetString(flagName)
		if err != nil {
			return fmt.Errorf("error getting name flag: %w", err)
		}
		description, err := cmd.Flags().GetString(flagDescription)
		if err != nil {
			return fmt.Errorf("error getting description flag: %w", err)
		}
		basePrice, err := cmd.Flags().GetFloat64(flagBasePrice)
		if err != nil {
			return fmt.Errorf("error getting base-price flag: %w", err)
		}
		baseHours, err := cmd.Flags().GetFloat64(flagBaseHours)
		if err != nil {
			return fmt.Errorf("error getting base-hours flag: %w", err)
		}
		color, err := cmd.Flags().GetString(flagColor)
		if err != nil {
			return fmt.Errorf("error getting color flag: %w", err)
		}

		params := services.JobTypeCreate{
			Name:        name,
			Description: description,
			BasePrice:   basePrice,
			BaseHours:   baseHours,
			ColorHex:    color,
		}

		jobType, err := apiClient.CreateJobType(context.Background(), params)
		if err != nil {
			return fmt.Errorf("error creating job type: %w", err)
		}
		return printJSON(jobTypeToOutput(jobType))
	},
}

var getJobTypeCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a specific job type",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := getID(cmd)
		if err != nil {
			return err
		}

		jobType, err := apiClient.GetJobType(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error getting job type: %w", err)
		}
		return printJSON(jobTypeToOutput(jobType))
	},
}

var listJobTypesCmd = &cobra.Command{
	Use:   "list",
	Short: "List all job types",
	RunE: func(_ *cobra.Command, _ []string) error {
		jobTypes, err := apiClient.GetJobTypes(context.Background())
		if err != nil {
			return fmt.Errorf("error listing job types: %w", err)
		}

		output := make([]jobTypeOutput, len(jobTypes))
		for i, jobType := range jobTypes {
			output[i] = jobTypeToOutput(jobType)
		}
		return printJSON(output)
	},
}

var deleteJobTypeCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a job type (fails while jobs reference it)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := getID(cmd)
		if err != nil {
			return err
		}

		if err := apiClient.DeleteJobType(context.Background(), id); err != nil {
			return fmt.Errorf("error deleting job type: %w", err)
		}

		fmt.Printf("Job type %d deleted successfully\n", id)
		return nil
	},
}

// GetJobTypesCmd returns the job types command
func GetJobTypesCmd() *cobra.Command {
	return jobTypesCmd
}
