package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/atelierhq/atelier/internal/db/models"
	"github.com/atelierhq/atelier/internal/services"
	"github.com/atelierhq/atelier/pkg/api/v1/handlers"
)

// Flag names
const (
	flagTitle       = "title"
	flagDescription = "description"
	flagStatus      = "status"
	flagPrice       = "price"
	flagDueDate     = "due-date"
	flagStartDate   = "start-date"
	flagClientID    = "client-id"
	flagJobTypeID   = "job-type-id"
	flagStart       = "start"
	flagEnd         = "end"
)

// jobOutput represents the filtered output for a job
type jobOutput struct {
	ID            uint     `json:"id"`
	Title         string   `json:"title"`
	Status        string   `json:"status"`
	Price         *float64 `json:"price,omitempty"`
	DueDate       *string  `json:"due_date,omitempty"`
	StartDate     *string  `json:"start_date,omitempty"`
	CompletedDate *string  `json:"completed_date,omitempty"`
	Client        string   `json:"client,omitempty"`
}

func jobToOutput(job models.Job) jobOutput {
	out := jobOutput{
		ID:            job.ID,
		Title:         job.Title,
		Status:        job.Status.String(),
		Price:         job.Price,
		DueDate:       job.DueDate,
		StartDate:     job.StartDate,
		CompletedDate: job.CompletedDate,
	}
	if job.Client != nil {
		out.Client = job.Client.Name
	}
	return out
}

func jobsToOutput(jobs []models.Job) []jobOutput {
	output := make([]jobOutput, len(jobs))
	for i, job := range jobs {
		output[i] = jobToOutput(job)
	}
	return output
}

func init() {
	jobsCmd.AddCommand(createJobCmd)
	jobsCmd.AddCommand(getJobCmd)
	jobsCmd.AddCommand(listJobsCmd)
	jobsCmd.AddCommand(jobsByStatusCmd)
	jobsCmd.AddCommand(jobsByRangeCmd)
	jobsCmd.AddCommand(updateJobStatusCmd)
	jobsCmd.AddCommand(deleteJobCmd)
	jobsCmd.AddCommand(jobStatsCmd)

	// Add flags for create
	createJobCmd.Flags().StringP(flagTitle, "t", "", "Job title")
	createJobCmd.Flags().StringP(flagDescription, "d", "", "Job description")
	createJobCmd.Flags().String(flagStatus, "", "Job status (pending, in_progress, completed, cancelled)")
	createJobCmd.Flags().Float64(flagPrice, 0, "Job price")
	createJobCmd.Flags().String(flagDueDate, "", "Due date (DD/MM/YYYY)")
	createJobCmd.Flags().String(flagStartDate, "", "Start date (DD/MM/YYYY)")
	createJobCmd.Flags().Uint(flagClientID, 0, "Client ID")
	createJobCmd.Flags().Uint(flagJobTypeID, 0, "Job type ID")
	if err := createJobCmd.MarkFlagRequired(flagTitle); err != nil {
		panic(fmt.Errorf("failed to mark title flag as required for create job command: %w", err))
	}

	// Add flags for get
	getJobCmd.Flags().String(flagID, "", "Job ID")
	if err := getJobCmd.MarkFlagRequired(flagID); err != nil {
		panic(fmt.Errorf("failed to mark id flag as required for get job command: %w", err))
	}

	// Add flags for status listing
	jobsByStatusCmd.Flags().String(flagStatus, "", "Job status (pending, in_progress, completed, cancelled)")
	if err := jobsByStatusCmd.MarkFlagRequired(flagStatus); err != nil {
		panic(fmt.Errorf("failed to mark status flag as required for jobs status command: %w", err))
	}

	// Add flags for range listing
	jobsByRangeCmd.Flags().String(flagStart, "", "Window start (DD/MM/YYYY)")
	jobsByRangeCmd.Flags().String(flagEnd, "", "Window end (DD/MM/YYYY), defaults to the start day")
	jobsByRangeCmd.Flags().String(flagStatus, "", "Optional status filter")
	if err := jobsByRangeCmd.MarkFlagRequired(flagStart); err != nil {
		panic(fmt.Errorf("failed to mark start flag as required for jobs range command: %w", err))
	}

	// Add flags for status update
	updateJobStatusCmd.Flags().String(flagID, "", "Job ID")
	updateJobStatusCmd.Flags().String(flagStatus, "", "New status")
	if err := updateJobStatusCmd.MarkFlagRequired(flagID); err != nil {
		panic(fmt.Errorf("failed to mark id flag as required for update job status command: %w", err))
	}
	if err := updateJobStatusCmd.MarkFlagRequired(flagStatus); err != nil {
		panic(fmt.Errorf("failed to mark status flag as required for update job status command: %w", err))
	}

	// Add flags for delete
	deleteJobCmd.Flags().String(flagID, "", "Job ID")
	if err := deleteJobCmd.MarkFlagRequired(flagID); err != nil {
		panic(fmt.Errorf("failed to mark id flag as required for delete job command: %w", err))
	}
}

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "Manage jobs",
}

var createJobCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new job",
	RunE: func(cmd *cobra.Command, _ []string) error {
		title, err := cmd.Flags().GetString(flagTitle)
		if err != nil {
			return fmt.Errorf("error getting title flag: %w", err)
		}
		description, err := cmd.Flags().GetString(flagDescription)
		if err != nil {
			return fmt.Errorf("error getting description flag: %w", err)
		}

		params := services.JobCreate{
			Title:       title,
			Description: description,
		}

		if cmd.Flags().Changed(flagStatus) {
			raw, err := cmd.Flags().GetString(flagStatus)
			if err != nil {
				return fmt.Errorf("error getting status flag: %w", err)
			}
			status, err := models.ParseStatus(raw)
			if err != nil {
				return err
			}
			params.Status = &status
		}
		if cmd.Flags().Changed(flagPrice) {
			price, err := cmd.Flags().GetFloat64(flagPrice)
			if err != nil {
				return fmt.Errorf("error getting price flag: %w", err)
			}
			params.Price = &price
		}
		if cmd.Flags().Changed(flagDueDate) {
			dueDate, err := cmd.Flags().GetString(flagDueDate)
			if err != nil {
				return fmt.Errorf("error getting due-date flag: %w", err)
			}
			params.DueDate = &dueDate
		}
		if cmd.Flags().Changed(flagStartDate) {
			startDate, err := cmd.Flags().GetString(flagStartDate)
			if err != nil {
				return fmt.Errorf("error getting start-date flag: %w", err)
			}
			params.StartDate = &startDate
		}
		if cmd.Flags().Changed(flagClientID) {
			clientID, err := cmd.Flags().GetUint(flagClientID)
			if err != nil {
				return fmt.Errorf("error getting client-id flag: %w", err)
			}
			params.ClientID = &clientID
		}
		if cmd.Flags().Changed(flagJobTypeID) {
			jobTypeID, err := cmd.Flags().GetUint(flagJobTypeID)
			if err != nil {
				return fmt.Errorf("error getting job-type-id flag: %w", err)
			}
			params.JobTypeID = &jobTypeID
		}

		job, err := apiClient.CreateJob(context.Background(), params)
		if err != nil {
			return fmt.Errorf("error creating job: %w", err)
		}
		return printJSON(jobToOutput(job))
	},
}

var getJobCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a specific job",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := getID(cmd)
		if err != nil {
			return err
		}

		job, err := apiClient.GetJob(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error getting job: %w", err)
		}
		return printJSON(jobToOutput(job))
	},
}

var listJobsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all jobs",
	RunE: func(_ *cobra.Command, _ []string) error {
		jobs, err := apiClient.GetJobs(context.Background(), nil)
		if err != nil {
			return fmt.Errorf("error listing jobs: %w", err)
		}
		return printJSON(jobsToOutput(jobs))
	},
}

var jobsByStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "List jobs in a given status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		raw, err := cmd.Flags().GetString(flagStatus)
		if err != nil {
			return fmt.Errorf("error getting status flag: %w", err)
		}
		status, err := models.ParseStatus(raw)
		if err != nil {
			return err
		}

		jobs, err := apiClient.GetJobsByStatus(context.Background(), status)
		if err != nil {
			return fmt.Errorf("error listing jobs: %w", err)
		}
		return printJSON(jobsToOutput(jobs))
	},
}

var jobsByRangeCmd = &cobra.Command{
	Use:   "range",
	Short: "List jobs occupying a calendar window",
	RunE: func(cmd *cobra.Command, _ []string) error {
		start, err := cmd.Flags().GetString(flagStart)
		if err != nil {
			return fmt.Errorf("error getting start flag: %w", err)
		}
		end, err := cmd.Flags().GetString(flagEnd)
		if err != nil {
			return fmt.Errorf("error getting end flag: %w", err)
		}

		params := handlers.JobDateRangeParams{Start: start, End: end}
		if cmd.Flags().Changed(flagStatus) {
			raw, err := cmd.Flags().GetString(flagStatus)
			if err != nil {
				return fmt.Errorf("error getting status flag: %w", err)
			}
			status, err := models.ParseStatus(raw)
			if err != nil {
				return err
			}
			params.Status = &status
		}

		jobs, err := apiClient.GetJobsByDateRange(context.Background(), params)
		if err != nil {
			return fmt.Errorf("error listing jobs: %w", err)
		}
		return printJSON(jobsToOutput(jobs))
	},
}

var updateJobStatusCmd = &cobra.Command{
	Use:   "set-status",
	Short: "Move a job to a new status",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := getID(cmd)
		if err != nil {
			return err
		}
		raw, err := cmd.Flags().GetString(flagStatus)
		if err != nil {
			return fmt.Errorf("error getting status flag: %w", err)
		}
		status, err := models.ParseStatus(raw)
		if err != nil {
			return err
		}

		job, err := apiClient.UpdateJobStatus(context.Background(), id, status)
		if err != nil {
			return fmt.Errorf("error updating job status: %w", err)
		}
		return printJSON(jobToOutput(job))
	},
}

var deleteJobCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a job and its payments and attachments",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := getID(cmd)
		if err != nil {
			return err
		}

		if err := apiClient.DeleteJob(context.Background(), id); err != nil {
			return fmt.Errorf("error deleting job: %w", err)
		}

		fmt.Printf("Job %d deleted successfully\n", id)
		return nil
	},
}

var jobStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show job counts per status",
	RunE: func(_ *cobra.Command, _ []string) error {
		stats, err := apiClient.GetJobStats(context.Background())
		if err != nil {
			return fmt.Errorf("error getting job stats: %w", err)
		}
		return printJSON(stats)
	},
}

// GetJobsCmd returns the jobs command
func GetJobsCmd() *cobra.Command {
	return jobsCmd
}
