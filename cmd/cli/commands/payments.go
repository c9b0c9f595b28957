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
	flagAmount      = "amount"
	flagPaymentDate = "date"
	flagJobID       = "job-id"
)

// paymentOutput represents the filtered output for a payment
type paymentOutput struct {
	ID          uint    `json:"id"`
	Amount      float64 `json:"amount"`
	PaymentDate *string `json:"payment_date,omitempty"`
	Description string  `json:"description,omitempty"`
	JobID       *uint   `json:"job_id,omitempty"`
}

func paymentToOutput(payment models.Payment) paymentOutput {
	return paymentOutput{
		ID:          payment.ID,
		Amount:      payment.Amount,
		PaymentDate: payment.PaymentDate,
		Description: payment.Description,
		JobID:       payment.JobID,
	}
}

func paymentsToOutput(payments []models.Payment) []paymentOutput {
	output := make([]paymentOutput, len(payments))
	for i, payment := range payments {
		output[i] = paymentToOutput(payment)
	}
	return output
}

func init() {
	paymentsCmd.AddCommand(createPaymentCmd)
	paymentsCmd.AddCommand(getPaymentCmd)
	paymentsCmd.AddCommand(listPaymentsCmd)
	paymentsCmd.AddCommand(paymentsByJobCmd)
	paymentsCmd.AddCommand(deletePaymentCmd)
	paymentsCmd.AddCommand(paymentStatsCmd)

	// Add flags for create
	createPaymentCmd.Flags().Float64P(flagAmount, "a", 0, "Payment amount")
	createPaymentCmd.Flags().String(flagPaymentDate, "", "Payment date (DD/MM/YYYY)")
	createPaymentCmd.Flags().StringP(flagDescription, "d", "", "Payment description")
	createPaymentCmd.Flags().Uint(flagJobID, 0, "Job the payment belongs to")
	if err := createPaymentCmd.MarkFlagRequired(flagAmount); err != nil {
		panic(fmt.Errorf("failed to mark amount flag as required for create payment command: %w", err))
	}

	// Add flags for get
	getPaymentCmd.Flags().String(flagID, "", "Payment ID")
	if err := getPaymentCmd.MarkFlagRequired(flagID); err != nil {
		panic(fmt.Errorf("failed to mark id flag as required for get payment command: %w", err))
	}

	// Add flags for job listing
	paymentsByJobCmd.Flags().Uint(flagJobID, 0, "Job ID")
	if err := paymentsByJobCmd.MarkFlagRequired(flagJobID); err != nil {
		panic(fmt.Errorf("failed to mark job-id flag as required for payments job command: %w", err))
	}

	// Add flags for delete
	deletePaymentCmd.Flags().String(flagID, "", "Payment ID")
	if err := deletePaymentCmd.MarkFlagRequired(flagID); err != nil {
		panic(fmt.Errorf("failed to mark id flag as required for delete payment command: %w", err))
	}
}

var paymentsCmd = &cobra.Command{
	Use:   "payments",
	Short: "Manage payments",
}

var createPaymentCmd = &cobra.Command{
	Use:   "create",
	Short: "Record a payment",
	RunE: func(cmd *cobra.Command, _ []string) error {
		amount, err := cmd.Flags().GetFloat64(flagAmount)
		if err != nil {
			return fmt.Errorf("error getting amount flag: %w", err)
		}
		description, err := cmd.Flags().GetString(flagDescription)
		if err != nil {
			return fmt.Errorf("error getting description flag: %w", err)
		}

		params := services.PaymentCreate{
			Amount:      amount,
			Description: description,
		}
		if cmd.Flags().Changed(flagPaymentDate) {
			date, err := cmd.Flags().GetString(flagPaymentDate)
			if err != nil {
				return fmt.Errorf("error getting date flag: %w", err)
			}
			params.PaymentDate = &date
		}
		if cmd.Flags().Changed(flagJobID) {
			jobID, err := cmd.Flags().GetUint(flagJobID)
			if err != nil {
				return fmt.Errorf("error getting job-id flag: %w", err)
			}
			params.JobID = &jobID
		}

		payment, err := apiClient.CreatePayment(context.Background(), params)
		if err != nil {
			return fmt.Errorf("error creating payment: %w", err)
		}
		return printJSON(paymentToOutput(payment))
	},
}

var getPaymentCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a specific payment",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := getID(cmd)
		if err != nil {
			return err
		}

		payment, err := apiClient.GetPayment(context.Background(), id)
		if err != nil {
			return fmt.Errorf("error getting payment: %w", err)
		}
		return printJSON(paymentToOutput(payment))
	},
}

var listPaymentsCmd = &cobra.Command{
	Use:   "list",
	Short: "List all payments",
	RunE: func(_ *cobra.Command, _ []string) error {
		payments, err := apiClient.GetPayments(context.Background(), nil)
		if err != nil {
			return fmt.Errorf("error listing payments: %w", err)
		}
		return printJSON(paymentsToOutput(payments))
	},
}

var paymentsByJobCmd = &cobra.Command{
	Use:   "job",
	Short: "List a job's payments",
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobID, err := cmd.Flags().GetUint(flagJobID)
		if err != nil {
			return fmt.Errorf("error getting job-id flag: %w", err)
		}

		payments, err := apiClient.GetPaymentsByJob(context.Background(), jobID)
		if err != nil {
			return fmt.Errorf("error listing payments: %w", err)
		}
		return printJSON(paymentsToOutput(payments))
	},
}

var deletePaymentCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a payment and its attachments",
	RunE: func(cmd *cobra.Command, _ []string) error {
		id, err := getID(cmd)
		if err != nil {
			return err
		}

		if err := apiClient.DeletePayment(context.Background(), id); err != nil {
			return fmt.Errorf("error deleting payment: %w", err)
		}

		fmt.Printf("Payment %d deleted successfully\n", id)
		return nil
	},
}

var paymentStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show payment totals",
	RunE: func(_ *cobra.Command, _ []string) error {
		stats, err := apiClient.GetPaymentStats(context.Background())
		if err != nil {
			return fmt.Errorf("error getting payment stats: %w", err)
		}
		return printJSON(stats)
	},
}

// GetPaymentsCmd returns the payments command
func GetPaymentsCmd() *cobra.Command {
	return paymentsCmd
}
