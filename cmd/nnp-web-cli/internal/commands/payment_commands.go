package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CariHQ/nnp-web/internal/app"
	"github.com/CariHQ/nnp-web/internal/infrastructure/connector"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// PaymentCommandHandler mirrors Stripe payments into the database.
type PaymentCommandHandler struct {
	logger logger.Logger
}

// NewPaymentCommandHandler initializes a PaymentCommandHandler with a console logger.
func NewPaymentCommandHandler() (*PaymentCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &PaymentCommandHandler{logger: loggerInstance}, nil
}

// SyncPaymentsCmd copies recent succeeded payment intents that are not yet stored
func (commandHandler *PaymentCommandHandler) SyncPaymentsCmd(cmd *cobra.Command, _ []string) error {
	env, err := loadEnvironment(cmd, commandHandler.logger)
	if err != nil {
		return err
	}
	defer env.close()

	gateway := connector.NewStripeGateway(&env.cfg.Stripe, commandHandler.logger)
	paymentService, err := app.NewPaymentService(env.repos.payments, gateway, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create payment service: %w", err)
	}

	result, err := paymentService.Sync(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to sync payments: %w", err)
	}

	commandHandler.logger.Info(fmt.Sprintf("Payment sync finished: %d synced, %d skipped, %d total",
		result.Synced, result.Skipped, result.Total))
	return nil
}

// InitPaymentCommands registers sync-payments
func InitPaymentCommands(rootCmd *cobra.Command) error {
	handler, err := NewPaymentCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create payment command handler: %w", err)
	}

	var syncPaymentsCmd = &cobra.Command{
		Use:   "sync-payments",
		Short: "Copy recent Stripe payments into the database",
		RunE:  handler.SyncPaymentsCmd,
	}
	rootCmd.AddCommand(syncPaymentsCmd)

	return nil
}
