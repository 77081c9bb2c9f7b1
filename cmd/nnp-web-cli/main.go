// Package main is the entry point for the nnp-web-cli application.
// It registers the maintenance sub-commands (seeding, admin accounts, press
// release import, payment sync, static export and content sync) and executes them.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/CariHQ/nnp-web/cmd/nnp-web-cli/internal/commands"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "nnp-web-cli",
		Short: "Maintenance tool for the party website",
		Long: `nnp-web-cli runs maintenance tasks against the website database.

The configuration file is read from --config, or CONFIG_PATH, or configs/rest-app.yaml.
Secrets (AUTH_SECRET, STRIPE_SECRET_KEY, OPENAI_API_KEY, DATABASE_URL) come from the environment.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().String("config", "", "Path to the YAML configuration file")

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitSeedCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize seed commands: %w", err)
	}

	if err := commands.InitPressCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize press commands: %w", err)
	}

	if err := commands.InitPaymentCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize payment commands: %w", err)
	}

	if err := commands.InitContentCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize content commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
