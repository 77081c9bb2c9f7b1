package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CariHQ/nnp-web/internal/app"
	"github.com/CariHQ/nnp-web/internal/domain/users"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// SeedCommandHandler handles seeding and admin account commands.
type SeedCommandHandler struct {
	logger logger.Logger
}

// NewSeedCommandHandler initializes a SeedCommandHandler with a console logger.
func NewSeedCommandHandler() (*SeedCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &SeedCommandHandler{logger: loggerInstance}, nil
}

func (commandHandler *SeedCommandHandler) authService(env *environment) (users.AuthService, error) {
	authService, err := app.NewAuthService(env.repos.users, env.repos.sessions, &env.cfg.Auth, commandHandler.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth service: %w", err)
	}
	return authService, nil
}

// SeedCmd creates the admin user and the starter content of an empty database
func (commandHandler *SeedCommandHandler) SeedCmd(cmd *cobra.Command, _ []string) error {
	opts := app.SeedOptions{}
	var err error
	if opts.AdminEmail, err = cmd.Flags().GetString("admin-email"); err != nil {
		return fmt.Errorf("invalid admin-email flag: %w", err)
	}
	if opts.AdminName, err = cmd.Flags().GetString("admin-name"); err != nil {
		return fmt.Errorf("invalid admin-name flag: %w", err)
	}
	if opts.AdminPassword, err = cmd.Flags().GetString("admin-password"); err != nil {
		return fmt.Errorf("invalid admin-password flag: %w", err)
	}

	env, err := loadEnvironment(cmd, commandHandler.logger)
	if err != nil {
		return err
	}
	defer env.close()

	authService, err := commandHandler.authService(env)
	if err != nil {
		return err
	}

	seeder := app.NewSeedService(authService, env.repos.users, env.repos.heroImages, env.repos.pages, commandHandler.logger)
	report, err := seeder.Seed(cmd.Context(), opts)
	if err != nil {
		return err
	}

	commandHandler.logger.Info(fmt.Sprintf("Seed finished: admin created=%t, hero images=%d, page sections=%d",
		report.AdminCreated, report.HeroImagesCreated, report.SectionsCreated))
	return nil
}

// CreateAdminCmd adds an admin account with a password
func (commandHandler *SeedCommandHandler) CreateAdminCmd(cmd *cobra.Command, _ []string) error {
	email, err := cmd.Flags().GetString("email")
	if err != nil {
		return fmt.Errorf("invalid email flag: %w", err)
	}
	name, err := cmd.Flags().GetString("name")
	if err != nil {
		return fmt.Errorf("invalid name flag: %w", err)
	}
	password, err := cmd.Flags().GetString("password")
	if err != nil {
		return fmt.Errorf("invalid password flag: %w", err)
	}

	env, err := loadEnvironment(cmd, commandHandler.logger)
	if err != nil {
		return err
	}
	defer env.close()

	authService, err := commandHandler.authService(env)
	if err != nil {
		return err
	}

	user, err := authService.CreateAdmin(cmd.Context(), email, name, password)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	commandHandler.logger.Info("Admin user created: ", user.Email)
	return nil
}

// PurgeSessionsCmd deletes expired session rows
func (commandHandler *SeedCommandHandler) PurgeSessionsCmd(cmd *cobra.Command, _ []string) error {
	env, err := loadEnvironment(cmd, commandHandler.logger)
	if err != nil {
		return err
	}
	defer env.close()

	authService, err := commandHandler.authService(env)
	if err != nil {
		return err
	}

	purged, err := authService.PurgeExpiredSessions(cmd.Context())
	if err != nil {
		return err
	}
	commandHandler.logger.Info("Expired sessions removed: ", purged)
	return nil
}

// InitSeedCommands registers seed, create-admin and purge-sessions
func InitSeedCommands(rootCmd *cobra.Command) error {
	handler, err := NewSeedCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create seed command handler: %w", err)
	}

	var seedCmd = &cobra.Command{
		Use:   "seed",
		Short: "Create the admin user, sample hero images and default page content",
		RunE:  handler.SeedCmd,
	}
	seedCmd.Flags().String("admin-email", "admin@votenpp.com", "Email of the admin user")
	seedCmd.Flags().String("admin-name", "Admin User", "Display name of the admin user")
	seedCmd.Flags().String("admin-password", "", "Password of the admin user; the admin is skipped when empty")
	rootCmd.AddCommand(seedCmd)

	var createAdminCmd = &cobra.Command{
		Use:   "create-admin",
		Short: "Create an admin account",
		RunE:  handler.CreateAdminCmd,
	}
	createAdminCmd.Flags().String("email", "", "Email address used to sign in")
	createAdminCmd.Flags().String("name", "", "Display name")
	createAdminCmd.Flags().String("password", "", "Password (at least 8 characters)")
	_ = createAdminCmd.MarkFlagRequired("email")
	_ = createAdminCmd.MarkFlagRequired("password")
	rootCmd.AddCommand(createAdminCmd)

	var purgeSessionsCmd = &cobra.Command{
		Use:   "purge-sessions",
		Short: "Delete expired admin sessions",
		RunE:  handler.PurgeSessionsCmd,
	}
	rootCmd.AddCommand(purgeSessionsCmd)

	return nil
}
