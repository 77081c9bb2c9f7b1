package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CariHQ/nnp-web/internal/app"
	"github.com/CariHQ/nnp-web/internal/infrastructure/connector"
	"github.com/CariHQ/nnp-web/internal/infrastructure/extraction"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// PressCommandHandler imports press release files as posts.
type PressCommandHandler struct {
	logger logger.Logger
}

// NewPressCommandHandler initializes a PressCommandHandler with a console logger.
func NewPressCommandHandler() (*PressCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &PressCommandHandler{logger: loggerInstance}, nil
}

// ImportPressCmd reads PDFs and scans from --dir and upserts them as published posts
func (commandHandler *PressCommandHandler) ImportPressCmd(cmd *cobra.Command, _ []string) error {
	dir, err := cmd.Flags().GetString("dir")
	if err != nil {
		return fmt.Errorf("invalid dir flag: %w", err)
	}

	env, err := loadEnvironment(cmd, commandHandler.logger)
	if err != nil {
		return err
	}
	defer env.close()

	postService, err := app.NewBlogPostService(env.repos.posts, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to create blog post service: %w", err)
	}

	importer, err := app.NewPressImportService(
		extraction.NewExtractor(commandHandler.logger),
		connector.NewContentCleaner(env.cfg.Secrets.OpenAIAPIKey, commandHandler.logger),
		postService,
		env.cfg.Site.PressAuthor,
		commandHandler.logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create press import service: %w", err)
	}

	report, err := importer.Import(cmd.Context(), dir)
	if err != nil {
		return err
	}

	commandHandler.logger.Info(fmt.Sprintf("Press import finished: %d found, %d created, %d updated, %d failed",
		report.Found, report.Created, report.Updated, report.Failed))
	return nil
}

// InitPressCommands registers import-press
func InitPressCommands(rootCmd *cobra.Command) error {
	handler, err := NewPressCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create press command handler: %w", err)
	}

	var importPressCmd = &cobra.Command{
		Use:   "import-press",
		Short: "Import a folder of press release PDFs and scans",
		RunE:  handler.ImportPressCmd,
	}
	importPressCmd.Flags().String("dir", "press-releases", "Directory holding the press release files")
	rootCmd.AddCommand(importPressCmd)

	return nil
}
