package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	v1 "github.com/CariHQ/nnp-web/internal/api/rest/v1"
	"github.com/CariHQ/nnp-web/internal/app"
	"github.com/CariHQ/nnp-web/internal/domain/heroimages"
	"github.com/CariHQ/nnp-web/internal/domain/pages"
	"github.com/CariHQ/nnp-web/internal/pkg/config"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// ContentCommandHandler exports and copies editorial content.
type ContentCommandHandler struct {
	logger logger.Logger
}

// NewContentCommandHandler initializes a ContentCommandHandler with a console logger.
func NewContentCommandHandler() (*ContentCommandHandler, error) {
	loggerInstance, err := setupLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	return &ContentCommandHandler{logger: loggerInstance}, nil
}

// ExportStaticCmd writes the active hero images and page sections as JSON files
func (commandHandler *ContentCommandHandler) ExportStaticCmd(cmd *cobra.Command, _ []string) error {
	out, err := cmd.Flags().GetString("out")
	if err != nil {
		return fmt.Errorf("invalid out flag: %w", err)
	}

	env, err := loadEnvironment(cmd, commandHandler.logger)
	if err != nil {
		return err
	}
	defer env.close()

	written, err := exportStatic(cmd.Context(), env.repos.heroImages, env.repos.pages, out)
	if err != nil {
		return err
	}

	for _, path := range written {
		commandHandler.logger.Info("Exported ", path)
	}
	return nil
}

// exportStatic writes hero-images.json and one pages-<page>.json per page with active sections
func exportStatic(ctx context.Context, heroRepo heroimages.HeroImageRepository, pageRepo pages.PageContentRepository, out string) ([]string, error) {
	if err := os.MkdirAll(out, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", out, err)
	}

	heroes, err := heroRepo.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	var written []string
	path := filepath.Join(out, "hero-images.json")
	if err := writeJSON(path, v1.NewHeroImageResponses(heroes)); err != nil {
		return nil, err
	}
	written = append(written, path)

	all, err := pageRepo.List(ctx, &pages.PageContentQuery{})
	if err != nil {
		return nil, err
	}
	names := map[string]struct{}{}
	for _, section := range all {
		if section.Active {
			names[section.Page] = struct{}{}
		}
	}
	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)

	for _, name := range sorted {
		sections, err := pageRepo.ListForPage(ctx, name)
		if err != nil {
			return nil, err
		}
		path := filepath.Join(out, "pages-"+name+".json")
		if err := writeJSON(path, v1.NewPageContentResponses(sections)); err != nil {
			return nil, err
		}
		written = append(written, path)
	}

	return written, nil
}

func writeJSON(path string, value any) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// SyncContentCmd copies hero images and posts from the configured database to --target-dsn
func (commandHandler *ContentCommandHandler) SyncContentCmd(cmd *cobra.Command, _ []string) error {
	target := config.DatabaseSettings{}
	var err error
	if target.DSN, err = cmd.Flags().GetString("target-dsn"); err != nil {
		return fmt.Errorf("invalid target-dsn flag: %w", err)
	}
	if target.Type, err = cmd.Flags().GetString("target-type"); err != nil {
		return fmt.Errorf("invalid target-type flag: %w", err)
	}
	if err := target.Validate(); err != nil {
		return err
	}

	env, err := loadEnvironment(cmd, commandHandler.logger)
	if err != nil {
		return err
	}
	defer env.close()

	targetRepos, err := openRepositories(target, commandHandler.logger)
	if err != nil {
		return fmt.Errorf("failed to open target database: %w", err)
	}
	defer targetRepos.close()

	syncer := app.NewContentSyncService(
		app.ContentStore{HeroImages: env.repos.heroImages, Posts: env.repos.posts},
		app.ContentStore{HeroImages: targetRepos.heroImages, Posts: targetRepos.posts},
		commandHandler.logger,
	)

	report, err := syncer.Sync(cmd.Context())
	if err != nil {
		return err
	}
	if report.Errors > 0 {
		return fmt.Errorf("content sync finished with %d errors", report.Errors)
	}
	return nil
}

// InitContentCommands registers export-static and sync-content
func InitContentCommands(rootCmd *cobra.Command) error {
	handler, err := NewContentCommandHandler()
	if err != nil {
		return fmt.Errorf("failed to create content command handler: %w", err)
	}

	var exportStaticCmd = &cobra.Command{
		Use:   "export-static",
		Short: "Write active hero images and page content as JSON files",
		RunE:  handler.ExportStaticCmd,
	}
	exportStaticCmd.Flags().String("out", "public/data", "Output directory")
	rootCmd.AddCommand(exportStaticCmd)

	var syncContentCmd = &cobra.Command{
		Use:   "sync-content",
		Short: "Copy hero images and posts to another database",
		RunE:  handler.SyncContentCmd,
	}
	syncContentCmd.Flags().String("target-dsn", "", "DSN of the target database")
	syncContentCmd.Flags().String("target-type", config.PostgresDbType, "Target database type (sqlite or postgres)")
	_ = syncContentCmd.MarkFlagRequired("target-dsn")
	rootCmd.AddCommand(syncContentCmd)

	return nil
}
