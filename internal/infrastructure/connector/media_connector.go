package connector

import (
	"context"
	"fmt"

	"github.com/CariHQ/nnp-web/internal/domain/media"
	"github.com/CariHQ/nnp-web/internal/pkg/config"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// NewMediaConnector returns the connector for the configured provider
func NewMediaConnector(ctx context.Context, settings *config.MediaSettings, logger logger.Logger) (media.MediaConnector, error) {
	switch settings.Provider {
	case config.LocalMediaProvider:
		return NewLocalMediaConnector(settings, logger)
	case config.AzureMediaProvider:
		return NewAzureBlobMediaConnector(ctx, settings, logger)
	default:
		return nil, fmt.Errorf("unsupported media provider: %s", settings.Provider)
	}
}
