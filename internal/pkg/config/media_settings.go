package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Media storage providers
const (
	LocalMediaProvider = "local"
	AzureMediaProvider = "azure"
)

// MediaSettings configures where uploaded hero and header images are stored.
type MediaSettings struct {
	Provider string `mapstructure:"provider" validate:"required,oneof=local azure"`
	// Directory and PublicPath apply to the local provider
	Directory  string `mapstructure:"directory"`
	PublicPath string `mapstructure:"public_path"`
	// ContainerName applies to the azure provider; the connection string comes from the environment
	ContainerName    string `mapstructure:"container_name"`
	ConnectionString string `mapstructure:"-"`
	MaxUploadBytes   int64  `mapstructure:"max_upload_bytes" validate:"gte=0"`
}

// Validate checks that all fields in MediaSettings are valid
func (s *MediaSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for MediaSettings: %w", err)
	}

	switch s.Provider {
	case LocalMediaProvider:
		if s.Directory == "" {
			return fmt.Errorf("directory is required for local media storage")
		}
		if s.PublicPath == "" {
			return fmt.Errorf("public path is required for local media storage")
		}
	case AzureMediaProvider:
		if s.ContainerName == "" {
			return fmt.Errorf("container name is required for azure media storage")
		}
		if s.ConnectionString == "" {
			return fmt.Errorf("AZURE_STORAGE_CONNECTION_STRING is required for azure media storage")
		}
	}

	return nil
}
