package connector

import (
	"context"
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/bloberror"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/container"

	"github.com/CariHQ/nnp-web/internal/pkg/config"
	"github.com/CariHQ/nnp-web/internal/pkg/logger"
)

// AzureBlobMediaConnector stores images in a public-read Azure Blob Storage container
type AzureBlobMediaConnector struct {
	client        *azblob.Client
	containerName string
	logger        logger.Logger
}

// NewAzureBlobMediaConnector creates the container when it does not exist yet
func NewAzureBlobMediaConnector(ctx context.Context, settings *config.MediaSettings, logger logger.Logger) (*AzureBlobMediaConnector, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	client, err := azblob.NewClientFromConnectionString(settings.ConnectionString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure Blob client: %w", err)
	}

	access := container.PublicAccessTypeBlob
	_, err = client.CreateContainer(ctx, settings.ContainerName, &container.CreateOptions{Access: &access})
	if err != nil && !bloberror.HasCode(err, bloberror.ContainerAlreadyExists) {
		return nil, fmt.Errorf("failed to create container %s: %w", settings.ContainerName, err)
	}

	return &AzureBlobMediaConnector{
		client:        client,
		containerName: settings.ContainerName,
		logger:        logger,
	}, nil
}

// Upload stores data as a block blob and returns the blob URL
func (c *AzureBlobMediaConnector) Upload(ctx context.Context, name string, data []byte, contentType string) (string, error) {
	opts := &azblob.UploadBufferOptions{
		HTTPHeaders: &blob.HTTPHeaders{BlobContentType: &contentType},
	}

	if _, err := c.client.UploadBuffer(ctx, c.containerName, name, data, opts); err != nil {
		return "", fmt.Errorf("failed to upload blob %s: %w", name, err)
	}

	c.logger.Info("Uploaded blob ", name, " to container ", c.containerName)
	return c.blobURL(name), nil
}

// Delete removes the blob stored under name
func (c *AzureBlobMediaConnector) Delete(ctx context.Context, name string) error {
	if _, err := c.client.DeleteBlob(ctx, c.containerName, name, nil); err != nil {
		if bloberror.HasCode(err, bloberror.BlobNotFound) {
			return nil
		}
		return fmt.Errorf("failed to delete blob %s: %w", name, err)
	}

	c.logger.Info("Deleted blob ", name, " from container ", c.containerName)
	return nil
}

func (c *AzureBlobMediaConnector) blobURL(name string) string {
	return strings.TrimSuffix(c.client.URL(), "/") + "/" + c.containerName + "/" + name
}
