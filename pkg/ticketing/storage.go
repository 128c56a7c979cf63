package ticketing

import (
	"context"

	"github.com/4chain-ag/go-ticketing-sdk/pkg/core/gateway"
)

// UploadDataToIPFS stores one metadata object under the caller's API key and returns its URI.
func (c *Client) UploadDataToIPFS(ctx context.Context, apiKey string, metadata any) (gateway.ContentURI, error) {
	return c.uploader.Upload(ctx, apiKey, metadata)
}

// UploadImageToIPFS stores raw image bytes under the caller's API key and returns their URI.
func (c *Client) UploadImageToIPFS(ctx context.Context, apiKey string, data []byte, contentType string) (gateway.ContentURI, error) {
	return c.uploader.UploadBlob(ctx, apiKey, data, contentType)
}

// UploadArrayToIPFS stores the items one by one and returns their URIs in input order.
// The first failure aborts the batch, items stored before it stay stored.
func (c *Client) UploadArrayToIPFS(ctx context.Context, apiKey string, items []any) ([]gateway.ContentURI, error) {
	return c.uploader.UploadBatch(ctx, apiKey, items)
}

// DeleteFromIPFS removes the content addressed by uri from the caller's storage account.
func (c *Client) DeleteFromIPFS(ctx context.Context, apiKey, uri string) error {
	return c.uploader.Delete(ctx, apiKey, uri)
}

// CreateGatewayURL resolves uri to the URL of the first reachable gateway.
func (c *Client) CreateGatewayURL(ctx context.Context, uri gateway.ContentURI) (string, error) {
	return c.resolver.Resolve(ctx, uri)
}
